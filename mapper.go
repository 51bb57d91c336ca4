package shapesync

import (
	"github.com/phanxgames/shapesync/points"
)

// Codec converts between leaf geometry and outlines. The default codec is
// backed by package points.
type Codec interface {
	// ToPoints resolves the outline of a leaf plain shape from its Geometry.
	ToPoints(shape *PlainShape) (points.Points, error)
	// ToPath renders an outline as path data.
	ToPath(pts points.Points) string
}

type pointsCodec struct{}

func (pointsCodec) ToPoints(shape *PlainShape) (points.Points, error) {
	return points.FromGeometry(shape.Type, shape.geometry())
}

func (pointsCodec) ToPath(pts points.Points) string {
	return points.Format(pts)
}

// DefaultCodec is the codec used when Config.Codec is nil.
var DefaultCodec Codec = pointsCodec{}

// DefaultExcludedAttributes are host-injected attributes that the reader
// drops and the reconciler never removes.
var DefaultExcludedAttributes = []string{"xmlns", "xmlns:xlink"}

// Config configures a Mapper. The zero value is ready to use.
type Config struct {
	// Codec converts geometry. Nil means DefaultCodec.
	Codec Codec
	// ExcludedAttributes lists host-internal attribute names. Nil means
	// DefaultExcludedAttributes; an empty non-nil slice excludes nothing.
	ExcludedAttributes []string
	// Validation selects whether inputs are validated.
	Validation ValidationMode
}

// Mapper reads live trees into frame and plain shapes, writes frame shapes
// into new live trees, and reconciles live trees against frame shapes.
// A Mapper holds no per-call state; the live tree is the only state that
// changes.
type Mapper struct {
	codec      Codec
	excluded   map[string]struct{}
	validation ValidationMode
}

// New creates a Mapper from cfg.
func New(cfg Config) *Mapper {
	m := &Mapper{codec: cfg.Codec, validation: cfg.Validation}
	if m.codec == nil {
		m.codec = DefaultCodec
	}
	excluded := cfg.ExcludedAttributes
	if excluded == nil {
		excluded = DefaultExcludedAttributes
	}
	m.excluded = make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		m.excluded[name] = struct{}{}
	}
	return m
}

func (m *Mapper) validating() bool {
	switch m.validation {
	case ValidationOn:
		return true
	case ValidationOff:
		return false
	default:
		return validationEnabled
	}
}

// attributes snapshots el's attributes minus the excluded names.
func (m *Mapper) attributes(el Element) Attributes {
	attrs := el.Attributes()
	if attrs == nil {
		return Attributes{}
	}
	for name := range m.excluded {
		delete(attrs, name)
	}
	return attrs
}

// --- Package-level API ---

var defaultMapper = New(Config{})

// ReadFrameShape reads el with the default Mapper. See [Mapper.ReadFrameShape].
func ReadFrameShape(el Element) (*FrameShape, error) {
	return defaultMapper.ReadFrameShape(el)
}

// ReadPlainShape reads el with the default Mapper. See [Mapper.ReadPlainShape].
func ReadPlainShape(el Element) (*PlainShape, error) {
	return defaultMapper.ReadPlainShape(el)
}

// WriteNode materializes fs with the default Mapper. See [Mapper.WriteNode].
func WriteNode(doc Document, fs *FrameShape) (Element, error) {
	return defaultMapper.WriteNode(doc, fs)
}

// UpdateNode reconciles el with the default Mapper. See [Mapper.UpdateNode].
func UpdateNode(el Element, fs *FrameShape) (Element, error) {
	return defaultMapper.UpdateNode(el, fs)
}
