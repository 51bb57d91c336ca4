package shapesync

import (
	"errors"
	"fmt"
)

// Contract errors. They signal programmer error, not transient failure, and
// are returned wrapped; test with errors.Is.
var (
	// ErrNotALiveNode reports a nil or disposed element.
	ErrNotALiveNode = errors.New("shapesync: not a live node")
	// ErrUnsupportedKind reports an element kind outside the accepted set, or
	// a leaf kind that cannot take an arbitrary outline.
	ErrUnsupportedKind = errors.New("shapesync: unsupported kind")
	// ErrMalformedFrameShape reports a frame shape that breaks the
	// leaf-or-group invariants or does not fit the element it targets.
	ErrMalformedFrameShape = errors.New("shapesync: malformed frame shape")
)

// ValidationMode selects whether a Mapper validates its inputs.
type ValidationMode uint8

const (
	ValidationDefault ValidationMode = iota // follow SetValidation
	ValidationOn                            // always validate
	ValidationOff                           // never validate
)

// validationEnabled is the package-wide default (no atomic; shapesync is
// single-threaded).
var validationEnabled = true

// SetValidation enables or disables input validation for every Mapper using
// ValidationDefault, including the package-level functions. Validation is on
// by default. Turning it off skips the entry checks of the public operations;
// malformed input then produces undefined results instead of errors, so
// callers must not rely on validation for control flow.
func SetValidation(enabled bool) {
	validationEnabled = enabled
}

// ValidationEnabled reports the package-wide validation default.
func ValidationEnabled() bool {
	return validationEnabled
}

// disposable is implemented by hosts that can tell a detached, destroyed
// element from a live one.
type disposable interface {
	IsDisposed() bool
}

func checkElement(el Element) error {
	if el == nil {
		return fmt.Errorf("%w: nil element", ErrNotALiveNode)
	}
	if d, ok := el.(disposable); ok && d.IsDisposed() {
		return fmt.Errorf("%w: element is disposed", ErrNotALiveNode)
	}
	if tag := el.Kind(); !IsAcceptedKind(tag) {
		return fmt.Errorf("%w: <%s>", ErrUnsupportedKind, tag)
	}
	return nil
}

// checkFrameShape validates fs and, one level deep, its children. Deeper
// problems surface when recursion reaches them.
func checkFrameShape(fs *FrameShape) error {
	if err := checkShape(fs); err != nil {
		return err
	}
	for i, c := range fs.Children {
		if err := checkShape(c); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

func checkShape(fs *FrameShape) error {
	switch {
	case fs == nil:
		return fmt.Errorf("%w: nil", ErrMalformedFrameShape)
	case fs.Attributes == nil:
		return fmt.Errorf("%w: missing attributes", ErrMalformedFrameShape)
	case fs.Points != nil && fs.Children != nil:
		return fmt.Errorf("%w: both points and children present", ErrMalformedFrameShape)
	case fs.Points == nil && fs.Children == nil:
		return fmt.Errorf("%w: neither points nor children present", ErrMalformedFrameShape)
	}
	return nil
}

// checkPairing verifies that a group frame shape targets a group element and
// a leaf frame shape targets a leaf.
func checkPairing(el Element, fs *FrameShape) error {
	tag := el.Kind()
	isGroup := tag == KindGroup.String()
	switch {
	case fs.IsGroup() && !isGroup:
		return fmt.Errorf("%w: group frame shape for <%s>", ErrMalformedFrameShape, tag)
	case !fs.IsGroup() && isGroup:
		return fmt.Errorf("%w: leaf frame shape for <g>", ErrMalformedFrameShape)
	}
	return nil
}
