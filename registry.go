package shapesync

// Kind is one of the accepted shape node kinds. The set is closed; every
// other host tag is ignored by the reader and reconciler.
type Kind uint8

const (
	KindGroup    Kind = iota // g: groups child shapes, no geometry of its own
	KindCircle               // circle: cx, cy, r
	KindEllipse              // ellipse: cx, cy, rx, ry
	KindLine                 // line: x1, x2, y1, y2
	KindPath                 // path: d
	KindPolygon              // polygon: points (closed)
	KindPolyline             // polyline: points (open)
	KindRect                 // rect: height, rx, ry, width, x, y
	numKinds
)

var kindTags = [numKinds]string{
	KindGroup:    "g",
	KindCircle:   "circle",
	KindEllipse:  "ellipse",
	KindLine:     "line",
	KindPath:     "path",
	KindPolygon:  "polygon",
	KindPolyline: "polyline",
	KindRect:     "rect",
}

// coreAttributes lists, per kind, the attributes that encode geometry. They
// are lifted out of the generic attribute map into points or typed values.
var coreAttributes = [numKinds][]string{
	KindGroup:    nil,
	KindCircle:   {"cx", "cy", "r"},
	KindEllipse:  {"cx", "cy", "rx", "ry"},
	KindLine:     {"x1", "x2", "y1", "y2"},
	KindPath:     {"d"},
	KindPolygon:  {"points"},
	KindPolyline: {"points"},
	KindRect:     {"height", "rx", "ry", "width", "x", "y"},
}

// String returns the host tag name for k.
func (k Kind) String() string {
	if k < numKinds {
		return kindTags[k]
	}
	return ""
}

// IsGroup reports whether k is the grouping kind.
func (k Kind) IsGroup() bool { return k == KindGroup }

// ParseKind maps a host tag name to its Kind.
func ParseKind(tag string) (Kind, bool) {
	switch tag {
	case "g":
		return KindGroup, true
	case "circle":
		return KindCircle, true
	case "ellipse":
		return KindEllipse, true
	case "line":
		return KindLine, true
	case "path":
		return KindPath, true
	case "polygon":
		return KindPolygon, true
	case "polyline":
		return KindPolyline, true
	case "rect":
		return KindRect, true
	}
	return 0, false
}

// IsAcceptedKind reports whether tag names one of the accepted shape kinds.
func IsAcceptedKind(tag string) bool {
	_, ok := ParseKind(tag)
	return ok
}

// CoreAttributeNames returns the ordered geometry attribute names for tag.
// Unknown tags and groups have none. The returned slice MUST NOT be mutated.
func CoreAttributeNames(tag string) []string {
	k, ok := ParseKind(tag)
	if !ok {
		return nil
	}
	return coreAttributes[k]
}

// isCoreAttribute reports whether name is a core attribute of tag.
func isCoreAttribute(tag, name string) bool {
	for _, c := range CoreAttributeNames(tag) {
		if c == name {
			return true
		}
	}
	return false
}

// GeometryAttribute returns the attribute that holds rendered path data for
// tag, or "" when the kind cannot take an arbitrary outline. Only paths can.
func GeometryAttribute(tag string) string {
	if tag == "path" {
		return "d"
	}
	return ""
}
