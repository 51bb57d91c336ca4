package shapesync

import "fmt"

// WriteNode creates a new live subtree from fs using doc.
//
// Groups become <g> elements with their children written and appended in
// order; leaves become <path> elements whose d attribute is the codec's
// rendering of Points. Every attribute of fs is then set on the new element.
func (m *Mapper) WriteNode(doc Document, fs *FrameShape) (Element, error) {
	if doc == nil {
		return nil, fmt.Errorf("shapesync: write: nil document")
	}
	return m.writeNode(doc, fs)
}

func (m *Mapper) writeNode(doc Document, fs *FrameShape) (Element, error) {
	if m.validating() {
		if err := checkFrameShape(fs); err != nil {
			return nil, err
		}
	}

	var el Element
	if fs.IsGroup() {
		el = doc.CreateElement(KindGroup.String())
		for i, c := range fs.Children {
			child, err := m.writeNode(doc, c)
			if err != nil {
				return nil, fmt.Errorf("write child %d: %w", i, err)
			}
			el.AppendChild(child)
		}
	} else {
		el = doc.CreateElement(KindPath.String())
		el.SetAttribute(GeometryAttribute(KindPath.String()), m.codec.ToPath(fs.Points))
	}

	for name, v := range fs.Attributes {
		el.SetAttribute(name, v)
	}
	return el, nil
}
