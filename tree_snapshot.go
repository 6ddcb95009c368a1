package layout

// InspectedNode is a read-only, exported snapshot of one positioned element,
// taken after Render has run the solver. It exists so external packages
// (notably invariants) can walk the solved tree without depending on the
// unexported arena/Element representation.
type InspectedNode struct {
	ID              string
	PageID          string
	Kind            ElementKind
	Position        Point
	Dimensions      Size
	MinDimensions   Size
	Padding         Padding
	ChildGap        float64
	Direction       Direction
	Overconstrained bool
	Children        []*InspectedNode
}

// Inspect returns one InspectedNode per page root, in page order. It must be
// called after Render; calling it beforehand yields zeroed geometry since
// the solver has not run.
func (e *Engine) Inspect() []*InspectedNode {
	out := make([]*InspectedNode, 0, len(e.pages))
	for _, root := range e.pages {
		out = append(out, inspect(e.arena, root))
	}
	return out
}

func inspect(a *arena, idx int) *InspectedNode {
	el := a.get(idx)
	n := &InspectedNode{
		ID:              el.ID,
		PageID:          el.PageID,
		Kind:            el.Kind,
		Position:        el.Position,
		Dimensions:      el.Dimensions,
		MinDimensions:   el.MinDimensions,
		Padding:         el.Layout.Padding,
		ChildGap:        el.Layout.ChildGap,
		Direction:       el.Layout.Direction,
		Overconstrained: el.Overconstrained,
	}
	for _, k := range a.childrenOf(idx) {
		n.Children = append(n.Children, inspect(a, k))
	}
	return n
}
