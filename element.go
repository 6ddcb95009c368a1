package layout

import "github.com/arclayout/engine/text"

// Element is a node in the layout tree: a tagged union of
// {Rectangle, Circle, Text, Image} plus the layout config and the mutable
// geometry fields the solver populates. The element arena (Engine.elements)
// exclusively owns every Element; children are referenced by arena index,
// never by pointer cycle.
type Element struct {
	ID     string
	PageID string
	Kind   ElementKind

	Layout LayoutConfig
	Text   *TextConfig
	Image  *ImageConfig

	// children holds arena indices, not pointers, per the weak-backpointer
	// ownership model: the arena is the only owner.
	children []int

	// Populated by the solver during render(). MinDimensions and Dimensions
	// start zeroed; Position starts at the origin.
	MinDimensions Size
	Dimensions    Size
	Position      Point
	WrappedLines  []text.Line

	// Overconstrained is set by the solver's position pass when this
	// element's assigned size, or its siblings' combined size along the
	// parent's main axis, exceeded the parent's content box (§7
	// OverconstraintWarning). The emitter clips rectangle, circle and image
	// boxes to the parent content box; text lines are emitted unclipped.
	Overconstrained bool

	// measuredWords caches this TEXT element's tokenized-and-measured words
	// once they are first computed; the cache is never cleared, so the
	// minima pass, which runs twice (§4.4 steps 2 and 5), tokenizes and
	// measures the content only once.
	measuredWords []text.Word
}

// arena owns every Element created by the builder calls and is discarded
// with the Engine. Indices start at 0; a parent index of -1 means "no
// parent" / "root".
type arena struct {
	elements []*Element
	parent   []int // parent[i] is the index of elements[i]'s parent, or -1 for a root
	roots    []int
}

func newArena() *arena {
	return &arena{}
}

// add appends a new element with the given parent index (-1 for a root) and
// returns its arena index.
func (a *arena) add(el *Element, parentIdx int) int {
	idx := len(a.elements)
	a.elements = append(a.elements, el)
	a.parent = append(a.parent, parentIdx)
	if parentIdx < 0 {
		a.roots = append(a.roots, idx)
	} else {
		parent := a.elements[parentIdx]
		parent.children = append(parent.children, idx)
	}
	return idx
}

func (a *arena) get(idx int) *Element { return a.elements[idx] }

func (a *arena) parentOf(idx int) (int, bool) {
	p := a.parent[idx]
	return p, p >= 0
}

func (a *arena) childrenOf(idx int) []int {
	return a.elements[idx].children
}
