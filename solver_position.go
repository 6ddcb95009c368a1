package layout

// overconstraintEps is the tolerance used when deciding whether children's
// assigned sizes exceed their parent's content box, matching Testable
// Property 1's epsilon.
const overconstraintEps = 1e-6

// position is the top-down pass (§4.4 step 7): each element's Position is
// its parent's content-box origin plus the main-axis group offset dictated
// by childAlignment and the per-child cross-axis offset. Overconstraint is
// checked against the container's own content box as each axis group's
// total and each child's cross-axis size become available, before
// recursing into the children themselves.
func (s *solver) position(idx int, origin Point) {
	el := s.a.get(idx)
	el.Position = origin

	kids := s.a.childrenOf(idx)
	if len(kids) == 0 {
		return
	}

	contentX := origin.X + el.Layout.Padding.Left
	contentY := origin.Y + el.Layout.Padding.Top
	contentW := el.Dimensions.Width - el.Layout.Padding.Horizontal()
	contentH := el.Dimensions.Height - el.Layout.Padding.Vertical()

	if el.Layout.Direction == Row {
		total := 0.0
		for i, k := range kids {
			total += s.a.get(k).Dimensions.Width
			if i < len(kids)-1 {
				total += el.Layout.ChildGap
			}
		}
		s.checkMainAxisOverflow(el, kids, "width", total, contentW)
		cursor := contentX + mainOffsetX(el.Layout.ChildAlignment.X, contentW-total)
		for _, k := range kids {
			c := s.a.get(k)
			s.checkCrossAxisOverflow(c, "height", c.Dimensions.Height, contentH)
			cy := crossOffsetY(el.Layout.ChildAlignment.Y, contentY, contentH, c.Dimensions.Height)
			s.position(k, Point{X: cursor, Y: cy})
			cursor += c.Dimensions.Width + el.Layout.ChildGap
		}
	} else {
		total := 0.0
		for i, k := range kids {
			total += s.a.get(k).Dimensions.Height
			if i < len(kids)-1 {
				total += el.Layout.ChildGap
			}
		}
		s.checkMainAxisOverflow(el, kids, "height", total, contentH)
		cursor := contentY + mainOffsetY(el.Layout.ChildAlignment.Y, contentH-total)
		for _, k := range kids {
			c := s.a.get(k)
			s.checkCrossAxisOverflow(c, "width", c.Dimensions.Width, contentW)
			cx := crossOffsetX(el.Layout.ChildAlignment.X, contentX, contentW, c.Dimensions.Width)
			s.position(k, Point{X: cx, Y: cursor})
			cursor += c.Dimensions.Height + el.Layout.ChildGap
		}
	}
}

func mainOffsetX(align HorizontalAlign, free float64) float64 {
	if free < 0 {
		free = 0
	}
	switch align {
	case AlignCenter:
		return free / 2
	case AlignRight:
		return free
	default:
		return 0
	}
}

func mainOffsetY(align VerticalAlign, free float64) float64 {
	if free < 0 {
		free = 0
	}
	switch align {
	case AlignMiddle:
		return free / 2
	case AlignBottom:
		return free
	default:
		return 0
	}
}

func crossOffsetY(align VerticalAlign, contentY, contentH, childH float64) float64 {
	switch align {
	case AlignMiddle:
		return contentY + (contentH-childH)/2
	case AlignBottom:
		return contentY + contentH - childH
	default:
		return contentY
	}
}

func crossOffsetX(align HorizontalAlign, contentX, contentW, childW float64) float64 {
	switch align {
	case AlignCenter:
		return contentX + (contentW-childW)/2
	case AlignRight:
		return contentX + contentW - childW
	default:
		return contentX
	}
}

// checkMainAxisOverflow flags a collective overflow on a container's main
// axis: the sum of its children's assigned sizes plus gaps exceeds the
// content size the container itself was given. Every child sharing that
// axis group is marked overconstrained and the warning is attributed to the
// container, since no single child is individually at fault.
func (s *solver) checkMainAxisOverflow(el *Element, kids []int, axis string, total, available float64) {
	if total <= available+overconstraintEps {
		return
	}
	for _, k := range kids {
		s.a.get(k).Overconstrained = true
	}
	s.warn(&OverconstraintWarning{ElementID: el.ID, Axis: axis, Assigned: available, Min: total})
}

// checkCrossAxisOverflow flags a single child whose cross-axis size exceeds
// the content size available on that axis, independent of how its siblings
// are sized. The warning is attributed to the child itself.
func (s *solver) checkCrossAxisOverflow(c *Element, axis string, size, available float64) {
	if size <= available+overconstraintEps {
		return
	}
	c.Overconstrained = true
	s.warn(&OverconstraintWarning{ElementID: c.ID, Axis: axis, Assigned: available, Min: size})
}
