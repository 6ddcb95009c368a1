package layout

import "github.com/arclayout/engine/text"

// reflowText visits every TEXT element in the tree (§4.4 step 4) and wraps
// its tokens against the width the X-distribution pass just assigned,
// setting both Dimensions.Height and MinDimensions.Height to the resulting
// text height. The subsequent computeMinima pass (§4.4 step 5) is itself a
// full post-order recompute, so a reflowed leaf's new height already
// propagates up every FIT-height ancestor in the chain, not just the
// immediate parent, without this pass needing to touch anything above the
// leaf itself.
func (s *solver) reflowText(idx int) {
	el := s.a.get(idx)
	if el.Kind == KindText {
		s.reflowOne(idx, el)
	}
	for _, k := range s.a.childrenOf(idx) {
		s.reflowText(k)
	}
}

func (s *solver) reflowOne(idx int, el *Element) {
	words := s.ensureMeasuredWords(el)
	avail := el.Dimensions.Width - el.Layout.Padding.Horizontal()
	lines := text.Wrap(words, avail)
	el.WrappedLines = lines

	h := totalTextHeight(lines, el) + el.Layout.Padding.Vertical()
	el.Dimensions.Height = h
	if el.MinDimensions.Height < h {
		el.MinDimensions.Height = h
	}
}
