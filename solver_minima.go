package layout

import (
	"math"

	"github.com/arclayout/engine/text"
)

// computeMinima is the bottom-up (post-order DFS) intrinsic-size pass run
// twice per render: once before any width is known (§4.4 step 2) and once
// after text reflow has assigned real wrapped heights (§4.4 step 5). A TEXT
// leaf that has already been reflowed (WrappedLines is non-nil) just copies
// its resolved Dimensions back into MinDimensions rather than re-wrapping,
// which is what makes the second pass idempotent for unchanged widths.
func (s *solver) computeMinima(idx int) {
	el := s.a.get(idx)
	kids := s.a.childrenOf(idx)
	for _, k := range kids {
		s.computeMinima(k)
	}

	if len(kids) == 0 {
		s.computeLeafMinima(el)
		return
	}

	var w, h float64
	if el.Layout.Direction == Row {
		for i, k := range kids {
			c := s.a.get(k)
			w += c.MinDimensions.Width
			if c.MinDimensions.Height > h {
				h = c.MinDimensions.Height
			}
			if i < len(kids)-1 {
				w += el.Layout.ChildGap
			}
		}
	} else {
		for i, k := range kids {
			c := s.a.get(k)
			h += c.MinDimensions.Height
			if c.MinDimensions.Width > w {
				w = c.MinDimensions.Width
			}
			if i < len(kids)-1 {
				h += el.Layout.ChildGap
			}
		}
	}
	el.MinDimensions.Width = w + el.Layout.Padding.Horizontal()
	el.MinDimensions.Height = h + el.Layout.Padding.Vertical()

	if el.Layout.Width.Kind == SizingFit {
		el.MinDimensions.Width = el.Layout.Width.clamp(el.MinDimensions.Width)
	}
	if el.Layout.Height.Kind == SizingFit {
		el.MinDimensions.Height = el.Layout.Height.clamp(el.MinDimensions.Height)
	}
}

func (s *solver) computeLeafMinima(el *Element) {
	switch {
	case el.Kind == KindText:
		s.computeTextMinima(el)
	case el.Kind == KindImage && el.Layout.Width.Kind == SizingFit && el.Layout.Height.Kind == SizingFit && s.imageMetrics != nil:
		s.computeImageMinima(el)
	default:
		el.MinDimensions.Width = axisMin(el.Layout.Width)
		el.MinDimensions.Height = axisMin(el.Layout.Height)
	}
}

func (s *solver) computeImageMinima(el *Element) {
	size, err := s.imageMetrics.Describe(el.Image.Source)
	if err != nil {
		s.warn(&ImageUnavailable{ElementID: el.ID, Source: el.Image.Source, Err: err})
		el.MinDimensions.Width = axisMin(el.Layout.Width)
		el.MinDimensions.Height = axisMin(el.Layout.Height)
		return
	}
	el.MinDimensions.Width = el.Layout.Width.clamp(size.Width)
	el.MinDimensions.Height = el.Layout.Height.clamp(size.Height)
}

func (s *solver) computeTextMinima(el *Element) {
	if el.WrappedLines != nil {
		el.MinDimensions.Width = el.Dimensions.Width
		el.MinDimensions.Height = el.Dimensions.Height
		return
	}

	words := s.ensureMeasuredWords(el)

	if el.Layout.Width.Kind == SizingFixed {
		w := el.Layout.Width.Fixed
		avail := w - el.Layout.Padding.Horizontal()
		lines := text.Wrap(words, avail)
		el.MinDimensions.Width = w
		el.MinDimensions.Height = totalTextHeight(lines, el) + el.Layout.Padding.Vertical()
		return
	}

	lines := text.Wrap(words, math.Inf(1))
	var naturalW float64
	for _, l := range lines {
		if l.Width > naturalW {
			naturalW = l.Width
		}
	}
	naturalH := totalTextHeight(lines, el)
	el.MinDimensions.Width = naturalW + el.Layout.Padding.Horizontal()
	el.MinDimensions.Height = naturalH + el.Layout.Padding.Vertical()

	if el.Layout.Width.Kind == SizingFit {
		el.MinDimensions.Width = el.Layout.Width.clamp(el.MinDimensions.Width)
	}
	if el.Layout.Height.Kind == SizingFit {
		el.MinDimensions.Height = el.Layout.Height.clamp(el.MinDimensions.Height)
	}
}
