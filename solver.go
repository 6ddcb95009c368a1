package layout

import (
	"github.com/arclayout/engine/text"
)

// axisKind discriminates which geometric axis a distribute/minima helper is
// currently operating on. The solver runs its X and Y passes with the same
// code paths, swapping only which axis is "main" for a given container's
// Direction.
type axisKind int

const (
	axisX axisKind = iota
	axisY
)

// solver runs the seven-pass layout algorithm over one or more page roots:
// root init, intrinsic minima, distribute-X, text reflow, recompute minima,
// distribute-Y, position. Every pass is a full tree traversal; there is no
// incremental relayout.
type solver struct {
	a                 *arena
	measurer          *text.Measurer
	lineSpacingFactor float64
	imageMetrics      ImageMetrics
	warn              func(error)
}

func newSolver(a *arena, measurer *text.Measurer, lineSpacingFactor float64, imageMetrics ImageMetrics, warn func(error)) *solver {
	return &solver{
		a:                 a,
		measurer:          measurer,
		lineSpacingFactor: lineSpacingFactor,
		imageMetrics:      imageMetrics,
		warn:              warn,
	}
}

// run executes the full pass order for every page root in the tree.
func (s *solver) run(pages []int) {
	for _, root := range pages {
		s.initRoot(root)
	}
	for _, root := range pages {
		s.computeMinima(root)
	}
	for _, root := range pages {
		s.distributeAxis(root, axisX)
	}
	for _, root := range pages {
		s.reflowText(root)
	}
	for _, root := range pages {
		s.computeMinima(root)
	}
	for _, root := range pages {
		s.distributeAxis(root, axisY)
	}
	for _, root := range pages {
		s.position(root, Point{})
	}
}

// initRoot sets a root's own dimensions from its configured sizing axis.
// OpenPage always builds a page root with Fixed(width)/Fixed(height), so the
// SizingFixed branch is the only one ever reached in practice. For other
// kinds a Grow root takes its axis Max, a Percent root its clamped Max, and
// a Fit root 0; no page size is consulted.
func (s *solver) initRoot(idx int) {
	el := s.a.get(idx)
	el.Dimensions.Width = initRootAxis(el.Layout.Width)
	el.Dimensions.Height = initRootAxis(el.Layout.Height)
}

func initRootAxis(axis SizingAxis) float64 {
	switch axis.Kind {
	case SizingFixed:
		return axis.Fixed
	case SizingPercent:
		return axis.clamp(axis.Max)
	case SizingGrow:
		return axis.Max
	default:
		return 0
	}
}

// ensureMeasuredWords tokenizes and measures a TEXT element's content once,
// caching the result on the element (the cache is never cleared) since the
// minima pass runs twice over the same content.
func (s *solver) ensureMeasuredWords(el *Element) []text.Word {
	if el.measuredWords != nil {
		return el.measuredWords
	}
	raw := text.Tokenize(el.Text.Content)
	el.measuredWords = s.measurer.Measure(raw, el.Text.FontSize)
	return el.measuredWords
}

func resolvedLineHeight(el *Element) float64 {
	if el.Text.LineHeight != nil {
		return *el.Text.LineHeight
	}
	return el.Text.FontSize * el.Text.resolvedLineSpacing()
}

// totalTextHeight sums wrapped line heights plus one inter-line gap per
// adjacent pair, where the gap is lineHeight minus that line's own height.
func totalTextHeight(lines []text.Line, el *Element) float64 {
	lh := resolvedLineHeight(el)
	var total float64
	for i, l := range lines {
		total += l.Height
		if i < len(lines)-1 {
			total += lh - l.Height
		}
	}
	return total
}

func axisMin(axis SizingAxis) float64 {
	if axis.Kind == SizingFit {
		return axis.Min
	}
	return 0
}

func isMainAxis(dir Direction, axis axisKind) bool {
	return (dir == Row && axis == axisX) || (dir == Column && axis == axisY)
}

func dimOf(sz Size, axis axisKind) float64 {
	if axis == axisX {
		return sz.Width
	}
	return sz.Height
}

func setDim(el *Element, axis axisKind, v float64) {
	if axis == axisX {
		el.Dimensions.Width = v
	} else {
		el.Dimensions.Height = v
	}
}

func axisOf(l LayoutConfig, axis axisKind) SizingAxis {
	if axis == axisX {
		return l.Width
	}
	return l.Height
}

func paddingOf(p Padding, axis axisKind) float64 {
	if axis == axisX {
		return p.Horizontal()
	}
	return p.Vertical()
}
