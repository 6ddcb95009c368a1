package layout

import "math"

// DefaultMinClamp and DefaultMaxClamp are the clamp bounds applied to a SizingAxis
// variant when the caller does not specify one, matching the spec's default
// (0, 100000) point range.
const (
	DefaultMinClamp = 0.0
	DefaultMaxClamp = 100000.0
)

// Point is a 2D point in points, origin top-left, y downward.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in points.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned bounding box in points, origin top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// ContainsRect reports whether other is contained within r, up to the supplied
// epsilon tolerance on each edge.
func (r Rect) ContainsRect(other Rect, eps float64) bool {
	return other.X >= r.X-eps &&
		other.Y >= r.Y-eps &&
		other.Right() <= r.Right()+eps &&
		other.Bottom() <= r.Bottom()+eps
}

// Padding is a four-sided inset in points.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// Horizontal returns Left+Right.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top+Bottom.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

// UniformPadding builds a Padding with the same inset on all four sides.
func UniformPadding(n float64) Padding {
	return Padding{Left: n, Right: n, Top: n, Bottom: n}
}

// CornerRadius is a four-corner radius record in points.
type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// UniformCornerRadius builds a CornerRadius with the same radius on all corners.
func UniformCornerRadius(n float64) CornerRadius {
	return CornerRadius{TopLeft: n, TopRight: n, BottomRight: n, BottomLeft: n}
}

// Direction is the main axis a container stacks its children along.
type Direction int

const (
	Row Direction = iota
	Column
)

// HorizontalAlign is the per-line / per-group horizontal alignment.
type HorizontalAlign int

const (
	AlignLeft HorizontalAlign = iota
	AlignCenter
	AlignRight
)

// VerticalAlign is the per-element vertical alignment.
type VerticalAlign int

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// ChildAlignment is the combined cross/main alignment a container applies to its
// children.
type ChildAlignment struct {
	X HorizontalAlign
	Y VerticalAlign
}

// SizingKind discriminates the SizingAxis tagged union.
type SizingKind int

const (
	SizingFit SizingKind = iota
	SizingGrow
	SizingPercent
	SizingFixed
)

// SizingAxis is the per-axis sizing declaration: Fit(min,max), Grow(min,max),
// Percent(p,min,max) or Fixed(n). Fit, Grow and Percent set Min/Max to
// (0, 100000); the zero value is a Fit axis with Min and Max both 0.
type SizingAxis struct {
	Kind    SizingKind
	Min     float64
	Max     float64
	Percent float64 // only meaningful when Kind == SizingPercent, in [0,1]
	Fixed   float64 // only meaningful when Kind == SizingFixed
}

// Fit builds a Fit sizing axis with the default clamp range.
func Fit() SizingAxis { return SizingAxis{Kind: SizingFit, Min: DefaultMinClamp, Max: DefaultMaxClamp} }

// FitClamped builds a Fit sizing axis clamped to [min,max].
func FitClamped(min, max float64) SizingAxis {
	return SizingAxis{Kind: SizingFit, Min: min, Max: max}
}

// Grow builds a Grow sizing axis with the default clamp range.
func Grow() SizingAxis {
	return SizingAxis{Kind: SizingGrow, Min: DefaultMinClamp, Max: DefaultMaxClamp}
}

// GrowClamped builds a Grow sizing axis clamped to [min,max].
func GrowClamped(min, max float64) SizingAxis {
	return SizingAxis{Kind: SizingGrow, Min: min, Max: max}
}

// Percent builds a Percent sizing axis (p in [0,1]) with the default clamp range.
func Percent(p float64) SizingAxis {
	return SizingAxis{Kind: SizingPercent, Percent: p, Min: DefaultMinClamp, Max: DefaultMaxClamp}
}

// PercentClamped builds a Percent sizing axis clamped to [min,max].
func PercentClamped(p, min, max float64) SizingAxis {
	return SizingAxis{Kind: SizingPercent, Percent: p, Min: min, Max: max}
}

// Fixed builds a Fixed sizing axis of n points.
func Fixed(n float64) SizingAxis {
	return SizingAxis{Kind: SizingFixed, Fixed: n, Min: n, Max: n}
}

func clampf(v, min, max float64) float64 {
	if max < min {
		max = min
	}
	return math.Max(min, math.Min(max, v))
}

// clamp returns v clamped to the axis's [Min, Max] range.
func (s SizingAxis) clamp(v float64) float64 {
	return clampf(v, s.Min, s.Max)
}
