package layout

import (
	"golang.org/x/exp/slices"

	"github.com/arclayout/engine/text"
)

// emit walks the positioned tree in pre-order (§4.5) and returns the flat,
// per-page command vector. zIndex is assigned as pre-order depth so that a
// stable sort by zIndex reproduces back-to-front paint order while leaving
// siblings and unrelated subtrees at the same depth in their original
// emission order.
func emit(a *arena, pages []int, onWarning func(error)) []RenderCommand {
	var cmds []RenderCommand
	for _, root := range pages {
		var pageCmds []RenderCommand
		emitSubtree(a, root, 0, &pageCmds)
		slices.SortStableFunc(pageCmds, func(x, y RenderCommand) int {
			return x.ZIndex - y.ZIndex
		})
		cmds = append(cmds, pageCmds...)
	}
	return cmds
}

func emitSubtree(a *arena, idx, depth int, out *[]RenderCommand) {
	el := a.get(idx)

	switch el.Kind {
	case KindRectangle:
		if el.Layout.Background != nil {
			*out = append(*out, RenderCommand{
				PageID:      el.PageID,
				BoundingBox: clippedBox(a, idx),
				ZIndex:      depth,
				Payload:     RectanglePayload{Color: *el.Layout.Background, CornerRadius: el.Layout.CornerRadius.orNil()},
			})
		}
	case KindCircle:
		if el.Layout.Background != nil {
			*out = append(*out, RenderCommand{
				PageID:      el.PageID,
				BoundingBox: clippedBox(a, idx),
				ZIndex:      depth,
				Payload:     CirclePayload{Color: *el.Layout.Background},
			})
		}
	case KindText:
		emitTextLines(el, depth, out)
	case KindImage:
		*out = append(*out, RenderCommand{
			PageID:      el.PageID,
			BoundingBox: clippedBox(a, idx),
			ZIndex:      depth,
			Payload: ImagePayload{
				Source:       el.Image.Source,
				Fit:          el.Image.Fit,
				Opacity:      el.Image.Opacity,
				CornerRadius: el.Image.CornerRadius,
				Rounded:      el.Image.Rounded,
			},
		})
	}

	for _, k := range a.childrenOf(idx) {
		emitSubtree(a, k, depth+1, out)
	}
}

// emitTextLines emits one command per wrapped line, per §4.5: vertical
// position advances by lineHeight per line, horizontal position offsets by
// 0/half/full the leftover content width per LEFT/CENTER/RIGHT textAlign.
func emitTextLines(el *Element, depth int, out *[]RenderCommand) {
	lh := resolvedLineHeight(el)
	contentLeft := el.Position.X + el.Layout.Padding.Left
	contentWidth := el.Dimensions.Width - el.Layout.Padding.Horizontal()
	y := el.Position.Y + el.Layout.Padding.Top

	for _, line := range el.WrappedLines {
		x := contentLeft + textAlignOffset(el.Text.TextAlign, contentWidth, line.Width)
		*out = append(*out, RenderCommand{
			PageID:      el.PageID,
			BoundingBox: Rect{X: x, Y: y, Width: line.Width, Height: line.Height},
			ZIndex:      depth,
			Payload: TextPayload{
				Runs:       mergeRuns(line.Words),
				Color:      el.Text.Color,
				FontSize:   el.Text.FontSize,
				LineHeight: lh,
			},
		})
		y += lh
	}
}

// mergeRuns coalesces a line's raw word tokens into styled runs, joining any
// sequence of adjacent words that share the same bold/italic/emoji styling
// into a single run, so "**A** b *c*" emits three runs (bold "A", regular
// " b ", italic "c") rather than one per tokenizer word.
func mergeRuns(words []text.Word) []text.Word {
	var out []text.Word
	for _, w := range words {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Bold == w.Bold && last.Italic == w.Italic && last.IsEmoji == w.IsEmoji {
				last.Text += w.Text
				last.Width += w.Width
				if w.Height > last.Height {
					last.Height = w.Height
				}
				continue
			}
		}
		out = append(out, w)
	}
	return out
}

func textAlignOffset(align HorizontalAlign, contentWidth, lineWidth float64) float64 {
	switch align {
	case AlignCenter:
		return (contentWidth - lineWidth) / 2
	case AlignRight:
		return contentWidth - lineWidth
	default:
		return 0
	}
}

// clippedBox returns an element's bounding box, clipped to its parent's
// content box if the solver flagged it Overconstrained during positioning.
func clippedBox(a *arena, idx int) Rect {
	el := a.get(idx)
	box := Rect{X: el.Position.X, Y: el.Position.Y, Width: el.Dimensions.Width, Height: el.Dimensions.Height}
	if !el.Overconstrained {
		return box
	}
	parentIdx, ok := a.parentOf(idx)
	if !ok {
		return box
	}
	parent := a.get(parentIdx)
	bound := Rect{
		X:      parent.Position.X + parent.Layout.Padding.Left,
		Y:      parent.Position.Y + parent.Layout.Padding.Top,
		Width:  parent.Dimensions.Width - parent.Layout.Padding.Horizontal(),
		Height: parent.Dimensions.Height - parent.Layout.Padding.Vertical(),
	}
	return clipRect(box, bound)
}

func clipRect(box, bound Rect) Rect {
	x := maxF(box.X, bound.X)
	y := maxF(box.Y, bound.Y)
	right := minF(box.Right(), bound.Right())
	bottom := minF(box.Bottom(), bound.Bottom())
	return Rect{X: x, Y: y, Width: maxF(0, right-x), Height: maxF(0, bottom-y)}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
