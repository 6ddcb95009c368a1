package layout

import "github.com/arclayout/engine/text"

// RenderCommand is the flat, z-ordered unit the engine emits for a consumer
// to turn into PDF page-stream bytes (or any other sink).
type RenderCommand struct {
	PageID      string
	BoundingBox Rect
	ZIndex      int
	Payload     any // one of RectanglePayload, CirclePayload, TextPayload, ImagePayload
}

// RectanglePayload draws a filled, optionally rounded rectangle.
type RectanglePayload struct {
	Color        Color
	CornerRadius *CornerRadius
}

// CirclePayload draws a filled circle.
type CirclePayload struct {
	Color Color
}

// TextPayload draws one wrapped line's worth of styled runs.
type TextPayload struct {
	Runs       []text.Word
	Color      Color
	FontSize   float64
	LineHeight float64
}

// ImagePayload references an opaque, engine-forwarded image source; the
// engine never decodes image bytes.
type ImagePayload struct {
	Source       any
	Fit          FitMode
	Opacity      float64
	CornerRadius *CornerRadius
	Rounded      bool
}
