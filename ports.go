package layout

import "math"

// FaceRole names a logical font role the engine asks the FontMetrics port to
// resolve a concrete face id for.
type FaceRole int

const (
	FaceRegular FaceRole = iota
	FaceBold
	FaceItalic
	FaceBoldItalic
	FaceEmoji
)

// FontConfig maps logical roles to face ids understood by the FontMetrics
// port. Emoji is optional; if absent, emoji tokens fall back to Regular.
type FontConfig struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
	Emoji      string // optional
}

// FaceID resolves just the face id for a combination of bold/italic/emoji
// flags, satisfying text.FaceResolver by dropping FaceFor's second return
// value.
func (f FontConfig) FaceID(bold, italic, emoji bool) string {
	id, _ := f.FaceFor(bold, italic, emoji)
	return id
}

// FaceFor resolves the face id for a combination of bold/italic/emoji flags,
// following the fallback chain boldItalic -> bold -> regular and
// italic -> regular from spec §6.
func (f FontConfig) FaceFor(bold, italic, emoji bool) (id string, role FaceRole) {
	if emoji {
		if f.Emoji != "" {
			return f.Emoji, FaceEmoji
		}
		bold, italic = false, false // regular face, no emoji face configured
	}
	switch {
	case bold && italic:
		if f.BoldItalic != "" {
			return f.BoldItalic, FaceBoldItalic
		}
		if f.Bold != "" {
			return f.Bold, FaceBold
		}
		return f.Regular, FaceRegular
	case bold:
		if f.Bold != "" {
			return f.Bold, FaceBold
		}
		return f.Regular, FaceRegular
	case italic:
		if f.Italic != "" {
			return f.Italic, FaceItalic
		}
		return f.Regular, FaceRegular
	default:
		return f.Regular, FaceRegular
	}
}

// FontMetrics is the external collaborator the engine consumes for all text
// measurement. Implementations must be pure over (faceID, sizePt, text).
type FontMetrics interface {
	// WidthOfString returns the advance width, in points, of text set in
	// faceID at sizePt.
	WidthOfString(faceID string, sizePt float64, text string) (float64, error)
	// LineHeight returns the nominal line box height, in points, for faceID
	// at sizePt. The engine may override this via explicit config.
	LineHeight(faceID string, sizePt float64) (float64, error)
}

// ImageSize is the intrinsic size reported by the ImageMetrics port.
type ImageSize struct {
	Width, Height float64
}

// ImageMetrics is the external collaborator consulted for intrinsic image
// sizing, used only when both axes of an IMAGE element are Fit.
type ImageMetrics interface {
	Describe(source any) (ImageSize, error)
}

// RenderCommandConsumer is the external collaborator that receives the
// engine's output. The core never calls it directly; render() returns the
// command vector and the caller forwards it, but a consumer is provided as a
// named interface so host applications can depend on a stable port rather
// than a concrete slice type.
type RenderCommandConsumer interface {
	Consume(pageID string, commands []RenderCommand) error
}

// heuristicFontMetrics is a FontMetrics implementing the MeasurementError
// fallback formula: len(text)*fontSize/2 per spec §7, and a lineHeight of
// 1.2*fontSize. Nothing in the engine calls it; the fallback the engine
// actually applies on a failed measurement is text.Measurer's own
// heuristic width, which uses the same formula.
type heuristicFontMetrics struct{}

func (heuristicFontMetrics) WidthOfString(_ string, sizePt float64, text string) (float64, error) {
	return float64(len([]rune(text))) * sizePt / 2, nil
}

func (heuristicFontMetrics) LineHeight(_ string, sizePt float64) (float64, error) {
	return sizePt * 1.2, nil
}

func isInvalidMeasurement(w float64) bool {
	return math.IsNaN(w) || w < 0
}
