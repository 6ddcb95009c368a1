package text

import (
	"fmt"
	"math"
)

// FontMetrics mirrors the engine's FontMetrics port (structurally, to avoid
// an import cycle): pure advance-width and nominal-line-height lookups.
type FontMetrics interface {
	WidthOfString(faceID string, sizePt float64, text string) (float64, error)
	LineHeight(faceID string, sizePt float64) (float64, error)
}

// FaceResolver mirrors the engine's face-selection table (bold/italic/emoji
// -> face id), per §4.2's table, collapsed to the single id the measurer
// needs.
type FaceResolver interface {
	FaceID(bold, italic, emoji bool) string
}

// MeasureError records that FontMetrics failed or returned an invalid width
// for a given token; the caller falls back to a heuristic width.
type MeasureError struct {
	Face string
	Text string
	Err  error
}

func (e *MeasureError) Error() string {
	return fmt.Sprintf("text: measurement failed for face %q text %q: %v", e.Face, e.Text, e.Err)
}

func (e *MeasureError) Unwrap() error { return e.Err }

// Measurer assigns widths to tokens using a FaceResolver and FontMetrics
// port, falling back to the §7 heuristic (len(text)*fontSize/2) and invoking
// OnWarning on measurement failure.
type Measurer struct {
	Faces     FaceResolver
	Metrics   FontMetrics
	OnWarning func(error)
}

// Measure returns a copy of words with Width and Height populated at the
// given font size.
func (m *Measurer) Measure(words []Word, fontSize float64) []Word {
	out := make([]Word, len(words))
	for i, w := range words {
		out[i] = w
		faceID := m.Faces.FaceID(w.Bold, w.Italic, w.IsEmoji)
		width, err := m.Metrics.WidthOfString(faceID, fontSize, w.Text)
		if err != nil || invalidWidth(width) {
			if m.OnWarning != nil {
				cause := err
				if cause == nil {
					cause = fmt.Errorf("invalid width %v", width)
				}
				m.OnWarning(&MeasureError{Face: faceID, Text: w.Text, Err: cause})
			}
			width = heuristicWidth(w.Text, fontSize)
		}
		out[i].Width = width
		out[i].Height = fontSize
	}
	return out
}

func invalidWidth(w float64) bool {
	return math.IsNaN(w) || w < 0
}

func heuristicWidth(text string, fontSize float64) float64 {
	return float64(len([]rune(text))) * fontSize / 2
}
