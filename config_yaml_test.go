package layout

import "testing"

func TestLoadEngineOptionsYAMLOverridesBase(t *testing.T) {
	base := EngineOptions{
		PageWidthPt:  100,
		PageHeightPt: 100,
		Fonts:        FontConfig{Regular: "base-regular"},
		FontMetrics:  fixedCharMetrics{perChar: 6},
	}
	doc := []byte(`
pageWidthPt: 612
pageHeightPt: 792
lineSpacingFactor: 1.5
useImageForEmojis: true
fonts:
  regular: Helvetica
  bold: Helvetica-Bold
  italic: Helvetica-Oblique
`)

	got, err := LoadEngineOptionsYAML(doc, base)
	if err != nil {
		t.Fatalf("LoadEngineOptionsYAML: %v", err)
	}
	requireFloat(t, "PageWidthPt", got.PageWidthPt, 612)
	requireFloat(t, "PageHeightPt", got.PageHeightPt, 792)
	requireFloat(t, "LineSpacingFactor", got.LineSpacingFactor, 1.5)
	if !got.UseImageForEmojis {
		t.Fatal("UseImageForEmojis should be true")
	}
	if got.Fonts.Regular != "Helvetica" || got.Fonts.Bold != "Helvetica-Bold" || got.Fonts.Italic != "Helvetica-Oblique" {
		t.Fatalf("Fonts = %+v, want the YAML-supplied faces", got.Fonts)
	}
	// The FontMetrics port is never expressed in YAML and must survive from base.
	if got.FontMetrics == nil {
		t.Fatal("FontMetrics port should be carried over from base")
	}
}

func TestLoadEngineOptionsYAMLInvalidDocumentIsError(t *testing.T) {
	base := EngineOptions{PageWidthPt: 100, PageHeightPt: 100}
	if _, err := LoadEngineOptionsYAML([]byte("not: [valid yaml"), base); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
