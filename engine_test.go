package layout

import (
	"math"
	"testing"
)

// fixedCharMetrics reports a constant per-character advance width regardless
// of face or size, matching the "advance-width = 6 pt/char" convention the
// worked scenarios are specified against.
type fixedCharMetrics struct {
	perChar float64
}

func (f fixedCharMetrics) WidthOfString(_ string, _ float64, text string) (float64, error) {
	return float64(len([]rune(text))) * f.perChar, nil
}

func (f fixedCharMetrics) LineHeight(_ string, sizePt float64) (float64, error) {
	return sizePt * 1.2, nil
}

func newTestEngine(t *testing.T, pageW, pageH float64) *Engine {
	t.Helper()
	e, err := New(EngineOptions{
		PageWidthPt:  pageW,
		PageHeightPt: pageH,
		Fonts:        FontConfig{Regular: "regular", Bold: "bold", Italic: "italic"},
		FontMetrics:  fixedCharMetrics{perChar: 6},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func requireFloat(t *testing.T, label string, got, want float64) {
	t.Helper()
	if !almostEqual(got, want) {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
}

// S1 — Fixed fit.
func TestScenarioFixedFit(t *testing.T) {
	e := newTestEngine(t, 100, 100)
	if err := e.OpenPage(); err != nil {
		t.Fatalf("OpenPage: %v", err)
	}
	if err := e.Text("abc", Config{Width: Fit(), FontSize: 10}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	cmds, warnings, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	tree := e.Inspect()
	text := tree[0].Children[0]
	requireFloat(t, "text.width", text.Dimensions.Width, 18)
	requireFloat(t, "text.height", text.Dimensions.Height, 10)
	requireFloat(t, "text.x", text.Position.X, 0)
	requireFloat(t, "text.y", text.Position.Y, 0)

	if len(cmds) != 1 {
		t.Fatalf("expected one TEXT command, got %d", len(cmds))
	}
	payload, ok := cmds[0].Payload.(TextPayload)
	if !ok {
		t.Fatalf("expected TextPayload, got %T", cmds[0].Payload)
	}
	if len(payload.Runs) != 1 || payload.Runs[0].Text != "abc" {
		t.Fatalf("unexpected run set: %+v", payload.Runs)
	}
}

// TestFitTextNaturalSizeSpansHardBreakSegments guards against sizing a FIT
// TEXT element to its first natural line only: a hard break still produces
// more than one line even when wrapped at an unbounded width, and the Fit
// minimum must account for the widest of them and the summed height of all
// of them, not just the first.
func TestFitTextNaturalSizeSpansHardBreakSegments(t *testing.T) {
	e := newTestEngine(t, 200, 200)
	if err := e.OpenPage(); err != nil {
		t.Fatalf("OpenPage: %v", err)
	}
	if err := e.Text("a\nxxxxxxxxxxx", Config{Width: Fit(), Height: Fit(), FontSize: 10}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if _, _, err := e.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	text := e.Inspect()[0].Children[0]
	// the second segment is 66pt wide at 6pt/char, far wider than "a" alone;
	// a first-line-only natural size would have under-sized this to 6pt.
	requireFloat(t, "text.width", text.Dimensions.Width, 66)
	requireFloat(t, "text.height", text.Dimensions.Height, 22)
}

// S2 — Grow split.
func TestScenarioGrowSplit(t *testing.T) {
	e := newTestEngine(t, 100, 20)
	if err := e.OpenPage(); err != nil {
		t.Fatalf("OpenPage: %v", err)
	}
	if err := e.OpenContainer(KindRectangle, Config{Width: Fixed(100), Height: Fixed(20), Direction: Row}); err != nil {
		t.Fatalf("OpenContainer root: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := e.OpenContainer(KindRectangle, Config{Width: Grow(), Height: Grow()}); err != nil {
			t.Fatalf("OpenContainer child %d: %v", i, err)
		}
		if err := e.CloseContainer(); err != nil {
			t.Fatalf("CloseContainer child %d: %v", i, err)
		}
	}
	if err := e.CloseContainer(); err != nil {
		t.Fatalf("CloseContainer root: %v", err)
	}
	if _, _, err := e.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	root := e.Inspect()[0].Children[0]
	a, b := root.Children[0], root.Children[1]
	requireFloat(t, "a.width", a.Dimensions.Width, 50)
	requireFloat(t, "a.height", a.Dimensions.Height, 20)
	requireFloat(t, "a.x", a.Position.X, 0)
	requireFloat(t, "a.y", a.Position.Y, 0)
	requireFloat(t, "b.width", b.Dimensions.Width, 50)
	requireFloat(t, "b.x", b.Position.X, 50)
	requireFloat(t, "b.y", b.Position.Y, 0)
}

// S3 — Wrap and center.
func TestScenarioWrapAndCenter(t *testing.T) {
	e := newTestEngine(t, 100, 100)
	if err := e.OpenPage(); err != nil {
		t.Fatalf("OpenPage: %v", err)
	}
	if err := e.Text("ab cd ef", Config{Width: Fixed(30), FontSize: 10, TextAlign: AlignCenter}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	cmds, _, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	text := e.Inspect()[0].Children[0]
	requireFloat(t, "text.height", text.Dimensions.Height, 34)

	if len(cmds) != 3 {
		t.Fatalf("expected 3 wrapped lines, got %d", len(cmds))
	}
	for i, cmd := range cmds {
		requireFloat(t, "line width", cmd.BoundingBox.Width, 12)
		requireFloat(t, "line x-offset", cmd.BoundingBox.X, 9)
		if cmd.ZIndex != cmds[0].ZIndex {
			t.Fatalf("line %d has a different zIndex than the others", i)
		}
	}
}

// S4 — Padding and gap.
func TestScenarioPaddingAndGap(t *testing.T) {
	e := newTestEngine(t, 100, 100)
	if err := e.OpenPage(); err != nil {
		t.Fatalf("OpenPage: %v", err)
	}
	if err := e.OpenContainer(KindRectangle, Config{
		Width: Fixed(100), Height: Fixed(100),
		Direction: Column, Padding: UniformPadding(10), ChildGap: 5,
	}); err != nil {
		t.Fatalf("OpenContainer root: %v", err)
	}
	if err := e.OpenContainer(KindRectangle, Config{Width: Fixed(20), Height: Fixed(20)}); err != nil { // A
		t.Fatalf("OpenContainer A: %v", err)
	}
	if err := e.CloseContainer(); err != nil {
		t.Fatalf("CloseContainer A: %v", err)
	}
	if err := e.OpenContainer(KindRectangle, Config{Width: Fixed(20), Height: Grow()}); err != nil { // B
		t.Fatalf("OpenContainer B: %v", err)
	}
	if err := e.CloseContainer(); err != nil {
		t.Fatalf("CloseContainer B: %v", err)
	}
	if err := e.OpenContainer(KindRectangle, Config{Width: Fixed(20), Height: Fixed(20)}); err != nil { // C
		t.Fatalf("OpenContainer C: %v", err)
	}
	if err := e.CloseContainer(); err != nil {
		t.Fatalf("CloseContainer C: %v", err)
	}
	if err := e.CloseContainer(); err != nil {
		t.Fatalf("CloseContainer root: %v", err)
	}
	if _, _, err := e.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	root := e.Inspect()[0].Children[0]
	a, b, c := root.Children[0], root.Children[1], root.Children[2]
	requireFloat(t, "a.y", a.Position.Y, 10)
	requireFloat(t, "b.y", b.Position.Y, 35)
	requireFloat(t, "b.height", b.Dimensions.Height, 30)
	requireFloat(t, "c.y", c.Position.Y, 70)
}

// S5 — Percent cross-axis.
func TestScenarioPercentCrossAxis(t *testing.T) {
	e := newTestEngine(t, 100, 50)
	if err := e.OpenPage(); err != nil {
		t.Fatalf("OpenPage: %v", err)
	}
	if err := e.OpenContainer(KindRectangle, Config{Width: Fixed(100), Height: Fixed(50), Direction: Row}); err != nil {
		t.Fatalf("OpenContainer root: %v", err)
	}
	if err := e.OpenContainer(KindRectangle, Config{Width: Percent(0.25), Height: Fixed(50)}); err != nil {
		t.Fatalf("OpenContainer child: %v", err)
	}
	if err := e.CloseContainer(); err != nil {
		t.Fatalf("CloseContainer child: %v", err)
	}
	if err := e.CloseContainer(); err != nil {
		t.Fatalf("CloseContainer root: %v", err)
	}
	if _, _, err := e.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	child := e.Inspect()[0].Children[0].Children[0]
	requireFloat(t, "child.width", child.Dimensions.Width, 25)
}

// S6 — Rich text. Adjacent same-style word tokens are merged into a single
// run, so "**A** b *c*" emits exactly three runs: bold "A", regular " b ",
// italic "c".
func TestScenarioRichText(t *testing.T) {
	e := newTestEngine(t, 100, 100)
	if err := e.OpenPage(); err != nil {
		t.Fatalf("OpenPage: %v", err)
	}
	if err := e.Text("**A** b *c*", Config{Width: Fixed(100), FontSize: 10}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	cmds, _, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(cmds) != 1 {
		t.Fatalf("expected one line, got %d commands", len(cmds))
	}
	payload := cmds[0].Payload.(TextPayload)

	if len(payload.Runs) != 3 {
		t.Fatalf("expected 3 merged runs, got %d: %+v", len(payload.Runs), payload.Runs)
	}

	var rebuilt string
	for _, w := range payload.Runs {
		rebuilt += w.Text
	}
	if rebuilt != "A b c" {
		t.Fatalf("reconstructed text = %q, want %q", rebuilt, "A b c")
	}

	first := payload.Runs[0]
	if !first.Bold || first.Italic || first.Text != "A" {
		t.Fatalf("first run should be bold 'A', got %+v", first)
	}
	mid := payload.Runs[1]
	if mid.Bold || mid.Italic || mid.Text != " b " {
		t.Fatalf("middle run should be regular ' b ', got %+v", mid)
	}
	last := payload.Runs[2]
	if !last.Italic || last.Bold || last.Text != "c" {
		t.Fatalf("last run should be italic 'c', got %+v", last)
	}
}

func TestRenderBeforeOpenPageIsUsageError(t *testing.T) {
	e := newTestEngine(t, 100, 100)
	if _, _, err := e.Render(); err == nil {
		t.Fatal("expected a UsageError rendering with no page opened")
	}
}

func TestCloseContainerOnPageRootIsUsageError(t *testing.T) {
	e := newTestEngine(t, 100, 100)
	if err := e.OpenPage(); err != nil {
		t.Fatalf("OpenPage: %v", err)
	}
	if err := e.CloseContainer(); err == nil {
		t.Fatal("expected a UsageError closing the page root")
	}
}
