package layout

import (
	"fmt"

	"github.com/arclayout/engine/text"
)

// EngineOptions configures a new Engine: page dimensions, the font-face
// fallback table, line spacing, emoji rendering policy, and the external
// ports (§6). FontMetrics is required; Logger, ImageMetrics and
// UseImageForEmojis are optional.
type EngineOptions struct {
	PageWidthPt       float64
	PageHeightPt      float64
	Fonts             FontConfig
	LineSpacingFactor float64
	UseImageForEmojis bool
	Logger            Logger
	FontMetrics       FontMetrics
	ImageMetrics      ImageMetrics
}

func (o EngineOptions) resolvedLineSpacing() float64 {
	if o.LineSpacingFactor > 0 {
		return o.LineSpacingFactor
	}
	return 1.2
}

// Engine owns the element arena, the open-container stack, the accumulated
// warnings, and the port references for a single render() lifecycle. There
// is no global mutable context: every operation is a method on an explicit
// Engine value.
type Engine struct {
	opts EngineOptions

	arena *arena
	ids   *idGenerator

	pages         []int
	containerStack []int
	currentPageID string

	warnings []Warning
	measurer *text.Measurer
}

// New constructs an Engine. It returns a UsageError if FontMetrics is nil or
// the page dimensions are non-positive.
func New(opts EngineOptions) (*Engine, error) {
	if opts.FontMetrics == nil {
		return nil, &UsageError{Op: "engine", Message: "FontMetrics port is required"}
	}
	if opts.PageWidthPt <= 0 || opts.PageHeightPt <= 0 {
		return nil, &UsageError{Op: "engine", Message: "page dimensions must be positive"}
	}
	if opts.Logger == nil {
		opts.Logger = DefaultLogger
	}
	e := &Engine{
		opts:  opts,
		arena: newArena(),
		ids:   newIDGenerator(),
	}
	e.measurer = &text.Measurer{
		Faces:   opts.Fonts,
		Metrics: safeFontMetrics{opts.FontMetrics},
		OnWarning: func(err error) {
			if me, ok := err.(*text.MeasureError); ok {
				err = &MeasurementError{Face: me.Face, Text: me.Text, Err: me.Err}
			}
			e.recordWarning(err)
		},
	}
	return e, nil
}

func (e *Engine) recordWarning(err error) {
	e.warnings = append(e.warnings, Warning{Err: err})
	e.opts.Logger.Warnf("%v", err)
}

func (e *Engine) usageErr(op, msg string) error {
	return &UsageError{Op: op, Message: msg}
}

// OpenPage starts a new top-level page. size optionally overrides the
// engine's default page dimensions for this page only. A page may only be
// opened once every container from the previous page has been closed: a
// child never crosses a page boundary.
func (e *Engine) OpenPage(size ...Size) error {
	if len(e.containerStack) > 1 {
		return e.usageErr("openPage", "a container is still open from the previous page")
	}
	w, h := e.opts.PageWidthPt, e.opts.PageHeightPt
	if len(size) > 0 {
		w, h = size[0].Width, size[0].Height
	}
	if w <= 0 || h <= 0 {
		return e.usageErr("openPage", "page dimensions must be positive")
	}
	pageID := fmt.Sprintf("page-%d", len(e.pages)+1)
	el := &Element{
		Kind:   KindRectangle,
		PageID: pageID,
		Layout: LayoutConfig{
			Width:     Fixed(w),
			Height:    Fixed(h),
			Direction: Column,
		},
	}
	el.ID = e.ids.next(el.Kind)
	idx := e.arena.add(el, -1)
	e.pages = append(e.pages, idx)
	e.currentPageID = pageID
	e.containerStack = []int{idx}
	return nil
}

// OpenContainer opens a new RECTANGLE or CIRCLE container as a child of the
// currently open container, and pushes it onto the open-container stack.
func (e *Engine) OpenContainer(kind ElementKind, cfg Config) error {
	if kind != KindRectangle && kind != KindCircle {
		return e.usageErr("openContainer", "kind must be RECTANGLE or CIRCLE")
	}
	if len(e.containerStack) == 0 {
		return e.usageErr("openContainer", "no page is open")
	}
	if err := validateConfig("openContainer", cfg); err != nil {
		return err
	}
	parent := e.containerStack[len(e.containerStack)-1]
	el := e.newElement(kind, cfg)
	idx := e.arena.add(el, parent)
	e.containerStack = append(e.containerStack, idx)
	return nil
}

// CloseContainer closes the most recently opened container. Closing with an
// empty stack, or closing the page root itself, is a UsageError.
func (e *Engine) CloseContainer() error {
	if len(e.containerStack) == 0 {
		return e.usageErr("closeContainer", "no container is open")
	}
	if len(e.containerStack) == 1 {
		return e.usageErr("closeContainer", "cannot close the page root; open a new page instead")
	}
	e.containerStack = e.containerStack[:len(e.containerStack)-1]
	return nil
}

// Text adds a TEXT leaf to the currently open container.
func (e *Engine) Text(content string, cfg Config) error {
	if len(e.containerStack) == 0 {
		return e.usageErr("text", "no page is open")
	}
	if err := validateConfig("text", cfg); err != nil {
		return err
	}
	parent := e.containerStack[len(e.containerStack)-1]
	el := e.newElement(KindText, cfg)
	fontSize := cfg.FontSize
	if fontSize <= 0 {
		fontSize = 10
	}
	lineSpacing := cfg.LineSpacingFactor
	if lineSpacing <= 0 {
		lineSpacing = e.opts.resolvedLineSpacing()
	}
	el.Text = &TextConfig{
		Content:           content,
		FontSize:          fontSize,
		LineSpacingFactor: lineSpacing,
		LineHeight:        cfg.LineHeight,
		TextAlign:         cfg.TextAlign,
		Color:             cfg.Color,
	}
	e.arena.add(el, parent)
	return nil
}

// Image adds an IMAGE leaf to the currently open container.
func (e *Engine) Image(source any, cfg Config) error {
	if len(e.containerStack) == 0 {
		return e.usageErr("image", "no page is open")
	}
	if cfg.Opacity < 0 || cfg.Opacity > 1 {
		return e.usageErr("image", "opacity must be in [0,1]")
	}
	if err := validateConfig("image", cfg); err != nil {
		return err
	}
	parent := e.containerStack[len(e.containerStack)-1]
	el := e.newElement(KindImage, cfg)
	el.Image = &ImageConfig{
		Source:       source,
		Fit:          cfg.Fit,
		Opacity:      cfg.Opacity,
		CornerRadius: cfg.CornerRadius.orNil(),
		Rounded:      cfg.Rounded,
	}
	e.arena.add(el, parent)
	return nil
}

// Render runs the solver and emitter over the accumulated element tree and
// returns the command vector, accumulated warnings, and a non-nil error only
// for a UsageError (no page opened, or a container left open).
func (e *Engine) Render() ([]RenderCommand, []Warning, error) {
	if len(e.pages) == 0 {
		return nil, nil, e.usageErr("render", "no page has been opened")
	}
	if len(e.containerStack) > 1 {
		return nil, nil, e.usageErr("render", "a container is still open")
	}
	s := newSolver(e.arena, e.measurer, e.opts.resolvedLineSpacing(), e.opts.ImageMetrics, e.recordWarning)
	s.run(e.pages)
	cmds := emit(e.arena, e.pages, e.recordWarning)
	return cmds, e.warnings, nil
}

func (e *Engine) newElement(kind ElementKind, cfg Config) *Element {
	el := &Element{
		Kind:   kind,
		PageID: e.currentPageID,
		Layout: LayoutConfig{
			Width:          cfg.Width,
			Height:         cfg.Height,
			Padding:        cfg.Padding,
			ChildGap:       cfg.ChildGap,
			ChildAlignment: cfg.ChildAlignment,
			Direction:      cfg.Direction,
			Background:     cfg.FillColor,
			CornerRadius:   cfg.CornerRadius,
		},
	}
	if cfg.PageID != "" {
		el.PageID = cfg.PageID
	}
	if cfg.ID != "" {
		el.ID = cfg.ID
	} else {
		el.ID = e.ids.next(kind)
	}
	return el
}

func (c CornerRadius) orNil() *CornerRadius {
	if c == (CornerRadius{}) {
		return nil
	}
	cp := c
	return &cp
}

func validateConfig(op string, cfg Config) error {
	if cfg.Width.Kind == SizingFixed && cfg.Width.Fixed < 0 {
		return &UsageError{Op: op, Message: "width must not be negative"}
	}
	if cfg.Height.Kind == SizingFixed && cfg.Height.Fixed < 0 {
		return &UsageError{Op: op, Message: "height must not be negative"}
	}
	if cfg.ChildGap < 0 {
		return &UsageError{Op: op, Message: "childGap must not be negative"}
	}
	return nil
}

// safeFontMetrics recovers from a panicking FontMetrics port and turns it
// into an error, satisfying §7's "the font port threw" MeasurementError
// trigger without requiring every port implementation to guard itself.
type safeFontMetrics struct {
	inner FontMetrics
}

func (s safeFontMetrics) WidthOfString(faceID string, sizePt float64, text string) (width float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("font metrics port panicked: %v", r)
		}
	}()
	return s.inner.WidthOfString(faceID, sizePt, text)
}

func (s safeFontMetrics) LineHeight(faceID string, sizePt float64) (height float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("font metrics port panicked: %v", r)
		}
	}()
	return s.inner.LineHeight(faceID, sizePt)
}
