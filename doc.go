// Package layout implements a declarative document layout engine: a tree of
// nested container, text, image and shape nodes is transformed into a flat,
// absolutely positioned, z-ordered vector of render commands suitable for
// emission into a PDF page stream.
//
// A host application opens an Engine, declares pages and nested containers
// through a builder surface (OpenPage, OpenContainer, Text, Image), then
// calls Render to run the multi-pass constraint solver and command emitter
// over the accumulated tree. The engine never draws anything itself; it
// hands the caller a pageId-ordered command vector and never touches font
// shaping, image decoding or PDF serialization directly, delegating those
// concerns to the FontMetrics, ImageMetrics and RenderCommandConsumer ports.
//
// # Sizing
//
// Every container's width and height is declared as one of four sizing
// axes: Fit (shrink to content), Grow (share of the parent's free space),
// Percent (of the parent's content box) or Fixed (absolute points), each
// optionally clamped to a (min, max) range.
//
// # Text
//
// TEXT leaves accept a small markdown-lite syntax (**bold**, *italic*,
// literal \n hard breaks) and are greedily wrapped against whatever width
// the solver assigns, reflowing automatically as ancestors resize.
package layout
