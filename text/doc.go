// Package text implements the markdown-lite tokenizer, word measurer and
// greedy line wrapper that feed the layout engine's text-reflow pass. It has
// no dependency on the root layout package so it can be tested in isolation;
// FontMetrics and FaceResolver are mirrored locally (structural typing) to
// avoid an import cycle with the engine that consumes this package.
package text
