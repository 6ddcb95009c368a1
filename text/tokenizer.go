package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/oliverpool/emojilexer"
)

// isForcedEmojiCluster reports whether a grapheme cluster is one the
// tokenizer always treats as emoji even when it falls outside the Unicode Emoji_Presentation property: digit
// keycaps (e.g. "1️⃣") and standalone variation-selector-16-bearing
// symbols (e.g. "❤️").
func isForcedEmojiCluster(cluster string) bool {
	if strings.HasSuffix(cluster, "⃣") { // combining enclosing keycap
		return true
	}
	if strings.Contains(cluster, "️") { // emoji variation selector
		return true
	}
	return false
}

// Tokenize converts a UTF-8 string containing `**bold**`/`*italic*` markers
// into an ordered sequence of styled Word tokens. Whitespace runs and
// explicit '\n' breaks are preserved as distinct tokens. Each invalid UTF-8
// byte is replaced by one Unicode replacement character, following Go's
// native range-over-string decoding.
func Tokenize(s string) []Word {
	s = toValidUTF8(s)

	var words []Word
	bold, italic := false, false
	var buf []rune

	flush := func() {
		if len(buf) == 0 {
			return
		}
		run := string(buf)
		buf = buf[:0]
		words = append(words, styleRun(run, bold, italic)...)
	}

	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\n':
			flush()
			words = append(words, Word{Text: "\n", IsHardBreak: true})
			i++
		case r == '*' && i+1 < len(runes) && runes[i+1] == '*':
			flush()
			bold = !bold
			i += 2
		case r == '*':
			flush()
			italic = !italic
			i++
		default:
			buf = append(buf, r)
			i++
		}
	}
	flush()
	return words
}

func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				b.WriteRune(utf8.RuneError)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// styleRun splits one style-homogeneous run of text into Word tokens,
// classifying emoji graphemes via the emojilexer port and splitting the
// remaining plain text on whitespace-run boundaries.
func styleRun(s string, bold, italic bool) []Word {
	var out []Word

	emitText := func(txt string) {
		out = append(out, splitWhitespaceRuns(txt, bold, italic)...)
	}
	emitEmoji := func(emj string) {
		seg := graphemes.FromString(emj)
		for seg.Next() {
			cluster := seg.Value()
			if cluster == "" {
				continue
			}
			out = append(out, Word{Text: cluster, Bold: bold, Italic: italic, IsEmoji: true})
		}
	}

	// A forced-emoji cluster (keycap / VS16 symbol) may not be classified by
	// the Unicode-presentation-driven emojilexer, so it is peeled off ahead
	// of the general lexer pass.
	var plain strings.Builder
	seg := graphemes.FromString(s)
	for seg.Next() {
		cluster := seg.Value()
		if isForcedEmojiCluster(cluster) {
			if plain.Len() > 0 {
				emojilexer.Lexer(plain.String(), emitText, emitEmoji)
				plain.Reset()
			}
			emitEmoji(cluster)
			continue
		}
		plain.WriteString(cluster)
	}
	if plain.Len() > 0 {
		emojilexer.Lexer(plain.String(), emitText, emitEmoji)
	}
	return out
}

func splitWhitespaceRuns(s string, bold, italic bool) []Word {
	if s == "" {
		return nil
	}
	var out []Word
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		ws := unicode.IsSpace(runes[i])
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) == ws {
			j++
		}
		out = append(out, Word{
			Text:         string(runes[i:j]),
			Bold:         bold,
			Italic:       italic,
			IsWhitespace: ws,
		})
		i = j
	}
	return out
}
