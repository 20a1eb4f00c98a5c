package doctree

import "strings"

// Inline emphasis handling for the text extractor. Emphasis spans are parsed
// into typed runs and reconstructed back into literal markdown punctuation,
// so that marked-up prose round-trips through the extractor in canonical
// form instead of losing its markup. Unbalanced or malformed markers degrade
// to literal text, never an error.

type spanStyle uint8

const (
	styleCode spanStyle = 1 << iota
	styleBold
	styleItalic
)

// span is one run of text carrying a set of emphasis markers.
type span struct {
	text  string
	style spanStyle
}

// normalizeInline reconstructs the inline markup of s in canonical form:
// `code`, **bold**, *italic*, ***bold italic***. Underscore synonyms are
// rewritten to the asterisk forms.
func normalizeInline(s string) string {
	return renderInline(parseInline(s))
}

// parseInline splits s into emphasis spans. Inline code is taken literally;
// emphasis spans nest, with styles accumulating onto the inner runs.
func parseInline(s string) []span {
	return parseSpans(s, 0)
}

func parseSpans(s string, style spanStyle) []span {
	var spans []span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, span{text: plain.String(), style: style})
			plain.Reset()
		}
	}

	var prev byte
	for i := 0; i < len(s); {
		if m, ok := matchSpan(s[i:], prev); ok {
			flush()
			if m.style&styleCode != 0 {
				// Code content is literal; no nested emphasis.
				spans = append(spans, span{text: m.content, style: style | styleCode})
			} else {
				spans = append(spans, parseSpans(m.content, style|m.style)...)
			}
			prev = s[i+m.length-1]
			i += m.length
			continue
		}
		plain.WriteByte(s[i])
		prev = s[i]
		i++
	}
	flush()
	return spans
}

type spanMatch struct {
	content string
	style   spanStyle
	length  int
}

var spanMarkers = []struct {
	tok   string
	style spanStyle
}{
	{"`", styleCode},
	{"***", styleBold | styleItalic},
	{"___", styleBold | styleItalic},
	{"**", styleBold},
	{"__", styleBold},
	{"*", styleItalic},
	{"_", styleItalic},
}

// matchSpan attempts to match an emphasis span at the start of s. prev is
// the byte immediately before s in the enclosing text (0 at the start).
func matchSpan(s string, prev byte) (spanMatch, bool) {
	for _, m := range spanMarkers {
		if !strings.HasPrefix(s, m.tok) {
			continue
		}
		underscore := m.tok[0] == '_'
		// Underscores inside words (snake_case) are not emphasis.
		if underscore && isAlnum(prev) {
			continue
		}
		rest := s[len(m.tok):]
		end := strings.Index(rest, m.tok)
		if end <= 0 {
			continue
		}
		content := rest[:end]
		if strings.Contains(content, "\n") {
			continue
		}
		if m.style != styleCode {
			if content[0] == ' ' || content[len(content)-1] == ' ' {
				continue
			}
		}
		length := 2*len(m.tok) + len(content)
		if underscore && length < len(s) && isAlnum(s[length]) {
			continue
		}
		return spanMatch{content: content, style: m.style, length: length}, true
	}
	return spanMatch{}, false
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// renderInline reconstructs markdown punctuation around each span. Inline
// code wins when a span carries multiple markers.
func renderInline(spans []span) string {
	var sb strings.Builder
	for _, sp := range spans {
		switch {
		case sp.style&styleCode != 0:
			sb.WriteString("`")
			sb.WriteString(sp.text)
			sb.WriteString("`")
		case sp.style&(styleBold|styleItalic) == styleBold|styleItalic:
			sb.WriteString("***")
			sb.WriteString(sp.text)
			sb.WriteString("***")
		case sp.style&styleBold != 0:
			sb.WriteString("**")
			sb.WriteString(sp.text)
			sb.WriteString("**")
		case sp.style&styleItalic != 0:
			sb.WriteString("*")
			sb.WriteString(sp.text)
			sb.WriteString("*")
		default:
			sb.WriteString(sp.text)
		}
	}
	return sb.String()
}
