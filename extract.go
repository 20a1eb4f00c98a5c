package doctree

import (
	"regexp"
	"strings"
)

// calloutRe matches a callout line: a ">" or "-" prefix, one of the closed
// set of keywords, an optional colon, and the callout text. The keyword set
// is exact and case-sensitive; a line with an unrecognized keyword stays
// prose.
var calloutRe = regexp.MustCompile(`^\s*[>-]\s*(Note|Important|Warning|Deprecated|Experimental|Tip):?\s*(.+)$`)

var (
	headingRe     = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	orderedItemRe = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)
	bulletItemRe  = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
)

const fenceMarker = "```"

// Extract turns one free-text block into an ordered sequence of items that
// together represent the block's structure: fenced code regions become
// CodeBlock items, callout lines become Note items, runs of list-marker
// lines become List items, and everything else becomes Description prose
// with inline emphasis reconstructed into canonical markdown punctuation.
//
// Items are emitted in original line order. When no recognizable structure
// is present the whole block is returned as a single Description, so the
// result is never empty for non-empty input. Malformed structure (an
// unclosed fence, an unknown callout keyword, unbalanced emphasis markers)
// degrades to ordinary prose, never an error.
func Extract(text string) []Item {
	if text == "" {
		return nil
	}

	var ex extractor
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if isFenceLine(line) {
			if end := findClosingFence(lines, i+1); end >= 0 {
				ex.flushAll()
				code := strings.TrimSpace(strings.Join(lines[i+1:end], "\n"))
				if code != "" {
					ex.items = append(ex.items, NewCodeBlock("", code, ""))
				}
				i = end
				continue
			}
			// Unclosed fence: the marker line is ordinary prose.
			ex.prose(line)
			continue
		}

		if m := calloutRe.FindStringSubmatch(line); m != nil {
			ex.flushAll()
			ex.items = append(ex.items, NewNote(NoteKind(strings.ToLower(m[1])), strings.TrimSpace(m[2])))
			continue
		}

		if m := orderedItemRe.FindStringSubmatch(line); m != nil {
			ex.listItem(ListOrdered, m[1])
			continue
		}
		if m := bulletItemRe.FindStringSubmatch(line); m != nil {
			ex.listItem(ListUnordered, m[1])
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			ex.heading(m[1], m[2])
			continue
		}

		if strings.TrimSpace(line) == "" {
			ex.blank()
			continue
		}

		ex.prose(line)
	}
	ex.flushAll()

	if len(ex.items) == 0 {
		return []Item{NewDescription(text)}
	}
	return ex.items
}

// extractor accumulates blocks while scanning lines. Consecutive paragraph
// and heading blocks merge into one Description with blank-line separation
// re-inserted; a list, callout, or fence interrupts the prose run.
type extractor struct {
	items []Item

	para   []string // lines of the paragraph in progress
	blocks []string // completed prose blocks awaiting flush

	listKind  ListKind
	listItems []string
}

func (ex *extractor) prose(line string) {
	ex.flushList()
	ex.para = append(ex.para, line)
}

func (ex *extractor) heading(hashes, title string) {
	ex.flushList()
	ex.endParagraph()
	ex.blocks = append(ex.blocks, hashes+" "+normalizeInline(strings.TrimSpace(title)))
}

func (ex *extractor) listItem(kind ListKind, text string) {
	ex.endParagraph()
	ex.flushProse()
	if len(ex.listItems) == 0 {
		ex.listKind = kind
	}
	ex.listItems = append(ex.listItems, normalizeInline(strings.TrimSpace(text)))
}

func (ex *extractor) blank() {
	ex.flushList()
	ex.endParagraph()
}

// endParagraph completes the paragraph in progress into a prose block.
func (ex *extractor) endParagraph() {
	if len(ex.para) == 0 {
		return
	}
	ex.blocks = append(ex.blocks, normalizeInline(strings.Join(ex.para, "\n")))
	ex.para = nil
}

// flushProse emits pending prose blocks as one Description, blocks
// separated by blank lines.
func (ex *extractor) flushProse() {
	ex.endParagraph()
	if len(ex.blocks) == 0 {
		return
	}
	ex.items = append(ex.items, NewDescription(strings.Join(ex.blocks, "\n\n")))
	ex.blocks = nil
}

// flushList emits the list in progress, if any.
func (ex *extractor) flushList() {
	if len(ex.listItems) == 0 {
		return
	}
	ex.items = append(ex.items, NewList(ex.listKind, ex.listItems...))
	ex.listItems = nil
}

func (ex *extractor) flushAll() {
	ex.flushList()
	ex.flushProse()
}

func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fenceMarker)
}

// findClosingFence returns the index of the next fence line at or after
// from, or -1 when the region is unbalanced.
func findClosingFence(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if isFenceLine(lines[i]) {
			return i
		}
	}
	return -1
}
