package doctree

import (
	"net/url"

	"github.com/google/uuid"
)

// Item is one unit of authored content held by a Node. It is a closed union:
// the variants defined in this package are the only implementations, so a
// rendering layer can dispatch over kinds exhaustively.
//
// Items are immutable value data after construction. Equality is
// identity-based: two items are the same iff they share an ItemID. The
// identity exists only for diffing by downstream consumers and never depends
// on the item's content, so editing a code sample's text between releases
// does not disturb identity-keyed state.
type Item interface {
	// ItemID returns the process-unique identity of the item.
	ItemID() string

	item()
}

func newID() string {
	return uuid.NewString()
}

// Description is plain prose.
type Description struct {
	id   string
	Text string
}

// NewDescription returns a new Description item.
func NewDescription(text string) *Description {
	return &Description{id: newID(), Text: text}
}

func (d *Description) ItemID() string { return d.id }
func (d *Description) item()          {}

// Link is an external reference with a display name.
type Link struct {
	id   string
	Name string
	URL  string
}

// NewLink returns a new Link item, or nil if rawURL is not a valid absolute
// URL. A nil Link merges as a no-op, so an invalid URL silently contributes
// nothing to a composition rather than failing it.
func NewLink(name, rawURL string) *Link {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return &Link{id: newID(), Name: name, URL: rawURL}
}

func (l *Link) ItemID() string { return l.id }
func (l *Link) item()          {}

// CodeBlock is a source code sample. Title and Language are optional.
type CodeBlock struct {
	id       string
	Title    string
	Text     string
	Language string
}

// NewCodeBlock returns a new CodeBlock item.
func NewCodeBlock(title, text, language string) *CodeBlock {
	return &CodeBlock{id: newID(), Title: title, Text: text, Language: language}
}

func (c *CodeBlock) ItemID() string { return c.id }
func (c *CodeBlock) item()          {}

// ListKind distinguishes ordered from unordered lists.
type ListKind string

// ListKind constants.
const (
	ListOrdered   ListKind = "ordered"
	ListUnordered ListKind = "unordered"
)

// List is an ordered or unordered sequence of short text entries.
type List struct {
	id    string
	Kind  ListKind
	Items []string
}

// NewList returns a new List item.
func NewList(kind ListKind, items ...string) *List {
	return &List{id: newID(), Kind: kind, Items: items}
}

func (l *List) ItemID() string { return l.id }
func (l *List) item()          {}

// NoteKind categorizes a callout.
type NoteKind string

// NoteKind constants. The set is closed: callout extraction recognizes
// exactly these labels and nothing else.
const (
	NoteKindNote         NoteKind = "note"
	NoteKindImportant    NoteKind = "important"
	NoteKindWarning      NoteKind = "warning"
	NoteKindDeprecated   NoteKind = "deprecated"
	NoteKindExperimental NoteKind = "experimental"
	NoteKindTip          NoteKind = "tip"
)

// Note is a short, categorized highlighted text block.
type Note struct {
	id   string
	Kind NoteKind
	Text string
}

// NewNote returns a new Note item.
func NewNote(kind NoteKind, text string) *Note {
	return &Note{id: newID(), Kind: kind, Text: text}
}

func (n *Note) ItemID() string { return n.id }
func (n *Note) item()          {}

// Embed references external embedded content by URL. Embeds never
// participate in search matching.
type Embed struct {
	id  string
	URL string
}

// NewEmbed returns a new Embed item.
func NewEmbed(rawURL string) *Embed {
	return &Embed{id: newID(), URL: rawURL}
}

func (e *Embed) ItemID() string { return e.id }
func (e *Embed) item()          {}

// Renderable is an opaque payload displayed by the rendering layer. The core
// forwards it unexamined.
type Renderable any

// Example pairs an opaque renderable with an optional title and description.
type Example struct {
	id          string
	Title       string
	Description string
	Renderable  Renderable
}

// NewExample returns a new Example item.
func NewExample(title, description string, renderable Renderable) *Example {
	return &Example{id: newID(), Title: title, Description: description, Renderable: renderable}
}

func (e *Example) ItemID() string { return e.id }
func (e *Example) item()          {}

// ExampleGroup is a titled collection of examples displayed together.
type ExampleGroup struct {
	id       string
	Title    string
	Examples []*Example
}

// NewExampleGroup returns a new ExampleGroup item.
func NewExampleGroup(title string, examples ...*Example) *ExampleGroup {
	return &ExampleGroup{id: newID(), Title: title, Examples: examples}
}

func (g *ExampleGroup) ItemID() string { return g.id }
func (g *ExampleGroup) item()          {}
