// Package sonic loads documentation-tree declarations from JSON using
// bytedance/sonic. The declaration format is a data-literal rendition of the
// composition protocol: hosts that do not author trees in Go can describe
// them in a file and hand them to the engine.
package sonic

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/fwojciec/doctree"
)

// NodeDecl is the JSON declaration of one node. The top-level declaration is
// the document; its children are chapters, and theirs are topics.
type NodeDecl struct {
	Title    string     `json:"title"`
	Icon     string     `json:"icon,omitempty"`
	Items    []ItemDecl `json:"items,omitempty"`
	Children []NodeDecl `json:"children,omitempty"`
}

// ItemDecl is the JSON declaration of one content item. Kind selects the
// variant; the remaining fields apply per kind.
type ItemDecl struct {
	Kind string `json:"kind"`

	// text, code, note
	Text string `json:"text,omitempty"`

	// link
	Name string `json:"name,omitempty"`

	// link, embed
	URL string `json:"url,omitempty"`

	// code, example
	Title    string `json:"title,omitempty"`
	Language string `json:"language,omitempty"`

	// list
	List  string   `json:"list,omitempty"`
	Items []string `json:"items,omitempty"`

	// note
	Note string `json:"note,omitempty"`
}

// DecodeTree decodes a JSON tree declaration into a composed node tree.
// Children keep their declared order. Returns EINVALID for malformed
// declarations; an invalid link URL follows engine semantics and silently
// contributes nothing.
func DecodeTree(data []byte) (*doctree.Node, error) {
	var decl NodeDecl
	if err := sonic.Unmarshal(data, &decl); err != nil {
		return nil, doctree.Errorf(doctree.EINVALID, "invalid tree declaration: %s", err)
	}
	return buildNode(decl, 0)
}

// LoadTree reads and decodes a JSON tree declaration file.
func LoadTree(path string) (*doctree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, doctree.Errorf(doctree.EINVALID, "cannot read tree declaration %q: %s", path, err)
	}
	return DecodeTree(data)
}

func buildNode(decl NodeDecl, depth int) (*doctree.Node, error) {
	if decl.Title == "" {
		return nil, doctree.Errorf(doctree.EINVALID, "node declaration requires a title")
	}

	vs := []any{doctree.Unsorted}
	for _, item := range decl.Items {
		el, err := buildElement(item)
		if err != nil {
			return nil, err
		}
		vs = append(vs, el)
	}
	for _, child := range decl.Children {
		n, err := buildNode(child, depth+1)
		if err != nil {
			return nil, err
		}
		vs = append(vs, n)
	}

	var node *doctree.Node
	switch depth {
	case 0:
		node = doctree.NewDocument(decl.Title, vs...)
	case 1:
		node = doctree.NewChapter(decl.Title, vs...)
	default:
		node = doctree.NewTopic(decl.Title, vs...)
	}
	if decl.Icon != "" {
		node.Icon = decl.Icon
	}
	return node, nil
}

func buildElement(item ItemDecl) (doctree.Element, error) {
	switch item.Kind {
	case "text":
		return doctree.NewDescription(item.Text), nil
	case "link":
		return doctree.NewLink(item.Name, item.URL), nil
	case "code":
		return doctree.NewCodeBlock(item.Title, item.Text, item.Language), nil
	case "list":
		kind := doctree.ListUnordered
		if item.List == string(doctree.ListOrdered) {
			kind = doctree.ListOrdered
		}
		return doctree.NewList(kind, item.Items...), nil
	case "note":
		kind, err := noteKind(item.Note)
		if err != nil {
			return nil, err
		}
		return doctree.NewNote(kind, item.Text), nil
	case "embed":
		return doctree.NewEmbed(item.URL), nil
	default:
		return nil, doctree.Errorf(doctree.EINVALID, "item kind %q not recognized", item.Kind)
	}
}

func noteKind(s string) (doctree.NoteKind, error) {
	switch kind := doctree.NoteKind(s); kind {
	case doctree.NoteKindNote, doctree.NoteKindImportant, doctree.NoteKindWarning,
		doctree.NoteKindDeprecated, doctree.NoteKindExperimental, doctree.NoteKindTip:
		return kind, nil
	case "":
		return doctree.NoteKindNote, nil
	default:
		return "", doctree.Errorf(doctree.EINVALID, "note kind %q not recognized", s)
	}
}
