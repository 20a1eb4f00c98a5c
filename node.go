package doctree

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Icon is an opaque visual-attribute handle (an image or symbol reference)
// propagated by the icon cascade. The engine never inspects or renders it;
// nil means the node has not set one.
type Icon any

// Node is a titled entity in the documentation hierarchy, holding an ordered
// item list, an optional icon, and optional children. Documents, chapters,
// and topics are structurally identical at this layer; they differ only in
// which kinds of children the authoring layer places under them.
//
// A Node is constructed once, depth-first from leaves to root, and is
// immutable value data afterward. WithIcon and Search return new trees and
// never mutate a node in place. Node identity survives those copies, so a
// rendering layer can diff trees across transformations.
type Node struct {
	id       string
	Title    string
	Icon     Icon
	Items    []Item
	Children []*Node
}

// ID returns the process-unique identity of the node. It is stable for the
// lifetime of the value and never recomputed from content, so two
// structurally identical nodes remain distinct.
func (n *Node) ID() string { return n.id }

// Unsorted disables the default localized title sort of child nodes, keeping
// the caller's declaration order. It merges as a no-op and may appear
// anywhere in a composition.
var Unsorted Element = unsortedOption{}

type unsortedOption struct{}

func (unsortedOption) MergeInto(*Content) {}

// NewDocument composes a root node. Child chapters are sorted by localized
// title comparison unless Unsorted is passed; a document always carries a
// child collection, even when empty.
func NewDocument(title string, vs ...any) *Node {
	return newNode(title, vs, true)
}

// NewChapter composes a mid-level node. Child topics are sorted by localized
// title comparison unless Unsorted is passed; a chapter always carries a
// child collection, even when empty.
func NewChapter(title string, vs ...any) *Node {
	return newNode(title, vs, true)
}

// NewTopic composes a leaf-level node. A topic without nested sub-topics has
// no child collection at all, which is distinct from an empty one.
func NewTopic(title string, vs ...any) *Node {
	return newNode(title, vs, false)
}

func newNode(title string, vs []any, container bool) *Node {
	sorted := true
	rest := make([]any, 0, len(vs))
	for _, v := range vs {
		if _, ok := v.(unsortedOption); ok {
			sorted = false
			continue
		}
		rest = append(rest, v)
	}

	c := Compose(rest...)
	n := &Node{
		id:    uuid.NewString(),
		Title: title,
		Items: c.items,
	}
	switch {
	case len(c.children) > 0:
		kids := slices.Clone(c.children)
		if sorted {
			SortNodesByTitle(kids)
		}
		n.Children = kids
	case container:
		n.Children = []*Node{}
	}
	return n
}

// MergeInto appends the node to the accumulator's child list, never to its
// items. A nil node is a no-op.
func (n *Node) MergeInto(c *Content) {
	if n == nil {
		return
	}
	c.AppendChildren(n)
}

// titleCollator compares titles with locale-aware, diacritic-insensitive
// ordering. Collators are stateful, so calls are serialized.
var (
	titleCollator = NewLazy(func() *collate.Collator {
		return collate.New(language.Und, collate.Loose)
	})
	titleCollatorMu sync.Mutex
)

// SortNodesByTitle sorts nodes in place by localized, diacritic-aware title
// comparison. The sort is stable, so equal titles keep declaration order.
func SortNodesByTitle(nodes []*Node) {
	titleCollatorMu.Lock()
	defer titleCollatorMu.Unlock()

	c := titleCollator.Get()
	slices.SortStableFunc(nodes, func(a, b *Node) int {
		return c.CompareString(a.Title, b.Title)
	})
}

// WithIcon returns a new tree in which the receiver and every descendant
// resolve an icon: a node's own explicit icon wins, otherwise the icon
// resolved on its nearest ancestor, otherwise the proposal. The resolved
// icon, not the original proposal, is what threads down to children, so a
// child's explicit icon shadows the proposal for that child's whole subtree.
//
// When the proposal is nil, or the receiver's icon is already explicit,
// there is nothing new to propagate and the original subtree is returned
// as-is, with no descendant visited or copied.
func (n *Node) WithIcon(icon Icon) *Node {
	if icon == nil || n.Icon != nil {
		return n
	}
	return n.cascade(icon)
}

func (n *Node) cascade(inherited Icon) *Node {
	resolved := n.Icon
	if resolved == nil {
		resolved = inherited
	}
	out := *n
	out.Icon = resolved
	if n.Children != nil {
		kids := make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			kids[i] = ch.cascade(resolved)
		}
		out.Children = kids
	}
	return &out
}

// Walk visits n and its descendants depth-first in order. The visit
// function returns false to skip a node's subtree.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, ch := range n.Children {
		Walk(ch, visit)
	}
}
