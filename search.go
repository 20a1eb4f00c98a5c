package doctree

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns a filtered copy of tree containing the nodes that match
// query, or nil when nothing in the tree matches. It is the package-level
// form of Node.Search.
func Search(tree *Node, query string) *Node {
	return tree.Search(query)
}

// Searcher answers substring search queries over a documentation tree. It
// exists so hosts can decorate the engine's search (logging, caching,
// minimum-length policies) without changing call sites.
type Searcher interface {
	// Search returns a filtered copy of tree, or nil for no match.
	Search(tree *Node, query string) *Node
}

// TreeSearcher is the engine's Searcher.
type TreeSearcher struct{}

var _ Searcher = TreeSearcher{}

// Search implements Searcher using Node.Search.
func (TreeSearcher) Search(tree *Node, query string) *Node {
	return tree.Search(query)
}

// Search returns a filtered copy of the node, or nil when nothing in the
// subtree matches. Matching is case-insensitive substring containment with
// Unicode case folding, over a node's title and the searchable text of its
// items. A node is kept iff it matches directly or keeps at least one
// recursively-searched child; a kept node's children hold only the kept
// children, while its items are never filtered, so the full content of every
// matching node and the path to every deep match stay intact.
//
// Empty or too-short queries are a caller policy: the engine treats every
// query literally, and an empty query matches everything.
func (n *Node) Search(query string) *Node {
	folder := cases.Fold()
	return n.search(folder, folder.String(query))
}

func (n *Node) search(folder cases.Caser, query string) *Node {
	var kept []*Node
	if n.Children != nil {
		kept = []*Node{}
		for _, ch := range n.Children {
			if m := ch.search(folder, query); m != nil {
				kept = append(kept, m)
			}
		}
	}

	if !n.matches(folder, query) && len(kept) == 0 {
		return nil
	}

	out := *n
	out.Children = kept
	return &out
}

func (n *Node) matches(folder cases.Caser, query string) bool {
	if strings.Contains(folder.String(n.Title), query) {
		return true
	}
	for _, it := range n.Items {
		if itemMatches(folder, it, query) {
			return true
		}
	}
	return false
}

// itemMatches reports whether one item's searchable text contains the folded
// query. Embeds never match on their own.
func itemMatches(folder cases.Caser, it Item, query string) bool {
	contains := func(s string) bool {
		return strings.Contains(folder.String(s), query)
	}

	switch v := it.(type) {
	case *Description:
		return contains(v.Text)
	case *Link:
		return contains(v.Name) || contains(v.URL)
	case *CodeBlock:
		return contains(v.Text) || contains(v.Title)
	case *List:
		for _, entry := range v.Items {
			if contains(entry) {
				return true
			}
		}
	case *Note:
		return contains(v.Text) || contains(string(v.Kind))
	case *Example:
		return contains(v.Title)
	case *ExampleGroup:
		if contains(v.Title) {
			return true
		}
		for _, ex := range v.Examples {
			if contains(ex.Title) {
				return true
			}
		}
	case *Embed:
	}
	return false
}
