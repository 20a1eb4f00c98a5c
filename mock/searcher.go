package mock

import "github.com/fwojciec/doctree"

var _ doctree.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of doctree.Searcher.
type Searcher struct {
	SearchFn func(tree *doctree.Node, query string) *doctree.Node
}

func (s *Searcher) Search(tree *doctree.Node, query string) *doctree.Node {
	return s.SearchFn(tree, query)
}
