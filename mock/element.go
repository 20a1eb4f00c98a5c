package mock

import "github.com/fwojciec/doctree"

var _ doctree.Element = (*Element)(nil)

// Element is a mock implementation of doctree.Element.
type Element struct {
	MergeIntoFn func(c *doctree.Content)
}

func (e *Element) MergeInto(c *doctree.Content) {
	e.MergeIntoFn(c)
}
