package doctree

// Content accumulates the result of evaluating a composition: one ordered
// item list and a separate ordered child-node list. The zero value is the
// empty content.
//
// Fields are unexported and the only mutators append, which makes the
// append-only merge contract structurally impossible to violate: an Element
// cannot replace or remove entries already accumulated.
type Content struct {
	items    []Item
	children []*Node
}

// AppendItems appends items to the accumulated item list, preserving order.
// Nil items are skipped.
func (c *Content) AppendItems(items ...Item) {
	for _, it := range items {
		if it == nil {
			continue
		}
		c.items = append(c.items, it)
	}
}

// AppendChildren appends nodes to the accumulated child list, preserving
// order. Nil nodes are skipped.
func (c *Content) AppendChildren(children ...*Node) {
	for _, n := range children {
		if n == nil {
			continue
		}
		c.children = append(c.children, n)
	}
}

// Items returns the accumulated items in declaration order.
func (c Content) Items() []Item {
	return c.items
}

// Children returns the accumulated child nodes in declaration order.
func (c Content) Children() []*Node {
	return c.children
}

// IsEmpty reports whether the content holds no items and no children.
func (c Content) IsEmpty() bool {
	return len(c.items) == 0 && len(c.children) == 0
}

// Combine returns a new Content holding c's entries followed by other's,
// for items and children alike. Combine is associative with the zero value
// as identity; declaration order is the total order and is never re-sorted.
func (c Content) Combine(other Content) Content {
	if c.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return c
	}
	var out Content
	out.items = make([]Item, 0, len(c.items)+len(other.items))
	out.items = append(out.items, c.items...)
	out.items = append(out.items, other.items...)
	out.children = make([]*Node, 0, len(c.children)+len(other.children))
	out.children = append(out.children, c.children...)
	out.children = append(out.children, other.children...)
	return out
}
