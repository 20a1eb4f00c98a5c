package doctree

// Element is implemented by every value that can appear in a composition.
// MergeInto folds the element into an in-progress Content accumulator. An
// implementation must only append, and must append exactly once per element
// instance; an absent element (typed nil pointer) merges as a no-op.
type Element interface {
	MergeInto(c *Content)
}

// Compose evaluates a sequence of declared values into one Content. Each
// value is evaluated in its literal declaration order into a singleton
// Content, and the singletons are folded left-to-right through Combine. Two
// sibling declarations are never reordered, regardless of which control-flow
// combinator produced them.
//
// A value that is not an Element stands for a raw renderable and is treated
// as an implicit untitled Example. Untyped nils are skipped.
func Compose(vs ...any) Content {
	var c Content
	for _, v := range vs {
		c = c.Combine(singleton(v))
	}
	return c
}

func singleton(v any) Content {
	var c Content
	switch el := v.(type) {
	case nil:
	case Element:
		el.MergeInto(&c)
	default:
		NewExample("", "", v).MergeInto(&c)
	}
	return c
}

// Group wraps a sequence of values as a single element. The grouped values
// merge in declaration order.
func Group(vs ...any) Element {
	return groupElement(vs)
}

type groupElement []any

func (g groupElement) MergeInto(c *Content) {
	sub := Compose(g...)
	c.AppendItems(sub.items...)
	c.AppendChildren(sub.children...)
}

// If includes the given values only when cond is true.
func If(cond bool, vs ...any) Element {
	if !cond {
		return groupElement(nil)
	}
	return groupElement(vs)
}

// IfElse includes then when cond is true and otherwise els.
func IfElse(cond bool, then, els any) Element {
	if cond {
		return groupElement{then}
	}
	return groupElement{els}
}

// ForEach maps every value in vals through fn and includes the results in
// order. Elements produced inside the loop body keep their relative order
// among themselves.
func ForEach[S any](vals []S, fn func(S) any) Element {
	out := make(groupElement, 0, len(vals))
	for _, v := range vals {
		out = append(out, fn(v))
	}
	return out
}

// MergeInto appends the description's extracted items. Free text is split
// into structured items (code fences, lists, callouts) by Extract; plain
// prose contributes itself unchanged. A nil Description is a no-op.
func (d *Description) MergeInto(c *Content) {
	if d == nil {
		return
	}
	c.AppendItems(Extract(d.Text)...)
}

// MergeInto appends the link as a single item. A nil Link (invalid URL) is a
// no-op.
func (l *Link) MergeInto(c *Content) {
	if l == nil {
		return
	}
	c.AppendItems(l)
}

// MergeInto appends the code block as a single item.
func (cb *CodeBlock) MergeInto(c *Content) {
	if cb == nil {
		return
	}
	c.AppendItems(cb)
}

// MergeInto appends the list as a single item.
func (l *List) MergeInto(c *Content) {
	if l == nil {
		return
	}
	c.AppendItems(l)
}

// MergeInto appends the note as a single item.
func (n *Note) MergeInto(c *Content) {
	if n == nil {
		return
	}
	c.AppendItems(n)
}

// MergeInto appends the embed as a single item.
func (e *Embed) MergeInto(c *Content) {
	if e == nil {
		return
	}
	c.AppendItems(e)
}

// MergeInto appends the example as a single item.
func (e *Example) MergeInto(c *Content) {
	if e == nil {
		return
	}
	c.AppendItems(e)
}

// MergeInto appends the example group as a single item.
func (g *ExampleGroup) MergeInto(c *Content) {
	if g == nil {
		return
	}
	c.AppendItems(g)
}
