package doctree_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/doctree"
	"github.com/fwojciec/doctree/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("preserves declaration order of items", func(t *testing.T) {
		t.Parallel()

		declared := []doctree.Item{
			doctree.NewLink("Docs", "https://example.com/docs"),
			doctree.NewCodeBlock("", "print(1)", ""),
			doctree.NewNote(doctree.NoteKindTip, "read the docs"),
			doctree.NewEmbed("https://example.com/video"),
		}

		c := doctree.Compose(declared[0], declared[1], declared[2], declared[3])

		require.Len(t, c.Items(), 4)
		for i, it := range c.Items() {
			assert.Equal(t, declared[i].ItemID(), it.ItemID())
		}
	})

	t.Run("keeps relative order of loop and conditional bodies", func(t *testing.T) {
		t.Parallel()

		names := []string{"one", "two", "three"}

		c := doctree.Compose(
			doctree.NewDescription("head"),
			doctree.ForEach(names, func(name string) any {
				return doctree.NewCodeBlock(name, "// "+name, "")
			}),
			doctree.If(true, doctree.NewDescription("tail")),
		)

		require.Len(t, c.Items(), 5)
		assert.Equal(t, "head", c.Items()[0].(*doctree.Description).Text)
		for i, name := range names {
			assert.Equal(t, name, c.Items()[i+1].(*doctree.CodeBlock).Title)
		}
		assert.Equal(t, "tail", c.Items()[4].(*doctree.Description).Text)
	})

	t.Run("skips false conditional branch", func(t *testing.T) {
		t.Parallel()

		c := doctree.Compose(doctree.If(false, doctree.NewDescription("dropped")))

		assert.True(t, c.IsEmpty())
	})

	t.Run("takes the either branch that applies", func(t *testing.T) {
		t.Parallel()

		c := doctree.Compose(
			doctree.IfElse(false, doctree.NewDescription("then"), doctree.NewDescription("else")),
		)

		require.Len(t, c.Items(), 1)
		assert.Equal(t, "else", c.Items()[0].(*doctree.Description).Text)
	})

	t.Run("treats a bare renderable as an implicit untitled example", func(t *testing.T) {
		t.Parallel()

		payload := struct{ Label string }{Label: "chart"}

		c := doctree.Compose(payload)

		require.Len(t, c.Items(), 1)
		ex, ok := c.Items()[0].(*doctree.Example)
		require.True(t, ok)
		assert.Empty(t, ex.Title)
		assert.Equal(t, payload, ex.Renderable)
	})

	t.Run("merges absent optional elements as no-ops", func(t *testing.T) {
		t.Parallel()

		var absent *doctree.Note

		c := doctree.Compose(
			doctree.NewLink("broken", "://bad-url"),
			absent,
			nil,
			doctree.NewDescription("kept"),
		)

		require.Len(t, c.Items(), 1)
		assert.Equal(t, "kept", c.Items()[0].(*doctree.Description).Text)
	})

	t.Run("splits description declarations through the extractor", func(t *testing.T) {
		t.Parallel()

		c := doctree.Compose(doctree.NewDescription("> Tip: compose freely\nAnd write prose."))

		require.Len(t, c.Items(), 2)
		note, ok := c.Items()[0].(*doctree.Note)
		require.True(t, ok)
		assert.Equal(t, doctree.NoteKindTip, note.Kind)
		desc, ok := c.Items()[1].(*doctree.Description)
		require.True(t, ok)
		assert.Equal(t, "And write prose.", desc.Text)
	})

	t.Run("routes nested nodes to children, never items", func(t *testing.T) {
		t.Parallel()

		topic := doctree.NewTopic("Nested")

		c := doctree.Compose(doctree.NewDescription("text"), topic)

		require.Len(t, c.Items(), 1)
		require.Len(t, c.Children(), 1)
		assert.Equal(t, topic.ID(), c.Children()[0].ID())
	})

	t.Run("invokes every element exactly once in order", func(t *testing.T) {
		t.Parallel()

		var calls []string
		el := func(name string) *mock.Element {
			return &mock.Element{
				MergeIntoFn: func(c *doctree.Content) {
					calls = append(calls, name)
					c.AppendItems(doctree.NewDescription(name))
				},
			}
		}

		c := doctree.Compose(el("a"), doctree.Group(el("b"), el("c")), el("d"))

		assert.Equal(t, []string{"a", "b", "c", "d"}, calls)
		require.Len(t, c.Items(), 4)
		for i, name := range []string{"a", "b", "c", "d"} {
			assert.Equal(t, name, c.Items()[i].(*doctree.Description).Text,
				fmt.Sprintf("item %d out of order", i))
		}
	})
}
