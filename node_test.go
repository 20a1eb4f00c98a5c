package doctree_test

import (
	"testing"

	"github.com/fwojciec/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	t.Parallel()

	t.Run("assigns distinct identities to structurally identical nodes", func(t *testing.T) {
		t.Parallel()

		a := doctree.NewTopic("Same")
		b := doctree.NewTopic("Same")

		assert.NotEmpty(t, a.ID())
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("keeps item declaration order without sorting", func(t *testing.T) {
		t.Parallel()

		topic := doctree.NewTopic("Primary",
			doctree.NewDescription("zeta comes first here"),
			doctree.NewLink("Alpha", "https://example.com/alpha"),
		)

		require.Len(t, topic.Items, 2)
		_, ok := topic.Items[0].(*doctree.Description)
		assert.True(t, ok)
		_, ok = topic.Items[1].(*doctree.Link)
		assert.True(t, ok)
	})

	t.Run("sorts children by localized diacritic-aware title", func(t *testing.T) {
		t.Parallel()

		chapter := doctree.NewChapter("Components",
			doctree.NewTopic("Échelle"),
			doctree.NewTopic("zebra"),
			doctree.NewTopic("Anchor"),
		)

		require.Len(t, chapter.Children, 3)
		assert.Equal(t, "Anchor", chapter.Children[0].Title)
		assert.Equal(t, "Échelle", chapter.Children[1].Title)
		assert.Equal(t, "zebra", chapter.Children[2].Title)
	})

	t.Run("keeps declaration order when Unsorted is passed", func(t *testing.T) {
		t.Parallel()

		chapter := doctree.NewChapter("Components",
			doctree.Unsorted,
			doctree.NewTopic("zebra"),
			doctree.NewTopic("Anchor"),
		)

		require.Len(t, chapter.Children, 2)
		assert.Equal(t, "zebra", chapter.Children[0].Title)
		assert.Equal(t, "Anchor", chapter.Children[1].Title)
	})

	t.Run("documents and chapters carry an empty child collection", func(t *testing.T) {
		t.Parallel()

		doc := doctree.NewDocument("Guide")
		chapter := doctree.NewChapter("Empty")

		assert.NotNil(t, doc.Children)
		assert.Empty(t, doc.Children)
		assert.NotNil(t, chapter.Children)
	})

	t.Run("topics without sub-topics have no child collection", func(t *testing.T) {
		t.Parallel()

		topic := doctree.NewTopic("Leaf", doctree.NewDescription("content"))

		assert.Nil(t, topic.Children)
	})
}

func TestNode_WithIcon(t *testing.T) {
	t.Parallel()

	t.Run("cascades proposal to descendants without explicit icons", func(t *testing.T) {
		t.Parallel()

		tree := doctree.NewDocument("Guide",
			doctree.NewChapter("Buttons",
				doctree.NewTopic("Primary"),
			),
		)

		got := tree.WithIcon("book")

		assert.Equal(t, doctree.Icon("book"), got.Icon)
		assert.Equal(t, doctree.Icon("book"), got.Children[0].Icon)
		assert.Equal(t, doctree.Icon("book"), got.Children[0].Children[0].Icon)
	})

	t.Run("explicit child icon wins and propagates to its own subtree", func(t *testing.T) {
		t.Parallel()

		child := doctree.NewChapter("Buttons", doctree.NewTopic("Primary"))
		child.Icon = "hammer"
		tree := doctree.NewDocument("Guide", child)

		got := tree.WithIcon("book")

		assert.Equal(t, doctree.Icon("book"), got.Icon)
		assert.Equal(t, doctree.Icon("hammer"), got.Children[0].Icon)
		assert.Equal(t, doctree.Icon("hammer"), got.Children[0].Children[0].Icon)
	})

	t.Run("nil proposal returns the identical subtree", func(t *testing.T) {
		t.Parallel()

		tree := doctree.NewDocument("Guide", doctree.NewChapter("Buttons"))

		got := tree.WithIcon(nil)

		assert.Same(t, tree, got)
	})

	t.Run("explicit receiver icon returns the identical subtree", func(t *testing.T) {
		t.Parallel()

		tree := doctree.NewDocument("Guide", doctree.NewChapter("Buttons"))
		tree.Icon = "star"

		got := tree.WithIcon("book")

		assert.Same(t, tree, got)
	})

	t.Run("applying the same proposal twice is a no-op the second time", func(t *testing.T) {
		t.Parallel()

		tree := doctree.NewDocument("Guide", doctree.NewChapter("Buttons"))

		once := tree.WithIcon("book")
		twice := once.WithIcon("book")

		assert.Same(t, once, twice)
	})

	t.Run("does not mutate the original tree", func(t *testing.T) {
		t.Parallel()

		tree := doctree.NewDocument("Guide", doctree.NewChapter("Buttons"))

		_ = tree.WithIcon("book")

		assert.Nil(t, tree.Icon)
		assert.Nil(t, tree.Children[0].Icon)
	})

	t.Run("node identity survives the copy", func(t *testing.T) {
		t.Parallel()

		tree := doctree.NewDocument("Guide", doctree.NewChapter("Buttons"))

		got := tree.WithIcon("book")

		assert.Equal(t, tree.ID(), got.ID())
		assert.Equal(t, tree.Children[0].ID(), got.Children[0].ID())
	})
}

func TestWalk(t *testing.T) {
	t.Parallel()

	t.Run("visits nodes depth-first in order", func(t *testing.T) {
		t.Parallel()

		tree := doctree.NewDocument("Guide",
			doctree.Unsorted,
			doctree.NewChapter("One", doctree.NewTopic("A")),
			doctree.NewChapter("Two"),
		)

		var titles []string
		doctree.Walk(tree, func(n *doctree.Node) bool {
			titles = append(titles, n.Title)
			return true
		})

		assert.Equal(t, []string{"Guide", "One", "A", "Two"}, titles)
	})

	t.Run("skips a subtree when visit returns false", func(t *testing.T) {
		t.Parallel()

		tree := doctree.NewDocument("Guide",
			doctree.Unsorted,
			doctree.NewChapter("One", doctree.NewTopic("A")),
			doctree.NewChapter("Two"),
		)

		var titles []string
		doctree.Walk(tree, func(n *doctree.Node) bool {
			titles = append(titles, n.Title)
			return n.Title != "One"
		})

		assert.Equal(t, []string{"Guide", "One", "Two"}, titles)
	})
}
