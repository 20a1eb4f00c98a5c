package doctree

import (
	"fmt"
	"strings"
)

// FormatOutline renders the shape of a tree as an indented plain-text
// outline, one node per line with its item count. Used for display or LLM
// context.
func FormatOutline(root *Node) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	writeOutline(&sb, root, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeOutline(sb *strings.Builder, n *Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Title)
	if len(n.Items) > 0 {
		fmt.Fprintf(sb, " [%d items]", len(n.Items))
	}
	sb.WriteString("\n")
	for _, ch := range n.Children {
		writeOutline(sb, ch, depth+1)
	}
}
