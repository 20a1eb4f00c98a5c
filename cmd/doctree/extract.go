package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/doctree"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var text []byte
	var err error
	if c.File != "" {
		text, err = os.ReadFile(c.File)
	} else {
		text, err = io.ReadAll(deps.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	for _, item := range doctree.Extract(string(text)) {
		fmt.Fprintln(deps.Stdout, formatItem(item))
	}
	return nil
}

// formatItem renders one extracted item as a single summary line.
func formatItem(item doctree.Item) string {
	switch v := item.(type) {
	case *doctree.Description:
		return "description: " + firstLine(v.Text)
	case *doctree.CodeBlock:
		return "code: " + firstLine(v.Text)
	case *doctree.Note:
		return fmt.Sprintf("note(%s): %s", v.Kind, firstLine(v.Text))
	case *doctree.List:
		return fmt.Sprintf("list(%s): %s", v.Kind, strings.Join(v.Items, "; "))
	default:
		return fmt.Sprintf("%T", item)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
