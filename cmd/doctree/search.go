package main

import (
	"fmt"

	"github.com/fwojciec/doctree"
	"github.com/fwojciec/doctree/sonic"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	tree, err := sonic.LoadTree(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doctree.ErrorMessage(err))
		return err
	}

	if c.Icon != "" {
		tree = tree.WithIcon(c.Icon)
	}

	result := deps.Searcher.Search(tree, c.Query)
	if result == nil {
		fmt.Fprintf(deps.Stdout, "No match for %q.\n", c.Query)
		return doctree.Errorf(doctree.ENOTFOUND, "no match for %q", c.Query)
	}

	fmt.Fprintln(deps.Stdout, doctree.FormatOutline(result))
	return nil
}
