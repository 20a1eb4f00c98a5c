package main

import (
	"fmt"

	"github.com/fwojciec/doctree"
	"github.com/fwojciec/doctree/sonic"
)

// Run executes the outline command.
func (c *OutlineCmd) Run(deps *Dependencies) error {
	tree, err := sonic.LoadTree(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doctree.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, doctree.FormatOutline(tree))
	return nil
}
