package main

import (
	"io"

	"github.com/fwojciec/doctree"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Searcher doctree.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log engine activity to stderr"`

	Outline OutlineCmd `cmd:"" help:"Print the outline of a tree declaration"`
	Search  SearchCmd  `cmd:"" help:"Search a tree declaration for a query"`
	Extract ExtractCmd `cmd:"" help:"Extract structured items from free text"`
}

// OutlineCmd is the "outline" subcommand.
type OutlineCmd struct {
	File string `arg:"" help:"Tree declaration JSON file"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	File  string `arg:"" help:"Tree declaration JSON file"`
	Query string `arg:"" help:"Search query"`
	Icon  string `help:"Icon proposal cascaded through the tree before searching"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" optional:"" help:"Text file to extract from (defaults to stdin)"`
}
