// Package slog provides log/slog logging decorators for doctree services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/doctree"
)

// Ensure LoggingSearcher implements doctree.Searcher.
var _ doctree.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with query logging.
type LoggingSearcher struct {
	next   doctree.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next doctree.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query, whether it
// matched, and how long it took.
func (s *LoggingSearcher) Search(tree *doctree.Node, query string) *doctree.Node {
	begin := time.Now()
	result := s.next.Search(tree, query)
	s.logger.Info("tree search",
		"query", query,
		"matched", result != nil,
		"duration", time.Since(begin),
	)
	return result
}
