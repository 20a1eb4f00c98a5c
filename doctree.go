// Package doctree provides a declarative documentation-tree engine. Callers
// compose a hierarchy of Document, Chapter, and Topic nodes from an ordered,
// heterogeneous set of content declarations (links, code samples, runnable
// examples, callouts, lists, embeds, free text). The engine preserves the
// exact declaration order of that content, derives structured items from
// loosely-formatted free text, propagates default visual attributes down the
// hierarchy, and answers substring search queries over the whole tree while
// preserving tree shape for matched branches.
//
// This package contains the domain types and the pure functional core
// following Ben Johnson's Standard Package Layout. Auxiliary implementations
// live in subdirectories named after their primary dependency (e.g., sonic/
// for the JSON declaration loader, slog/ for logging decorators).
package doctree
