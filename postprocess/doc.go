// Package postprocess provides tree rewrites applied after transformation.
//
// Neither rewrite changes the list or table structure of the tree:
//
//   - [HeaderIDs] replaces opaque heading ids (h.wn8l66qm9m7y) with slugs
//     of the heading text and repoints internal links to them.
//   - [RemoveStyles] strips style attributes and the span wrappers that
//     existed only to carry them.
package postprocess
