// Package hast provides an HTML abstract syntax tree stored as a node arena.
//
// Nodes live in a single [Tree] and are addressed by [NodeID]. A node has at
// most one parent: [Tree.AppendChild] panics when asked to attach a node that
// already has one, so the structure is always a tree, never a graph.
//
//	t := hast.New()
//	p := t.NewElement("p", nil, t.NewText("Hello"))
//	t.AppendChild(t.Root(), p)
//
// Trees export to the syntax-tree HAST JSON shape through [Tree.Map] and
// [Tree.MarshalJSON]:
//
//	{"type": "element", "tagName": "p", "properties": {}, "children": [...]}
package hast
