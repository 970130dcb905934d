// Package transform converts a model.Document into an HTML abstract syntax
// tree.
//
// The conversion is a single left-to-right fold over the body blocks. Each
// block is first turned into one element (paragraph, heading, list item or
// table) and then placed: list items are handed to the list reconstruction
// engine, which decides from the item's list group and nesting level alone
// whether the item starts a new top-level list, nests one or more levels
// deeper, or continues an open level. Items that land inside an earlier list
// are absorbed and do not produce a top-level node.
//
// Basic usage:
//
//	var diags transform.Collector
//	tree, err := transform.Document(doc, &diags)
//	if err != nil {
//	    // a list item referenced a list or level missing from doc.Lists
//	}
//	for _, w := range diags.Warnings() {
//	    fmt.Println(w)
//	}
//
// Data the transformer does not understand (section breaks, bookmark links,
// unknown inline elements) is reported to the Diagnostics sink and omitted.
// Broken references into the document's list table are returned as errors.
package transform
