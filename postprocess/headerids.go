package postprocess

import (
	"strings"

	"github.com/tsawler/docstree/hast"
)

// IsHeading reports whether tag is h1 through h6
func IsHeading(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}

// HeaderIDs replaces the id of every heading that has one with a slug of its
// text, and rewrites links pointing at the old id (href="#old") to the slug.
// It returns the number of headings renamed.
func HeaderIDs(tree *hast.Tree) int {
	links := make(map[string][]hast.NodeID)

	tree.Walk(tree.Root(), func(n hast.NodeID) bool {
		if !tree.IsElement(n, "a") {
			return true
		}
		href, _ := tree.Props(n).Get("href")
		if strings.HasPrefix(href, "#") {
			links[href[1:]] = append(links[href[1:]], n)
		}
		return true
	})

	slugs := NewSlugger()
	renamed := 0

	tree.Walk(tree.Root(), func(n hast.NodeID) bool {
		if !tree.IsElement(n, "") || !IsHeading(tree.Tag(n)) {
			return true
		}
		props := tree.Props(n)
		id, _ := props.Get("id")
		if id == "" {
			return true
		}

		slug := slugs.Slug(tree.TextContent(n))
		for _, link := range links[id] {
			tree.Props(link).Set("href", "#"+slug)
		}
		props.Set("id", slug)
		renamed++
		return true
	})

	return renamed
}
