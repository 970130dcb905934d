package transform

import (
	"fmt"
	"strings"

	"github.com/tsawler/docstree/hast"
	"github.com/tsawler/docstree/model"
	"github.com/tsawler/docstree/style"
)

// Run converts one inline run into a single node. It returns false when the
// run was omitted; a warning has been reported in that case.
func (t *Transformer) Run(run model.Run, path string) (hast.NodeID, bool) {
	switch r := run.(type) {
	case *model.TextRun:
		return t.textRun(r, path+".textRun")
	case *model.InlineObjectRun:
		return t.inlineObject(r, path+".inlineObjectElement")
	case *model.PersonRun:
		return t.person(r), true
	case *model.RichLinkRun:
		return t.richLink(r), true
	case *model.UnsupportedRun:
		t.warn(path, "unsupported element: paragraph.%s", r.Name)
		return hast.None, false
	default:
		t.warn(path, "unsupported element: paragraph.%T", run)
		return hast.None, false
	}
}

// TextContent normalizes run text for markup output: newlines are dropped
// and each pair of spaces becomes a space and a no-break space so the
// spacing survives whitespace collapsing.
func TextContent(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, "  ", " \u00a0")
}

func (t *Transformer) textRun(r *model.TextRun, path string) (hast.NodeID, bool) {
	content := TextContent(r.Content)

	if link := r.Style.Link; link != nil {
		var props hast.Properties
		if link.URL != "" {
			props.Set("href", link.URL)
		}
		if link.BookmarkID != "" {
			t.warn(path, "unsupported element: paragraph.textRun.textStyle.link.bookmarkId")
			return hast.None, false
		}
		if link.HeadingID != "" {
			props.Set("href", "#"+link.HeadingID)
		}
		return t.tree.NewElement("a", props, t.tree.NewText(content)), true
	}

	return t.wrapStyle(t.tree.NewText(content), r.Style), true
}

// wrapStyle applies character style to n. Declarations without a semantic
// tag go on a style attribute, promoting a bare text leaf to a span; then
// sup, sub, strong, i, s and u wrap the result in that order.
func (t *Transformer) wrapStyle(n hast.NodeID, ts model.TextStyle) hast.NodeID {
	if decls := style.Text(ts); decls.Len() > 0 {
		if t.tree.Kind(n) == hast.KindText {
			n = t.tree.NewElement("span", hast.Properties{{Key: "style", Value: decls.String()}}, n)
		} else {
			t.tree.Props(n).Set("style", decls.String())
		}
	}

	if ts.BaselineOffset == "SUPERSCRIPT" {
		n = t.tree.NewElement("sup", nil, n)
	}
	if ts.BaselineOffset == "SUBSCRIPT" {
		n = t.tree.NewElement("sub", nil, n)
	}
	if ts.Bold {
		n = t.tree.NewElement("strong", nil, n)
	}
	if ts.Italic {
		n = t.tree.NewElement("i", nil, n)
	}
	if ts.Strikethrough {
		n = t.tree.NewElement("s", nil, n)
	}
	if ts.Underline {
		n = t.tree.NewElement("u", nil, n)
	}

	return n
}

func (t *Transformer) inlineObject(r *model.InlineObjectRun, path string) (hast.NodeID, bool) {
	obj, ok := t.doc.InlineObjects[r.InlineObjectID]
	if !ok {
		t.warn(path, "inline object %q not found", r.InlineObjectID)
		return hast.None, false
	}

	var props hast.Properties
	src := obj.ContentURI
	if src == "" {
		src = obj.SourceURI
	}
	props.Set("src", src)
	if obj.Description != "" {
		props.Set("alt", obj.Description)
	}
	if obj.Title != "" {
		props.Set("title", obj.Title)
	}
	if decls := style.EmbeddedObject(obj); decls.Len() > 0 {
		props.Set("style", decls.String())
	}

	return t.tree.NewElement("img", props), true
}

func (t *Transformer) person(r *model.PersonRun) hast.NodeID {
	var props hast.Properties
	if r.Email != "" {
		props.Set("href", fmt.Sprintf("mailto:%s", r.Email))
	}
	label := firstNonEmpty(r.Name, r.Email, r.PersonID)
	return t.tree.NewElement("a", props, t.tree.NewText(label))
}

func (t *Transformer) richLink(r *model.RichLinkRun) hast.NodeID {
	var props hast.Properties
	if r.URI != "" {
		props.Set("href", r.URI)
	}
	label := firstNonEmpty(r.Title, r.URI, r.RichLinkID)
	return t.tree.NewElement("a", props, t.tree.NewText(label))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
