package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/tsawler/docstree/hast"
)

func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
}

// MarkdownString converts the tree to CommonMark with GFM tables. Styling
// that Markdown cannot express is dropped.
func MarkdownString(tree *hast.Tree) (string, error) {
	h, err := HTMLString(tree)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(h) == "" {
		return "", nil
	}

	md, err := newMarkdownConverter().ConvertString(h)
	if err != nil {
		return "", fmt.Errorf("converting to markdown: %w", err)
	}
	return md, nil
}

// Markdown writes the tree as Markdown
func Markdown(w io.Writer, tree *hast.Tree) error {
	md, err := MarkdownString(tree)
	if err != nil {
		return err
	}
	if md == "" {
		return nil
	}
	if !strings.HasSuffix(md, "\n") {
		md += "\n"
	}
	_, err = io.WriteString(w, md)
	return err
}
