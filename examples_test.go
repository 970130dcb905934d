package docstree_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tsawler/docstree"
	"github.com/tsawler/docstree/model"
	"github.com/tsawler/docstree/reader"
	"github.com/tsawler/docstree/render"
)

func ExampleConverter_HTML() {
	doc := model.NewDocument()
	doc.Lists["l1"] = model.List{NestingLevels: []model.NestingLevel{{GlyphType: "DECIMAL", StartNumber: 1}}}
	doc.AddBlock(&model.Paragraph{
		Style: model.ParagraphStyle{NamedStyleType: "HEADING_1", HeadingID: "h.x1"},
		Runs:  []model.Run{&model.TextRun{Content: "Hello World\n"}},
	})
	doc.AddBlock(&model.Paragraph{
		Runs:   []model.Run{&model.TextRun{Content: "first\n"}},
		Bullet: &model.ListMembership{ListID: "l1"},
	})

	html, _, err := docstree.FromDocument(doc).HTML()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(html)
	// Output:
	// <h1 class="heading-1" id="hello-world">Hello World</h1><ol class="nesting-level-1" list-style-type="decimal"><li>first</li></ol>
}

// These examples only verify that the README code samples compile, since
// they need input files.

func Example_convertFile() {
	html, warnings, err := docstree.Open("document.json").HTML()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(html)

	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
}

func Example_withOptions() {
	md, warnings, err := docstree.Open("document.json.zst").
		WithoutStyles(). // Drop inline CSS and span wrappers
		RawHeaderIDs().  // Keep h.xxxx heading ids
		Markdown()
	_ = md
	_ = warnings
	_ = err
}

func Example_fromReader() {
	r, err := reader.Open("document.json")
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	tree, _, err := docstree.FromReader(r).Tree()
	if err != nil {
		log.Fatal(err)
	}
	if err := render.YAML(os.Stdout, tree); err != nil {
		log.Fatal(err)
	}
}
