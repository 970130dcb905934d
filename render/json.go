package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/docstree/hast"
)

// JSON writes the tree in the HAST JSON shape, pretty-printed. A non-empty
// query is run as a jq program over that value and each result is written
// on its own line instead.
func JSON(w io.Writer, tree *hast.Tree, query string) error {
	data := tree.Map(tree.Root())

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if query == "" {
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	code, err := compileQuery(query)
	if err != nil {
		return err
	}

	iter := code.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %w", err)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func compileQuery(query string) (*gojq.Code, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	return code, nil
}

// YAML writes the tree in the HAST shape as YAML
func YAML(w io.Writer, tree *hast.Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tree.Map(tree.Root())); err != nil {
		return err
	}
	return enc.Close()
}
