package hast

import "encoding/json"

// Map exports the subtree at id in the HAST JSON shape, using only maps,
// slices and strings so the result can be fed to generic JSON tooling.
func (t *Tree) Map(id NodeID) map[string]any {
	n := t.node(id)
	switch n.kind {
	case KindText:
		return map[string]any{"type": "text", "value": n.value}
	case KindRoot:
		return map[string]any{"type": "root", "children": t.childMaps(id)}
	default:
		props := make(map[string]any, len(n.props))
		for _, p := range n.props {
			props[p.Key] = p.Value
		}
		return map[string]any{
			"type":       "element",
			"tagName":    n.tag,
			"properties": props,
			"children":   t.childMaps(id),
		}
	}
}

func (t *Tree) childMaps(id NodeID) []any {
	children := t.node(id).children
	out := make([]any, 0, len(children))
	for _, c := range children {
		out = append(out, t.Map(c))
	}
	return out
}

// MarshalJSON encodes the whole tree from its root
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Map(t.Root()))
}
