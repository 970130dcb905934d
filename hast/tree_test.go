package hast

import (
	"encoding/json"
	"testing"
)

func TestNewTree(t *testing.T) {
	tree := New()
	if tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tree.Len())
	}
	if tree.Kind(tree.Root()) != KindRoot {
		t.Errorf("Kind(Root()) = %s, want root", tree.Kind(tree.Root()))
	}
	if tree.Parent(tree.Root()) != None {
		t.Error("root should have no parent")
	}
}

func TestAppendChild(t *testing.T) {
	tree := New()
	text := tree.NewText("hi")
	p := tree.NewElement("p", Properties{{Key: "class", Value: "x"}}, text)
	tree.AppendChild(tree.Root(), p)

	if got := tree.Parent(text); got != p {
		t.Errorf("Parent(text) = %d, want %d", got, p)
	}
	if got := tree.Children(tree.Root()); len(got) != 1 || got[0] != p {
		t.Errorf("Children(root) = %v, want [%d]", got, p)
	}
	if got := tree.Depth(text); got != 2 {
		t.Errorf("Depth(text) = %d, want 2", got)
	}
	if !tree.IsElement(p, "p") || !tree.IsElement(p, "") || tree.IsElement(text, "") {
		t.Error("IsElement() mismatch")
	}
	if v, _ := tree.Props(p).Get("class"); v != "x" {
		t.Errorf("class = %q, want x", v)
	}
}

func TestAppendChildPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(tree *Tree)
	}{
		{"second parent", func(tree *Tree) {
			c := tree.NewText("x")
			tree.AppendChild(tree.NewElement("a", nil), c)
			tree.AppendChild(tree.NewElement("b", nil), c)
		}},
		{"text parent", func(tree *Tree) {
			tree.AppendChild(tree.NewText("x"), tree.NewText("y"))
		}},
		{"root child", func(tree *Tree) {
			tree.AppendChild(tree.NewElement("div", nil), tree.Root())
		}},
		{"out of range", func(tree *Tree) {
			tree.AppendChild(tree.Root(), NodeID(99))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(New())
		})
	}
}

func TestUnwrap(t *testing.T) {
	tree := New()
	a := tree.NewText("a")
	b := tree.NewText("b")
	span := tree.NewElement("span", nil, a, b)
	before := tree.NewText("<")
	after := tree.NewText(">")
	p := tree.NewElement("p", nil, before, span, after)

	tree.Unwrap(span)

	want := []NodeID{before, a, b, after}
	got := tree.Children(p)
	if len(got) != len(want) {
		t.Fatalf("Children(p) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Children(p)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if tree.Parent(a) != p || tree.Parent(span) != None {
		t.Error("parents not updated after Unwrap")
	}
	if tree.TextContent(p) != "<ab>" {
		t.Errorf("TextContent() = %q, want <ab>", tree.TextContent(p))
	}
}

func TestLastElementChild(t *testing.T) {
	tree := New()
	li := tree.NewElement("li", nil)
	ul := tree.NewElement("ul", nil, li, tree.NewText("tail"))

	if got := tree.LastElementChild(ul); got != li {
		t.Errorf("LastElementChild() = %d, want %d", got, li)
	}
	if got := tree.LastChild(li); got != None {
		t.Errorf("LastChild(empty) = %d, want None", got)
	}
	if got := tree.LastElementChild(li); got != None {
		t.Errorf("LastElementChild(empty) = %d, want None", got)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	tree := New()
	inner := tree.NewElement("b", nil, tree.NewText("skip"))
	tree.AppendChild(tree.Root(), tree.NewElement("p", nil, tree.NewText("keep"), inner))

	var texts []string
	tree.Walk(tree.Root(), func(id NodeID) bool {
		if tree.Kind(id) == KindText {
			texts = append(texts, tree.Value(id))
		}
		return !tree.IsElement(id, "b")
	})
	if len(texts) != 1 || texts[0] != "keep" {
		t.Errorf("visited texts = %v, want [keep]", texts)
	}
}

func TestProperties(t *testing.T) {
	var p Properties
	p.Set("href", "a")
	p.Set("id", "b")
	p.Set("href", "c")
	if p.Len() != 2 || p[0].Value != "c" {
		t.Errorf("Set() = %v", p)
	}

	clone := p.Clone()
	clone.Set("id", "z")
	if v, _ := p.Get("id"); v != "b" {
		t.Error("Clone() shares storage")
	}

	p.Delete("href")
	if p.Has("href") || p.Len() != 1 {
		t.Errorf("Delete() = %v", p)
	}
}

func TestMarshalJSON(t *testing.T) {
	tree := New()
	tree.AppendChild(tree.Root(), tree.NewElement("p", Properties{{Key: "id", Value: "x"}}, tree.NewText("hi")))

	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"children":[{"children":[{"type":"text","value":"hi"}],"properties":{"id":"x"},"tagName":"p","type":"element"}],"type":"root"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
