package hast

import (
	"fmt"
	"strings"
)

// NodeID addresses a node within its Tree
type NodeID int

// None is the NodeID of a missing node
const None NodeID = -1

// Kind is the type of a node
type Kind int

const (
	KindRoot Kind = iota
	KindElement
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindElement:
		return "element"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

type node struct {
	kind     Kind
	tag      string
	value    string
	props    Properties
	parent   NodeID
	children []NodeID
}

// Tree is an arena of nodes with a single root
type Tree struct {
	nodes []node
}

// New creates a tree containing only its root node
func New() *Tree {
	t := &Tree{nodes: make([]node, 0, 64)}
	t.nodes = append(t.nodes, node{kind: KindRoot, parent: None})
	return t
}

// Root returns the root node
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes allocated in the arena, including nodes
// that have been detached.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NewElement allocates an element and attaches children to it in order
func (t *Tree) NewElement(tag string, props Properties, children ...NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{kind: KindElement, tag: tag, props: props, parent: None})
	for _, c := range children {
		t.AppendChild(id, c)
	}
	return id
}

// NewText allocates a text leaf
func (t *Tree) NewText(value string) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{kind: KindText, value: value, parent: None})
	return id
}

func (t *Tree) node(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("hast: node %d out of range", id))
	}
	return &t.nodes[id]
}

// AppendChild attaches child as the last child of parent. It panics if child
// already has a parent, if parent is a text node, or if child is the root.
func (t *Tree) AppendChild(parent, child NodeID) {
	p := t.node(parent)
	c := t.node(child)
	if p.kind == KindText {
		panic("hast: text nodes cannot have children")
	}
	if c.kind == KindRoot {
		panic("hast: root cannot be a child")
	}
	if c.parent != None {
		panic(fmt.Sprintf("hast: node %d already has parent %d", child, c.parent))
	}
	c.parent = parent
	p.children = append(p.children, child)
}

// Unwrap replaces id in its parent's child list with id's own children. The
// unwrapped node is left detached and childless.
func (t *Tree) Unwrap(id NodeID) {
	n := t.node(id)
	if n.parent == None {
		return
	}
	p := t.node(n.parent)
	for i, c := range p.children {
		if c != id {
			continue
		}
		adopted := n.children
		for _, a := range adopted {
			t.nodes[a].parent = n.parent
		}
		rest := append([]NodeID(nil), p.children[i+1:]...)
		p.children = append(append(p.children[:i], adopted...), rest...)
		break
	}
	n.parent = None
	n.children = nil
}

// Kind returns the kind of id
func (t *Tree) Kind(id NodeID) Kind {
	return t.node(id).kind
}

// IsElement reports whether id is an element with the given tag. An empty
// tag matches any element.
func (t *Tree) IsElement(id NodeID, tag string) bool {
	n := t.node(id)
	return n.kind == KindElement && (tag == "" || n.tag == tag)
}

// Tag returns the tag name of an element, or "" for other kinds
func (t *Tree) Tag(id NodeID) string {
	return t.node(id).tag
}

// Value returns the value of a text node
func (t *Tree) Value(id NodeID) string {
	return t.node(id).value
}

// SetValue replaces the value of a text node
func (t *Tree) SetValue(id NodeID, value string) {
	t.node(id).value = value
}

// Props returns the mutable attribute list of id
func (t *Tree) Props(id NodeID) *Properties {
	return &t.node(id).props
}

// Parent returns the parent of id, or None
func (t *Tree) Parent(id NodeID) NodeID {
	return t.node(id).parent
}

// Children returns the children of id. The returned slice must not be
// modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.node(id).children
}

// LastChild returns the last child of id, or None
func (t *Tree) LastChild(id NodeID) NodeID {
	children := t.node(id).children
	if len(children) == 0 {
		return None
	}
	return children[len(children)-1]
}

// LastElementChild returns the last child of id that is an element, or None
func (t *Tree) LastElementChild(id NodeID) NodeID {
	children := t.node(id).children
	for i := len(children) - 1; i >= 0; i-- {
		if t.nodes[children[i]].kind == KindElement {
			return children[i]
		}
	}
	return None
}

// TextContent concatenates the values of all text descendants of id
func (t *Tree) TextContent(id NodeID) string {
	var sb strings.Builder
	t.Walk(id, func(n NodeID) bool {
		if t.nodes[n].kind == KindText {
			sb.WriteString(t.nodes[n].value)
		}
		return true
	})
	return sb.String()
}

// Walk visits id and its descendants in document order. fn is called on a
// node before its children are read, so fn may rewrite the child list of the
// node it is visiting. Returning false skips the node's children.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) {
	if !fn(id) {
		return
	}
	for i := 0; i < len(t.nodes[id].children); i++ {
		t.Walk(t.nodes[id].children[i], fn)
	}
}

// Depth returns the number of ancestors of id
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for p := t.node(id).parent; p != None; p = t.nodes[p].parent {
		depth++
	}
	return depth
}
