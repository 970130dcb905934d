package transform

import (
	"strconv"

	"github.com/tsawler/docstree/hast"
	"github.com/tsawler/docstree/model"
	"github.com/tsawler/docstree/style"
)

// ListState is the insertion context of the list currently open in a fold.
// Containers[k] is the open list container at nesting level k and Items[k]
// the last li appended to it, so len(Containers) == Prev.NestingLevel+1
// whenever a list is open. The zero value has no open list.
type ListState struct {
	Root       hast.NodeID
	Containers []hast.NodeID
	Items      []hast.NodeID
	Prev       *model.ListMembership
}

// Open reports whether a list is open
func (s ListState) Open() bool {
	return s.Prev != nil
}

// Depth returns the number of open nesting levels
func (s ListState) Depth() int {
	return len(s.Containers)
}

// Close returns the state after a block that is not a list item. The list
// built so far is sealed.
func (s ListState) Close() ListState {
	return ListState{}
}

// clone copies the level slices so a step never mutates the state it was
// given.
func (s ListState) clone() ListState {
	return ListState{
		Root:       s.Root,
		Containers: append([]hast.NodeID(nil), s.Containers...),
		Items:      append([]hast.NodeID(nil), s.Items...),
		Prev:       s.Prev,
	}
}

// truncate closes every level deeper than level
func (s *ListState) truncate(level int) {
	s.Containers = s.Containers[:level+1]
	s.Items = s.Items[:level+1]
}

// ListAction is the placement decided for a list item
type ListAction int

const (
	// ListActionStart starts a new top-level list
	ListActionStart ListAction = iota
	// ListActionNest opens one or more levels below the previous item
	ListActionNest
	// ListActionContinue appends to an open level at or above the previous item
	ListActionContinue
)

func (a ListAction) String() string {
	switch a {
	case ListActionStart:
		return "start"
	case ListActionNest:
		return "nest"
	case ListActionContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// DecideListAction decides how cur is placed after prev, which is nil when
// the preceding block was not a list item.
//
// An item continues the open list when it shares prev's list group or when
// it sits at a positive nesting level, whatever its group. Lists whose group
// id changes across a section boundary while staying visually nested depend
// on the second rule.
func DecideListAction(prev *model.ListMembership, cur model.ListMembership) ListAction {
	if prev == nil || (cur.ListID != prev.ListID && cur.NestingLevel == 0) {
		return ListActionStart
	}
	if cur.NestingLevel > prev.NestingLevel {
		return ListActionNest
	}
	return ListActionContinue
}

// ListPlacement is the outcome of one engine step
type ListPlacement struct {
	Action ListAction
	// Absorbed is true when the item was attached inside the open list and
	// contributes no top-level node.
	Absorbed bool
	// Node is the new top-level list container when Absorbed is false.
	Node hast.NodeID
	// Fillers counts the empty nodes synthesized to bridge skipped levels.
	Fillers int
}

type listEngine struct {
	t *Transformer
}

func newListEngine(t *Transformer) *listEngine {
	return &listEngine{t: t}
}

// Step places the li built for a list item with membership cur and returns
// the next state. The given state is not modified.
func (e *listEngine) Step(state ListState, cur model.ListMembership, li hast.NodeID) (ListState, ListPlacement, error) {
	level := cur.NestingLevel
	if level < 0 {
		level = 0
		cur.NestingLevel = 0
	}

	action := DecideListAction(state.Prev, cur)
	placement := ListPlacement{Action: action, Absorbed: action != ListActionStart, Node: hast.None}

	switch action {
	case ListActionStart:
		next, fillers, err := e.start(cur, li)
		if err != nil {
			return state, placement, err
		}
		placement.Node = next.Root
		placement.Fillers = fillers
		return next, placement, nil

	case ListActionNest:
		container, err := e.container(cur)
		if err != nil {
			return state, placement, err
		}
		next := state.clone()
		fillers := e.fill(&next, level)
		e.t.tree.AppendChild(container, li)
		e.t.tree.AppendChild(next.Items[level-1], container)
		next.Containers = append(next.Containers, container)
		next.Items = append(next.Items, li)
		next.Prev = &cur
		placement.Fillers = fillers
		return next, placement, nil

	default:
		next := state.clone()
		next.truncate(level)
		e.t.tree.AppendChild(next.Containers[level], li)
		next.Items[level] = li
		next.Prev = &cur
		return next, placement, nil
	}
}

// start opens a new top-level list for an item at level. An item that starts
// below level 0 gets filler levels above it, so output depth always equals
// nesting level. The top-level container still takes the list's level 0
// glyph so later level 0 items are numbered correctly.
func (e *listEngine) start(cur model.ListMembership, li hast.NodeID) (ListState, int, error) {
	level := cur.NestingLevel
	container, err := e.container(cur)
	if err != nil {
		return ListState{}, 0, err
	}
	e.t.tree.AppendChild(container, li)

	if level == 0 {
		return ListState{
			Root:       container,
			Containers: []hast.NodeID{container},
			Items:      []hast.NodeID{li},
			Prev:       &cur,
		}, 0, nil
	}

	root, err := e.container(model.ListMembership{ListID: cur.ListID})
	if err != nil {
		return ListState{}, 0, err
	}
	tree := e.t.tree
	rootItem := tree.NewElement("li", nil)
	tree.AppendChild(root, rootItem)
	next := ListState{
		Root:       root,
		Containers: []hast.NodeID{root},
		Items:      []hast.NodeID{rootItem},
	}
	fillers := 1 + e.fill(&next, level)
	tree.AppendChild(next.Items[level-1], container)
	next.Containers = append(next.Containers, container)
	next.Items = append(next.Items, li)
	next.Prev = &cur
	return next, fillers, nil
}

// fill synthesizes an empty ul > li for every level between the deepest open
// level and level-1, leaving Items[level-1] as the attachment point for a
// container at level.
func (e *listEngine) fill(s *ListState, level int) int {
	tree := e.t.tree
	fillers := 0
	for k := len(s.Containers); k < level; k++ {
		item := tree.NewElement("li", nil)
		container := tree.NewElement("ul", nil, item)
		tree.AppendChild(s.Items[k-1], container)
		s.Containers = append(s.Containers, container)
		s.Items = append(s.Items, item)
		fillers++
	}
	return fillers
}

// container creates the list element for cur's group and level. Absent and
// NONE glyphs give ul; any numbered or lettered glyph gives ol with its
// start number and list-style-type.
func (e *listEngine) container(cur model.ListMembership) (hast.NodeID, error) {
	nl, err := e.t.doc.NestingLevel(cur.ListID, cur.NestingLevel)
	if err != nil {
		return hast.None, err
	}

	props := hast.Properties{{Key: "class", Value: "nesting-level-" + strconv.Itoa(cur.NestingLevel+1)}}
	if !nl.Ordered() {
		return e.t.tree.NewElement("ul", props), nil
	}

	if nl.StartNumber != 0 && nl.StartNumber != 1 {
		props.Set("start", strconv.Itoa(nl.StartNumber))
	}
	if lst := style.ListStyleType(nl.GlyphType); lst != "" {
		props.Set("list-style-type", lst)
	}
	return e.t.tree.NewElement("ol", props), nil
}
