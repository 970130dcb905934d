package model

// BlockKind represents the type of a body block
type BlockKind int

const (
	BlockKindUnsupported BlockKind = iota
	BlockKindParagraph
	BlockKindTable
)

func (k BlockKind) String() string {
	switch k {
	case BlockKindParagraph:
		return "Paragraph"
	case BlockKindTable:
		return "Table"
	default:
		return "Unsupported"
	}
}

// Block is the interface for all structural body elements
type Block interface {
	Kind() BlockKind
	block()
}

// Paragraph is a paragraph of inline runs. A paragraph with a non-nil Bullet
// is a list item.
type Paragraph struct {
	Style  ParagraphStyle
	Runs   []Run
	Bullet *ListMembership
}

func (p *Paragraph) Kind() BlockKind { return BlockKindParagraph }
func (p *Paragraph) block()          {}

// IsListItem reports whether the paragraph belongs to a list
func (p *Paragraph) IsListItem() bool { return p.Bullet != nil }

// ListMembership ties a list item paragraph to its list group
type ListMembership struct {
	ListID       string
	NestingLevel int // zero-based
}

// Unsupported is a structural element the transformer does not handle
// (section breaks, tables of contents, ...).
type Unsupported struct {
	Name string // field name of the element, e.g. "sectionBreak"
}

func (u *Unsupported) Kind() BlockKind { return BlockKindUnsupported }
func (u *Unsupported) block()          {}

// ListMembershipOf returns the list membership of b, or nil when b is not a
// list item paragraph.
func ListMembershipOf(b Block) *ListMembership {
	p, ok := b.(*Paragraph)
	if !ok {
		return nil
	}
	return p.Bullet
}

// RunKind represents the type of an inline run
type RunKind int

const (
	RunKindUnsupported RunKind = iota
	RunKindText
	RunKindInlineObject
	RunKindPerson
	RunKindRichLink
)

func (k RunKind) String() string {
	switch k {
	case RunKindText:
		return "TextRun"
	case RunKindInlineObject:
		return "InlineObject"
	case RunKindPerson:
		return "Person"
	case RunKindRichLink:
		return "RichLink"
	default:
		return "Unsupported"
	}
}

// Run is the interface for all inline paragraph content
type Run interface {
	Kind() RunKind
	run()
}

// TextRun is a run of text sharing one style
type TextRun struct {
	Content string
	Style   TextStyle
}

func (r *TextRun) Kind() RunKind { return RunKindText }
func (r *TextRun) run()          {}

// InlineObjectRun references an entry of Document.InlineObjects
type InlineObjectRun struct {
	InlineObjectID string
}

func (r *InlineObjectRun) Kind() RunKind { return RunKindInlineObject }
func (r *InlineObjectRun) run()          {}

// PersonRun is a mention of a person
type PersonRun struct {
	PersonID string
	Name     string
	Email    string
}

func (r *PersonRun) Kind() RunKind { return RunKindPerson }
func (r *PersonRun) run()          {}

// RichLinkRun is a link chip to another resource
type RichLinkRun struct {
	RichLinkID string
	Title      string
	URI        string
}

func (r *RichLinkRun) Kind() RunKind { return RunKindRichLink }
func (r *RichLinkRun) run()          {}

// UnsupportedRun is a paragraph element the transformer does not handle
type UnsupportedRun struct {
	Name string
}

func (r *UnsupportedRun) Kind() RunKind { return RunKindUnsupported }
func (r *UnsupportedRun) run()          {}
