package reader

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/docstree/format"
	"github.com/tsawler/docstree/internal/filters"
	"github.com/tsawler/docstree/model"
)

const samplePath = "../testdata/sample.json"

func readSample(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(samplePath)
	if err != nil {
		t.Fatalf("reading sample: %v", err)
	}
	return data
}

func TestOpen(t *testing.T) {
	r, err := Open(samplePath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	doc := r.Document()
	if doc.Title != "Sample" || doc.DocumentID != "1AbCdEf" {
		t.Errorf("Document() = %q/%q, want Sample/1AbCdEf", doc.Title, doc.DocumentID)
	}
	if r.Size() == 0 {
		t.Error("Size() = 0")
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestOpenNonexistent(t *testing.T) {
	if _, err := Open("nonexistent.json"); err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestParseBlocks(t *testing.T) {
	doc, err := ParseBytes(readSample(t))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	wantKinds := []model.BlockKind{
		model.BlockKindUnsupported,
		model.BlockKindParagraph,
		model.BlockKindParagraph,
		model.BlockKindParagraph,
		model.BlockKindParagraph,
		model.BlockKindParagraph,
		model.BlockKindTable,
		model.BlockKindUnsupported,
	}
	if doc.BlockCount() != len(wantKinds) {
		t.Fatalf("BlockCount() = %d, want %d", doc.BlockCount(), len(wantKinds))
	}
	for i, want := range wantKinds {
		if got := doc.Body[i].Kind(); got != want {
			t.Errorf("Body[%d].Kind() = %s, want %s", i, got, want)
		}
	}

	if name := doc.Body[0].(*model.Unsupported).Name; name != "sectionBreak" {
		t.Errorf("Body[0].Name = %q, want sectionBreak", name)
	}
	if name := doc.Body[7].(*model.Unsupported).Name; name != "tableOfContents" {
		t.Errorf("Body[7].Name = %q, want tableOfContents", name)
	}

	h := doc.Body[1].(*model.Paragraph)
	if h.Style.NamedStyleType != "HEADING_1" || h.Style.HeadingID != "h.abc123" {
		t.Errorf("heading style = %+v", h.Style)
	}
	if h.IsListItem() {
		t.Error("heading decoded as list item")
	}

	item := doc.Body[4].(*model.Paragraph)
	if item.Bullet == nil || item.Bullet.ListID != "kix.list1" || item.Bullet.NestingLevel != 1 {
		t.Errorf("Bullet = %+v, want kix.list1 level 1", item.Bullet)
	}
}

func TestParseRuns(t *testing.T) {
	doc, err := ParseBytes(readSample(t))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	p := doc.Body[2].(*model.Paragraph)

	wantKinds := []model.RunKind{
		model.RunKindText,
		model.RunKindText,
		model.RunKindText,
		model.RunKindText,
		model.RunKindPerson,
		model.RunKindRichLink,
		model.RunKindInlineObject,
		model.RunKindUnsupported,
		model.RunKindText,
	}
	if len(p.Runs) != len(wantKinds) {
		t.Fatalf("len(Runs) = %d, want %d", len(p.Runs), len(wantKinds))
	}
	for i, want := range wantKinds {
		if got := p.Runs[i].Kind(); got != want {
			t.Errorf("Runs[%d].Kind() = %s, want %s", i, got, want)
		}
	}

	if !p.Runs[0].(*model.TextRun).Style.Bold {
		t.Error("Runs[0] should be bold")
	}
	if link := p.Runs[1].(*model.TextRun).Style.Link; link == nil || link.HeadingID != "h.abc123" {
		t.Errorf("Runs[1] link = %+v", link)
	}
	fg := p.Runs[2].(*model.TextRun).Style.ForegroundColor
	if !fg.IsSet() || fg.Color.Red != 1 || fg.Color.Green != 0 {
		t.Errorf("Runs[2] foreground = %+v", fg.Color)
	}
	if link := p.Runs[3].(*model.TextRun).Style.Link; link == nil || link.BookmarkID != "id.xyz" {
		t.Errorf("Runs[3] link = %+v", link)
	}
	if person := p.Runs[4].(*model.PersonRun); person.Name != "Ada" || person.Email != "ada@example.com" {
		t.Errorf("person = %+v", person)
	}
	if rl := p.Runs[5].(*model.RichLinkRun); rl.Title != "Roadmap" || rl.URI != "https://example.com/roadmap" {
		t.Errorf("rich link = %+v", rl)
	}
	if name := p.Runs[7].(*model.UnsupportedRun).Name; name != "autoText" {
		t.Errorf("unsupported run = %q, want autoText", name)
	}

	if p.Style.Alignment != "JUSTIFIED" || p.Style.SpaceAbove.Magnitude == nil || *p.Style.SpaceAbove.Magnitude != 6 {
		t.Errorf("paragraph style = %+v", p.Style)
	}
}

func TestParseSideTables(t *testing.T) {
	doc, err := ParseBytes(readSample(t))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	nl, err := doc.NestingLevel("kix.list1", 1)
	if err != nil {
		t.Fatalf("NestingLevel() error = %v", err)
	}
	if nl.GlyphType != "ALPHA" || !nl.Ordered() {
		t.Errorf("kix.list1[1] = %+v, want ordered ALPHA", nl)
	}
	if nl, _ := doc.NestingLevel("kix.list2", 0); nl.Ordered() {
		t.Errorf("kix.list2[0] = %+v, want unordered", nl)
	}

	obj, ok := doc.InlineObjects["kix.img1"]
	if !ok {
		t.Fatal("inline object kix.img1 missing")
	}
	if obj.ContentURI != "https://img.example.com/logo.png" || obj.Description != "Company logo" {
		t.Errorf("inline object = %+v", obj)
	}
	if obj.Width.Magnitude == nil || *obj.Width.Magnitude != 120 || obj.Width.Unit != "PT" {
		t.Errorf("inline object width = %+v", obj.Width)
	}
	if obj.Border.Width.IsSet() {
		t.Error("border width without magnitude decoded as set")
	}
	if !obj.Border.Color.IsSet() {
		t.Error("border color {} should be present and black")
	}
}

func TestParseTable(t *testing.T) {
	doc, err := ParseBytes(readSample(t))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	table := doc.Body[6].(*model.Table)
	if table.RowCount() != 1 || table.ColCount() != 2 {
		t.Fatalf("table = %dx%d, want 1x2", table.RowCount(), table.ColCount())
	}
	cell := table.Rows[0].Cells[0]
	if cell.Style.ContentAlignment != "MIDDLE" || !cell.Style.BackgroundColor.IsSet() {
		t.Errorf("cell style = %+v", cell.Style)
	}
	nested := table.Rows[0].Cells[1].Content[0].(*model.Paragraph)
	if !nested.IsListItem() || nested.Bullet.ListID != "kix.list2" {
		t.Errorf("nested bullet = %+v", nested.Bullet)
	}
}

func TestParseCompressed(t *testing.T) {
	data := readSample(t)

	for _, c := range []format.Compression{format.Gzip, format.Zstd, format.LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			enc, err := filters.Encode(c, data)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			doc, err := Parse(bytes.NewReader(enc))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if doc.Title != "Sample" {
				t.Errorf("Title = %q, want Sample", doc.Title)
			}
		})
	}
}

func TestParseBrotliNeedsHint(t *testing.T) {
	enc, err := filters.Encode(format.Brotli, readSample(t))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if _, err := ParseBytes(enc); !errors.Is(err, ErrNotJSON) {
		t.Errorf("ParseBytes(brotli) error = %v, want ErrNotJSON", err)
	}
	if _, err := ParseBytes(enc, WithCompression(format.Brotli)); err != nil {
		t.Errorf("ParseBytes(WithCompression) error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "doc.json.br")
	if err := os.WriteFile(path, enc, 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open(.br) error = %v", err)
	}
	defer r.Close()
	if r.Document().Title != "Sample" {
		t.Errorf("Title = %q, want Sample", r.Document().Title)
	}
}

func TestParseMaxDecodedSize(t *testing.T) {
	enc, err := filters.Encode(format.Gzip, readSample(t))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, err := ParseBytes(enc, WithMaxDecodedSize(64)); !errors.Is(err, filters.ErrLimitExceeded) {
		t.Errorf("ParseBytes() error = %v, want ErrLimitExceeded", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"no body", `{"title": "x"}`, ErrEmptyDocument},
		{"not json", `<html></html>`, ErrNotJSON},
		{"empty", ``, ErrNotJSON},
		{"array", `[1, 2]`, ErrNotJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse(strings.NewReader(`{"body": {"content": [{"paragraph": 7}]}}`)); err == nil {
		t.Error("Parse() of malformed paragraph should fail")
	} else if !strings.Contains(err.Error(), "body.content[0].paragraph") {
		t.Errorf("error %q should locate the element", err)
	}
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"index fields skipped", []string{"startIndex", "endIndex", "sectionBreak"}, "sectionBreak"},
		{"only index fields", []string{"startIndex"}, "unknown"},
		{"several", []string{"pageBreak", "footnoteReference"}, "footnoteReference"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := make(map[string]json.RawMessage, len(tt.keys))
			for _, k := range tt.keys {
				el[k] = json.RawMessage("{}")
			}
			if got := fieldName(el); got != tt.want {
				t.Errorf("fieldName() = %q, want %q", got, tt.want)
			}
		})
	}
}
