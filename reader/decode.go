package reader

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/docstree/model"
)

func decode(data []byte) (*model.Document, error) {
	var wd wireDocument
	if err := json.Unmarshal(data, &wd); err != nil {
		return nil, fmt.Errorf("parsing document JSON: %w", err)
	}
	if wd.Body == nil {
		return nil, ErrEmptyDocument
	}

	doc := model.NewDocument()
	doc.DocumentID = wd.DocumentID
	doc.Title = wd.Title

	for id, wl := range wd.Lists {
		list := model.List{NestingLevels: make([]model.NestingLevel, len(wl.ListProperties.NestingLevels))}
		for i, nl := range wl.ListProperties.NestingLevels {
			list.NestingLevels[i] = model.NestingLevel{GlyphType: nl.GlyphType, StartNumber: nl.StartNumber}
		}
		doc.Lists[id] = list
	}

	for id, wo := range wd.InlineObjects {
		doc.InlineObjects[id] = inlineObject(id, wo)
	}

	blocks, err := decodeContent(wd.Body.Content, "body")
	if err != nil {
		return nil, err
	}
	doc.Body = blocks
	return doc, nil
}

// decodeContent classifies each structural element by the field it sets
func decodeContent(content []map[string]json.RawMessage, path string) ([]model.Block, error) {
	blocks := make([]model.Block, 0, len(content))

	for i, el := range content {
		elPath := fmt.Sprintf("%s.content[%d]", path, i)

		if raw, ok := el["paragraph"]; ok {
			var wp wireParagraph
			if err := json.Unmarshal(raw, &wp); err != nil {
				return nil, fmt.Errorf("%s.paragraph: %w", elPath, err)
			}
			p, err := paragraph(wp, elPath+".paragraph")
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, p)
			continue
		}

		if raw, ok := el["table"]; ok {
			var wt wireTable
			if err := json.Unmarshal(raw, &wt); err != nil {
				return nil, fmt.Errorf("%s.table: %w", elPath, err)
			}
			t, err := table(wt, elPath+".table")
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, t)
			continue
		}

		blocks = append(blocks, &model.Unsupported{Name: fieldName(el)})
	}

	return blocks, nil
}

// fieldName returns the content field of an element, skipping the
// startIndex/endIndex bookkeeping fields.
func fieldName(el map[string]json.RawMessage) string {
	keys := make([]string, 0, len(el))
	for k := range el {
		if strings.HasSuffix(k, "Index") {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "unknown"
	}
	sort.Strings(keys)
	return keys[0]
}

func paragraph(wp wireParagraph, path string) (*model.Paragraph, error) {
	p := &model.Paragraph{
		Style: paragraphStyle(wp.ParagraphStyle),
		Runs:  make([]model.Run, 0, len(wp.Elements)),
	}
	if wp.Bullet != nil {
		p.Bullet = &model.ListMembership{ListID: wp.Bullet.ListID, NestingLevel: wp.Bullet.NestingLevel}
	}

	for i, el := range wp.Elements {
		run, err := paragraphElement(el)
		if err != nil {
			return nil, fmt.Errorf("%s.elements[%d]: %w", path, i, err)
		}
		p.Runs = append(p.Runs, run)
	}
	return p, nil
}

func paragraphElement(el map[string]json.RawMessage) (model.Run, error) {
	if raw, ok := el["inlineObjectElement"]; ok {
		var w wireInlineObjectElement
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &model.InlineObjectRun{InlineObjectID: w.InlineObjectID}, nil
	}

	if raw, ok := el["person"]; ok {
		var w wirePerson
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &model.PersonRun{
			PersonID: w.PersonID,
			Name:     w.PersonProperties.Name,
			Email:    w.PersonProperties.Email,
		}, nil
	}

	if raw, ok := el["richLink"]; ok {
		var w wireRichLink
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &model.RichLinkRun{
			RichLinkID: w.RichLinkID,
			Title:      w.RichLinkProperties.Title,
			URI:        w.RichLinkProperties.URI,
		}, nil
	}

	if raw, ok := el["textRun"]; ok {
		var w wireTextRun
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &model.TextRun{Content: w.Content, Style: textStyle(w.TextStyle)}, nil
	}

	return &model.UnsupportedRun{Name: fieldName(el)}, nil
}

func table(wt wireTable, path string) (*model.Table, error) {
	t := &model.Table{Rows: make([]model.TableRow, len(wt.TableRows))}
	for r, row := range wt.TableRows {
		cells := make([]model.TableCell, len(row.TableCells))
		for c, cell := range row.TableCells {
			content, err := decodeContent(cell.Content, fmt.Sprintf("%s.tableRows[%d].tableCells[%d]", path, r, c))
			if err != nil {
				return nil, err
			}
			cells[c] = model.TableCell{Content: content, Style: tableCellStyle(cell.TableCellStyle)}
		}
		t.Rows[r].Cells = cells
	}
	return t, nil
}

func inlineObject(id string, wo wireInlineObject) model.InlineObject {
	eo := wo.InlineObjectProperties.EmbeddedObject
	objectID := wo.ObjectID
	if objectID == "" {
		objectID = id
	}
	return model.InlineObject{
		ObjectID:     objectID,
		Title:        eo.Title,
		Description:  eo.Description,
		ContentURI:   eo.ImageProperties.ContentURI,
		SourceURI:    eo.ImageProperties.SourceURI,
		Width:        dimension(eo.Size.Width),
		Height:       dimension(eo.Size.Height),
		Border:       border(eo.EmbeddedObjectBorder),
		MarginTop:    dimension(eo.MarginTop),
		MarginBottom: dimension(eo.MarginBottom),
		MarginLeft:   dimension(eo.MarginLeft),
		MarginRight:  dimension(eo.MarginRight),
	}
}
