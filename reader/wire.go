package reader

import "encoding/json"

// The wire types mirror the Docs REST API JSON. Only fields the transformer
// consumes are declared.

type wireDocument struct {
	DocumentID    string                      `json:"documentId"`
	Title         string                      `json:"title"`
	Body          *wireBody                   `json:"body"`
	Lists         map[string]wireList         `json:"lists"`
	InlineObjects map[string]wireInlineObject `json:"inlineObjects"`
}

type wireBody struct {
	Content []map[string]json.RawMessage `json:"content"`
}

type wireParagraph struct {
	Elements       []map[string]json.RawMessage `json:"elements"`
	ParagraphStyle wireParagraphStyle           `json:"paragraphStyle"`
	Bullet         *wireBullet                  `json:"bullet"`
}

type wireBullet struct {
	ListID       string `json:"listId"`
	NestingLevel int    `json:"nestingLevel"`
}

type wireDimension struct {
	Magnitude *float64 `json:"magnitude"`
	Unit      string   `json:"unit"`
}

type wireRGB struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

type wireColor struct {
	RGBColor *wireRGB `json:"rgbColor"`
}

type wireOptionalColor struct {
	Color *wireColor `json:"color"`
}

type wireBorder struct {
	Color     *wireOptionalColor `json:"color"`
	Width     *wireDimension     `json:"width"`
	Padding   *wireDimension     `json:"padding"`
	DashStyle string             `json:"dashStyle"`
}

type wireParagraphStyle struct {
	NamedStyleType  string         `json:"namedStyleType"`
	Alignment       string         `json:"alignment"`
	Direction       string         `json:"direction"`
	HeadingID       string         `json:"headingId"`
	IndentStart     *wireDimension `json:"indentStart"`
	IndentEnd       *wireDimension `json:"indentEnd"`
	IndentFirstLine *wireDimension `json:"indentFirstLine"`
	LineSpacing     float64        `json:"lineSpacing"`
	SpaceAbove      *wireDimension `json:"spaceAbove"`
	SpaceBelow      *wireDimension `json:"spaceBelow"`
	BorderTop       *wireBorder    `json:"borderTop"`
	BorderBottom    *wireBorder    `json:"borderBottom"`
	BorderLeft      *wireBorder    `json:"borderLeft"`
	BorderRight     *wireBorder    `json:"borderRight"`
	BorderBetween   *wireBorder    `json:"borderBetween"`
}

type wireIDRef struct {
	ID string `json:"id"`
}

type wireLink struct {
	URL        string     `json:"url"`
	BookmarkID string     `json:"bookmarkId"`
	HeadingID  string     `json:"headingId"`
	Bookmark   *wireIDRef `json:"bookmark"`
	Heading    *wireIDRef `json:"heading"`
}

type wireWeightedFontFamily struct {
	FontFamily string `json:"fontFamily"`
	Weight     int    `json:"weight"`
}

type wireTextStyle struct {
	Bold               bool                    `json:"bold"`
	Italic             bool                    `json:"italic"`
	Underline          bool                    `json:"underline"`
	Strikethrough      bool                    `json:"strikethrough"`
	BaselineOffset     string                  `json:"baselineOffset"`
	FontSize           *wireDimension          `json:"fontSize"`
	WeightedFontFamily *wireWeightedFontFamily `json:"weightedFontFamily"`
	BackgroundColor    *wireOptionalColor      `json:"backgroundColor"`
	ForegroundColor    *wireOptionalColor      `json:"foregroundColor"`
	Link               *wireLink               `json:"link"`
}

type wireTextRun struct {
	Content   string        `json:"content"`
	TextStyle wireTextStyle `json:"textStyle"`
}

type wireInlineObjectElement struct {
	InlineObjectID string `json:"inlineObjectId"`
}

type wirePerson struct {
	PersonID         string `json:"personId"`
	PersonProperties struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"personProperties"`
}

type wireRichLink struct {
	RichLinkID         string `json:"richLinkId"`
	RichLinkProperties struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	} `json:"richLinkProperties"`
}

type wireTable struct {
	TableRows []struct {
		TableCells []struct {
			Content        []map[string]json.RawMessage `json:"content"`
			TableCellStyle wireTableCellStyle           `json:"tableCellStyle"`
		} `json:"tableCells"`
	} `json:"tableRows"`
}

type wireTableCellStyle struct {
	BackgroundColor  *wireOptionalColor `json:"backgroundColor"`
	BorderTop        *wireBorder        `json:"borderTop"`
	BorderBottom     *wireBorder        `json:"borderBottom"`
	BorderLeft       *wireBorder        `json:"borderLeft"`
	BorderRight      *wireBorder        `json:"borderRight"`
	PaddingTop       *wireDimension     `json:"paddingTop"`
	PaddingBottom    *wireDimension     `json:"paddingBottom"`
	PaddingLeft      *wireDimension     `json:"paddingLeft"`
	PaddingRight     *wireDimension     `json:"paddingRight"`
	ContentAlignment string             `json:"contentAlignment"`
}

type wireList struct {
	ListProperties struct {
		NestingLevels []struct {
			GlyphType   string `json:"glyphType"`
			StartNumber int    `json:"startNumber"`
		} `json:"nestingLevels"`
	} `json:"listProperties"`
}

type wireInlineObject struct {
	ObjectID               string `json:"objectId"`
	InlineObjectProperties struct {
		EmbeddedObject struct {
			Title           string `json:"title"`
			Description     string `json:"description"`
			ImageProperties struct {
				ContentURI string `json:"contentUri"`
				SourceURI  string `json:"sourceUri"`
			} `json:"imageProperties"`
			Size struct {
				Width  *wireDimension `json:"width"`
				Height *wireDimension `json:"height"`
			} `json:"size"`
			EmbeddedObjectBorder *wireBorder    `json:"embeddedObjectBorder"`
			MarginTop            *wireDimension `json:"marginTop"`
			MarginBottom         *wireDimension `json:"marginBottom"`
			MarginLeft           *wireDimension `json:"marginLeft"`
			MarginRight          *wireDimension `json:"marginRight"`
		} `json:"embeddedObject"`
	} `json:"inlineObjectProperties"`
}
