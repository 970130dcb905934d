package reader

import "github.com/tsawler/docstree/model"

func dimension(w *wireDimension) model.Dimension {
	if w == nil {
		return model.Dimension{}
	}
	return model.Dimension{Magnitude: w.Magnitude, Unit: w.Unit}
}

// optionalColor maps a color to model form. An empty object ({}) is
// transparent; a color without rgbColor is black.
func optionalColor(w *wireOptionalColor) model.OptionalColor {
	if w == nil || w.Color == nil {
		return model.OptionalColor{}
	}
	var rgb model.RGBColor
	if w.Color.RGBColor != nil {
		rgb = model.RGBColor{Red: w.Color.RGBColor.Red, Green: w.Color.RGBColor.Green, Blue: w.Color.RGBColor.Blue}
	}
	return model.OptionalColor{Color: &rgb}
}

func border(w *wireBorder) model.Border {
	if w == nil {
		return model.Border{}
	}
	return model.Border{
		Color:     optionalColor(w.Color),
		Width:     dimension(w.Width),
		Padding:   dimension(w.Padding),
		DashStyle: w.DashStyle,
	}
}

func paragraphStyle(w wireParagraphStyle) model.ParagraphStyle {
	return model.ParagraphStyle{
		NamedStyleType:  w.NamedStyleType,
		Alignment:       w.Alignment,
		Direction:       w.Direction,
		HeadingID:       w.HeadingID,
		IndentStart:     dimension(w.IndentStart),
		IndentEnd:       dimension(w.IndentEnd),
		IndentFirstLine: dimension(w.IndentFirstLine),
		LineSpacing:     w.LineSpacing,
		SpaceAbove:      dimension(w.SpaceAbove),
		SpaceBelow:      dimension(w.SpaceBelow),
		Borders: model.ParagraphBorders{
			Top:     border(w.BorderTop),
			Bottom:  border(w.BorderBottom),
			Left:    border(w.BorderLeft),
			Right:   border(w.BorderRight),
			Between: border(w.BorderBetween),
		},
	}
}

func textStyle(w wireTextStyle) model.TextStyle {
	ts := model.TextStyle{
		Bold:            w.Bold,
		Italic:          w.Italic,
		Underline:       w.Underline,
		Strikethrough:   w.Strikethrough,
		BaselineOffset:  w.BaselineOffset,
		FontSize:        dimension(w.FontSize),
		BackgroundColor: optionalColor(w.BackgroundColor),
		ForegroundColor: optionalColor(w.ForegroundColor),
	}
	if w.WeightedFontFamily != nil {
		ts.WeightedFontFamily = model.WeightedFontFamily{
			FontFamily: w.WeightedFontFamily.FontFamily,
			Weight:     w.WeightedFontFamily.Weight,
		}
	}
	if w.Link != nil {
		link := &model.Link{URL: w.Link.URL, BookmarkID: w.Link.BookmarkID, HeadingID: w.Link.HeadingID}
		if link.BookmarkID == "" && w.Link.Bookmark != nil {
			link.BookmarkID = w.Link.Bookmark.ID
		}
		if link.HeadingID == "" && w.Link.Heading != nil {
			link.HeadingID = w.Link.Heading.ID
		}
		ts.Link = link
	}
	return ts
}

func tableCellStyle(w wireTableCellStyle) model.TableCellStyle {
	return model.TableCellStyle{
		BackgroundColor:  optionalColor(w.BackgroundColor),
		BorderTop:        border(w.BorderTop),
		BorderBottom:     border(w.BorderBottom),
		BorderLeft:       border(w.BorderLeft),
		BorderRight:      border(w.BorderRight),
		PaddingTop:       dimension(w.PaddingTop),
		PaddingBottom:    dimension(w.PaddingBottom),
		PaddingLeft:      dimension(w.PaddingLeft),
		PaddingRight:     dimension(w.PaddingRight),
		ContentAlignment: w.ContentAlignment,
	}
}
