package report

import (
	"github.com/benedoc-inc/nearmiss/layout"
	"github.com/benedoc-inc/nearmiss/writer"
)

// Page geometry: A4 with 20pt margins.
const (
	margin = 20

	contentWidth  = 595 - 2*margin
	contentHeight = 842 - 2*margin

	half    = contentWidth / 2.0
	quarter = contentWidth / 4.0
)

var (
	pageSize = writer.PageSizeA4
	frame    = layout.Frame{X: margin, Top: 842 - margin, Width: contentWidth, Height: contentHeight}
)

// Header sizing.
const (
	logoSide     = 50
	headerHeight = 50
)

// sectionGap is the space between the header and the first section, and
// between attachments.
const sectionGap = 10

var (
	titleStyle    = layout.Style{Size: 18, Leading: 20, Align: layout.AlignCenter}
	subtitleStyle = layout.Style{Size: 10, Leading: 10, Align: layout.AlignCenter}
	baseStyle     = layout.Style{Size: 10, Leading: 11, Align: layout.AlignJustify}
	labelStyle    = layout.Style{Size: 10, Leading: 12, Align: layout.AlignLeft}
)

func title(text string) *layout.Paragraph {
	return layout.NewParagraph(titleStyle, layout.Plain(text))
}

// subtitle is an underlined centered heading.
func subtitle(text string) *layout.Paragraph {
	return layout.NewParagraph(subtitleStyle, layout.Underlined(text))
}

func body(text string) *layout.Paragraph {
	return layout.NewParagraph(baseStyle, layout.Plain(text))
}

// labelled is an underlined label followed inline by free text.
func labelled(label, text string) *layout.Paragraph {
	return layout.NewParagraph(baseStyle, layout.Underlined(label), layout.Plain(" "+text))
}

func table(columns []float64, rows ...[]layout.Block) *layout.Table {
	return layout.NewTable(columns, rows...)
}

// centered sets the style most section tables share.
func centered(t *layout.Table) *layout.Table {
	t.Style.VAlign = layout.VAlignMiddle
	t.Style.Align = layout.AlignCenter
	return t
}

func boxed(t *layout.Table) *layout.Table {
	t.Style.Box = true
	return t
}

func gridded(t *layout.Table) *layout.Table {
	t.Style.Box = true
	t.Style.Grid = true
	return t
}

func valign(v layout.VAlign) *layout.VAlign { return &v }
