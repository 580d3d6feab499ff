package layout

// Padding is the inner spacing of a table cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// DefaultPadding is the cell padding tables use unless told otherwise.
var DefaultPadding = Padding{Top: 3, Right: 6, Bottom: 3, Left: 6}

// TableStyle controls the rules and spacing of a table.
type TableStyle struct {
	Box           bool    // outer border
	Grid          bool    // rules between cells
	RuleAboveLast bool    // rule above the last row
	LineWidth     float64 // width of all rules, 1 when zero

	Padding Padding
	// ColumnPadding overrides Padding per column when non-nil.
	ColumnPadding []*Padding

	VAlign       VAlign
	ColumnVAlign []*VAlign
	// Align positions cell content horizontally within its cell.
	Align Align
}

// Table is a grid of blocks with fixed column widths. Row heights are
// computed from the content unless RowHeights gives a positive value.
type Table struct {
	Columns    []float64
	Rows       [][]Block
	RowHeights []float64
	Style      TableStyle
}

// NewTable creates a table with default padding.
func NewTable(columns []float64, rows ...[]Block) *Table {
	return &Table{
		Columns: columns,
		Rows:    rows,
		Style:   TableStyle{Padding: DefaultPadding},
	}
}

// Row is a shorthand for a table row.
func Row(cells ...Block) []Block { return cells }

func (t *Table) width() float64 {
	var w float64
	for _, c := range t.Columns {
		w += c
	}
	return w
}

func (t *Table) lineWidth() float64 {
	if t.Style.LineWidth > 0 {
		return t.Style.LineWidth
	}
	return 1
}

func (t *Table) padding(col int) Padding {
	if col < len(t.Style.ColumnPadding) && t.Style.ColumnPadding[col] != nil {
		return *t.Style.ColumnPadding[col]
	}
	return t.Style.Padding
}

func (t *Table) valign(col int) VAlign {
	if col < len(t.Style.ColumnVAlign) && t.Style.ColumnVAlign[col] != nil {
		return *t.Style.ColumnVAlign[col]
	}
	return t.Style.VAlign
}

func (t *Table) cell(row, col int) Block {
	if col < len(t.Rows[row]) {
		return t.Rows[row][col]
	}
	return nil
}

func (t *Table) cellWidth(col int) float64 {
	p := t.padding(col)
	return max(t.Columns[col]-p.Left-p.Right, 0)
}

func (t *Table) rowHeight(row int) float64 {
	if row < len(t.RowHeights) && t.RowHeights[row] > 0 {
		return t.RowHeights[row]
	}
	var h float64
	for col := range t.Columns {
		b := t.cell(row, col)
		if b == nil {
			continue
		}
		p := t.padding(col)
		h = max(h, Height(b, t.cellWidth(col))+p.Top+p.Bottom)
	}
	return h
}

// RowHeight returns the drawn height of row.
func (t *Table) RowHeight(row int) float64 { return t.rowHeight(row) }

func (t *Table) Size(float64) (float64, float64) {
	var h float64
	for row := range t.Rows {
		h += t.rowHeight(row)
	}
	return t.width(), h
}

func (t *Table) Draw(c Canvas, x, top, _ float64) {
	width, height := t.Size(0)
	lw := t.lineWidth()

	rowTop := top
	for row := range t.Rows {
		rh := t.rowHeight(row)
		cellX := x
		for col, cw := range t.Columns {
			if b := t.cell(row, col); b != nil {
				p := t.padding(col)
				avail := t.cellWidth(col)
				bw, bh := b.Size(avail)
				bx := cellX + p.Left
				if t.Style.Align == AlignCenter {
					bx += (avail - bw) / 2
				}
				btop := rowTop - p.Top
				if t.valign(col) == VAlignMiddle {
					btop -= (rh - p.Top - p.Bottom - bh) / 2
				}
				b.Draw(c, bx, btop, avail)
			}
			cellX += cw
		}
		if t.Style.Grid && row > 0 {
			c.Line(x, rowTop, x+width, rowTop, lw)
		}
		if t.Style.RuleAboveLast && !t.Style.Grid && row == len(t.Rows)-1 && row > 0 {
			c.Line(x, rowTop, x+width, rowTop, lw)
		}
		rowTop -= rh
	}

	if t.Style.Grid && len(t.Columns) > 1 {
		cx := x
		for _, cw := range t.Columns[:len(t.Columns)-1] {
			cx += cw
			c.Line(cx, top, cx, top-height, lw)
		}
	}
	if t.Style.Box {
		bottom := top - height
		c.Line(x, top, x+width, top, lw)
		c.Line(x+width, top, x+width, bottom, lw)
		c.Line(x+width, bottom, x, bottom, lw)
		c.Line(x, bottom, x, top, lw)
	}
}

// Split continues a single-cell table whose content can itself be split.
func (t *Table) Split(_, height float64) (Block, Block) {
	if len(t.Rows) != 1 || len(t.Columns) != 1 || len(t.RowHeights) > 0 {
		return nil, t
	}
	sp, ok := t.cell(0, 0).(Splitter)
	if !ok {
		return nil, t
	}
	p := t.padding(0)
	head, tail := sp.Split(t.cellWidth(0), height-p.Top-p.Bottom)
	if head == nil {
		return nil, t
	}
	if tail == nil {
		return t, nil
	}
	return t.withCell(head), t.withCell(tail)
}

func (t *Table) withCell(b Block) *Table {
	cp := *t
	cp.Rows = [][]Block{{b}}
	return &cp
}
