// Package layout arranges report content into sized blocks and lays the
// blocks out on fixed-size pages.
//
// Coordinates are PDF user space: points, origin at the bottom-left of the
// page, y growing upwards. Blocks are drawn from their top-left corner down.
package layout

// Canvas is the drawing surface a block paints on.
type Canvas interface {
	// Text draws Helvetica text with its baseline at y.
	Text(x, y, size float64, text string)
	// Line strokes a straight segment.
	Line(x1, y1, x2, y2, width float64)
	// Image draws src into the rectangle with lower-left corner (x, y).
	Image(src *Source, x, y, width, height float64)
}

// Block is a sized region of the document.
type Block interface {
	// Size returns the extent of the block when given avail width.
	Size(avail float64) (w, h float64)
	// Draw paints the block with its top-left corner at (x, top).
	Draw(c Canvas, x, top, avail float64)
}

// Splitter is a block that can continue on the next page.
type Splitter interface {
	// Split returns a head that fits in height and the remainder. head is
	// nil when nothing fits; tail is nil when everything does.
	Split(avail, height float64) (head, tail Block)
}

// Align is horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignJustify
)

// VAlign is vertical alignment inside a table cell.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
)

// Spacer is empty vertical space.
type Spacer struct {
	Width  float64
	Height float64
}

func (s Spacer) Size(avail float64) (float64, float64) { return s.Width, s.Height }

func (s Spacer) Draw(Canvas, float64, float64, float64) {}

// PageBreak forces the following blocks onto a new page.
type PageBreak struct{}

func (PageBreak) Size(float64) (float64, float64) { return 0, 0 }

func (PageBreak) Draw(Canvas, float64, float64, float64) {}

// Anchor marks the position of the block that follows it. It takes no
// space and is reported in Page.Marks instead of being drawn.
type Anchor struct {
	Title string
}

func (*Anchor) Size(float64) (float64, float64) { return 0, 0 }

func (*Anchor) Draw(Canvas, float64, float64, float64) {}

// Stack is a vertical sequence of blocks. The paginator lays out its
// members individually, so a stack may span several pages.
type Stack []Block

func (s Stack) Size(avail float64) (float64, float64) {
	var w, h float64
	for _, b := range s {
		bw, bh := b.Size(avail)
		w = max(w, bw)
		h += bh
	}
	return w, h
}

func (s Stack) Draw(c Canvas, x, top, avail float64) {
	for _, b := range s {
		_, h := b.Size(avail)
		b.Draw(c, x, top, avail)
		top -= h
	}
}

// Height is a shorthand for the height of b at avail width.
func Height(b Block, avail float64) float64 {
	_, h := b.Size(avail)
	return h
}
