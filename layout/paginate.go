package layout

// Frame is the printable area of a page.
type Frame struct {
	X      float64 // left edge
	Top    float64 // top edge
	Width  float64
	Height float64
}

// Placement is a block positioned on a page.
type Placement struct {
	Block Block
	X     float64
	Top   float64
	Width float64
}

// Mark is an anchor resolved to the top of the block it precedes.
type Mark struct {
	Title string
	Top   float64
}

// Page is the ordered placements of one output page.
type Page struct {
	Placements []Placement
	Marks      []Mark
}

// Draw paints every placement of the page.
func (p Page) Draw(c Canvas) {
	for _, pl := range p.Placements {
		pl.Block.Draw(c, pl.X, pl.Top, pl.Width)
	}
}

// fitSlack absorbs float rounding when a block exactly fills the frame.
const fitSlack = 1e-6

// Paginate flows blocks top to bottom through successive frames. A block
// that does not fit in the space left goes to the next page. Splitters are
// cut across pages. A block taller than a whole frame is placed alone at the
// top of a page. Spacers at the top of a page are dropped.
func Paginate(blocks []Block, frame Frame) []Page {
	queue := flatten(blocks)
	pages := []Page{{}}
	used := 0.0
	var pending []*Anchor

	newPage := func() {
		pages = append(pages, Page{})
		used = 0
	}
	place := func(b Block) {
		w, h := b.Size(frame.Width)
		x := frame.X
		if w < frame.Width {
			x += (frame.Width - w) / 2
		}
		cur := &pages[len(pages)-1]
		for _, a := range pending {
			cur.Marks = append(cur.Marks, Mark{Title: a.Title, Top: frame.Top - used})
		}
		pending = nil
		cur.Placements = append(cur.Placements, Placement{Block: b, X: x, Top: frame.Top - used, Width: frame.Width})
		used += h
	}

	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]

		atTop := len(pages[len(pages)-1].Placements) == 0
		switch v := b.(type) {
		case *Anchor:
			pending = append(pending, v)
			continue
		case PageBreak, *PageBreak:
			if !atTop {
				newPage()
			}
			continue
		case Spacer, *Spacer:
			if atTop {
				continue
			}
		}

		h := Height(b, frame.Width)
		remaining := frame.Height - used
		if h <= remaining+fitSlack {
			place(b)
			continue
		}
		if sp, ok := b.(Splitter); ok {
			head, tail := sp.Split(frame.Width, remaining)
			if head != nil {
				place(head)
				newPage()
				if tail != nil {
					queue = append([]Block{tail}, queue...)
				}
				continue
			}
		}
		if !atTop {
			newPage()
			queue = append([]Block{b}, queue...)
			continue
		}
		place(b)
	}

	if n := len(pages); n > 1 && len(pages[n-1].Placements) == 0 {
		pages = pages[:n-1]
	}
	return pages
}

func flatten(blocks []Block) []Block {
	var out []Block
	for _, b := range blocks {
		switch v := b.(type) {
		case nil:
		case Stack:
			out = append(out, flatten(v)...)
		default:
			out = append(out, b)
		}
	}
	return out
}
