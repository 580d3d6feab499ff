package layout

import (
	"strings"
	"unicode"
)

// Run is a span of paragraph text sharing one decoration.
type Run struct {
	Text      string
	Underline bool
}

// Plain returns an undecorated run.
func Plain(text string) Run { return Run{Text: text} }

// Underlined returns an underlined run.
func Underlined(text string) Run { return Run{Text: text, Underline: true} }

// Style sets the font size, line height and alignment of a paragraph.
type Style struct {
	Size    float64
	Leading float64
	Align   Align
}

// Paragraph is wrapped Helvetica text. Whitespace separates words and
// '\n' forces a line break.
type Paragraph struct {
	Runs  []Run
	Style Style

	// fixed holds the pre-wrapped lines of a paragraph produced by Split.
	fixed []line
}

// NewParagraph builds a paragraph from runs.
func NewParagraph(style Style, runs ...Run) *Paragraph {
	return &Paragraph{Runs: runs, Style: style}
}

type piece struct {
	text      string
	underline bool
	width     float64
}

type word struct {
	pieces []piece
	width  float64
	breaks int // forced line breaks before this word
}

type line struct {
	words []word
	width float64
	last  bool // last line of the paragraph or of a hard-broken block
}

// Text returns the paragraph text.
func (p *Paragraph) Text() string {
	if p.fixed != nil {
		lines := make([]string, 0, len(p.fixed))
		for _, ln := range p.fixed {
			lines = append(lines, ln.text())
		}
		return strings.Join(lines, "\n")
	}
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

func (ln line) text() string {
	parts := make([]string, 0, len(ln.words))
	for _, w := range ln.words {
		var b strings.Builder
		for _, pc := range w.pieces {
			b.WriteString(pc.text)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

// words splits the runs into words. Adjacent runs with no whitespace
// between them form a single word.
func (p *Paragraph) words() []word {
	size := p.Style.Size
	var (
		words   []word
		cur     word
		buf     strings.Builder
		pending bool // whitespace seen since the last word
		breaks  int
	)
	flushPiece := func(underline bool) {
		if buf.Len() == 0 {
			return
		}
		text := buf.String()
		buf.Reset()
		w := TextWidth(text, size)
		cur.pieces = append(cur.pieces, piece{text: text, underline: underline, width: w})
		cur.width += w
	}
	flushWord := func() {
		if len(cur.pieces) > 0 {
			words = append(words, cur)
		}
		cur = word{}
	}
	for _, r := range p.Runs {
		for _, ch := range r.Text {
			switch {
			case ch == '\n':
				flushPiece(r.Underline)
				pending = true
				breaks++
			case unicode.IsSpace(ch):
				flushPiece(r.Underline)
				pending = true
			default:
				if pending {
					flushWord()
					pending = false
				}
				if len(cur.pieces) == 0 && buf.Len() == 0 {
					cur.breaks = breaks
					breaks = 0
				}
				buf.WriteRune(ch)
			}
		}
		flushPiece(r.Underline)
	}
	flushWord()
	return words
}

// wrap breaks the paragraph into lines no wider than avail.
func (p *Paragraph) wrap(avail float64) []line {
	if p.fixed != nil {
		return p.fixed
	}
	space := TextWidth(" ", p.Style.Size)
	var (
		lines []line
		cur   line
	)
	flush := func(last bool) {
		cur.last = last
		lines = append(lines, cur)
		cur = line{}
	}
	for i, w := range p.words() {
		blank := w.breaks
		if i > 0 && w.breaks > 0 {
			flush(true)
			blank--
		}
		for ; blank > 0; blank-- {
			flush(true)
		}
		for _, part := range splitWord(w, avail, p.Style.Size) {
			need := part.width
			if len(cur.words) > 0 {
				need += space
			}
			if len(cur.words) > 0 && cur.width+need > avail {
				flush(false)
				need = part.width
			}
			cur.words = append(cur.words, part)
			cur.width += need
		}
	}
	if len(cur.words) > 0 {
		flush(true)
	}
	return lines
}

// splitWord cuts a word wider than avail into chunks that fit.
func splitWord(w word, avail, size float64) []word {
	if w.width <= avail || avail <= 0 {
		return []word{w}
	}
	var (
		out []word
		cur word
	)
	for _, pc := range w.pieces {
		for _, r := range pc.text {
			ch := string(r)
			cw := TextWidth(ch, size)
			if len(cur.pieces) > 0 && cur.width+cw > avail {
				out = append(out, cur)
				cur = word{}
			}
			if n := len(cur.pieces); n > 0 && cur.pieces[n-1].underline == pc.underline {
				cur.pieces[n-1].text += ch
				cur.pieces[n-1].width += cw
			} else {
				cur.pieces = append(cur.pieces, piece{text: ch, underline: pc.underline, width: cw})
			}
			cur.width += cw
		}
	}
	if len(cur.pieces) > 0 {
		out = append(out, cur)
	}
	return out
}

// Lines returns the text of each wrapped line at avail width.
func (p *Paragraph) Lines(avail float64) []string {
	lines := p.wrap(avail)
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.text()
	}
	return out
}

func (p *Paragraph) Size(avail float64) (float64, float64) {
	return avail, float64(len(p.wrap(avail))) * p.Style.Leading
}

// Split keeps as many lines as fit in height on the current page.
func (p *Paragraph) Split(avail, height float64) (Block, Block) {
	lines := p.wrap(avail)
	n := int(height / p.Style.Leading)
	if n <= 0 {
		return nil, p
	}
	if n >= len(lines) {
		return p, nil
	}
	head := &Paragraph{Style: p.Style, fixed: lines[:n]}
	tail := &Paragraph{Style: p.Style, fixed: lines[n:]}
	return head, tail
}

func (p *Paragraph) Draw(c Canvas, x, top, avail float64) {
	st := p.Style
	space := TextWidth(" ", st.Size)
	for i, ln := range p.wrap(avail) {
		baseline := top - float64(i)*st.Leading - (st.Leading-st.Size)/2 - ascent*st.Size
		gap := space
		px := x
		switch st.Align {
		case AlignCenter:
			px += (avail - ln.width) / 2
		case AlignJustify:
			if !ln.last && len(ln.words) > 1 {
				gap += (avail - ln.width) / float64(len(ln.words)-1)
			}
		}
		underlineY := baseline - underlineOffset*st.Size
		thickness := underlineThickness * st.Size
		prevUnderlined := false
		for j, w := range ln.words {
			if j > 0 {
				if prevUnderlined && w.pieces[0].underline {
					c.Line(px, underlineY, px+gap, underlineY, thickness)
				}
				px += gap
			}
			for _, pc := range w.pieces {
				c.Text(px, baseline, st.Size, pc.text)
				if pc.underline {
					c.Line(px, underlineY, px+pc.width, underlineY, thickness)
				}
				px += pc.width
			}
			prevUnderlined = w.pieces[len(w.pieces)-1].underline
		}
	}
}
