package report

import (
	"github.com/benedoc-inc/nearmiss/layout"
	"github.com/benedoc-inc/nearmiss/types"
)

// Mode is the overall shape of the document.
type Mode int

const (
	// SinglePage is a report without attachments.
	SinglePage Mode = iota
	// MultiPage is a report followed by at least one attachments page.
	MultiPage
)

func (m Mode) String() string {
	if m == MultiPage {
		return "multi-page"
	}
	return "single-page"
}

// Document is the composed report, sections in output order.
type Document struct {
	Mode     Mode
	Sections []Section
}

// Order lists the section kinds as they appear in the output.
func (d *Document) Order() []SectionKind {
	kinds := make([]SectionKind, len(d.Sections))
	for i, s := range d.Sections {
		kinds[i] = s.Kind
	}
	return kinds
}

// Section returns the section of kind k, if present.
func (d *Document) Section(k SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == k {
			return s, true
		}
	}
	return Section{}, false
}

// Blocks flattens the document into the block flow handed to the paginator:
// a gap after the header, a page break before the attachments, and an
// outline anchor before every titled section.
func (d *Document) Blocks() []layout.Block {
	var out []layout.Block
	for _, s := range d.Sections {
		if s.Kind == SectionAttachments {
			out = append(out, layout.PageBreak{})
		}
		if s.Title != "" {
			out = append(out, &layout.Anchor{Title: s.Title})
		}
		out = append(out, s.Block)
		if s.Kind == SectionHeader {
			out = append(out, layout.Spacer{Width: 1, Height: sectionGap})
		}
	}
	return out
}

// Compose assembles built sections into the fixed report order. Every
// section but the attachments is required; the attachments section is kept
// only when it has content and switches the document to MultiPage.
func Compose(sections []Section) (*Document, error) {
	var slots [SectionAttachments + 1]*Section
	for i := range sections {
		s := &sections[i]
		if s.Kind < SectionHeader || s.Kind > SectionAttachments {
			return nil, types.NewReportErrorf(types.ErrCodeInvalidInput, "unknown section kind %d", int(s.Kind))
		}
		if slots[s.Kind] != nil {
			return nil, types.NewReportErrorf(types.ErrCodeInvalidInput, "section %s built twice", s.Kind)
		}
		slots[s.Kind] = s
	}

	doc := &Document{Mode: SinglePage}
	for kind := SectionHeader; kind < SectionAttachments; kind++ {
		if slots[kind] == nil {
			return nil, types.NewReportErrorf(types.ErrCodeInvalidInput, "section %s missing", kind)
		}
		doc.Sections = append(doc.Sections, *slots[kind])
	}
	if att := slots[SectionAttachments]; att != nil && !emptyBlock(att.Block) {
		doc.Mode = MultiPage
		doc.Sections = append(doc.Sections, *att)
	}
	return doc, nil
}

func emptyBlock(b layout.Block) bool {
	if b == nil {
		return true
	}
	if st, ok := b.(layout.Stack); ok {
		return len(st) == 0
	}
	return false
}
