package report

import (
	"strings"

	"github.com/benedoc-inc/nearmiss/catalog"
	"github.com/benedoc-inc/nearmiss/glyph"
	"github.com/benedoc-inc/nearmiss/layout"
	"github.com/benedoc-inc/nearmiss/types"
)

// SectionKind identifies a report section. The values are in document order.
type SectionKind int

const (
	SectionHeader SectionKind = iota
	SectionInfo
	SectionSituation
	SectionDescription
	SectionInjury
	SectionAttachments
)

var sectionNames = [...]string{"header", "info", "situation", "description", "injury", "attachments"}

func (k SectionKind) String() string {
	if k < 0 || int(k) >= len(sectionNames) {
		return "unknown"
	}
	return sectionNames[k]
}

// Section is the block built for one part of the report.
type Section struct {
	Kind  SectionKind
	Title string // outline entry, "" for none
	Block layout.Block
}

// InjuryMode is the layout of the injury section.
type InjuryMode int

const (
	// InjuryNarrow shows the checklist beside the comments only.
	InjuryNarrow InjuryMode = iota
	// InjuryWide adds the injured body parts and the body diagram.
	InjuryWide
)

// InjuryModeOf picks the injury layout for an answer.
func InjuryModeOf(injury types.Injury) InjuryMode {
	if injury == types.InjuryUnset || injury == types.InjuryNone {
		return InjuryNarrow
	}
	return InjuryWide
}

// inputs is everything a section builder reads. Builders only read it, so
// they can run concurrently.
type inputs struct {
	answer      types.Answer
	texts       catalog.Texts
	lang        types.Language
	glyphs      *glyph.Resolver
	bodyCapture string
	warnings    *types.WarningCollector
}

// lookup reads catalog texts and remembers the first missing key.
type lookup struct {
	texts catalog.Texts
	lang  types.Language
	err   error
}

func (in *inputs) lookup() *lookup {
	return &lookup{texts: in.texts, lang: in.lang}
}

func (l *lookup) get(key string) string {
	v, ok := l.texts.Get(key)
	if !ok && l.err == nil {
		l.err = catalog.MissingKey(l.lang, key)
	}
	return v
}

// checkRow is a glyph beside its label.
func (in *inputs) checkRow(selected bool, label layout.Block) []layout.Block {
	return layout.Row(in.glyphs.Box(selected), label)
}

func buildHeader(in *inputs) (Section, error) {
	t := in.lookup()

	var src *layout.Source
	if in.answer.Logo == "" {
		src = in.glyphs.Blank()
	} else {
		var err error
		if src, err = layout.LoadSource(in.answer.Logo); err != nil {
			return Section{}, asIOFailure(err, in.answer.Logo, "cannot open logo")
		}
	}

	heading := t.get(catalog.KeyPDFTitle)
	tbl := gridded(centered(table(
		[]float64{logoSide, contentWidth - 2*logoSide, logoSide},
		layout.Row(layout.FitLongSide(src, logoSide), title(heading), nil),
	)))
	tbl.RowHeights = []float64{headerHeight}

	return Section{Kind: SectionHeader, Title: heading, Block: tbl}, t.err
}

func buildInfo(in *inputs) (Section, error) {
	t := in.lookup()
	a := in.answer

	titles := centered(table(
		[]float64{quarter - 30, quarter + 44},
		layout.Row(subtitle(t.get(catalog.KeyCategory)), subtitle(t.get(catalog.KeyReportType))),
	))
	titles.RowHeights = []float64{13}

	// Report types fill rows 0-3 on the right; the two categories sit in
	// rows 1-2 on the left.
	checks := make([][]layout.Block, types.ReportTypeCount)
	for i, rt := range types.ReportTypes() {
		checks[i] = []layout.Block{nil, nil}
		checks[i] = append(checks[i], in.checkRow(a.ReportType == rt, body(t.get(rt.Key())))...)
	}
	for i, c := range types.Categories() {
		row := in.checkRow(a.Category == c, body(t.get(c.Key())))
		checks[i+1][0], checks[i+1][1] = row[0], row[1]
	}
	checkboxes := table([]float64{15, quarter - 45, 15, quarter + 29}, checks...)
	checkboxes.Style.VAlign = layout.VAlignMiddle

	people := table([]float64{half + 14},
		layout.Row(subtitle(t.get(catalog.KeyPeople))),
		layout.Row(body(a.People)),
	)

	info := table([]float64{quarter + 5, quarter - 19},
		layout.Row(subtitle(t.get(catalog.KeyDate)), body(a.Date)),
		layout.Row(subtitle(t.get(catalog.KeyHour)), body(a.Hour)),
		layout.Row(subtitle(t.get(catalog.KeyPlace)), body(a.Place)),
	)
	info.RowHeights = []float64{30.35, 30.35, 30.35}
	info.Style.VAlign = layout.VAlignMiddle

	equipment := table([]float64{half - 14},
		layout.Row(subtitle(t.get(catalog.KeyEquipment))),
		layout.Row(body(a.Equipment)),
	)

	left := centered(table([]float64{half + 14},
		layout.Row(titles),
		layout.Row(checkboxes),
		layout.Row(people),
	))
	left.Style.RuleAboveLast = true

	right := centered(table([]float64{half - 14},
		layout.Row(info),
		layout.Row(equipment),
	))
	right.Style.RuleAboveLast = true

	tbl := gridded(centered(table([]float64{half + 14, half - 14}, layout.Row(left, right))))
	return Section{Kind: SectionInfo, Title: t.get(catalog.KeyReportType), Block: tbl}, t.err
}

// SituationRows is the number of rows in each situation column.
const SituationRows = types.SituationCount / 2

// situationLabel is the checklist text of s. The "other" row carries the
// free text when there is some.
func situationLabel(t *lookup, a types.Answer, s types.Situation) string {
	label := t.get(s.Key())
	if s == types.SituationOther && a.Other != "" {
		label += " " + a.Other
	}
	return label
}

func buildSituation(in *inputs) (Section, error) {
	t := in.lookup()
	a := in.answer

	rows := make([][]layout.Block, SituationRows)
	for i := 1; i <= types.SituationCount; i++ {
		s := types.Situation(i)
		row := (i - 1) % SituationRows
		rows[row] = append(rows[row], in.checkRow(a.HasSituation(s), body(situationLabel(t, a, s)))...)
	}
	checkboxes := table([]float64{15, half - 15, 15, half - 15}, rows...)
	checkboxes.Style.VAlign = layout.VAlignMiddle
	checkboxes.Style.Padding = layout.Padding{Top: 0, Right: 6, Bottom: 1, Left: 6}
	glyphPadding := layout.Padding{Top: 3, Right: 6, Bottom: 1, Left: 6}
	checkboxes.Style.ColumnPadding = []*layout.Padding{&glyphPadding, nil, &glyphPadding, nil}

	heading := t.get(catalog.KeySituation)
	tbl := boxed(centered(table([]float64{contentWidth},
		layout.Row(subtitle(heading)),
		layout.Row(checkboxes),
	)))
	return Section{Kind: SectionSituation, Title: heading, Block: tbl}, t.err
}

func buildDescription(in *inputs) (Section, error) {
	t := in.lookup()
	label := t.get(catalog.KeyDescription)

	tbl := boxed(centered(table([]float64{contentWidth},
		layout.Row(labelled(label, in.answer.Description)),
	)))
	tbl.Style.Padding.Bottom = 6
	return Section{Kind: SectionDescription, Title: strings.TrimRight(label, ": "), Block: tbl}, t.err
}

// OrganNames joins the localized names of the injured body regions in the
// order they were selected.
func OrganNames(texts catalog.Texts, organs []types.Organ) string {
	names := make([]string, len(organs))
	for i, o := range organs {
		names[i] = texts[o.Key()]
	}
	return strings.Join(names, ", ")
}

func buildInjury(in *inputs) (Section, error) {
	t := in.lookup()
	a := in.answer
	mode := InjuryModeOf(a.Injury)

	checklistWidth := half - 70
	if mode == InjuryWide {
		checklistWidth = (half+quarter)/2 - 5
	}

	var rows [][]layout.Block
	for _, inj := range types.Injuries() {
		label := layout.NewParagraph(labelStyle, layout.Plain(t.get(inj.Key())))
		rows = append(rows, in.checkRow(a.Injury == inj, label))
	}
	checkboxes := table([]float64{15, half - 55}, rows...)
	heading := t.get(catalog.KeyInjury)
	injury := table([]float64{checklistWidth},
		layout.Row(subtitle(heading)),
		layout.Row(checkboxes),
	)
	comments := labelled(t.get(catalog.KeyComments), a.Comments)

	if mode == InjuryNarrow {
		tbl := gridded(centered(table([]float64{half - 70, half + 70}, layout.Row(injury, comments))))
		tbl.Style.ColumnVAlign = []*layout.VAlign{nil, valign(layout.VAlignTop)}
		return Section{Kind: SectionInjury, Title: heading, Block: tbl}, t.err
	}

	for _, o := range a.Organs {
		t.get(o.Key())
	}
	organs := table([]float64{checklistWidth},
		layout.Row(subtitle(t.get(catalog.KeyBody))),
		layout.Row(body(OrganNames(in.texts, a.Organs))),
	)
	top := table([]float64{checklistWidth, checklistWidth}, layout.Row(injury, organs))
	top.Style.Align = layout.AlignCenter
	top.Style.Padding.Top, top.Style.Padding.Bottom = 0, 0

	text := centered(table([]float64{half + quarter - 10},
		layout.Row(top),
		layout.Row(comments),
	))
	text.Style.Grid = true
	text.Style.Padding.Bottom = 6

	if in.bodyCapture == "" {
		return Section{}, types.NewReportError(types.ErrCodeIOFailure, "body diagram capture is required for a bodily injury")
	}
	capture, err := layout.LoadSource(in.bodyCapture)
	if err != nil {
		return Section{}, asIOFailure(err, in.bodyCapture, "cannot open body diagram capture")
	}
	diagram := &layout.Image{Src: capture, Width: quarter, Height: quarter * capture.Aspect()}

	tbl := gridded(table([]float64{half + quarter - 10, quarter + 10}, layout.Row(text, diagram)))
	tbl.Style.Align = layout.AlignCenter
	tbl.Style.Padding.Bottom = 6
	return Section{Kind: SectionInjury, Title: heading, Block: tbl}, t.err
}

// asIOFailure reports a required image that cannot be used, naming its path.
func asIOFailure(err error, path, message string) error {
	return types.WrapErrorf(types.ErrCodeIOFailure, err, "%s %s", message, path).
		WithContext("path", path)
}
