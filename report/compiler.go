// Package report compiles an answer record into the fixed-template incident
// report PDF.
//
// Compilation has three steps. Section builders turn the answer and the
// localized texts into layout blocks, concurrently. Compose puts the sections
// in the fixed report order. Emit paginates the result and writes the PDF
// atomically.
package report

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/benedoc-inc/nearmiss/catalog"
	"github.com/benedoc-inc/nearmiss/glyph"
	"github.com/benedoc-inc/nearmiss/types"
)

// Options configures a Compiler.
type Options struct {
	// BodyCapture is the body diagram image used by the wide injury layout.
	BodyCapture string
	// Verbose enables progress logging.
	Verbose bool
	// CollectWarnings keeps recoverable problems in Result.Warnings.
	CollectWarnings bool
}

// Result describes a written report.
type Result struct {
	Path     string
	Pages    int
	Mode     Mode
	Injury   InjuryMode
	Warnings []*types.Warning
}

// Compiler turns answers into report files. It holds only read-only state
// and may be shared.
type Compiler struct {
	catalog *catalog.Catalog
	glyphs  *glyph.Resolver
	opts    Options
}

// NewCompiler creates a compiler over a loaded catalog and glyph set.
func NewCompiler(cat *catalog.Catalog, glyphs *glyph.Resolver, opts Options) *Compiler {
	return &Compiler{catalog: cat, glyphs: glyphs, opts: opts}
}

type sectionBuilder func(*inputs) (Section, error)

var builders = []sectionBuilder{
	buildHeader,
	buildInfo,
	buildSituation,
	buildDescription,
	buildInjury,
	buildAttachments,
}

// Build runs the section builders and composes their output.
func (c *Compiler) Build(ctx context.Context, answer types.Answer, lang types.Language, warnings *types.WarningCollector) (*Document, error) {
	texts, err := c.catalog.Texts(lang)
	if err != nil {
		return nil, err
	}
	if err := answer.Validate(); err != nil {
		return nil, err
	}
	if warnings == nil {
		warnings = types.NewWarningCollector(false)
	}

	in := &inputs{
		answer:      answer,
		texts:       texts,
		lang:        lang,
		glyphs:      c.glyphs,
		bodyCapture: c.opts.BodyCapture,
		warnings:    warnings,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sections := make([]Section, len(builders))
	errs := make([]error, len(builders))
	var g errgroup.Group
	for i, build := range builders {
		i, build := i, build
		g.Go(func() error {
			sections[i], errs[i] = build(in)
			return errs[i]
		})
	}
	g.Wait()
	// The earliest failing section wins, whichever goroutine finished first.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return Compose(sections)
}

// Compile builds the report for answer in lang and writes it to
// answer.Destination(). Nothing is written when it fails.
func (c *Compiler) Compile(ctx context.Context, answer types.Answer, lang types.Language) (*Result, error) {
	if answer.Name == "" {
		return nil, types.NewReportError(types.ErrCodeInvalidInput, "answer has no output file name")
	}
	warnings := types.NewWarningCollector(c.opts.CollectWarnings || c.opts.Verbose)

	if c.opts.Verbose {
		log.Printf("Compiling report in %s: %d situation(s), %d attachment(s)", lang, len(answer.Situations), len(answer.Attachments))
	}
	doc, err := c.Build(ctx, answer, lang, warnings)
	if err != nil {
		return nil, err
	}

	texts, _ := c.catalog.Texts(lang)
	path := answer.Destination()
	pages, err := Emit(doc, path, Meta{Title: texts[catalog.KeyPDFTitle], Language: lang, Verbose: c.opts.Verbose})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Path:   path,
		Pages:  pages,
		Mode:   doc.Mode,
		Injury: InjuryModeOf(answer.Injury),
	}
	if c.opts.Verbose {
		for _, w := range warnings.Warnings() {
			log.Printf("Warning: %v (%v)", w, w.Context["path"])
		}
	}
	if c.opts.CollectWarnings {
		result.Warnings = warnings.Warnings()
	}
	return result, nil
}
