package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/benedoc-inc/nearmiss/layout"
	"github.com/benedoc-inc/nearmiss/types"
	"github.com/benedoc-inc/nearmiss/writer"
)

// Producer is written to the document info.
const Producer = "nearmiss"

const fontName = "Helvetica"

// Meta is the document-level information written with the pages.
type Meta struct {
	Title    string
	Language types.Language
	Verbose  bool
}

// imageCache embeds each distinct image source once per document.
type imageCache struct {
	w     *writer.PDFWriter
	infos map[string]*writer.ImageInfo
	err   error
}

func (ic *imageCache) get(src *layout.Source) (*writer.ImageInfo, bool) {
	if info, ok := ic.infos[src.Key]; ok {
		return info, true
	}
	name := fmt.Sprintf("/Im%d", len(ic.infos)+1)
	var (
		info *writer.ImageInfo
		err  error
	)
	if src.Format == "jpeg" {
		info, err = ic.w.AddJPEGImage(src.Data, name)
	} else {
		info, err = ic.w.AddImage(src.Data, name)
	}
	if err != nil {
		if ic.err == nil {
			ic.err = types.WrapErrorf(types.ErrCodeIOFailure, err, "cannot embed image %s", src.Key).
				WithContext("path", src.Key)
		}
		return nil, false
	}
	ic.infos[src.Key] = info
	return info, true
}

// pdfCanvas draws layout blocks into one PDF page.
type pdfCanvas struct {
	page   *writer.PageBuilder
	font   string
	images *imageCache
}

func (c *pdfCanvas) Text(x, y, size float64, text string) {
	if c.font == "" {
		c.font = c.page.AddStandardFont(fontName)
	}
	c.page.Content().TextAt(c.font, size, x, y, layout.EncodeWinAnsi(text))
}

func (c *pdfCanvas) Line(x1, y1, x2, y2, width float64) {
	c.page.Content().Line(x1, y1, x2, y2, width)
}

func (c *pdfCanvas) Image(src *layout.Source, x, y, width, height float64) {
	info, ok := c.images.get(src)
	if !ok {
		return
	}
	name := c.page.AddImage(info)
	c.page.Content().DrawImageAt(name, x, y, width, height)
}

// Render paginates the document and serializes it to PDF bytes. It returns
// the bytes and the number of pages.
func Render(doc *Document, meta Meta) ([]byte, int, error) {
	pages := layout.Paginate(doc.Blocks(), frame)

	b := writer.NewSimplePDFBuilder()
	w := b.Writer()
	images := &imageCache{w: w, infos: make(map[string]*writer.ImageInfo)}

	var outline []writer.OutlineItem
	for i, page := range pages {
		pb := b.AddPage(pageSize)
		page.Draw(&pdfCanvas{page: pb, images: images})
		if images.err != nil {
			return nil, 0, images.err
		}
		b.FinalizePage(pb)
		for _, m := range page.Marks {
			outline = append(outline, writer.OutlineItem{Title: m.Title, Page: i, Top: m.Top})
		}
	}
	if meta.Verbose {
		log.Printf("Rendered %d page(s), %d image(s), %d outline entries", len(pages), len(images.infos), len(outline))
	}

	b.SetOutline(outline)
	if meta.Language != "" {
		b.SetLanguage(meta.Language.Tag().String())
	}
	w.SetMetadata(&writer.Metadata{Title: meta.Title, Producer: Producer})

	out, err := b.Bytes()
	if err != nil {
		return nil, 0, types.WrapError(types.ErrCodeWriteError, "cannot serialize document", err)
	}
	return out, len(pages), nil
}

// Emit renders doc and writes it to path. The file appears complete or not
// at all: the bytes go to a temporary file in the same directory that is
// renamed over path once fully written.
func Emit(doc *Document, path string, meta Meta) (int, error) {
	data, pages, err := Render(doc, meta)
	if err != nil {
		return 0, err
	}
	if err := writeAtomic(path, data); err != nil {
		return 0, err
	}
	if meta.Verbose {
		log.Printf("Wrote %s (%d bytes)", path, len(data))
	}
	return pages, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return types.PathError(types.ErrCodeIOFailure, path, err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return types.WrapErrorf(types.ErrCodeIOFailure, err, "cannot write %s", path).
			WithContext("path", path)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fail(err)
	}
	return nil
}
