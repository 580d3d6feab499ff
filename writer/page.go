// Package writer provides PDF writing capabilities including page creation
package writer

import (
	"fmt"
	"sort"
	"strings"
)

// PageSize represents standard page dimensions in points (1 point = 1/72 inch)
type PageSize struct {
	Width  float64
	Height float64
}

// Standard page sizes
var (
	PageSizeLetter = PageSize{612, 792} // 8.5 x 11 inches
	PageSizeA4     = PageSize{595, 842} // 210 x 297 mm
)

// PageBuilder helps build PDF pages
type PageBuilder struct {
	writer     *PDFWriter
	size       PageSize
	fonts      map[string]int    // resource name -> object number
	fontNames  map[string]string // base font -> resource name
	images     map[string]int    // resource name -> object number
	content    *ContentStream
	pageObjNum int
}

// NewPageBuilder creates a new page builder
func (w *PDFWriter) NewPageBuilder(size PageSize) *PageBuilder {
	return &PageBuilder{
		writer:    w,
		size:      size,
		fonts:     make(map[string]int),
		fontNames: make(map[string]string),
		images:    make(map[string]int),
		content:   NewContentStream(),
	}
}

// Content returns the content stream for adding graphics/text
func (pb *PageBuilder) Content() *ContentStream {
	return pb.content
}

// Size returns the page dimensions
func (pb *PageBuilder) Size() PageSize {
	return pb.size
}

// AddStandardFont adds a standard PDF font (Helvetica, Times-Roman, etc.)
// with WinAnsiEncoding. The font object is shared by every page of the
// document. Returns the resource name to use (e.g., "/F1")
func (pb *PageBuilder) AddStandardFont(fontName string) string {
	if name, ok := pb.fontNames[fontName]; ok {
		return "/" + name
	}

	objNum, ok := pb.writer.standardFonts[fontName]
	if !ok {
		fontDict := fmt.Sprintf("<</Type/Font/Subtype/Type1/BaseFont/%s/Encoding/WinAnsiEncoding>>", fontName)
		objNum = pb.writer.AddObject([]byte(fontDict))
		pb.writer.standardFonts[fontName] = objNum
	}

	resourceName := fmt.Sprintf("F%d", len(pb.fonts)+1)
	pb.fonts[resourceName] = objNum
	pb.fontNames[fontName] = resourceName

	return "/" + resourceName
}

// AddImage adds an image and returns the resource name
func (pb *PageBuilder) AddImage(info *ImageInfo) string {
	resourceName := strings.TrimPrefix(info.Name, "/")
	if resourceName == "" {
		resourceName = fmt.Sprintf("Im%d", info.ObjectNum)
	}
	pb.images[resourceName] = info.ObjectNum
	return "/" + resourceName
}

// resourceList formats name -> object entries sorted by name
func resourceList(entries map[string]int) string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "/%s %d 0 R", name, entries[name])
	}
	return b.String()
}

// Build finalizes the page and returns the page object number
func (pb *PageBuilder) Build(pagesObjNum int) int {
	contentObjNum := pb.writer.AddStreamObject(Dictionary{}, pb.content.Bytes(), true)

	resources := "<<"
	if len(pb.fonts) > 0 {
		resources += "/Font<<" + resourceList(pb.fonts) + ">>"
	}
	if len(pb.images) > 0 {
		resources += "/XObject<<" + resourceList(pb.images) + ">>"
	}
	resources += ">>"

	pageDict := fmt.Sprintf(`<</Type/Page/Parent %d 0 R/MediaBox[0 0 %.0f %.0f]/Contents %d 0 R/Resources%s>>`,
		pagesObjNum, pb.size.Width, pb.size.Height, contentObjNum, resources)
	pb.pageObjNum = pb.writer.AddObject([]byte(pageDict))

	return pb.pageObjNum
}

// SimplePDFBuilder provides a high-level API for creating simple PDFs
type SimplePDFBuilder struct {
	writer        *PDFWriter
	pages         []int
	pagesObjNum   int
	catalogObjNum int
	lang          string
	outline       []OutlineItem
}

// NewSimplePDFBuilder creates a new simple PDF builder
func NewSimplePDFBuilder() *SimplePDFBuilder {
	return &SimplePDFBuilder{
		writer: NewPDFWriter(),
		pages:  make([]int, 0),
	}
}

// Writer returns the underlying PDF writer for advanced operations
func (b *SimplePDFBuilder) Writer() *PDFWriter {
	return b.writer
}

// SetLanguage sets the catalog /Lang entry (a BCP 47 tag)
func (b *SimplePDFBuilder) SetLanguage(tag string) {
	b.lang = tag
}

// SetOutline sets the document outline written with the catalog
func (b *SimplePDFBuilder) SetOutline(items []OutlineItem) {
	b.outline = items
}

// AddPage adds a new page and returns a page builder
func (b *SimplePDFBuilder) AddPage(size PageSize) *PageBuilder {
	return b.writer.NewPageBuilder(size)
}

// FinalizePage adds a built page to the document
func (b *SimplePDFBuilder) FinalizePage(pb *PageBuilder) {
	if b.pagesObjNum == 0 {
		b.pagesObjNum = b.writer.ReserveObject()
	}
	pageObjNum := pb.Build(b.pagesObjNum)
	b.pages = append(b.pages, pageObjNum)
}

// Bytes returns the complete PDF
func (b *SimplePDFBuilder) Bytes() ([]byte, error) {
	if b.pagesObjNum == 0 {
		b.pagesObjNum = b.writer.ReserveObject()
	}

	kids := make([]string, len(b.pages))
	for i, pageNum := range b.pages {
		kids[i] = fmt.Sprintf("%d 0 R", pageNum)
	}
	pagesDict := fmt.Sprintf("<</Type/Pages/Kids[%s]/Count %d>>", strings.Join(kids, " "), len(b.pages))
	b.writer.SetObject(b.pagesObjNum, []byte(pagesDict))

	catalog := Dictionary{
		"Type":  "/Catalog",
		"Pages": fmt.Sprintf("%d 0 R", b.pagesObjNum),
	}
	if b.lang != "" {
		catalog["Lang"] = TextString(b.lang)
	}
	if len(b.outline) > 0 {
		outlineNum, err := b.writer.AddOutline(b.outline, b.pages)
		if err != nil {
			return nil, err
		}
		catalog["Outlines"] = fmt.Sprintf("%d 0 R", outlineNum)
		catalog["PageMode"] = "/UseOutlines"
	}
	b.catalogObjNum = b.writer.AddDictObject(catalog)
	b.writer.SetRoot(b.catalogObjNum)

	return b.writer.Bytes()
}

// Pages returns the list of page object numbers
func (b *SimplePDFBuilder) Pages() []int {
	return b.pages
}
