package writer

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestPDFWriter_BasicPDF(t *testing.T) {
	w := NewPDFWriter()
	
	// Add a simple catalog object
	catalogNum := w.AddObject([]byte("<</Type/Catalog/Pages 2 0 R>>"))
	w.SetRoot(catalogNum)
	
	// Add pages object
	w.AddObject([]byte("<</Type/Pages/Kids[]/Count 0>>"))
	
	// Generate PDF
	pdfBytes, err := w.Bytes()
	if err != nil {
		t.Fatalf("Failed to generate PDF: %v", err)
	}
	
	// Verify PDF structure
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF-1.7")) {
		t.Errorf("PDF should start with %%PDF-1.7")
	}
	
	if !bytes.Contains(pdfBytes, []byte("xref")) {
		t.Errorf("PDF should contain xref table")
	}
	
	if !bytes.Contains(pdfBytes, []byte("trailer")) {
		t.Errorf("PDF should contain trailer")
	}
	
	if !bytes.Contains(pdfBytes, []byte("startxref")) {
		t.Errorf("PDF should contain startxref")
	}
	
	if !bytes.HasSuffix(pdfBytes, []byte("%%EOF\n")) {
		t.Errorf("PDF should end with EOF marker")
	}
	
	t.Logf("Generated PDF: %d bytes", len(pdfBytes))
}

func TestPDFWriter_StreamObject(t *testing.T) {
	w := NewPDFWriter()
	
	// Add a stream object with compression
	streamData := []byte("This is the stream content to be compressed.")
	dict := Dictionary{
		"Type": "/Test",
	}
	objNum := w.AddStreamObject(dict, streamData, true)
	
	// Add catalog
	catalogNum := w.AddObject([]byte("<</Type/Catalog>>"))
	w.SetRoot(catalogNum)
	
	// Generate PDF
	pdfBytes, err := w.Bytes()
	if err != nil {
		t.Fatalf("Failed to generate PDF: %v", err)
	}
	
	// Verify stream object is in PDF
	if !bytes.Contains(pdfBytes, []byte("/FlateDecode")) {
		t.Errorf("PDF should contain FlateDecode filter for compressed stream")
	}
	
	if !bytes.Contains(pdfBytes, []byte("/Length")) {
		t.Errorf("PDF should contain Length in stream dictionary")
	}
	
	t.Logf("Stream object number: %d, PDF: %d bytes", objNum, len(pdfBytes))
}

func TestPDFWriter_SetObject(t *testing.T) {
	w := NewPDFWriter()
	
	// Set objects at specific numbers (useful for rebuild)
	w.SetObject(5, []byte("<</Type/Test1>>"))
	w.SetObject(10, []byte("<</Type/Test2>>"))
	w.SetRoot(5)
	
	// Generate PDF
	pdfBytes, err := w.Bytes()
	if err != nil {
		t.Fatalf("Failed to generate PDF: %v", err)
	}
	
	// Verify objects are present
	if !bytes.Contains(pdfBytes, []byte("5 0 obj")) {
		t.Errorf("PDF should contain object 5")
	}
	
	if !bytes.Contains(pdfBytes, []byte("10 0 obj")) {
		t.Errorf("PDF should contain object 10")
	}
	
	// Verify xref has correct size
	if !bytes.Contains(pdfBytes, []byte("/Size 11")) {
		t.Errorf("PDF should have /Size 11 (0-10 inclusive)")
	}
	
	t.Logf("Generated PDF: %d bytes", len(pdfBytes))
}

func TestPDFWriter_XRefTable(t *testing.T) {
	w := NewPDFWriter()
	
	// Add some objects
	w.AddObject([]byte("<</Test 1>>"))
	w.AddObject([]byte("<</Test 2>>"))
	w.AddObject([]byte("<</Test 3>>"))
	catalogNum := w.AddObject([]byte("<</Type/Catalog>>"))
	w.SetRoot(catalogNum)
	
	// Generate PDF
	pdfBytes, err := w.Bytes()
	if err != nil {
		t.Fatalf("Failed to generate PDF: %v", err)
	}
	
	// Find xref section
	xrefIdx := bytes.Index(pdfBytes, []byte("xref\n"))
	if xrefIdx == -1 {
		t.Fatalf("xref not found")
	}
	
	// Verify xref entries format
	xrefSection := string(pdfBytes[xrefIdx:])
	if !bytes.Contains([]byte(xrefSection), []byte("0000000000 65535 f ")) {
		t.Errorf("xref should start with free entry 0")
	}
	
	t.Logf("xref section starts at offset %d", xrefIdx)
}

func TestDictionary_Formatting(t *testing.T) {
	w := NewPDFWriter()
	
	dict := Dictionary{
		"Type":   "/Catalog",
		"Length": 42,
		"Name":   "/TestName",
		"Ref":    "5 0 R",
	}
	
	formatted := w.formatDictionary(dict)
	
	if !bytes.Contains(formatted, []byte("/Type /Catalog")) {
		t.Errorf("Dictionary should contain /Type /Catalog, got: %s", formatted)
	}
	
	if !bytes.Contains(formatted, []byte("/Length 42")) {
		t.Errorf("Dictionary should contain /Length 42, got: %s", formatted)
	}
	
	if !bytes.Contains(formatted, []byte("/Ref 5 0 R")) {
		t.Errorf("Dictionary should contain /Ref 5 0 R, got: %s", formatted)
	}
	
	t.Logf("Formatted dictionary: %s", formatted)
}

func TestPDFWriter_DeterministicID(t *testing.T) {
	build := func(title string) []byte {
		w := NewPDFWriter()
		catalogNum := w.AddObject([]byte("<</Type/Catalog>>"))
		w.SetRoot(catalogNum)
		w.SetMetadata(&Metadata{Title: title})
		out, err := w.Bytes()
		if err != nil {
			t.Fatalf("Failed to generate PDF: %v", err)
		}
		return out
	}

	a, b := build("Report"), build("Report")
	if !bytes.Equal(a, b) {
		t.Errorf("same objects should give identical bytes")
	}
	if !bytes.Contains(a, []byte("/ID [<")) {
		t.Errorf("trailer should carry a file ID")
	}
	if bytes.Equal(a, build("Other")) {
		t.Errorf("different content should give a different file")
	}
	if bytes.Contains(a, []byte("ModDate")) || bytes.Contains(a, []byte("CreationDate")) {
		t.Errorf("metadata should not contain dates")
	}

	w := NewPDFWriter()
	w.SetFileID([]byte{0xAB, 0xCD})
	out, _ := w.Bytes()
	if !bytes.Contains(out, []byte("/ID [<ABCD><ABCD>]")) {
		t.Errorf("explicit file ID should be used, got: %s", out)
	}
}

func TestEscapePDFString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a(b)c", `a\(b\)c`},
		{`back\slash`, `back\\slash`},
		{"line\nbreak", `line\nbreak`},
		{"\xC9t\xE9", `\311t\351`},
	}
	for _, tt := range tests {
		if got := escapePDFString(tt.in); got != tt.want {
			t.Errorf("escapePDFString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextString(t *testing.T) {
	if got := TextString("Report (v1)").format(); got != `(Report \(v1\))` {
		t.Errorf("ASCII text string = %s", got)
	}
	if got := TextString("É").format(); got != "<FEFF00C9>" {
		t.Errorf("non-ASCII text string = %s, want UTF-16BE with BOM", got)
	}
	// A title ending like a reference must still be a string
	w := NewPDFWriter()
	if got := w.formatValue(TextString("Block R")); got != "(Block R)" {
		t.Errorf("formatValue(TextString) = %s", got)
	}
}

func TestContentStream_Text(t *testing.T) {
	cs := NewContentStream()
	cs.TextAt("/F1", 10, 20, 30, []byte("Hi (x)"))
	cs.Line(0, 0, 10, 0, 1)

	want := "BT\n/F1 10.0000 Tf\n20.0000 30.0000 Td\n(Hi \\(x\\)) Tj\nET\n" +
		"1.0000 w\n0.0000 0.0000 m\n10.0000 0.0000 l\nS\n"
	if cs.String() != want {
		t.Errorf("content stream = %q, want %q", cs.String(), want)
	}
}

func TestSimplePDFBuilder_SharedFontAndSortedResources(t *testing.T) {
	b := NewSimplePDFBuilder()
	b.SetLanguage("fr")

	var fontRefs []string
	for i := 0; i < 2; i++ {
		pb := b.AddPage(PageSizeA4)
		f := pb.AddStandardFont("Helvetica")
		if again := pb.AddStandardFont("Helvetica"); again != f {
			t.Errorf("same font on one page should reuse %s, got %s", f, again)
		}
		pb.AddImage(&ImageInfo{ObjectNum: 90, Name: "/Im2"})
		pb.AddImage(&ImageInfo{ObjectNum: 91, Name: "Im1"})
		pb.Content().TextAt(f, 10, 20, 800, []byte("Page"))
		b.FinalizePage(pb)
		fontRefs = append(fontRefs, f)
	}

	out, err := b.Bytes()
	if err != nil {
		t.Fatalf("Failed to generate PDF: %v", err)
	}
	if n := bytes.Count(out, []byte("/BaseFont/Helvetica")); n != 1 {
		t.Errorf("Helvetica should be defined once, found %d", n)
	}
	if !bytes.Contains(out, []byte("/Encoding/WinAnsiEncoding")) {
		t.Errorf("standard font should use WinAnsiEncoding")
	}
	if !bytes.Contains(out, []byte("/XObject<</Im1 91 0 R/Im2 90 0 R>>")) {
		t.Errorf("image resources should be sorted by name")
	}
	if !bytes.Contains(out, []byte("/Lang (fr)")) {
		t.Errorf("catalog should carry the language")
	}
	if !bytes.Contains(out, []byte("/Count 2")) {
		t.Errorf("page tree should count two pages")
	}
	if len(b.Pages()) != 2 {
		t.Errorf("expected 2 pages, got %d", len(b.Pages()))
	}
}

func TestSimplePDFBuilder_Outline(t *testing.T) {
	b := NewSimplePDFBuilder()
	for i := 0; i < 2; i++ {
		b.FinalizePage(b.AddPage(PageSizeA4))
	}
	b.SetOutline([]OutlineItem{
		{Title: "Situation", Page: 0, Top: 700},
		{Title: "Pièces jointes", Page: 1, Top: 822},
	})
	out, err := b.Bytes()
	if err != nil {
		t.Fatalf("Failed to generate PDF: %v", err)
	}
	for _, want := range []string{"/Type /Outlines", "/Count 2", "/Title (Situation)", "/XYZ 0 700 null", "/PageMode /UseOutlines"} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("PDF should contain %q", want)
		}
	}

	bad := NewSimplePDFBuilder()
	bad.FinalizePage(bad.AddPage(PageSizeA4))
	bad.SetOutline([]OutlineItem{{Title: "Missing", Page: 3}})
	if _, err := bad.Bytes(); err == nil {
		t.Errorf("outline pointing past the last page should fail")
	}
}

func TestPDFWriter_AddImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	var opaque bytes.Buffer
	if err := png.Encode(&opaque, img); err != nil {
		t.Fatal(err)
	}

	w := NewPDFWriter()
	info, err := w.AddImage(opaque.Bytes(), "/Im1")
	if err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}
	if info.Width != 3 || info.Height != 2 || info.ColorSpace != "/DeviceRGB" {
		t.Errorf("unexpected image info: %+v", info)
	}
	if _, ok := w.objects[info.ObjectNum].Dict["SMask"]; ok {
		t.Errorf("opaque image should have no soft mask")
	}

	img.Set(0, 0, color.NRGBA{A: 0})
	var transparent bytes.Buffer
	if err := png.Encode(&transparent, img); err != nil {
		t.Fatal(err)
	}
	info, err = w.AddImage(transparent.Bytes(), "")
	if err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}
	if _, ok := w.objects[info.ObjectNum].Dict["SMask"]; !ok {
		t.Errorf("transparent image should have a soft mask")
	}

	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, img, nil); err != nil {
		t.Fatal(err)
	}
	info, err = w.AddImage(jpg.Bytes(), "")
	if err != nil {
		t.Fatalf("AddImage(jpeg) failed: %v", err)
	}
	obj := w.objects[info.ObjectNum]
	if obj.Dict["Filter"] != "/DCTDecode" || !bytes.Equal(obj.Stream, jpg.Bytes()) {
		t.Errorf("JPEG should be embedded as is with DCTDecode")
	}
	if info.Width != 3 || info.Height != 2 {
		t.Errorf("JPEG size = %dx%d, want 3x2", info.Width, info.Height)
	}

	if _, err := w.AddImage([]byte("not an image"), ""); err == nil {
		t.Errorf("AddImage should reject non-image data")
	}
}
