// Package writer provides PDF writing capabilities
package writer

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// PDFObject represents a PDF object with its content
type PDFObject struct {
	Number     int
	Generation int
	Content    []byte     // Raw content (dictionary, array, etc.)
	Stream     []byte     // Stream data (if this is a stream object)
	Dict       Dictionary // Stream dictionary
	IsFree     bool
}

// Dictionary represents a PDF dictionary
type Dictionary map[string]interface{}

// idNamespace scopes the name-based file identifiers of documents we write.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/benedoc-inc/nearmiss/pdf"))

// PDFWriter builds PDF files from scratch. Output depends only on the objects
// added, so the same objects always give the same bytes.
type PDFWriter struct {
	objects    map[int]*PDFObject
	nextObjNum int
	rootRef    string
	infoRef    string
	fileID     []byte
	pdfVersion string

	standardFonts map[string]int // base font name -> object number
}

// NewPDFWriter creates a new PDF writer
func NewPDFWriter() *PDFWriter {
	return &PDFWriter{
		objects:       make(map[int]*PDFObject),
		nextObjNum:    1,
		pdfVersion:    "1.7",
		standardFonts: make(map[string]int),
	}
}

// SetVersion sets the PDF version (e.g., "1.7")
func (w *PDFWriter) SetVersion(version string) {
	w.pdfVersion = version
}

// SetFileID fixes the trailer /ID. Without it the ID is derived from the
// document body.
func (w *PDFWriter) SetFileID(id []byte) {
	w.fileID = id
}

// AddObject adds a new object and returns its object number
func (w *PDFWriter) AddObject(content []byte) int {
	objNum := w.nextObjNum
	w.nextObjNum++

	w.objects[objNum] = &PDFObject{
		Number:     objNum,
		Generation: 0,
		Content:    content,
	}

	return objNum
}

// AddDictObject adds a dictionary object and returns its object number
func (w *PDFWriter) AddDictObject(dict Dictionary) int {
	return w.AddObject(w.formatDictionary(dict))
}

// ReserveObject allocates an object number to be filled later with SetObject
func (w *PDFWriter) ReserveObject() int {
	objNum := w.nextObjNum
	w.nextObjNum++
	return objNum
}

// AddStreamObject adds a stream object with dictionary and data
func (w *PDFWriter) AddStreamObject(dict Dictionary, data []byte, compress bool) int {
	objNum := w.ReserveObject()
	w.SetStreamObject(objNum, dict, data, compress)
	return objNum
}

// SetObject sets or replaces an object at a specific number
func (w *PDFWriter) SetObject(objNum int, content []byte) {
	w.objects[objNum] = &PDFObject{
		Number:     objNum,
		Generation: 0,
		Content:    content,
	}
	if objNum >= w.nextObjNum {
		w.nextObjNum = objNum + 1
	}
}

// SetStreamObject sets a stream object at a specific number
func (w *PDFWriter) SetStreamObject(objNum int, dict Dictionary, data []byte, compress bool) {
	streamData := data
	if streamData == nil {
		streamData = []byte{}
	}
	if compress && len(data) > 0 {
		var buf bytes.Buffer
		zw, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		zw.Write(data)
		zw.Close()
		streamData = buf.Bytes()
		dict["Filter"] = "/FlateDecode"
	}

	dict["Length"] = len(streamData)

	w.objects[objNum] = &PDFObject{
		Number:     objNum,
		Generation: 0,
		Dict:       dict,
		Stream:     streamData,
	}
	if objNum >= w.nextObjNum {
		w.nextObjNum = objNum + 1
	}
}

// SetRoot sets the root (catalog) object reference
func (w *PDFWriter) SetRoot(objNum int) {
	w.rootRef = fmt.Sprintf("%d 0 R", objNum)
}

// SetInfo sets the info dictionary object reference
func (w *PDFWriter) SetInfo(objNum int) {
	w.infoRef = fmt.Sprintf("%d 0 R", objNum)
}

// Write outputs the complete PDF to the given writer
func (w *PDFWriter) Write(out io.Writer) error {
	var buf bytes.Buffer

	// Write header
	buf.WriteString(fmt.Sprintf("%%PDF-%s\n", w.pdfVersion))
	buf.Write([]byte{0x25, 0xE2, 0xE3, 0xCF, 0xD3, 0x0A}) // Binary marker

	// Collect and sort object numbers
	var objNums []int
	for num := range w.objects {
		objNums = append(objNums, num)
	}
	sort.Ints(objNums)

	// Write objects and track positions
	positions := make(map[int]int64)

	for _, objNum := range objNums {
		obj := w.objects[objNum]
		if obj.IsFree {
			continue
		}

		positions[objNum] = int64(buf.Len())

		buf.WriteString(fmt.Sprintf("%d %d obj\n", objNum, obj.Generation))

		if obj.Stream != nil {
			buf.Write(w.formatDictionary(obj.Dict))
			buf.WriteString("\nstream\n")
			buf.Write(obj.Stream)
			buf.WriteString("\nendstream")
		} else if obj.Content != nil {
			buf.Write(obj.Content)
		}

		buf.WriteString("\nendobj\n")
	}

	fileID := w.fileID
	if len(fileID) == 0 {
		id := uuid.NewSHA1(idNamespace, buf.Bytes())
		fileID = id[:]
	}

	// Write xref table
	xrefPos := int64(buf.Len())
	buf.WriteString("xref\n")
	buf.WriteString(fmt.Sprintf("0 %d\n", w.nextObjNum))

	// Entry for object 0 (always free, points to next free object)
	buf.WriteString(fmt.Sprintf("%010d %05d f \n", 0, 65535))

	for i := 1; i < w.nextObjNum; i++ {
		if pos, ok := positions[i]; ok {
			buf.WriteString(fmt.Sprintf("%010d %05d n \n", pos, 0))
		} else {
			buf.WriteString(fmt.Sprintf("%010d %05d f \n", 0, 1))
		}
	}

	// Write trailer
	buf.WriteString("trailer\n<<\n")
	buf.WriteString(fmt.Sprintf("/Size %d\n", w.nextObjNum))
	if w.rootRef != "" {
		buf.WriteString(fmt.Sprintf("/Root %s\n", w.rootRef))
	}
	if w.infoRef != "" {
		buf.WriteString(fmt.Sprintf("/Info %s\n", w.infoRef))
	}
	hexID := fmt.Sprintf("%X", fileID)
	buf.WriteString(fmt.Sprintf("/ID [<%s><%s>]\n", hexID, hexID))
	buf.WriteString(">>\n")

	buf.WriteString(fmt.Sprintf("startxref\n%d\n%%%%EOF\n", xrefPos))

	_, err := out.Write(buf.Bytes())
	return err
}

// formatDictionary formats a Dictionary as PDF syntax
func (w *PDFWriter) formatDictionary(dict Dictionary) []byte {
	var buf bytes.Buffer
	buf.WriteString("<<")

	// Sort keys for consistent output
	var keys []string
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := dict[key]
		name := key
		if !strings.HasPrefix(name, "/") {
			name = "/" + name
		}
		buf.WriteString(name)
		buf.WriteString(" ")
		buf.WriteString(w.formatValue(value))
		buf.WriteString(" ")
	}

	buf.WriteString(">>")
	return buf.Bytes()
}

// formatValue formats a value for PDF output
func (w *PDFWriter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case TextString:
		return v.format()
	case string:
		// Names and references are used as-is
		if strings.HasPrefix(v, "/") || strings.HasSuffix(v, " R") || strings.HasPrefix(v, "[") {
			return v
		}
		return "(" + escapePDFString(v) + ")"
	case []byte:
		return "<" + fmt.Sprintf("%X", v) + ">"
	case []interface{}:
		var items []string
		for _, item := range v {
			items = append(items, w.formatValue(item))
		}
		return "[" + strings.Join(items, " ") + "]"
	case Dictionary:
		return string(w.formatDictionary(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Bytes returns the complete PDF as a byte slice
func (w *PDFWriter) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
