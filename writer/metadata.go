package writer

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/encoding/unicode"
)

// TextString is a PDF text string. ASCII text is written as a literal;
// anything else as UTF-16BE with a byte order mark.
type TextString string

func (s TextString) format() string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
			utf16, err := enc.String(string(s))
			if err != nil {
				break
			}
			return fmt.Sprintf("<%X>", utf16)
		}
	}
	return "(" + escapePDFString(string(s)) + ")"
}

// Metadata holds the document Info entries. No dates are written.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	Custom   map[string]string
}

// SetMetadata creates an Info dictionary object with the provided metadata
// and sets it as the document info. Returns the object number.
func (w *PDFWriter) SetMetadata(metadata *Metadata) int {
	if metadata == nil {
		return 0
	}

	dict := Dictionary{}
	set := func(key, value string) {
		if value != "" {
			dict[key] = TextString(value)
		}
	}
	set("Title", metadata.Title)
	set("Author", metadata.Author)
	set("Subject", metadata.Subject)
	set("Keywords", metadata.Keywords)
	set("Creator", metadata.Creator)
	set("Producer", metadata.Producer)

	keys := make([]string, 0, len(metadata.Custom))
	for key := range metadata.Custom {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if key != "" {
			set(key, metadata.Custom[key])
		}
	}

	objNum := w.AddDictObject(dict)
	w.SetInfo(objNum)

	return objNum
}

// formatNumber prints a coordinate without trailing zeros
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
