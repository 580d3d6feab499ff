// Package writer provides PDF writing capabilities including page content streams
package writer

import (
	"bytes"
	"fmt"
)

// ContentStream builds PDF page content streams
type ContentStream struct {
	buf bytes.Buffer
}

// NewContentStream creates a new content stream builder
func NewContentStream() *ContentStream {
	return &ContentStream{}
}

// Bytes returns the content stream data
func (cs *ContentStream) Bytes() []byte {
	return cs.buf.Bytes()
}

// String returns the content stream as a string
func (cs *ContentStream) String() string {
	return cs.buf.String()
}

// --- Graphics State Operations ---

// SaveState saves the current graphics state (q operator)
func (cs *ContentStream) SaveState() *ContentStream {
	cs.buf.WriteString("q\n")
	return cs
}

// RestoreState restores the previous graphics state (Q operator)
func (cs *ContentStream) RestoreState() *ContentStream {
	cs.buf.WriteString("Q\n")
	return cs
}

// SetMatrix sets the current transformation matrix (cm operator)
func (cs *ContentStream) SetMatrix(a, b, c, d, e, f float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.4f %.4f %.4f %.4f %.4f %.4f cm\n", a, b, c, d, e, f))
	return cs
}

// --- Color Operations ---

// SetFillColorGray sets the fill color to grayscale (g operator)
func (cs *ContentStream) SetFillColorGray(gray float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.4f g\n", gray))
	return cs
}

// SetStrokeColorGray sets the stroke color to grayscale (G operator)
func (cs *ContentStream) SetStrokeColorGray(gray float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.4f G\n", gray))
	return cs
}

// --- Path Operations ---

// MoveTo starts a new subpath (m operator)
func (cs *ContentStream) MoveTo(x, y float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.4f %.4f m\n", x, y))
	return cs
}

// LineTo appends a line segment (l operator)
func (cs *ContentStream) LineTo(x, y float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.4f %.4f l\n", x, y))
	return cs
}

// Stroke strokes the current path (S operator)
func (cs *ContentStream) Stroke() *ContentStream {
	cs.buf.WriteString("S\n")
	return cs
}

// SetLineWidth sets the line width (w operator)
func (cs *ContentStream) SetLineWidth(width float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.4f w\n", width))
	return cs
}

// Line strokes a single segment at the given width
func (cs *ContentStream) Line(x1, y1, x2, y2, width float64) *ContentStream {
	return cs.SetLineWidth(width).MoveTo(x1, y1).LineTo(x2, y2).Stroke()
}

// --- Text Operations ---

// BeginText starts a text object (BT operator)
func (cs *ContentStream) BeginText() *ContentStream {
	cs.buf.WriteString("BT\n")
	return cs
}

// EndText ends a text object (ET operator)
func (cs *ContentStream) EndText() *ContentStream {
	cs.buf.WriteString("ET\n")
	return cs
}

// SetFont sets the font and size (Tf operator)
// fontName should be a resource name like "/F1"
func (cs *ContentStream) SetFont(fontName string, size float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%s %.4f Tf\n", fontName, size))
	return cs
}

// SetTextPosition sets the text position (Td operator)
func (cs *ContentStream) SetTextPosition(x, y float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.4f %.4f Td\n", x, y))
	return cs
}

// ShowText displays a string (Tj operator). text holds bytes in the font's
// encoding, not UTF-8.
func (cs *ContentStream) ShowText(text []byte) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("(%s) Tj\n", escapePDFString(string(text))))
	return cs
}

// TextAt draws one string with its baseline origin at (x, y)
func (cs *ContentStream) TextAt(fontName string, size, x, y float64, text []byte) *ContentStream {
	return cs.BeginText().SetFont(fontName, size).SetTextPosition(x, y).ShowText(text).EndText()
}

// --- Image Operations ---

// DrawImage draws an image XObject (Do operator)
// imageName should be a resource name like "/Im1"
func (cs *ContentStream) DrawImage(imageName string) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%s Do\n", imageName))
	return cs
}

// DrawImageAt draws an image at a specific position and size
func (cs *ContentStream) DrawImageAt(imageName string, x, y, width, height float64) *ContentStream {
	cs.SaveState()
	cs.SetMatrix(width, 0, 0, height, x, y)
	cs.DrawImage(imageName)
	cs.RestoreState()
	return cs
}

// escapePDFString escapes a byte string for a PDF literal. Bytes outside
// printable ASCII are written as octal escapes.
func escapePDFString(s string) string {
	var result bytes.Buffer
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(':
			result.WriteString("\\(")
		case ')':
			result.WriteString("\\)")
		case '\\':
			result.WriteString("\\\\")
		case '\n':
			result.WriteString("\\n")
		case '\r':
			result.WriteString("\\r")
		case '\t':
			result.WriteString("\\t")
		default:
			if c < 0x20 || c >= 0x7F {
				fmt.Fprintf(&result, "\\%03o", c)
			} else {
				result.WriteByte(c)
			}
		}
	}
	return result.String()
}
