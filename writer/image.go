// Package writer provides PDF writing capabilities including image embedding
package writer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	// Register decoders for image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ImageInfo contains information about an embedded image
type ImageInfo struct {
	ObjectNum  int    // Object number of the image XObject
	Width      int    // Image width in pixels
	Height     int    // Image height in pixels
	ColorSpace string // PDF color space name (e.g., "/DeviceRGB")
	Name       string // Resource name (e.g., "/Im1")
}

// AddJPEGImage adds a JPEG image to the PDF and returns its info
// JPEG images are embedded directly without re-encoding (DCTDecode)
func (w *PDFWriter) AddJPEGImage(jpegData []byte, name string) (*ImageInfo, error) {
	width, height, colorSpace, err := parseJPEGHeader(jpegData)
	if err != nil {
		return nil, fmt.Errorf("invalid JPEG: %w", err)
	}

	dict := Dictionary{
		"Type":             "/XObject",
		"Subtype":          "/Image",
		"Width":            width,
		"Height":           height,
		"ColorSpace":       colorSpace,
		"BitsPerComponent": 8,
		"Filter":           "/DCTDecode",
	}
	if colorSpace == "/DeviceCMYK" {
		// Adobe CMYK JPEGs are stored inverted
		dict["Decode"] = []interface{}{1, 0, 1, 0, 1, 0, 1, 0}
	}

	// JPEG is already compressed
	objNum := w.AddStreamObject(dict, jpegData, false)

	return &ImageInfo{
		ObjectNum:  objNum,
		Width:      width,
		Height:     height,
		ColorSpace: colorSpace,
		Name:       name,
	}, nil
}

// AddImage adds a generic image (PNG, GIF, etc.) to the PDF
// The image is converted to raw RGB/Gray data and compressed with FlateDecode
func (w *PDFWriter) AddImage(imgData []byte, name string) (*ImageInfo, error) {
	img, format, err := image.Decode(bytes.NewReader(imgData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if format == "jpeg" {
		return w.AddJPEGImage(imgData, name)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var rawData []byte
	var colorSpace string

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		colorSpace = "/DeviceGray"
		rawData = make([]byte, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				gray := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
				rawData[y*width+x] = gray.Y
			}
		}
	default:
		colorSpace = "/DeviceRGB"
		rawData = make([]byte, width*height*3)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
				idx := (y*width + x) * 3
				rawData[idx] = c.R
				rawData[idx+1] = c.G
				rawData[idx+2] = c.B
			}
		}
	}

	dict := Dictionary{
		"Type":             "/XObject",
		"Subtype":          "/Image",
		"Width":            width,
		"Height":           height,
		"ColorSpace":       colorSpace,
		"BitsPerComponent": 8,
	}

	// Transparent pixels go into a soft mask
	if alpha, ok := alphaMask(img); ok {
		maskDict := Dictionary{
			"Type":             "/XObject",
			"Subtype":          "/Image",
			"Width":            width,
			"Height":           height,
			"ColorSpace":       "/DeviceGray",
			"BitsPerComponent": 8,
		}
		maskObjNum := w.AddStreamObject(maskDict, alpha, true)
		dict["SMask"] = fmt.Sprintf("%d 0 R", maskObjNum)
	}

	objNum := w.AddStreamObject(dict, rawData, true)

	return &ImageInfo{
		ObjectNum:  objNum,
		Width:      width,
		Height:     height,
		ColorSpace: colorSpace,
		Name:       name,
	}, nil
}

// alphaMask extracts the alpha channel; ok is false for opaque images
func alphaMask(img image.Image) ([]byte, bool) {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return nil, false
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	mask := make([]byte, width*height)
	opaque := true
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			mask[y*width+x] = uint8(a >> 8)
			if a != 0xffff {
				opaque = false
			}
		}
	}
	return mask, !opaque
}

// parseJPEGHeader parses a JPEG header to extract width, height, and color space
func parseJPEGHeader(data []byte) (width, height int, colorSpace string, err error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		return 0, 0, "", fmt.Errorf("not a valid JPEG (missing SOI)")
	}

	pos := 2
	for pos < len(data)-1 {
		if data[pos] != 0xFF {
			pos++
			continue
		}

		marker := data[pos+1]
		pos += 2

		// Skip padding
		if marker == 0xFF {
			pos--
			continue
		}

		// SOF0-SOF3: baseline, extended, progressive, lossless
		if marker >= 0xC0 && marker <= 0xC3 {
			if pos+8 > len(data) {
				return 0, 0, "", fmt.Errorf("truncated SOF segment")
			}

			// Skip length (2 bytes), precision (1 byte)
			height = int(binary.BigEndian.Uint16(data[pos+3 : pos+5]))
			width = int(binary.BigEndian.Uint16(data[pos+5 : pos+7]))
			components := int(data[pos+7])

			switch components {
			case 1:
				colorSpace = "/DeviceGray"
			case 4:
				colorSpace = "/DeviceCMYK"
			default:
				colorSpace = "/DeviceRGB"
			}

			return width, height, colorSpace, nil
		}

		if pos+1 >= len(data) {
			break
		}
		segmentLength := int(binary.BigEndian.Uint16(data[pos : pos+2]))
		pos += segmentLength
	}

	return 0, 0, "", fmt.Errorf("no SOF marker found")
}
