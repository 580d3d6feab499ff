package layout

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/benedoc-inc/nearmiss/types"
)

// Source is an encoded raster image together with its pixel size. Sources
// with the same Key are embedded in the PDF once.
type Source struct {
	Key         string
	Data        []byte
	Format      string // "jpeg", "png" or "gif"
	PixelWidth  int
	PixelHeight int
}

// Aspect returns height over width.
func (s *Source) Aspect() float64 {
	if s.PixelWidth == 0 {
		return 1
	}
	return float64(s.PixelHeight) / float64(s.PixelWidth)
}

// DecodeSource reads the image header of data.
func DecodeSource(key string, data []byte) (*Source, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, types.WrapError(types.ErrCodeImageError, "cannot decode image", err).
			WithContext("path", key)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, types.NewReportErrorf(types.ErrCodeImageError, "image has no pixels").
			WithContext("path", key)
	}
	return &Source{
		Key:         key,
		Data:        data,
		Format:      format,
		PixelWidth:  cfg.Width,
		PixelHeight: cfg.Height,
	}, nil
}

// Verify decodes the whole image, catching data that is corrupt past the
// header.
func (s *Source) Verify() error {
	if _, _, err := image.Decode(bytes.NewReader(s.Data)); err != nil {
		return types.WrapError(types.ErrCodeImageError, "cannot decode image", err).
			WithContext("path", s.Key)
	}
	return nil
}

// LoadSource reads and decodes the image file at path.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.PathError(types.ErrCodeIOFailure, path, err)
	}
	return DecodeSource(path, data)
}

// NewSource encodes an in-memory image as PNG.
func NewSource(key string, img image.Image) (*Source, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, types.WrapError(types.ErrCodeImageError, "cannot encode image", err).
			WithContext("path", key)
	}
	b := img.Bounds()
	return &Source{
		Key:         key,
		Data:        buf.Bytes(),
		Format:      "png",
		PixelWidth:  b.Dx(),
		PixelHeight: b.Dy(),
	}, nil
}

// Image draws a source scaled to a fixed box.
type Image struct {
	Src    *Source
	Width  float64
	Height float64
}

func (im *Image) Size(float64) (float64, float64) { return im.Width, im.Height }

func (im *Image) Draw(c Canvas, x, top, _ float64) {
	c.Image(im.Src, x, top-im.Height, im.Width, im.Height)
}

// FitLongSide scales src so its longer side equals side.
func FitLongSide(src *Source, side float64) *Image {
	if src.PixelWidth >= src.PixelHeight {
		return &Image{Src: src, Width: side, Height: side * src.Aspect()}
	}
	return &Image{Src: src, Width: side / src.Aspect(), Height: side}
}

// FitFrame scales src to width, then shrinks it to height if it is still
// too tall. The aspect ratio is kept.
func FitFrame(src *Source, width, height float64) *Image {
	w, h := width, width*src.Aspect()
	if h > height {
		h = height
		w = height / src.Aspect()
	}
	return &Image{Src: src, Width: w, Height: h}
}
