// Package glyph provides the fixed checkbox and placeholder images of the
// report.
package glyph

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"

	"github.com/benedoc-inc/nearmiss/layout"
	"github.com/benedoc-inc/nearmiss/types"
)

// ImageRef identifies one of the fixed image resources.
type ImageRef = *layout.Source

// Size is the drawn side of a checkbox glyph.
const Size = 12

// File names looked up in an assets directory.
const (
	CheckedFile   = "box.png"
	UncheckedFile = "empty_box.png"
	BlankFile     = "blank.png"
)

// Resolver maps a checkbox state to its glyph. It is immutable and safe for
// concurrent use.
type Resolver struct {
	checked   ImageRef
	unchecked ImageRef
	blank     ImageRef
}

// Resolve returns the checked glyph when selected, the empty one otherwise.
func (r *Resolver) Resolve(selected bool) ImageRef {
	if selected {
		return r.checked
	}
	return r.unchecked
}

// Box returns the glyph for selected as a Size×Size block.
func (r *Resolver) Box(selected bool) *layout.Image {
	return &layout.Image{Src: r.Resolve(selected), Width: Size, Height: Size}
}

// Blank returns the placeholder drawn when the report has no logo.
func (r *Resolver) Blank() ImageRef {
	return r.blank
}

// New returns the glyphs in assetsDir, or the built-in ones when assetsDir
// is empty.
func New(assetsDir string) (*Resolver, error) {
	if assetsDir == "" {
		return Builtin()
	}
	return Load(assetsDir)
}

// Load reads the glyph images from dir. Any unreadable file is a
// configuration error.
func Load(dir string) (*Resolver, error) {
	load := func(name string) (ImageRef, error) {
		path := filepath.Join(dir, name)
		src, err := layout.LoadSource(path)
		if err != nil {
			return nil, types.WrapErrorf(types.ErrCodeConfiguration, err, "cannot load image resource %s", path).
				WithContext("path", path)
		}
		return src, nil
	}

	r := &Resolver{}
	var err error
	if r.checked, err = load(CheckedFile); err != nil {
		return nil, err
	}
	if r.unchecked, err = load(UncheckedFile); err != nil {
		return nil, err
	}
	if r.blank, err = load(BlankFile); err != nil {
		return nil, err
	}
	return r, nil
}

// Builtin draws the glyphs in memory.
func Builtin() (*Resolver, error) {
	checked, err := layout.NewSource("glyph:"+CheckedFile, drawBox(true))
	if err != nil {
		return nil, err
	}
	unchecked, err := layout.NewSource("glyph:"+UncheckedFile, drawBox(false))
	if err != nil {
		return nil, err
	}
	blankImg := image.NewGray(image.Rect(0, 0, 1, 1))
	blankImg.Pix[0] = 0xff
	blank, err := layout.NewSource("glyph:"+BlankFile, blankImg)
	if err != nil {
		return nil, err
	}
	return &Resolver{checked: checked, unchecked: unchecked, blank: blank}, nil
}

// boxPixels is the raster side of a built-in checkbox.
const boxPixels = 48

func drawBox(filled bool) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, boxPixels, boxPixels))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	border := 4
	inner := image.Rect(border, border, boxPixels-border, boxPixels-border)
	draw.Draw(img, inner, image.White, image.Point{}, draw.Src)

	if filled {
		gap := border + 6
		mark := image.Rect(gap, gap, boxPixels-gap, boxPixels-gap)
		draw.Draw(img, mark, &image.Uniform{C: color.Gray{Y: 0}}, image.Point{}, draw.Src)
	}
	return img
}
