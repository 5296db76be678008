// SPDX-License-Identifier: MIT

package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// CaptionPosition selects the image edge the banner is attached to.
type CaptionPosition uint8

const (
	// CaptionTop places the banner above the drawing.
	CaptionTop CaptionPosition = iota
	// CaptionBottom places the banner below the drawing.
	CaptionBottom
)

// Captioner draws a one-line title in a banner outside the drawing, so the
// text never overlaps nodes or edges.
type Captioner struct {
	FontSize   float64 // points at 72 DPI
	Padding    int     // pixels around the text
	Position   CaptionPosition
	Background color.Color
	Foreground color.Color

	// MaxWidth, when positive, downsamples wider results with CatmullRom.
	MaxWidth int
}

// DefaultCaptioner returns black 20pt text on a white top banner.
func DefaultCaptioner() Captioner {
	return Captioner{
		FontSize:   20,
		Padding:    10,
		Position:   CaptionTop,
		Background: color.White,
		Foreground: color.Black,
	}
}

var regular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func (c Captioner) face() (font.Face, error) {
	fnt, err := regular()
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	size := c.FontSize
	if size <= 0 {
		size = DefaultCaptioner().FontSize
	}

	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Compose returns a new image holding img plus a banner with text.
// An empty text returns img unchanged.
//
// Implementation:
//   - Stage 1: measure text with the Go Regular face; the banner is one line
//     high plus Padding on each side.
//   - Stage 2: allocate max(img width, text width) by img height + banner,
//     fill with Background and copy img below or above the banner.
//   - Stage 3: draw text left-aligned on the banner baseline.
//   - Stage 4: optionally downsample to MaxWidth.
func (c Captioner) Compose(img image.Image, text string) (image.Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if text == "" {
		return img, nil
	}
	face, err := c.face()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	pad := c.Padding
	if pad < 0 {
		pad = 0
	}
	bg, fg := c.Background, c.Foreground
	if bg == nil {
		bg = color.White
	}
	if fg == nil {
		fg = color.Black
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	banner := ascent + m.Descent.Ceil() + 2*pad
	textW := font.MeasureString(face, text).Ceil() + 2*pad

	src := img.Bounds()
	w := src.Dx()
	if textW > w {
		w = textW
	}
	out := image.NewRGBA(image.Rect(0, 0, w, src.Dy()+banner))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	bodyY, bannerY := banner, 0
	if c.Position == CaptionBottom {
		bodyY, bannerY = 0, src.Dy()
	}
	draw.Draw(out, image.Rect(0, bodyY, src.Dx(), bodyY+src.Dy()), img, src.Min, draw.Over)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(pad), Y: fixed.I(bannerY + pad + ascent)},
	}
	d.DrawString(text)

	if c.MaxWidth > 0 && out.Bounds().Dx() > c.MaxWidth {
		return Downscale(out, c.MaxWidth), nil
	}

	return out, nil
}

// Downscale resizes img to width maxWidth keeping its aspect ratio.
func Downscale(img image.Image, maxWidth int) *image.RGBA {
	b := img.Bounds()
	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	return dst
}

// CaptionPNG decodes a PNG, composes text onto it and re-encodes it.
func (c Captioner) CaptionPNG(data []byte, text string) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("raster: decode png: %w", err)
	}
	out, err := c.Compose(img, text)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = EncodePNG(&buf, out); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}

	return nil
}
