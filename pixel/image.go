// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pixel

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageSink is a Sink that converts raw pixel data into an
// image.Image.
// The zero value is ready to use.
type ImageSink struct {
	// Dst, when non-nil, receives the converted pixels
	// and becomes the resulting Image.
	// When nil, the result wraps the raw data in place,
	// without copying.
	Dst draw.Image

	// Image is the result of the last SetRaw call.
	Image image.Image
}

// SetRaw implements Sink.
// It panics if the raw data's format has no image.Image
// interpretation; R8, RGBA8 and BGRA8 have one.
func (s *ImageSink) SetRaw(img RawImage) {
	src := wrapRaw(img)
	if s.Dst == nil {
		s.Image = src
		return
	}
	draw.Draw(s.Dst, s.Dst.Bounds(), src, src.Bounds().Min, draw.Src)
	s.Image = s.Dst
}

// ReadImage copies the content of the buffer back to host
// memory as an image.Image.
// Like ReadInto, it returns false when the backend cannot
// read buffers back and panics if StoreInfos was never
// called. The formats that ImageSink handles apply.
func (b *Buffer) ReadImage() (image.Image, bool) {
	var s ImageSink
	if !b.ReadInto(&s) {
		return nil, false
	}
	return s.Image, true
}

// wrapRaw interprets raw pixel data as an image.Image,
// without copying it.
func wrapRaw(img RawImage) image.Image {
	if len(img.Data) < img.Width*img.Height*img.Format.Size() {
		panic(prefix + "not enough data for the given shape")
	}
	r := image.Rect(0, 0, img.Width, img.Height)
	switch img.Format {
	case R8:
		return &image.Gray{Pix: img.Data, Stride: img.Width, Rect: r}
	case RGBA8:
		return &image.RGBA{Pix: img.Data, Stride: 4 * img.Width, Rect: r}
	case BGRA8:
		return &bgraImage{img.Data, 4 * img.Width, r}
	}
	panic(prefix + "no image conversion for format " + img.Format.String())
}

// bgraImage interprets interleaved B, G, R, A bytes as an
// image.Image.
type bgraImage struct {
	pix    []byte
	stride int
	rect   image.Rectangle
}

func (p *bgraImage) ColorModel() color.Model { return color.RGBAModel }

func (p *bgraImage) Bounds() image.Rectangle { return p.rect }

func (p *bgraImage) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.rect)) {
		return color.RGBA{}
	}
	i := (y-p.rect.Min.Y)*p.stride + (x-p.rect.Min.X)*4
	s := p.pix[i : i+4 : i+4]
	return color.RGBA{R: s[2], G: s[1], B: s[0], A: s[3]}
}
