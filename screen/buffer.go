package screen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// White is the default canvas background.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Buffer is the pixel bitmap backing a paint surface. Pixels are stored
// non-premultiplied, row-major, with the top-left pixel at the origin.
//
// Every write is clipped to the buffer bounds; coordinates outside the
// bitmap are silently dropped.
type Buffer struct {
	*image.NRGBA
	Background color.NRGBA

	modified bool
}

// NewBuffer allocates a buffer of the given size filled with the background.
// Negative dimensions are treated as zero.
func NewBuffer(size image.Point, background color.Color) *Buffer {
	buf := &Buffer{
		NRGBA:      image.NewNRGBA(image.Rectangle{Max: nonNegative(size)}),
		Background: toNRGBA(background),
	}
	buf.Fill(buf.Background)
	return buf
}

// Size returns the width and height of the bitmap.
func (buf *Buffer) Size() image.Point {
	return buf.Rect.Size()
}

// Image returns the backing bitmap.
func (buf *Buffer) Image() *image.NRGBA {
	return buf.NRGBA
}

func (buf *Buffer) Modified() bool {
	return buf.modified
}

func (buf *Buffer) SetModified(modified bool) {
	buf.modified = modified
}

// Fill paints every pixel with c. It does not touch the modified flag.
func (buf *Buffer) Fill(c color.Color) {
	buf.Block(buf.Rect, toNRGBA(c))
}

// Clear refills the buffer with its background and marks it modified.
func (buf *Buffer) Clear() {
	buf.Fill(buf.Background)
	buf.modified = true
}

// Block writes a solid rectangle of c, clipped to the buffer bounds.
func (buf *Buffer) Block(r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(buf.Rect)
	if r.Empty() {
		return
	}

	px := [4]uint8{c.R, c.G, c.B, c.A}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		offset := buf.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			copy(buf.Pix[offset:offset+4], px[:])
			offset += 4
		}
	}
}

// Blit copies src onto the buffer with its top-left corner at the given
// point. Pixels, alpha included, overwrite the destination; nothing is
// blended. The copy is clipped to the buffer bounds.
func (buf *Buffer) Blit(at image.Point, src image.Image) {
	sr := src.Bounds()
	dr := image.Rectangle{Min: at, Max: at.Add(sr.Size())}
	draw.Draw(buf.NRGBA, dr, src, sr.Min, draw.Src)
}

// Pad grows the buffer so that it covers at least size on both axes.
// Existing content stays anchored at the origin and the new area is filled
// with the background. The buffer never shrinks; padding to the current size
// or smaller is a no-op.
func (buf *Buffer) Pad(size image.Point) {
	if size == buf.Size() {
		return
	}
	grown := union(buf.Size(), size)
	if grown == buf.Size() {
		return
	}
	buf.NRGBA = padded(buf.NRGBA, grown, buf.Background)
}

// Padded returns the visible region of the buffer: its content padded with
// background to cover at least size. The buffer itself is left unchanged;
// when no padding is needed the backing bitmap is returned as is.
func (buf *Buffer) Padded(size image.Point) image.Image {
	grown := union(buf.Size(), size)
	if grown == buf.Size() {
		return buf.NRGBA
	}
	return padded(buf.NRGBA, grown, buf.Background)
}

// Replace makes img the new content of the buffer, re-anchored at the origin.
// The modified flag is cleared.
func (buf *Buffer) Replace(img image.Image) {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	buf.NRGBA = dst
	buf.modified = false
}

func padded(src *image.NRGBA, size image.Point, background color.NRGBA) *image.NRGBA {
	dst := &Buffer{
		NRGBA:      image.NewNRGBA(image.Rectangle{Max: size}),
		Background: background,
	}
	dst.Fill(background)
	dst.Blit(image.Point{}, src)
	return dst.NRGBA
}

func union(a, b image.Point) image.Point {
	if b.X > a.X {
		a.X = b.X
	}
	if b.Y > a.Y {
		a.Y = b.Y
	}
	return a
}

func nonNegative(p image.Point) image.Point {
	return union(p, image.Point{})
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
