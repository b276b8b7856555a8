package stroke

import (
	"image"
	"image/color"

	"github.com/32bitkid/paint/screen"
	"golang.org/x/image/draw"
)

// Kind selects which tool the rasterizer stamps with.
type Kind uint8

const (
	KindPen Kind = iota
	KindBrush
)

func (k Kind) String() string {
	switch k {
	case KindPen:
		return "Kind(Pen)"
	case KindBrush:
		return "Kind(Brush)"
	}
	return "Kind(UNKNOWN)"
}

const (
	// MinPenSize and MaxPenSize bound the edge length of a pen block.
	MinPenSize = 1
	MaxPenSize = 50

	// BrushSize is the edge length of the square a brush stamp fits into.
	BrushSize = 50
)

// Tool places its pixel pattern on a buffer.
type Tool interface {
	// Stamp writes the tool's pattern with its top-left corner at the
	// given point. Writes are clipped to the buffer.
	Stamp(dst *screen.Buffer, at image.Point)
	// Footprint is the size of the area a single stamp may touch.
	Footprint() image.Point
}

// Pen stamps a solid square block.
type Pen struct {
	Size  int
	Color color.NRGBA
}

func (p Pen) Stamp(dst *screen.Buffer, at image.Point) {
	dst.Block(image.Rectangle{Min: at, Max: at.Add(p.Footprint())}, p.Color)
}

func (p Pen) Footprint() image.Point {
	return image.Pt(p.Size, p.Size)
}

// Brush stamps a copy of a bitmap, alpha included.
type Brush struct {
	Image *image.NRGBA
}

func (b Brush) Stamp(dst *screen.Buffer, at image.Point) {
	if b.Image == nil {
		return
	}
	dst.Blit(at, b.Image)
}

func (b Brush) Footprint() image.Point {
	if b.Image == nil {
		return image.Point{}
	}
	return b.Image.Rect.Size()
}

// SolidBrush returns a BrushSize×BrushSize stamp filled with c.
func SolidBrush(c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, BrushSize, BrushSize))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// ScaleBrush fits src into a BrushSize×BrushSize square keeping its aspect
// ratio, using nearest-neighbour sampling. The result is anchored at the
// origin and is never smaller than one pixel on either axis.
func ScaleBrush(src image.Image) *image.NRGBA {
	sr := src.Bounds()
	size := fit(sr.Size(), BrushSize)
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	if sr.Empty() {
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Rect, src, sr, draw.Src, nil)
	return dst
}

// fit scales size so that its longer side equals edge.
func fit(size image.Point, edge int) image.Point {
	if size.X <= 0 || size.Y <= 0 {
		return image.Pt(edge, edge)
	}
	var w, h int
	if size.X >= size.Y {
		w, h = edge, size.Y*edge/size.X
	} else {
		w, h = size.X*edge/size.Y, edge
	}
	return image.Pt(max(w, 1), max(h, 1))
}

func clampPenSize(n int) int {
	switch {
	case n < MinPenSize:
		return MinPenSize
	case n > MaxPenSize:
		return MaxPenSize
	default:
		return n
	}
}
