// Package stroke turns pointer drag samples into pixel writes on a
// screen.Buffer.
//
// A Rasterizer is a small state machine. Press starts a stroke at a point,
// every Move while the button is held stamps the active tool at the new
// point and fills the gap to the previous one with a Bresenham walk, and
// Release stamps one last time and ends the stroke.
package stroke

import (
	"image"
	"image/color"

	"github.com/32bitkid/paint/screen"
)

type DebugCallback func(*Rasterizer)

type Options struct {
	// DebugFn is called after every segment the rasterizer paints.
	DebugFn DebugCallback
}

// Rasterizer holds the tool configuration and the state of the current
// drag gesture. It is not safe for concurrent use.
type Rasterizer struct {
	dst *screen.Buffer

	kind  Kind
	pen   Pen
	brush Brush

	last    image.Point
	active  bool
	started bool
	dirty   image.Rectangle

	debug DebugCallback
}

// NewRasterizer returns an idle rasterizer drawing onto dst with a 1px
// black pen and a solid green brush.
func NewRasterizer(dst *screen.Buffer, options ...Options) *Rasterizer {
	r := &Rasterizer{
		dst:   dst,
		kind:  KindPen,
		pen:   Pen{Size: MinPenSize, Color: color.NRGBA{A: 0xff}},
		brush: Brush{Image: SolidBrush(color.NRGBA{G: 0xff, A: 0xff})},
	}
	for _, opts := range options {
		if opts.DebugFn != nil {
			r.debug = opts.DebugFn
		}
	}
	return r
}

func (r *Rasterizer) Buffer() *screen.Buffer { return r.dst }
func (r *Rasterizer) Kind() Kind             { return r.kind }
func (r *Rasterizer) Pen() Pen               { return r.pen }
func (r *Rasterizer) Brush() Brush           { return r.brush }
func (r *Rasterizer) Active() bool           { return r.active }
func (r *Rasterizer) LastPoint() image.Point { return r.last }

// Tool returns the tool the next stamp will use.
func (r *Rasterizer) Tool() Tool {
	if r.kind == KindBrush {
		return r.brush
	}
	return r.pen
}

func (r *Rasterizer) SetTool(k Kind) {
	r.kind = k
}

// SetPenSize sets the pen block edge, clamped to [MinPenSize, MaxPenSize].
func (r *Rasterizer) SetPenSize(n int) {
	r.pen.Size = clampPenSize(n)
}

func (r *Rasterizer) SetPenColor(c color.Color) {
	r.pen.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// SetBrush replaces the brush stamp with img fitted into BrushSize.
func (r *Rasterizer) SetBrush(img image.Image) {
	r.brush = Brush{Image: ScaleBrush(img)}
}

// SetBrushColor replaces the brush stamp with a solid square of c.
func (r *Rasterizer) SetBrushColor(c color.Color) {
	r.brush = Brush{Image: SolidBrush(c)}
}

// Press starts a stroke at p. It is ignored while a stroke is in progress.
func (r *Rasterizer) Press(p image.Point) {
	if r.active {
		return
	}
	r.last = p
	r.active = true
	r.started = false
	r.dirty = image.Rectangle{}
}

// Move continues the stroke to p while held is true. A move that arrives
// with the button already released finishes the stroke as Release would.
// Moves outside a stroke paint nothing. The returned rectangle covers the
// pixels this call may have changed.
func (r *Rasterizer) Move(p image.Point, held bool) image.Rectangle {
	if !r.active {
		return image.Rectangle{}
	}
	if !held {
		return r.Release(p)
	}
	return r.strokeTo(p)
}

// Release paints the final segment to p and ends the stroke.
func (r *Rasterizer) Release(p image.Point) image.Rectangle {
	if !r.active {
		return image.Rectangle{}
	}
	dirty := r.strokeTo(p)
	r.active = false
	return dirty
}

// Dirty returns the area touched since the current or last stroke began.
func (r *Rasterizer) Dirty() image.Rectangle {
	return r.dirty
}

func (r *Rasterizer) strokeTo(cur image.Point) image.Rectangle {
	prev := r.last
	tool := r.Tool()

	tool.Stamp(r.dst, cur)
	if !r.started && prev != cur {
		tool.Stamp(r.dst, prev)
	}
	r.started = true

	if !adjacent(prev.X, prev.Y, cur.X, cur.Y) {
		Line(prev.X, prev.Y, cur.X, cur.Y, func(x, y int) {
			p := image.Pt(x, y)
			if p == prev || p == cur {
				return
			}
			tool.Stamp(r.dst, p)
		})
	}

	dirty := segmentBounds(prev, cur, tool.Footprint()).Intersect(r.dst.Bounds())
	r.dirty = r.dirty.Union(dirty)

	r.dst.SetModified(true)
	r.last = cur

	if r.debug != nil {
		r.debug(r)
	}
	return dirty
}

// segmentBounds is the box covering a stamp of the given footprint at both
// ends of a segment and everything in between.
func segmentBounds(a, b image.Point, footprint image.Point) image.Rectangle {
	box := image.Rectangle{Min: a, Max: b}.Canon()
	box.Max = box.Max.Add(footprint)
	if footprint.X == 0 || footprint.Y == 0 {
		box.Max = box.Max.Add(image.Pt(1, 1))
	}
	return box
}
