// Package paint implements a raster paint surface.
//
// An Area owns a bitmap and a stroke rasterizer. A user interface feeds it
// pointer events, and the Area paints pen or brush strokes into the bitmap,
// reporting the rectangle that needs to be redrawn after each event. Areas
// are loaded from and saved to image files through the codec package.
//
// An Area is meant to be driven from a single event loop; none of its
// methods are safe for concurrent use.
package paint

import (
	"fmt"
	"image"
	"image/color"

	"github.com/32bitkid/paint/codec"
	"github.com/32bitkid/paint/screen"
	"github.com/32bitkid/paint/stroke"
)

// Area is a paint surface.
type Area struct {
	buffer   *screen.Buffer
	raster   *stroke.Rasterizer
	viewport image.Point
	cursor   image.Point

	format   codec.Format
	encoding codec.Options
	onCursor func(image.Point)
}

// New returns an Area with a blank canvas the size of the viewport.
func New(options ...Options) *Area {
	opts := merge(options)

	a := &Area{
		buffer:   screen.NewBuffer(opts.Size, opts.Background),
		viewport: opts.Size,
		format:   opts.DefaultFormat,
		encoding: opts.Codec,
		onCursor: opts.OnCursor,
	}
	a.raster = stroke.NewRasterizer(a.buffer, stroke.Options{DebugFn: opts.DebugFn})
	return a
}

// Image returns the current bitmap. It stays valid until the next call that
// replaces or grows the canvas.
func (a *Area) Image() *image.NRGBA { return a.buffer.Image() }

// Size is the size of the bitmap, which is at least the viewport size.
func (a *Area) Size() image.Point { return a.buffer.Size() }

func (a *Area) Viewport() image.Point { return a.viewport }

// Cursor is the position of the last pointer event.
func (a *Area) Cursor() image.Point { return a.cursor }

// IsModified reports whether the canvas has changes that were not saved.
func (a *Area) IsModified() bool { return a.buffer.Modified() }

// Rasterizer exposes the stroke state for inspection.
func (a *Area) Rasterizer() *stroke.Rasterizer { return a.raster }

// NewImage replaces the canvas with a blank one of the given size, grown to
// cover the viewport. The result counts as unmodified.
func (a *Area) NewImage(size image.Point) {
	a.buffer.Replace(screen.NewBuffer(size, a.buffer.Background))
	a.buffer.Pad(a.viewport)
}

// Open loads the image file at path as the new canvas. If the file cannot
// be decoded the current canvas and its modified state are left as they
// are and the error wraps codec.ErrDecode.
func (a *Area) Open(path string) error {
	img, _, err := codec.Load(path)
	if err != nil {
		return err
	}
	a.buffer.Replace(img)
	a.buffer.Pad(a.viewport)
	return nil
}

// Save writes the visible canvas to path in the named format. Formats are
// parsed with codec.ParseFormat; an empty name selects the default format.
// On success the canvas is marked unmodified. Errors wrap codec.ErrEncode.
func (a *Area) Save(path string, format string) error {
	f := a.format
	if format != "" {
		var err error
		if f, err = codec.ParseFormat(format); err != nil {
			return fmt.Errorf("%w: %w", codec.ErrEncode, err)
		}
	}

	if err := codec.Save(path, a.buffer.Padded(a.viewport), f, a.encoding); err != nil {
		return err
	}
	a.buffer.SetModified(false)
	return nil
}

// SaveDefault saves the canvas in the default format. It is what an "ask
// to save" prompt calls before discarding changes.
func (a *Area) SaveDefault(path string) error {
	return a.Save(path, "")
}

// Clear refills the canvas with the background color.
func (a *Area) Clear() {
	a.buffer.Clear()
}

// Resize grows the canvas to at least size, keeping its content.
func (a *Area) Resize(size image.Point) {
	a.buffer.Pad(size)
}

// SetViewport records the size of the visible region. The canvas grows to
// cover it; it never shrinks.
func (a *Area) SetViewport(size image.Point) {
	a.viewport = size
	a.buffer.Pad(size)
}

func (a *Area) SetTool(k stroke.Kind)       { a.raster.SetTool(k) }
func (a *Area) SetPenSize(n int)            { a.raster.SetPenSize(n) }
func (a *Area) SetPenColor(c color.Color)   { a.raster.SetPenColor(c) }
func (a *Area) SetBrushColor(c color.Color) { a.raster.SetBrushColor(c) }

func (a *Area) PenSize() int             { return a.raster.Pen().Size }
func (a *Area) PenColor() color.NRGBA    { return a.raster.Pen().Color }
func (a *Area) BrushImage() *image.NRGBA { return a.raster.Brush().Image }

// SetBrushImage loads the image at path as the brush stamp, fitted into
// stroke.BrushSize. On failure the current brush is kept.
func (a *Area) SetBrushImage(path string) error {
	img, _, err := codec.Load(path)
	if err != nil {
		return err
	}
	a.raster.SetBrush(img)
	return nil
}

// Handle applies a pointer event and returns the rectangle of the canvas
// that changed. Only the primary button paints. Every move is reported to
// the cursor callback, whether or not a stroke is in progress.
func (a *Area) Handle(ev Event) image.Rectangle {
	a.cursor = ev.Position

	switch ev.Kind {
	case Press:
		if ev.Buttons.Contain(ButtonPrimary) {
			a.raster.Press(ev.Position)
		}
	case Move:
		if a.onCursor != nil {
			a.onCursor(ev.Position)
		}
		return a.raster.Move(ev.Position, ev.Buttons.Contain(ButtonPrimary))
	case Release:
		if ev.Buttons.Contain(ButtonPrimary) {
			return a.raster.Release(ev.Position)
		}
	}
	return image.Rectangle{}
}
