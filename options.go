package paint

import (
	"image"
	"image/color"

	"github.com/32bitkid/paint/codec"
	"github.com/32bitkid/paint/screen"
	"github.com/32bitkid/paint/stroke"
)

// DefaultSize is the canvas size of a new Area.
var DefaultSize = image.Pt(1280, 900)

// Options configure a new Area. Zero fields keep their defaults; when
// several Options are given, later non-zero fields win.
type Options struct {
	// Size of the viewport and the initial canvas.
	Size image.Point
	// Background fills new and cleared canvases. Defaults to white.
	Background color.Color
	// DefaultFormat is used by SaveDefault. Defaults to codec.Default.
	DefaultFormat codec.Format
	// Codec tunes lossy encoders.
	Codec codec.Options

	// OnCursor is called with the pointer position on every move.
	OnCursor func(image.Point)
	// DebugFn is called after every painted segment.
	DebugFn stroke.DebugCallback
}

func merge(options []Options) Options {
	opts := Options{
		Size:          DefaultSize,
		Background:    screen.White,
		DefaultFormat: codec.Default,
	}
	for _, o := range options {
		if o.Size != (image.Point{}) {
			opts.Size = o.Size
		}
		if o.Background != nil {
			opts.Background = o.Background
		}
		if o.DefaultFormat != "" {
			opts.DefaultFormat = o.DefaultFormat
		}
		if o.Codec != (codec.Options{}) {
			opts.Codec = o.Codec
		}
		if o.OnCursor != nil {
			opts.OnCursor = o.OnCursor
		}
		if o.DebugFn != nil {
			opts.DebugFn = o.DebugFn
		}
	}
	return opts
}
