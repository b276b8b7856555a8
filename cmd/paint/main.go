// Command paint replays a stroke script against a blank or loaded canvas
// and writes the result to an image file.
//
//	paint -o out.png [-format png] [-size 640x480] [-in base.png] script.txt
//
// Script lines hold one command each:
//
//	new WxH            start a blank canvas
//	open PATH          load a canvas
//	tool pen|brush     pick the tool
//	size N             pen size, 1 to 50
//	color #rrggbb      pen color
//	brush PATH|#hex    brush stamp from an image or a solid color
//	down X Y           press the primary button
//	move X Y           drag
//	up X Y             release
//	line X1 Y1 X2 Y2   press and release
//	clear              fill with the background
//	save PATH [FORMAT] save an intermediate result
//
// Lines starting with # are comments.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/32bitkid/paint"
	"github.com/32bitkid/paint/codec"
	"github.com/32bitkid/paint/stroke"
)

func main() {
	var (
		out     = flag.String("o", "", "output `file`")
		format  = flag.String("format", "", "output format; defaults to png")
		size    = flag.String("size", "", "canvas `WxH`; defaults to 1280x900")
		in      = flag.String("in", "", "start from this image `file`")
		quality = flag.Int("quality", 0, "JPEG quality, 1-100")
		verbose = flag.Bool("v", false, "log every painted segment")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: paint -o out.png [flags] script.txt\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("paint: ")

	if *out == "" || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts := paint.Options{Codec: codec.Options{JPEGQuality: *quality}}
	if *size != "" {
		s, err := parseSize(*size)
		if err != nil {
			log.Fatal(err)
		}
		opts.Size = s
	}
	if *verbose {
		opts.DebugFn = func(r *stroke.Rasterizer) {
			p := r.LastPoint()
			log.Printf("%v to %d,%d, dirty %v", r.Kind(), p.X, p.Y, r.Dirty())
		}
	}
	area := paint.New(opts)

	if *in != "" {
		if err := area.Open(*in); err != nil {
			log.Fatal(err)
		}
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	cmds, err := parseScript(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	if err := run(area, cmds); err != nil {
		log.Fatal(err)
	}

	if err := area.Save(*out, *format); err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("wrote %s (%dx%d)", *out, area.Size().X, area.Size().Y)
	}
}
