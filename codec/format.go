// Package codec loads and saves paint surfaces as image files.
//
// Formats are looked up in two tables, one of decoders and one of encoders,
// so a format may be readable, writable, or both. Files are recognized by
// their leading magic bytes rather than by their extension.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	WEBP Format = "webp"
	PDF  Format = "pdf"
)

// Default is the format used when a caller does not name one.
const Default = PNG

var (
	// ErrDecode wraps every failure to read an image.
	ErrDecode = errors.New("codec: decode failed")
	// ErrEncode wraps every failure to write an image.
	ErrEncode = errors.New("codec: encode failed")

	ErrUnknownFormat = errors.New("codec: unknown format")
	ErrUnsupported   = errors.New("codec: unsupported format")
)

// Options tune the encoders.
type Options struct {
	// JPEGQuality ranges from 1 to 100; zero selects jpeg.DefaultQuality.
	JPEGQuality int
}

type Decoder = func(r io.Reader) (image.Image, error)
type Encoder = func(w io.Writer, img image.Image, opts Options) error

type DecoderLUT map[Format]Decoder
type EncoderLUT map[Format]Encoder

var Codecs = struct {
	Decoders DecoderLUT
	Encoders EncoderLUT
}{
	Decoders: DecoderLUT{
		PNG:  png.Decode,
		JPEG: jpeg.Decode,
		GIF:  gif.Decode,
		BMP:  bmp.Decode,
		TIFF: tiff.Decode,
		WEBP: webp.Decode,
	},
	Encoders: EncoderLUT{
		PNG:  encodePNG,
		JPEG: encodeJPEG,
		GIF:  encodeGIF,
		BMP:  encodeBMP,
		TIFF: encodeTIFF,
		PDF:  encodePDF,
	},
}

// ParseFormat normalizes a format name or file extension. Matching is case
// insensitive, a leading dot is ignored, and "jpg" and "tif" are accepted
// as aliases.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "."))
	switch f {
	case "jpg":
		return JPEG, nil
	case "tif":
		return TIFF, nil
	case PNG, JPEG, GIF, BMP, TIFF, WEBP, PDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

var formatOrder = []Format{PNG, JPEG, GIF, BMP, TIFF, WEBP, PDF}

// Formats lists the formats the table can decode, in a stable order.
func (lut DecoderLUT) Formats() []Format {
	var out []Format
	for _, f := range formatOrder {
		if _, ok := lut[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Formats lists the formats the table can encode, in a stable order.
func (lut EncoderLUT) Formats() []Format {
	var out []Format
	for _, f := range formatOrder {
		if _, ok := lut[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

func encodePNG(w io.Writer, img image.Image, _ Options) error {
	return png.Encode(w, img)
}

func encodeJPEG(w io.Writer, img image.Image, opts Options) error {
	quality := opts.JPEGQuality
	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

func encodeGIF(w io.Writer, img image.Image, _ Options) error {
	return gif.Encode(w, img, nil)
}

// encodeBMP keeps color only; translucent pixels read back as opaque.
func encodeBMP(w io.Writer, img image.Image, _ Options) error {
	return bmp.Encode(w, img)
}

func encodeTIFF(w io.Writer, img image.Image, _ Options) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}
