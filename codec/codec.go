package codec

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Decode reads an image from r, picking the decoder from the magic bytes at
// the start of the stream. All errors wrap ErrDecode.
func Decode(r io.Reader) (image.Image, Format, error) {
	src := bufio.NewReader(r)

	header, err := src.Peek(SniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	format, err := Sniff(header)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	decoder, ok := Codecs.Decoders[format]
	if !ok {
		return nil, format, fmt.Errorf("%w: %w: cannot read %s", ErrDecode, ErrUnsupported, format)
	}

	img, err := decoder(src)
	if err != nil {
		return nil, format, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}
	return img, format, nil
}

// Load decodes the image file at path.
func Load(path string) (image.Image, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, format, fmt.Errorf("%s: %w", path, err)
	}
	return img, format, nil
}

// Encode writes img to w in the given format. All errors wrap ErrEncode.
func Encode(w io.Writer, img image.Image, format Format, opts Options) error {
	encoder, ok := Codecs.Encoders[format]
	if !ok {
		return fmt.Errorf("%w: %w: cannot write %q", ErrEncode, ErrUnsupported, format)
	}
	if err := encoder(w, img, opts); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, format, err)
	}
	return nil
}

// Save encodes img into the file at path. The image is written to a
// temporary file next to path which then replaces it, so an existing file
// survives a failed save. A symlink at path is followed and its target
// replaced. An existing file keeps its permissions; new files get 0644.
// All errors wrap ErrEncode.
func Save(path string, img image.Image, format Format, opts Options) error {
	if _, ok := Codecs.Encoders[format]; !ok {
		return fmt.Errorf("%w: %w: cannot write %q", ErrEncode, ErrUnsupported, format)
	}

	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	dst := bufio.NewWriter(tmp)
	if err = Encode(dst, img, format, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = dst.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
