package codec

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/32bitkid/bitreader"
)

// SniffLen is the number of leading bytes Sniff looks at.
const SniffLen = 12

// Magic numbers, read big-endian from the start of a file.
const (
	magicPNG     uint32 = 0x89504e47 // \x89 P N G
	magicPNGTail uint32 = 0x0d0a1a0a // \r \n \x1a \n
	magicJPEG    uint32 = 0xffd8ff   // SOI followed by a marker
	magicGIF     uint32 = 0x47494638 // G I F 8
	magicBMP     uint32 = 0x424d     // B M
	magicTIFFLE  uint32 = 0x49492a00 // I I * \0
	magicTIFFBE  uint32 = 0x4d4d002a // M M \0 *
	magicRIFF    uint32 = 0x52494646 // R I F F
	magicWEBP    uint32 = 0x57454250 // W E B P
	magicPDF     uint32 = 0x25504446 // % P D F
)

// Sniff identifies the format of an image from its first bytes. Only the
// first SniffLen bytes are examined; shorter headers are zero padded.
func Sniff(header []byte) (Format, error) {
	padded := make([]byte, SniffLen)
	copy(padded, header)
	bits := bitreader.NewReader(bufio.NewReader(bytes.NewReader(padded)))

	word, err := bits.Read32(32)
	if err != nil {
		return "", err
	}

	switch {
	case word == magicPNG:
		tail, err := bits.Read32(32)
		if err != nil {
			return "", err
		}
		if tail == magicPNGTail {
			return PNG, nil
		}
	case word>>8 == magicJPEG:
		return JPEG, nil
	case word == magicGIF:
		return GIF, nil
	case word>>16 == magicBMP:
		return BMP, nil
	case word == magicTIFFLE, word == magicTIFFBE:
		return TIFF, nil
	case word == magicRIFF:
		// four bytes of chunk length, then the form type
		if err := bits.Skip(32); err != nil {
			return "", err
		}
		form, err := bits.Read32(32)
		if err != nil {
			return "", err
		}
		if form == magicWEBP {
			return WEBP, nil
		}
	case word == magicPDF:
		return PDF, nil
	}

	return "", fmt.Errorf("%w: magic %08x", ErrUnknownFormat, word)
}
