package screen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	clr "github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads a hex color in one of the forms #rgb, #rrggbb or
// #rrggbbaa. The leading '#' is optional. Colors without an alpha component
// are opaque.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	switch len(hex) {
	case 4, 7, 9:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	alpha := uint8(0xff)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q", s)
		}
		alpha, hex = uint8(a), hex[:7]
	}

	c, err := clr.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %v", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// ColorString formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func ColorString(c color.Color) string {
	n := toNRGBA(c)
	opaque := n
	opaque.A = 0xff
	col, _ := clr.MakeColor(opaque)
	if n.A == 0xff {
		return col.Hex()
	}
	return fmt.Sprintf("%s%02x", col.Hex(), n.A)
}
