package slider

import (
	"fmt"
	"image/color"
	"strings"
)

// OffsetPercent returns the horizontal offset of the slide strip, as a
// percentage of one slide width, when index is the current slide.
func OffsetPercent(index int) float32 {
	return float32(-index * 100)
}

// ParseHexColor converts "#rrggbb" or "#rgb" into an opaque colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	hex := strings.TrimPrefix(s, "#")
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("want 3 or 6 hex digits")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
