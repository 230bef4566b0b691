package dominant

import "fmt"

// RGBA is a plain 8-bit color, the result type of single and multi color
// queries.
//
// A fully transparent black (the zero value) is the sentinel returned by
// Find for images that produce no clusters.
type RGBA struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// Hex renders the color as "#RRGGBB" with uppercase digits. Alpha is not
// included.
func (c RGBA) Hex() string {
	return Hex(c.R, c.G, c.B)
}

// Color is a weighted palette entry returned by FindWeight.
//
// Weight is the cluster's share of the analyzed image: pixel count divided
// by the total pixel count after downscaling. Because transparent pixels
// are counted in the denominator but never assigned to a cluster, weights
// across a palette sum to at most 1, and to exactly 1 for fully opaque
// images.
type Color struct {
	R      uint8   `json:"r"`      // Red component (0-255)
	G      uint8   `json:"g"`      // Green component (0-255)
	B      uint8   `json:"b"`      // Blue component (0-255)
	A      uint8   `json:"a"`      // Alpha, always 255 for palette entries
	Weight float64 `json:"weight"` // Share of analyzed pixels (0-1)
}

// Hex renders the color as "#RRGGBB" with uppercase digits.
func (c Color) Hex() string {
	return Hex(c.R, c.G, c.B)
}

// Hex formats an RGB triple as a 7-character "#RRGGBB" string with
// uppercase hexadecimal digits.
func Hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// AppendHex appends the "#RRGGBB" rendering of an RGB triple to dst and
// returns the extended slice, avoiding an allocation when the caller
// already owns a buffer.
func AppendHex(dst []byte, r, g, b uint8) []byte {
	const digits = "0123456789ABCDEF"
	return append(dst,
		'#',
		digits[r>>4], digits[r&0x0F],
		digits[g>>4], digits[g&0x0F],
		digits[b>>4], digits[b&0x0F],
	)
}
