package dominant

import (
	"image"
	"image/color"
)

// Pixel is a single RGBA sample with 8-bit components.
//
// Pixels with A == 0 are treated as invisible by the clustering pipeline:
// they are never sampled during seeding and never assigned to a cluster.
type Pixel struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
	A uint8 // Alpha/opacity component (0-255, 0 = fully transparent)
}

// Pixels flattens an image into a row-major sequence of 8-bit RGBA samples.
//
// Colors are converted to non-premultiplied (straight alpha) form, so a
// half-transparent red still reads as red rather than as its premultiplied
// darker value. The returned slice always has length width*height; fully
// transparent pixels are included and filtered later by the clustering
// stages.
//
// A zero-sized image yields an empty slice.
func Pixels(img image.Image) []Pixel {
	bounds := img.Bounds()
	px := make([]Pixel, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			px = append(px, Pixel{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}

	return px
}
