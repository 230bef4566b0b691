package dominant

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// maxDimension is the longest side allowed before clustering. Larger images
// are resampled down to keep the pixel count bounded.
const maxDimension = 256

// targetSize reports the dimensions an image of the given size should be
// resampled to, and whether resampling is needed at all.
//
// Images with both sides within maxDimension are left alone, as are images
// with a zero dimension. Otherwise the longer side is clamped to
// maxDimension and the other side is rounded to preserve the aspect ratio.
func targetSize(w, h int) (int, int, bool) {
	if w <= 0 || h <= 0 {
		return w, h, false
	}
	if w <= maxDimension && h <= maxDimension {
		return w, h, false
	}

	aspect := float64(w) / float64(h)
	if aspect > 1 {
		return maxDimension, int(math.Round(maxDimension / aspect)), true
	}
	return int(math.Round(maxDimension * aspect)), maxDimension, true
}

// Downscale returns img reduced so that its longer side is at most 256
// pixels, preserving aspect ratio. Images already within the limit are
// returned unchanged; the original is never modified.
//
// Resampling uses a Lanczos filter and allocates a new buffer owned by the
// caller.
func Downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h, resize := targetSize(bounds.Dx(), bounds.Dy())
	if !resize {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
