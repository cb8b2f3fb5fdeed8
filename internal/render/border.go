// Package render holds the deterministic image operations behind a frame:
// border-color sampling, aspect-preserving fit, and caption compositing.
package render

import (
	"image"
	"image/color"
)

// AverageBorderColor approximates the average color of the image's outer
// frame, sampling the top and bottom borderPx rows at full width and the
// left and right borderPx columns at full height. Corner pixels fall in
// both a row band and a column band and are counted twice; the slight bias
// toward corner color is accepted. Channel means truncate toward zero.
//
// borderPx is clamped to half the smaller dimension; when the clamp
// reaches zero the whole image is averaged.
func AverageBorderColor(img image.Image, borderPx int) color.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if m := min(w, h) / 2; borderPx > m {
		borderPx = m
	}

	var rSum, gSum, bSum, n uint64
	add := func(x, y int) {
		r, g, bl, _ := img.At(x, y).RGBA()
		rSum += uint64(r >> 8)
		gSum += uint64(g >> 8)
		bSum += uint64(bl >> 8)
		n++
	}

	if borderPx <= 0 {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				add(x, y)
			}
		}
	} else {
		for dy := 0; dy < borderPx; dy++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				add(x, b.Min.Y+dy)
				add(x, b.Max.Y-1-dy)
			}
		}
		for dx := 0; dx < borderPx; dx++ {
			for y := b.Min.Y; y < b.Max.Y; y++ {
				add(b.Min.X+dx, y)
				add(b.Max.X-1-dx, y)
			}
		}
	}

	if n == 0 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{
		R: uint8(rSum / n), //nolint:gosec // G115: mean of 8-bit samples
		G: uint8(gSum / n), //nolint:gosec // G115: mean of 8-bit samples
		B: uint8(bSum / n), //nolint:gosec // G115: mean of 8-bit samples
		A: 255,
	}
}
