package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ResizeToFit scales img down until it fits inside w x h, preserving the
// aspect ratio. An image already inside the box keeps its original size;
// nothing is ever upscaled.
func ResizeToFit(img image.Image, w, h int) image.Image {
	return imaging.Fit(img, w, h, imaging.Lanczos)
}

// FitWithBackground centers the fitted image on a w x h canvas filled with
// bg. Offsets use floor division, so odd remainders bias the image one
// pixel toward the top-left.
func FitWithBackground(img image.Image, w, h int, bg color.NRGBA) *image.NRGBA {
	fitted := ResizeToFit(img, w, h)
	fb := fitted.Bounds()

	canvas := imaging.New(w, h, bg)
	x := (w - fb.Dx()) / 2
	y := (h - fb.Dy()) / 2
	return imaging.Paste(canvas, fitted, image.Pt(x, y))
}
