package render

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	captionPadding  = 15
	captionFontSize = 20
)

// captionFacePaths are probed in order for a usable truetype face.
var captionFacePaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// CaptionText derives the caption from the picture's title and copyright
// attribution. Both absent yields the empty string (no visible caption).
func CaptionText(title, copyright string) string {
	switch {
	case title != "" && copyright != "":
		return fmt.Sprintf("%s (© %s)", title, copyright)
	case title != "":
		return title
	case copyright != "":
		return fmt.Sprintf("© %s", copyright)
	}
	return ""
}

// LoadCaptionFace probes the known truetype locations and returns the first
// face that parses, falling back to the builtin bitmap face. It never fails.
func LoadCaptionFace() font.Face {
	for _, path := range captionFacePaths {
		data, err := os.ReadFile(path) //nolint:gosec // G304: fixed probe list
		if err != nil {
			continue
		}
		ft, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    captionFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		return face
	}
	return basicfont.Face7x13
}

// DrawCaption draws text in solid white at the bottom-right of dst with a
// fixed padding from both edges. Empty text measures an empty box and
// draws nothing; the call is still made and must not fail.
func DrawCaption(dst draw.Image, text string, face font.Face) {
	bounds, _ := font.BoundString(face, text)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	th := (bounds.Max.Y - bounds.Min.Y).Ceil()

	db := dst.Bounds()
	x := db.Max.X - tw - captionPadding
	y := db.Max.Y - th - captionPadding

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		// Shift the dot so the glyph bounding box lands at (x, y).
		Dot: fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(y) - bounds.Min.Y,
		},
	}
	d.DrawString(text)
}
