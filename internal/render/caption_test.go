package render

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestCaptionText(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		copyright string
		want      string
	}{
		{"both", "Galaxy", "NASA", "Galaxy (© NASA)"},
		{"title only", "Galaxy", "", "Galaxy"},
		{"copyright only", "", "NASA", "© NASA"},
		{"neither", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CaptionText(tt.title, tt.copyright); got != tt.want {
				t.Errorf("CaptionText(%q, %q) = %q, want %q", tt.title, tt.copyright, got, tt.want)
			}
		})
	}
}

func TestDrawCaptionEmpty(t *testing.T) {
	img := solidImage(50, 50, color.NRGBA{A: 255})
	DrawCaption(img, "", basicfont.Face7x13)

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if c := img.NRGBAAt(x, y); c.R != 0 || c.G != 0 || c.B != 0 {
				t.Fatalf("pixel (%d,%d) = %v changed by empty caption", x, y, c)
			}
		}
	}
}

func TestDrawCaptionBottomRight(t *testing.T) {
	img := solidImage(200, 100, color.NRGBA{A: 255})
	DrawCaption(img, "Galaxy", basicfont.Face7x13)

	foundWhite := false
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if img.NRGBAAt(x, y).R > 200 {
				if x < 100 || y < 50 {
					t.Fatalf("caption pixel (%d,%d) outside bottom-right quadrant", x, y)
				}
				foundWhite = true
			}
		}
	}
	if !foundWhite {
		t.Error("no caption pixels drawn")
	}
}

func TestLoadCaptionFace(t *testing.T) {
	// The probe must always land on a usable face, whatever the host has
	// installed.
	if face := LoadCaptionFace(); face == nil {
		t.Fatal("LoadCaptionFace returned nil")
	}
}
