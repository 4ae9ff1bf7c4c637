package badge

import (
	"image"
	"image/color"
	"testing"
)

var (
	black  = color.RGBA{0, 0, 0, 255}
	red    = color.RGBA{255, 0, 0, 255}
	yellow = color.RGBA{255, 255, 0, 255}
	cyan   = color.RGBA{0, 255, 255, 255}
)

func canvas(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, black)
		}
	}
	return img
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name                             string
		paint                            func(img *image.RGBA)
		wantShiny, wantAlpha, wantHidden bool
	}{
		{
			name:  "blank screen",
			paint: func(img *image.RGBA) {},
		},
		{
			name:      "red pixel in icon region",
			paint:     func(img *image.RGBA) { img.Set(1, 1, red) },
			wantAlpha: true,
		},
		{
			name:      "yellow pixel in icon region",
			paint:     func(img *image.RGBA) { img.Set(5, 5, yellow) },
			wantShiny: true,
		},
		{
			name:       "cyan pixel in ability region",
			paint:      func(img *image.RGBA) { img.Set(50, 68, cyan) },
			wantHidden: true,
		},
		{
			name: "colors outside their regions are ignored",
			paint: func(img *image.RGBA) {
				img.Set(50, 68, red)
				img.Set(90, 10, yellow)
				img.Set(3, 3, cyan)
			},
		},
		{
			name: "all three at once",
			paint: func(img *image.RGBA) {
				img.Set(0, 0, red)
				img.Set(11, 11, yellow)
				img.Set(64, 72, cyan)
			},
			wantShiny: true, wantAlpha: true, wantHidden: true,
		},
		{
			name: "pixels just past the region edges",
			paint: func(img *image.RGBA) {
				img.Set(12, 0, red)
				img.Set(0, 12, yellow)
				img.Set(65, 68, cyan)
				img.Set(50, 73, cyan)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := canvas(100, 100)
			tt.paint(img)

			flags, e := Classify(img)
			if e != nil {
				t.Fatalf("Classify returned error: %v", e)
			}
			if flags.IsShiny != tt.wantShiny || flags.IsAlpha != tt.wantAlpha || flags.IsHiddenAbility != tt.wantHidden {
				t.Fatalf("flags = %+v, want shiny=%v alpha=%v hidden=%v",
					flags, tt.wantShiny, tt.wantAlpha, tt.wantHidden)
			}
		})
	}
}

func TestClassifyTinyImageHasEmptyRegions(t *testing.T) {
	img := canvas(1, 1)
	img.Set(0, 0, red)

	flags, e := Classify(img)
	if e != nil {
		t.Fatalf("Classify returned error: %v", e)
	}
	if flags.IsShiny || flags.IsAlpha || flags.IsHiddenAbility {
		t.Fatalf("1x1 image should have no badges, got %+v", flags)
	}
}

func TestRegionRect(t *testing.T) {
	got := HiddenAbilityRegion.Rect(200, 100)
	want := image.Rect(90, 65, 130, 73)
	if got != want {
		t.Fatalf("Rect = %v, want %v", got, want)
	}
	if r := IconRegion.Rect(8, 8); !r.Empty() {
		t.Fatalf("icon region of 8x8 image should be empty, got %v", r)
	}
}
