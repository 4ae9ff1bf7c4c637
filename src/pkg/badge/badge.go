/*
Package badge detects the shiny, alpha and hidden-ability icons on a stat
screen by HSV color thresholding of fixed regions.

Hue uses the OpenCV 8-bit scale (0-179), saturation and value 0-255. The
ranges below are the calibrated contract and are reproduced as-is.
*/
package badge

import (
	"image"

	"gocv.io/x/gocv"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"stat-scanner/src/pkg/record"
)

// HSVRange is an inclusive color range.
type HSVRange struct {
	MinH, MinS, MinV int
	MaxH, MaxS, MaxV int
}

func (r HSVRange) lower() gocv.Scalar {
	return gocv.NewScalar(float64(r.MinH), float64(r.MinS), float64(r.MinV), 0)
}

func (r HSVRange) upper() gocv.Scalar {
	return gocv.NewScalar(float64(r.MaxH), float64(r.MaxS), float64(r.MaxV), 0)
}

// Region is a rectangle expressed as fractions of the image size.
type Region struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Rect resolves the region against a width x height image, truncating like int().
func (r Region) Rect(width, height int) image.Rectangle {
	return image.Rect(
		int(float64(width)*r.MinX), int(float64(height)*r.MinY),
		int(float64(width)*r.MaxX), int(float64(height)*r.MaxY),
	)
}

var (
	// icon cluster in the top-left corner
	IconRegion = Region{MinX: 0, MinY: 0, MaxX: 0.12, MaxY: 0.12}
	// hidden-ability marker next to the ability line
	HiddenAbilityRegion = Region{MinX: 0.45, MinY: 0.65, MaxX: 0.65, MaxY: 0.73}

	ShinyRange = HSVRange{MinH: 20, MinS: 100, MinV: 50, MaxH: 50, MaxS: 255, MaxV: 255}
	// the alpha marker is red, which wraps around hue 0
	AlphaRanges = []HSVRange{
		{MinH: 0, MinS: 50, MinV: 50, MaxH: 10, MaxS: 255, MaxV: 255},
		{MinH: 170, MinS: 50, MinV: 50, MaxH: 180, MaxS: 255, MaxV: 255},
	}
	HiddenAbilityRange = HSVRange{MinH: 90, MinS: 200, MinV: 200, MaxH: 100, MaxS: 255, MaxV: 255}
)

/*
Classify converts img to a BGR Mat and runs ClassifyMat on it. The only error
is a failed conversion.
*/
func Classify(img image.Image) (flags record.BadgeFlags, e *xerr.Error) {
	mat, convErr := gocv.ImageToMatRGB(img)
	if convErr != nil {
		e = xerr.NewError(convErr, "convert image to BGR mat for badge detection", img.Bounds().String())
		return flags, e
	}
	defer mat.Close()

	flags = ClassifyMat(mat)
	tl.Log(
		tl.Info1, palette.Cyan, "Badges: alpha '%v', shiny '%v', hidden ability '%v'",
		flags.IsAlpha, flags.IsShiny, flags.IsHiddenAbility,
	)
	return flags, nil
}

// ClassifyMat runs the three independent "any matching pixel" tests on a BGR Mat.
func ClassifyMat(bgr gocv.Mat) record.BadgeFlags {
	width, height := bgr.Cols(), bgr.Rows()

	var flags record.BadgeFlags
	withHSVRegion(bgr, IconRegion.Rect(width, height), func(hsv gocv.Mat) {
		flags.IsShiny = anyInRange(hsv, ShinyRange)
		flags.IsAlpha = anyInRange(hsv, AlphaRanges...)
	})
	withHSVRegion(bgr, HiddenAbilityRegion.Rect(width, height), func(hsv gocv.Mat) {
		flags.IsHiddenAbility = anyInRange(hsv, HiddenAbilityRange)
	})
	return flags
}

// withHSVRegion crops rect out of bgr, converts it to HSV and hands it to fn.
// fn is not called for an empty rectangle.
func withHSVRegion(bgr gocv.Mat, rect image.Rectangle, fn func(hsv gocv.Mat)) {
	rect = rect.Intersect(image.Rect(0, 0, bgr.Cols(), bgr.Rows()))
	if rect.Empty() {
		return
	}

	roi := bgr.Region(rect)
	defer roi.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(roi, &hsv, gocv.ColorBGRToHSV)

	fn(hsv)
}

// anyInRange reports whether at least one pixel falls in any of the ranges.
func anyInRange(hsv gocv.Mat, ranges ...HSVRange) bool {
	for _, r := range ranges {
		mask := gocv.NewMat()
		gocv.InRangeWithScalar(hsv, r.lower(), r.upper(), &mask)
		hits := gocv.CountNonZero(mask)
		mask.Close()
		if hits > 0 {
			return true
		}
	}
	return false
}
