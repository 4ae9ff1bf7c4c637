package ocr

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
DecodeBytes decodes an encoded screenshot. EXIF orientation is applied so
phone captures come out upright.
*/
func DecodeBytes(data []byte) (img image.Image, e *xerr.Error) {
	img, decodeErr := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if decodeErr != nil {
		e = xerr.NewError(decodeErr, "decode screenshot bytes", len(data))
		return nil, e
	}

	bounds := img.Bounds()
	tl.Log(tl.Info1, palette.Blue, "Decoded screenshot (%dx%d, %d bytes)", bounds.Dx(), bounds.Dy(), len(data))
	return img, nil
}

/*
PrepareForBadges upscales the screenshot by cfg.ResizeFactor and raises its
contrast by cfg.ContrastPercent before the icon regions are sampled.
*/
func PrepareForBadges(img image.Image, cfg Config) *image.NRGBA {
	bounds := img.Bounds()
	width := int(float64(bounds.Dx()) * cfg.ResizeFactor)
	height := int(float64(bounds.Dy()) * cfg.ResizeFactor)
	if width < 1 || height < 1 {
		return imaging.Clone(img)
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)
	return imaging.AdjustContrast(resized, cfg.ContrastPercent)
}

/*
PrepareForOCR keeps the left cfg.CropWidthRatio of the screenshot (full
height) and converts it to grayscale.
*/
func PrepareForOCR(img image.Image, cfg Config) *image.NRGBA {
	bounds := img.Bounds()
	keepWidth := int(float64(bounds.Dx()) * cfg.CropWidthRatio)
	cropRect := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+keepWidth, bounds.Max.Y)

	cropped := imaging.Crop(img, cropRect)
	return imaging.Grayscale(cropped)
}
