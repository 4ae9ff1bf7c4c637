package ocr

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// TesseractRecognizer runs gosseract on the left part of a screenshot.
// A new client is created per call so one recognizer can serve several workers.
type TesseractRecognizer struct {
	Cfg Config
}

func NewTesseractRecognizer(cfg Config) *TesseractRecognizer {
	return &TesseractRecognizer{Cfg: cfg}
}

/*
Recognize crops and grayscales img (see PrepareForOCR), encodes it as PNG in
memory and returns the raw OCR text. Errors cover a missing Tesseract
install or language data as well as encoding failures.
*/
func (r *TesseractRecognizer) Recognize(img image.Image) (ocrText string, e *xerr.Error) {
	prepared := PrepareForOCR(img, r.Cfg)

	var buf bytes.Buffer
	encodeErr := imaging.Encode(&buf, prepared, imaging.PNG)
	if encodeErr != nil {
		e = xerr.NewError(encodeErr, "encode OCR input as PNG", prepared.Bounds().String())
		return "", e
	}

	client := gosseract.NewClient()
	defer func() {
		_ = client.Close()
	}()

	err := client.SetLanguage(r.Cfg.Language)
	if err != nil {
		e = xerr.NewError(err, "unable to client.SetLanguage", r.Cfg.Language)
		return "", e
	}

	err = client.SetPageSegMode(gosseract.PSM_AUTO)
	if err != nil {
		e = xerr.NewError(err, "unable to client.SetPageSegMode(PSM_AUTO)", r.Cfg.Language)
		return "", e
	}

	err = client.SetImageFromBytes(buf.Bytes())
	if err != nil {
		e = xerr.NewError(err, "unable to client.SetImageFromBytes", buf.Len())
		return "", e
	}

	ocrText, err = client.Text()
	if err != nil {
		e = xerr.NewError(err, "unable to run OCR on screenshot", prepared.Bounds().String())
		return "", e
	}

	tl.Log(tl.Info1, palette.Green, "OCR completed (text length: %d)", len(ocrText))
	tl.Log(tl.Verbose, palette.CyanDim, "Raw OCR text: '%s'", ocrText)
	return ocrText, nil
}
