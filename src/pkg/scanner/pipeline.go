/*
Package scanner turns screenshots into records: decode, badge detection,
OCR, normalization and field extraction, then the merge into one record.
*/
package scanner

import (
	"crypto/sha256"
	"encoding/hex"
	"image"
	"os"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"stat-scanner/src/pkg/badge"
	"stat-scanner/src/pkg/extract"
	"stat-scanner/src/pkg/ocr"
	"stat-scanner/src/pkg/record"
	"stat-scanner/src/pkg/textnorm"
)

type Decoder interface {
	Decode(data []byte) (image.Image, *xerr.Error)
}

type Recognizer interface {
	Recognize(img image.Image) (string, *xerr.Error)
}

type Classifier interface {
	Classify(img image.Image) (record.BadgeFlags, *xerr.Error)
}

type bytesDecoder struct{}

func (bytesDecoder) Decode(data []byte) (image.Image, *xerr.Error) {
	return ocr.DecodeBytes(data)
}

// badgeClassifier enhances the screenshot before sampling the icon regions.
type badgeClassifier struct {
	cfg ocr.Config
}

func (c badgeClassifier) Classify(img image.Image) (record.BadgeFlags, *xerr.Error) {
	return badge.Classify(ocr.PrepareForBadges(img, c.cfg))
}

// Scanner is safe for concurrent use as long as its collaborators are.
type Scanner struct {
	Decoder    Decoder
	Recognizer Recognizer
	Classifier Classifier
	Extractor  *extract.Extractor

	// DebugDir receives per-image artifacts when set.
	DebugDir string
	// debugInput renders what the recognizer saw, for the debug artifacts
	debugInput func(img image.Image) image.Image
}

// New wires the imaging decoder, gosseract and the gocv badge classifier.
func New(extractor *extract.Extractor, ocrCfg ocr.Config) *Scanner {
	return &Scanner{
		Decoder:    bytesDecoder{},
		Recognizer: ocr.NewTesseractRecognizer(ocrCfg),
		Classifier: badgeClassifier{cfg: ocrCfg},
		Extractor:  extractor,
		DebugDir:   ocrCfg.DebugDir,
		debugInput: func(img image.Image) image.Image {
			return ocr.PrepareForOCR(img, ocrCfg)
		},
	}
}

// HashBytes is the content hash stored with every record.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashFile hashes a screenshot without decoding it.
func HashFile(imagePath string) (hash string, e *xerr.Error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		e = xerr.NewError(err, "read screenshot for hashing", imagePath)
		return "", e
	}
	return HashBytes(data), nil
}

// ProcessImage reads imagePath and runs ProcessBytes on it.
func (s *Scanner) ProcessImage(imagePath string) (rec record.Record, e *xerr.Error) {
	tl.Log(tl.Notice, palette.BlueBold, "%s screenshot '%s'", "Processing", imagePath)

	data, err := os.ReadFile(imagePath)
	if err != nil {
		e = xerr.NewError(err, "read screenshot", imagePath)
		return rec, e
	}
	return s.ProcessBytes(imagePath, data)
}

/*
ProcessBytes runs the whole pipeline on an encoded screenshot. sourcePath is
only recorded, it is never opened.

A decode, badge or OCR failure aborts this screenshot and nothing is
returned but the error. Fields the text does not yield become sentinels.
*/
func (s *Scanner) ProcessBytes(sourcePath string, data []byte) (rec record.Record, e *xerr.Error) {
	img, e := s.Decoder.Decode(data)
	if e != nil {
		return rec, e
	}

	flags, e := s.Classifier.Classify(img)
	if e != nil {
		return rec, e
	}

	rawText, e := s.Recognizer.Recognize(img)
	if e != nil {
		return rec, e
	}

	cleanText := textnorm.Normalize(rawText)
	tl.Log(tl.Verbose, palette.CyanDim, "Clean text: '%s'", cleanText)

	rec = s.Extractor.Extract(cleanText)
	rec.BadgeFlags = flags
	rec.SourcePath = sourcePath
	rec.ContentHash = HashBytes(data)

	tl.LogJSON(tl.Info, palette.Green, "Final record", rec)

	if s.DebugDir != "" {
		run := ocr.DebugRun{
			ImagePath: sourcePath,
			RawText:   rawText,
			CleanText: cleanText,
			Record:    rec,
		}
		if s.debugInput != nil {
			run.OCRInput = s.debugInput(img)
		}
		_, debugErr := ocr.SaveDebugRun(s.DebugDir, run)
		if debugErr != nil {
			tl.Log(tl.Warning, palette.Yellow, "Could not save debug artifacts for '%s': %v", sourcePath, debugErr)
		}
	}

	return rec, nil
}

// ProcessText runs normalization and extraction on already recognized text.
func (s *Scanner) ProcessText(rawText string) record.Record {
	return s.Extractor.Extract(textnorm.Normalize(rawText))
}
