package ocr

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// DebugRun holds everything worth keeping when a screenshot gets misread.
type DebugRun struct {
	ImagePath string
	OCRInput  image.Image // may be nil
	RawText   string
	CleanText string
	Record    any
}

/*
SaveDebugRun writes a DebugRun under <debugDir>/<image base name>/ as
ocr-input.png, ocr.txt, clean.txt and record.json. Existing files are
overwritten.
*/
func SaveDebugRun(debugDir string, run DebugRun) (runDirPath string, e *xerr.Error) {
	baseName := strings.TrimSuffix(filepath.Base(run.ImagePath), filepath.Ext(run.ImagePath))
	runDirPath = filepath.Join(debugDir, baseName)

	e = ensureOutputDirectory(runDirPath)
	if e != nil {
		return runDirPath, e
	}

	if run.OCRInput != nil {
		inputPath := filepath.Join(runDirPath, "ocr-input.png")
		saveErr := imaging.Save(run.OCRInput, inputPath)
		if saveErr != nil {
			e = xerr.NewError(saveErr, "save OCR input image", inputPath)
			return runDirPath, e
		}
	}

	e = saveTextToFile(filepath.Join(runDirPath, "ocr.txt"), run.RawText)
	if e != nil {
		return runDirPath, e
	}
	e = saveTextToFile(filepath.Join(runDirPath, "clean.txt"), run.CleanText)
	if e != nil {
		return runDirPath, e
	}
	e = saveJSONToFile(filepath.Join(runDirPath, "record.json"), run.Record)
	if e != nil {
		return runDirPath, e
	}

	tl.Log(tl.Info1, palette.Green, "Saved debug artifacts for '%s' into '%s'", run.ImagePath, runDirPath)
	return runDirPath, nil
}

func ensureOutputDirectory(outputDirPath string) (e *xerr.Error) {
	err := os.MkdirAll(outputDirPath, 0o755)
	if err != nil {
		e = xerr.NewError(err, "create output directory", outputDirPath)
		return e
	}

	tl.Log(tl.Detailed, palette.Blue, "Ensured output directory '%s'", outputDirPath)
	return e
}

func saveTextToFile(destinationPath string, text string) (e *xerr.Error) {
	writeErr := os.WriteFile(destinationPath, []byte(text), 0o644)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write text file", destinationPath)
		return e
	}
	return e
}

/*
saveJSONToFile marshals the given value to pretty-printed JSON and writes it
to destinationPath, overwriting any existing file.
*/
func saveJSONToFile(destinationPath string, value any) (e *xerr.Error) {
	jsonBytes, marshalErr := json.MarshalIndent(value, "", "  ")
	if marshalErr != nil {
		e = xerr.NewError(marshalErr, "marshal value to JSON", destinationPath)
		return e
	}

	writeErr := os.WriteFile(destinationPath, jsonBytes, 0o644)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write JSON file", destinationPath)
		return e
	}
	return e
}
