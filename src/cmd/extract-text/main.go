package main

import (
	"flag"
	"os"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"stat-scanner/src/pkg/app"
	"stat-scanner/src/pkg/config"
	"stat-scanner/src/pkg/extract"
	"stat-scanner/src/pkg/record"
	"stat-scanner/src/pkg/sink"
	"stat-scanner/src/pkg/textnorm"
	"stat-scanner/src/pkg/util"
	"stat-scanner/src/pkg/vocab"
)

/*
main reads an OCR text file (for example ocr.txt from a debug run), runs
normalization and field extraction on it and logs the record. Useful for
tuning the correction table and vocabularies without Tesseract.
*/
func main() {
	config.CheckIfEnvVarsPresent()
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")
	// Program-specific flags.
	ocrTextPath := flag.String("ocr-text", "", "Path to the OCR text file to extract fields from.")
	csvPath := flag.String("csv", "", "Optionally write the record as a CSV row to this file.")
	flag.Parse()
	util.RequiredFlag(ocrTextPath, "ocr-text")
	util.EnsureFlags()
	app.Initialize(*configPath)

	tl.Log(
		tl.Notice, palette.BlueBold, "%s entrypoint. Config path: '%s'",
		"Running field extraction", *configPath,
	)

	ocrBytes, readErr := os.ReadFile(*ocrTextPath)
	xerr.QuitIfError(readErr, "read OCR text file")

	cleanText := textnorm.Normalize(string(ocrBytes))
	tl.Log(tl.Info1, palette.Cyan, "Clean text: '%s'", cleanText)

	extractor := extract.New(vocab.Load(vocab.Cfg), extract.Cfg)
	rec := extractor.Extract(cleanText)
	rec.SourcePath = *ocrTextPath
	tl.LogJSON(tl.Info, palette.Green, "Record", rec)

	if *csvPath != "" {
		e := sink.WriteCSV([]record.Record{rec}, *csvPath)
		e.QuitIf(xerr.ErrorTypeError)
	}
}
