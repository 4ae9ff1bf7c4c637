package main

import (
	"flag"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"stat-scanner/src/pkg/app"
	"stat-scanner/src/pkg/config"
	"stat-scanner/src/pkg/ocr"
	"stat-scanner/src/pkg/util"
)

/*
main runs the pipeline on a single screenshot and keeps every stage under
-debug-dir: the image Tesseract saw, the raw OCR text, the clean text and
the final record.
*/
func main() {
	config.CheckIfEnvVarsPresent()

	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	imagePath := flag.String("image", "", "Path to the stat-screen screenshot to process.")
	debugDir := flag.String("debug-dir", "./out/debug", "Directory where OCR input, text and record are stored.")
	language := flag.String("language", "", "Tesseract language override, e.g. eng or eng+spa. \"tesseract --list-langs\"")

	flag.Parse()
	util.RequiredFlag(imagePath, "image")
	util.RequiredFlag(debugDir, "debug-dir")
	util.EnsureFlags()
	app.Initialize(*configPath)
	if *language != "" {
		ocr.Cfg.Language = *language
	}

	tl.Log(
		tl.Notice, palette.BlueBold, "%s single screenshot entrypoint. Config path: '%s'",
		"Running", *configPath,
	)

	s := app.NewScanner()
	s.DebugDir = *debugDir

	rec, e := s.ProcessImage(*imagePath)
	e.QuitIf(xerr.ErrorTypeError)

	tl.Log(
		tl.Notice1, palette.GreenBold, "%s for '%s' (%s, Lv %s). Artifacts in '%s'",
		"Screenshot run completed", *imagePath, rec.Name, rec.Level, *debugDir,
	)
}
