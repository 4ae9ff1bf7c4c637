package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"stat-scanner/src/pkg/app"
	"stat-scanner/src/pkg/config"
	"stat-scanner/src/pkg/record"
	"stat-scanner/src/pkg/scanner"
	"stat-scanner/src/pkg/sink"
	"stat-scanner/src/pkg/store"
	"stat-scanner/src/pkg/util"
	"stat-scanner/src/pkg/watch"
)

/*
main scans a folder of stat-screen screenshots and writes one CSV row per
screenshot. A screenshot that fails is reported and skipped.

With -db every record is also kept in SQLite, and -skip-seen leaves out
screenshots whose content is already stored. With -watch the folder is
scanned once and then watched; new screenshots are appended to the CSV.
*/
func main() {
	config.CheckIfEnvVarsPresent()

	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	dirPath := flag.String("dir", "", "Folder with stat-screen screenshots (.png/.jpg/.jpeg).")
	csvPath := flag.String("out", "./out/pokemon_data.csv", "CSV file to write.")
	appendCSV := flag.Bool("append", false, "Append to the CSV instead of replacing it.")
	xlsxPath := flag.String("xlsx", "", "Also export the batch as an .xlsx workbook.")
	dbPath := flag.String("db", "", "SQLite file to store records in.")
	skipSeen := flag.Bool("skip-seen", false, "Skip screenshots already in -db.")
	watchFolder := flag.Bool("watch", false, "Keep watching -dir for new screenshots.")
	workers := flag.Int("workers", 0, "Screenshots processed at once (default from config).")
	debugDir := flag.String("debug-dir", "", "Write OCR text and records per screenshot here.")

	flag.Parse()
	util.RequiredFlag(dirPath, "dir")
	util.EnsureFlags()
	app.Initialize(*configPath)

	tl.Log(
		tl.Notice, palette.BlueBold, "%s entrypoint. Config path: '%s'",
		"Running stat scanner", *configPath,
	)

	s := app.NewScanner()
	if *debugDir != "" {
		s.DebugDir = *debugDir
	}
	workerCount := scanner.Cfg.Workers
	if *workers > 0 {
		workerCount = *workers
	}

	var db *store.DB
	if *dbPath != "" {
		var e *xerr.Error
		db, e = store.Open(*dbPath)
		e.QuitIf(xerr.ErrorTypeError)
		defer db.Close()
	} else if *skipSeen {
		tl.Log(tl.Warning, palette.YellowDim, "%s has no effect without %s", "-skip-seen", "-db")
	}

	paths, e := scanner.ListImages(*dirPath, scanner.Cfg.Extensions)
	e.QuitIf(xerr.ErrorTypeError)
	var seenChecker scanner.SeenChecker
	if db != nil && *skipSeen {
		seenChecker = db
	}
	paths = scanner.FilterSeen(paths, seenChecker)

	result := s.RunBatch(paths, workerCount)
	records := result.Records()
	storeRecords(db, records)

	writer, e := sink.OpenCSV(*csvPath, *appendCSV)
	e.QuitIf(xerr.ErrorTypeError)
	defer writer.Close()
	e = writer.Write(records...)
	e.QuitIf(xerr.ErrorTypeError)

	if *xlsxPath != "" {
		e = sink.WriteXLSX(records, *xlsxPath)
		e.QuitIf(xerr.ErrorTypeError)
	}

	tl.Log(
		tl.Notice1, palette.GreenBold, "Done. Written: '%d', failed: '%d', CSV: '%s'",
		len(records), len(result.Failures()), *csvPath,
	)

	if !*watchFolder {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e = watch.Folder(ctx, *dirPath, scanner.Cfg.Extensions, func(imagePath string) {
		if len(scanner.FilterSeen([]string{imagePath}, seenChecker)) == 0 {
			return
		}
		rec, e := s.ProcessImage(imagePath)
		if e != nil {
			tl.Log(tl.Error, palette.Red, "Skipping '%s': %v", imagePath, e)
			return
		}
		storeRecords(db, []record.Record{rec})
		e = writer.Write(rec)
		if e != nil {
			tl.Log(tl.Error, palette.RedBold, "Could not append '%s' to '%s': %v", imagePath, *csvPath, e)
		}
	})
	e.QuitIf(xerr.ErrorTypeError)
}

func storeRecords(db *store.DB, records []record.Record) {
	if db == nil {
		return
	}
	for _, r := range records {
		e := db.Upsert(r)
		if e != nil {
			tl.Log(tl.Error, palette.Red, "Could not store record for '%s': %v", r.SourcePath, e)
		}
	}
}
