package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"stat-scanner/src/pkg/report"
	"stat-scanner/src/pkg/store"
	"stat-scanner/src/pkg/util"
)

/*
main renders an HTML summary of every record in the store.

Example:

	go run ./src/cmd/report -db ./out/records.db -o ./tmp/report.html
*/
func main() {
	dbPath := flag.String("db", "", "SQLite record store written by stat-scanner or stat-server")
	outputPath := flag.String("o", "", "Output HTML path (default: ./tmp/report-YYYY-MM-DD.html)")
	maxRows := flag.Int("max-rows", 10, "Maximum rows per breakdown before grouping the rest into 'Other'")
	title := flag.String("title", "Collection report", "Report title")

	flag.Parse()
	util.RequiredFlag(dbPath, "db")
	util.EnsureFlags()

	now := time.Now()
	if *outputPath == "" {
		*outputPath = fmt.Sprintf("./tmp/report-%s.html", now.Format("2006-01-02"))
	}

	tl.Log(tl.Notice, palette.BlueBold, "Generating collection report from '%s'", *dbPath)

	db, e := store.Open(*dbPath)
	e.QuitIf(xerr.ErrorTypeError)
	defer db.Close()

	records, e := db.All()
	e.QuitIf(xerr.ErrorTypeError)

	summary := report.Build(records, report.Options{
		Title:       *title,
		MaxRows:     *maxRows,
		GeneratedAt: now,
	})
	tl.LogJSON(tl.Verbose, palette.CyanDim, "Report summary", summary)

	xerr.QuitIfError(os.MkdirAll(filepath.Dir(*outputPath), 0o755), "create report directory")
	writeErr := os.WriteFile(*outputPath, []byte(report.RenderHTML(summary)), 0o644)
	xerr.QuitIfError(writeErr, "write HTML report file")

	tl.Log(tl.Info1, palette.Green, "Saved report for %d records to '%s'", summary.RecordCount, *outputPath)
}
