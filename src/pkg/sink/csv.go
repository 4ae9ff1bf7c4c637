package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"stat-scanner/src/pkg/record"
)

// CSVWriter appends header-less rows to a CSV file and flushes after every write.
type CSVWriter struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

/*
OpenCSV creates (truncates) outputPath, or appends to it when appendMode is
set. Parent directories are created as needed.
*/
func OpenCSV(outputPath string, appendMode bool) (w *CSVWriter, e *xerr.Error) {
	err := os.MkdirAll(filepath.Dir(outputPath), 0o755)
	if err != nil {
		e = xerr.NewError(err, "create CSV output directory", outputPath)
		return nil, e
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(outputPath, flags, 0o644)
	if err != nil {
		e = xerr.NewError(err, "open CSV output", outputPath)
		return nil, e
	}

	tl.Log(tl.Info, palette.Blue, "CSV is being saved to '%s' (append: %v)", outputPath, appendMode)
	return &CSVWriter{path: outputPath, file: file, writer: csv.NewWriter(file)}, nil
}

func (w *CSVWriter) Write(records ...record.Record) (e *xerr.Error) {
	for _, r := range records {
		err := w.writer.Write(Row(r))
		if err != nil {
			e = xerr.NewError(err, "write CSV row", w.path)
			return e
		}
	}

	w.writer.Flush()
	err := w.writer.Error()
	if err != nil {
		e = xerr.NewError(err, "flush CSV rows", w.path)
		return e
	}
	return nil
}

func (w *CSVWriter) Close() (e *xerr.Error) {
	w.writer.Flush()
	err := w.writer.Error()
	closeErr := w.file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		e = xerr.NewError(err, "close CSV output", w.path)
		return e
	}
	return nil
}

// WriteCSV writes all records to a fresh file.
func WriteCSV(records []record.Record, outputPath string) (e *xerr.Error) {
	w, e := OpenCSV(outputPath, false)
	if e != nil {
		return e
	}

	e = w.Write(records...)
	if e != nil {
		_ = w.Close()
		return e
	}

	e = w.Close()
	if e != nil {
		return e
	}
	tl.Log(tl.Notice1, palette.GreenBold, "All data saved to '%s' (%d rows)", outputPath, len(records))
	return nil
}
