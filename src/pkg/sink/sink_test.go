package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"stat-scanner/src/pkg/record"
)

func sampleRecord() record.Record {
	r := record.Empty()
	r.Name = "Charizard"
	r.Level = "36"
	r.IVs = record.ParseSextuplet("31/30/29/28/27/26")
	r.Nature = "Timid"
	r.Ability = "Blaze"
	r.Moves = []string{"Ember", "Growl"}
	r.IsAlpha = true
	return r
}

func TestRowLayout(t *testing.T) {
	row := Row(sampleRecord())
	if len(row) != 35 || len(row) != len(Header) {
		t.Fatalf("row has %d columns, header %d", len(row), len(Header))
	}

	want := map[int]string{
		0: "", 1: "Charizard", 2: "", 5: "",
		6: "true", 7: "false", 8: "false",
		9: "Timid", 10: "36",
		11: "31/30/29/28/27/26", 12: "31", 17: "26",
		18: record.NotFound, 19: record.NotFound, 24: record.NotFound,
		25: "Blaze", 26: "Ember", 27: "Growl", 28: "", 29: "",
		30: "", 34: "",
	}
	for col, v := range want {
		if row[col] != v {
			t.Errorf("column %d (%s) = %q, want %q", col, Header[col], row[col], v)
		}
	}
}

func TestRowOfEmptyRecord(t *testing.T) {
	row := Row(record.Empty())
	if row[1] != record.Unknown || row[10] != record.Unknown || row[26] != record.NotFound || row[27] != "" {
		t.Fatalf("unexpected row %q", row)
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestWriteCSVHasNoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "data.csv")
	if e := WriteCSV([]record.Record{sampleRecord(), record.Empty()}, path); e != nil {
		t.Fatalf("WriteCSV: %v", e)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][1] != "Charizard" || rows[1][1] != record.Unknown {
		t.Fatalf("rows = %q", rows)
	}
}

func TestCSVAppendMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if e := WriteCSV([]record.Record{sampleRecord()}, path); e != nil {
		t.Fatalf("WriteCSV: %v", e)
	}

	w, e := OpenCSV(path, true)
	if e != nil {
		t.Fatalf("OpenCSV: %v", e)
	}
	if e := w.Write(record.Empty()); e != nil {
		t.Fatalf("Write: %v", e)
	}
	if e := w.Close(); e != nil {
		t.Fatalf("Close: %v", e)
	}

	if rows := readCSV(t, path); len(rows) != 2 {
		t.Fatalf("got %d rows after append", len(rows))
	}

	if e := WriteCSV(nil, path); e != nil {
		t.Fatalf("WriteCSV: %v", e)
	}
	if rows := readCSV(t, path); len(rows) != 0 {
		t.Fatalf("truncate left %d rows", len(rows))
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if e := WriteXLSX([]record.Record{sampleRecord()}, path); e != nil {
		t.Fatalf("WriteXLSX: %v", e)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][1] != "Pokemon Name" || rows[1][1] != "Charizard" || rows[1][6] != "true" {
		t.Fatalf("rows = %q", rows)
	}
}
