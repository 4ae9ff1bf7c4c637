package store

import (
	"path/filepath"
	"testing"

	"stat-scanner/src/pkg/record"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, e := Open(filepath.Join(t.TempDir(), "data", "records.db"))
	if e != nil {
		t.Fatalf("Open: %v", e)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func recordFor(hash, name, path string) record.Record {
	r := record.Empty()
	r.Name = name
	r.ContentHash = hash
	r.SourcePath = path
	r.IVs = record.ParseSextuplet("1/2/3/4/5/6")
	r.IsShiny = true
	return r
}

func TestUpsertSeenAndAll(t *testing.T) {
	db := openTestDB(t)

	if seen, e := db.Seen("aaa"); e != nil || seen {
		t.Fatalf("Seen on empty store = %v, %v", seen, e)
	}

	for _, r := range []record.Record{
		recordFor("aaa", "Eevee", "a.png"),
		recordFor("bbb", "Pikachu", "b.png"),
	} {
		if e := db.Upsert(r); e != nil {
			t.Fatalf("Upsert: %v", e)
		}
	}

	if seen, e := db.Seen("bbb"); e != nil || !seen {
		t.Fatalf("Seen(bbb) = %v, %v", seen, e)
	}

	// same content again from another path replaces in place
	if e := db.Upsert(recordFor("aaa", "Eevee", "copy-of-a.png")); e != nil {
		t.Fatalf("Upsert: %v", e)
	}

	all, e := db.All()
	if e != nil {
		t.Fatalf("All: %v", e)
	}
	if len(all) != 2 {
		t.Fatalf("got %d records", len(all))
	}
	if all[0].ContentHash != "aaa" || all[0].SourcePath != "copy-of-a.png" || all[1].Name != "Pikachu" {
		t.Fatalf("records = %+v", all)
	}
	if all[1].IVs.Values[record.Speed] != "6" || !all[1].IsShiny || all[1].EVs.Known() {
		t.Fatalf("record did not survive storage: %+v", all[1])
	}

	if count, e := db.Count(); e != nil || count != 2 {
		t.Fatalf("Count = %d, %v", count, e)
	}
}

func TestUpsertRequiresHash(t *testing.T) {
	db := openTestDB(t)
	if e := db.Upsert(record.Empty()); e == nil {
		t.Fatal("expected error for record without hash")
	}
}
