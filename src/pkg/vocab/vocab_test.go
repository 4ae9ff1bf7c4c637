package vocab

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeList(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadListTrimsAndSkipsBlankLines(t *testing.T) {
	path := writeList(t, t.TempDir(), "moves.txt", "Tackle\n  Ember \n\nThunder Punch\r\n")

	got := LoadList(path)
	want := []string{"Tackle", "Ember", "Thunder Punch"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLoadListMissingFileIsEmpty(t *testing.T) {
	got := LoadList(filepath.Join(t.TempDir(), "nope.txt"))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		MovesPath:     writeList(t, dir, "moves.txt", "Tackle\nEmber\n"),
		AbilitiesPath: filepath.Join(dir, "missing.txt"),
		NamesPath:     writeList(t, dir, "names.txt", "Pikachu\nCharizard\n"),
	}

	v := Load(cfg)
	if len(v.Moves) != 2 || len(v.Abilities) != 0 || len(v.Names) != 2 {
		t.Fatalf("unexpected vocabulary %+v", v)
	}
	if v.Names[1] != "Charizard" {
		t.Fatalf("order not preserved: %q", v.Names)
	}
}
