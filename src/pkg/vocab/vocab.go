// Package vocab loads the reference word lists used to validate OCR text.
package vocab

import (
	"bufio"
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

// Vocabulary is loaded once per run and only read afterwards.
type Vocabulary struct {
	Moves     []string
	Abilities []string
	Names     []string
}

// Load reads all three lists from the paths in cfg.
func Load(cfg Config) Vocabulary {
	v := Vocabulary{
		Moves:     LoadList(cfg.MovesPath),
		Abilities: LoadList(cfg.AbilitiesPath),
		Names:     LoadList(cfg.NamesPath),
	}

	tl.Log(
		tl.Info1, palette.Green, "Loaded vocabulary: %d moves, %d abilities, %d names",
		len(v.Moves), len(v.Abilities), len(v.Names),
	)
	return v
}

/*
LoadList reads one entry per line, trimming whitespace and skipping blank
lines. A missing or unreadable file yields an empty list and a warning:
matching against that list then always falls back to its sentinel.
*/
func LoadList(filePath string) []string {
	file, openErr := os.Open(filePath)
	if openErr != nil {
		tl.Log(tl.Warning, palette.YellowBold, "File not found: '%s' (%s)", filePath, openErr)
		return []string{}
	}
	defer func() {
		_ = file.Close()
	}()

	entries := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		tl.Log(tl.Warning, palette.YellowBold, "Stopped reading '%s' early: %s", filePath, scanErr)
	}

	tl.Log(tl.Info1, palette.Blue, "Read %d entries from '%s'", len(entries), filePath)
	return entries
}
