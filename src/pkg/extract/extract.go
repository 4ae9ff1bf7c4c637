/*
Package extract pulls the typed stat-screen fields out of normalized OCR text.

Every field is looked up independently over the whole text, so a missing or
garbled field never shifts another one. Unresolved fields get the record
sentinels, never an error.
*/
package extract

import (
	"regexp"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"stat-scanner/src/pkg/record"
	"stat-scanner/src/pkg/vocab"
)

// Natures is the closed list accepted after the "Nature" label.
var Natures = []string{
	"Adamant", "Brave", "Lonely", "Naughty", "Bold", "Relaxed", "Impish", "Lax", "Timid",
	"Hasty", "Jolly", "Naive", "Modest", "Mild", "Quiet", "Rash", "Calm", "Gentle", "Sassy",
	"Careful", "Quirky",
}

var (
	levelNameRegexp = regexp.MustCompile(`Lv\.?\s*(\d+)\s+([A-Za-z]+)`)
	ivsRegexp       = regexp.MustCompile(`IVs?:?\s*(\d{1,2}/\d{1,2}/\d{1,2}/\d{1,2}/\d{1,2}/\d{1,2})`)
	evsRegexp       = regexp.MustCompile(`EVs?:?\s*(\d{1,3}/\d{1,3}/\d{1,3}/\d{1,3}/\d{1,3}/\d{1,3})`)
	natureRegexp    = regexp.MustCompile(`(?i)Nature:?\s*(` + strings.Join(Natures, "|") + `)`)

	natureByLower = func() map[string]string {
		m := make(map[string]string, len(Natures))
		for _, n := range Natures {
			m[strings.ToLower(n)] = n
		}
		return m
	}()
)

// Extractor holds the compiled vocabulary matchers. Safe for concurrent use.
type Extractor struct {
	names      []string
	abilities  *wordMatcher
	moves      *wordMatcher
	nameCutoff float64

	// Similarity scores creature-name candidates; RatcliffObershelp by default.
	Similarity SimilarityFunc
}

// New compiles the ability and move matchers from v.
func New(v vocab.Vocabulary, cfg Config) *Extractor {
	return &Extractor{
		names:      v.Names,
		abilities:  newWordMatcher(v.Abilities),
		moves:      newWordMatcher(v.Moves),
		nameCutoff: cfg.NameCutoff,
		Similarity: RatcliffObershelp,
	}
}

// Extract returns a record with every text field resolved or set to its sentinel.
func (x *Extractor) Extract(cleanText string) record.Record {
	r := record.Empty()
	r.Level, r.Name = x.levelAndName(cleanText)
	r.IVs = sextuplet(ivsRegexp, cleanText)
	r.EVs = sextuplet(evsRegexp, cleanText)
	r.Nature = nature(cleanText)
	r.Ability = x.ability(cleanText)
	r.Moves = x.moveList(cleanText)
	return r
}

func (x *Extractor) levelAndName(text string) (level string, name string) {
	m := levelNameRegexp.FindStringSubmatch(text)
	if m == nil {
		return record.Unknown, record.Unknown
	}
	level = m[1]

	best, score, ok := ClosestMatch(m[2], x.names, x.nameCutoff, x.Similarity)
	if !ok {
		tl.Log(tl.Info1, palette.Purple, "No name close to '%s' (cutoff %v)", m[2], x.nameCutoff)
		return level, record.Unknown
	}
	tl.Log(tl.Verbose, palette.CyanDim, "Name '%s' matched '%s' (%.2f)", m[2], best, score)
	return level, best
}

func sextuplet(pattern *regexp.Regexp, text string) record.Sextuplet {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return record.UnknownSextuplet()
	}
	return record.ParseSextuplet(m[1])
}

func nature(text string) string {
	m := natureRegexp.FindStringSubmatch(text)
	if m == nil {
		return record.NotFound
	}
	return natureByLower[strings.ToLower(m[1])]
}

func (x *Extractor) ability(text string) string {
	match, ok := x.abilities.First(text)
	if !ok {
		return record.NotFound
	}
	return capitalize(match)
}

func (x *Extractor) moveList(text string) []string {
	seen := map[string]bool{}
	moves := []string{}
	for _, match := range x.moves.All(text) {
		key := strings.ToLower(match)
		if seen[key] {
			continue
		}
		seen[key] = true
		moves = append(moves, capitalize(match))
	}

	if len(moves) == 0 {
		return []string{record.NotFound}
	}
	if len(moves) > record.MaxMoves {
		tl.Log(tl.Warning, palette.YellowDim, "Found %d moves, keeping the first %d: %v", len(moves), record.MaxMoves, moves)
		moves = moves[:record.MaxMoves]
	}
	return moves
}
