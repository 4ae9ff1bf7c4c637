/*
Package textnorm repairs raw OCR text from the stat screen before field
extraction: known misreads of the IV label are corrected, stray glyphs after
the label are dropped, accents are transliterated and header noise above the
level line is cut off.
*/
package textnorm

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Misread is one entry of the label correction table.
type Misread struct {
	Old string
	New string
}

/*
Misreads is the label correction table in priority order. At any position the
earliest entry that matches wins, and replaced text is never scanned again.

The identity entries keep labels that are already correct from being hit by
the shorter patterns below them ("Vs:" would otherwise turn "IVs:" into
"IIVs:").
*/
var Misreads = []Misread{
	{"IIVs:", "IVs:"},
	{"IVs:r", "IVs:"},
	{"IVrs", "IVs:"},
	{"IVs:", "IVs:"},
	{"EIVs:", "EVs:"},
	{"EVs:", "EVs:"},
	{"IV:", "IVs:"},
	{"Ws:", "IVs:"},
	{"Vs:", "IVs:"},
	{"Ws", "IVs:"},
	{"Wsr", "IVs:"},
	{"Wee", "IVs:"},
	{"Wer", "IVs:"},
	{"WES", "IVs:"},
}

var (
	// a glyph read as "2" right after the label, unless it starts the HP value
	labelGlyphTwo = regexp.MustCompile(`(?:IIVs:2|IVs: 2)([^\d/])`)

	misreadReplacer = newMisreadReplacer(Misreads)

	// a single glyph the OCR engine tends to put right after the IV label
	strayAfterLabel = regexp.MustCompile(`IVs?:?\s*[^\d\s/]`)
	disallowed      = regexp.MustCompile(`[^A-Za-z0-9\s/:]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

func newMisreadReplacer(table []Misread) *strings.Replacer {
	pairs := make([]string, 0, len(table)*2)
	for _, m := range table {
		pairs = append(pairs, m.Old, m.New)
	}
	return strings.NewReplacer(pairs...)
}

/*
Normalize returns cleaned text ready for extraction. It never fails: when the
expected tokens are missing the text simply passes through with less
structure and the extractor reports sentinels.
*/
func Normalize(rawText string) string {
	text := labelGlyphTwo.ReplaceAllString(rawText, "IVs:$1")
	text = misreadReplacer.Replace(text)
	text = strayAfterLabel.ReplaceAllString(text, "IVs: ")
	text = unidecode.Unidecode(text)

	if lvIndex := strings.Index(text, "Lv"); lvIndex != -1 {
		text = text[lvIndex:]
	}

	text = disallowed.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return text
}
