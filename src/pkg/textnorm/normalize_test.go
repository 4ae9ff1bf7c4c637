package textnorm

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "header noise before level is dropped",
			raw:  "SUMMARY ~~ 12:04\nLv. 50 Charizard\n",
			want: "Lv 50 Charizard ",
		},
		{
			name: "garbled IV label collapses",
			raw:  "Lv50 Pikachu Ws: 31/31/31/31/31/31",
			want: "Lv50 Pikachu IVs: 31/31/31/31/31/31",
		},
		{
			name: "IVrs label",
			raw:  "Lv50 Pikachu IVrs 31/31/31/31/31/31",
			want: "Lv50 Pikachu IVs: 31/31/31/31/31/31",
		},
		{
			name: "stray glyph after label",
			raw:  "Lv50 Pikachu IVs: |31/31/31/31/31/31",
			want: "Lv50 Pikachu IVs: 31/31/31/31/31/31",
		},
		{
			name: "glyph read as 2 after label",
			raw:  "Lv50 Pikachu IVs: 2|31/31/31/31/31/31",
			want: "Lv50 Pikachu IVs: 31/31/31/31/31/31",
		},
		{
			name: "doubled label with glyph read as 2",
			raw:  "Lv50 Pikachu IIVs:2 31/31/31/31/31/31",
			want: "Lv50 Pikachu IVs: 31/31/31/31/31/31",
		},
		{
			name: "HP value starting with 2 is kept",
			raw:  "Lv50 Charizard IVs: 25/31/31/31/31/31",
			want: "Lv50 Charizard IVs: 25/31/31/31/31/31",
		},
		{
			name: "HP value of 2 is kept",
			raw:  "Lv50 Charizard IVs: 2/31/31/31/31/31",
			want: "Lv50 Charizard IVs: 2/31/31/31/31/31",
		},
		{
			name: "doubled label before a clean value",
			raw:  "Lv50 Charizard IIVs:22/31/31/31/31/31",
			want: "Lv50 Charizard IVs: 22/31/31/31/31/31",
		},
		{
			name: "EV label keeps its E",
			raw:  "Lv5 Eevee EVs: 252/0/0/252/4/0",
			want: "Lv5 Eevee EVs: 252/0/0/252/4/0",
		},
		{
			name: "garbled EV label",
			raw:  "Lv5 Eevee EIVs: 252/0/0/252/4/0",
			want: "Lv5 Eevee EVs: 252/0/0/252/4/0",
		},
		{
			name: "accents transliterated",
			raw:  "Lv12 Flabébé Nature: Timid",
			want: "Lv12 Flabebe Nature: Timid",
		},
		{
			name: "punctuation stripped and spaces collapsed",
			raw:  "Lv 7   Eevee,\t\tAbility: Run-Away!",
			want: "Lv 7 Eevee Ability: RunAway",
		},
		{
			name: "no level keeps the whole text",
			raw:  "Pikachu  Nature: Jolly",
			want: "Pikachu Nature: Jolly",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.raw)
			if got != tc.want {
				t.Fatalf("Normalize(%q)\n got %q\nwant %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotentOnCleanText(t *testing.T) {
	inputs := []string{
		"Lv50 Charizard IVs: 31/31/31/31/31/31 EVs: 252/0/0/252/4/0 Nature: Timid",
		"Lv 100 Garchomp IVs: 31/31/31/0/31/31 EVs: 4/252/0/0/0/252 Nature: Jolly Rough Skin Earthquake",
		"Lv50 Charizard IVs: 25/31/31/31/31/31",
		"Lv50 Charizard IVs: 22/31/31/31/31/31",
		"Lv50 Charizard IVs: 2/31/31/31/31/31",
		"Lv50 Pikachu IVs: 2|31/31/31/31/31/31",
		"Lv5 Eevee Adaptability Tackle Growl",
		"Pikachu Static",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if strings.Contains(in, "IVs: 2") && !strings.Contains(in, "|") && once != in {
			t.Fatalf("clean IVs were changed: %q -> %q", in, once)
		}
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q:\n once %q\ntwice %q", in, once, twice)
		}
		if strings.Contains(once, "IIVs") {
			t.Fatalf("canonical label was corrupted: %q", once)
		}
	}
}

func TestMisreadsAreSinglePass(t *testing.T) {
	// "Ws" becomes "IVs:" and the produced "Vs:" must not be corrected again.
	got := misreadReplacer.Replace("Ws 1")
	if got != "IVs: 1" {
		t.Fatalf("got %q", got)
	}
}
