package extract

import (
	"reflect"
	"strings"
	"testing"

	"stat-scanner/src/pkg/record"
	"stat-scanner/src/pkg/vocab"
)

func testVocabulary() vocab.Vocabulary {
	return vocab.Vocabulary{
		Moves:     []string{"Flamethrower", "Tackle", "Growl", "Thunder Punch", "Ember"},
		Abilities: []string{"Blaze", "Solar Power", "Static"},
		Names:     []string{"Pikachu", "Charizard", "Eevee"},
	}
}

func TestExtractEndToEnd(t *testing.T) {
	x := New(testVocabulary(), DefaultValueConfig())
	r := x.Extract("Lv50 Charizard IVs: 31/31/31/31/31/31 EVs: 252/0/0/252/4/0 Nature: Timid")

	if r.Level != "50" || r.Name != "Charizard" {
		t.Fatalf("level/name: got %q/%q", r.Level, r.Name)
	}
	if r.IVs.Raw != "31/31/31/31/31/31" {
		t.Fatalf("ivs: got %q", r.IVs.Raw)
	}
	if r.EVs.Raw != "252/0/0/252/4/0" {
		t.Fatalf("evs: got %q", r.EVs.Raw)
	}
	if r.EVs.Values != [6]string{"252", "0", "0", "252", "4", "0"} {
		t.Fatalf("ev components: got %v", r.EVs.Values)
	}
	if r.Nature != "Timid" {
		t.Fatalf("nature: got %q", r.Nature)
	}
	if r.Ability != record.NotFound {
		t.Fatalf("ability: got %q", r.Ability)
	}
	if !reflect.DeepEqual(r.Moves, []string{record.NotFound}) {
		t.Fatalf("moves: got %q", r.Moves)
	}
}

func TestExtractWithoutLevelLine(t *testing.T) {
	x := New(testVocabulary(), DefaultValueConfig())
	r := x.Extract("Charizard IVs: 31/30/31/31/31/31 Nature: Jolly Blaze Ember")

	if r.Level != record.Unknown || r.Name != record.Unknown {
		t.Fatalf("level/name: got %q/%q", r.Level, r.Name)
	}
	if r.IVs.Raw != "31/30/31/31/31/31" || r.Nature != "Jolly" || r.Ability != "Blaze" {
		t.Fatalf("other fields must still resolve: %+v", r)
	}
	if !reflect.DeepEqual(r.Moves, []string{"Ember"}) {
		t.Fatalf("moves: got %q", r.Moves)
	}
	if r.EVs.Known() {
		t.Fatalf("evs should be unknown: %+v", r.EVs)
	}
	for i, v := range r.EVs.Values {
		if v != record.NotFound {
			t.Fatalf("ev component %d = %q", i, v)
		}
	}
}

func TestNameMatching(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{name: "close misread", text: "Lv 12 Pikuchu", want: "Pikachu"},
		{name: "exact", text: "Lv12 Eevee", want: "Eevee"},
		{name: "nothing close", text: "Lv 12 Zzzxyz", want: record.Unknown},
		{name: "level with dot", text: "Lv. 3 Charizerd", want: "Charizard"},
	}

	x := New(testVocabulary(), DefaultValueConfig())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := x.Extract(tc.text)
			if r.Name != tc.want {
				t.Fatalf("got %q want %q", r.Name, tc.want)
			}
		})
	}
}

func TestRatcliffObershelp(t *testing.T) {
	score := RatcliffObershelp("Pikachu", "Pikuchu")
	if score < 0.7 {
		t.Fatalf("Pikachu/Pikuchu scored %v", score)
	}
	if RatcliffObershelp("Pikachu", "Pikachu") != 1 {
		t.Fatalf("identical strings must score 1")
	}
	if RatcliffObershelp("Pikachu", "Zzzxyz") >= 0.7 {
		t.Fatalf("unrelated strings scored too high")
	}
}

func TestClosestMatchTieKeepsVocabularyOrder(t *testing.T) {
	best, score, ok := ClosestMatch("Pikachx", []string{"Pikachu", "Pikachy"}, 0.7, RatcliffObershelp)
	if !ok || best != "Pikachu" {
		t.Fatalf("got %q (%v, %v), want first entry", best, score, ok)
	}

	best, _, ok = ClosestMatch("Pikachx", []string{"Pikachy", "Pikachu"}, 0.7, RatcliffObershelp)
	if !ok || best != "Pikachy" {
		t.Fatalf("got %q, want first entry", best)
	}
}

func TestCustomSimilarity(t *testing.T) {
	x := New(testVocabulary(), DefaultValueConfig())
	x.Similarity = func(candidate, word string) float64 {
		if strings.EqualFold(candidate, word) {
			return 1
		}
		return 0
	}
	if r := x.Extract("Lv1 EEVEE"); r.Name != "Eevee" {
		t.Fatalf("got %q", r.Name)
	}
	if r := x.Extract("Lv1 Pikuchu"); r.Name != record.Unknown {
		t.Fatalf("got %q", r.Name)
	}
}

func TestMovesAreDeduplicatedCaseInsensitively(t *testing.T) {
	x := New(testVocabulary(), DefaultValueConfig())
	r := x.Extract("Lv5 Eevee tackle TACKLE Tackle")
	if !reflect.DeepEqual(r.Moves, []string{"Tackle"}) {
		t.Fatalf("got %q", r.Moves)
	}
}

func TestMovesKeepFirstOccurrenceOrder(t *testing.T) {
	x := New(testVocabulary(), DefaultValueConfig())
	r := x.Extract("Lv36 Charizard growl EMBER thunder punch Growl")
	want := []string{"Growl", "Ember", "Thunder punch"}
	if !reflect.DeepEqual(r.Moves, want) {
		t.Fatalf("got %q want %q", r.Moves, want)
	}
}

func TestMovesAreCappedAtFour(t *testing.T) {
	x := New(testVocabulary(), DefaultValueConfig())
	r := x.Extract("Flamethrower Tackle Growl Ember Thunder Punch")
	want := []string{"Flamethrower", "Tackle", "Growl", "Ember"}
	if !reflect.DeepEqual(r.Moves, want) {
		t.Fatalf("got %q want %q", r.Moves, want)
	}
}

func TestEmptyMoveVocabulary(t *testing.T) {
	v := testVocabulary()
	v.Moves = nil
	x := New(v, DefaultValueConfig())

	r := x.Extract("Lv5 Eevee Tackle Growl Ember")
	if !reflect.DeepEqual(r.Moves, []string{record.NotFound}) {
		t.Fatalf("got %q", r.Moves)
	}
}

func TestAbility(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{name: "leftmost wins", text: "Lv5 Pikachu Static Blaze", want: "Static"},
		{name: "capitalized", text: "Lv5 Charizard SOLAR POWER", want: "Solar power"},
		{name: "whole word only", text: "Lv5 Charizard Blazes", want: record.NotFound},
		{name: "absent", text: "Lv5 Charizard", want: record.NotFound},
	}

	x := New(testVocabulary(), DefaultValueConfig())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := x.Extract(tc.text).Ability; got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestEmptyAbilityVocabulary(t *testing.T) {
	v := testVocabulary()
	v.Abilities = []string{}
	x := New(v, DefaultValueConfig())
	if got := x.Extract("Lv5 Pikachu Static").Ability; got != record.NotFound {
		t.Fatalf("got %q", got)
	}
}

func TestNature(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "Nature: Timid", want: "Timid"},
		{text: "nature jolly", want: "Jolly"},
		{text: "NATURE:MODEST", want: "Modest"},
		{text: "Nature: Serious", want: record.NotFound},
		{text: "Timid", want: record.NotFound},
	}
	for _, tc := range cases {
		if got := nature(tc.text); got != tc.want {
			t.Fatalf("nature(%q) = %q want %q", tc.text, got, tc.want)
		}
	}
}

func TestSextupletGrammar(t *testing.T) {
	cases := []struct {
		name string
		text string
		ivs  string
		evs  string
	}{
		{name: "both", text: "IVs: 31/0/31/31/31/31 EVs: 252/0/0/252/4/0", ivs: "31/0/31/31/31/31", evs: "252/0/0/252/4/0"},
		{name: "no colon", text: "IVs 1/2/3/4/5/6", ivs: "1/2/3/4/5/6", evs: record.NotFound},
		{name: "three digit IV rejected", text: "IVs: 310/31/31/31/31/31", ivs: record.NotFound, evs: record.NotFound},
		{name: "five groups", text: "IVs: 31/31/31/31/31 EVs: 1/2/3/4/5", ivs: record.NotFound, evs: record.NotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ivs := sextuplet(ivsRegexp, tc.text)
			evs := sextuplet(evsRegexp, tc.text)
			if ivs.String() != tc.ivs || evs.String() != tc.evs {
				t.Fatalf("got ivs %q evs %q", ivs.String(), evs.String())
			}
			for _, s := range []record.Sextuplet{ivs, evs} {
				if s.Known() && len(strings.Split(s.Raw, "/")) != 6 {
					t.Fatalf("expected six components in %q", s.Raw)
				}
			}
		})
	}
}
