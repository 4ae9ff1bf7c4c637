// Package record holds the structured stat-screen record and its sentinels.
package record

import (
	"strconv"
	"strings"
)

const (
	// Unknown marks an unresolved name or level.
	Unknown = "Unknown"
	// NotFound marks every other unresolved field.
	NotFound = "Not Found"

	// MaxMoves is the number of move slots on the stat screen.
	MaxMoves = 4
)

// Stat order of a Sextuplet.
const (
	HP = iota
	Attack
	Defense
	SpecialAttack
	SpecialDefense
	Speed
)

// BadgeFlags are the three status icons. Any combination is valid.
type BadgeFlags struct {
	IsShiny         bool `json:"is_shiny"`
	IsAlpha         bool `json:"is_alpha"`
	IsHiddenAbility bool `json:"is_hidden_ability"`
}

/*
Sextuplet is an IV or EV spread in HP/Atk/Def/SpA/SpD/Spe order.

Either all six components are digit strings taken verbatim from the text, or
the value is unknown and every component renders as NotFound.
*/
type Sextuplet struct {
	Raw    string    `json:"raw"`
	Values [6]string `json:"values"`
}

// UnknownSextuplet returns the all-sentinel spread.
func UnknownSextuplet() Sextuplet {
	s := Sextuplet{Raw: NotFound}
	for i := range s.Values {
		s.Values[i] = NotFound
	}
	return s
}

/*
ParseSextuplet splits "31/31/31/31/31/31" into six components. It returns the
unknown spread unless there are exactly six non-empty all-digit groups.
*/
func ParseSextuplet(raw string) Sextuplet {
	parts := strings.Split(raw, "/")
	if len(parts) != 6 {
		return UnknownSextuplet()
	}
	s := Sextuplet{Raw: raw}
	for i, part := range parts {
		if part == "" || strings.Trim(part, "0123456789") != "" {
			return UnknownSextuplet()
		}
		s.Values[i] = part
	}
	return s
}

// Known reports whether the spread holds concrete values.
func (s Sextuplet) Known() bool {
	return s.Raw != "" && s.Raw != NotFound
}

// Ints returns the six values as integers; ok is false for the unknown spread.
func (s Sextuplet) Ints() (values [6]int, ok bool) {
	if !s.Known() {
		return values, false
	}
	for i, v := range s.Values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return [6]int{}, false
		}
		values[i] = n
	}
	return values, true
}

// String renders the raw spread or the sentinel.
func (s Sextuplet) String() string {
	if !s.Known() {
		return NotFound
	}
	return s.Raw
}

// Record is one processed screenshot.
type Record struct {
	Name    string    `json:"pokemon_name"`
	Level   string    `json:"level"`
	IVs     Sextuplet `json:"ivs"`
	EVs     Sextuplet `json:"evs"`
	Nature  string    `json:"nature"`
	Ability string    `json:"ability"`
	Moves   []string  `json:"moves"`

	BadgeFlags

	SourcePath  string `json:"source_path,omitempty"`
	ContentHash string `json:"content_hash,omitempty"`
}

// Empty returns a record with every field set to its sentinel.
func Empty() Record {
	return Record{
		Name:    Unknown,
		Level:   Unknown,
		IVs:     UnknownSextuplet(),
		EVs:     UnknownSextuplet(),
		Nature:  NotFound,
		Ability: NotFound,
		Moves:   []string{NotFound},
	}
}

// MoveSlots returns exactly MaxMoves entries, padded with "".
func (r Record) MoveSlots() [MaxMoves]string {
	var slots [MaxMoves]string
	for i := 0; i < len(r.Moves) && i < MaxMoves; i++ {
		slots[i] = r.Moves[i]
	}
	return slots
}
