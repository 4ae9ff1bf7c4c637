/*
Package sink writes records as rows of the collection spreadsheet.

The column order is fixed. Columns the scanner cannot fill (id, types, tier,
tags and the administrative columns at the end) stay blank and are filled in
by hand later.
*/
package sink

import (
	"strconv"

	"stat-scanner/src/pkg/record"
)

// Header names the columns of Row. Only the workbook export writes it.
var Header = []string{
	"ID", "Pokemon Name", "Type 1", "Type 2", "Tier", "Tags",
	"Alpha", "Shiny", "HA", "Nature", "Level",
	"IVs", "IV HP", "IV Atk", "IV Def", "IV Sp. Atk", "IV Sp. Def", "IV Spd",
	"EVs", "EV HP", "EV Atk", "EV Def", "EV Sp. Atk", "EV Sp. Def", "EV Spd",
	"Ability", "Move1", "Move2", "Move3", "Move4",
	"On team", "Owned by", "Held By", "Date Rented", "Queue",
}

// Row flattens r into len(Header) cells.
func Row(r record.Record) []string {
	row := make([]string, 0, len(Header))
	row = append(row, "", r.Name, "", "", "", "")
	row = append(row,
		strconv.FormatBool(r.IsAlpha),
		strconv.FormatBool(r.IsShiny),
		strconv.FormatBool(r.IsHiddenAbility),
		r.Nature,
		r.Level,
	)
	row = append(row, r.IVs.String())
	row = append(row, r.IVs.Values[:]...)
	row = append(row, r.EVs.String())
	row = append(row, r.EVs.Values[:]...)
	row = append(row, r.Ability)

	moves := r.MoveSlots()
	row = append(row, moves[:]...)
	row = append(row, "", "", "", "", "")
	return row
}
