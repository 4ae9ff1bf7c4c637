package report

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
)

var statLabels = [6]string{"HP", "Atk", "Def", "Sp. Atk", "Sp. Def", "Spd"}

// RenderHTML renders the summary as one page with inline CSS only.
func RenderHTML(s Summary) string {
	var buffer bytes.Buffer

	buffer.WriteString("<!doctype html>")
	buffer.WriteString("<html>")
	buffer.WriteString("<head>")
	buffer.WriteString(`<meta charset="utf-8">`)
	buffer.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	buffer.WriteString(`<title>` + html.EscapeString(s.Title) + `</title>`)
	buffer.WriteString("</head>")

	bodyStyle := "margin:0;padding:0;background-color:#F3F4F6;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Inter,Arial,sans-serif;color:#111827;"
	buffer.WriteString(`<body style="` + bodyStyle + `">`)
	buffer.WriteString(`<div style="max-width:680px;margin:0 auto;padding:24px;">`)

	// Header.
	buffer.WriteString(`<div style="padding:8px 4px 18px 4px;">`)
	buffer.WriteString(`<div style="font-size:24px;font-weight:800;line-height:1.2;">` + html.EscapeString(s.Title) + `</div>`)
	buffer.WriteString(`<div style="margin-top:6px;font-size:13px;line-height:1.5;color:#6B7280;">`)
	buffer.WriteString(`Records: <span style="font-weight:700;color:#111827;">` + formatIntHuman(s.RecordCount) + `</span>`)
	buffer.WriteString(` &nbsp;•&nbsp; Generated: <span style="font-weight:700;color:#111827;">` + s.GeneratedAt.Format("2006-01-02 15:04") + `</span>`)
	buffer.WriteString(`</div>`)
	buffer.WriteString(`</div>`)

	// Badge counters.
	buffer.WriteString(cardOpen())
	buffer.WriteString(`<table role="presentation" width="100%" style="border-collapse:collapse;"><tr>`)
	writeCounter(&buffer, "Shiny", s.ShinyCount, s.RecordCount)
	writeCounter(&buffer, "Alpha", s.AlphaCount, s.RecordCount)
	writeCounter(&buffer, "Hidden ability", s.HiddenAbilityCount, s.RecordCount)
	buffer.WriteString(`</tr></table>`)
	buffer.WriteString(cardClose())

	writeBreakdown(&buffer, "Species", "Most scanned creatures.", s.Names)
	writeBreakdown(&buffer, "Natures", "Share of records per nature.", s.Natures)
	writeBreakdown(&buffer, "Moves", "Share of records that know the move.", s.Moves)

	// Average IVs.
	buffer.WriteString(cardOpen())
	buffer.WriteString(`<div style="padding:16px 18px;">`)
	buffer.WriteString(`<div style="font-size:14px;font-weight:800;">Average IVs</div>`)
	buffer.WriteString(`<div style="margin-top:4px;font-size:12px;color:#6B7280;">Over ` + formatIntHuman(s.IVSampleCount) + ` records with readable IVs.</div>`)
	buffer.WriteString(`<table role="presentation" width="100%" style="margin-top:10px;border-collapse:collapse;font-size:13px;"><tr>`)
	for i, label := range statLabels {
		buffer.WriteString(`<td align="center" style="padding:6px;"><div style="color:#6B7280;">` + label + `</div>`)
		buffer.WriteString(`<div style="font-weight:900;">` + fmt.Sprintf("%.1f", s.AverageIVs[i]) + `</div></td>`)
	}
	buffer.WriteString(`</tr></table>`)
	buffer.WriteString(`</div>`)
	buffer.WriteString(cardClose())

	// Notes.
	buffer.WriteString(cardOpen())
	buffer.WriteString(`<div style="padding:16px 18px;">`)
	buffer.WriteString(`<div style="font-size:13px;font-weight:900;">Notes</div>`)
	buffer.WriteString(`<div style="margin-top:10px;font-size:12px;line-height:1.7;color:#6B7280;">`)
	for _, note := range s.Notes {
		buffer.WriteString(`• ` + html.EscapeString(note) + `<br>`)
	}
	buffer.WriteString(`</div>`)
	buffer.WriteString(`</div>`)
	buffer.WriteString(cardClose())

	buffer.WriteString(`</div>`)
	buffer.WriteString(`</body>`)
	buffer.WriteString(`</html>`)
	return buffer.String()
}

func writeCounter(buffer *bytes.Buffer, label string, count int, total int) {
	percent := 0.0
	if total > 0 {
		percent = float64(count) / float64(total) * 100
	}
	buffer.WriteString(`<td align="center" style="padding:18px 8px;">`)
	buffer.WriteString(`<div style="font-size:12px;letter-spacing:0.10em;text-transform:uppercase;color:#6B7280;">` + html.EscapeString(label) + `</div>`)
	buffer.WriteString(`<div style="margin-top:6px;font-size:30px;font-weight:900;line-height:1.1;">` + formatIntHuman(count) + `</div>`)
	buffer.WriteString(`<div style="margin-top:4px;font-size:12px;font-weight:800;color:#6B7280;">` + fmt.Sprintf("%.1f%%", percent) + `</div>`)
	buffer.WriteString(`</td>`)
}

func writeBreakdown(buffer *bytes.Buffer, title string, subtitle string, rows []Row) {
	buffer.WriteString(cardOpen())
	buffer.WriteString(`<div style="padding:16px 18px;">`)
	buffer.WriteString(`<div style="font-size:14px;font-weight:800;">` + html.EscapeString(title) + `</div>`)
	buffer.WriteString(`<div style="margin-top:4px;font-size:12px;color:#6B7280;">` + html.EscapeString(subtitle) + `</div>`)

	if len(rows) == 0 {
		buffer.WriteString(`<div style="margin-top:10px;padding:14px;border:1px dashed #D1D5DB;border-radius:12px;background-color:#FAFAFA;color:#6B7280;font-size:13px;">Nothing recognized yet.</div>`)
	}
	for _, row := range rows {
		buffer.WriteString(`<div style="margin-top:12px;">`)
		buffer.WriteString(`<table role="presentation" width="100%" style="border-collapse:collapse;"><tr>`)
		buffer.WriteString(`<td><div style="display:inline-block;width:10px;height:10px;border-radius:999px;background-color:` + row.Color + `;margin-right:8px;"></div>`)
		buffer.WriteString(`<span style="font-size:14px;font-weight:800;">` + html.EscapeString(row.Label) + `</span></td>`)
		buffer.WriteString(`<td align="right" style="font-size:13px;font-weight:900;">` + formatIntHuman(row.Count))
		buffer.WriteString(` <span style="font-size:12px;color:#6B7280;">` + fmt.Sprintf("%.1f%%", row.Percent) + `</span></td>`)
		buffer.WriteString(`</tr></table>`)
		buffer.WriteString(`<div style="margin-top:6px;width:100%;height:10px;border-radius:999px;background-color:#EEF2FF;overflow:hidden;">`)
		buffer.WriteString(`<div style="height:10px;width:` + strconv.Itoa(row.BarPercent) + `%;background-color:` + row.Color + `;"></div>`)
		buffer.WriteString(`</div>`)
		buffer.WriteString(`</div>`)
	}

	buffer.WriteString(`</div>`)
	buffer.WriteString(cardClose())
}

func cardOpen() string {
	return `<div style="margin-bottom:18px;background-color:#FFFFFF;border:1px solid #E5E7EB;border-radius:16px;box-shadow:0 8px 24px rgba(17,24,39,0.06);overflow:hidden;">`
}

func cardClose() string {
	return `</div>`
}

// formatIntHuman formats a count with comma separators.
func formatIntHuman(value int) string {
	raw := strconv.Itoa(value)
	sign := ""
	if value < 0 {
		sign, raw = "-", raw[1:]
	}
	if len(raw) <= 3 {
		return sign + raw
	}

	firstGroupLen := len(raw) % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	var buffer bytes.Buffer
	buffer.WriteString(sign + raw[:firstGroupLen])
	for index := firstGroupLen; index < len(raw); index += 3 {
		buffer.WriteString(",")
		buffer.WriteString(raw[index : index+3])
	}
	return buffer.String()
}
