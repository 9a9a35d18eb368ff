package tabular

import (
	"strings"
)

// bom is the UTF-8 byte-order mark some exports prepend.
const bom = "\ufeff"

// DetectDelimiter inspects the first line only: a comma anywhere on it
// selects comma, otherwise tab. Known limitation: a quoted comma on the
// first line of a tab-delimited file mis-detects; kept for behavior
// parity with the inputs this tool targets.
func DetectDelimiter(firstLine string) byte {
	if strings.Contains(firstLine, ",") {
		return ','
	}
	return '\t'
}

// Parse turns raw delimited text into a table. The first non-blank line
// is the header row; every subsequent non-blank line becomes one row.
// Short rows are padded with empty strings, extra fields are dropped.
// Empty input yields a table with zero rows; severity is the caller's
// decision (fatal for a template, a skip for a data file).
func Parse(text string) *Table {
	text = strings.TrimPrefix(text, bom)
	text = strings.TrimSpace(text)

	table := &Table{}
	if text == "" {
		return table
	}

	lines := strings.Split(text, "\n")
	delim := DetectDelimiter(lines[0])

	// Headers are split plainly, not quote-aware, and are not
	// deduplicated: a repeated header overwrites earlier values.
	headers := strings.Split(lines[0], string(delim))
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
		table.AddColumn(headers[i])
	}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitFields(line, delim)
		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// splitFields splits one line on delim honoring the simplified quote
// rule: a double-quote toggles the in-quotes state unless immediately
// preceded by a backslash; delimiters inside quotes are literal text.
// This is not RFC 4180: doubled-quote escapes are passed through
// untouched. Fields are trimmed of surrounding whitespace.
func splitFields(line string, delim byte) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && (i == 0 || line[i-1] != '\\'):
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
