// Package export serializes the reconciled result set: CSV and XLSX
// files for download, and an HTML preview table.
package export

import (
	"io"
	"strings"

	"github.com/agentstation/authormatch/pkg/errors"
	"github.com/agentstation/authormatch/pkg/tabular"
)

// Default export filenames. The populated-template name is used when
// unmatched data rows are synthesized into the output.
const (
	DefaultCSVFilename   = "matched_authors.csv"
	PopulatedCSVFilename = "populated_template.csv"
	DefaultXLSXFilename  = "matched_authors.xlsx"
	ResultsSheetName     = "Results"
)

// WriteCSV writes the result set as CSV: a plain header row, then every
// field double-quote-wrapped with internal quotes doubled. Rows and
// columns must already be in final order.
func WriteCSV(w io.Writer, columns []string, rows []tabular.Row) error {
	var b strings.Builder

	b.WriteString(strings.Join(columns, ","))
	b.WriteByte('\n')

	for _, row := range rows {
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(row.Get(col), `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.WrapExport("csv", "", err)
	}
	return nil
}
