package export

import (
	"html"
	"strings"

	"github.com/agentstation/authormatch/pkg/tabular"
)

// RenderHTMLTable renders the result set as an HTML table for preview
// or report embedding. Every cell value is escaped before render.
func RenderHTMLTable(columns []string, rows []tabular.Row) string {
	if len(rows) == 0 {
		return "<p>No results.</p>"
	}

	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, col := range columns {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")

	for _, row := range rows {
		b.WriteString("<tr>")
		for _, col := range columns {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(row.Get(col)))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")

	return b.String()
}
