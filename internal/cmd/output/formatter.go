// Package output provides formatters for rendering the reconciled
// result set on the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/agentstation/authormatch/pkg/export"
	"github.com/agentstation/authormatch/pkg/reconcile"
)

// Format types for output.
type Format string

const (
	// FormatTable represents terminal table output.
	FormatTable Format = "table"
	// FormatJSON represents JSON output.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output.
	FormatYAML Format = "yaml"
	// FormatHTML represents an HTML preview table.
	FormatHTML Format = "html"
)

// Formatter renders a result to a writer.
type Formatter interface {
	Format(w io.Writer, result *reconcile.Result) error
}

// NewFormatter creates the appropriate formatter for the format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatHTML:
		return &HTMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// TableFormatter renders the result as a terminal table.
type TableFormatter struct{}

// Format implements the Formatter interface.
func (f *TableFormatter) Format(w io.Writer, result *reconcile.Result) error {
	table := tablewriter.NewTable(w)

	headers := make([]any, len(result.Columns))
	for i, col := range result.Columns {
		headers[i] = col
	}
	table.Header(headers...)

	for _, row := range result.Rows {
		cells := make([]any, len(result.Columns))
		for i, col := range result.Columns {
			cells[i] = row.Get(col)
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	return table.Render()
}

// JSONFormatter renders the result rows as a JSON array.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface.
func (f *JSONFormatter) Format(w io.Writer, result *reconcile.Result) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(result.Rows)
}

// YAMLFormatter renders the result rows as a YAML sequence.
type YAMLFormatter struct{}

// Format implements the Formatter interface.
func (f *YAMLFormatter) Format(w io.Writer, result *reconcile.Result) error {
	data, err := yaml.MarshalWithOptions(result.Rows,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// HTMLFormatter renders the result as an escaped HTML table.
type HTMLFormatter struct{}

// Format implements the Formatter interface.
func (f *HTMLFormatter) Format(w io.Writer, result *reconcile.Result) error {
	_, err := io.WriteString(w, export.RenderHTMLTable(result.Columns, result.Rows))
	return err
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}

	// Default to JSON for pipes/redirects
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatHTML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml, html", s)
	}
}
