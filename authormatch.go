// Package authormatch reconciles a template roster of persons/authors
// with bibliographic data files, merging record identifiers into the
// template structure. The core is pure: raw file bytes in, ordered
// output rows out. File selection, preview rendering, and downloads are
// adapters on top (see cmd/authormatch and pkg/export).
package authormatch

import (
	"github.com/agentstation/authormatch/pkg/logging"
	"github.com/agentstation/authormatch/pkg/reconcile"
	"github.com/agentstation/authormatch/pkg/schema"
	"github.com/agentstation/authormatch/pkg/tabular"
)

// Option configures a reconciliation run.
type Option = reconcile.Option

// Re-exported options so callers configure runs without importing the
// engine package.
var (
	WithSynthesizeUnmatched = reconcile.WithSynthesizeUnmatched
	WithMatchKeys           = reconcile.WithMatchKeys
	WithSortStrategy        = reconcile.WithSortStrategy
)

// Reconcile parses, normalizes, matches, and orders in one pass.
// template holds the roster file's raw bytes; dataFiles holds each data
// file's raw bytes in the order the files were supplied. Data files
// that parse to zero rows are skipped; an empty template, a data set
// with zero usable rows, and an empty result are terminal errors.
func Reconcile(template []byte, dataFiles [][]byte, opts ...Option) (*reconcile.Result, error) {
	r, err := reconcile.New(opts...)
	if err != nil {
		return nil, err
	}

	templateTable := schema.NormalizeTable(tabular.Parse(string(template)))
	logging.Debug().Int("rows", templateTable.Len()).Msg("Parsed template")

	dataTables := make([]*tabular.Table, 0, len(dataFiles))
	for i, raw := range dataFiles {
		table := schema.NormalizeTable(tabular.Parse(string(raw)))
		if table.Len() == 0 {
			logging.Warn().Int("file", i+1).Msg("Data file yielded no rows, skipping")
		}
		dataTables = append(dataTables, table)
	}

	return r.Reconcile(templateTable, dataTables)
}
