package reconcile

import (
	"sort"

	"github.com/agentstation/authormatch/pkg/errors"
	"github.com/agentstation/authormatch/pkg/identifier"
	"github.com/agentstation/authormatch/pkg/logging"
	"github.com/agentstation/authormatch/pkg/schema"
	"github.com/agentstation/authormatch/pkg/tabular"
)

// Reconciler matches data rows against a template roster and merges
// record identifiers into copies of the matched template rows.
type Reconciler struct {
	opts *options
}

// New creates a Reconciler with the given options.
func New(opts ...Option) (*Reconciler, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Reconciler{opts: o}, nil
}

// Reconcile runs the full matching pass. Both inputs must already be
// normalized to the canonical schema. The template table is the single
// roster file; dataTables holds one table per data file, in the order
// the files were supplied, so output is reproducible run-to-run.
//
// An empty template, an empty data-file set, and an empty result are
// all terminal errors; no partial output is returned.
func (r *Reconciler) Reconcile(template *tabular.Table, dataTables []*tabular.Table) (*Result, error) {
	if template == nil || template.Len() == 0 {
		return nil, errors.ErrEmptyTemplate
	}

	dataRows := 0
	for _, t := range dataTables {
		if t != nil {
			dataRows += t.Len()
		}
	}
	if dataRows == 0 {
		return nil, errors.ErrNoValidData
	}

	result := newResult(r.opts.matchKeys, r.opts.sort)
	result.Metadata.Stats.TemplateRows = template.Len()
	result.Metadata.Stats.DataRows = dataRows
	result.Metadata.Stats.DataFiles = len(dataTables)

	index := BuildIndex(template.Rows)
	logging.Debug().
		Int("template_rows", template.Len()).
		Int("identifiers", index.Size()).
		Msg("Built template indexes")

	// Column order: template columns first, merge targets appended as
	// they are first written.
	columns := &tabular.Table{}
	for _, col := range template.Columns {
		columns.AddColumn(col)
	}

	// Seed with every template row, verbatim, in original order. These
	// seeds are never mutated; matches append copies instead.
	for _, row := range template.Rows {
		result.Rows = append(result.Rows, row.Clone())
	}

	for _, data := range dataTables {
		if data == nil {
			continue
		}
		for _, row := range data.Rows {
			set := identifier.Extract(row)
			if !set.HasRecordID() {
				result.Metadata.Stats.Skipped++
				continue
			}

			matches := r.resolve(index, set)
			if len(matches) == 0 {
				result.Metadata.Stats.Orphaned++
				if r.opts.synthesizeUnmatched {
					result.Rows = append(result.Rows, synthesize(row, set))
					result.Metadata.Stats.Synthesized++
					for _, f := range schema.CanonicalFields {
						columns.AddColumn(f)
					}
				}
				continue
			}

			result.Metadata.Stats.Matched++
			for _, pos := range matches {
				merged := template.Rows[pos].Clone()
				merged[schema.FieldUT] = set.RecordID
				columns.AddColumn(schema.FieldUT)
				if set.DocumentID != "" {
					merged[schema.FieldDocumentID] = set.DocumentID
					columns.AddColumn(schema.FieldDocumentID)
				}
				result.Rows = append(result.Rows, merged)
				result.Metadata.Stats.FanOut++
			}
		}
	}

	if len(result.Rows) == 0 {
		return nil, errors.ErrNoOutput
	}

	sort.SliceStable(result.Rows, func(i, j int) bool {
		return r.opts.sort.less()(result.Rows[i], result.Rows[j])
	})

	result.Columns = columns.Columns
	result.finalize()

	logging.Info().
		Int("output_rows", len(result.Rows)).
		Int("matched", result.Metadata.Stats.Matched).
		Int("skipped", result.Metadata.Stats.Skipped).
		Int("orphaned", result.Metadata.Stats.Orphaned).
		Str("sort", r.opts.sort.String()).
		Msg("Reconciliation complete")

	return result, nil
}

// resolve returns the set union of template positions matched by any of
// the row's email or author-id candidates, in discovery order.
// Duplicate positions collapse; email and author-id matches are never
// prioritized over each other.
func (r *Reconciler) resolve(index *Index, set identifier.Set) []int {
	var matches []int
	seen := make(map[int]bool)

	add := func(positions []int) {
		for _, pos := range positions {
			if !seen[pos] {
				seen[pos] = true
				matches = append(matches, pos)
			}
		}
	}

	if r.opts.matchKeys == MatchKeysEmail || r.opts.matchKeys == MatchKeysBoth {
		for _, email := range set.Emails {
			add(index.Emails(email))
		}
	}
	if r.opts.matchKeys == MatchKeysAuthorID || r.opts.matchKeys == MatchKeysBoth {
		for _, id := range set.AuthorIDs {
			add(index.AuthorIDs(id))
		}
	}

	return matches
}

// synthesize builds a minimal output row from an unmatched data row's
// own canonical fields.
func synthesize(row tabular.Row, set identifier.Set) tabular.Row {
	out := make(tabular.Row, len(schema.CanonicalFields))
	for _, f := range schema.CanonicalFields {
		out[f] = row.Get(f)
	}
	out[schema.FieldDocumentID] = set.DocumentID
	out[schema.FieldUT] = set.RecordID
	return out
}
