package reconcile

import (
	"fmt"
	"time"

	"github.com/agentstation/authormatch/pkg/tabular"
)

// Result represents the outcome of a reconciliation run.
type Result struct {
	// Rows is the ordered output sequence: every template row at least
	// once, plus one appended copy per matched record.
	Rows []tabular.Row

	// Columns is the union of output row keys in first-seen order,
	// used for preview rendering and export headers.
	Columns []string

	// Metadata about the run.
	Metadata Metadata
}

// Metadata contains metadata about the reconciliation process.
type Metadata struct {
	// StartTime when reconciliation started
	StartTime time.Time

	// EndTime when reconciliation completed
	EndTime time.Time

	// Duration of the reconciliation
	Duration time.Duration

	// MatchKeys used for matching
	MatchKeys MatchKeys

	// Sort strategy used for output ordering
	Sort SortStrategy

	// Stats about the reconciliation
	Stats Statistics
}

// Statistics counts what happened to the input rows.
type Statistics struct {
	TemplateRows int
	DataRows     int
	DataFiles    int
	Matched      int // data rows that matched at least one template row
	FanOut       int // output rows appended by matches
	Skipped      int // data rows with no resolvable record id
	Orphaned     int // data rows with a record id but no template match
	Synthesized  int // minimal rows created for orphans (when enabled)
}

// Len returns the number of output rows.
func (r *Result) Len() int {
	return len(r.Rows)
}

// Summary returns a human-readable summary of the run, mirroring the
// original tool's status line.
func (r *Result) Summary() string {
	return fmt.Sprintf("Processed %d rows from %d data files.", len(r.Rows), r.Metadata.Stats.DataFiles)
}

// newResult creates a result with run metadata initialized.
func newResult(matchKeys MatchKeys, sort SortStrategy) *Result {
	return &Result{
		Metadata: Metadata{
			StartTime: time.Now(),
			MatchKeys: matchKeys,
			Sort:      sort,
		},
	}
}

// finalize calculates duration and marks completion.
func (r *Result) finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}
