// Package tabular provides the row data model and the delimiter-agnostic
// parser for heterogeneous CSV/TSV inputs.
package tabular

// Row is a mapping from field name to string value. Missing fields are
// represented as empty string, never absent.
type Row map[string]string

// Get returns the value for key, or empty string when absent.
func (r Row) Get(key string) string {
	return r[key]
}

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of rows sharing a column set.
// Columns preserves first-seen header order; Go maps do not.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table already tracks the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column name unless it is already tracked.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
