// Package reconcile implements the matching-and-merge engine: identifier
// indexes over template rows, the matcher that attaches record ids from
// data rows, and the deterministic ordering of the result set.
package reconcile

import (
	"github.com/agentstation/authormatch/pkg/identifier"
	"github.com/agentstation/authormatch/pkg/tabular"
)

// Index maps case-folded identifiers to template row positions.
// Positions keep insertion order; an identifier that is blank after
// trimming is never indexed, so blank keys can never match everything.
type Index struct {
	byEmail    map[string][]int
	byAuthorID map[string][]int
}

// BuildIndex builds the email and author-id indexes over the full set
// of normalized template rows. Building is O(N) in row count.
func BuildIndex(rows []tabular.Row) *Index {
	ix := &Index{
		byEmail:    make(map[string][]int),
		byAuthorID: make(map[string][]int),
	}

	for pos, row := range rows {
		for _, email := range identifier.Emails(row) {
			ix.byEmail[email] = append(ix.byEmail[email], pos)
		}
		for _, id := range identifier.AuthorIDs(row) {
			ix.byAuthorID[id] = append(ix.byAuthorID[id], pos)
		}
	}

	return ix
}

// Emails looks up template positions by case-folded email.
func (ix *Index) Emails(key string) []int {
	return ix.byEmail[key]
}

// AuthorIDs looks up template positions by case-folded author id.
func (ix *Index) AuthorIDs(key string) []int {
	return ix.byAuthorID[key]
}

// Size returns the number of distinct indexed identifiers.
func (ix *Index) Size() int {
	return len(ix.byEmail) + len(ix.byAuthorID)
}
