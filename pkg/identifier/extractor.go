// Package identifier extracts matching identifiers (emails, ORCID-style
// author ids, WOS accession codes) out of free-form row fields.
package identifier

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/authormatch/pkg/schema"
	"github.com/agentstation/authormatch/pkg/tabular"
)

var (
	// orcidPattern matches four groups of four digits separated by hyphens.
	orcidPattern = regexp.MustCompile(`\d{4}-\d{4}-\d{4}-\d{4}`)

	// wosPattern matches a WOS accession code embedded in free text.
	wosPattern = regexp.MustCompile(`WOS:\d+`)
)

// Set holds every candidate identifier extracted from one data row.
type Set struct {
	Emails     []string // case-folded email candidates
	AuthorIDs  []string // case-folded author-id candidates
	RecordID   string   // WOS accession code (UT)
	DocumentID string   // DOI or explicit document id
}

// HasRecordID reports whether the row resolved an accession code.
// Rows without one contribute nothing to the merge.
func (s Set) HasRecordID() bool {
	return s.RecordID != ""
}

// Extract pulls all candidate identifiers from a normalized data row.
func Extract(row tabular.Row) Set {
	return Set{
		Emails:     Emails(row),
		AuthorIDs:  AuthorIDs(row),
		RecordID:   RecordID(row),
		DocumentID: DocumentID(row),
	}
}

// Fold case-folds an identifier for use as a lookup key.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Emails returns the email candidates of a row. A semicolon-separated
// multi-valued field is split and filtered to tokens containing '@';
// otherwise the single trimmed value is the sole candidate.
func Emails(row tabular.Row) []string {
	value := row.Get(schema.FieldEmailAddress)
	if strings.Contains(value, ";") {
		var emails []string
		for _, token := range strings.Split(value, ";") {
			token = Fold(strings.TrimSpace(token))
			if strings.Contains(token, "@") {
				emails = append(emails, token)
			}
		}
		return emails
	}

	single := Fold(strings.TrimSpace(value))
	if single == "" {
		return nil
	}
	return []string{single}
}

// AuthorIDs returns the author-id candidates of a row: every ORCID
// pattern found in the raw field, or the whole trimmed value when the
// field holds a plain identifier with no pattern in it.
func AuthorIDs(row tabular.Row) []string {
	value := row.Get(schema.FieldAuthorID)

	matches := orcidPattern.FindAllString(value, -1)
	if len(matches) > 0 {
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, Fold(m))
		}
		return ids
	}

	plain := Fold(strings.TrimSpace(value))
	if plain == "" {
		return nil
	}
	return []string{plain}
}

// RecordID returns the WOS accession code of a row: the explicit UT
// field when present, else the first WOS:digits token found anywhere in
// the row's values. Fields are scanned in sorted key order so the
// fallback is deterministic.
func RecordID(row tabular.Row) string {
	if ut := strings.TrimSpace(row.Get(schema.FieldUT)); ut != "" {
		return ut
	}

	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var all strings.Builder
	for _, k := range keys {
		all.WriteString(row[k])
		all.WriteByte(' ')
	}
	return wosPattern.FindString(all.String())
}

// DocumentID returns the document id of a row, preferring the canonical
// DocumentID field and falling back to a DOI-named column.
func DocumentID(row tabular.Row) string {
	if doc := strings.TrimSpace(row.Get(schema.FieldDocumentID)); doc != "" {
		return doc
	}
	return strings.TrimSpace(row.Get(schema.FieldDOI))
}
