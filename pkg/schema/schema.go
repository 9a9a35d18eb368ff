// Package schema maps heterogeneous column names onto the canonical
// field set shared by template and data files.
package schema

import (
	"strings"

	"github.com/agentstation/authormatch/pkg/tabular"
)

// Canonical field names.
const (
	FieldPersonID       = "PersonID"
	FieldFirstName      = "FirstName"
	FieldLastName       = "LastName"
	FieldOrganizationID = "OrganizationID"
	FieldDocumentID     = "DocumentID"
	FieldAuthorID       = "AuthorID"
	FieldEmailAddress   = "EmailAddress"
	FieldOtherNames     = "OtherNames"
	FieldUT             = "UT"

	// FieldDOI is not canonical but recognized as a DocumentID fallback
	// by the identifier extractor.
	FieldDOI = "DOI"
)

// CanonicalFields lists the canonical schema in output order.
var CanonicalFields = []string{
	FieldPersonID,
	FieldFirstName,
	FieldLastName,
	FieldOrganizationID,
	FieldDocumentID,
	FieldAuthorID,
	FieldEmailAddress,
	FieldOtherNames,
	FieldUT,
}

// exactAliases are full-name matches checked before the substring rules.
var exactAliases = map[string]string{
	"email addresses": FieldEmailAddress,
	"orcids":          FieldAuthorID,
	"ut":              FieldUT,
}

// substringRule maps any key containing the fragment to a canonical
// field. Rules apply in a fixed priority order; the first match wins.
type substringRule struct {
	fragment  string
	canonical string
}

var substringRules = []substringRule{
	{"documentid", FieldDocumentID},
	{"authorid", FieldAuthorID},
	{"orcid", FieldAuthorID},
	{"email", FieldEmailAddress},
	{"personid", FieldPersonID},
	{"firstname", FieldFirstName},
	{"lastname", FieldLastName},
	{"organization", FieldOrganizationID},
}

// NormalizeKey maps one raw column name to its canonical field name.
// Keys matching no rule pass through trimmed but otherwise unchanged.
func NormalizeKey(key string) string {
	trimmed := strings.TrimSpace(key)
	lower := strings.ToLower(trimmed)

	if canonical, ok := exactAliases[lower]; ok {
		return canonical
	}
	for _, rule := range substringRules {
		if strings.Contains(lower, rule.fragment) {
			return rule.canonical
		}
	}
	// WOS accession columns come with decorated names like
	// "UT (Unique WOS ID)"; require both fragments so that keys
	// merely containing "ut" are left alone.
	if strings.Contains(lower, "ut") && strings.Contains(lower, "wos") {
		return FieldUT
	}
	return trimmed
}

// NormalizeRow maps a raw row onto canonical field names. Values pass
// through unmodified; trimming and case folding of values is the
// matcher's responsibility. When two raw keys collapse onto the same
// canonical name, the later value overwrites the earlier one.
func NormalizeRow(row tabular.Row) tabular.Row {
	normalized := make(tabular.Row, len(row))
	for key, value := range row {
		normalized[NormalizeKey(key)] = value
	}
	return normalized
}

// NormalizeTable normalizes every row and the tracked column order.
// Columns collapsing onto one canonical name keep the first position.
func NormalizeTable(t *tabular.Table) *tabular.Table {
	out := &tabular.Table{}
	for _, col := range t.Columns {
		out.AddColumn(NormalizeKey(col))
	}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, NormalizeRow(row))
	}
	return out
}
