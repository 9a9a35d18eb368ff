package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/authormatch/pkg/tabular"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"DocumentID", FieldDocumentID},
		{"documentid (DOI)", FieldDocumentID},
		{"AuthorID", FieldAuthorID},
		{"ORCID", FieldAuthorID},
		{"ORCIDs", FieldAuthorID},
		{"Email", FieldEmailAddress},
		{"EmailAddress", FieldEmailAddress},
		{"Email Addresses", FieldEmailAddress},
		{"PersonID", FieldPersonID},
		{"FirstName", FieldFirstName},
		{"LastName", FieldLastName},
		{"Organization", FieldOrganizationID},
		{"OrganizationID", FieldOrganizationID},
		{"UT", FieldUT},
		{"UT (Unique WOS ID)", FieldUT},
		{"ut (unique wos id)", FieldUT},
		// No rule applies: pass through trimmed.
		{"  Notes ", "Notes"},
		{"Output", "Output"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.key))
		})
	}
}

func TestNormalizeRowIsIdempotent(t *testing.T) {
	row := tabular.Row{
		FieldPersonID:     "p1",
		FieldEmailAddress: "x@y.com",
		FieldUT:           "WOS:123",
	}

	assert.Equal(t, row, NormalizeRow(row))
}

func TestNormalizeRowMapsAliases(t *testing.T) {
	row := tabular.Row{"Email Addresses": "x@y.com"}

	assert.Equal(t, tabular.Row{FieldEmailAddress: "x@y.com"}, NormalizeRow(row))
}

func TestNormalizeRowPreservesValues(t *testing.T) {
	row := tabular.Row{"email": "  Mixed@Case.ORG  "}

	// Values are the matcher's responsibility; no trimming or folding here.
	assert.Equal(t, "  Mixed@Case.ORG  ", NormalizeRow(row)[FieldEmailAddress])
}

func TestNormalizeTable(t *testing.T) {
	table := &tabular.Table{
		Columns: []string{"PersonID", "Email Addresses", "ORCIDs", "Notes"},
		Rows: []tabular.Row{
			{"PersonID": "p1", "Email Addresses": "a@b.com", "ORCIDs": "0000-0001-2345-6789", "Notes": "n"},
		},
	}

	out := NormalizeTable(table)

	assert.Equal(t, []string{FieldPersonID, FieldEmailAddress, FieldAuthorID, "Notes"}, out.Columns)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "a@b.com", out.Rows[0][FieldEmailAddress])
	assert.Equal(t, "0000-0001-2345-6789", out.Rows[0][FieldAuthorID])
}
