package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/authormatch/pkg/reconcile"
	"github.com/agentstation/authormatch/pkg/tabular"
)

func testResult() *reconcile.Result {
	return &reconcile.Result{
		Columns: []string{"PersonID", "EmailAddress"},
		Rows: []tabular.Row{
			{"PersonID": "p1", "EmailAddress": "a@b.com"},
		},
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, testResult()))

	out := buf.String()
	assert.Contains(t, out, "PersonID")
	assert.Contains(t, out, "a@b.com")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, testResult()))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "p1", rows[0]["PersonID"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, testResult()))

	assert.Contains(t, buf.String(), "EmailAddress: a@b.com")
}

func TestHTMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatHTML).Format(&buf, testResult()))

	assert.Contains(t, buf.String(), "<td>a@b.com</td>")
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "html", "", "TABLE"} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, valid)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
