package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agentstation/authormatch"
	"github.com/agentstation/authormatch/pkg/errors"
	"github.com/agentstation/authormatch/pkg/export"
	"github.com/agentstation/authormatch/pkg/tabular"
)

const roster = "PersonID,FirstName,LastName,Email Addresses,AuthorID\n" +
	"p1,Ada,Lovelace,ada@analytical.example,0000-0001-0000-0001\n" +
	"p2,Grace,Hopper,grace@navy.example;gh@yale.example,\n"

func TestFullPipelineMixedDelimiters(t *testing.T) {
	// One comma-delimited and one tab-delimited data file, matched by
	// email and ORCID respectively.
	csvData := []byte("Email,UT (Unique WOS ID),DOI\n" +
		"gh@yale.example,WOS:000200,10.1000/b\n")
	tsvData := []byte("ORCIDs\tUT (Unique WOS ID)\n" +
		"0000-0001-0000-0001\tWOS:000100\n")

	result, err := authormatch.Reconcile([]byte(roster), [][]byte{csvData, tsvData})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	// Two seeded template rows plus one appended copy per matched record.
	if result.Len() != 4 {
		t.Fatalf("Expected 4 output rows, got %d", result.Len())
	}
	if result.Metadata.Stats.Matched != 2 {
		t.Errorf("Expected 2 matched data rows, got %d", result.Metadata.Stats.Matched)
	}
	if result.Metadata.Stats.DataFiles != 2 {
		t.Errorf("Expected 2 data files counted, got %d", result.Metadata.Stats.DataFiles)
	}

	uts := map[string]bool{}
	for _, row := range result.Rows {
		if ut := row["UT"]; ut != "" {
			uts[ut] = true
		}
	}
	if !uts["WOS:000100"] || !uts["WOS:000200"] {
		t.Errorf("Expected both record ids in output, got %v", uts)
	}
}

func TestFullPipelineCSVExportRoundTrip(t *testing.T) {
	data := []byte("Email,UT (Unique WOS ID)\nada@analytical.example,WOS:000100\n")

	result, err := authormatch.Reconcile([]byte(roster), [][]byte{data})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, result.Columns, result.Rows); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	// The exported CSV must parse back to the same row count with the
	// same header set.
	parsed := tabular.Parse(buf.String())
	if parsed.Len() != result.Len() {
		t.Fatalf("Expected %d rows after re-parse, got %d", result.Len(), parsed.Len())
	}
	header := strings.SplitN(buf.String(), "\n", 2)[0]
	for _, col := range result.Columns {
		if !strings.Contains(header, col) {
			t.Errorf("Expected header to contain %q, header was %q", col, header)
		}
	}
}

func TestFullPipelineTerminalErrors(t *testing.T) {
	data := []byte("Email,UT (Unique WOS ID)\nada@analytical.example,WOS:000100\n")

	if _, err := authormatch.Reconcile(nil, [][]byte{data}); !errors.IsEmptyTemplate(err) {
		t.Errorf("Expected empty template error, got %v", err)
	}
	if _, err := authormatch.Reconcile([]byte(roster), [][]byte{[]byte("")}); !errors.IsNoValidData(err) {
		t.Errorf("Expected no valid data error, got %v", err)
	}
}
