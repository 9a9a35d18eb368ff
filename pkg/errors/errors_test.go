package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/authormatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestSentinelHelpers(t *testing.T) {
	t.Run("empty template", func(t *testing.T) {
		assert.True(t, pkgerrors.IsEmptyTemplate(pkgerrors.ErrEmptyTemplate))
		wrapped := pkgerrors.NewReconcileError("template", pkgerrors.ErrEmptyTemplate)
		assert.True(t, pkgerrors.IsEmptyTemplate(wrapped))
	})

	t.Run("no valid data", func(t *testing.T) {
		wrapped := pkgerrors.NewReconcileError("data", pkgerrors.ErrNoValidData)
		assert.True(t, pkgerrors.IsNoValidData(wrapped))
		assert.False(t, pkgerrors.IsEmptyTemplate(wrapped))
	})

	t.Run("no output", func(t *testing.T) {
		wrapped := pkgerrors.NewReconcileError("match", pkgerrors.ErrNoOutput)
		assert.True(t, pkgerrors.IsNoOutput(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "match-keys",
			Message: "unknown value",
		}
		assert.Equal(t, "validation failed for field match-keys: unknown value", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("sort", "reverse", "unknown strategy")
		require.NotNil(t, err)
		assert.Equal(t, "sort", err.Field)
		assert.Equal(t, "reverse", err.Value)
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "records.csv",
			Line:    3,
			Message: "truncated row",
		}
		assert.Equal(t, "parse error in csv file records.csv at line 3: truncated row", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("bad field")
		err := pkgerrors.NewParseError("tsv", "records.tsv", "bad field", base)
		assert.Equal(t, base, errors.Unwrap(err))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("read", "/tmp/roster.csv", base)
	assert.Equal(t, "IO error during read of /tmp/roster.csv: permission denied", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestExportError(t *testing.T) {
	base := errors.New("disk full")
	err := pkgerrors.NewExportError("xlsx", "out.xlsx", base)
	assert.Equal(t, "export error writing xlsx to out.xlsx: disk full", err.Error())
	assert.True(t, errors.Is(err, base))
}

func TestReconcileError(t *testing.T) {
	base := errors.New("boom")
	err := pkgerrors.NewReconcileError("export", base)
	assert.Equal(t, "reconciliation failed during export phase: boom", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
		assert.NoError(t, pkgerrors.WrapParse("csv", "x", nil))
		assert.NoError(t, pkgerrors.WrapExport("csv", "x", nil))
	})

	t.Run("wraps non-nil", func(t *testing.T) {
		base := errors.New("boom")
		err := pkgerrors.WrapIO("write", "out.csv", base)
		require.Error(t, err)
		var ioErr *pkgerrors.IOError
		assert.True(t, errors.As(err, &ioErr))
	})
}
