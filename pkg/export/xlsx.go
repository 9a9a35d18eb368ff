package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/authormatch/pkg/errors"
	"github.com/agentstation/authormatch/pkg/tabular"
)

// WriteXLSX writes the result set as an xlsx workbook with a single
// sheet named Results: one header row, then the rows in final order.
func WriteXLSX(w io.Writer, columns []string, rows []tabular.Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), ResultsSheetName); err != nil {
		return errors.WrapExport("xlsx", "", err)
	}

	if err := writeSheetRow(f, 1, anyValues(columns)); err != nil {
		return err
	}
	for i, row := range rows {
		values := make([]any, len(columns))
		for j, col := range columns {
			values[j] = row.Get(col)
		}
		if err := writeSheetRow(f, i+2, values); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.WrapExport("xlsx", "", err)
	}
	return nil
}

// writeSheetRow sets one worksheet row starting at column A.
func writeSheetRow(f *excelize.File, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return errors.WrapExport("xlsx", "", err)
	}
	if err := f.SetSheetRow(ResultsSheetName, cell, &values); err != nil {
		return errors.WrapExport("xlsx", "", err)
	}
	return nil
}

func anyValues(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
