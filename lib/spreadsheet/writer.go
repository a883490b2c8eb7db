package spreadsheet

import (
	"fmt"

	"pricetracker/lib/inventory"

	"github.com/xuri/excelize/v2"
)

// Write renders a priced report as an xlsx workbook: one sheet per platform
// group carrying the original columns plus the price column, then a Totals
// sheet with per-platform subtotals and a grand total. Price columns get a
// fixed two-decimal display format.
func Write(path string, report inventory.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	// builtin number format 2 is "0.00"
	priceStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}

	priceHeader := fmt.Sprintf("Price (%s)", report.Currency)

	for _, group := range report.Groups {
		if err := writeGroup(f, group, priceHeader, priceStyle); err != nil {
			return fmt.Errorf("write sheet %q: %w", group.Platform, err)
		}
	}
	if err := writeTotals(f, report, priceHeader, priceStyle); err != nil {
		return fmt.Errorf("write totals sheet: %w", err)
	}

	// drop the default sheet excelize seeds new workbooks with
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeGroup(f *excelize.File, group inventory.PlatformGroup, priceHeader string, priceStyle int) error {
	if _, err := f.NewSheet(group.Platform); err != nil {
		return err
	}

	headers := append([]string{"Title", "Region", "Condition"}, group.ExtraHeaders...)
	headers = append(headers, priceHeader)
	if err := setRow(f, group.Platform, 1, toAny(headers)); err != nil {
		return err
	}

	for i, row := range group.Rows {
		cells := []any{row.Title, row.Region, string(row.Condition)}
		for _, h := range group.ExtraHeaders {
			cells = append(cells, row.Extra[h])
		}
		cells = append(cells, row.Price.InexactFloat64())
		if err := setRow(f, group.Platform, i+2, cells); err != nil {
			return err
		}
	}

	col, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColStyle(group.Platform, col, priceStyle)
}

func writeTotals(f *excelize.File, report inventory.Report, priceHeader string, priceStyle int) error {
	const sheet = "Totals"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, []any{"Platform", priceHeader}); err != nil {
		return err
	}
	rowIdx := 2
	for _, group := range report.Groups {
		err := setRow(f, sheet, rowIdx, []any{group.Platform, group.Subtotal.InexactFloat64()})
		if err != nil {
			return err
		}
		rowIdx++
	}
	err := setRow(f, sheet, rowIdx, []any{"Total", report.GrandTotal.InexactFloat64()})
	if err != nil {
		return err
	}

	return f.SetColStyle(sheet, "B", priceStyle)
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	for i, v := range cells {
		name, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return err
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
