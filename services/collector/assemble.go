package collector

import (
	"fmt"

	"pricetracker/lib/inventory"
	"pricetracker/lib/spreadsheet"

	"github.com/shopspring/decimal"
)

// Assemble merges collected results back onto their sheets, aligned by
// index against the flattened row sequence, and computes per-platform
// subtotals plus the grand total. Results must be what CollectPrices
// produced for Flatten(sheets); the lengths agreeing is the pipeline's core
// invariant.
func Assemble(sheets []spreadsheet.Sheet, results []inventory.PriceResult, curr string) (inventory.Report, error) {
	total := 0
	for _, s := range sheets {
		total += len(s.Rows)
	}
	if total != len(results) {
		return inventory.Report{}, fmt.Errorf(
			"result count %d does not match row count %d", len(results), total,
		)
	}

	report := inventory.Report{Currency: curr, GrandTotal: decimal.Zero}

	i := 0
	for _, sheet := range sheets {
		group := inventory.PlatformGroup{
			Platform:     sheet.Name,
			ExtraHeaders: sheet.ExtraHeaders,
			Subtotal:     decimal.Zero,
		}
		for _, row := range sheet.Rows {
			res := results[i]
			i++
			group.Rows = append(group.Rows, inventory.PricedRow{
				Row:    row,
				Price:  res.Amount,
				Status: res.Status,
			})
			group.Subtotal = group.Subtotal.Add(res.Amount)
		}
		report.GrandTotal = report.GrandTotal.Add(group.Subtotal)
		report.Groups = append(report.Groups, group)
	}

	return report, nil
}
