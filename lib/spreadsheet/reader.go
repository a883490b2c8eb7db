// Package spreadsheet is the xlsx boundary of the tracker: it reads
// inventory workbooks (one sheet per platform) and writes the annotated
// result workbook back out.
package spreadsheet

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"pricetracker/lib/inventory"

	"github.com/antzucaro/matchr"
	"github.com/xuri/excelize/v2"
)

// the columns every platform sheet must carry; Platform itself is
// synthesized from the sheet name
var requiredColumns = []string{"Title", "Region", "Condition"}

// Sheet is one platform worth of inventory rows, in workbook order.
type Sheet struct {
	Name string
	// pass-through column headers, in their original order
	ExtraHeaders []string
	Rows         []inventory.Row
}

// ValidatePath rejects paths that are not xlsx workbooks. Both the input
// and output paths are checked before any work happens.
func ValidatePath(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".xlsx" {
		return fmt.Errorf("%s: expected an .xlsx file", path)
	}
	return nil
}

// Read loads the platform sheets of an inventory workbook. If platforms is
// non-empty only sheets named in it are loaded; a filter entry matching no
// sheet logs a warning naming the closest sheet. Column validation covers
// every selected sheet, so a malformed workbook fails here, before any
// network activity.
func Read(path string, platforms []string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	selected := filterSheetNames(names, platforms)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no platform sheets selected in %s", path)
	}

	var sheets []Sheet
	for _, name := range selected {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheet, err := parseSheet(name, rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func filterSheetNames(names []string, platforms []string) []string {
	if len(platforms) == 0 {
		return names
	}

	allowed := map[string]bool{}
	for _, p := range platforms {
		p = strings.TrimSpace(p)
		allowed[p] = true

		if !contains(names, p) {
			slog.Warn(
				"platform filter entry matches no sheet",
				"platform", p,
				"closest_sheet", closestName(p, names),
			)
		}
	}

	var selected []string
	for _, name := range names {
		if allowed[name] {
			selected = append(selected, name)
		}
	}
	return selected
}

func contains(names []string, target string) bool {
	for _, n := range names {
		if n == target {
			return true
		}
	}
	return false
}

func closestName(target string, names []string) string {
	best := ""
	var bestScore float64
	for _, n := range names {
		score := matchr.JaroWinkler(strings.ToLower(target), strings.ToLower(n), false)
		if score > bestScore {
			bestScore = score
			best = n
		}
	}
	return best
}

func parseSheet(name string, rows [][]string) (Sheet, error) {
	if len(rows) == 0 {
		return Sheet{}, fmt.Errorf("sheet %q is empty", name)
	}

	headers := make([]string, len(rows[0]))
	index := map[string]int{}
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		headers[i] = h
		index[h] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return Sheet{}, fmt.Errorf("sheet %q is missing required column %q", name, col)
		}
	}

	required := map[string]bool{}
	for _, col := range requiredColumns {
		required[col] = true
	}
	var extra []string
	for _, h := range headers {
		if h != "" && !required[h] {
			extra = append(extra, h)
		}
	}

	sheet := Sheet{Name: name, ExtraHeaders: extra}
	for _, cells := range rows[1:] {
		if isBlank(cells) {
			continue
		}
		row := inventory.Row{
			Title:     strings.TrimSpace(cell(cells, index["Title"])),
			Platform:  name,
			Region:    strings.TrimSpace(cell(cells, index["Region"])),
			Condition: inventory.ParseCondition(cell(cells, index["Condition"])),
		}
		if len(extra) > 0 {
			row.Extra = map[string]string{}
			for _, h := range extra {
				row.Extra[h] = cell(cells, index[h])
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Flatten concatenates the rows of all sheets in order; this is the row
// sequence the collector prices, so result indexes line back up with it.
func Flatten(sheets []Sheet) []inventory.Row {
	var rows []inventory.Row
	for _, s := range sheets {
		rows = append(rows, s.Rows...)
	}
	return rows
}
