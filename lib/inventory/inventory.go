// Package inventory holds the domain model shared by the spreadsheet
// collaborators and the price collector: owned-game rows, condition codes
// and priced results.
package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Condition is the one-character completeness grade of an owned game.
type Condition string

const (
	ConditionComplete   Condition = "C"
	ConditionLoose      Condition = "L"
	ConditionNew        Condition = "N"
	ConditionGraded     Condition = "G"
	ConditionBoxOnly    Condition = "B"
	ConditionManualOnly Condition = "M"
)

// ParseCondition trims the raw cell value but performs no validation;
// unknown codes are a recoverable per-row outcome, decided at extraction
// time, not a parse failure.
func ParseCondition(raw string) Condition {
	return Condition(strings.TrimSpace(raw))
}

// Row is one physical item in the collection. Platform is synthesized from
// the sheet the row was read from. Extra carries pass-through columns that
// the pipeline does not interpret.
type Row struct {
	Title     string
	Platform  string
	Region    string
	Condition Condition
	Extra     map[string]string
}

type PriceStatus int

const (
	StatusOK PriceStatus = iota
	StatusMissingPrice
	StatusUnknownCondition
)

func (s PriceStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissingPrice:
		return "missing_price"
	case StatusUnknownCondition:
		return "unknown_condition"
	}
	return "invalid"
}

// PriceResult is the outcome of pricing a single row. There is exactly one
// per processed row, in input order; recovered failures carry a zero amount
// rather than being dropped.
type PriceResult struct {
	RowIndex int
	Amount   decimal.Decimal
	Currency string
	Status   PriceStatus
}

// PricedRow is a row merged with its collected price.
type PricedRow struct {
	Row
	Price  decimal.Decimal
	Status PriceStatus
}

// PlatformGroup is one output sheet: all priced rows of a platform plus
// their subtotal. ExtraHeaders preserves the order of pass-through columns
// from the input sheet.
type PlatformGroup struct {
	Platform     string
	ExtraHeaders []string
	Rows         []PricedRow
	Subtotal     decimal.Decimal
}

// Report is the assembled output of a run, consumed by the spreadsheet
// writer. Groups are ordered by platform name; GrandTotal equals the sum of
// all subtotals.
type Report struct {
	Currency   string
	Groups     []PlatformGroup
	GrandTotal decimal.Decimal
}
