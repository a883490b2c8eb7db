// Package currency converts USD price estimates into the currency requested
// for a run. The production table is a fixed USD-relative snapshot of ECB
// reference rates embedded at build time, so runs work offline the same way
// they price offline.
package currency

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	_ "embed"
)

// Converter converts an amount between two ISO 4217 currency codes.
// Implementations must be safe for concurrent use; every fetch task in a
// batch shares one converter.
type Converter interface {
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
	Supports(code string) bool
}

//go:embed rates.json
var ratesRaw []byte

// Table is a Converter backed by a static USD-relative rate table.
type Table struct {
	rates map[string]decimal.Decimal
}

func NewTable() (*Table, error) {
	rates := map[string]decimal.Decimal{}
	err := json.Unmarshal(ratesRaw, &rates)
	if err != nil {
		return nil, fmt.Errorf("parse embedded rate table: %w", err)
	}
	return &Table{rates: rates}, nil
}

func (t *Table) Supports(code string) bool {
	_, ok := t.rates[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

func (t *Table) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to {
		return amount, nil
	}

	fromRate, ok := t.rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown currency code: %s", from)
	}
	toRate, ok := t.rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown currency code: %s", to)
	}

	return amount.Div(fromRate).Mul(toRate).Round(2), nil
}

// Fixed is a Converter that multiplies every amount by one rate. Intended
// as a test double.
type Fixed struct {
	Rate decimal.Decimal
}

func (f Fixed) Supports(string) bool { return true }

func (f Fixed) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	return amount.Mul(f.Rate).Round(2), nil
}
