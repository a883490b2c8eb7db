package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTableSameCurrencyIsIdentity(t *testing.T) {
	table, err := NewTable()
	require.NoError(t, err)

	amount := decimal.RequireFromString("12.34")
	got, err := table.Convert(amount, "USD", "USD")
	require.NoError(t, err)
	require.True(t, got.Equal(amount), "got %s", got)
}

func TestTableConvertsAndRounds(t *testing.T) {
	table, err := NewTable()
	require.NoError(t, err)

	got, err := table.Convert(decimal.RequireFromString("10"), "USD", "EUR")
	require.NoError(t, err)
	require.True(t, got.Equal(decimal.RequireFromString("9.2")), "got %s", got)
	require.LessOrEqual(t, int(got.Exponent()*-1), 2)
}

func TestTableUnknownCurrency(t *testing.T) {
	table, err := NewTable()
	require.NoError(t, err)

	_, err = table.Convert(decimal.NewFromInt(1), "USD", "XXX")
	require.Error(t, err)
	require.False(t, table.Supports("XXX"))
	require.True(t, table.Supports("gbp"))
}

func TestFixed(t *testing.T) {
	f := Fixed{Rate: decimal.NewFromInt(2)}
	got, err := f.Convert(decimal.RequireFromString("1.55"), "USD", "EUR")
	require.NoError(t, err)
	require.True(t, got.Equal(decimal.RequireFromString("3.1")), "got %s", got)
}
