package provider

import (
	"errors"
	"time"

	"FinSight/internal/model"
)

// ErrNoData indicates the vendor returned an empty result for the symbol.
// Callers can tell it apart from a transport failure with errors.Is.
var ErrNoData = errors.New("provider: no data")

// Provider supplies annual statements and trading history for a symbol.
type Provider interface {
	// AnnualIncomeStatement returns income-statement rows keyed by
	// fiscal-period-end date.
	AnnualIncomeStatement(symbol string) (map[time.Time]model.RawRow, error)
	// AnnualBalanceSheet returns balance-sheet rows keyed by
	// fiscal-period-end date.
	AnnualBalanceSheet(symbol string) (map[time.Time]model.RawRow, error)
	// PriceHistory returns up to `years` years of daily bars in
	// chronological order, plus the quote currency code.
	PriceHistory(symbol string, years int) ([]model.PriceBar, string, error)
	Name() string
}
