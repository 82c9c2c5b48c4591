package analyzer

import (
	"errors"
	"fmt"
	"log"
	"time"

	"FinSight/internal/model"
	"FinSight/internal/provider"
	"FinSight/internal/resolver"
)

// Analyzer runs the full statement analysis pipeline for one security:
// fetch, resolve fields, join periods, compute per-year metrics. It holds no
// mutable state; each Analyze call is a pure function of the provider data.
type Analyzer struct {
	Provider     provider.Provider
	MinYear      int
	HistoryYears int
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(p provider.Provider, minYear, historyYears int) *Analyzer {
	return &Analyzer{Provider: p, MinYear: minYear, HistoryYears: historyYears}
}

// Analyze produces the per-year report for symbol.
//
// Error taxonomy: ErrNoStatementData when either statement set is empty,
// ErrNoDataInRange when the join survives nothing on or after MinYear, and
// wrapped provider errors for transport failures. No retries.
func (a *Analyzer) Analyze(symbol string) (*model.Report, error) {
	income, err := a.Provider.AnnualIncomeStatement(symbol)
	if err != nil {
		if errors.Is(err, provider.ErrNoData) {
			return nil, fmt.Errorf("%w: %s income statement", ErrNoStatementData, symbol)
		}
		return nil, fmt.Errorf("fetch income statement: %w", err)
	}
	balance, err := a.Provider.AnnualBalanceSheet(symbol)
	if err != nil {
		if errors.Is(err, provider.ErrNoData) {
			return nil, fmt.Errorf("%w: %s balance sheet", ErrNoStatementData, symbol)
		}
		return nil, fmt.Errorf("fetch balance sheet: %w", err)
	}
	if len(income) == 0 || len(balance) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoStatementData, symbol)
	}

	merged := Join(income, balance, a.MinYear)
	if len(merged) == 0 {
		return nil, fmt.Errorf("%w: %s has no joined periods on or after %d", ErrNoDataInRange, symbol, a.MinYear)
	}

	bars, currency, err := a.Provider.PriceHistory(symbol, a.HistoryYears)
	if err != nil {
		if !errors.Is(err, provider.ErrNoData) {
			return nil, fmt.Errorf("fetch price history: %w", err)
		}
		// Missing price history only disables the PER range.
		log.Printf("[WARN] no price history for %s, PER range unavailable", symbol)
		bars, currency = nil, "USD"
	}

	fm := resolver.ResolveStatements(resolver.ColumnNames(income), resolver.ColumnNames(balance))
	byYear := BucketByYear(bars)

	report := &model.Report{
		Symbol:      symbol,
		Currency:    currency,
		GeneratedAt: time.Now(),
		Years:       make([]model.YearRecord, 0, len(merged)),
	}
	for _, row := range merged {
		report.Years = append(report.Years, ComputeYear(row, byYear[row.PeriodEnd.Year()], fm))
	}
	return report, nil
}
