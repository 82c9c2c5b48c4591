package analyzer

import (
	"errors"
	"sort"
	"time"

	"FinSight/internal/model"
)

var (
	// ErrNoStatementData means the provider returned empty income or
	// balance data for the ticker.
	ErrNoStatementData = errors.New("no statement data")
	// ErrNoDataInRange means statements exist but none survive the
	// year filter and join.
	ErrNoDataInRange = errors.New("no statement data in range")
)

// Join inner-joins income and balance rows on exact fiscal-period-end date,
// drops dates before minYear, and sorts ascending. Years present in only one
// statement set are omitted, never synthesized.
func Join(income, balance map[time.Time]model.RawRow, minYear int) []model.MergedRow {
	merged := make([]model.MergedRow, 0, len(income))
	for date, inc := range income {
		bal, ok := balance[date]
		if !ok || date.Year() < minYear {
			continue
		}
		merged = append(merged, model.MergedRow{PeriodEnd: date, Income: inc, Balance: bal})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].PeriodEnd.Before(merged[j].PeriodEnd) })
	return merged
}
