package model

import "time"

// PERStatus classifies a year's price-to-earnings range.
type PERStatus string

const (
	// PEROK means a numeric PER range was computed.
	PEROK PERStatus = "OK"
	// PERUnavailable means EPS was missing or no price bars fell in the year.
	PERUnavailable PERStatus = "UNAVAILABLE"
	// PERLoss means EPS was present but <= 0, so the ratio is not meaningful.
	PERLoss PERStatus = "LOSS"
)

// Metric is a nullable numeric value. Valid=false is the explicit
// "unavailable" marker, kept distinct from a genuine zero.
type Metric struct {
	Value float64
	Valid bool
}

// YearRecord is one output row of the analysis.
//
// Revenue and OperatingIncome fall back to 0 when their field is unresolved
// or null, while DebtRatio and EPS carry an explicit unavailable marker.
// The asymmetry is inherited from the reference behavior on purpose.
type YearRecord struct {
	Year            int
	Revenue         float64
	OperatingIncome float64
	DebtRatio       Metric
	EPS             Metric
	PERLow          float64
	PERHigh         float64
	PERStatus       PERStatus
}

// Report is the full analysis result for one security, ordered ascending
// by year.
type Report struct {
	Symbol      string
	Currency    string // ISO code from the provider, e.g. "USD", "KRW"
	GeneratedAt time.Time
	Years       []YearRecord
}

// IsKRW reports whether the security trades in Korean won, which switches
// the display ladder (조/억 instead of B/M) and EPS precision.
func (r *Report) IsKRW() bool { return r.Currency == "KRW" }
