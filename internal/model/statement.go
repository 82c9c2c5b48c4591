package model

import "time"

// LogicalField identifies a canonical financial concept independent of the
// vendor's literal column name.
type LogicalField string

const (
	FieldRevenue            LogicalField = "revenue"
	FieldOperatingIncome    LogicalField = "operating_income"
	FieldTotalLiabilities   LogicalField = "total_liabilities"
	FieldStockholdersEquity LogicalField = "stockholders_equity"
	FieldEPS                LogicalField = "eps"
)

// AllFields lists every logical field in resolution order.
var AllFields = []LogicalField{
	FieldRevenue,
	FieldOperatingIncome,
	FieldTotalLiabilities,
	FieldStockholdersEquity,
	FieldEPS,
}

// RawRow holds one fiscal year's reported statement fields, keyed by the
// vendor's free-text column name. A nil value means the field was reported
// as null.
type RawRow map[string]*float64

// FieldMap is the per-issuer resolution of logical fields to raw column names.
// Fields that could not be resolved are simply absent.
type FieldMap map[LogicalField]string

// MergedRow pairs the income-statement and balance-sheet rows sharing one
// fiscal-period-end date.
type MergedRow struct {
	PeriodEnd time.Time
	Income    RawRow
	Balance   RawRow
}
