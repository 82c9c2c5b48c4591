package analyzer

import (
	"math"

	"FinSight/internal/model"
)

// fieldValue reads the resolved column for field from row. ok is true only
// when the field resolved, the column is present, and the value is non-null.
func fieldValue(row model.RawRow, fm model.FieldMap, field model.LogicalField) (float64, bool) {
	name, ok := fm[field]
	if !ok {
		return 0, false
	}
	v, ok := row[name]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// ComputeYear derives one YearRecord from a merged statement row and the
// price bars of the matching calendar year.
//
// Bars are bucketed by calendar year, not fiscal year: issuers whose fiscal
// year does not end in December get price extremes slightly offset from the
// reporting period. Known limitation, kept to match reference output.
func ComputeYear(row model.MergedRow, bars []model.PriceBar, fm model.FieldMap) model.YearRecord {
	rec := model.YearRecord{
		Year:      row.PeriodEnd.Year(),
		PERStatus: model.PERUnavailable,
	}

	// Unresolved or null revenue/operating income degrade to zero, while the
	// ratios below get an explicit unavailable marker instead.
	if v, ok := fieldValue(row.Income, fm, model.FieldRevenue); ok {
		rec.Revenue = v
	}
	if v, ok := fieldValue(row.Income, fm, model.FieldOperatingIncome); ok {
		rec.OperatingIncome = v
	}

	liabilities, liabOK := fieldValue(row.Balance, fm, model.FieldTotalLiabilities)
	equity, equityOK := fieldValue(row.Balance, fm, model.FieldStockholdersEquity)
	if liabOK && equityOK && equity != 0 {
		rec.DebtRatio = model.Metric{Value: liabilities / equity, Valid: true}
	}

	if eps, ok := fieldValue(row.Income, fm, model.FieldEPS); ok {
		rec.EPS = model.Metric{Value: eps, Valid: true}
		switch {
		case eps <= 0:
			rec.PERStatus = model.PERLoss
		case len(bars) > 0:
			low, high := yearExtremes(bars)
			rec.PERLow = low / eps
			rec.PERHigh = high / eps
			rec.PERStatus = model.PEROK
		}
	}

	return rec
}

// yearExtremes scans one year's bars for the lowest low and highest high.
func yearExtremes(bars []model.PriceBar) (low, high float64) {
	low = math.Inf(1)
	high = math.Inf(-1)
	for _, b := range bars {
		if b.Low < low {
			low = b.Low
		}
		if b.High > high {
			high = b.High
		}
	}
	return low, high
}

// BucketByYear groups price bars by the calendar year of their date.
func BucketByYear(bars []model.PriceBar) map[int][]model.PriceBar {
	buckets := make(map[int][]model.PriceBar)
	for _, b := range bars {
		y := b.Date.Year()
		buckets[y] = append(buckets[y], b)
	}
	return buckets
}
