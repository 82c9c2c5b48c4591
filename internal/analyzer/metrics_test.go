package analyzer

import (
	"testing"

	"FinSight/internal/model"
	"FinSight/internal/resolver"
)

func standardFieldMap() model.FieldMap {
	return resolver.ResolveStatements(
		[]string{"Total Revenue", "Operating Income", "Diluted EPS"},
		[]string{"Total Liabilities Net Minority Interest", "Stockholders Equity"},
	)
}

func TestComputeYear_FullRow(t *testing.T) {
	row := model.MergedRow{
		PeriodEnd: date(2021, 12, 31),
		Income: model.RawRow{
			"Total Revenue":    fptr(100),
			"Operating Income": fptr(20),
			"Diluted EPS":      fptr(2),
		},
		Balance: model.RawRow{
			"Total Liabilities Net Minority Interest": fptr(80),
			"Stockholders Equity":                     fptr(40),
		},
	}
	bars := []model.PriceBar{{Date: date(2021, 6, 1), Low: 10, High: 20}}

	rec := ComputeYear(row, bars, standardFieldMap())
	if rec.Year != 2021 {
		t.Errorf("year = %d", rec.Year)
	}
	if rec.Revenue != 100 || rec.OperatingIncome != 20 {
		t.Errorf("revenue/op income = %v/%v", rec.Revenue, rec.OperatingIncome)
	}
	if !rec.DebtRatio.Valid || rec.DebtRatio.Value != 2.0 {
		t.Errorf("debt ratio = %+v, want 2.00", rec.DebtRatio)
	}
	if rec.PERStatus != model.PEROK {
		t.Fatalf("PER status = %s", rec.PERStatus)
	}
	if rec.PERLow != 5.0 || rec.PERHigh != 10.0 {
		t.Errorf("PER range = %.1f ~ %.1f, want 5.0 ~ 10.0", rec.PERLow, rec.PERHigh)
	}
}

func TestComputeYear_ZeroEquityGuard(t *testing.T) {
	row := model.MergedRow{
		PeriodEnd: date(2021, 12, 31),
		Income:    model.RawRow{"Total Revenue": fptr(100)},
		Balance: model.RawRow{
			"Total Liabilities Net Minority Interest": fptr(80),
			"Stockholders Equity":                     fptr(0),
		},
	}
	rec := ComputeYear(row, nil, standardFieldMap())
	if rec.DebtRatio.Valid {
		t.Errorf("debt ratio should be unavailable for zero equity, got %+v", rec.DebtRatio)
	}
}

func TestComputeYear_NullBalanceValues(t *testing.T) {
	row := model.MergedRow{
		PeriodEnd: date(2021, 12, 31),
		Income:    model.RawRow{"Total Revenue": fptr(100)},
		Balance: model.RawRow{
			"Total Liabilities Net Minority Interest": nil,
			"Stockholders Equity":                     fptr(40),
		},
	}
	rec := ComputeYear(row, nil, standardFieldMap())
	if rec.DebtRatio.Valid {
		t.Errorf("debt ratio should be unavailable for null liabilities, got %+v", rec.DebtRatio)
	}
}

func TestComputeYear_NegativeEPSIsLoss(t *testing.T) {
	row := model.MergedRow{
		PeriodEnd: date(2021, 12, 31),
		Income: model.RawRow{
			"Total Revenue":    fptr(100),
			"Operating Income": fptr(-5),
			"Diluted EPS":      fptr(-1.5),
		},
		Balance: model.RawRow{},
	}
	bars := []model.PriceBar{{Date: date(2021, 6, 1), Low: 10, High: 20}}

	rec := ComputeYear(row, bars, standardFieldMap())
	if rec.PERStatus != model.PERLoss {
		t.Errorf("PER status = %s, want LOSS", rec.PERStatus)
	}
	// Revenue and operating income are still computed normally.
	if rec.Revenue != 100 || rec.OperatingIncome != -5 {
		t.Errorf("revenue/op income = %v/%v", rec.Revenue, rec.OperatingIncome)
	}
}

func TestComputeYear_MissingEPSOrBars(t *testing.T) {
	noEPS := model.MergedRow{
		PeriodEnd: date(2021, 12, 31),
		Income:    model.RawRow{"Total Revenue": fptr(100)},
		Balance:   model.RawRow{},
	}
	bars := []model.PriceBar{{Date: date(2021, 6, 1), Low: 10, High: 20}}
	if rec := ComputeYear(noEPS, bars, standardFieldMap()); rec.PERStatus != model.PERUnavailable {
		t.Errorf("PER status without EPS = %s, want UNAVAILABLE", rec.PERStatus)
	}
	if rec := ComputeYear(noEPS, bars, standardFieldMap()); rec.EPS.Valid {
		t.Error("EPS should be unavailable, not zero")
	}

	withEPS := model.MergedRow{
		PeriodEnd: date(2021, 12, 31),
		Income:    model.RawRow{"Diluted EPS": fptr(2)},
		Balance:   model.RawRow{},
	}
	if rec := ComputeYear(withEPS, nil, standardFieldMap()); rec.PERStatus != model.PERUnavailable {
		t.Errorf("PER status without bars = %s, want UNAVAILABLE", rec.PERStatus)
	}
}

// Missing revenue and operating income degrade to zero while the ratios use
// an explicit marker. The asymmetry is inherited reference behavior.
func TestComputeYear_ZeroFallbackInconsistency(t *testing.T) {
	row := model.MergedRow{
		PeriodEnd: date(2021, 12, 31),
		Income:    model.RawRow{"Diluted EPS": nil},
		Balance:   model.RawRow{},
	}
	rec := ComputeYear(row, nil, standardFieldMap())
	if rec.Revenue != 0 || rec.OperatingIncome != 0 {
		t.Errorf("revenue/op income should fall back to zero, got %v/%v", rec.Revenue, rec.OperatingIncome)
	}
	if rec.EPS.Valid {
		t.Error("null EPS should be unavailable, not zero")
	}
	if rec.DebtRatio.Valid {
		t.Error("unresolved debt ratio should be unavailable, not zero")
	}
}

func TestBucketByYear(t *testing.T) {
	bars := []model.PriceBar{
		{Date: date(2021, 3, 1), Low: 10, High: 12},
		{Date: date(2021, 9, 1), Low: 8, High: 15},
		{Date: date(2022, 1, 3), Low: 14, High: 16},
	}
	buckets := BucketByYear(bars)
	if len(buckets[2021]) != 2 || len(buckets[2022]) != 1 {
		t.Fatalf("bucket sizes: 2021=%d 2022=%d", len(buckets[2021]), len(buckets[2022]))
	}

	low, high := yearExtremes(buckets[2021])
	if low != 8 || high != 15 {
		t.Errorf("extremes = %v/%v, want 8/15", low, high)
	}
}
