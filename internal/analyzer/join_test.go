package analyzer

import (
	"testing"
	"time"

	"FinSight/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fptr(v float64) *float64 { return &v }

func TestJoin_InnerJoinFilterSort(t *testing.T) {
	income := map[time.Time]model.RawRow{
		date(2020, 12, 31): {"Total Revenue": fptr(50)},
		date(2023, 12, 31): {"Total Revenue": fptr(300)},
		date(2021, 12, 31): {"Total Revenue": fptr(100)},
		date(2022, 12, 31): {"Total Revenue": fptr(200)},
	}
	balance := map[time.Time]model.RawRow{
		date(2020, 12, 31): {"Stockholders Equity": fptr(10)},
		date(2021, 12, 31): {"Stockholders Equity": fptr(20)},
		date(2023, 12, 31): {"Stockholders Equity": fptr(40)},
	}

	merged := Join(income, balance, 2021)
	if len(merged) != 2 {
		t.Fatalf("expected 2 joined rows, got %d", len(merged))
	}
	// 2020 dropped by filter, 2022 dropped by inner join, rest ascending.
	if merged[0].PeriodEnd.Year() != 2021 || merged[1].PeriodEnd.Year() != 2023 {
		t.Errorf("wrong order: %v, %v", merged[0].PeriodEnd, merged[1].PeriodEnd)
	}
}

func TestJoin_ExactDateEquality(t *testing.T) {
	income := map[time.Time]model.RawRow{
		date(2021, 12, 31): {"Total Revenue": fptr(100)},
	}
	balance := map[time.Time]model.RawRow{
		date(2021, 12, 30): {"Stockholders Equity": fptr(20)}, // off by one day
	}
	if merged := Join(income, balance, 2021); len(merged) != 0 {
		t.Errorf("expected no rows for mismatched dates, got %d", len(merged))
	}
}

func TestJoin_EmptyResult(t *testing.T) {
	income := map[time.Time]model.RawRow{
		date(2019, 12, 31): {"Total Revenue": fptr(100)},
		date(2020, 12, 31): {"Total Revenue": fptr(110)},
	}
	balance := map[time.Time]model.RawRow{
		date(2019, 12, 31): {"Stockholders Equity": fptr(20)},
		date(2020, 12, 31): {"Stockholders Equity": fptr(25)},
	}
	if merged := Join(income, balance, 2021); len(merged) != 0 {
		t.Errorf("expected empty join below min year, got %d rows", len(merged))
	}
}
