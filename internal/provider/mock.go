package provider

import (
	"time"

	"FinSight/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Income   map[time.Time]model.RawRow
	Balance  map[time.Time]model.RawRow
	Bars     []model.PriceBar
	Currency string

	IncomeErr  error
	BalanceErr error
	PriceErr   error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) AnnualIncomeStatement(_ string) (map[time.Time]model.RawRow, error) {
	if m.IncomeErr != nil {
		return nil, m.IncomeErr
	}
	return m.Income, nil
}

func (m *MockProvider) AnnualBalanceSheet(_ string) (map[time.Time]model.RawRow, error) {
	if m.BalanceErr != nil {
		return nil, m.BalanceErr
	}
	return m.Balance, nil
}

func (m *MockProvider) PriceHistory(_ string, _ int) ([]model.PriceBar, string, error) {
	if m.PriceErr != nil {
		return nil, "", m.PriceErr
	}
	currency := m.Currency
	if currency == "" {
		currency = "USD"
	}
	return m.Bars, currency, nil
}
