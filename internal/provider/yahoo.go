package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/time/rate"

	"FinSight/internal/model"
)

// annualIncomeTypes and annualBalanceTypes are the fundamentals-timeseries
// keys requested per statement. The vendor echoes them back as column names
// (camelCase split into words), so the resolver still sees free-text names.
var (
	annualIncomeTypes = []string{
		"annualTotalRevenue",
		"annualOperatingIncome",
		"annualGrossProfit",
		"annualNetIncome",
		"annualDilutedEPS",
		"annualBasicEPS",
	}
	annualBalanceTypes = []string{
		"annualTotalAssets",
		"annualTotalLiabilitiesNetMinorityInterest",
		"annualStockholdersEquity",
		"annualCommonStockEquity",
		"annualTotalDebt",
	}
)

// YahooProvider implements Provider using Yahoo Finance public endpoints.
type YahooProvider struct {
	Client  *http.Client
	limiter *rate.Limiter
}

// NewYahooProvider creates a Yahoo Finance provider with optional proxy
// support. Requests are throttled to stay under the unauthenticated quota.
func NewYahooProvider(proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooProvider{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

func (p *YahooProvider) AnnualIncomeStatement(symbol string) (map[time.Time]model.RawRow, error) {
	return p.fetchTimeseries(symbol, annualIncomeTypes)
}

func (p *YahooProvider) AnnualBalanceSheet(symbol string) (map[time.Time]model.RawRow, error) {
	return p.fetchTimeseries(symbol, annualBalanceTypes)
}

// tsResponse is the fundamentals-timeseries envelope. Each result element
// carries its series under a dynamic key named after the requested type.
type tsResponse struct {
	Timeseries struct {
		Result []json.RawMessage `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"timeseries"`
}

type tsMeta struct {
	Meta struct {
		Type []string `json:"type"`
	} `json:"meta"`
}

type tsPoint struct {
	AsOfDate      string `json:"asOfDate"`
	PeriodType    string `json:"periodType"`
	ReportedValue *struct {
		Raw float64 `json:"raw"`
	} `json:"reportedValue"`
}

func (p *YahooProvider) fetchTimeseries(symbol string, types []string) (map[time.Time]model.RawRow, error) {
	now := time.Now()
	u := fmt.Sprintf("https://query1.finance.yahoo.com/ws/fundamentals-timeseries/v1/finance/timeseries/%s?symbol=%s&type=%s&period1=%d&period2=%d",
		url.PathEscape(symbol), url.QueryEscape(symbol),
		strings.Join(types, ","),
		now.AddDate(-6, 0, 0).Unix(), now.Unix())

	body, err := p.get(u)
	if err != nil {
		return nil, err
	}

	var ts tsResponse
	if err := json.Unmarshal(body, &ts); err != nil {
		return nil, fmt.Errorf("yahoo decode timeseries: %w", err)
	}
	if ts.Timeseries.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", ts.Timeseries.Error.Description)
	}

	rows := make(map[time.Time]model.RawRow)
	for _, raw := range ts.Timeseries.Result {
		var meta tsMeta
		if err := json.Unmarshal(raw, &meta); err != nil || len(meta.Meta.Type) == 0 {
			continue
		}
		typ := meta.Meta.Type[0]

		var series map[string]json.RawMessage
		if err := json.Unmarshal(raw, &series); err != nil {
			continue
		}
		pointsRaw, ok := series[typ]
		if !ok {
			continue
		}
		var points []*tsPoint
		if err := json.Unmarshal(pointsRaw, &points); err != nil {
			continue
		}

		column := columnName(typ)
		for _, pt := range points {
			if pt == nil || pt.AsOfDate == "" || pt.PeriodType != "12M" {
				continue
			}
			date, err := time.ParseInLocation("2006-01-02", pt.AsOfDate, time.UTC)
			if err != nil {
				continue
			}
			row, ok := rows[date]
			if !ok {
				row = make(model.RawRow)
				rows[date] = row
			}
			if pt.ReportedValue != nil {
				v := pt.ReportedValue.Raw
				row[column] = &v
			} else {
				row[column] = nil
			}
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s annual statements", ErrNoData, symbol)
	}
	return rows, nil
}

// columnName converts a timeseries type key like
// "annualTotalLiabilitiesNetMinorityInterest" into the vendor's spaced
// column name "Total Liabilities Net Minority Interest". Runs of capitals
// (EPS, EBITDA) stay one word.
func columnName(typ string) string {
	typ = strings.TrimPrefix(typ, "annual")
	typ = strings.TrimPrefix(typ, "trailing")

	runes := []rune(typ)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency string `json:"currency"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (p *YahooProvider) PriceHistory(symbol string, years int) ([]model.PriceBar, string, error) {
	if years <= 0 {
		years = 5
	}
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%dy",
		url.PathEscape(symbol), years)

	body, err := p.get(u)
	if err != nil {
		return nil, "", err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, "", fmt.Errorf("yahoo decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, "", fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, "", fmt.Errorf("%w: %s price history", ErrNoData, symbol)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]model.PriceBar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.PriceBar{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, result.Meta.Currency, nil
}

func (p *YahooProvider) get(u string) ([]byte, error) {
	if err := p.limiter.Wait(context.Background()); err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: status 404", ErrNoData)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
