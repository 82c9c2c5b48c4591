// Package ticker maps free-text company names to exchange symbols.
package ticker

import "strings"

// nameTable maps well-known Korean and English company names to tickers.
// Lookups are exact after trimming and lowercasing.
var nameTable = map[string]string{
	"엔비디아":                "NVDA",
	"nvidia":              "NVDA",
	"애플":                  "AAPL",
	"apple":               "AAPL",
	"테슬라":                 "TSLA",
	"tesla":               "TSLA",
	"마이크로소프트":             "MSFT",
	"microsoft":           "MSFT",
	"알파벳":                 "GOOGL",
	"구글":                  "GOOGL",
	"google":              "GOOGL",
	"alphabet":            "GOOGL",
	"아마존":                 "AMZN",
	"amazon":              "AMZN",
	"메타":                  "META",
	"meta":                "META",
	"넷플릭스":                "NFLX",
	"netflix":             "NFLX",
	"삼성전자":                "005930.KS",
	"samsung electronics": "005930.KS",
	"sk하이닉스":              "000660.KS",
	"sk hynix":            "000660.KS",
	"현대차":                 "005380.KS",
	"hyundai motor":       "005380.KS",
	"카카오":                 "035720.KS",
	"kakao":               "035720.KS",
	"네이버":                 "035420.KS",
	"naver":               "035420.KS",
}

// Resolve maps a free-text name to a ticker symbol. Unknown input is not
// rejected: it passes through trimmed and uppercased, so a raw ticker typed
// directly still works.
func Resolve(input string) string {
	trimmed := strings.TrimSpace(input)
	if symbol, ok := nameTable[strings.ToLower(trimmed)]; ok {
		return symbol
	}
	return strings.ToUpper(trimmed)
}
