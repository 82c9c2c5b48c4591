package resolver

import (
	"sort"
	"strings"
	"time"

	"FinSight/internal/model"
)

// Rule matches a vendor column name by case-sensitive substring containment,
// the way data vendors' near-but-not-quite-standard names are actually found.
type Rule struct {
	Field   model.LogicalField
	Pattern string
}

// Rules is the resolution precedence, kept as data so vendor variations can
// be extended without touching the calculator. For each logical field the
// first rule with any matching column wins.
var Rules = []Rule{
	{model.FieldRevenue, "Total Revenue"},
	{model.FieldOperatingIncome, "Operating Income"},
	{model.FieldTotalLiabilities, "Total Liabilities Net Minority Interest"},
	{model.FieldTotalLiabilities, "Total Liabilities"},
	{model.FieldStockholdersEquity, "Stockholders Equity"},
	{model.FieldStockholdersEquity, "Common Stock Equity"},
	{model.FieldEPS, "Diluted EPS"},
	{model.FieldEPS, "Basic EPS"},
}

// Resolve picks the raw column name for one logical field. Candidates are
// scanned in sorted order so the choice never depends on map iteration order.
func Resolve(names []string, field model.LogicalField) (string, bool) {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for _, r := range Rules {
		if r.Field != field {
			continue
		}
		for _, n := range sorted {
			if strings.Contains(n, r.Pattern) {
				return n, true
			}
		}
	}
	return "", false
}

// ResolveStatements builds the field map for one issuer: income-side fields
// resolve against the income-statement columns, balance-side fields against
// the balance-sheet columns. Unresolvable fields are left out of the map.
func ResolveStatements(incomeNames, balanceNames []string) model.FieldMap {
	fm := make(model.FieldMap)
	byField := map[model.LogicalField][]string{
		model.FieldRevenue:            incomeNames,
		model.FieldOperatingIncome:    incomeNames,
		model.FieldEPS:                incomeNames,
		model.FieldTotalLiabilities:   balanceNames,
		model.FieldStockholdersEquity: balanceNames,
	}
	for _, field := range model.AllFields {
		if name, ok := Resolve(byField[field], field); ok {
			fm[field] = name
		}
	}
	return fm
}

// ColumnNames collects the distinct column names across all rows of one
// statement set.
func ColumnNames(rows map[time.Time]model.RawRow) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for name := range row {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
