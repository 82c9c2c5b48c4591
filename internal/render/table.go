package render

import (
	"fmt"
	"strings"

	"FinSight/internal/model"
)

// Table formats the report as an aligned text table, one row per year,
// oldest first.
func Table(r *model.Report) string {
	krw := r.IsKRW()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s annual analysis (%s) | %s\n\n",
		r.Symbol, r.Currency, r.GeneratedAt.Format("2006-01-02")))

	const rowFormat = "%-6s %-18s %-18s %-10s %-16s %-10s\n"
	b.WriteString(fmt.Sprintf(rowFormat,
		"Year", "Revenue", "Op Income", "EPS", "PER Range", "Debt Ratio"))
	b.WriteString(strings.Repeat("-", 82) + "\n")

	for _, rec := range r.Years {
		b.WriteString(fmt.Sprintf(rowFormat,
			fmt.Sprintf("%d", rec.Year),
			FormatCurrency(rec.Revenue, true, krw),
			FormatCurrency(rec.OperatingIncome, true, krw),
			FormatEPS(rec.EPS, krw),
			FormatPERRange(rec),
			FormatDebtRatio(rec.DebtRatio),
		))
	}

	b.WriteString("\nDebt ratio = total liabilities / stockholders' equity. PER range uses the year's price low/high against annual EPS.\n")
	return b.String()
}
