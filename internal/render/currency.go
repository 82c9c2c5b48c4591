package render

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"FinSight/internal/model"
)

// FormatCurrency renders a raw monetary magnitude as an abbreviated string.
// Zero and "no data" both render "-", matching the reference behavior; the
// ambiguity is deliberate. Scale thresholds apply to the absolute value, so
// the sign survives scaling.
func FormatCurrency(value float64, valid bool, krw bool) string {
	if !valid || value == 0 {
		return "-"
	}
	abs := math.Abs(value)
	if krw {
		switch {
		case abs >= 1e12:
			return humanize.FormatFloat("#,###.#", value/1e12) + "조"
		case abs >= 1e8:
			return humanize.FormatFloat("#,###.", value/1e8) + "억"
		default:
			return "₩ " + humanize.FormatFloat("#,###.", value)
		}
	}
	switch {
	case abs >= 1e9:
		return "$ " + humanize.FormatFloat("#,###.##", value/1e9) + " B"
	case abs >= 1e6:
		return "$ " + humanize.FormatFloat("#,###.##", value/1e6) + " M"
	default:
		return "$ " + humanize.FormatFloat("#,###.", value)
	}
}

// FormatEPS renders earnings per share: two decimals, whole units for KRW.
func FormatEPS(eps model.Metric, krw bool) string {
	if !eps.Valid {
		return "-"
	}
	if krw {
		return fmt.Sprintf("%.0f", eps.Value)
	}
	return fmt.Sprintf("%.2f", eps.Value)
}

// FormatDebtRatio renders the liabilities/equity ratio, unscaled
// (1.00 = liabilities equal equity).
func FormatDebtRatio(ratio model.Metric) string {
	if !ratio.Valid {
		return "-"
	}
	return fmt.Sprintf("%.2f", ratio.Value)
}

// FormatPERRange renders the implied price-to-earnings range for one year.
// A loss year reads differently from a year with no usable data.
func FormatPERRange(rec model.YearRecord) string {
	switch rec.PERStatus {
	case model.PEROK:
		return fmt.Sprintf("%.1f ~ %.1fx", rec.PERLow, rec.PERHigh)
	case model.PERLoss:
		return "N/A (loss)"
	default:
		return "-"
	}
}
