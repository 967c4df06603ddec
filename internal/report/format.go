package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatValue renders a number the way the dashboard shows it, ex.
// 1234.5 -> "$1,234.50" as currency, "1,234.5%" as percent.
func FormatValue(format Format, value decimal.Decimal) string {
	switch format {
	case FormatCurrency:
		sign := ""
		if value.IsNegative() {
			sign = "-"
			value = value.Neg()
		}
		return sign + "$" + groupThousands(value.StringFixed(2))
	case FormatPercent:
		return groupThousands(value.StringFixed(1)) + "%"
	case FormatCount:
		return groupThousands(value.Round(0).String())
	default:
		return groupThousands(value.Round(2).String())
	}
}

func groupThousands(number string) string {
	sign := ""
	if strings.HasPrefix(number, "-") {
		sign = "-"
		number = number[1:]
	}
	whole, frac, hasFrac := strings.Cut(number, ".")

	var out strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(r)
	}
	if hasFrac {
		out.WriteByte('.')
		out.WriteString(frac)
	}
	return sign + out.String()
}

// Rate is num / den * 100, or zero when den is zero.
func Rate(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}

// Ratio is num / den, or zero when den is zero.
func Ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}
