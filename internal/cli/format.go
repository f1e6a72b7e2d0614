// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Money formats currency amounts for one locale.
type Money struct {
	Symbol       string
	ThousandsSep string // empty disables grouping
	DecimalSep   string
}

// BRL is the default locale: R$ 1.234,56.
var BRL = Money{Symbol: "R$", ThousandsSep: ".", DecimalSep: ","}

// Format renders an amount with two decimals, e.g. "R$ 1.234,56".
func (m Money) Format(v float64) string {
	return m.prefix(v) + humanize.FormatFloat(m.pattern(2), math.Abs(v))
}

// FormatWhole renders an amount rounded to whole units, e.g. "R$ 1.235".
func (m Money) FormatWhole(v float64) string {
	return m.prefix(v) + humanize.FormatFloat(m.pattern(0), math.Abs(math.Round(v)))
}

// FormatCompact shortens large amounts for narrow layouts:
// >= 1,000,000 -> "R$ 1.2M", >= 100,000 -> "R$ 123k", otherwise Format.
func (m Money) FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return m.prefix(v) + m.localize(strconv.FormatFloat(abs/1_000_000, 'f', 1, 64)) + "M"
	case abs >= 100_000:
		return m.prefix(v) + strconv.FormatFloat(abs/1000, 'f', 0, 64) + "k"
	default:
		return m.Format(v)
	}
}

func (m Money) prefix(v float64) string {
	sign := ""
	if v < 0 && math.Round(math.Abs(v)*100) != 0 {
		sign = "-"
	}
	if m.Symbol == "" {
		return sign
	}
	return sign + m.Symbol + " "
}

// pattern builds a go-humanize format directive such as "#.###,##".
func (m Money) pattern(precision int) string {
	dec := m.DecimalSep
	if dec == "" {
		dec = "."
	}
	var b strings.Builder
	b.WriteString("#")
	if m.ThousandsSep != "" {
		b.WriteString(m.ThousandsSep)
	}
	b.WriteString("###")
	// A trailing separator with no digits means precision 0.
	b.WriteString(dec)
	b.WriteString(strings.Repeat("#", precision))
	return b.String()
}

// Editable renders v the way Parse reads it back: no symbol, no grouping,
// the locale's decimal separator and the shortest exact digits.
// e.g. BRL: 0.125 -> "0,125", 2500.125 -> "2500,125"
func (m Money) Editable(v float64) string {
	return m.localize(strconv.FormatFloat(v, 'f', -1, 64))
}

func (m Money) localize(s string) string {
	if m.DecimalSep == "" || m.DecimalSep == "." {
		return s
	}
	return strings.Replace(s, ".", m.DecimalSep, 1)
}

// Parse reads an amount typed in this locale, e.g. "R$ 1.234,56", "1234,5"
// or "1.5". A thousands separator that is not followed by groups of three
// digits is taken as the decimal point.
func (m Money) Parse(s string) (float64, error) {
	orig := s
	s = strings.TrimSpace(s)
	if m.Symbol != "" {
		s = strings.TrimPrefix(s, m.Symbol)
	}
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, nil
	}

	dec := m.DecimalSep
	if dec == "" {
		dec = "."
	}
	intPart, frac, hasDec := strings.Cut(s, dec)

	if m.ThousandsSep != "" && strings.Contains(intPart, m.ThousandsSep) {
		groups := strings.Split(intPart, m.ThousandsSep)
		grouped := true
		for _, g := range groups[1:] {
			if len(g) != 3 {
				grouped = false
				break
			}
		}
		switch {
		case grouped:
			intPart = strings.Join(groups, "")
		case !hasDec && len(groups) == 2:
			intPart, frac, hasDec = groups[0], groups[1], true
		default:
			return 0, fmt.Errorf("invalid amount %q", orig)
		}
	}

	num := intPart
	if hasDec {
		num += "." + frac
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", orig)
	}
	return v, nil
}

// FormatRate formats a monthly percentage rate, e.g. "1.00% / month".
func FormatRate(pct float64) string {
	return fmt.Sprintf("%.2f%% / month", pct)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatHorizon formats a month count, adding the year equivalent when exact.
// e.g., 1 -> "1 month", 18 -> "18 months", 1200 -> "1,200 months (100 years)"
func FormatHorizon(months int) string {
	var s string
	if months == 1 {
		s = "1 month"
	} else {
		s = FormatNumber(int64(months)) + " months"
	}
	if months >= 12 && months%12 == 0 {
		years := months / 12
		if years == 1 {
			return s + " (1 year)"
		}
		return s + " (" + FormatNumber(int64(years)) + " years)"
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}
