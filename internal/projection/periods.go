package projection

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/flynn/internal/model"
)

// Periods names the series labels in one language. Many is a format with a
// single %d verb.
type Periods struct {
	Start string
	One   string
	Many  string
}

var (
	English    = Periods{Start: LabelStart, One: "1 month", Many: "%d months"}
	Portuguese = Periods{Start: "Início", One: "1 mês", Many: "%d meses"}
	German     = Periods{Start: "Start", One: "1 Monat", Many: "%d Monate"}
)

// PeriodsFor picks labels for a language tag such as "pt-BR" or "en".
// Unknown tags get English.
func PeriodsFor(lang string) Periods {
	tag := strings.ToLower(strings.TrimSpace(lang))
	switch {
	case strings.HasPrefix(tag, "pt"):
		return Portuguese
	case strings.HasPrefix(tag, "de"):
		return German
	default:
		return English
	}
}

// Label returns the tag for a month index. The zero Periods falls back to
// English.
func (ps Periods) Label(month int) string {
	if ps == (Periods{}) {
		ps = English
	}
	switch {
	case month <= 0:
		return ps.Start
	case month == 1:
		return ps.One
	default:
		return fmt.Sprintf(ps.Many, month)
	}
}

// Labels relabels every point of r's series.
func (ps Periods) Labels(r model.ProjectionResult) []string {
	out := make([]string, len(r.Series))
	for i, p := range r.Series {
		out[i] = ps.Label(p.Month)
	}
	return out
}
