package template

import (
	"strings"
	"time"

	"github.com/mailgun/raymond/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ruPrinter = message.NewPrinter(language.Russian)

func init() {
	raymond.RegisterHelper("formatPrice", formatPrice)
	raymond.RegisterHelper("formatDate", formatDate)
	raymond.RegisterHelper("ifCond", ifCond)
	raymond.RegisterHelper("truncate", truncate)
	raymond.RegisterHelper("getFeatureIcon", getFeatureIcon)
}

// formatPrice renders a price with Russian digit grouping and a ruble sign
func formatPrice(value interface{}) string {
	d, ok := toDecimal(value)
	if !ok {
		return ""
	}

	if d.IsInteger() {
		return ruPrinter.Sprintf("%v ₽", number.Decimal(d.IntPart()))
	}

	f, _ := d.Float64()
	return ruPrinter.Sprintf("%v ₽", number.Decimal(f, number.MaxFractionDigits(2)))
}

func toDecimal(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// formatDate renders a timestamp as dd.MM.yyyy
func formatDate(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format("02.01.2006")
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format("02.01.2006")
	default:
		return ""
	}
}

// ifCond is a comparison block helper: {{#ifCond a "==" b}}...{{/ifCond}}
func ifCond(a interface{}, op string, b interface{}, options *raymond.Options) interface{} {
	var truthy bool
	switch op {
	case "==":
		truthy = raymond.Str(a) == raymond.Str(b)
	case "!=":
		truthy = raymond.Str(a) != raymond.Str(b)
	case "<", "<=", ">", ">=":
		truthy = ordered(a, op, b)
	}

	if truthy {
		return options.Fn()
	}
	return options.Inverse()
}

// ordered compares numerically when both operands parse as numbers, so
// prices and counts are not compared as text; otherwise it falls back to
// lexicographic comparison.
func ordered(a interface{}, op string, b interface{}) bool {
	if ad, aok := toDecimal(a); aok {
		if bd, bok := toDecimal(b); bok {
			c := ad.Cmp(bd)
			switch op {
			case "<":
				return c < 0
			case "<=":
				return c <= 0
			case ">":
				return c > 0
			case ">=":
				return c >= 0
			}
		}
	}

	as, bs := raymond.Str(a), raymond.Str(b)
	switch op {
	case "<":
		return as < bs
	case "<=":
		return as <= bs
	case ">":
		return as > bs
	case ">=":
		return as >= bs
	}
	return false
}

// truncate shortens a string to max runes, appending an ellipsis
func truncate(value string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(strings.TrimSpace(value))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}

// featureIconKeywords are matched by containment, so "быстрая доставка"
// still gets the delivery icon. Stems cover the common inflections.
var featureIconKeywords = []struct {
	keyword string
	icon    string
}{
	{"ремонт", "🔧"},
	{"диагностик", "🔍"},
	{"обслуживан", "⚙️"},
	{"шиномонтаж", "🛞"},
	{"доставк", "🚚"},
	{"гаранти", "✅"},
}

// getFeatureIcon maps a feature or category name to a display emoji
func getFeatureIcon(category string) string {
	name := strings.ToLower(strings.TrimSpace(category))
	if name == "то" {
		return "⚙️"
	}
	for _, m := range featureIconKeywords {
		if strings.Contains(name, m.keyword) {
			return m.icon
		}
	}
	return "⭐"
}
