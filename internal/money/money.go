// Package money manipule les montants en centimes d'euro.
//
// Les prix des mercuriales arrivent sous forme de chaînes au format
// français ("19,99", "1 234,50") ou de nombres bruts. Tout est converti
// en centimes entiers à l'entrée, sommé en entiers, et reformaté à la
// sortie : aucune accumulation flottante, le total affiché est exact au
// centime près quel que soit le jeu de données.
package money

import (
	"math"
	"strconv"
	"strings"
)

// nbsp is the grouping separator used by the fr-FR locale.
const nbsp = " "

// ParseCents converts a locale-formatted price string to integer cents.
// Comma is the expected decimal separator, a plain dot is accepted as
// fallback. Currency suffix and grouping spaces are tolerated. Anything
// non numeric parses to 0.
func ParseCents(raw string) int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.TrimSuffix(s, "€")
	for _, sp := range []string{" ", nbsp, " "} {
		s = strings.ReplaceAll(s, sp, "")
	}
	if strings.Contains(s, ",") {
		// "1.234,56" -> dots are grouping, comma is decimal
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	// round, never truncate: 19.99 is stored as 19.990000000000002
	return int64(math.Round(f * 100))
}

// ParseCentsValue is ParseCents over a raw record value, which can be a
// string, a JSON number or nil.
func ParseCentsValue(v any) int64 {
	switch t := v.(type) {
	case nil:
		return 0
	case string:
		return ParseCents(t)
	case float64:
		return int64(math.Round(t * 100))
	case int:
		return int64(t) * 100
	case int64:
		return t * 100
	default:
		return 0
	}
}

// FormatCents renders cents as a French currency string, e.g.
// 123456 -> "1 234,56 €" (non-breaking spaces).
func FormatCents(cents int64) string {
	return groupThousands(FormatCentsPlain(cents)) + nbsp + "€"
}

// FormatCentsPlain renders cents with two decimals and a comma
// separator, without grouping nor suffix, e.g. 2250 -> "22,50".
// This is the cell format used in delimited exports.
func FormatCentsPlain(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + strconv.FormatInt(cents/100, 10) + "," + pad2(cents%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

func groupThousands(s string) string {
	intPart, frac, _ := strings.Cut(s, ",")
	neg := strings.HasPrefix(intPart, "-")
	digits := strings.TrimPrefix(intPart, "-")
	if len(digits) > 3 {
		var b strings.Builder
		head := len(digits) % 3
		if head > 0 {
			b.WriteString(digits[:head])
		}
		for i := head; i < len(digits); i += 3 {
			if b.Len() > 0 {
				b.WriteString(nbsp)
			}
			b.WriteString(digits[i : i+3])
		}
		digits = b.String()
	}
	out := digits + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
