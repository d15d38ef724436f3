// Package search évalue une requête sur les données courantes.
//
// Deux modes : recherche par sous-chaîne (sur un champ ou sur tous) et
// mode multi-codes, déclenché quand la requête sur le champ code est
// une liste d'au moins deux codes numériques courts — dans ce cas la
// correspondance est une égalité exacte, pas une sous-chaîne.
package search

import (
	"regexp"
	"strings"

	"github.com/diewo77/go-mercuriale/internal/catalog"
)

// FieldAll asks the matcher to look at every field, source included.
const FieldAll = "all"

// codeToken matches one multi-code token: 2 to 6 decimal digits.
var codeTokenRe = regexp.MustCompile(`^[0-9]{2,6}$`)

// MultiCodeTokens returns the token list when the query activates
// multi-code mode: split on whitespace, at least two tokens, every one
// of them a 2-6 digit code. Nil otherwise.
func MultiCodeTokens(query string) []string {
	tokens := strings.Fields(query)
	if len(tokens) < 2 {
		return nil
	}
	for _, tok := range tokens {
		if !codeTokenRe.MatchString(tok) {
			return nil
		}
	}
	return tokens
}

// Search filters data against query on the given field. An empty (or
// whitespace-only) query returns nil: no active search, which the
// caller distinguishes from a search with zero matches. Result order
// is the input order.
func Search(data []catalog.Product, query, field string) []catalog.Product {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	if field == catalog.FieldCode {
		if tokens := MultiCodeTokens(q); tokens != nil {
			return matchCodes(data, tokens)
		}
	}
	q = strings.ToLower(q)
	var out []catalog.Product
	for _, p := range data {
		if matches(p, q, field) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p catalog.Product, lowerQuery, field string) bool {
	if field != FieldAll {
		return strings.Contains(strings.ToLower(p.Field(field)), lowerQuery)
	}
	if strings.Contains(strings.ToLower(string(p.Source)), lowerQuery) {
		return true
	}
	for _, v := range p.Fields {
		if strings.Contains(strings.ToLower(catalog.FieldString(v)), lowerQuery) {
			return true
		}
	}
	return false
}

// matchCodes keeps products whose code equals any token exactly.
// Duplicated codes across sources are each included.
func matchCodes(data []catalog.Product, tokens []string) []catalog.Product {
	wanted := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		wanted[tok] = true
	}
	var out []catalog.Product
	for _, p := range data {
		if wanted[strings.TrimSpace(p.Code())] {
			out = append(out, p)
		}
	}
	return out
}

// Highlight wraps every case-insensitive occurrence of query in text
// between the left and right markers. The query is taken literally:
// regex metacharacters are escaped before matching.
func Highlight(text, query, left, right string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	re, err := regexp.Compile(`(?i)(` + regexp.QuoteMeta(q) + `)`)
	if err != nil {
		return text
	}
	return re.ReplaceAllString(text, left+"${1}"+right)
}

// HighlightTokens is the multi-code variant: each token is marked as a
// whole word, never as a digit substring of a longer code.
func HighlightTokens(text string, tokens []string, left, right string) string {
	if len(tokens) == 0 || text == "" {
		return text
	}
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	re, err := regexp.Compile(`\b(` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return text
	}
	return re.ReplaceAllString(text, left+"${1}"+right)
}
