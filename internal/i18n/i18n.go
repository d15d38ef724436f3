// Package i18n fournit les messages de l'outil en français (défaut)
// et en anglais.
package i18n

import "strings"

// translations maps message code -> lang -> text. French is the
// reference: every code has an fr entry.
var translations = map[string]map[string]string{
	"item_added":       {"fr": "Article ajouté", "en": "Item added"},
	"item_removed":     {"fr": "Article retiré", "en": "Item removed"},
	"item_absent":      {"fr": "Article absent de la commande", "en": "Item not in the order"},
	"already_in_order": {"fr": "Cet article est déjà dans la commande.", "en": "This item is already in the order."},
	"not_found":        {"fr": "Article introuvable dans les mercuriales.", "en": "Item not found in any price list."},
	"no_results":       {"fr": "Aucun résultat", "en": "No results"},
	"order_empty":      {"fr": "Aucun article ajouté.", "en": "No items in the order."},
	"order_total":      {"fr": "Total de la commande", "en": "Order total"},
	"load_error":       {"fr": "Erreur : impossible de charger les données.", "en": "Error: could not load the data."},
	"products":         {"fr": "produits", "en": "products"},
	"quantity":         {"fr": "Quantité", "en": "Quantity"},
	"no_comparison":    {"fr": "Aucune comparaison de prix disponible.", "en": "No price comparison available."},
	"export_written":   {"fr": "Export écrit dans", "en": "Export written to"},
	"quantity_updated": {"fr": "Quantité mise à jour", "en": "Quantity updated"},
}

// DetectLanguage maps an Accept-Language style value (or LANG env
// value) to a supported language. French is the default.
func DetectLanguage(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if strings.HasPrefix(h, "en") {
		return "en"
	}
	return "fr"
}

// T returns the translation of code in lang, falling back to French,
// then to the code itself for unknown codes.
func T(lang, code string) string {
	m, ok := translations[code]
	if !ok {
		return code
	}
	if v, ok := m[lang]; ok {
		return v
	}
	return m["fr"]
}
