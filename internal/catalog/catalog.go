// Package catalog porte les mercuriales des quatre hôtels et la vue
// "données courantes" (concaténation des sources activées).
package catalog

import (
	"strconv"
	"strings"
)

// Source identifies the hotel a price list comes from.
type Source string

const (
	SourceFolkestone Source = "Folkestone"
	SourceVendome    Source = "Vendôme"
	SourceWashington Source = "Washington"
	SourceLeHavre    Source = "Le Havre"
)

// SourceOrder is the canonical display order. Current data is always
// rebuilt by concatenating enabled sources in this order; Folkestone is
// the reference source for header discovery.
var SourceOrder = []Source{SourceFolkestone, SourceVendome, SourceWashington, SourceLeHavre}

// ParseSource maps a user-supplied name (case/accent tolerant for the
// two accented sources) to a Source.
func ParseSource(name string) (Source, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "folkestone":
		return SourceFolkestone, true
	case "vendôme", "vendome":
		return SourceVendome, true
	case "washington":
		return SourceWashington, true
	case "le havre", "lehavre", "le-havre":
		return SourceLeHavre, true
	}
	return "", false
}

// Field names shared across the catalogs.
const (
	FieldCode  = "Code Produit"
	FieldLabel = "Libellé produit"
	FieldBrand = "Marque"
	FieldPrice = "Prix"
)

// Record is one raw catalog entry: field name to scalar value as
// decoded from JSON (string, float64 or nil).
type Record map[string]any

// Product is a record tagged with its source. Records are immutable
// once loaded; the product code is normalized to a canonical string at
// ingestion so lookups never rely on loose numeric comparison.
type Product struct {
	Source Source
	Fields Record
}

// Code returns the canonical product code.
func (p Product) Code() string { return p.Field(FieldCode) }

// Label returns the product label.
func (p Product) Label() string { return p.Field(FieldLabel) }

// Field returns the string form of a field value. Missing or null
// fields read as the empty string.
func (p Product) Field(name string) string {
	return FieldString(p.Fields[name])
}

// FieldString renders a raw record value the way it was written in the
// source document: JSON numbers without a trailing ".0", nil as "".
func FieldString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Store holds the per-source catalogs and the current data view.
// It is populated once by Load and read-only afterwards, except for
// SetEnabled which rebuilds the current view.
type Store struct {
	bySource map[Source][]Product
	enabled  map[Source]bool
	current  []Product
	headers  []string
}

// NewStore returns an empty store with every source enabled.
func NewStore() *Store {
	s := &Store{
		bySource: make(map[Source][]Product, len(SourceOrder)),
		enabled:  make(map[Source]bool, len(SourceOrder)),
	}
	for _, src := range SourceOrder {
		s.enabled[src] = true
	}
	return s
}

// Load tags every record with its source and normalizes product codes.
// headers is the ordered field-name set discovered from the first
// record of the reference source (the loader extracts it from the raw
// document, since decoded maps lose key order). Replaces any
// previously loaded data.
func (s *Store) Load(sources map[Source][]Record, headers []string) {
	s.bySource = make(map[Source][]Product, len(sources))
	for src, records := range sources {
		products := make([]Product, 0, len(records))
		for _, rec := range records {
			products = append(products, newProduct(src, rec))
		}
		s.bySource[src] = products
	}
	s.headers = headers
	s.rebuild()
}

func newProduct(src Source, rec Record) Product {
	fields := make(Record, len(rec))
	for k, v := range rec {
		fields[k] = v
	}
	// canonical code: always a trimmed string
	fields[FieldCode] = strings.TrimSpace(FieldString(fields[FieldCode]))
	return Product{Source: src, Fields: fields}
}

// Headers returns the field names discovered from the reference
// source, excluding system fields. Empty catalog yields an empty set.
func (s *Store) Headers() []string {
	out := make([]string, len(s.headers))
	copy(out, s.headers)
	return out
}

// SetEnabled replaces the enabled-source set and rebuilds current data
// from scratch. Enabling no source yields an empty view.
func (s *Store) SetEnabled(sources []Source) {
	s.enabled = make(map[Source]bool, len(sources))
	for _, src := range sources {
		s.enabled[src] = true
	}
	s.rebuild()
}

// Enabled reports whether a source currently contributes to the view.
func (s *Store) Enabled(src Source) bool { return s.enabled[src] }

func (s *Store) rebuild() {
	s.current = s.current[:0]
	for _, src := range SourceOrder {
		if s.enabled[src] {
			s.current = append(s.current, s.bySource[src]...)
		}
	}
}

// Current returns the concatenation of the enabled catalogs in
// canonical source order.
func (s *Store) Current() []Product {
	out := make([]Product, len(s.current))
	copy(out, s.current)
	return out
}

// All returns the union of every source regardless of the enabled set.
// Order additions look products up here: an article can be put in the
// order from a source that is filtered out of the view.
func (s *Store) All() []Product {
	var out []Product
	for _, src := range SourceOrder {
		out = append(out, s.bySource[src]...)
	}
	return out
}

// Find locates a product by canonical code and source across all
// catalogs.
func (s *Store) Find(code string, src Source) (Product, bool) {
	code = strings.TrimSpace(code)
	for _, p := range s.bySource[src] {
		if p.Code() == code {
			return p, true
		}
	}
	return Product{}, false
}

// Count returns the number of products in one source catalog.
func (s *Store) Count(src Source) int { return len(s.bySource[src]) }

// CurrentCount returns the size of the current data view.
func (s *Store) CurrentCount() int { return len(s.current) }

// Comparisons returns every product, across all sources, sharing the
// given code or exact label. Nil when fewer than two match: a price
// panel with a single entry compares nothing.
func (s *Store) Comparisons(code, label string) []Product {
	code = strings.TrimSpace(code)
	var out []Product
	for _, src := range SourceOrder {
		for _, p := range s.bySource[src] {
			if (code != "" && p.Code() == code) || (label != "" && p.Label() == label) {
				out = append(out, p)
			}
		}
	}
	if len(out) <= 1 {
		return nil
	}
	return out
}
