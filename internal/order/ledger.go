// Package order maintient la commande en cours : articles
// sélectionnés, quantités, total en centimes.
package order

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/diewo77/go-mercuriale/internal/catalog"
	"github.com/diewo77/go-mercuriale/internal/money"
)

// Sentinel errors returned by Ledger.Add.
var (
	ErrAlreadyInOrder = errors.New("article déjà dans la commande")
	ErrNotFound       = errors.New("article introuvable")
)

// Line is one order entry: a product and its quantity. Quantity is
// always at least 1, a line that would drop to zero is removed instead.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// TotalCents is the line total, price times quantity in integer cents.
func (l Line) TotalCents() int64 {
	return money.ParseCentsValue(l.Product.Fields[catalog.FieldPrice]) * int64(l.Quantity)
}

// Ledger is the mutable order list. Insertion order is display order;
// at most one line per (code, source) pair.
type Ledger struct {
	lines []Line
}

// New returns an empty ledger.
func New() *Ledger { return &Ledger{} }

// Contains reports whether (code, source) is already in the order.
func (lg *Ledger) Contains(code string, src catalog.Source) bool {
	return lg.index(code, src) >= 0
}

func (lg *Ledger) index(code string, src catalog.Source) int {
	code = strings.TrimSpace(code)
	for i, l := range lg.lines {
		if l.Product.Code() == code && l.Product.Source == src {
			return i
		}
	}
	return -1
}

// Add looks (code, source) up in pool and appends it with quantity 1.
// The pool is the full multi-source product set, not the filtered
// view: an article can be ordered from a source that is currently
// hidden. Returns ErrAlreadyInOrder or ErrNotFound.
func (lg *Ledger) Add(code string, src catalog.Source, pool []catalog.Product) error {
	if lg.Contains(code, src) {
		return ErrAlreadyInOrder
	}
	code = strings.TrimSpace(code)
	for _, p := range pool {
		if p.Code() == code && p.Source == src {
			lg.lines = append(lg.lines, Line{Product: p, Quantity: 1})
			return nil
		}
	}
	return ErrNotFound
}

// AddMany appends every product not already present and skips
// duplicates. Partial success is the defined behavior: it never fails,
// the counts let the caller report what happened.
func (lg *Ledger) AddMany(products []catalog.Product) (added, skipped int) {
	for _, p := range products {
		if lg.Contains(p.Code(), p.Source) {
			skipped++
			continue
		}
		lg.lines = append(lg.lines, Line{Product: p, Quantity: 1})
		added++
	}
	return added, skipped
}

// Remove deletes the matching line and reports whether anything was
// removed. Removing an absent line is a no-op, not an error.
func (lg *Ledger) Remove(code string, src catalog.Source) bool {
	i := lg.index(code, src)
	if i < 0 {
		return false
	}
	lg.lines = append(lg.lines[:i], lg.lines[i+1:]...)
	return true
}

// SetQuantity parses raw as an integer quantity. Zero, negative or
// non-numeric input removes the line ("vider en mettant à zéro");
// otherwise the quantity is updated in place, position preserved.
func (lg *Ledger) SetQuantity(code string, src catalog.Source, raw string) {
	i := lg.index(code, src)
	if i < 0 {
		return
	}
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty <= 0 {
		lg.lines = append(lg.lines[:i], lg.lines[i+1:]...)
		return
	}
	lg.lines[i].Quantity = qty
}

// TotalCents sums price times quantity over the whole order in integer
// cents. No floating accumulation.
func (lg *Ledger) TotalCents() int64 {
	var total int64
	for _, l := range lg.lines {
		total += l.TotalCents()
	}
	return total
}

// Lines returns a snapshot of the order in insertion order.
func (lg *Ledger) Lines() []Line {
	out := make([]Line, len(lg.lines))
	copy(out, lg.lines)
	return out
}

// Len returns the number of lines.
func (lg *Ledger) Len() int { return len(lg.lines) }

// lineJSON is the persisted shape of one line.
type lineJSON struct {
	Source   catalog.Source `json:"source"`
	Quantity int            `json:"quantity"`
	Fields   catalog.Record `json:"fields"`
}

// MarshalJSON serializes the ledger for the state store.
func (lg *Ledger) MarshalJSON() ([]byte, error) {
	out := make([]lineJSON, len(lg.lines))
	for i, l := range lg.lines {
		out[i] = lineJSON{Source: l.Product.Source, Quantity: l.Quantity, Fields: l.Product.Fields}
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a persisted ledger. Lines with a non-positive
// quantity are dropped rather than kept, the invariant holds even over
// hand-edited state.
func (lg *Ledger) UnmarshalJSON(data []byte) error {
	var in []lineJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	lg.lines = lg.lines[:0]
	for _, l := range in {
		if l.Quantity <= 0 {
			continue
		}
		lg.lines = append(lg.lines, Line{
			Product:  catalog.Product{Source: l.Source, Fields: l.Fields},
			Quantity: l.Quantity,
		})
	}
	return nil
}
