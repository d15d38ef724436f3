// Package engine relie le catalogue, la commande et la sélection de
// colonnes en un objet d'état unique.
//
// Toute mutation passe par une méthode du moteur ; aucune variable
// globale, aucun callback. La couche de présentation (les commandes
// CLI) interroge le moteur après chaque mutation. Chaque mutation de
// la commande ou des colonnes est persistée immédiatement ; une erreur
// d'écriture est journalisée, jamais fatale.
package engine

import (
	"log"

	"github.com/diewo77/go-mercuriale/internal/catalog"
	"github.com/diewo77/go-mercuriale/internal/columns"
	"github.com/diewo77/go-mercuriale/internal/order"
	"github.com/diewo77/go-mercuriale/internal/search"
	"github.com/diewo77/go-mercuriale/internal/state"
)

// Engine owns the session state.
type Engine struct {
	cat    *catalog.Store
	ledger *order.Ledger
	cols   *columns.Selection
	store  *state.Store
}

// New builds an engine over a loaded catalog, restoring the order and
// column selection from the state store. Absent keys mean an empty
// order and the default selection.
func New(cat *catalog.Store, store *state.Store) (*Engine, error) {
	e := &Engine{cat: cat, ledger: order.New(), cols: columns.Default(), store: store}

	if found, err := store.Get(state.KeyOrder, e.ledger); err != nil {
		return nil, err
	} else if !found {
		e.ledger = order.New()
	}

	var names []string
	if found, err := store.Get(state.KeyColumns, &names); err != nil {
		return nil, err
	} else if found {
		e.cols = columns.Restore(names)
	}
	return e, nil
}

// --- queries ---

// Search evaluates a query against the current data.
func (e *Engine) Search(query, field string) []catalog.Product {
	return search.Search(e.cat.Current(), query, field)
}

// Comparisons returns the cross-source price comparison for a product.
func (e *Engine) Comparisons(code, label string) []catalog.Product {
	return e.cat.Comparisons(code, label)
}

// OrderLines returns the order snapshot in insertion order.
func (e *Engine) OrderLines() []order.Line { return e.ledger.Lines() }

// OrderLen returns the number of order lines.
func (e *Engine) OrderLen() int { return e.ledger.Len() }

// InOrder reports whether (code, source) is in the order.
func (e *Engine) InOrder(code string, src catalog.Source) bool {
	return e.ledger.Contains(code, src)
}

// TotalCents returns the order total in cents.
func (e *Engine) TotalCents() int64 { return e.ledger.TotalCents() }

// Headers returns the discovered header set.
func (e *Engine) Headers() []string { return e.cat.Headers() }

// Columns returns the column selection in display order.
func (e *Engine) Columns() []string { return e.cols.Names() }

// Catalog exposes the read-only catalog store.
func (e *Engine) Catalog() *catalog.Store { return e.cat }

// --- mutators ---

// SetEnabledSources replaces the enabled-source set. The view is
// session state, it is not persisted.
func (e *Engine) SetEnabledSources(sources []catalog.Source) {
	e.cat.SetEnabled(sources)
}

// Add puts a product in the order, looked up across every source.
func (e *Engine) Add(code string, src catalog.Source) error {
	if err := e.ledger.Add(code, src, e.cat.All()); err != nil {
		return err
	}
	e.persistOrder()
	return nil
}

// AddMany adds every product not already present, skipping duplicates.
func (e *Engine) AddMany(products []catalog.Product) (added, skipped int) {
	added, skipped = e.ledger.AddMany(products)
	if added > 0 {
		e.persistOrder()
	}
	return added, skipped
}

// Remove drops a line and reports whether anything was removed.
func (e *Engine) Remove(code string, src catalog.Source) bool {
	removed := e.ledger.Remove(code, src)
	if removed {
		e.persistOrder()
	}
	return removed
}

// SetQuantity updates a line quantity; non-positive or non-numeric
// input removes the line.
func (e *Engine) SetQuantity(code string, src catalog.Source, raw string) {
	e.ledger.SetQuantity(code, src, raw)
	e.persistOrder()
}

// ToggleColumn flips a column in or out of the selection.
func (e *Engine) ToggleColumn(name string) (bool, error) {
	on, err := e.cols.Toggle(name, e.cat.Headers())
	if err != nil {
		return false, err
	}
	if err := e.store.Put(state.KeyColumns, e.cols.Names()); err != nil {
		log.Printf("persistance colonnes: %v", err)
	}
	return on, nil
}

func (e *Engine) persistOrder() {
	if err := e.store.Put(state.KeyOrder, e.ledger); err != nil {
		log.Printf("persistance commande: %v", err)
	}
}
