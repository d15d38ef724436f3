// Package columns gère la sélection de colonnes affichées dans les
// résultats, la commande et les exports.
package columns

import "errors"

// ErrUnknownColumn is returned when a toggled name is not one of the
// discovered headers.
var ErrUnknownColumn = errors.New("colonne inconnue")

// DefaultNames is the selection used when nothing is persisted yet.
func DefaultNames() []string {
	return []string{"Libellé produit", "Marque", "Prix"}
}

// Selection is an ordered, duplicate-free subset of the discovered
// headers. Selection order is display order.
type Selection struct {
	names []string
}

// Default returns the initial three-column selection.
func Default() *Selection {
	return &Selection{names: DefaultNames()}
}

// Restore builds a selection from persisted names, dropping
// duplicates while keeping first-seen order.
func Restore(names []string) *Selection {
	s := &Selection{}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		s.names = append(s.names, n)
	}
	return s
}

// Names returns the selection in display order.
func (s *Selection) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Contains reports whether a column is selected.
func (s *Selection) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Toggle removes name if selected, otherwise appends it at the end.
// Membership is an exact string match against the discovered headers;
// an unknown name is refused. Returns whether the column is selected
// after the call.
func (s *Selection) Toggle(name string, headers []string) (bool, error) {
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return false, nil
		}
	}
	known := false
	for _, h := range headers {
		if h == name {
			known = true
			break
		}
	}
	if !known {
		return false, ErrUnknownColumn
	}
	s.names = append(s.names, name)
	return true, nil
}
