package columns

import (
	"errors"
	"testing"
)

var headers = []string{"Code Produit", "Libellé produit", "Marque", "Prix", "Conditionnement"}

func TestDefault(t *testing.T) {
	s := Default()
	want := []string{"Libellé produit", "Marque", "Prix"}
	got := s.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestToggle(t *testing.T) {
	s := Default()

	on, err := s.Toggle("Conditionnement", headers)
	if err != nil || !on {
		t.Fatalf("Toggle on = %v, %v", on, err)
	}
	// appended at the end: selection order is display order
	if got := s.Names(); got[len(got)-1] != "Conditionnement" {
		t.Errorf("new column not appended last: %v", got)
	}

	on, err = s.Toggle("Marque", headers)
	if err != nil || on {
		t.Fatalf("Toggle off = %v, %v", on, err)
	}
	if s.Contains("Marque") {
		t.Error("Marque still selected after toggle off")
	}

	if _, err := s.Toggle("Couleur", headers); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("unknown header: err = %v, want ErrUnknownColumn", err)
	}
}

func TestToggleNoDuplicates(t *testing.T) {
	s := Default()
	s.Toggle("Prix", headers) // off
	s.Toggle("Prix", headers) // on again
	count := 0
	for _, n := range s.Names() {
		if n == "Prix" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Prix selected %d times, want 1", count)
	}
}

func TestRestoreDedupes(t *testing.T) {
	s := Restore([]string{"Prix", "Marque", "Prix"})
	if got := s.Names(); len(got) != 2 || got[0] != "Prix" || got[1] != "Marque" {
		t.Errorf("Restore = %v, want [Prix Marque]", got)
	}
}
