package state

import "testing"

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := open(t)
	in := []string{"Libellé produit", "Prix"}
	if err := s.Put(KeyColumns, in); err != nil {
		t.Fatal(err)
	}
	var out []string
	found, err := s.Get(KeyColumns, &out)
	if err != nil || !found {
		t.Fatalf("Get = %v, %v", found, err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := open(t)
	if err := s.Put(KeyColumns, []string{"a"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(KeyColumns, []string{"b", "c"}); err != nil {
		t.Fatal(err)
	}
	var out []string
	if _, err := s.Get(KeyColumns, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0] != "b" {
		t.Errorf("after overwrite = %v, want [b c]", out)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := open(t)
	out := []string{"untouched"}
	found, err := s.Get("absente", &out)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("missing key reported as found")
	}
	if len(out) != 1 || out[0] != "untouched" {
		t.Errorf("out mutated on missing key: %v", out)
	}
}

func TestDelete(t *testing.T) {
	s := open(t)
	if err := s.Put(KeyOrder, map[string]int{"x": 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(KeyOrder); err != nil {
		t.Fatal(err)
	}
	var out map[string]int
	if found, _ := s.Get(KeyOrder, &out); found {
		t.Error("key still present after Delete")
	}
	if err := s.Delete("absente"); err != nil {
		t.Errorf("deleting a missing key should be a no-op, got %v", err)
	}
}

func TestOpenRejectsEmptyDSN(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("empty DSN must be refused")
	}
}
