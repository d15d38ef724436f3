package order

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/diewo77/go-mercuriale/internal/catalog"
	"github.com/diewo77/go-mercuriale/internal/money"
)

func mk(src catalog.Source, code, label, price string) catalog.Product {
	return catalog.Product{Source: src, Fields: catalog.Record{
		catalog.FieldCode:  code,
		catalog.FieldLabel: label,
		catalog.FieldPrice: price,
	}}
}

func testPool() []catalog.Product {
	return []catalog.Product{
		mk(catalog.SourceFolkestone, "100", "Beurre doux", "10,00"),
		mk(catalog.SourceVendome, "100", "Beurre doux", "12,50"),
		mk(catalog.SourceFolkestone, "200", "Farine T55", "2,50"),
	}
}

func TestAdd(t *testing.T) {
	lg := New()
	if err := lg.Add("100", catalog.SourceFolkestone, testPool()); err != nil {
		t.Fatal(err)
	}
	if lg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", lg.Len())
	}
	if got := lg.Lines()[0].Quantity; got != 1 {
		t.Errorf("default quantity = %d, want 1", got)
	}

	err := lg.Add("100", catalog.SourceFolkestone, testPool())
	if !errors.Is(err, ErrAlreadyInOrder) {
		t.Fatalf("second add: err = %v, want ErrAlreadyInOrder", err)
	}
	if lg.Len() != 1 {
		t.Errorf("failed add must not change the ledger, Len() = %d", lg.Len())
	}

	// same code, other source, is a distinct article
	if err := lg.Add("100", catalog.SourceVendome, testPool()); err != nil {
		t.Fatalf("same code other source: %v", err)
	}

	if err := lg.Add("999", catalog.SourceFolkestone, testPool()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown code: err = %v, want ErrNotFound", err)
	}
}

func TestAddMany(t *testing.T) {
	lg := New()
	if err := lg.Add("200", catalog.SourceFolkestone, testPool()); err != nil {
		t.Fatal(err)
	}
	added, skipped := lg.AddMany(testPool())
	if added != 2 || skipped != 1 {
		t.Errorf("AddMany = (%d, %d), want (2, 1)", added, skipped)
	}
	if lg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lg.Len())
	}
}

func TestRemove(t *testing.T) {
	lg := New()
	lg.AddMany(testPool())
	if !lg.Remove("100", catalog.SourceFolkestone) {
		t.Fatal("Remove should report a removal")
	}
	if lg.Remove("100", catalog.SourceFolkestone) {
		t.Error("second Remove should be a no-op")
	}
	if lg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", lg.Len())
	}
}

func TestSetQuantity(t *testing.T) {
	lg := New()
	lg.AddMany(testPool())

	lg.SetQuantity("100", catalog.SourceFolkestone, "5")
	lines := lg.Lines()
	if lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", lines[0].Quantity)
	}
	// position preserved
	if lines[0].Product.Source != catalog.SourceFolkestone || lines[0].Product.Code() != "100" {
		t.Error("SetQuantity reordered the ledger")
	}

	for _, raw := range []string{"0", "-3", "abc", ""} {
		lg := New()
		lg.AddMany(testPool())
		lg.SetQuantity("200", catalog.SourceFolkestone, raw)
		if lg.Contains("200", catalog.SourceFolkestone) {
			t.Errorf("SetQuantity(%q) should remove the line", raw)
		}
		if lg.Len() != 2 {
			t.Errorf("SetQuantity(%q): Len() = %d, want 2", raw, lg.Len())
		}
	}

	// unknown line: silent no-op
	lg.SetQuantity("999", catalog.SourceLeHavre, "4")
}

func TestTotalCents(t *testing.T) {
	lg := New()
	lg.AddMany(testPool()[:2]) // 10,00 + 12,50
	if got := lg.TotalCents(); got != 2250 {
		t.Fatalf("TotalCents() = %d, want 2250", got)
	}
	if got := money.FormatCentsPlain(lg.TotalCents()); got != "22,50" {
		t.Errorf("formatted total = %q, want \"22,50\"", got)
	}

	lg.SetQuantity("100", catalog.SourceVendome, "3")
	if got := lg.TotalCents(); got != 1000+3*1250 {
		t.Errorf("TotalCents() = %d, want %d", got, 1000+3*1250)
	}
}

func TestTotalCentsExactOverDriftingPrices(t *testing.T) {
	// 19,99 and 0,1 both lack an exact binary representation; float
	// accumulation over enough rows drifts off the cent.
	pool := []catalog.Product{
		mk(catalog.SourceFolkestone, "10", "A", "19,99"),
		mk(catalog.SourceFolkestone, "11", "B", "0,1"),
	}
	lg := New()
	lg.AddMany(pool)
	lg.SetQuantity("10", catalog.SourceFolkestone, "333")
	lg.SetQuantity("11", catalog.SourceFolkestone, "1000")
	want := int64(333*1999 + 1000*10)
	if got := lg.TotalCents(); got != want {
		t.Errorf("TotalCents() = %d, want %d", got, want)
	}
}

func TestLedgerJSONRoundTrip(t *testing.T) {
	lg := New()
	lg.AddMany(testPool())
	lg.SetQuantity("100", catalog.SourceVendome, "7")

	data, err := json.Marshal(lg)
	if err != nil {
		t.Fatal(err)
	}
	restored := New()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatal(err)
	}
	if restored.Len() != lg.Len() {
		t.Fatalf("restored Len() = %d, want %d", restored.Len(), lg.Len())
	}
	if restored.TotalCents() != lg.TotalCents() {
		t.Errorf("restored total = %d, want %d", restored.TotalCents(), lg.TotalCents())
	}
	got := restored.Lines()
	if got[1].Product.Source != catalog.SourceVendome || got[1].Quantity != 7 {
		t.Errorf("restored line = %+v", got[1])
	}
}

func TestLedgerUnmarshalDropsNonPositiveQuantities(t *testing.T) {
	data := []byte(`[
		{"source":"Folkestone","quantity":0,"fields":{"Code Produit":"100","Prix":"10,00"}},
		{"source":"Vendôme","quantity":2,"fields":{"Code Produit":"100","Prix":"12,50"}}
	]`)
	lg := New()
	if err := json.Unmarshal(data, lg); err != nil {
		t.Fatal(err)
	}
	if lg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (zero-quantity line dropped)", lg.Len())
	}
}
