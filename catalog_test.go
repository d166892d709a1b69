package minimarket

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCatalogUpsertDefaults(t *testing.T) {
	c := NewCatalog()
	if err := c.Upsert(Product{ID: "x", Name: "Hielo", Price: USDm(1)}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	p, _ := c.Get("x")
	if p.Unit != "Unidad" {
		t.Errorf("Unit = %q, want Unidad", p.Unit)
	}
	if p.UnitsPerCase != 1 {
		t.Errorf("UnitsPerCase = %d, want 1", p.UnitsPerCase)
	}
	if p.Category != Otros {
		t.Errorf("Category = %q, want Otros", p.Category)
	}
}

func TestCatalogUpsertValidation(t *testing.T) {
	c := NewCatalog()
	testCases := []struct {
		name    string
		product Product
	}{
		{"no id", Product{Name: "x", Price: USDm(1)}},
		{"no name", Product{ID: "x", Price: USDm(1)}},
		{"blank name", Product{ID: "x", Name: "   ", Price: USDm(1)}},
		{"negative price", Product{ID: "x", Name: "x", Price: USDm(-1)}},
		{"no currency", Product{ID: "x", Name: "x"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.Upsert(tc.product)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Upsert() error = %v, want a ValidationError", err)
			}
		})
	}
}

func TestCatalogUpsertReplaces(t *testing.T) {
	c := testCatalog()
	c.Upsert(Product{ID: "p-harina", Name: "Harina PAN 1Kg", Price: USDm(2.10)})
	p, _ := c.Get("p-harina")
	if p.Name != "Harina PAN 1Kg" || !p.Price.Equal(USDm(2.10)) {
		t.Errorf("edited product = %+v", p)
	}
	// replacement is total: the old stock and barcode are gone unless resent
	if !p.Stock.IsZero() || p.Barcode != "" {
		t.Errorf("Upsert should replace the record in full, got stock=%s barcode=%q", p.Stock, p.Barcode)
	}
}

func TestPriceFromCost(t *testing.T) {
	cost := USDm(10)
	price := PriceFromCost(cost, decimal.NewFromInt(30))
	if !price.Equal(USDm(13)) {
		t.Errorf("PriceFromCost(10, 30%%) = %s, want $13.00", price)
	}
	// rounds to cents
	price = PriceFromCost(USDm(1), decimal.NewFromFloat(33.333))
	if !price.Equal(USDm(1.33)) {
		t.Errorf("PriceFromCost(1, 33.333%%) = %s, want $1.33", price)
	}
}

func TestCatalogReserveAndRestore(t *testing.T) {
	c := testCatalog()

	if err := c.Reserve("p-harina", Q(7)); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	p, _ := c.Get("p-harina")
	if !p.Stock.Equal(Q(3)) {
		t.Errorf("stock after reserve = %s, want 3", p.Stock)
	}

	// over-reserving fails and reports the shortage
	err := c.Reserve("p-harina", Q(9))
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("Reserve() error = %v, want InsufficientStockError", err)
	}
	if !stockErr.Available.Equal(Q(3)) || !stockErr.Requested.Equal(Q(9)) {
		t.Errorf("shortage = %+v", stockErr)
	}

	c.Restore("p-harina", Q(7))
	p, _ = c.Get("p-harina")
	if !p.Stock.Equal(Q(10)) {
		t.Errorf("stock after restore = %s, want 10", p.Stock)
	}

	// restoring a deleted product is a silent no-op
	c.Restore("p-gone", Q(5))

	if err := c.Reserve("p-gone", Q(1)); !errors.Is(err, ErrNotFound) {
		t.Errorf("Reserve on a missing product = %v, want ErrNotFound", err)
	}
}

func TestCatalogAdjustStock(t *testing.T) {
	c := testCatalog()
	if err := c.AdjustStock("p-harina", Q(-12)); err != nil {
		t.Fatalf("negative stock is allowed by default: %v", err)
	}
	p, _ := c.Get("p-harina")
	if !p.Stock.Equal(Q(-2)) {
		t.Errorf("stock = %s, want -2", p.Stock)
	}

	c.SetStrict(true)
	if err := c.AdjustStock("p-refresco", Q(-7)); err == nil {
		t.Error("strict mode should reject an adjustment leaving negative stock")
	}
}

func TestCatalogSearch(t *testing.T) {
	c := testCatalog()
	if got := c.Search("harina"); len(got) != 1 || got[0].ID != "p-harina" {
		t.Errorf("Search(harina) = %v", got)
	}
	if got := c.Search("7591001000022"); len(got) != 1 || got[0].ID != "p-refresco" {
		t.Errorf("Search by barcode = %v", got)
	}
	if got := c.Search(""); len(got) != 3 {
		t.Errorf("empty search should list everything, got %d", len(got))
	}
	if p, ok := c.FindByBarcode("7591001000015"); !ok || p.ID != "p-harina" {
		t.Errorf("FindByBarcode = %v, %v", p, ok)
	}
	if _, ok := c.FindByBarcode(""); ok {
		t.Error("an empty barcode must never match")
	}
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		in   string
		want Category
	}{
		{"Víveres", Viveres},
		{"viveres", Viveres},
		{"lacteos", Lacteos},
		{"", Otros},
		{"charcuteria", Charcuteria},
	}
	for _, tc := range testCases {
		got, err := ParseCategory(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseCategory(%q) = %q, %v, want %q", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseCategory("electronics"); err == nil {
		t.Error("unknown category should fail")
	}
}
