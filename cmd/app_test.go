package cmd

import (
	"strings"
	"testing"

	"github.com/bricar/minimarket"
)

func testLedger(t *testing.T) *minimarket.Ledger {
	t.Helper()
	jsonl := `{"schema":1}
{"id":"aaaa1111-0000-0000-0000-000000000001","at":"2025-08-01T10:00:00Z","rate":36.5,"method":"Efectivo USD (Divisa)","totalUsd":2,"totalBsf":73,"items":[{"name":"Harina PAN","quantity":1,"price":{"currency":"USD","amount":2}}]}
{"id":"aaaa2222-0000-0000-0000-000000000002","at":"2025-08-01T11:00:00Z","rate":36.5,"method":"Crédito","customer":"Ana","totalUsd":2,"totalBsf":73,"items":[{"name":"Harina PAN","quantity":1,"price":{"currency":"USD","amount":2}}]}
`
	l, err := minimarket.DecodeSales(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("DecodeSales failed: %v", err)
	}
	return l
}

func TestFindSale(t *testing.T) {
	l := testLedger(t)

	s, err := findSale(l, "aaaa1111-0000-0000-0000-000000000001")
	if err != nil {
		t.Fatalf("full id lookup failed: %v", err)
	}
	if s.CustomerName != "" {
		t.Errorf("full id resolved the wrong sale: %+v", s)
	}

	s, err = findSale(l, "aaaa2222")
	if err != nil {
		t.Fatalf("prefix lookup failed: %v", err)
	}
	if s.CustomerName != "Ana" {
		t.Errorf("prefix resolved the wrong sale: %+v", s)
	}

	if _, err := findSale(l, "aaaa"); err == nil {
		t.Error("an ambiguous prefix must fail")
	}
	if _, err := findSale(l, "zzzz"); err == nil {
		t.Error("an unknown reference must fail")
	}
}

func TestFindProduct(t *testing.T) {
	cat := minimarket.NewCatalog()
	for _, p := range []minimarket.Product{
		{ID: "p-harina", Name: "Harina PAN", Price: minimarket.M(2, minimarket.USD), Barcode: "7591001000015"},
		{ID: "p-harina-trigo", Name: "Harina de trigo", Price: minimarket.M(1.8, minimarket.USD)},
		{ID: "p-refresco", Name: "Refresco 2L", Price: minimarket.M(1.5, minimarket.USD)},
	} {
		if err := cat.Upsert(p); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"p-refresco", "p-refresco", false},      // exact id
		{"7591001000015", "p-harina", false},     // barcode
		{"refresco", "p-refresco", false},        // unique name fragment
		{"harina", "", true},                     // ambiguous fragment
		{"cerveza", "", true},                    // no match
	}
	for _, tt := range tests {
		p, err := findProduct(cat, tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("findProduct(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if err == nil && p.ID != tt.want {
			t.Errorf("findProduct(%q) = %s, want %s", tt.ref, p.ID, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("aaaa1111-0000-0000-0000-000000000001"); got != "aaaa1111" {
		t.Errorf("shortID = %q, want aaaa1111", got)
	}
	if got := shortID("ab12"); got != "ab12" {
		t.Errorf("shortID = %q, short ids pass through", got)
	}
}
