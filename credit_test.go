package minimarket

import (
	"errors"
	"testing"
)

// commitCredit commits a credit sale of 2 Harina for the given customer.
func commitCredit(t *testing.T, l *Ledger, c *Catalog, customer string) Sale {
	t.Helper()
	cart := NewCart()
	if err := cart.AddItem(c, "p-harina", Q(2)); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	sale, err := l.Commit(cart, c, MustRate(36.5), Credito, customer, "")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	return sale
}

func TestOpenDebts(t *testing.T) {
	c := testCatalog()
	l := NewLedger()

	if debts := l.OpenDebts(); len(debts) != 0 {
		t.Fatalf("OpenDebts() on fresh ledger = %d entries", len(debts))
	}

	commitHarina(t, l, c) // cash, never a debt
	ana := commitCredit(t, l, c, "Ana")
	luis := commitCredit(t, l, c, "Luis")

	debts := l.OpenDebts()
	if len(debts) != 2 {
		t.Fatalf("OpenDebts() = %d entries, want 2", len(debts))
	}
	// commit order
	if debts[0].ID != ana.ID || debts[1].ID != luis.ID {
		t.Errorf("OpenDebts() order = %s, %s", debts[0].CustomerName, debts[1].CustomerName)
	}
}

func TestOpenDebtsFor(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	commitCredit(t, l, c, "Ana María")
	commitCredit(t, l, c, "Luis")

	tests := []struct {
		term string
		want int
	}{
		{"ana", 1},
		{"MARÍA", 1},
		{"luis", 1},
		{"pedro", 0},
		{"", 2},
		{"  ana  ", 1},
	}
	for _, tt := range tests {
		if got := l.OpenDebtsFor(tt.term); len(got) != tt.want {
			t.Errorf("OpenDebtsFor(%q) = %d entries, want %d", tt.term, len(got), tt.want)
		}
	}
}

func TestTotalOpen(t *testing.T) {
	c := testCatalog()
	l := NewLedger()

	usd, bsf := l.TotalOpen()
	if !usd.IsZero() || !bsf.IsZero() {
		t.Errorf("fresh ledger TotalOpen = %s / %s, want zero", usd, bsf)
	}

	commitCredit(t, l, c, "Ana")  // $4.00 / 146 Bs.
	commitCredit(t, l, c, "Luis") // $4.00 / 146 Bs.
	commitHarina(t, l, c)         // cash, excluded

	usd, bsf = l.TotalOpen()
	if !usd.Equal(USDm(8)) {
		t.Errorf("TotalOpen usd = %s, want $8.00", usd)
	}
	if !bsf.Equal(BSFm(292)) {
		t.Errorf("TotalOpen bsf = %s, want 292.00 Bs.", bsf)
	}
}

func TestSettle(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	sale := commitCredit(t, l, c, "Ana")

	settled, err := l.Settle(sale.ID, EfectivoUSD, "")
	if err != nil {
		t.Fatalf("Settle failed: %v", err)
	}
	if settled.PaymentMethod != EfectivoUSD {
		t.Errorf("method = %q, want %q", settled.PaymentMethod, EfectivoUSD)
	}
	if settled.CustomerName != "Ana" {
		t.Errorf("customer = %q, settling must keep who the debt belonged to", settled.CustomerName)
	}
	if !settled.TotalUSD.Equal(sale.TotalUSD) || !settled.RateAtSale.Equal(sale.RateAtSale) {
		t.Error("settling must not touch totals or the frozen rate")
	}
	if debts := l.OpenDebts(); len(debts) != 0 {
		t.Errorf("OpenDebts() after settle = %d entries, want 0", len(debts))
	}
	if l.Len() != 1 {
		t.Errorf("ledger length = %d, settling must not remove the sale", l.Len())
	}
}

func TestSettleWithReference(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	sale := commitCredit(t, l, c, "Ana")

	// pago móvil needs a reference
	if _, err := l.Settle(sale.ID, PagoMovil, ""); err == nil {
		t.Error("settling via pago móvil without a reference should fail")
	}
	settled, err := l.Settle(sale.ID, PagoMovil, "04141234567")
	if err != nil {
		t.Fatalf("Settle failed: %v", err)
	}
	if settled.PaymentReference != "04141234567" {
		t.Errorf("reference = %q", settled.PaymentReference)
	}
}

func TestSettleErrors(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	debt := commitCredit(t, l, c, "Ana")
	cash := commitHarina(t, l, c)

	if _, err := l.Settle(debt.ID, Credito, ""); err == nil {
		t.Error("settling into Crédito should fail")
	}
	if _, err := l.Settle(debt.ID, "", ""); err == nil {
		t.Error("settling without a method should fail")
	}
	if _, err := l.Settle(cash.ID, EfectivoUSD, ""); !errors.Is(err, ErrNotOpenDebt) {
		t.Errorf("settling a cash sale = %v, want ErrNotOpenDebt", err)
	}
	if _, err := l.Settle("nope", EfectivoUSD, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("settling an unknown id = %v, want ErrNotFound", err)
	}

	// double settle
	if _, err := l.Settle(debt.ID, EfectivoUSD, ""); err != nil {
		t.Fatalf("first settle failed: %v", err)
	}
	if _, err := l.Settle(debt.ID, EfectivoBsF, ""); !errors.Is(err, ErrNotOpenDebt) {
		t.Errorf("second settle = %v, want ErrNotOpenDebt", err)
	}
}
