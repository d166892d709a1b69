package minimarket

import (
	"fmt"
	"strings"
)

// The credit subledger is not stored anywhere: a sale is an open debt
// exactly while its payment method is Credito. Settling overwrites the
// payment method in place; the ledger stays the single table for both
// states.

// OpenDebts returns all open credit sales, in commit order.
func (l *Ledger) OpenDebts() []Sale {
	var debts []Sale
	for s := range l.Sales(ByMethod(Credito)) {
		debts = append(debts, s)
	}
	return debts
}

// OpenDebtsFor returns the open credit sales whose customer name contains
// the term, case-insensitively.
func (l *Ledger) OpenDebtsFor(term string) []Sale {
	term = strings.ToLower(strings.TrimSpace(term))
	var debts []Sale
	for s := range l.Sales(ByMethod(Credito)) {
		if term == "" || strings.Contains(strings.ToLower(s.CustomerName), term) {
			debts = append(debts, s)
		}
	}
	return debts
}

// TotalOpen sums the open debts in both currencies, each sale at its own
// frozen totals.
func (l *Ledger) TotalOpen() (usd, bsf Money) {
	usd, bsf = M(0, USD), M(0, BsF)
	for s := range l.Sales(ByMethod(Credito)) {
		usd = usd.Add(s.TotalUSD)
		bsf = bsf.Add(s.TotalBsF)
	}
	return usd, bsf
}

// Settle marks an open debt as paid by overwriting the sale's payment
// method (and reference when the new method requires one) in place. The
// items, totals and frozen rate are untouched, and no separate audit
// record is created.
//
// Settle only applies to open debts: settling an already settled sale
// fails with ErrNotOpenDebt and changes nothing.
func (l *Ledger) Settle(id string, method PaymentMethod, reference string) (Sale, error) {
	if method.IsCredit() {
		return Sale{}, validationf("cannot settle a debt into %s", Credito)
	}
	if method == "" {
		return Sale{}, validationf("payment method is required")
	}
	if err := validatePayment(method, "", reference); err != nil {
		return Sale{}, err
	}
	for i, s := range l.sales {
		if s.ID != id {
			continue
		}
		if !s.PaymentMethod.IsCredit() {
			return Sale{}, fmt.Errorf("sale %q: %w", id, ErrNotOpenDebt)
		}
		s.PaymentMethod = method
		// The customer name stays: it records who the debt belonged to.
		if method.RequiresReference() {
			s.PaymentReference = reference
		} else {
			s.PaymentReference = ""
		}
		l.sales[i] = s
		return s, nil
	}
	return Sale{}, fmt.Errorf("sale %q: %w", id, ErrNotFound)
}
