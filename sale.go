package minimarket

import (
	"fmt"
	"strings"
	"time"
)

// PaymentMethod is how a sale was (or will be) paid. The display strings
// match the receipts printed at the counter.
type PaymentMethod string

const (
	PagoMovil   PaymentMethod = "Pago Móvil"
	PuntoVenta  PaymentMethod = "Punto de Venta"
	EfectivoUSD PaymentMethod = "Efectivo USD (Divisa)"
	EfectivoBsF PaymentMethod = "Efectivo BsF"
	Credito     PaymentMethod = "Crédito"
)

// PaymentMethods lists all methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PagoMovil, PuntoVenta, EfectivoUSD, EfectivoBsF, Credito}
}

// ParsePaymentMethod parses a payment method from its display name or a
// short accentless alias (pago-movil, punto, efectivo-usd, efectivo-bsf,
// credito).
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	for _, m := range PaymentMethods() {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	switch strings.ToLower(s) {
	case "pago-movil", "pagomovil", "movil":
		return PagoMovil, nil
	case "punto", "punto-venta", "pos":
		return PuntoVenta, nil
	case "efectivo-usd", "usd", "divisa":
		return EfectivoUSD, nil
	case "efectivo-bsf", "bsf", "efectivo":
		return EfectivoBsF, nil
	case "credito", "credit":
		return Credito, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// IsCredit reports whether a sale paid with this method is an open debt.
func (m PaymentMethod) IsCredit() bool { return m == Credito }

// RequiresReference reports whether this method needs a payment reference
// (the in-app transfer confirmation digits).
func (m PaymentMethod) RequiresReference() bool { return m == PagoMovil }

// Line is a single sale line: either catalog-backed (ProductID set, with
// a copy of the product's name and price at add time) or manual
// (ProductID empty, free-text entered).
type Line struct {
	ProductID string
	Name      string
	Quantity  Quantity
	Price     Money // unit price
}

// Manual reports whether the line has no catalog reference.
func (l Line) Manual() bool { return l.ProductID == "" }

// Amount returns the line total in the line's own currency.
func (l Line) Amount() Money { return l.Price.Mul(l.Quantity) }

// Sale is a committed transaction. Items are frozen copies: editing a
// sale later mutates this slice directly, it never re-reads the live
// catalog. TotalUSD and TotalBsF are stored, computed at commit or amend
// time at RateAtSale, and never revalued when the live rate changes.
type Sale struct {
	ID               string
	Timestamp        time.Time
	Items            []Line
	TotalUSD         Money
	TotalBsF         Money
	RateAtSale       Rate
	PaymentMethod    PaymentMethod
	CustomerName     string // required iff PaymentMethod is Credito
	PaymentReference string // required iff PaymentMethod is PagoMovil
}

// Total returns the frozen total in the requested currency.
func (s Sale) Total(c Currency) Money {
	if c == BsF {
		return s.TotalBsF
	}
	return s.TotalUSD
}

// Date returns the calendar day of the sale, for reporting windows.
func (s Sale) Date() Date { return DateOf(s.Timestamp) }

// totals sums the lines in both currencies at the given rate.
func totals(items []Line, r Rate) (usd, bsf Money) {
	usd, bsf = M(0, USD), M(0, BsF)
	for _, l := range items {
		u, b := l.Amount().Dual(r)
		usd = usd.Add(u)
		bsf = bsf.Add(b)
	}
	return usd, bsf
}

// validatePayment checks the method-specific required fields.
func validatePayment(method PaymentMethod, customer, reference string) error {
	switch {
	case method == "":
		return validationf("payment method is required")
	case method.IsCredit() && strings.TrimSpace(customer) == "":
		return validationf("customer name is required for %s sales", Credito)
	case method.RequiresReference() && strings.TrimSpace(reference) == "":
		return validationf("payment reference is required for %s", PagoMovil)
	}
	return nil
}
