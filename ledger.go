package minimarket

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Ledger is the append-mostly list of committed sales, in commit order.
// It is the sole source of truth for the credit subledger and for
// reporting.
type Ledger struct {
	sales []Sale
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Len() int { return len(l.sales) }

// Sale returns the sale with this id.
func (l *Ledger) Sale(id string) (Sale, bool) {
	for _, s := range l.sales {
		if s.ID == id {
			return s, true
		}
	}
	return Sale{}, false
}

// Last returns the most recent sale.
func (l *Ledger) Last() (Sale, bool) {
	if len(l.sales) == 0 {
		return Sale{}, false
	}
	return l.sales[len(l.sales)-1], true
}

// LastN returns the most recent n sales, oldest first.
func (l *Ledger) LastN(n int) []Sale {
	if n >= len(l.sales) {
		return slices.Clone(l.sales)
	}
	return slices.Clone(l.sales[len(l.sales)-n:])
}

// Sales returns an iterator over sales in commit order. A sale is yielded
// only when every filter accepts it.
func (l *Ledger) Sales(filters ...func(Sale) bool) iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			accept := true
			for _, filter := range filters {
				if !filter(s) {
					accept = false
					break
				}
			}
			if accept && !yield(s) {
				return
			}
		}
	}
}

// ByMethod returns a predicate that filters sales by payment method.
func ByMethod(m PaymentMethod) func(Sale) bool {
	return func(s Sale) bool { return s.PaymentMethod == m }
}

// InRange returns a predicate that filters sales by calendar day.
func InRange(r Range) func(Sale) bool {
	return func(s Sale) bool { return r.ContainsTime(s.Timestamp) }
}

// Commit validates the payment fields, reserves stock for every
// catalog-backed cart line, freezes the line snapshots, rate and totals
// into a new Sale, and appends it.
//
// Reservation is two-phase: every line is checked against the catalog
// first, and stock is decremented only once all checks pass, so a sale
// either fully succeeds or fully fails against stock. A line whose
// product has been deleted since it was added to the cart is kept in the
// sale but reserves nothing, mirroring how restoration no-ops on deleted
// products.
func (l *Ledger) Commit(cart *Cart, cat *Catalog, rate Rate, method PaymentMethod, customer, reference string) (Sale, error) {
	if cart.IsEmpty() {
		return Sale{}, validationf("cannot commit an empty cart")
	}
	if rate.IsZero() {
		return Sale{}, ErrInvalidRate
	}
	if err := validatePayment(method, customer, reference); err != nil {
		return Sale{}, err
	}
	if !method.IsCredit() {
		customer = ""
	}
	if !method.RequiresReference() {
		reference = ""
	}

	items := cart.Lines()

	// Phase one: total the quantity needed per product and check it all
	// fits, without touching stock.
	needed := make(map[string]Quantity)
	for _, line := range items {
		if line.Manual() {
			continue
		}
		needed[line.ProductID] = needed[line.ProductID].Add(line.Quantity)
	}
	for id, qty := range needed {
		p, ok := cat.Get(id)
		if !ok {
			continue // deleted since added to the cart, sell the snapshot as-is
		}
		if p.Stock.LessThan(qty) {
			return Sale{}, &InsufficientStockError{Product: p.Name, Available: p.Stock, Requested: qty}
		}
	}

	// Phase two: apply every reservation.
	for id, qty := range needed {
		if err := cat.Reserve(id, qty); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			// unreachable in single-operator use, phase one checked it
			return Sale{}, fmt.Errorf("reservation failed after check: %w", err)
		}
	}

	usd, bsf := totals(items, rate)
	sale := Sale{
		ID:               uuid.NewString(),
		Timestamp:        time.Now(),
		Items:            items,
		TotalUSD:         usd,
		TotalBsF:         bsf,
		RateAtSale:       rate,
		PaymentMethod:    method,
		CustomerName:     customer,
		PaymentReference: reference,
	}
	l.sales = append(l.sales, sale)
	return sale, nil
}

// UndoLast removes the most recent sale and restores stock for every
// catalog-backed item. Restoration no-ops on products deleted since the
// sale. There is no multi-level undo: only the single most recent entry
// can ever be undone.
func (l *Ledger) UndoLast(cat *Catalog) (Sale, bool) {
	if len(l.sales) == 0 {
		return Sale{}, false
	}
	last := l.sales[len(l.sales)-1]
	for _, line := range last.Items {
		if !line.Manual() {
			cat.Restore(line.ProductID, line.Quantity)
		}
	}
	l.sales = l.sales[:len(l.sales)-1]
	return last, true
}

// Retract deletes a sale from the ledger and restores stock for all its
// catalog-backed items.
func (l *Ledger) Retract(id string, cat *Catalog) (Sale, error) {
	for i, s := range l.sales {
		if s.ID != id {
			continue
		}
		for _, line := range s.Items {
			if !line.Manual() {
				cat.Restore(line.ProductID, line.Quantity)
			}
		}
		l.sales = slices.Delete(l.sales, i, i+1)
		return s, nil
	}
	return Sale{}, fmt.Errorf("sale %q: %w", id, ErrNotFound)
}

// AmendRequest describes an amendment to a committed sale: payment field
// edits and removal of individual line items. Items can not be added
// through an amendment.
type AmendRequest struct {
	Method      PaymentMethod // empty keeps the current method
	Customer    *string       // nil keeps the current customer name
	Reference   *string       // nil keeps the current payment reference
	RemoveLines []int         // indexes into the sale's current item list
}

// Amend applies the request to the sale as one effect: removed
// catalog-backed lines are queued for stock restoration, totals are
// recomputed from the remaining lines at the sale's original frozen rate
// (never at the live rate), and the record is replaced in full. On any
// validation failure nothing changes, including stock.
func (l *Ledger) Amend(id string, cat *Catalog, req AmendRequest) (Sale, error) {
	idx := -1
	for i, s := range l.sales {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Sale{}, fmt.Errorf("sale %q: %w", id, ErrNotFound)
	}
	s := l.sales[idx]
	s.Items = slices.Clone(s.Items)

	// Work out the removals on the copy first.
	remove := slices.Clone(req.RemoveLines)
	sort.Sort(sort.Reverse(sort.IntSlice(remove)))
	remove = slices.Compact(remove)
	var restored []Line
	for _, i := range remove {
		if i < 0 || i >= len(s.Items) {
			return Sale{}, validationf("no line at index %d in sale %s", i, id)
		}
		line := s.Items[i]
		if !line.Manual() {
			restored = append(restored, line)
		}
		s.Items = slices.Delete(s.Items, i, i+1)
	}

	if req.Method != "" {
		s.PaymentMethod = req.Method
	}
	if req.Customer != nil {
		s.CustomerName = *req.Customer
	}
	if req.Reference != nil {
		s.PaymentReference = *req.Reference
	}
	if err := validatePayment(s.PaymentMethod, s.CustomerName, s.PaymentReference); err != nil {
		return Sale{}, err
	}

	// Totals stay consistent at the sale's own frozen rate.
	s.TotalUSD, s.TotalBsF = totals(s.Items, s.RateAtSale)

	// All checks passed: restore stock and replace the record together.
	for _, line := range restored {
		cat.Restore(line.ProductID, line.Quantity)
	}
	l.sales[idx] = s
	return s, nil
}

// append adds already-decoded sales, keeping commit order. Used by the
// persistence layer only.
func (l *Ledger) append(sales ...Sale) {
	l.sales = append(l.sales, sales...)
}
