package minimarket

import (
	"fmt"
	"slices"
	"strings"
)

// Cart is an in-progress, uncommitted sale. It belongs to a single
// operator and never reserves stock ahead of commit: it only checks at
// add time that the requested quantity, plus whatever the cart already
// holds for the same product, fits in the live stock.
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Len() int      { return len(c.lines) }
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Lines returns a copy of the cart lines in order.
func (c *Cart) Lines() []Line { return slices.Clone(c.lines) }

// inCart sums the quantity already carried for a product.
func (c *Cart) inCart(productID string) Quantity {
	var total Quantity
	for _, l := range c.lines {
		if l.ProductID == productID {
			total = total.Add(l.Quantity)
		}
	}
	return total
}

// AddItem adds quantity of a catalog product to the cart. It snapshots
// the product's name and price at add time, merges into an existing
// catalog-backed line for the same product, and fails with
// InsufficientStockError when the cart would exceed the live stock. On
// failure the cart is left unchanged.
func (c *Cart) AddItem(cat *Catalog, productID string, qty Quantity) error {
	if !qty.IsPositive() {
		return validationf("quantity must be positive, got %s", qty)
	}
	p, ok := cat.Get(productID)
	if !ok {
		return fmt.Errorf("product %q: %w", productID, ErrNotFound)
	}
	if p.Stock.LessThan(c.inCart(productID).Add(qty)) {
		return &InsufficientStockError{Product: p.Name, Available: p.Stock, Requested: c.inCart(productID).Add(qty)}
	}
	for i, l := range c.lines {
		if l.ProductID == productID && !l.Manual() {
			c.lines[i].Quantity = l.Quantity.Add(qty)
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: productID,
		Name:      p.Name,
		Quantity:  qty,
		Price:     p.Price,
	})
	return nil
}

// AddManualItem appends a free-text line. Manual lines are never merged:
// two manual lines with the same name stay separate.
func (c *Cart) AddManualItem(name string, price Money, qty Quantity) error {
	if strings.TrimSpace(name) == "" {
		return validationf("manual item name is required")
	}
	if price.Currency() == "" {
		return validationf("manual item currency is required")
	}
	if price.IsNegative() {
		return validationf("manual item price cannot be negative")
	}
	if !qty.IsPositive() {
		return validationf("quantity must be positive, got %s", qty)
	}
	c.lines = append(c.lines, Line{Name: name, Quantity: qty, Price: price})
	return nil
}

// RemoveLine removes the line at the given index. No stock is touched:
// nothing has been reserved yet.
func (c *Cart) RemoveLine(i int) error {
	if i < 0 || i >= len(c.lines) {
		return validationf("no cart line at index %d", i)
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	return nil
}

// Clear empties the cart. The caller is responsible for confirming this
// destructive action with the operator.
func (c *Cart) Clear() {
	c.lines = nil
}

// Totals converts every line to both currencies at the current rate and
// sums them. Unlike committed sale totals, cart totals are live against
// rate changes.
func (c *Cart) Totals(r Rate) (usd, bsf Money) {
	return totals(c.lines, r)
}
