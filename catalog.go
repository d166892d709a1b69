package minimarket

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Category classifies a product. The set matches the sections of the
// physical store.
type Category string

const (
	Viveres     Category = "Víveres"
	Aseo        Category = "Aseo Personal"
	Bebidas     Category = "Bebidas"
	Charcuteria Category = "Charcutería"
	Lacteos     Category = "Lácteos"
	Pan         Category = "Pan"
	Limpieza    Category = "Limpieza"
	Golosinas   Category = "Golosinas"
	Granos      Category = "Granos"
	Farmacia    Category = "Farmacia"
	Papeleria   Category = "Papelería"
	Miscelaneo  Category = "Misceláneo"
	Otros       Category = "Otros"
)

// Categories lists all known categories in display order.
func Categories() []Category {
	return []Category{Viveres, Aseo, Bebidas, Charcuteria, Lacteos, Pan,
		Limpieza, Golosinas, Granos, Farmacia, Papeleria, Miscelaneo, Otros}
}

// ParseCategory parses a category from its display name or an accentless
// lowercase alias. The empty string maps to Otros.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Otros, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	aliases := map[string]Category{
		"viveres": Viveres, "aseo": Aseo, "bebidas": Bebidas,
		"charcuteria": Charcuteria, "lacteos": Lacteos, "pan": Pan,
		"limpieza": Limpieza, "golosinas": Golosinas, "granos": Granos,
		"farmacia": Farmacia, "papeleria": Papeleria,
		"miscelaneo": Miscelaneo, "otros": Otros,
	}
	if c, ok := aliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Product is a catalog entry. ID is opaque and immutable after creation.
// Cost and ProfitMargin only exist to derive the price on input; nothing
// enforces them afterwards.
type Product struct {
	ID           string
	Name         string
	Category     Category
	Price        Money
	Unit         string // e.g. "Unidad", "Kg"
	UnitsPerCase int
	Stock        Quantity
	Barcode      string // optional, uniqueness is not enforced
	Cost         Money
	ProfitMargin decimal.Decimal // percent
}

// PriceFromCost derives a selling price from a cost and a profit margin
// percentage, rounded to cents.
func PriceFromCost(cost Money, marginPercent decimal.Decimal) Money {
	factor := decimal.NewFromInt(1).Add(marginPercent.Div(decimal.NewFromInt(100)))
	return M(cost.value.Mul(factor).Round(2), cost.cur)
}

// Catalog is the product entity set. All stock movement goes through its
// mutation primitives so that sales and their reversals stay symmetric.
type Catalog struct {
	products map[string]Product
	strict   bool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{products: make(map[string]Product)}
}

// SetStrict toggles strict stock mode. When strict, a manual adjustment
// that would leave negative stock is rejected. The historical behavior
// (off) permits negative stock.
func (c *Catalog) SetStrict(strict bool) { c.strict = strict }

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Get returns the product with this id.
func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Upsert inserts the product, or replaces it entirely when the id already
// exists. There are no merge semantics.
func (c *Catalog) Upsert(p Product) error {
	if p.ID == "" {
		return validationf("product id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return validationf("product name is required")
	}
	if p.Price.IsNegative() {
		return validationf("product price cannot be negative")
	}
	if p.Price.Currency() == "" {
		return validationf("product currency is required")
	}
	if p.UnitsPerCase <= 0 {
		p.UnitsPerCase = 1
	}
	if p.Unit == "" {
		p.Unit = "Unidad"
	}
	if p.Category == "" {
		p.Category = Otros
	}
	c.products[p.ID] = p
	return nil
}

// AdjustStock adds delta to the product stock. Delta may be negative, and
// outside strict mode the result may go negative too.
func (c *Catalog) AdjustStock(id string, delta Quantity) error {
	p, ok := c.products[id]
	if !ok {
		return fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	next := p.Stock.Add(delta)
	if c.strict && next.IsNegative() {
		return validationf("adjustment would leave %s with negative stock (%s)", p.Name, next)
	}
	p.Stock = next
	c.products[id] = p
	return nil
}

// Reserve removes quantity from stock for a sale commit. It fails when
// stock is short or the product is gone; the decision of what to do with
// a missing product belongs to the caller.
func (c *Catalog) Reserve(id string, qty Quantity) error {
	p, ok := c.products[id]
	if !ok {
		return fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	if p.Stock.LessThan(qty) {
		return &InsufficientStockError{Product: p.Name, Available: p.Stock, Requested: qty}
	}
	p.Stock = p.Stock.Sub(qty)
	c.products[id] = p
	return nil
}

// Restore puts quantity back into stock after an undo, a retraction or an
// amendment. It silently no-ops when the product has been deleted since
// the sale: historical restoration must not resurrect deleted products
// nor fail the containing operation.
func (c *Catalog) Restore(id string, qty Quantity) {
	p, ok := c.products[id]
	if !ok {
		return
	}
	p.Stock = p.Stock.Add(qty)
	c.products[id] = p
}

// Remove deletes the product. Historical sales referencing it keep their
// frozen snapshots and their dangling product id.
func (c *Catalog) Remove(id string) error {
	if _, ok := c.products[id]; !ok {
		return fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	delete(c.products, id)
	return nil
}

// Products returns all products sorted by name, case-insensitively.
func (c *Catalog) Products() []Product {
	list := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list
}

// Search returns the products whose name contains the term
// (case-insensitively) or whose barcode contains it.
func (c *Catalog) Search(term string) []Product {
	term = strings.TrimSpace(term)
	if term == "" {
		return c.Products()
	}
	lower := strings.ToLower(term)
	var list []Product
	for _, p := range c.Products() {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			(p.Barcode != "" && strings.Contains(p.Barcode, term)) {
			list = append(list, p)
		}
	}
	return list
}

// FindByBarcode returns the first product with this exact barcode.
func (c *Catalog) FindByBarcode(code string) (Product, bool) {
	if code == "" {
		return Product{}, false
	}
	for _, p := range c.Products() {
		if p.Barcode == code {
			return p, true
		}
	}
	return Product{}, false
}
