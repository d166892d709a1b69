package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/bricar/minimarket"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// productCmd creates or edits a catalog product.
type productCmd struct {
	id           string
	name         string
	category     string
	price        string
	cost         string
	margin       string
	unit         string
	unitsPerCase int
	stock        string
	barcode      string
}

func (*productCmd) Name() string     { return "product" }
func (*productCmd) Synopsis() string { return "create or edit a catalog product" }
func (*productCmd) Usage() string {
	return `mmb product -name <name> [-price <usd> | -cost <usd> -margin <pct>] [options]
mmb product -id <ref> [options]

  Without -id, creates a new product; the price comes from -price or is
  derived from -cost and -margin. With -id, edits the referenced product:
  only the given flags change, the rest keeps its current value.
`
}

func (c *productCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product to edit (id, barcode or name fragment)")
	f.StringVar(&c.name, "name", "", "Product name")
	f.StringVar(&c.category, "category", "", "Category (viveres, bebidas, aseo, ...)")
	f.StringVar(&c.price, "price", "", "Selling price in USD")
	f.StringVar(&c.cost, "cost", "", "Cost in USD, used with -margin to derive the price")
	f.StringVar(&c.margin, "margin", "", "Profit margin in percent, used with -cost")
	f.StringVar(&c.unit, "unit", "", "Sale unit (Unidad, Kg, ...)")
	f.IntVar(&c.unitsPerCase, "case", 0, "Units per case, for bulk restocking")
	f.StringVar(&c.stock, "stock", "", "Initial stock (new products only)")
	f.StringVar(&c.barcode, "barcode", "", "Barcode")
}

func (c *productCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if c.id == "" {
		return c.create(store)
	}
	return c.edit(store)
}

func (c *productCmd) create(store *minimarket.Store) subcommands.ExitStatus {
	if c.name == "" {
		return usageError("-name is required to create a product")
	}
	p := minimarket.Product{
		Name:         c.name,
		Unit:         c.unit,
		UnitsPerCase: c.unitsPerCase,
		Barcode:      c.barcode,
	}

	var err error
	if p.Category, err = minimarket.ParseCategory(c.category); err != nil {
		return usageError("%v", err)
	}

	switch {
	case c.price != "":
		d, err := decimal.NewFromString(c.price)
		if err != nil {
			return usageError("invalid price %q", c.price)
		}
		p.Price = minimarket.M(d, minimarket.USD)
	case c.cost != "" && c.margin != "":
		cost, err := decimal.NewFromString(c.cost)
		if err != nil {
			return usageError("invalid cost %q", c.cost)
		}
		margin, err := decimal.NewFromString(c.margin)
		if err != nil {
			return usageError("invalid margin %q", c.margin)
		}
		p.Cost = minimarket.M(cost, minimarket.USD)
		p.ProfitMargin = margin
		p.Price = minimarket.PriceFromCost(p.Cost, margin)
	default:
		return usageError("give either -price, or -cost with -margin")
	}

	if c.stock != "" {
		q, err := minimarket.ParseQuantity(c.stock)
		if err != nil {
			return usageError("invalid stock %q", c.stock)
		}
		p.Stock = q
	}

	p, err = store.NewProduct(p)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Producto %q creado (%s) a %s\n", p.Name, p.ID, p.Price)
	return subcommands.ExitSuccess
}

func (c *productCmd) edit(store *minimarket.Store) subcommands.ExitStatus {
	p, err := findProduct(store.Catalog(), c.id)
	if err != nil {
		return fail(err)
	}

	if c.name != "" {
		p.Name = c.name
	}
	if c.category != "" {
		if p.Category, err = minimarket.ParseCategory(c.category); err != nil {
			return usageError("%v", err)
		}
	}
	if c.unit != "" {
		p.Unit = c.unit
	}
	if c.unitsPerCase > 0 {
		p.UnitsPerCase = c.unitsPerCase
	}
	if c.barcode != "" {
		p.Barcode = c.barcode
	}
	if c.cost != "" {
		d, err := decimal.NewFromString(c.cost)
		if err != nil {
			return usageError("invalid cost %q", c.cost)
		}
		p.Cost = minimarket.M(d, minimarket.USD)
	}
	if c.margin != "" {
		d, err := decimal.NewFromString(c.margin)
		if err != nil {
			return usageError("invalid margin %q", c.margin)
		}
		p.ProfitMargin = d
	}
	switch {
	case c.price != "":
		d, err := decimal.NewFromString(c.price)
		if err != nil {
			return usageError("invalid price %q", c.price)
		}
		p.Price = minimarket.M(d, minimarket.USD)
	case (c.cost != "" || c.margin != "") && !p.Cost.IsZero():
		// re-derive the price when the cost side changed
		p.Price = minimarket.PriceFromCost(p.Cost, p.ProfitMargin)
	}
	if c.stock != "" {
		return usageError("use 'mmb stock' to adjust stock, not product -stock")
	}

	if err := store.UpsertProduct(p); err != nil {
		return fail(err)
	}
	fmt.Printf("Producto %q actualizado a %s\n", p.Name, p.Price)
	return subcommands.ExitSuccess
}
