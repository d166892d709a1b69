package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/bricar/minimarket"
	"github.com/google/subcommands"
)

type stockCmd struct {
	id     string
	add    string
	cases  int
	strict bool
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "adjust the stock of a product" }
func (*stockCmd) Usage() string {
	return `mmb stock -id <ref> -add <qty> [-strict]
mmb stock -id <ref> -cases <n>

  Adds (or with a negative quantity, removes) stock. -cases restocks by
  whole cases using the product's units-per-case. -strict rejects an
  adjustment that would leave negative stock.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product to adjust (id, barcode or name fragment)")
	f.StringVar(&c.add, "add", "", "Quantity to add; negative removes")
	f.IntVar(&c.cases, "cases", 0, "Whole cases to add instead of units")
	f.BoolVar(&c.strict, "strict", false, "Reject adjustments that would leave negative stock")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError("-id is required")
	}
	if (c.add == "") == (c.cases == 0) {
		return usageError("give exactly one of -add or -cases")
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := findProduct(store.Catalog(), c.id)
	if err != nil {
		return fail(err)
	}

	var delta minimarket.Quantity
	if c.cases != 0 {
		delta = minimarket.Q(c.cases * p.UnitsPerCase)
	} else {
		delta, err = minimarket.ParseQuantity(c.add)
		if err != nil {
			return usageError("%v", err)
		}
	}

	store.Catalog().SetStrict(c.strict)
	if err := store.AdjustStock(p.ID, delta); err != nil {
		return fail(err)
	}
	p, _ = store.Catalog().Get(p.ID)
	fmt.Printf("Existencia de %q: %s %s\n", p.Name, p.Stock, p.Unit)
	return subcommands.ExitSuccess
}
