package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmSaleCmd struct {
	id  string
	yes bool
}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "delete a sale from the ledger" }
func (*rmSaleCmd) Usage() string {
	return `mmb rm-sale -id <sale> [-y]

  Deletes the sale and puts its stock back. Stock of products deleted
  since the sale stays untouched.
`
}

func (c *rmSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Sale to delete (full id or prefix)")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *rmSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError("-id is required")
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	sale, err := findSale(store.Ledger(), c.id)
	if err != nil {
		return fail(err)
	}
	if !confirm(c.yes, "¿Eliminar la venta %s (%s / %s)?", shortID(sale.ID), sale.TotalUSD, sale.TotalBsF) {
		return subcommands.ExitSuccess
	}
	if _, err := store.RetractSale(sale.ID); err != nil {
		return fail(err)
	}
	fmt.Printf("Venta %s eliminada (%s / %s)\n", shortID(sale.ID), sale.TotalUSD, sale.TotalBsF)
	return subcommands.ExitSuccess
}
