package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type undoCmd struct {
	yes bool
}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "undo the most recent sale" }
func (*undoCmd) Usage() string {
	return `mmb undo [-y]

  Removes the most recent sale from the ledger and puts its stock back.
  Only the single most recent sale can be undone; older mistakes go
  through rm-sale or edit-sale.
`
}

func (c *undoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *undoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	last, ok := store.Ledger().Last()
	if !ok {
		return fail(fmt.Errorf("no sale to undo"))
	}
	if !confirm(c.yes, "¿Anular la venta %s (%s / %s)?", shortID(last.ID), last.TotalUSD, last.TotalBsF) {
		return subcommands.ExitSuccess
	}
	sale, err := store.UndoLastSale()
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Venta %s anulada (%s / %s)\n", shortID(sale.ID), sale.TotalUSD, sale.TotalBsF)
	return subcommands.ExitSuccess
}
