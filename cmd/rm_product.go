package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmProductCmd struct {
	id  string
	yes bool
}

func (*rmProductCmd) Name() string     { return "rm-product" }
func (*rmProductCmd) Synopsis() string { return "delete a product from the catalog" }
func (*rmProductCmd) Usage() string {
	return `mmb rm-product -id <ref> [-y]

  Deletes the product. Past sales keep their frozen line snapshots; undo
  or deletion of those sales will no longer restore this product's stock.
`
}

func (c *rmProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product to delete (id, barcode or name fragment)")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *rmProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError("-id is required")
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := findProduct(store.Catalog(), c.id)
	if err != nil {
		return fail(err)
	}
	if !confirm(c.yes, "¿Eliminar el producto %q?", p.Name) {
		return subcommands.ExitSuccess
	}
	if err := store.RemoveProduct(p.ID); err != nil {
		return fail(err)
	}
	fmt.Printf("Producto %q eliminado\n", p.Name)
	return subcommands.ExitSuccess
}
