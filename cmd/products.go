package cmd

import (
	"context"
	"flag"

	"github.com/bricar/minimarket/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct {
	search string
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the catalog with prices in both currencies" }
func (*productsCmd) Usage() string {
	return `mmb products [-s <term>]

  Lists the catalog sorted by name, with USD prices, BsF prices at the
  live rate, and stock. -s filters by name fragment or barcode.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "s", "", "Filter by name fragment or barcode")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	products := store.Catalog().Search(c.search)
	printMarkdown(renderer.ProductsMarkdown(products, store.Rate()))
	return subcommands.ExitSuccess
}
