package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bricar/minimarket"
	"github.com/bricar/minimarket/renderer"
	"github.com/google/subcommands"
)

type scanCmd struct {
	method   string
	customer string
	ref      string
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "build a sale from a barcode scanner" }
func (*scanCmd) Usage() string {
	return `mmb scan -method <method> [-customer <name>] [-ref <digits>]

  Reads barcodes from stdin, one per line, the way USB scanners type
  them. Each scan adds one unit and prints the running total. 'fin' (or
  end of input) commits the sale; 'no' discards it.
`
}

func (c *scanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "method", "", "Payment method for the final commit")
	f.StringVar(&c.customer, "customer", "", "Customer name, for credito sales")
	f.StringVar(&c.ref, "ref", "", "Payment reference, for pago-movil sales")
}

func (c *scanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	method, err := minimarket.ParsePaymentMethod(c.method)
	if err != nil {
		return usageError("%v", err)
	}

	cart := minimarket.NewCart()
	commit := true
	scanner := minimarket.OpenScanner(os.Stdin, func(code string) {
		switch code {
		case "fin":
			os.Stdin.Close()
			return
		case "no":
			commit = false
			os.Stdin.Close()
			return
		}
		p, ok := store.Catalog().FindByBarcode(code)
		if !ok {
			fmt.Printf("? código %s desconocido\n", code)
			return
		}
		if err := cart.AddItem(store.Catalog(), p.ID, minimarket.Q(1)); err != nil {
			fmt.Printf("? %v\n", err)
			return
		}
		usd, bsf := cart.Totals(store.Rate())
		fmt.Printf("+ %s  |  total %s / %s\n", p.Name, usd, bsf)
	})
	if err := scanner.Wait(); err != nil {
		return fail(err)
	}

	if !commit || cart.IsEmpty() {
		fmt.Println("Venta descartada")
		return subcommands.ExitSuccess
	}
	sale, err := store.Checkout(cart, method, c.customer, c.ref)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ReceiptMarkdown(sale))
	return subcommands.ExitSuccess
}
