package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/bricar/minimarket"
	"github.com/bricar/minimarket/renderer"
	"github.com/google/subcommands"
)

type editSaleCmd struct {
	id       string
	method   string
	customer string
	ref      string
	rmLines  string
	yes      bool

	customerSet bool
	refSet      bool
}

func (*editSaleCmd) Name() string     { return "edit-sale" }
func (*editSaleCmd) Synopsis() string { return "edit a committed sale" }
func (*editSaleCmd) Usage() string {
	return `mmb edit-sale -id <sale> [-method <method>] [-customer <name>] [-ref <digits>] [-rm <i,j,...>] [-y]

  Edits the payment fields of a sale and/or removes line items by index
  (as listed on the receipt, starting at 0). Removed catalog lines put
  their stock back; totals are recomputed at the sale's own frozen rate.
  Lines cannot be added: commit a new sale instead. Asks for
  confirmation before applying unless -y is given.
`
}

func (c *editSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Sale to edit (full id or prefix)")
	f.StringVar(&c.method, "method", "", "New payment method")
	f.Func("customer", "New customer name (empty clears it)", func(v string) error {
		c.customer, c.customerSet = v, true
		return nil
	})
	f.Func("ref", "New payment reference (empty clears it)", func(v string) error {
		c.ref, c.refSet = v, true
		return nil
	})
	f.StringVar(&c.rmLines, "rm", "", "Comma-separated line indexes to remove")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *editSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var req minimarket.AmendRequest
	if c.method != "" {
		if req.Method, err = minimarket.ParsePaymentMethod(c.method); err != nil {
			return usageError("%v", err)
		}
	}
	if c.customerSet {
		req.Customer = &c.customer
	}
	if c.refSet {
		req.Reference = &c.ref
	}
	if c.rmLines != "" {
		for _, part := range strings.Split(c.rmLines, ",") {
			i, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return usageError("invalid line index %q", part)
			}
			req.RemoveLines = append(req.RemoveLines, i)
		}
	}

	changes := describeAmend(req)
	if !confirm(c.yes, "¿Editar la venta %s (%s)?", shortID(sale.ID), changes) {
		return subcommands.ExitSuccess
	}
	sale, err = store.AmendSale(sale.ID, req)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Venta %s actualizada\n", shortID(sale.ID))
	printMarkdown(renderer.ReceiptMarkdown(sale))
	return subcommands.ExitSuccess
}

// describeAmend summarizes the requested edits for the confirmation
// prompt.
func describeAmend(req minimarket.AmendRequest) string {
	var parts []string
	if req.Method != "" {
		parts = append(parts, fmt.Sprintf("método %s", req.Method))
	}
	if req.Customer != nil {
		parts = append(parts, fmt.Sprintf("cliente %q", *req.Customer))
	}
	if req.Reference != nil {
		parts = append(parts, fmt.Sprintf("referencia %q", *req.Reference))
	}
	switch n := len(req.RemoveLines); {
	case n == 1:
		parts = append(parts, "quitar 1 línea")
	case n > 1:
		parts = append(parts, fmt.Sprintf("quitar %d líneas", n))
	}
	if len(parts) == 0 {
		return "sin cambios"
	}
	return strings.Join(parts, ", ")
}
