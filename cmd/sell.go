package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/bricar/minimarket"
	"github.com/bricar/minimarket/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// repeatedFlag collects every occurrence of a repeatable string flag.
type repeatedFlag []string

func (r *repeatedFlag) String() string { return strings.Join(*r, ",") }
func (r *repeatedFlag) Set(v string) error {
	*r = append(*r, v)
	return nil
}

type sellCmd struct {
	items    repeatedFlag
	manuals  repeatedFlag
	method   string
	customer string
	ref      string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "commit a sale" }
func (*sellCmd) Usage() string {
	return `mmb sell -item <ref>:<qty> [-item ...] [-manual <name>:<price>:<qty>] -method <method> [-customer <name>] [-ref <digits>]

  Builds a cart from the repeated -item and -manual flags and commits it
  at the live rate. Methods: pago-movil (needs -ref), punto, usd,
  efectivo, credito (needs -customer). Manual prices take a currency
  suffix: 1.5usd or 55bsf (default usd).
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.items, "item", "Catalog item as <ref>:<qty>; repeatable")
	f.Var(&c.manuals, "manual", "Manual line as <name>:<price>:<qty>; repeatable")
	f.StringVar(&c.method, "method", "", "Payment method")
	f.StringVar(&c.customer, "customer", "", "Customer name, for credito sales")
	f.StringVar(&c.ref, "ref", "", "Payment reference, for pago-movil sales")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	method, err := minimarket.ParsePaymentMethod(c.method)
	if err != nil {
		return usageError("%v", err)
	}

	cart := minimarket.NewCart()
	for _, item := range c.items {
		ref, qty, err := splitItem(item)
		if err != nil {
			return usageError("%v", err)
		}
		p, err := findProduct(store.Catalog(), ref)
		if err != nil {
			return fail(err)
		}
		if err := cart.AddItem(store.Catalog(), p.ID, qty); err != nil {
			return fail(err)
		}
	}
	for _, manual := range c.manuals {
		name, price, qty, err := splitManual(manual)
		if err != nil {
			return usageError("%v", err)
		}
		if err := cart.AddManualItem(name, price, qty); err != nil {
			return fail(err)
		}
	}

	sale, err := store.Checkout(cart, method, c.customer, c.ref)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ReceiptMarkdown(sale))
	return subcommands.ExitSuccess
}

// splitItem parses "<ref>:<qty>". The quantity defaults to 1 when the
// colon is omitted, scanning one of something being the common case.
func splitItem(s string) (ref string, qty minimarket.Quantity, err error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return s, minimarket.Q(1), nil
	}
	ref = s[:i]
	qty, err = minimarket.ParseQuantity(s[i+1:])
	if err != nil || ref == "" {
		return "", minimarket.Quantity{}, fmt.Errorf("invalid item %q, want <ref>:<qty>", s)
	}
	return ref, qty, nil
}

// parseAmount parses an amount with an optional currency suffix: 1.5usd,
// 55bsf. Without a suffix the amount is in USD.
func parseAmount(s string) (minimarket.Money, error) {
	cur := minimarket.USD
	raw := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasSuffix(raw, "usd"):
		raw = strings.TrimSuffix(raw, "usd")
	case strings.HasSuffix(raw, "bsf"):
		raw, cur = strings.TrimSuffix(raw, "bsf"), minimarket.BsF
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return minimarket.Money{}, fmt.Errorf("invalid amount %q", s)
	}
	return minimarket.M(d, cur), nil
}

// splitManual parses "<name>:<price>:<qty>" where price carries an
// optional currency suffix (1.5usd, 55bsf).
func splitManual(s string) (name string, price minimarket.Money, qty minimarket.Quantity, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] == "" {
		return "", minimarket.Money{}, minimarket.Quantity{}, fmt.Errorf("invalid manual line %q, want <name>:<price>:<qty>", s)
	}
	name = parts[0]

	price, err = parseAmount(parts[1])
	if err != nil {
		return "", minimarket.Money{}, minimarket.Quantity{}, fmt.Errorf("invalid manual price %q", parts[1])
	}

	qty, err = minimarket.ParseQuantity(parts[2])
	if err != nil {
		return "", minimarket.Money{}, minimarket.Quantity{}, fmt.Errorf("invalid manual quantity %q", parts[2])
	}
	return name, price, qty, nil
}
