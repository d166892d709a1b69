package cmd

import (
	"context"
	"flag"

	"github.com/bricar/minimarket"
	"github.com/bricar/minimarket/renderer"
	"github.com/google/subcommands"
)

type creditsCmd struct {
	customer string
}

func (*creditsCmd) Name() string     { return "credits" }
func (*creditsCmd) Synopsis() string { return "list open credit sales (fiao)" }
func (*creditsCmd) Usage() string {
	return `mmb credits [-customer <name>]

  Lists the unsettled credit sales, oldest first, with the total owed in
  both currencies. -customer filters by name fragment.
`
}

func (c *creditsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "customer", "", "Filter by customer name fragment")
}

func (c *creditsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	ledger := store.Ledger()

	var debts []minimarket.Sale
	var usd, bsf minimarket.Money
	if c.customer != "" {
		debts = ledger.OpenDebtsFor(c.customer)
		usd, bsf = minimarket.M(0, minimarket.USD), minimarket.M(0, minimarket.BsF)
		for _, s := range debts {
			usd = usd.Add(s.TotalUSD)
			bsf = bsf.Add(s.TotalBsF)
		}
	} else {
		debts = ledger.OpenDebts()
		usd, bsf = ledger.TotalOpen()
	}

	printMarkdown(renderer.CreditsMarkdown(debts, usd, bsf))
	return subcommands.ExitSuccess
}
