package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/bricar/minimarket"
	"github.com/google/subcommands"
)

type rateCmd struct {
	fetch   bool
	url     string
	path    string
	convert string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show or set the BsF/USD exchange rate" }
func (*rateCmd) Usage() string {
	return `mmb rate [<bsf-per-usd>] [-fetch [-url <url>] [-path <jsonpath>]] [-convert <amount>]

  Without arguments, shows the live rate. With a number, sets it.
  With -fetch, pulls the published official rate and sets it.
  With -convert, prints an amount in both currencies: 10usd or 500bsf.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.fetch, "fetch", false, "Fetch the published official rate instead of typing it")
	f.StringVar(&c.url, "url", "", "Override the rate feed endpoint")
	f.StringVar(&c.path, "path", "", "Override the jsonpath to the rate inside the feed response")
	f.StringVar(&c.convert, "convert", "", "Amount to convert at the live rate, e.g. 10usd or 500bsf")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.convert != "":
		amount, err := parseAmount(c.convert)
		if err != nil {
			return usageError("%v", err)
		}
		usd, bsf := amount.Dual(store.Rate())
		fmt.Printf("%s = %s (a %s Bs/$)\n", usd, bsf, store.Rate())

	case c.fetch:
		feed := minimarket.NewRateFeed()
		if c.url != "" {
			feed.URL = c.url
		}
		if c.path != "" {
			feed.Path = c.path
		}
		rate, err := feed.Fetch()
		if err != nil {
			return fail(err)
		}
		if err := store.SetRate(rate); err != nil {
			return fail(err)
		}
		fmt.Printf("Tasa del día: %s Bs/$\n", rate)

	case f.NArg() == 1:
		rate, err := minimarket.ParseRate(f.Arg(0))
		if err != nil {
			return usageError("%v", err)
		}
		if err := store.SetRate(rate); err != nil {
			return fail(err)
		}
		fmt.Printf("Tasa del día: %s Bs/$\n", rate)

	case f.NArg() == 0:
		fmt.Printf("Tasa del día: %s Bs/$\n", store.Rate())
		if at := store.RateUpdatedAt(); !at.IsZero() {
			fmt.Printf("Actualizada: %s\n", at.Local().Format("2006-01-02 15:04"))
		}

	default:
		return usageError("rate takes at most one argument")
	}
	return subcommands.ExitSuccess
}
