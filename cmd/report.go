package cmd

import (
	"context"
	"flag"

	"github.com/bricar/minimarket"
	"github.com/bricar/minimarket/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	date   string
	period string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "sales report for a day, week or month" }
func (*reportCmd) Usage() string {
	return `mmb report [-d <date>] [-period <period>]

  Aggregates the sales inside the window: totals in both currencies,
  breakdown by payment method and day, and the best selling products.
  Amounts come from each sale's frozen totals. Defaults to today.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day inside the reporting window (defaults to today)")
	f.StringVar(&c.period, "period", "day", "Window size: day, week or month")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	day := minimarket.Today()
	if c.date != "" {
		if day, err = minimarket.ParseDate(c.date); err != nil {
			return usageError("%v", err)
		}
	}
	period, err := minimarket.ParsePeriod(c.period)
	if err != nil {
		return usageError("%v", err)
	}

	report := minimarket.NewSalesReport(store.Ledger(), period.Range(day))
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
