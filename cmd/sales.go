package cmd

import (
	"context"
	"flag"

	"github.com/bricar/minimarket"
	"github.com/bricar/minimarket/renderer"
	"github.com/google/subcommands"
)

type salesCmd struct {
	tail   int
	method string
	date   string
	period string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list committed sales" }
func (*salesCmd) Usage() string {
	return `mmb sales [-tail <n>] [-method <method>] [-d <date>] [-period <period>]

  Lists sales in commit order. -tail keeps only the most recent n.
  -method filters by payment method; -d with -period filters by window.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.tail, "tail", 0, "Show only the last N sales")
	f.StringVar(&c.method, "method", "", "Filter by payment method")
	f.StringVar(&c.date, "d", "", "Day inside the reporting window (defaults to today)")
	f.StringVar(&c.period, "period", "", "Window around -d: day, week or month")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	var filters []func(minimarket.Sale) bool
	if c.method != "" {
		method, err := minimarket.ParsePaymentMethod(c.method)
		if err != nil {
			return usageError("%v", err)
		}
		filters = append(filters, minimarket.ByMethod(method))
	}
	if c.period != "" || c.date != "" {
		day := minimarket.Today()
		if c.date != "" {
			if day, err = minimarket.ParseDate(c.date); err != nil {
				return usageError("%v", err)
			}
		}
		period := minimarket.Daily
		if c.period != "" {
			if period, err = minimarket.ParsePeriod(c.period); err != nil {
				return usageError("%v", err)
			}
		}
		filters = append(filters, minimarket.InRange(period.Range(day)))
	}

	var sales []minimarket.Sale
	for s := range store.Ledger().Sales(filters...) {
		sales = append(sales, s)
	}
	if c.tail > 0 && len(sales) > c.tail {
		sales = sales[len(sales)-c.tail:]
	}

	printMarkdown(renderer.SalesMarkdown("Ventas", sales))
	return subcommands.ExitSuccess
}
