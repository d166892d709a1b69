package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bricar/minimarket"
	"github.com/bricar/minimarket/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	out    string
	date   string
	period string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a full store document to a markdown file" }
func (*exportCmd) Usage() string {
	return `mmb export [-o <file>] [-d <date>] [-period <period>]

  Writes one printable markdown document: the sales report for the
  window, the sales listing, the open credits and the inventory. The
  default output name carries the window identifier.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file (default reporte-<window>.md)")
	f.StringVar(&c.date, "d", "", "Day inside the reporting window (defaults to today)")
	f.StringVar(&c.period, "period", "day", "Window size: day, week or month")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	rng := period.Range(day)

	ledger := store.Ledger()
	var sales []minimarket.Sale
	for s := range ledger.Sales(minimarket.InRange(rng)) {
		sales = append(sales, s)
	}
	usd, bsf := ledger.TotalOpen()

	var doc strings.Builder
	doc.WriteString(renderer.ReportMarkdown(minimarket.NewSalesReport(ledger, rng)))
	doc.WriteString("\n")
	doc.WriteString(renderer.SalesMarkdown("Ventas del Período", sales))
	doc.WriteString("\n")
	doc.WriteString(renderer.CreditsMarkdown(ledger.OpenDebts(), usd, bsf))
	doc.WriteString("\n")
	doc.WriteString(renderer.ProductsMarkdown(store.Catalog().Products(), store.Rate()))

	out := c.out
	if out == "" {
		out = fmt.Sprintf("reporte-%s.md", rng.Identifier())
	}
	if err := os.WriteFile(out, []byte(doc.String()), 0644); err != nil {
		return fail(err)
	}
	fmt.Printf("Documento escrito en %s\n", out)
	return subcommands.ExitSuccess
}
