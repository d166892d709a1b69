package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/bricar/minimarket"
	"github.com/google/subcommands"
)

type settleCmd struct {
	id     string
	method string
	ref    string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "settle an open credit sale" }
func (*settleCmd) Usage() string {
	return `mmb settle -id <sale> -method <method> [-ref <digits>]

  Marks an open credit sale as paid with the given method, keeping the
  customer name and the frozen totals. The method cannot be credito, and
  pago-movil needs -ref.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Credit sale to settle (full id or prefix)")
	f.StringVar(&c.method, "method", "", "Actual payment method")
	f.StringVar(&c.ref, "ref", "", "Payment reference, for pago-movil")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.method == "" {
		return usageError("-id and -method are required")
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	method, err := minimarket.ParsePaymentMethod(c.method)
	if err != nil {
		return usageError("%v", err)
	}
	sale, err := findSale(store.Ledger(), c.id)
	if err != nil {
		return fail(err)
	}
	sale, err = store.SettleDebt(sale.ID, method, c.ref)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Deuda de %s saldada: %s / %s por %s\n",
		sale.CustomerName, sale.TotalUSD, sale.TotalBsF, sale.PaymentMethod)
	return subcommands.ExitSuccess
}
