package renderer

import (
	"bytes"
	"fmt"

	"github.com/bricar/minimarket"
	md "github.com/nao1215/markdown"
)

// CreditsMarkdown renders the open credit ledger, one row per unsettled
// sale, oldest first.
func CreditsMarkdown(debts []minimarket.Sale, usd, bsf minimarket.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Fiao Pendiente")

	if len(debts) == 0 {
		doc.PlainText("No hay deudas abiertas.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Venta", "Fecha", "Cliente", "USD", "BsF"},
	}
	for _, s := range debts {
		table.Rows = append(table.Rows, []string{
			md.Code(shortID(s.ID)),
			s.Date().String(),
			s.CustomerName,
			s.TotalUSD.String(),
			s.TotalBsF.String(),
		})
	}
	doc.Table(table)

	doc.PlainText(md.Bold(fmt.Sprintf("Total por cobrar: %s / %s", usd, bsf)))

	return doc.String()
}
