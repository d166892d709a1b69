package renderer

import (
	"bytes"
	"fmt"

	"github.com/bricar/minimarket"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders a compact listing of sales, most recent last,
// matching the ledger's commit order.
func SalesMarkdown(title string, sales []minimarket.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	if len(sales) == 0 {
		doc.PlainText("No hay ventas registradas.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Venta", "Fecha", "Artículos", "USD", "BsF", "Pago"},
	}
	for _, s := range sales {
		method := string(s.PaymentMethod)
		if s.CustomerName != "" {
			method = fmt.Sprintf("%s (%s)", method, s.CustomerName)
		}
		table.Rows = append(table.Rows, []string{
			md.Code(shortID(s.ID)),
			s.Timestamp.Format("2006-01-02 15:04"),
			fmt.Sprint(len(s.Items)),
			s.TotalUSD.String(),
			s.TotalBsF.String(),
			method,
		})
	}
	doc.Table(table)

	return doc.String()
}
