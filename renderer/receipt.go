package renderer

import (
	"bytes"
	"fmt"

	"github.com/bricar/minimarket"
	md "github.com/nao1215/markdown"
)

// ReceiptMarkdown renders a committed sale the way it is handed to the
// customer: every line, then both totals at the sale's own frozen rate.
func ReceiptMarkdown(s minimarket.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Recibo")
	doc.PlainTextf("Venta %s", md.Code(shortID(s.ID)))
	doc.PlainText(s.Timestamp.Format("2006-01-02 15:04"))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Artículo", "Cant.", "Precio", "Total"},
	}
	for _, l := range s.Items {
		table.Rows = append(table.Rows, []string{
			l.Name,
			l.Quantity.String(),
			l.Price.String(),
			l.Amount().String(),
		})
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total USD"), md.Bold(s.TotalUSD.String())},
		Rows: [][]string{
			{"Total BsF", s.TotalBsF.String()},
			{"Tasa", fmt.Sprintf("%s Bs/$", s.RateAtSale)},
		},
	})

	lines := []string{fmt.Sprintf("Pago: %s", s.PaymentMethod)}
	if s.CustomerName != "" {
		lines = append(lines, fmt.Sprintf("Cliente: %s", s.CustomerName))
	}
	if s.PaymentReference != "" {
		lines = append(lines, fmt.Sprintf("Referencia: %s", s.PaymentReference))
	}
	doc.BulletList(lines...)

	return doc.String()
}

// shortID abbreviates a sale id for display; files keep the full one.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
