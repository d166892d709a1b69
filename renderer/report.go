package renderer

import (
	"bytes"
	"fmt"

	"github.com/bricar/minimarket"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a sales report. Amounts come from the frozen
// totals of the underlying sales.
func ReportMarkdown(r *minimarket.SalesReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Reporte de Ventas %s", r.Range.Identifier()))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Ventas"), md.Bold(fmt.Sprint(r.Count))},
		Rows: [][]string{
			{"Total USD", r.TotalUSD.String()},
			{"Total BsF", r.TotalBsF.String()},
		},
	})

	if len(r.ByMethod) > 0 {
		doc.H2("Por Método de Pago")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Método", "Ventas", "USD", "BsF"},
		}
		for _, mt := range r.ByMethod {
			table.Rows = append(table.Rows, []string{
				string(mt.Method),
				fmt.Sprint(mt.Count),
				mt.USD.String(),
				mt.BsF.String(),
			})
		}
		doc.Table(table)
	}

	if len(r.ByDay) > 1 {
		doc.H2("Por Día")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Día", "Ventas", "USD", "BsF"},
		}
		for _, dt := range r.ByDay {
			table.Rows = append(table.Rows, []string{
				dt.Date.String(),
				fmt.Sprint(dt.Count),
				dt.USD.String(),
				dt.BsF.String(),
			})
		}
		doc.Table(table)
	}

	if len(r.Top) > 0 {
		doc.H2("Más Vendidos")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Producto", "Cantidad", "USD"},
		}
		for _, pt := range r.Top {
			table.Rows = append(table.Rows, []string{
				pt.Name,
				pt.Quantity.String(),
				pt.USD.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
