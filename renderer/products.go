package renderer

import (
	"bytes"
	"fmt"

	"github.com/bricar/minimarket"
	md "github.com/nao1215/markdown"
)

// ProductsMarkdown renders the catalog as an inventory table. The BsF
// column is computed at the live rate, which is why it is part of the
// title: the same catalog prints differently tomorrow.
func ProductsMarkdown(products []minimarket.Product, rate minimarket.Rate) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventario")
	doc.PlainTextf("Tasa del día: %s Bs/$", rate)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Producto", "Categoría", "Precio", "Precio BsF", "Existencia"},
	}
	for _, p := range products {
		table.Rows = append(table.Rows, []string{
			p.Name,
			string(p.Category),
			p.Price.String(),
			p.Price.In(minimarket.BsF, rate).String(),
			fmt.Sprintf("%s %s", p.Stock, p.Unit),
		})
	}
	doc.Table(table)

	return doc.String()
}
