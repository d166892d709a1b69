package minimarket

// USDm is a helper for tests to create USD money from const
func USDm(v float64) Money { return M(v, USD) }

// BSFm is a helper for tests to create BsF money from const
func BSFm(v float64) Money { return M(v, BsF) }

// testCatalog builds a small catalog with known stock levels.
func testCatalog() *Catalog {
	c := NewCatalog()
	c.Upsert(Product{ID: "p-harina", Name: "Harina PAN", Category: Viveres,
		Price: USDm(2.00), Stock: Q(10), Barcode: "7591001000015"})
	c.Upsert(Product{ID: "p-refresco", Name: "Refresco 2L", Category: Bebidas,
		Price: USDm(1.50), Stock: Q(6), Barcode: "7591001000022"})
	c.Upsert(Product{ID: "p-jabon", Name: "Jabón de baño", Category: Aseo,
		Price: USDm(0.80), Stock: Q(24)})
	return c
}
