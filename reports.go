package minimarket

import (
	"sort"
)

// MethodTotal aggregates the sales paid with one method inside a window.
type MethodTotal struct {
	Method PaymentMethod
	Count  int
	USD    Money
	BsF    Money
}

// DayTotal aggregates one calendar day inside a window.
type DayTotal struct {
	Date  Date
	Count int
	USD   Money
	BsF   Money
}

// ProductTotal aggregates one product name across a window's sales.
type ProductTotal struct {
	Name     string
	Quantity Quantity
	USD      Money
}

// SalesReport is a read-only aggregation over the ledger for a date
// window. All amounts come from the sales' frozen totals; the report
// never converts at the live rate.
type SalesReport struct {
	Range    Range
	Count    int
	TotalUSD Money
	TotalBsF Money
	ByMethod []MethodTotal
	ByDay    []DayTotal
	Top      []ProductTotal
}

// topProducts caps the product breakdown of a report.
const topProducts = 5

// NewSalesReport aggregates the sales whose day falls inside the range.
func NewSalesReport(l *Ledger, rng Range) *SalesReport {
	r := &SalesReport{
		Range:    rng,
		TotalUSD: M(0, USD),
		TotalBsF: M(0, BsF),
	}

	byMethod := make(map[PaymentMethod]*MethodTotal)
	byDay := make(map[Date]*DayTotal)
	byProduct := make(map[string]*ProductTotal)

	for s := range l.Sales(InRange(rng)) {
		r.Count++
		r.TotalUSD = r.TotalUSD.Add(s.TotalUSD)
		r.TotalBsF = r.TotalBsF.Add(s.TotalBsF)

		mt, ok := byMethod[s.PaymentMethod]
		if !ok {
			mt = &MethodTotal{Method: s.PaymentMethod, USD: M(0, USD), BsF: M(0, BsF)}
			byMethod[s.PaymentMethod] = mt
		}
		mt.Count++
		mt.USD = mt.USD.Add(s.TotalUSD)
		mt.BsF = mt.BsF.Add(s.TotalBsF)

		day := s.Date()
		dt, ok := byDay[day]
		if !ok {
			dt = &DayTotal{Date: day, USD: M(0, USD), BsF: M(0, BsF)}
			byDay[day] = dt
		}
		dt.Count++
		dt.USD = dt.USD.Add(s.TotalUSD)
		dt.BsF = dt.BsF.Add(s.TotalBsF)

		for _, line := range s.Items {
			pt, ok := byProduct[line.Name]
			if !ok {
				pt = &ProductTotal{Name: line.Name, USD: M(0, USD)}
				byProduct[line.Name] = pt
			}
			pt.Quantity = pt.Quantity.Add(line.Quantity)
			pt.USD = pt.USD.Add(line.Amount().In(USD, s.RateAtSale))
		}
	}

	for _, mt := range byMethod {
		r.ByMethod = append(r.ByMethod, *mt)
	}
	sort.Slice(r.ByMethod, func(i, j int) bool {
		return r.ByMethod[j].USD.LessThan(r.ByMethod[i].USD)
	})

	for _, dt := range byDay {
		r.ByDay = append(r.ByDay, *dt)
	}
	sort.Slice(r.ByDay, func(i, j int) bool {
		return r.ByDay[i].Date.Before(r.ByDay[j].Date)
	})

	for _, pt := range byProduct {
		r.Top = append(r.Top, *pt)
	}
	sort.Slice(r.Top, func(i, j int) bool {
		return r.Top[j].Quantity.LessThan(r.Top[i].Quantity)
	})
	if len(r.Top) > topProducts {
		r.Top = r.Top[:topProducts]
	}

	return r
}
