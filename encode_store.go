package minimarket

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The store is persisted as a folder of human-readable, git-friendly
// files: a small rate.json document, and one JSONL file each for the
// catalog and the sales ledger. Every JSONL file starts with a header
// line carrying the schema version, so a future format change can detect
// old files instead of misreading them.

// storeSchema is the current version of the persisted format.
const storeSchema = 1

// amountField is a specialized struct to read a money value persisted as
// an (amount, currency) pair.
type amountField struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

func (a amountField) Money() Money {
	return M(a.Amount, a.Currency)
}

// header identifies the schema line at the top of a JSONL file.
type header struct {
	Schema int `json:"schema"`
}

// encodeHeader writes the schema line of a JSONL file.
func encodeHeader(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "{%q:%d}\n", "schema", storeSchema); err != nil {
		return fmt.Errorf("failed to write schema header: %w", err)
	}
	return nil
}

// checkHeader validates a decoded schema line.
func checkHeader(h header) error {
	if h.Schema > storeSchema {
		return fmt.Errorf("file schema %d is newer than this build supports (%d)", h.Schema, storeSchema)
	}
	return nil
}

// MarshalJSON writes the line with a fixed key order. The product id and
// the price currency are omitted when empty, so manual lines stay short.
func (l Line) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("product", l.ProductID)
	w.Append("name", l.Name)
	w.Append("quantity", l.Quantity)
	w.Append("price", l.Price.exact())
	return w.MarshalJSON()
}

func (l *Line) UnmarshalJSON(data []byte) error {
	var temp struct {
		ProductID string      `json:"product"`
		Name      string      `json:"name"`
		Quantity  Quantity    `json:"quantity"`
		Price     amountField `json:"price"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	l.ProductID = temp.ProductID
	l.Name = temp.Name
	l.Quantity = temp.Quantity
	l.Price = temp.Price.Money()
	return nil
}

// MarshalJSON writes a sale with a fixed key order. The stored totals
// are plain numbers whose currencies are implied by the keys; they keep
// all their digits so the totals still balance against the items after
// a reload.
func (s Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("at", s.Timestamp.Format(time.RFC3339))
	w.Append("rate", s.RateAtSale)
	w.Append("method", s.PaymentMethod)
	w.Optional("customer", s.CustomerName)
	w.Optional("reference", s.PaymentReference)
	w.Append("totalUsd", s.TotalUSD.Amount())
	w.Append("totalBsf", s.TotalBsF.Amount())
	w.Append("items", s.Items)
	return w.MarshalJSON()
}

func (s *Sale) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string          `json:"id"`
		At        string          `json:"at"`
		Rate      Rate            `json:"rate"`
		Method    PaymentMethod   `json:"method"`
		Customer  string          `json:"customer"`
		Reference string          `json:"reference"`
		TotalUSD  decimal.Decimal `json:"totalUsd"`
		TotalBsF  decimal.Decimal `json:"totalBsf"`
		Items     []Line          `json:"items"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	at, err := time.Parse(time.RFC3339, temp.At)
	if err != nil {
		return fmt.Errorf("sale %q has an invalid timestamp: %w", temp.ID, err)
	}
	s.ID = temp.ID
	s.Timestamp = at
	s.RateAtSale = temp.Rate
	s.PaymentMethod = temp.Method
	s.CustomerName = temp.Customer
	s.PaymentReference = temp.Reference
	s.TotalUSD = M(temp.TotalUSD, USD)
	s.TotalBsF = M(temp.TotalBsF, BsF)
	s.Items = temp.Items
	return nil
}

// MarshalJSON writes a product with a fixed key order, omitting the
// optional merchandising fields when unset.
func (p Product) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.Append("category", p.Category)
	w.Append("price", p.Price)
	w.Append("unit", p.Unit)
	w.Append("unitsPerCase", p.UnitsPerCase)
	w.Append("stock", p.Stock)
	w.Optional("barcode", p.Barcode)
	if !p.Cost.IsZero() {
		w.Append("cost", p.Cost)
	}
	w.Optional("margin", p.ProfitMargin)
	return w.MarshalJSON()
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           string          `json:"id"`
		Name         string          `json:"name"`
		Category     Category        `json:"category"`
		Price        amountField     `json:"price"`
		Unit         string          `json:"unit"`
		UnitsPerCase int             `json:"unitsPerCase"`
		Stock        Quantity        `json:"stock"`
		Barcode      string          `json:"barcode"`
		Cost         amountField     `json:"cost"`
		Margin       decimal.Decimal `json:"margin"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.ID = temp.ID
	p.Name = temp.Name
	p.Category = temp.Category
	p.Price = temp.Price.Money()
	p.Unit = temp.Unit
	p.UnitsPerCase = temp.UnitsPerCase
	p.Stock = temp.Stock
	p.Barcode = temp.Barcode
	if !temp.Cost.Amount.IsZero() {
		p.Cost = temp.Cost.Money()
	}
	p.ProfitMargin = temp.Margin
	return nil
}

// rateDoc is the persisted shape of rate.json.
type rateDoc struct {
	Schema    int       `json:"schema"`
	BsfPerUSD Rate      `json:"bsfPerUsd"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EncodeRate persists the live rate document.
func EncodeRate(w io.Writer, r Rate, updatedAt time.Time) error {
	doc := rateDoc{Schema: storeSchema, BsfPerUSD: r, UpdatedAt: updatedAt.UTC()}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal rate: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write rate: %w", err)
	}
	return nil
}

// DecodeRate reads the live rate document.
func DecodeRate(r io.Reader) (Rate, time.Time, error) {
	var doc rateDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Rate{}, time.Time{}, fmt.Errorf("failed to decode rate: %w", err)
	}
	if err := checkHeader(header{Schema: doc.Schema}); err != nil {
		return Rate{}, time.Time{}, err
	}
	if doc.BsfPerUSD.IsZero() {
		return Rate{}, time.Time{}, ErrInvalidRate
	}
	return doc.BsfPerUSD, doc.UpdatedAt, nil
}

// EncodeCatalog persists the catalog as JSONL, one product per line,
// sorted by name so that diffs between saves stay readable.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	if err := encodeHeader(w); err != nil {
		return err
	}
	for _, p := range c.Products() {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal product %q: %w", p.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write product: %w", err)
		}
	}
	return nil
}

// DecodeCatalog reads a catalog from a JSONL stream.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	c := NewCatalog()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		if i == 1 {
			var h header
			if err := json.Unmarshal(lineBytes, &h); err == nil && h.Schema > 0 {
				if err := checkHeader(h); err != nil {
					return nil, err
				}
				continue
			}
		}
		var p Product
		if err := json.Unmarshal(lineBytes, &p); err != nil {
			return nil, fmt.Errorf("format error on catalog line %d: %w", i, err)
		}
		if err := c.Upsert(p); err != nil {
			return nil, fmt.Errorf("invalid product on catalog line %d: %w", i, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}
	return c, nil
}

// EncodeSales persists the ledger as JSONL in commit order.
func EncodeSales(w io.Writer, l *Ledger) error {
	if err := encodeHeader(w); err != nil {
		return err
	}
	for s := range l.Sales() {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal sale %q: %w", s.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write sale: %w", err)
		}
	}
	return nil
}

// DecodeSales reads a sales ledger from a JSONL stream, keeping the
// on-disk order as the commit order.
func DecodeSales(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		if i == 1 {
			var h header
			if err := json.Unmarshal(lineBytes, &h); err == nil && h.Schema > 0 {
				if err := checkHeader(h); err != nil {
					return nil, err
				}
				continue
			}
		}
		var s Sale
		if err := json.Unmarshal(lineBytes, &s); err != nil {
			return nil, fmt.Errorf("format error on sales line %d: %w", i, err)
		}
		l.append(s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading sales: %w", err)
	}
	return l, nil
}
