package minimarket

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	rateFilename    = "rate.json"
	catalogFilename = "catalog.jsonl"
	salesFilename   = "sales.jsonl"
)

// Store is the on-disk state of one shop: the live exchange rate, the
// product catalog and the sales ledger, persisted in a single folder.
// Every mutating method applies the change in memory and saves the
// touched file before returning, so a killed process loses at most the
// operation in flight.
//
// Store is not safe for concurrent use. The shop has one counter and one
// operator; serialization happens in front of the store, not inside it.
type Store struct {
	dir         string
	rate        Rate
	rateUpdated time.Time
	catalog     *Catalog
	ledger      *Ledger
}

// OpenStore loads a store from a folder, creating the folder when it
// does not exist. Missing files get their defaults: the fallback rate,
// an empty catalog, an empty ledger.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store folder %q: %w", dir, err)
	}
	s := &Store{
		dir:     dir,
		rate:    DefaultRate,
		catalog: NewCatalog(),
		ledger:  NewLedger(),
	}

	ratePath := filepath.Join(dir, rateFilename)
	if f, err := os.Open(ratePath); err == nil {
		s.rate, s.rateUpdated, err = DecodeRate(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("could not decode %q: %w", ratePath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %q: %w", ratePath, err)
	}

	catalogPath := filepath.Join(dir, catalogFilename)
	if f, err := os.Open(catalogPath); err == nil {
		s.catalog, err = DecodeCatalog(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("could not decode %q: %w", catalogPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %q: %w", catalogPath, err)
	}

	salesPath := filepath.Join(dir, salesFilename)
	if f, err := os.Open(salesPath); err == nil {
		s.ledger, err = DecodeSales(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("could not decode %q: %w", salesPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %q: %w", salesPath, err)
	}

	return s, nil
}

func (s *Store) Dir() string { return s.dir }

// Rate returns the live exchange rate.
func (s *Store) Rate() Rate { return s.rate }

// RateUpdatedAt returns when the live rate was last changed. Zero for a
// store that still runs on the default rate.
func (s *Store) RateUpdatedAt() time.Time { return s.rateUpdated }

// Catalog exposes the product catalog for queries. Mutations go through
// the Store methods so they get persisted.
func (s *Store) Catalog() *Catalog { return s.catalog }

// Ledger exposes the sales ledger for queries. Mutations go through the
// Store methods so they get persisted.
func (s *Store) Ledger() *Ledger { return s.ledger }

// save writes one file through a create-then-rename so a crash mid-write
// never truncates the previous version.
func (s *Store) save(filename string, encode func(f *os.File) error) error {
	path := filepath.Join(s.dir, filename)
	tmp, err := os.CreateTemp(s.dir, filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}
	if err := encode(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}

func (s *Store) saveRate() error {
	return s.save(rateFilename, func(f *os.File) error {
		return EncodeRate(f, s.rate, s.rateUpdated)
	})
}

func (s *Store) saveCatalog() error {
	return s.save(catalogFilename, func(f *os.File) error {
		return EncodeCatalog(f, s.catalog)
	})
}

func (s *Store) saveSales() error {
	return s.save(salesFilename, func(f *os.File) error {
		return EncodeSales(f, s.ledger)
	})
}

// Save persists everything. The mutating methods already save the files
// they touch; Save exists for bulk imports.
func (s *Store) Save() error {
	if err := s.saveRate(); err != nil {
		return err
	}
	if err := s.saveCatalog(); err != nil {
		return err
	}
	return s.saveSales()
}

// SetRate replaces the live exchange rate. Committed sales keep their
// frozen rates; only future commits and live conversions see the change.
func (s *Store) SetRate(r Rate) error {
	if r.IsZero() {
		return ErrInvalidRate
	}
	s.rate = r
	s.rateUpdated = time.Now()
	return s.saveRate()
}

// NewProduct assigns a fresh id to the product and inserts it.
func (s *Store) NewProduct(p Product) (Product, error) {
	p.ID = uuid.NewString()
	if err := s.catalog.Upsert(p); err != nil {
		return Product{}, err
	}
	p, _ = s.catalog.Get(p.ID) // pick up the defaulted fields
	return p, s.saveCatalog()
}

// UpsertProduct inserts or fully replaces a product with a known id.
func (s *Store) UpsertProduct(p Product) error {
	if err := s.catalog.Upsert(p); err != nil {
		return err
	}
	return s.saveCatalog()
}

// AdjustStock applies a manual stock correction.
func (s *Store) AdjustStock(id string, delta Quantity) error {
	if err := s.catalog.AdjustStock(id, delta); err != nil {
		return err
	}
	return s.saveCatalog()
}

// RemoveProduct deletes a product from the catalog. Sales that reference
// it keep their frozen snapshots.
func (s *Store) RemoveProduct(id string) error {
	if err := s.catalog.Remove(id); err != nil {
		return err
	}
	return s.saveCatalog()
}

// Checkout commits the cart as a sale at the live rate, then persists
// both the ledger and the catalog stock it consumed. The catalog is
// written first: a crash between the two writes then loses the sale
// record but never leaves the stock showing goods that already left
// the shelf.
func (s *Store) Checkout(cart *Cart, method PaymentMethod, customer, reference string) (Sale, error) {
	sale, err := s.ledger.Commit(cart, s.catalog, s.rate, method, customer, reference)
	if err != nil {
		return Sale{}, err
	}
	if err := s.saveCatalog(); err != nil {
		return Sale{}, err
	}
	return sale, s.saveSales()
}

// UndoLastSale removes the most recent sale and restores its stock.
func (s *Store) UndoLastSale() (Sale, error) {
	sale, ok := s.ledger.UndoLast(s.catalog)
	if !ok {
		return Sale{}, fmt.Errorf("no sale to undo: %w", ErrNotFound)
	}
	if err := s.saveCatalog(); err != nil {
		return Sale{}, err
	}
	return sale, s.saveSales()
}

// AmendSale edits a committed sale in place.
func (s *Store) AmendSale(id string, req AmendRequest) (Sale, error) {
	sale, err := s.ledger.Amend(id, s.catalog, req)
	if err != nil {
		return Sale{}, err
	}
	if err := s.saveCatalog(); err != nil {
		return Sale{}, err
	}
	return sale, s.saveSales()
}

// RetractSale deletes a sale from the ledger and restores its stock.
func (s *Store) RetractSale(id string) (Sale, error) {
	sale, err := s.ledger.Retract(id, s.catalog)
	if err != nil {
		return Sale{}, err
	}
	if err := s.saveCatalog(); err != nil {
		return Sale{}, err
	}
	return sale, s.saveSales()
}

// SettleDebt marks an open credit sale as paid with the given method.
func (s *Store) SettleDebt(id string, method PaymentMethod, reference string) (Sale, error) {
	sale, err := s.ledger.Settle(id, method, reference)
	if err != nil {
		return Sale{}, err
	}
	return sale, s.saveSales()
}
