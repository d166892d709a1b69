package minimarket

import (
	"encoding/json"
	"time"
)

// snapshotSales caps how much history goes into an assistant snapshot.
// Enough for "how did this week go", small enough to keep prompts cheap.
const snapshotSales = 50

// Snapshot is a compact, serializable view of the store handed to the
// sales assistant as context. It is a copy: the assistant can never
// mutate the store through it.
type Snapshot struct {
	Taken     time.Time  `json:"taken"`
	Rate      Rate       `json:"rate"`
	Products  []Product  `json:"products"`
	LastSales []Sale     `json:"lastSales"`
	OpenDebts []debtItem `json:"openDebts,omitempty"`
}

type debtItem struct {
	Sale     string `json:"sale"`
	Customer string `json:"customer"`
	USD      Money  `json:"usd"`
	BsF      Money  `json:"bsf"`
}

// Snapshot captures the current state for the assistant: the live rate,
// the full catalog, the last sales and the open credit list.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Taken:     time.Now(),
		Rate:      s.rate,
		Products:  s.catalog.Products(),
		LastSales: s.ledger.LastN(snapshotSales),
	}
	for _, d := range s.ledger.OpenDebts() {
		snap.OpenDebts = append(snap.OpenDebts, debtItem{
			Sale:     d.ID,
			Customer: d.CustomerName,
			USD:      d.TotalUSD,
			BsF:      d.TotalBsF,
		})
	}
	return snap
}

// JSON renders the snapshot for inclusion in a prompt.
func (s Snapshot) JSON() string {
	data, err := json.Marshal(s)
	if err != nil {
		// all snapshot fields marshal cleanly; this is unreachable
		return "{}"
	}
	return string(data)
}
