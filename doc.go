// Package minimarket implements the sales and inventory engine of a small
// retail store that operates with two currencies at once: US dollars and
// bolívares, linked by a manually refreshed exchange rate.
//
// The package is organized around a handful of cooperating values:
//
//   - Money and Rate handle conversion between the two currencies. A sale
//     freezes the rate at commit time; everything else converts at the
//     live rate.
//   - Catalog holds the products and their stock. Stock moves only through
//     its mutation primitives (reserve, restore, adjust) so that sales and
//     their reversals stay symmetric.
//   - Cart builds an uncommitted sale from catalog-backed or manual lines.
//   - Ledger is the list of committed sales. It supports commit, undo of
//     the most recent sale, amendment (payment fields and line removal),
//     and retraction, each restoring stock where applicable. Credit sales
//     live in the ledger too; the credit subledger is a pure projection.
//   - Store bundles rate, catalog and ledger behind explicit mutation
//     entry points and persists each record after every mutation.
//
// The cmd and mmb packages expose all of this as the command line tool.
package minimarket
