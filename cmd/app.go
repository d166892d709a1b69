// Package cmd implements the CLI application to run the store counter.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bricar/minimarket"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&rateCmd{},
	&productCmd{},
	&productsCmd{},
	&stockCmd{},
	&rmProductCmd{},
	&sellCmd{},
	&undoCmd{},
	&salesCmd{},
	&editSaleCmd{},
	&rmSaleCmd{},
	&creditsCmd{},
	&settleCmd{},
	&reportCmd{},
	&exportCmd{},
	&scanCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("store", ".bodega", "Path to the store data folder")

// openStore opens the store folder named by the global -store flag.
func openStore() (*minimarket.Store, error) {
	return minimarket.OpenStore(*storeDir)
}

// fail prints the error and returns the failure status, the uniform
// ending of every subcommand's error path.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usageError prints the message and returns the usage error status.
func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}

// confirm asks a yes/no question on stdin. yes skips the prompt, for
// scripts and the impatient.
func confirm(yes bool, format string, args ...any) bool {
	if yes {
		return true
	}
	fmt.Printf(format+" [s/N] ", args...)
	var answer string
	fmt.Scanln(&answer)
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

// shortID abbreviates a sale id for messages; commands accept both forms.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// findSale resolves a sale reference: a full id or an unambiguous prefix.
func findSale(l *minimarket.Ledger, ref string) (minimarket.Sale, error) {
	if s, ok := l.Sale(ref); ok {
		return s, nil
	}
	var matches []minimarket.Sale
	for s := range l.Sales() {
		if strings.HasPrefix(s.ID, ref) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return minimarket.Sale{}, fmt.Errorf("no sale matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return minimarket.Sale{}, fmt.Errorf("%q matches %d sales, give more digits", ref, len(matches))
	}
}

// findProduct resolves a user-supplied product reference: an exact id,
// an exact barcode, or a name fragment matching exactly one product.
func findProduct(cat *minimarket.Catalog, ref string) (minimarket.Product, error) {
	if p, ok := cat.Get(ref); ok {
		return p, nil
	}
	if p, ok := cat.FindByBarcode(ref); ok {
		return p, nil
	}
	matches := cat.Search(ref)
	switch len(matches) {
	case 0:
		return minimarket.Product{}, fmt.Errorf("no product matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, p := range matches {
			names = append(names, p.Name)
		}
		return minimarket.Product{}, fmt.Errorf("%q is ambiguous: %v", ref, names)
	}
}
