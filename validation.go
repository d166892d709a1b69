package minimarket

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation on a product or sale that no longer
// exists. Direct edits surface it to the user; historical stock
// restorations never do (they silently no-op instead).
var ErrNotFound = errors.New("not found")

// ErrNotOpenDebt reports a settle attempt on a sale that is not an open
// credit sale.
var ErrNotOpenDebt = errors.New("sale is not an open credit")

// ValidationError reports a user input that cannot be accepted, like a
// credit sale without a customer name. It never leaves partial state
// behind.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// validationf builds a ValidationError with a formatted message.
func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// InsufficientStockError reports a reservation exceeding the available
// stock of a product. It is surfaced to the caller, never retried.
type InsufficientStockError struct {
	Product   string
	Available Quantity
	Requested Quantity
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %s, requested %s", e.Product, e.Available, e.Requested)
}
