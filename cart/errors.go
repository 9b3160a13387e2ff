package cart

import (
	"errors"
	"fmt"
)

// ErrItemNotFound is returned when a quantity change targets a product that
// is not in the cart. Callers may ignore it.
var ErrItemNotFound = errors.New("item not in cart")

// MalformedProductError reports an add-to-cart request whose product payload
// cannot be turned into a line item.
type MalformedProductError struct {
	ProductID int
	Reason    string
	Err       error
}

func (e *MalformedProductError) Error() string {
	msg := fmt.Sprintf("malformed product %d: %s", e.ProductID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedProductError) Unwrap() error {
	return e.Err
}

func itemNotFound(productID int) error {
	return fmt.Errorf("%w: product %d", ErrItemNotFound, productID)
}
