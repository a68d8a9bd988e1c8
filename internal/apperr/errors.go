package apperr

import "fmt"

// Messages match the service this one replaces verbatim; callers
// depend on them.
var (
	ErrNoProducts       = NewNotFound("No products provided")
	ErrNoSearchTerms    = NewNotFound("No search terms provided")
	ErrProductExists    = NewConflict("Product already exists. Try updating the inventory")
	ErrNoProductDetails = NewBadRequest("No product details provided")
	ErrNoCartDetails    = NewBadRequest("No product(s) details provided")
	ErrPaymentRejected  = NewBadRequest("Payment rejected")
)

// NewProductNotFound builds the not-found error for a product lookup,
// echoing the requested id in the message.
func NewProductNotFound(id int) Error {
	return NewNotFound(fmt.Sprintf("No product with id %d", id))
}
