package errors

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Error is an application error carrying the HTTP status it should surface
// with. Err keeps the underlying cause for logs and the development-mode
// diagnostic field; it never reaches production responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap returns a copy of base carrying err as its cause.
func Wrap(base *Error, err error) *Error {
	return New(base.Code, base.Message, err)
}

// Cart and catalog error kinds
var (
	ErrProductNotFound  = New(http.StatusNotFound, "Product not found", nil)
	ErrCartLineNotFound = New(http.StatusNotFound, "Cart item not found", nil)
	ErrInvalidQuantity  = New(http.StatusBadRequest, "Quantity must be at least 1", nil)
	ErrEmptyCart        = New(http.StatusBadRequest, "Cart is empty", nil)
)

// Store error kinds
var (
	ErrTransactionFailure = New(http.StatusInternalServerError, "Could not complete checkout, please retry", nil)
	ErrDatabaseQuery      = New(http.StatusInternalServerError, "Database query error", nil)
)

// InsufficientStockError names the offending product and what is actually
// available so the client can reconcile the cart without blind retries. The
// HTTP status is chosen at the handler: 400 on cart mutations, 409 on
// checkout.
type InsufficientStockError struct {
	ProductID uuid.UUID `json:"product_id"`
	Available int       `json:"available"`
	Requested int       `json:"requested"`
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
