package e

import "fmt"

var (
	// Внутренние ошибки
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrSessionNotFound      = fmt.Errorf("session not found")
	ErrSessionConflict      = fmt.Errorf("session was modified concurrently")
	ErrJournalClosed        = fmt.Errorf("order journal is closed")
	ErrJournalQueueFull     = fmt.Errorf("order journal queue is full")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidBody      = fmt.Errorf("invalid request body")
	ErrInvalidProductID = fmt.Errorf("invalid product id")
	ErrInvalidQuantity  = fmt.Errorf("quantity must be a non-negative integer")
	ErrUnknownField     = fmt.Errorf("unknown order field")
	ErrInvalidFilter    = fmt.Errorf("invalid filter value")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 409 Conflict
	ErrOutOfStock         = fmt.Errorf("product is out of stock")
	ErrEmptyCart          = fmt.Errorf("cart is empty")
	ErrCheckoutNotOpen    = fmt.Errorf("checkout is not open")
	ErrCheckoutInProgress = fmt.Errorf("order is already submitted, dismiss the confirmation first")
	ErrDraftFrozen        = fmt.Errorf("order is submitted, draft can not be changed")

	// 422 Unprocessable Entity
	ErrValidation = fmt.Errorf("order details are incomplete")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
