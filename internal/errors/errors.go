package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when username or password is wrong.
	// Unknown-username and bad-password deliberately share one message.
	ErrInvalidCredentials = errors.New("Invalid Credentials!")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("Username already in use!")
	// ErrEmailTaken is returned when registering an existing email.
	ErrEmailTaken = errors.New("Email already in use!")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("Invalid or expired refresh token!")
	// ErrCategoryNotFound is returned when a category id does not resolve.
	ErrCategoryNotFound = errors.New("Id Category not found!")
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("Id Product not found!")
	// ErrProductNotExists rejects cart additions referencing a missing product.
	ErrProductNotExists = errors.New("id_product does not exist!")
	// ErrCartItemNotFound covers both a missing row and a row owned by
	// another user; cross-user access must read as absence.
	ErrCartItemNotFound = errors.New("Id cart not found!")
	// ErrTransactionNotFound follows the same absence-over-denial policy.
	ErrTransactionNotFound = errors.New("Id Transaction not found!")
	// ErrEmptyCart is returned when checkout finds nothing to convert.
	ErrEmptyCart = errors.New("Cart empty, please fill cart before transaction!")
	// ErrInvalidQty is returned when a cart quantity is out of range.
	ErrInvalidQty = errors.New("qty min 1!")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognised is
// reported as a generic 500 with no internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrProductNotExists),
		errors.Is(err, ErrInvalidQty):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCartItemNotFound),
		errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrEmptyCart):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error!")
	}
}
