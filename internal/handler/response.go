package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/model"
)

// CurrentUserKey is the echo context key carrying the authenticated user.
const CurrentUserKey = "currentUser"

// Response is the envelope shared by every endpoint.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// FieldError reports one invalid request field.
type FieldError struct {
	ItemName string `json:"item_name"`
	Message  string `json:"message"`
}

// CurrentUser returns the user attached by the auth middleware. When the user
// is missing it writes the 401 envelope itself and returns a non-nil error so
// the handler stops; the committed response is left untouched upstream.
func CurrentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(CurrentUserKey).(*model.User)
	if !ok || user == nil {
		_ = c.JSON(http.StatusUnauthorized, Response{
			Message: "You are unauthorized to make this request, Login please!",
			Data:    nil,
		})
		return nil, echo.ErrUnauthorized
	}
	return user, nil
}

// respond writes the success envelope.
func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Message: message, Data: data})
}

// respondError maps a domain error onto the envelope.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(httpErr.StatusCode, Response{Message: httpErr.Message, Data: nil})
}

// respondValidation reports binding/validation failures with per-field
// messages.
func respondValidation(c echo.Context, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.JSON(http.StatusBadRequest, Response{Message: "Invalid request body!", Data: nil})
	}

	fields := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, FieldError{ItemName: fe.Field(), Message: fieldMessage(fe)})
	}
	return c.JSON(http.StatusUnprocessableEntity, Response{Message: "Validation Error!", Data: fields})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " can not be empty!"
	case "email":
		return "Invalid email format!"
	case "min":
		if fe.Kind().String() == "string" {
			return fe.Field() + " must be at least " + fe.Param() + " characters long!"
		}
		return fe.Field() + " min " + fe.Param() + "!"
	case "gte":
		return fe.Field() + " min " + fe.Param() + "!"
	case "phone":
		return "Invalid phone number format!"
	default:
		return fe.Field() + " is invalid!"
	}
}

// pathID parses a numeric path parameter. Zero means unparsable; callers
// treat that as absence.
func pathID(c echo.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// pageParams reads 1-based page / pageSize query params and returns the
// zero-based page index with defaults of page 0, size 10.
func pageParams(c echo.Context) (page, pageSize int) {
	page = 0
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p - 1
	}
	pageSize = 10
	if ps, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && ps > 0 {
		pageSize = ps
	}
	return page, pageSize
}

// PagedData is the list payload: one page of rows plus the unpaged total.
type PagedData struct {
	Results interface{} `json:"results"`
	Total   int64       `json:"total"`
}
