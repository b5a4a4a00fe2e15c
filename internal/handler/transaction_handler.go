package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/service"
)

// TransactionHandler handles checkout and purchase history endpoints.
type TransactionHandler struct {
	transactionService service.TransactionService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Checkout godoc
// @Summary Convert the caller's cart into transaction records
// @Description Atomically creates one transaction row per cart line and empties the cart. Fails with 404 when the cart is empty; on any other failure nothing is created and the cart is untouched.
// @Tags transaction
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /transaction [post]
func (h *TransactionHandler) Checkout(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	items, err := h.transactionService.Checkout(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Create Transaction Successfully!", items)
}

// List godoc
// @Summary List the caller's purchase history
// @Tags transaction
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /transaction [get]
func (h *TransactionHandler) List(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	items, err := h.transactionService.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Get All Transaction User Successfully!", items)
}

// Get godoc
// @Summary Get one transaction record by ID
// @Tags transaction
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /transaction/{id} [get]
func (h *TransactionHandler) Get(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrTransactionNotFound)
	}

	item, err := h.transactionService.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Get Transaction User Successfully!", item)
}
