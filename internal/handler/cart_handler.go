package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/service"
)

// CartHandler handles the caller's cart endpoints. Every operation is scoped
// to the authenticated user; another user's line is reported as not found.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddCartRequest represents an add-to-cart request.
type AddCartRequest struct {
	ProductID uint `json:"id_product" validate:"required"`
	Qty       int  `json:"qty" validate:"required,gte=1"`
}

// UpdateCartRequest represents a quantity update. Qty is a pointer so an
// explicit zero (which deletes the line) survives validation.
type UpdateCartRequest struct {
	Qty *int `json:"qty" validate:"required,gte=0"`
}

// Add godoc
// @Summary Add a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddCartRequest true "Cart line"
// @Success 201 {object} Response
// @Failure 401 {object} Response
// @Failure 422 {object} Response
// @Router /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	item, err := h.cartService.AddItem(c.Request().Context(), user.ID, req.ProductID, req.Qty)
	if err != nil {
		if err == errors.ErrProductNotExists {
			return c.JSON(http.StatusUnprocessableEntity, Response{
				Message: "Validation Error!",
				Data:    []FieldError{{ItemName: "id_product", Message: err.Error()}},
			})
		}
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, "Add Product to Cart Successfully!", item)
}

// Update godoc
// @Summary Update a cart line's quantity; zero removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart line ID"
// @Param request body UpdateCartRequest true "New quantity"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /cart/{id} [put]
func (h *CartHandler) Update(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrCartItemNotFound)
	}

	var req UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	item, removed, err := h.cartService.UpdateQty(c.Request().Context(), user.ID, id, *req.Qty)
	if err != nil {
		return respondError(c, err)
	}
	if removed {
		return respond(c, http.StatusOK, "Remove Product from Cart Successfully!", nil)
	}
	return respond(c, http.StatusOK, "Update qty Product from Cart Successfully!", item)
}

// Remove godoc
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart line ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /cart/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrCartItemNotFound)
	}

	if err := h.cartService.Remove(c.Request().Context(), user.ID, id); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Remove Product from Cart Successfully!", nil)
}

// List godoc
// @Summary List the caller's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /cart [get]
func (h *CartHandler) List(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	items, err := h.cartService.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Get All Cart from User Successfully!", items)
}

// Get godoc
// @Summary Get one cart line by ID
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart line ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /cart/{id} [get]
func (h *CartHandler) Get(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrCartItemNotFound)
	}

	item, err := h.cartService.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Get Cart from User Successfully!", item)
}
