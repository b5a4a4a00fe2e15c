package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/service"
)

// ProductHandler handles catalog product endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest represents a product create/update request. Image is a
// plain reference; upload mechanics live outside this API.
type ProductRequest struct {
	Name       string `json:"name" validate:"required"`
	Price      int64  `json:"price" validate:"required,gte=0"`
	Image      string `json:"image_product"`
	CategoryID uint   `json:"id_category" validate:"required"`
}

// Create godoc
// @Summary Add a product
// @Tags product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product data"
// @Success 201 {object} Response
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	product, err := h.productService.Create(c.Request().Context(), service.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if err == errors.ErrCategoryNotFound {
			return c.JSON(http.StatusUnprocessableEntity, Response{
				Message: "Validation Error!",
				Data:    []FieldError{{ItemName: "id_category", Message: "id category does not exist!"}},
			})
		}
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, "Add Product Successfully!", product)
}

// Update godoc
// @Summary Update a product
// @Tags product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body ProductRequest true "Product data"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /product/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrProductNotFound)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	product, err := h.productService.Update(c.Request().Context(), id, service.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if err == errors.ErrCategoryNotFound {
			return c.JSON(http.StatusUnprocessableEntity, Response{
				Message: "Validation Error!",
				Data:    []FieldError{{ItemName: "id_category", Message: "id category does not exist!"}},
			})
		}
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Update Product Successfully!", product)
}

// Delete godoc
// @Summary Delete a product
// @Tags product
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrProductNotFound)
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Delete Product Successfully!", nil)
}

// Get godoc
// @Summary Get a product by ID
// @Tags product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrProductNotFound)
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Get product successfully!", product)
}

// List godoc
// @Summary List products with their category
// @Tags product
// @Produce json
// @Param page query int false "1-based page"
// @Param pageSize query int false "page size, default 10"
// @Success 200 {object} Response
// @Router /product [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, pageSize := pageParams(c)
	products, total, err := h.productService.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Get All Product Successfully!", PagedData{Results: products, Total: total})
}
