package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/service"
)

// CategoryHandler handles catalog category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a category create/update request.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create godoc
// @Summary Add a category
// @Tags category
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} Response
// @Failure 422 {object} Response
// @Router /category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, "Add Category Successfully!", category)
}

// Update godoc
// @Summary Update a category
// @Tags category
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /category/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrCategoryNotFound)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Update Category Successfully!", category)
}

// Delete godoc
// @Summary Delete a category and its products
// @Tags category
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /category/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrCategoryNotFound)
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Delete Category Successfully!", nil)
}

// Get godoc
// @Summary Get a category by ID
// @Tags category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /category/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return respondError(c, errors.ErrCategoryNotFound)
	}

	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Get Category Successfully!", category)
}

// List godoc
// @Summary List categories
// @Tags category
// @Produce json
// @Param page query int false "1-based page"
// @Param pageSize query int false "page size, default 10"
// @Success 200 {object} Response
// @Router /category [get]
func (h *CategoryHandler) List(c echo.Context) error {
	page, pageSize := pageParams(c)
	categories, total, err := h.categoryService.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Get All Category Successfully!", PagedData{Results: categories, Total: total})
}
