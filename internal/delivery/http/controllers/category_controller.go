package controllers

import (
	"log/slog"
	"net/http"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// CategoryRequest is the request body for POST and PATCH on /admin/categories.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CategoryRequest) Validate() []string {
	return helpers.CheckLength(nil, "name", &c.Name, 1, 50, true)
}

// CategorySuccessResponse is the success response envelope for a single category.
type CategorySuccessResponse struct {
	Data  CategoryDto       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListCategoriesSuccessResponse is the success response envelope for GET /categories (200).
type ListCategoriesSuccessResponse struct {
	Data  []CategoryDto     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CategoryController handles the admin and public category endpoints.
type CategoryController struct {
	Logger  *slog.Logger
	Service domain.CategoryService
}

func NewCategoryController(logger *slog.Logger, svc domain.CategoryService) *CategoryController {
	return &CategoryController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin: categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CategoryRequest true "Category"
// @Success 201 {object} controllers.CategorySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (name in use)"
// @Router /admin/categories [post]
func (c *CategoryController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category, err := c.Service.Create(r.Context(), req.Name)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, toCategoryDto(category))
}

// UpdateCategory godoc
// @Summary Rename a category
// @Tags admin: categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param catId path int true "Category id"
// @Param body body CategoryRequest true "Category"
// @Success 200 {object} controllers.CategorySuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (name in use)"
// @Router /admin/categories/{catId} [patch]
func (c *CategoryController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "catId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	var req CategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category, err := c.Service.Update(r.Context(), id, req.Name)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toCategoryDto(category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Fails with 409 while events still reference the category.
// @Tags admin: categories
// @Security BearerAuth
// @Param catId path int true "Category id"
// @Success 204 "deleted"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (category not empty)"
// @Router /admin/categories/{catId} [delete]
func (c *CategoryController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "catId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories godoc
// @Summary List categories
// @Tags public: categories
// @Produce json
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} controllers.ListCategoriesSuccessResponse
// @Router /categories [get]
func (c *CategoryController) ListCategories(w http.ResponseWriter, r *http.Request) {
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	categories, err := c.Service.List(r.Context(), page)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	out := make([]CategoryDto, len(categories))
	for i, cat := range categories {
		out[i] = toCategoryDto(cat)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}

// GetCategory godoc
// @Summary Get a category
// @Tags public: categories
// @Produce json
// @Param catId path int true "Category id"
// @Success 200 {object} controllers.CategorySuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /categories/{catId} [get]
func (c *CategoryController) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "catId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	category, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toCategoryDto(category))
}
