package controllers

import (
	"log/slog"
	"net/http"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// NewCompilationRequest is the request body for POST /admin/compilations.
type NewCompilationRequest struct {
	Title  string  `json:"title"`
	Pinned bool    `json:"pinned"`
	Events []int64 `json:"events"`
}

// Validate implements Validator.
func (n NewCompilationRequest) Validate() []string {
	return helpers.CheckLength(nil, "title", &n.Title, 1, 50, true)
}

// UpdateCompilationRequest is the request body for PATCH /admin/compilations/{compId}.
// A present events field replaces the event list, even when empty.
type UpdateCompilationRequest struct {
	Title  *string  `json:"title"`
	Pinned *bool    `json:"pinned"`
	Events *[]int64 `json:"events"`
}

// Validate implements Validator.
func (u UpdateCompilationRequest) Validate() []string {
	return helpers.CheckLength(nil, "title", u.Title, 1, 50, false)
}

func (u UpdateCompilationRequest) toPatch() domain.CompilationPatch {
	p := domain.CompilationPatch{Title: u.Title, Pinned: u.Pinned}
	if u.Events != nil {
		p.EventIDs = *u.Events
		p.SetEvents = true
	}
	return p
}

// CompilationSuccessResponse is the success response envelope for a single compilation.
type CompilationSuccessResponse struct {
	Data  CompilationDto    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListCompilationsSuccessResponse is the success response envelope for GET /compilations (200).
type ListCompilationsSuccessResponse struct {
	Data  []CompilationDto  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CompilationController handles admin and public compilation endpoints.
type CompilationController struct {
	Logger  *slog.Logger
	Service domain.CompilationService
}

func NewCompilationController(logger *slog.Logger, svc domain.CompilationService) *CompilationController {
	return &CompilationController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateCompilation godoc
// @Summary Create a compilation
// @Tags admin: compilations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body NewCompilationRequest true "Compilation"
// @Success 201 {object} controllers.CompilationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate title)"
// @Router /admin/compilations [post]
func (c *CompilationController) CreateCompilation(w http.ResponseWriter, r *http.Request) {
	var req NewCompilationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comp, err := c.Service.Create(r.Context(), domain.NewCompilationInput{
		Title:    req.Title,
		Pinned:   req.Pinned,
		EventIDs: req.Events,
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, toCompilationDto(comp))
}

// UpdateCompilation godoc
// @Summary Update a compilation
// @Tags admin: compilations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param compId path int true "Compilation id"
// @Param body body UpdateCompilationRequest true "Fields to change"
// @Success 200 {object} controllers.CompilationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/compilations/{compId} [patch]
func (c *CompilationController) UpdateCompilation(w http.ResponseWriter, r *http.Request) {
	compID, err := helpers.PathID(r, "compId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	var req UpdateCompilationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comp, err := c.Service.Update(r.Context(), compID, req.toPatch())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toCompilationDto(comp))
}

// DeleteCompilation godoc
// @Summary Delete a compilation
// @Tags admin: compilations
// @Security BearerAuth
// @Param compId path int true "Compilation id"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/compilations/{compId} [delete]
func (c *CompilationController) DeleteCompilation(w http.ResponseWriter, r *http.Request) {
	compID, err := helpers.PathID(r, "compId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.Delete(r.Context(), compID); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCompilations godoc
// @Summary List compilations
// @Tags public: compilations
// @Produce json
// @Param pinned query bool false "Pinned only / unpinned only"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} controllers.ListCompilationsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /compilations [get]
func (c *CompilationController) ListCompilations(w http.ResponseWriter, r *http.Request) {
	pinned, err := helpers.QueryBool(r, "pinned")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	comps, err := c.Service.List(r.Context(), pinned, page)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	out := make([]CompilationDto, len(comps))
	for i, comp := range comps {
		out[i] = toCompilationDto(comp)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}

// GetCompilation godoc
// @Summary Get a compilation
// @Tags public: compilations
// @Produce json
// @Param compId path int true "Compilation id"
// @Success 200 {object} controllers.CompilationSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /compilations/{compId} [get]
func (c *CompilationController) GetCompilation(w http.ResponseWriter, r *http.Request) {
	compID, err := helpers.PathID(r, "compId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	comp, err := c.Service.GetByID(r.Context(), compID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toCompilationDto(comp))
}
