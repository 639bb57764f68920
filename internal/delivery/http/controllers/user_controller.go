package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NewUserRequest is the request body for POST /admin/users.
type NewUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate implements Validator.
func (u NewUserRequest) Validate() []string {
	errs := helpers.CheckLength(nil, "name", &u.Name, 2, 250, true)
	errs = helpers.CheckLength(errs, "email", &u.Email, 6, 254, true)
	if email := strings.TrimSpace(u.Email); email != "" && !emailRegexp.MatchString(email) {
		errs = append(errs, "Field: email. Error: must be a well-formed email address. Value: "+u.Email)
	}
	return errs
}

// UserSuccessResponse is the success response envelope for POST /admin/users (201).
type UserSuccessResponse struct {
	Data  UserDto           `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListUsersSuccessResponse is the success response envelope for GET /admin/users (200).
type ListUsersSuccessResponse struct {
	Data  []UserDto         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UserController handles the admin user endpoints.
type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

// NewUserController creates a UserController with the given logger and service.
func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateUser godoc
// @Summary Register a user
// @Tags admin: users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body NewUserRequest true "User data"
// @Success 201 {object} controllers.UserSuccessResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email in use)"
// @Router /admin/users [post]
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req NewUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, toUserDto(user))
}

// ListUsers godoc
// @Summary List users
// @Description Returns users with the given ids, or a page of all users when ids is omitted.
// @Tags admin: users
// @Produce json
// @Security BearerAuth
// @Param ids query []int false "User ids" collectionFormat(csv)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} controllers.ListUsersSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/users [get]
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ids, err := helpers.QueryInt64s(r, "ids")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	users, err := c.Service.List(r.Context(), ids, page)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	out := make([]UserDto, len(users))
	for i, u := range users {
		out[i] = toUserDto(u)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin: users
// @Security BearerAuth
// @Param userId path int true "User id"
// @Success 204 "deleted"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/users/{userId} [delete]
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "userId")
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
