package controllers

import (
	"log/slog"
	"net/http"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// NewCommentRequest is the request body for POST /users/{userId}/events/{eventId}/comments.
type NewCommentRequest struct {
	Text          string `json:"text"`
	ParentComment *int64 `json:"parentComment"`
}

// Validate implements Validator.
func (n NewCommentRequest) Validate() []string {
	errs := helpers.CheckLength(nil, "text", &n.Text, 1, 1000, true)
	if n.ParentComment != nil && *n.ParentComment < 1 {
		errs = append(errs, "Field: parentComment. Error: must be a positive number")
	}
	return errs
}

// UpdateCommentRequest is the request body for PATCH /users/{userId}/comments/{commentId}.
type UpdateCommentRequest struct {
	Text string `json:"text"`
}

// Validate implements Validator.
func (u UpdateCommentRequest) Validate() []string {
	return helpers.CheckLength(nil, "text", &u.Text, 1, 1000, true)
}

// CommentSuccessResponse is the success response envelope for a single comment.
type CommentSuccessResponse struct {
	Data  CommentDto        `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListCommentsSuccessResponse is the success response envelope for comment lists.
type ListCommentsSuccessResponse struct {
	Data  []CommentDto      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CommentController handles event comments.
type CommentController struct {
	Logger  *slog.Logger
	Service domain.CommentService
}

func NewCommentController(logger *slog.Logger, svc domain.CommentService) *CommentController {
	return &CommentController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateComment godoc
// @Summary Comment on a published event
// @Description A reply (parentComment set) may only be posted by the event initiator.
// @Tags private: comments
// @Accept json
// @Produce json
// @Param userId path int true "Author id"
// @Param eventId path int true "Event id"
// @Param body body NewCommentRequest true "Comment"
// @Success 201 {object} controllers.CommentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /users/{userId}/events/{eventId}/comments [post]
func (c *CommentController) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	var req NewCommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comment, err := c.Service.Create(r.Context(), userID, eventID, domain.NewCommentInput{
		Text:     req.Text,
		ParentID: req.ParentComment,
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, toCommentDto(comment))
}

// UpdateComment godoc
// @Summary Edit one's own comment
// @Tags private: comments
// @Accept json
// @Produce json
// @Param userId path int true "Author id"
// @Param commentId path int true "Comment id"
// @Param body body UpdateCommentRequest true "New text"
// @Success 200 {object} controllers.CommentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not the author)"
// @Router /users/{userId}/comments/{commentId} [patch]
func (c *CommentController) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, commentID, ok := c.userAndComment(w, r)
	if !ok {
		return
	}
	var req UpdateCommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comment, err := c.Service.Update(r.Context(), userID, commentID, req.Text)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toCommentDto(comment))
}

// DeleteComment godoc
// @Summary Delete one's own comment
// @Tags private: comments
// @Param userId path int true "Author id"
// @Param commentId path int true "Comment id"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not the author)"
// @Router /users/{userId}/comments/{commentId} [delete]
func (c *CommentController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, commentID, ok := c.userAndComment(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), userID, commentID); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SearchComments godoc
// @Summary Search comments by text
// @Tags admin: comments
// @Produce json
// @Security BearerAuth
// @Param text query string false "Case-insensitive substring"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} controllers.ListCommentsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/comments [get]
func (c *CommentController) SearchComments(w http.ResponseWriter, r *http.Request) {
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	comments, err := c.Service.Search(r.Context(), r.URL.Query().Get("text"), page)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toCommentDtos(comments))
}

// GetCommentAdmin godoc
// @Summary Get a comment
// @Tags admin: comments
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "Comment id"
// @Success 200 {object} controllers.CommentSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/comments/{commentId} [get]
func (c *CommentController) GetCommentAdmin(w http.ResponseWriter, r *http.Request) {
	commentID, err := helpers.PathID(r, "commentId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	comment, err := c.Service.GetByID(r.Context(), commentID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toCommentDto(comment))
}

// DeleteCommentAdmin godoc
// @Summary Delete any comment
// @Tags admin: comments
// @Security BearerAuth
// @Param commentId path int true "Comment id"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/comments/{commentId} [delete]
func (c *CommentController) DeleteCommentAdmin(w http.ResponseWriter, r *http.Request) {
	commentID, err := helpers.PathID(r, "commentId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.DeleteByAdmin(r.Context(), commentID); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListEventComments godoc
// @Summary List the comments of a published event
// @Description Top-level comments are paged; each carries its replies.
// @Tags public: comments
// @Produce json
// @Param eventId path int true "Event id"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} controllers.ListCommentsSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventId}/comments [get]
func (c *CommentController) ListEventComments(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	comments, err := c.Service.ListByEvent(r.Context(), eventID, page)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toCommentDtos(comments))
}

func (c *CommentController) userAndComment(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return 0, 0, false
	}
	commentID, err := helpers.PathID(r, "commentId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return 0, 0, false
	}
	return userID, commentID, true
}
