package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
)

type SocialController struct {
	Logger  *slog.Logger
	Service domain.SocialService
}

func NewSocialController(logger *slog.Logger, svc domain.SocialService) *SocialController {
	return &SocialController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateCommentRequest is the request body for POST /social/comments.
type CreateCommentRequest struct {
	EventID int64  `json:"event_id"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Validate implements helpers.Validator.
func (r *CreateCommentRequest) Validate() []string {
	var errs []string
	if r.EventID <= 0 {
		errs = append(errs, "event_id is required")
	}
	if strings.TrimSpace(r.Content) == "" {
		errs = append(errs, "content is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, "rating must be between 1 and 5")
	}
	return errs
}

// CreateComment godoc
// @Summary Comment on an event
// @Tags social
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateCommentRequest true "Comment"
// @Success 201 {object} helpers.APIResponse "data is the comment with author fields"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /social/comments [post]
func (c *SocialController) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	comment, err := c.Service.CreateComment(r.Context(), userID, req.EventID, req.Content, req.Rating)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, comment)
}

// CommentListResponse is the data payload for GET /social/events/{eventID}/comments.
type CommentListResponse struct {
	Comments   []*domain.CommentWithAuthor `json:"comments"`
	Pagination helpers.PaginationMeta      `json:"pagination"`
}

// ListEventComments godoc
// @Summary List comments on an event
// @Tags social
// @Produce json
// @Param eventID path int true "Event ID"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains comments and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /social/events/{eventID}/comments [get]
func (c *SocialController) ListEventComments(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseIDParam(r, "eventID")
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return
	}

	params := helpers.ParsePagination(r)
	comments, total, err := c.Service.ListEventComments(r.Context(), eventID, params)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CommentListResponse{
		Comments:   comments,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// ShareEventRequest is the request body for POST /social/share.
type ShareEventRequest struct {
	EventID   int64   `json:"event_id"`
	ShareType string  `json:"share_type"`
	Recipient *string `json:"recipient"`
}

// Validate implements helpers.Validator.
func (r *ShareEventRequest) Validate() []string {
	var errs []string
	if r.EventID <= 0 {
		errs = append(errs, "event_id is required")
	}
	if r.ShareType != domain.ShareTypeSocialMedia && r.ShareType != domain.ShareTypeEmail {
		errs = append(errs, "share_type must be social_media or email")
	}
	return errs
}

// ShareEvent godoc
// @Summary Log that an event was shared
// @Tags social
// @Accept json
// @Produce json
// @Param body body controllers.ShareEventRequest true "Share"
// @Success 201 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /social/share [post]
func (c *SocialController) ShareEvent(w http.ResponseWriter, r *http.Request) {
	var req ShareEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	if _, err := c.Service.LogEventShare(r.Context(), req.EventID, req.ShareType, req.Recipient); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, map[string]string{"message": "Event share logged successfully"})
}

func (c *SocialController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
