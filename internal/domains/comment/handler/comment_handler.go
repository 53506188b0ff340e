package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/pathparam"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// CommentHandler handles HTTP requests for post comments.
type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /blogs/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authorization required.")
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), pathparam.Int(c, "id"), user.ID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, created)
}

// ListByPost handles GET /blogs/:id/comments
func (h *CommentHandler) ListByPost(c *gin.Context) {
	comments, err := h.service.ListByPost(c.Request.Context(), pathparam.Int(c, "id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// Update handles PUT /blogs/:id/comments/:commentId
// (comment author or post author, enforced by middleware)
func (h *CommentHandler) Update(c *gin.Context) {
	var req comment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), pathparam.Int(c, "commentId"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /blogs/:id/comments/:commentId
// (comment author or post author, enforced by middleware)
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), pathparam.Int(c, "commentId")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Deleted successfull"})
}

// handleError maps domain errors to HTTP responses.
func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.As(err, &validationErrs):
		response.ValidationFailed(c, validationErrs)

	case errors.Is(err, comment.ErrCommentNotFound):
		response.NotFound(c, "Comment not found.")

	default:
		logger.Error("comment handler error", err)
		response.InternalServerError(c, "Server error, try later.")
	}
}
