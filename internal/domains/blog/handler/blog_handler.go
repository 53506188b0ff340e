package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/pathparam"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// BlogHandler handles HTTP requests for posts and reactions.
type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// Create handles POST /blogs
func (h *BlogHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authorization required.")
		return
	}

	var req blog.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// List handles GET /blogs
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// GetByID handles GET /blogs/:id
func (h *BlogHandler) GetByID(c *gin.Context) {
	id := pathparam.Int(c, "id")

	post, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			response.NotFound(c, fmt.Sprintf("Post with id: %d is not found.", id))
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Update handles PUT /blogs/:id (owner only, enforced by middleware)
func (h *BlogHandler) Update(c *gin.Context) {
	var req blog.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	id := pathparam.Int(c, "id")
	post, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			response.NotFound(c, fmt.Sprintf("Post with id: %d is not found.", id))
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Delete handles DELETE /blogs/:id (owner only, enforced by middleware)
func (h *BlogHandler) Delete(c *gin.Context) {
	id := pathparam.Int(c, "id")

	post, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			response.NotFound(c, fmt.Sprintf("Post with id: %d is not found.", id))
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// ToggleReaction handles POST /blogs/:id/reaction
func (h *BlogHandler) ToggleReaction(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authorization required.")
		return
	}

	id := pathparam.Int(c, "id")
	result, err := h.service.Toggle(c.Request.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			response.NotFound(c, fmt.Sprintf("Blog with id: %d not found.", id))
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": result.Message()})
}

// handleError maps domain errors to HTTP responses.
func (h *BlogHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.As(err, &validationErrs):
		response.ValidationFailed(c, validationErrs)

	case errors.Is(err, blog.ErrBlogNotFound):
		response.NotFound(c, "Post not found.")

	default:
		logger.Error("blog handler error", err)
		response.InternalServerError(c, "Server error, try later.")
	}
}
