package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/pathparam"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// MaxPictureSize is the upload ceiling for profile pictures (~45MB).
const MaxPictureSize = 45 * 1024 * 1024

// UserHandler handles HTTP requests for the user domain.
// Stateless; holds only dependencies.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyInUse) {
			response.Conflict(c, fmt.Sprintf("Email: %s is already in use.", req.Email))
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// Login handles POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id := pathparam.Int(c, "id")

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, fmt.Sprintf("User with id: %d not found.", id))
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateProfile handles PUT /users/:id (self only, enforced by middleware)
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dto, err := h.service.UpdateProfile(c.Request.Context(), pathparam.Int(c, "id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UploadPicture handles POST /users/:id/picture (self only, enforced by
// middleware). Multipart field "image", stored externally, referenced by
// public URL on the user record.
func (h *UserHandler) UploadPicture(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > MaxPictureSize {
		response.BadRequest(c, "image exceeds the 45MB size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxPictureSize))
	if err != nil {
		h.handleError(c, err)
		return
	}

	url, err := h.service.UpdatePicture(c.Request.Context(), pathparam.Int(c, "id"), data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user.PictureResponse{PictureURL: url})
}

// handleError maps domain errors to HTTP responses.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	// 400 Bad Request - itemized validation failures
	case errors.As(err, &validationErrs):
		response.ValidationFailed(c, validationErrs)

	// 401 - unknown email (the original answers wrong email with a 401)
	case errors.Is(err, user.ErrWrongEmail):
		response.Unauthorized(c, err.Error())

	// 400 - known email, wrong password
	case errors.Is(err, user.ErrWrongPassword):
		response.BadRequest(c, err.Error())

	// 400 - upload that does not decode as an image
	case errors.Is(err, user.ErrInvalidPicture):
		response.BadRequest(c, err.Error())

	// 404
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "User not found.")

	// 400 duplicate email (conflict kind)
	case errors.Is(err, user.ErrEmailAlreadyInUse):
		response.Conflict(c, "Email is already in use.")

	// 500 - details logged, never echoed
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "Server error, try later.")
	}
}
