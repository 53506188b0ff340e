package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
)

const authUserKey = "authUser"

// AuthUser is the identity context decoded from a verified token.
// Request-scoped; never persisted.
type AuthUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Auth verifies the bearer token and attaches the decoded identity to the
// request context. Downstream reads do not re-verify.
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "Authorization required.")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			// Surface the verification failure reason when there is one.
			message := "Token invalid or expired."
			if err.Error() != "" {
				message = err.Error()
			}
			response.Unauthorized(c, message)
			c.Abort()
			return
		}

		c.Set(authUserKey, AuthUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
			Role:     claims.Role,
		})

		c.Next()
	}
}

// CurrentUser reads the identity set by Auth.
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	value, exists := c.Get(authUserKey)
	if !exists {
		return AuthUser{}, false
	}
	user, ok := value.(AuthUser)
	return user, ok
}
