// Package pathparam validates {id}-style path segments before any
// authentication or storage work happens.
package pathparam

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
)

func contextKey(name string) string {
	return "param:" + name
}

// Validate returns middleware asserting every named path segment parses as an
// integer strictly greater than 0. Violations are accumulated and reported
// together; a non-empty list aborts the request with a 400.
func Validate(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details []response.FieldError

		for _, name := range names {
			value, err := strconv.Atoi(c.Param(name))
			if err != nil || value <= 0 {
				details = append(details, response.FieldError{
					Field:   name,
					Message: fmt.Sprintf("%s param must be an integer greater than 0.", name),
				})
				continue
			}
			c.Set(contextKey(name), value)
		}

		if len(details) > 0 {
			response.ErrorWithDetails(c, 400, "VALIDATION_FAILED", "Validation failed", details)
			c.Abort()
			return
		}

		c.Next()
	}
}

// Int reads a path id previously checked by Validate.
func Int(c *gin.Context, name string) int {
	value, _ := c.Get(contextKey(name))
	id, _ := value.(int)
	return id
}
