package pathparam

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/posts/:id", Validate("id"), func(c *gin.Context) {
		c.String(http.StatusOK, fmt.Sprintf("id=%d", Int(c, "id")))
	})
	r.GET("/posts/:id/comments/:commentId", Validate("id", "commentId"), func(c *gin.Context) {
		c.String(http.StatusOK, fmt.Sprintf("id=%d commentId=%d", Int(c, "id"), Int(c, "commentId")))
	})

	return r
}

func TestValidateAcceptsPositiveInteger(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/12", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "id=12", w.Body.String())
}

func TestValidateRejectsBadValues(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name string
		path string
	}{
		{"zero", "/posts/0"},
		{"negative", "/posts/-3"},
		{"non-numeric", "/posts/abc"},
		{"decimal", "/posts/1.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "id param must be an integer greater than 0.")
		})
	}
}

func TestValidateAccumulatesViolations(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/x/comments/0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "id param must be an integer greater than 0.")
	assert.Contains(t, w.Body.String(), "commentId param must be an integer greater than 0.")
}

func TestValidateMultipleParamsOK(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/7/comments/9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "id=7 commentId=9", w.Body.String())
}
