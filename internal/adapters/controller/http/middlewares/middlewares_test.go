package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/uoftclubs/clubs-backend/internal/domain/service"
)

type fakeValidator struct {
	claims *service.Claims
	err    error
}

func (v *fakeValidator) ValidateToken(string) (*service.Claims, error) {
	return v.claims, v.err
}

func runRequest(t *testing.T, validator tokenValidator, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/protected", Auth(validator), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.MustGet(ContextUserEmail),
			"id":    c.MustGet(ContextUserID),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthMissingHeader(t *testing.T) {
	rec := runRequest(t, &fakeValidator{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	rec := runRequest(t, &fakeValidator{}, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	rec := runRequest(t, &fakeValidator{err: errors.New("bad token")}, "Bearer abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthValidTokenThreadsIdentity(t *testing.T) {
	claims := &service.Claims{UserID: "user-1", Email: "a@x.com"}
	rec := runRequest(t, &fakeValidator{claims: claims}, "Bearer abc")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@x.com")
	assert.Contains(t, rec.Body.String(), "user-1")
}
