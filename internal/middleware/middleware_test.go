package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosnMagar/RateMyClass/internal/app/models"
	"github.com/rosnMagar/RateMyClass/internal/pkg/apperrors"
	"github.com/rosnMagar/RateMyClass/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(m *AuthMiddleware) *gin.Engine {
	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(m.JWTAuth(), m.RoleRequired(string(models.RoleAdmin)))
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(ContextRole)})
	})
	return router
}

func adminToken(t *testing.T, svc *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, _, err := svc.GenerateToken(&models.User{ID: 1, Username: "courseadmin", Role: role})
	require.NoError(t, err)
	return token
}

func TestJWTAuthMissingHeader(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour})
	router := newTestRouter(NewAuthMiddleware(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"authentication required"}`, w.Body.String())
}

func TestJWTAuthInvalidToken(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour})
	router := newTestRouter(NewAuthMiddleware(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"invalid token"}`, w.Body.String())
}

func TestJWTAuthExpiredToken(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: -time.Minute})
	router := newTestRouter(NewAuthMiddleware(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, svc, models.RoleAdmin))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"token expired"}`, w.Body.String())
}

func TestRoleRequiredRejectsNonAdmin(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour})
	router := newTestRouter(NewAuthMiddleware(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, svc, models.RoleUser))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"detail":"admin access required"}`, w.Body.String())
}

func TestJWTAuthAllowsAdmin(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour})
	router := newTestRouter(NewAuthMiddleware(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, svc, models.RoleAdmin))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"admin"}`, w.Body.String())
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantDetail string
	}{
		{apperrors.ErrSchoolNotFound, http.StatusNotFound, "school not found"},
		{apperrors.ErrCourseNotFound, http.StatusNotFound, "course not found"},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect username or password"},
		{apperrors.ErrPermissionDenied, http.StatusForbidden, "admin access required"},
		{apperrors.NewBadRequestError("rating must be between 1 and 5"), http.StatusBadRequest, "rating must be between 1 and 5"},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.wantDetail, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, tc.wantDetail), w.Body.String())
		})
	}
}
