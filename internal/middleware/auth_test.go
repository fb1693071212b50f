package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack-be/internal/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(svc *jwt.JWTService) *gin.Engine {
	router := gin.New()
	router.GET("/whoami", AuthMiddleware(svc), func(c *gin.Context) {
		email, _ := AuthenticatedEmail(c)
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID), "email": email})
	})
	return router
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	svc := jwt.NewJWTService("secret", "fittrack", time.Hour)
	token, err := svc.GenerateToken("user-1", "a@b.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	newProtectedRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"user_id":"user-1","email":"a@b.com"}`, rr.Body.String())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	svc := jwt.NewJWTService("secret", "fittrack", time.Hour)
	other, err := jwt.NewJWTService("other-secret", "fittrack", time.Hour).GenerateToken("user-1", "a@b.com")
	require.NoError(t, err)

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{name: "missing header", header: "", message: "Authorization token required"},
		{name: "wrong scheme", header: "Basic abc", message: "Invalid or expired token"},
		{name: "empty bearer", header: "Bearer   ", message: "Authorization token required"},
		{name: "foreign signature", header: "Bearer " + other, message: "Invalid or expired token"},
		{name: "garbage", header: "Bearer not.a.jwt", message: "Invalid or expired token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			newProtectedRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"success":false,"message":"`+tc.message+`"}`, rr.Body.String())
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS("http://localhost:5173"))
	router.POST("/signup", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/signup", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRequestLoggerEchoesRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "req-123", rr.Header().Get(RequestIDHeader))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, rr.Header().Get(RequestIDHeader), 36)
}
