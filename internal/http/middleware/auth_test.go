package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/domyusuf/safeschooltransport/internal/auth"
	"github.com/domyusuf/safeschooltransport/internal/model"
)

func newTestRouter(t *testing.T, parser *auth.Parser) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(parser), func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "principal missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID, "role": principal.Role})
	})
	return router
}

func TestAuthAcceptsValidToken(t *testing.T) {
	secret := "test-secret"
	issuer := auth.NewIssuer(secret, time.Hour)
	parser := auth.NewParser(secret)
	router := newTestRouter(t, parser)

	token, _, err := issuer.Issue(uuid.New(), model.UserRoleParent, time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthRejectsBadRequests(t *testing.T) {
	parser := auth.NewParser("test-secret")
	router := newTestRouter(t, parser)

	otherIssuer := auth.NewIssuer("other-secret", time.Hour)
	forged, _, err := otherIssuer.Issue(uuid.New(), model.UserRoleAdmin, time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + forged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
