package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/domyusuf/safeschooltransport/internal/model"
)

func TestIssueAndParseRoundtrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	parser := NewParser("test-secret")

	userID := uuid.New()
	token, expiresAt, err := issuer.Issue(userID, model.UserRoleDriver, time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected expiry in the future, got %v", expiresAt)
	}

	claims, err := parser.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != model.UserRoleDriver {
		t.Errorf("expected role driver, got %s", claims.Role)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-a", time.Hour)
	parser := NewParser("secret-b")

	token, _, err := issuer.Issue(uuid.New(), model.UserRoleParent, time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := parser.Parse(token); err == nil {
		t.Fatal("expected parse to fail with a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Minute)
	parser := NewParser("test-secret")

	token, _, err := issuer.Issue(uuid.New(), model.UserRoleParent, time.Now().Add(-2*time.Minute))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := parser.Parse(token); err == nil {
		t.Fatal("expected parse to fail for expired token")
	}
}
