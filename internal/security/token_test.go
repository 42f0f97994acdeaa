package security

import (
	"testing"
	"time"

	"social-spectrum-server/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenService(secret string, hours int) *TokenService {
	return NewTokenService(&config.Config{JWT: config.JWTConfig{Secret: secret, ExpirationHours: hours}})
}

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := newTestTokenService("test-secret", 1)

	token, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.ID != 42 || claims.Type != "session" || claims.Issuer != "social-spectrum-server" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

// Verifies a token stops verifying once its lifetime has passed.
func TestSessionToken_ExpiresAfterLifetime(t *testing.T) {
	svc := newTestTokenService("test-secret", 1)
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected token valid inside window, got %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestVerify_RejectsForeignSecret(t *testing.T) {
	token, err := newTestTokenService("secret-a", 1).Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := newTestTokenService("secret-b", 1).Verify(token); err == nil {
		t.Fatalf("expected signature error")
	}
}

// Verifies tokens with another type or without a subject are rejected.
func TestVerify_RejectsWrongTypeAndZeroID(t *testing.T) {
	secret := []byte("test-secret")
	svc := newTestTokenService(string(secret), 1)

	sign := func(claims SessionClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	wrongType := sign(SessionClaims{ID: 1, Type: "email_verify", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}})
	if _, err := svc.Verify(wrongType); err == nil {
		t.Fatalf("expected error for wrong token type")
	}
	zeroID := sign(SessionClaims{Type: "session", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}})
	if _, err := svc.Verify(zeroID); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestVerify_RejectsGarbageAndEmpty(t *testing.T) {
	svc := newTestTokenService("test-secret", 1)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); err == nil {
			t.Fatalf("expected error for %q", token)
		}
	}
}

func TestIssue_EmptySecret(t *testing.T) {
	if _, err := newTestTokenService("", 1).Issue(1); err != ErrEmptySecret {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}
