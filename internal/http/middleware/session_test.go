package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, claims sessionClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseSessionValidToken(t *testing.T) {
	const secret = "test-secret"
	raw := signTestToken(t, secret, sessionClaims{
		AgencyID: 42,
		Branch:   "Surabaya",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	sc := parseSession("Bearer "+raw, secret)
	if sc.Anonymous() {
		t.Fatalf("valid token harus menghasilkan session, got %+v", sc)
	}
	if sc.AgencyID != 42 || sc.Branch != "Surabaya" || sc.Role != "admin" || sc.UserID != 7 {
		t.Fatalf("claims tidak terbaca: %+v", sc)
	}
}

func TestParseSessionBadTokenIsAnonymous(t *testing.T) {
	if sc := parseSession("Bearer garbage", "secret"); !sc.Anonymous() {
		t.Fatalf("token rusak harus anonim, got %+v", sc)
	}
	if sc := parseSession("", "secret"); !sc.Anonymous() {
		t.Fatalf("tanpa header harus anonim")
	}
}

func TestParseSessionExpiredToken(t *testing.T) {
	const secret = "test-secret"
	raw := signTestToken(t, secret, sessionClaims{
		AgencyID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	if sc := parseSession("Bearer "+raw, secret); !sc.Anonymous() {
		t.Fatalf("token kedaluwarsa harus anonim, got %+v", sc)
	}
}

func TestParseSessionWrongSecret(t *testing.T) {
	raw := signTestToken(t, "secret-a", sessionClaims{AgencyID: 1,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}})
	if sc := parseSession("Bearer "+raw, "secret-b"); !sc.Anonymous() {
		t.Fatalf("signature salah harus anonim")
	}
}
