package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
)

func TestIssueAndVerifyToken(t *testing.T) {
	configs.JWTSecret = "test-secret-rahasia"

	userID := uuid.New()
	token, expiresAt, err := IssueTokenWithExpiry(userID, "teacher", time.Hour)
	if err != nil {
		t.Fatalf("IssueTokenWithExpiry error: %v", err)
	}
	if token == "" {
		t.Fatal("token kosong")
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.UserType != "teacher" {
		t.Errorf("UserType = %q, want %q", claims.UserType, "teacher")
	}
	if claims.ExpiresAt.Unix() != expiresAt.Unix() {
		t.Errorf("ExpiresAt = %v, want %v", claims.ExpiresAt.Unix(), expiresAt.Unix())
	}
	if claims.IssuedAt.IsZero() {
		t.Error("IssuedAt tidak terisi")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	configs.JWTSecret = "test-secret-rahasia"

	// exp dipatok di masa lalu — deterministik, tidak tergantung sleep
	token := mintToken(t, uuid.New(), "admin", time.Now().Add(-time.Hour))

	if _, err := VerifyToken(token); err != ErrTokenExpired {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

// mintToken menandatangani token dengan exp bebas (termasuk masa lalu)
func mintToken(t *testing.T, userID uuid.UUID, userType string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":        userID.String(),
		"user_type": userType,
		"iat":       expiresAt.Add(-time.Hour).Unix(),
		"exp":       expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifyTokenMalformed(t *testing.T) {
	configs.JWTSecret = "test-secret-rahasia"

	for _, bad := range []string{"", "bukan-token", "a.b", "x.y.z"} {
		if _, err := VerifyToken(bad); err != ErrTokenMalformed {
			t.Errorf("VerifyToken(%q) err = %v, want ErrTokenMalformed", bad, err)
		}
	}
}

func TestVerifyTokenWrongSignature(t *testing.T) {
	configs.JWTSecret = "secret-pertama"
	token, _, err := IssueTokenWithExpiry(uuid.New(), "student", time.Hour)
	if err != nil {
		t.Fatalf("IssueTokenWithExpiry error: %v", err)
	}

	// Token lama diverifikasi dengan secret baru → signature mismatch
	configs.JWTSecret = "secret-kedua"
	if _, err := VerifyToken(token); err != ErrTokenSignature {
		t.Errorf("err = %v, want ErrTokenSignature", err)
	}
}

func TestIssueTokenNoSecret(t *testing.T) {
	configs.JWTSecret = ""
	if _, _, err := IssueToken(uuid.New(), "teacher"); err != ErrNoSecret {
		t.Errorf("err = %v, want ErrNoSecret", err)
	}
	if _, err := VerifyToken("whatever"); err != ErrNoSecret {
		t.Errorf("VerifyToken err = %v, want ErrNoSecret", err)
	}
}
