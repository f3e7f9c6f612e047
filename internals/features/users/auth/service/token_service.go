// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
)

// Alasan token invalid dibedakan untuk diagnostik/log;
// di level HTTP semuanya tetap 401 (lihat auth middleware).
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrNoSecret       = errors.New("JWT_SECRET belum diset")
)

// TokenClaims: hasil decode token yang sudah tervalidasi.
// Shape klaim deterministik: {id, user_type, iat, exp}.
type TokenClaims struct {
	UserID    uuid.UUID
	UserType  string // teacher | admin | student
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func jwtSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", ErrNoSecret
	}
	return secret, nil
}

// IssueToken menandatangani access token HS256 dengan expiry default config.
func IssueToken(userID uuid.UUID, userType string) (string, time.Time, error) {
	return IssueTokenWithExpiry(userID, userType, configs.JWTExpiry)
}

// IssueTokenWithExpiry: varian dengan TTL override.
func IssueTokenWithExpiry(userID uuid.UUID, userType string, ttl time.Duration) (string, time.Time, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", time.Time{}, err
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	now := time.Now().UTC()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"id":        userID.String(),
		"user_type": userType,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyToken memverifikasi signature + expiry lalu decode claims.
// Error dikembalikan spesifik (expired / malformed / signature) supaya
// caller bisa log alasannya.
func VerifyToken(tokenString string) (*TokenClaims, error) {
	secret, err := jwtSecret()
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return []byte(secret), nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) {
			switch {
			case vErr.Errors&jwt.ValidationErrorExpired != 0:
				return nil, ErrTokenExpired
			case vErr.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrTokenMalformed
			case vErr.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				return nil, ErrTokenSignature
			}
		}
		return nil, ErrTokenMalformed
	}

	idStr, _ := claims["id"].(string)
	userType, _ := claims["user_type"].(string)

	userID, err := uuid.Parse(idStr)
	if err != nil || userType == "" {
		return nil, ErrTokenMalformed
	}

	out := &TokenClaims{UserID: userID, UserType: userType}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}
