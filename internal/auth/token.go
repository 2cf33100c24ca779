package auth

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/models"
)

// Claims is the bearer-token payload: just enough identity for the API
// to authorize a request without a user lookup.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

// Generate signs an HS256 token for the user with the given lifespan.
func Generate(secret []byte, lifespan time.Duration, user *models.User) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(lifespan).Unix(),
			IssuedAt:  now.Unix(),
		},
	})
	return t.SignedString(secret)
}

// Parse verifies the token signature and expiry and returns its claims.
// All failures collapse into a uniform auth error; callers never learn
// whether a token was malformed, forged, or merely expired.
func Parse(secret []byte, token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, &apperrors.AuthError{Msg: "Invalid or expired token"}
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, &apperrors.AuthError{Msg: "Invalid or expired token"}
	}
	return claims, nil
}
