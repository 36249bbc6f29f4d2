package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried by every issued token.
type Claims struct {
	UserID int64
	Role   string
}

// NewToken signs an HS256 token with uid and role claims. A zero ttl
// issues a token without expiry.
func NewToken(userID int64, role, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"uid":  userID,
		"role": role,
	}
	if ttl > 0 {
		claims["exp"] = time.Now().Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature (and expiry, when present) and
// extracts the claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	uid, ok := mapClaims["uid"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: int64(uid), Role: role}, nil
}
