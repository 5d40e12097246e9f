package auth

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller information extracted from a validated token.
type Identity struct {
	UserID int64
	Email  string
}

// TokenService validates JWTs issued by the users service. It never
// generates tokens, only verifies them and extracts claims.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the shared HMAC secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Validate parses and verifies a token and extracts the caller identity.
// The user_id claim may arrive in different numeric widths depending on
// the issuing service, so it goes through the same soft coercion the rest
// of the system uses for ids.
func (s *TokenService) Validate(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	userID, ok := claimAsID(claims["user_id"])
	if !ok {
		return nil, fmt.Errorf("token has no usable user_id claim")
	}

	email, _ := claims["email"].(string)

	return &Identity{UserID: userID, Email: email}, nil
}

func claimAsID(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		id, err := v.Int64()
		return id, err == nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	}
	return 0, false
}
