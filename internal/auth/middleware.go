package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by the middleware.
const (
	ctxUserIDKey  = "auth.userID"
	ctxServiceKey = "auth.service"
)

// ServiceTokenHeader marks a request as service-to-service when it carries
// the shared secret.
const ServiceTokenHeader = "X-Service-Token"

// Middleware validates the caller's credentials on every request.
//
// A Bearer token is verified and its user id attached to the context; a
// malformed or expired token is rejected with 401. A request without any
// Authorization header passes through anonymous, leaving the ownership
// check to deny access. The service token header, when it matches the
// configured secret, marks the request as a service call.
func Middleware(tokens *TokenService, serviceToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if serviceToken != "" && c.GetHeader(ServiceTokenHeader) == serviceToken {
			c.Set(ctxServiceKey, true)
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		identity, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			code := "INVALID_TOKEN"
			message := "invalid authentication token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				code = "TOKEN_EXPIRED"
				message = "the authentication token has expired"
			}
			slog.Warn("Rejected authentication token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":       code,
				"message":     message,
				"status_code": http.StatusUnauthorized,
				"timestamp":   time.Now().Format(time.RFC3339),
			})
			return
		}

		c.Set(ctxUserIDKey, identity.UserID)
		slog.Debug("Authenticated request", "userID", identity.UserID)
		c.Next()
	}
}

// CallerID returns the authenticated user id, or nil for anonymous callers.
func CallerID(c *gin.Context) *int64 {
	value, exists := c.Get(ctxUserIDKey)
	if !exists {
		return nil
	}
	userID, ok := value.(int64)
	if !ok {
		return nil
	}
	return &userID
}

// IsServiceCall reports whether the request authenticated as another
// internal service rather than an end user.
func IsServiceCall(c *gin.Context) bool {
	value, exists := c.Get(ctxServiceKey)
	if !exists {
		return false
	}
	isService, _ := value.(bool)
	return isService
}
