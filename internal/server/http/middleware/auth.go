package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/accounts/internal/pkg/auth"
	"github.com/polkiloo/accounts/internal/server/http/dto"
)

const (
	// EmailContextKey is a gin context key for the authenticated account email.
	EmailContextKey = "accountEmail"
	authCookieName  = "accounts_token"
)

// TokenParser resolves a session token to the account email it was issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
// internalStatus is written when the parser fails for reasons other than an
// invalid token.
func AuthRequired(parser TokenParser, internalStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		email, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatusJSON(internalStatus, dto.AccountResponse{Status: dto.OutcomeInternalError, Message: "internal server error"})
			return
		}

		c.Set(EmailContextKey, email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.AccountResponse{Status: dto.OutcomeUnauthorized, Message: "authentication required"})
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
