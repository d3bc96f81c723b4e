package middleware

import (
	"strings"

	"propulse-backend/helper"
	"propulse-backend/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie login sets. The middleware accepts either
// that cookie or a bearer token.
const SessionCookie = "propulse_session"

var HTTPHelper = &helper.HTTPHelper{}

func AuthMiddleware(tokens *identity.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString, _ = c.Cookie(SessionCookie)
		}
		if tokenString == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authentication required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid session token", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid session token", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("username", claims.Username)
		c.Set("roles", claims.Roles)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}

// CurrentUserID reads the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
