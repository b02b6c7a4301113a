package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/todod/internal/service"
)

// AuthHeader carries the session token on every protected request.
const AuthHeader = "x-auth"

const (
	ContextUserKey  = "user"
	ContextTokenKey = "token"
)

// TokenAuth resolves the x-auth header to a user before the handler
// runs. A missing header, a bad signature, and a token that is no
// longer in the user's session list all end the request the same way.
func TokenAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthHeader)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		user, err := auth.UserByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}
