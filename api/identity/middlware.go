package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-tilt/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserClaims is the key used to store token claims in the Gin context.
	ContextUserClaims = "userClaims"

	// TokenQueryParam carries the token for clients that cannot set headers,
	// such as browser WebSocket connections.
	TokenQueryParam = "token"
)

func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Validate the token using the barrier service.
		claims, err := ts.Decode(token)
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// bearerToken reads the token from the Authorization header, falling back to
// the token query parameter when no header is sent.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		token := c.Query(TokenQueryParam)
		return token, token != ""
	}

	// Split the "Bearer" prefix from the token.
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Claims returns the token claims stored by Authoriz.
func Claims(c *gin.Context) (map[string]interface{}, bool) {
	raw, ok := c.Get(ContextUserClaims)
	if !ok {
		return nil, false
	}
	claims, ok := raw.(map[string]interface{})
	return claims, ok
}
