package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

// ContextTokenKey is the gin context key storing the accepted token.
const ContextTokenKey = "authToken"

type tokenSource interface {
	Token(ctx context.Context) string
}

// Gate admits requests that carry a bearer token or, failing that, when a
// token is stored for the session. The token itself is not verified.
func Gate(tokens tokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
				c.Abort()
				return
			}
			token = strings.TrimSpace(parts[1])
		} else if tokens != nil {
			token = tokens.Token(c.Request.Context())
		}

		if token == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Please log in to continue."))
			c.Abort()
			return
		}

		c.Set(ContextTokenKey, token)
		c.Next()
	}
}
