package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/model"
	"taskboard-api/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the caller. A Bearer token yields a user scope; Basic
// credentials matching the API token yield the application scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		header := c.GetHeader("Authorization")

		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			payload, err := m.jwtManager.Verify(strings.TrimSpace(token))
			if err != nil {
				m.l.Warnf(ctx, "middleware.Auth: %v", err)
				response.Unauthorized(c)
				c.Abort()
				return
			}
			c.Set(scopeKey, model.Scope{UserID: payload.UserID, Username: payload.Username, Role: payload.Role})
			c.Next()
			return
		}

		if user, pass, ok := c.Request.BasicAuth(); ok && m.apiToken != "" {
			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(m.apiUser)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(m.apiToken)) == 1
			if userOK && passOK {
				c.Set(scopeKey, model.Scope{Username: m.apiUser})
				c.Next()
				return
			}
			m.l.Warnf(ctx, "middleware.Auth: bad api credentials for %q", user)
		}

		response.Unauthorized(c)
		c.Abort()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
