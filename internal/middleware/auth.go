package middleware

import (
	"crypto/subtle"
	"strings"

	"insight-srv/pkg/response"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

func bearerToken(header string) string {
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	return strings.TrimSpace(header)
}

// Auth verifies the JWT from the Authorization header, falling back to the auth cookie,
// and stores the caller scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			cookie, err := c.Cookie(m.cookieConfig.Name)
			if err != nil || cookie == "" {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			tokenString = cookie
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := scope.NewScope(payload)
		if sc.UserID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = scope.SetScopeToContext(ctx, sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// InternalAuth accepts requests whose Authorization header carries the internal key.
// If internalKey is empty, all requests are rejected with 401.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bearerToken(c.GetHeader("Authorization"))
		if m.internalKey == "" || key == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
