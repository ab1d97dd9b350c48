package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"colectivo/internal/domain"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// TokenVerifier turns a bearer token into a caller identity.
type TokenVerifier interface {
	Verify(token string) (domain.Caller, error)
}

// AdminAuth requires a valid dashboard bearer token.
func AdminAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		caller, err := v.Verify(strings.TrimSpace(token))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// APIKey guards the external intake integration. An empty key disables
// the route entirely rather than leaving it open.
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-API-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			abortUnauthorized(c, "invalid api key")
			return
		}
		c.Set(callerKey, domain.Caller{Role: domain.RoleIntake, Source: "api_key"})
		c.Next()
	}
}

// GetCaller returns the identity set by AdminAuth or APIKey.
func GetCaller(c *gin.Context) (domain.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return domain.Caller{}, false
	}
	caller, ok := v.(domain.Caller)
	return caller, ok
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
