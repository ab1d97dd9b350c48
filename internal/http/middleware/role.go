package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRoles only lets callers with one of allowedRoles through.
// It must run after AdminAuth.
//
//	r.POST("/seed", RequireRoles("admin"), handler)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok || caller.Role == "" {
			abortUnauthorized(c, "no role on request")
			return
		}

		if _, ok := allowed[strings.ToLower(strings.TrimSpace(caller.Role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "role not allowed",
				"code":       "forbidden",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
