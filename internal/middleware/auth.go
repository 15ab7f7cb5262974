package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		userID := sess.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole passes when the session's role set intersects the allowed
// set. Roles live in the session as a comma-joined string.
func RequireRole(roles ...string) gin.HandlerFunc {
	roleSet := map[string]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sess := sessions.Default(c)
		rolesVal := sess.Get("roles")
		rolesStr, ok := rolesVal.(string)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		for _, r := range strings.Split(rolesStr, ",") {
			if _, ok := roleSet[r]; ok {
				c.Next()
				return
			}
		}

		c.String(http.StatusForbidden, "access denied")
		c.Abort()
	}
}
