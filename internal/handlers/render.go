package handlers

import (
	"strings"

	"lecturer-claims/internal/claims"
	"lecturer-claims/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and pushes CurrentUser into every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		switch u := uVal.(type) {
		case models.User:
			data["CurrentUser"] = u
			data["CurrentUserEmail"] = u.Email
			data["CurrentUserRole"] = u.PrimaryRole()
		case *models.User:
			data["CurrentUser"] = u
			data["CurrentUserEmail"] = u.Email
			data["CurrentUserRole"] = u.PrimaryRole()
		}
	}

	c.HTML(status, tmpl, data)
}

// currentCaller rebuilds the engine's caller identity from the session.
func currentCaller(c *gin.Context) claims.Caller {
	sess := sessions.Default(c)

	caller := claims.Caller{}
	if uid, ok := sess.Get("user_id").(uint); ok {
		caller.UserID = uid
	}
	if rolesStr, ok := sess.Get("roles").(string); ok && rolesStr != "" {
		caller.Roles = strings.Split(rolesStr, ",")
	}
	return caller
}
