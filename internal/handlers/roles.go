package handlers

import (
	"net/http"
	"strings"

	"lecturer-claims/internal/database"
	"lecturer-claims/internal/models"

	"github.com/gin-gonic/gin"
)

func ListRoles(c *gin.Context) {
	var roles []models.Role
	database.DB.Order("name asc").Find(&roles)

	render(c, http.StatusOK, "roles_list.html", gin.H{
		"roles": roles,
	})
}

func ShowNewRole(c *gin.Context) {
	render(c, http.StatusOK, "roles_new.html", gin.H{"error": ""})
}

// CreateRole is idempotent: an existing name is not an error, matching
// the startup seeding behaviour.
func CreateRole(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		render(c, http.StatusBadRequest, "roles_new.html", gin.H{"error": "Role name is required"})
		return
	}

	var count int64
	database.DB.Model(&models.Role{}).Where("name = ?", name).Count(&count)
	if count == 0 {
		if err := database.DB.Create(&models.Role{Name: name}).Error; err != nil {
			render(c, http.StatusInternalServerError, "roles_new.html", gin.H{"error": "Failed to save role"})
			return
		}
	}

	c.Redirect(http.StatusFound, "/roles")
}
