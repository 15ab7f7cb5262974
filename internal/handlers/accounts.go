package handlers

import (
	"net/http"

	"lecturer-claims/internal/database"
	"lecturer-claims/internal/models"

	"github.com/gin-gonic/gin"
)

type accountRow struct {
	FirstName string
	LastName  string
	Email     string
	Role      string
}

// ListAccounts is the HR directory: every user with their primary role.
func ListAccounts(c *gin.Context) {
	var users []models.User
	if err := database.DB.Preload("Roles").Order("email asc").Find(&users).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to load accounts")
		return
	}

	rows := make([]accountRow, 0, len(users))
	for i := range users {
		u := &users[i]
		rows = append(rows, accountRow{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.PrimaryRole(),
		})
	}

	render(c, http.StatusOK, "accounts_list.html", gin.H{
		"accounts": rows,
	})
}
