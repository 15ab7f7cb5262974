package handlers

import (
	"net/http"
	"strings"

	"lecturer-claims/internal/database"
	"lecturer-claims/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

type registerForm struct {
	Email     string `form:"email"`
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Password  string `form:"password"`
}

// Register creates a lecturer account. Staff roles (Co-ordinator,
// Manager, HR) are seeded or assigned by HR, never self-selected.
func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid form data"})
		return
	}

	form.Email = strings.TrimSpace(form.Email)
	if len(form.Email) < 5 || !strings.Contains(form.Email, "@") {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid email address"})
		return
	}
	if len(form.Password) < 6 {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", form.Email).First(&existing).Error; err == nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "User already exists"})
		return
	}

	var lecturerRole models.Role
	if err := database.DB.Where("name = ?", models.RoleLecturer).First(&lecturerRole).Error; err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Failed to load lecturer role"})
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	user := models.User{
		Email:        form.Email,
		FirstName:    strings.TrimSpace(form.FirstName),
		LastName:     strings.TrimSpace(form.LastName),
		PasswordHash: string(hash),
		Roles:        []models.Role{lecturerRole},
	}
	if err := database.DB.Create(&user).Error; err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Failed to save user"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data"})
		return
	}

	var user models.User
	if err := database.DB.Preload("Roles").
		Where("email = ?", strings.TrimSpace(form.Email)).
		First(&user).Error; err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Wrong email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Wrong email or password"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("roles", strings.Join(user.RoleNames(), ","))
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/claims/track")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
