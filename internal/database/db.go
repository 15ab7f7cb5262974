package database

import (
	"log"
	"os"
	"time"

	"lecturer-claims/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	err = DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Claim{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	SeedRoles(DB)
	seedDefaultUsers()
}

// SeedRoles makes sure the four permission groups exist. Safe to call on
// every start; existing roles are left alone and never deleted.
func SeedRoles(db *gorm.DB) {
	roles := []string{
		models.RoleLecturer,
		models.RoleCoordinator,
		models.RoleManager,
		models.RoleHR,
	}

	for _, name := range roles {
		var count int64
		if err := db.Model(&models.Role{}).
			Where("name = ?", name).
			Count(&count).Error; err != nil {
			log.Printf("failed to check role %s: %v", name, err)
			continue
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&models.Role{Name: name}).Error; err != nil {
			log.Printf("failed to create role %s: %v", name, err)
			continue
		}

		log.Printf("seeded role: %s", name)
	}
}

// demo accounts so reviewers exist on a fresh install
func seedDefaultUsers() {
	type seedUser struct {
		Email     string
		FirstName string
		LastName  string
		Password  string
		Role      string
	}

	managerEmail := os.Getenv("MANAGER_EMAIL")
	if managerEmail == "" {
		managerEmail = "manager@cmcs.local"
	}
	managerPassword := os.Getenv("MANAGER_PASSWORD")
	if managerPassword == "" {
		managerPassword = "Manager123!"
	}

	users := []seedUser{
		{
			Email:     managerEmail,
			FirstName: "Default",
			LastName:  "Manager",
			Password:  managerPassword,
			Role:      models.RoleManager,
		},
		{
			Email:     "coordinator@cmcs.local",
			FirstName: "Default",
			LastName:  "Co-ordinator",
			Password:  "Coord123!",
			Role:      models.RoleCoordinator,
		},
		{
			Email:     "hr@cmcs.local",
			FirstName: "Default",
			LastName:  "HR",
			Password:  "Hr123456!",
			Role:      models.RoleHR,
		},
	}

	for _, u := range users {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("email = ?", u.Email).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", u.Email, err)
			continue
		}
		if count > 0 {
			continue
		}

		var role models.Role
		if err := DB.Where("name = ?", u.Role).First(&role).Error; err != nil {
			log.Printf("failed to load role %s: %v", u.Role, err)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", u.Email, err)
			continue
		}

		user := models.User{
			Email:        u.Email,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			PasswordHash: string(hash),
			Roles:        []models.Role{role},
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Email, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s)", u.Email, u.Role)
	}
}
