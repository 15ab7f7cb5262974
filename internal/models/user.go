package models

import "gorm.io/gorm"

// seeded role names
const (
	RoleLecturer    = "Lecturer"
	RoleCoordinator = "Co-ordinator"
	RoleManager     = "Manager"
	RoleHR          = "HR"
)

type Role struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	PasswordHash string `gorm:"not null"`
	Roles        []Role `gorm:"many2many:user_roles;"`
}

func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// PrimaryRole is what account listings display. The relation permits
// many roles; the first assigned one wins.
func (u *User) PrimaryRole() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0].Name
}

// RoleNames is what goes into the session alongside the user id.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
