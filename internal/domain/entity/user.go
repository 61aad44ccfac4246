package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents both customers and providers; Role tells them apart.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username    string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	FirstName   string    `gorm:"type:varchar(150)" json:"first_name"`
	LastName    string    `gorm:"type:varchar(150)" json:"last_name"`
	Role        Role      `gorm:"type:varchar(10);not null;default:'customer';index" json:"role"`
	PhoneNumber *string   `gorm:"type:varchar(15)" json:"phone_number,omitempty"`
	Address     *string   `gorm:"type:text" json:"address,omitempty"`
	IsVerified  bool      `gorm:"not null;default:false" json:"is_verified"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// FullName falls back to the username when no name was given.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}
