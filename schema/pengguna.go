package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	PenggunaTable = "pengguna"

	RolePengguna = "pengguna"
	RoleAdmin    = "admin"
)

// Pengguna is a registered account. Accounts created through Google
// sign-in have no password hash.
type Pengguna struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Username          string     `json:"username" gorm:"type:varchar(50);unique_index;not null"`
	Email             string     `json:"email" gorm:"type:varchar(255);unique_index;not null"`
	PasswordHash      *string    `json:"-" gorm:"type:varchar(255)"`
	GoogleID          *string    `json:"-" gorm:"type:varchar(255);unique_index"`
	Role              string     `json:"role" gorm:"type:varchar(20);not null;default:'pengguna'"`
	IsActive          bool       `json:"is_active" gorm:"not null;default:true"`
	CreatedAt         time.Time  `json:"created_at"`
	ResetToken        *string    `json:"-" gorm:"type:varchar(255);unique_index"`
	ResetTokenExpires *time.Time `json:"-"`
}

func (Pengguna) TableName() string {
	return PenggunaTable
}

func (p Pengguna) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasPassword is false for accounts which only sign in with Google
func (p Pengguna) HasPassword() bool {
	return p.PasswordHash != nil && *p.PasswordHash != ""
}
