package model

import "time"

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleHR         Role = "HR"
	RoleManager    Role = "MANAGER"
	RoleEmployee   Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Privileged reports whether the role may read other users' attendance.
func (r Role) Privileged() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleHR, RoleManager:
		return true
	}
	return false
}

// RoleAllowed reports whether role satisfies the required set.
// SUPERADMIN satisfies any requirement; no other role inherits anything.
func RoleAllowed(role Role, required ...Role) bool {
	if role == RoleSuperAdmin {
		return true
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	Role           Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
