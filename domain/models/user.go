package models

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// RoleIDSuffix is appended to the slugged role name to form the role id,
// e.g. "Admin" -> "adminRoleId". Deterministic so seeding stays idempotent.
const RoleIDSuffix = "RoleId"

// Identity-store records. These live in a separate database from the to-do
// data; keep that in mind before adding cross-store foreign keys.

type User struct {
	UserID         string `gorm:"primaryKey;size:450"`
	Username       string `gorm:"size:70;not null;uniqueIndex"`
	FirstName      string `gorm:"size:70"`
	LastName       string `gorm:"size:70"`
	NameIdentifier string `gorm:"size:450"`
	Email          string `gorm:"size:255;not null;uniqueIndex"`
	Password       string `gorm:"size:255"`
	Provider       string `gorm:"size:70"`
	UserRoles      []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasAnyRole() bool {
	return len(u.UserRoles) > 0
}

type Role struct {
	ID          string `gorm:"primaryKey;size:128"`
	Name        string `gorm:"size:70;not null;uniqueIndex"`
	Description string `gorm:"size:450"`
	UserRoles   []UserRole `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

func (Role) TableName() string {
	return "roles"
}

type UserRole struct {
	UserID string `gorm:"primaryKey;size:450"`
	RoleID string `gorm:"primaryKey;size:128"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// RoleID derives the deterministic id for a role name.
func RoleID(name string) string {
	return slug.Make(name) + RoleIDSuffix
}

// NewUserID generates an opaque user id.
func NewUserID() string {
	return uuid.NewString()
}
