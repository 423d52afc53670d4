package models

import (
	"time"
)

type User struct {
	UserID   int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	FullName string     `gorm:"column:full_name" json:"full_name"`
	Email    string     `gorm:"column:email;unique" json:"email"`
	Password string     `gorm:"column:password" json:"-"`
	RoleID   int        `gorm:"column:role_id" json:"role_id"`
	Phone    *string    `gorm:"column:phone" json:"phone,omitempty"`
	IsActive bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

type Role struct {
	RoleID   int        `gorm:"primaryKey;column:role_id" json:"role_id"`
	Role     string     `gorm:"column:role" json:"role"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (Role) TableName() string {
	return "roles"
}
