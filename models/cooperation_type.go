// models/cooperation_type.go
package models

import (
	"time"
)

// CooperationType represents the cooperation_types table (MOU, PKS, ...).
type CooperationType struct {
	CooperationTypeID int        `gorm:"primaryKey;column:cooperation_type_id" json:"cooperation_type_id"`
	Code              string     `gorm:"column:code;unique" json:"code"`
	Name              string     `gorm:"column:name" json:"name"`
	Description       *string    `gorm:"column:description" json:"description,omitempty"`
	IsActive          bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreateAt          *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt          *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt          *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// CooperationCategory represents the cooperation_categories table
// (pendidikan, kesehatan, infrastruktur, ...).
type CooperationCategory struct {
	CooperationCategoryID int        `gorm:"primaryKey;column:cooperation_category_id" json:"cooperation_category_id"`
	Name                  string     `gorm:"column:name" json:"name"`
	IsActive              bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreateAt              *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt              *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt              *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// Institution represents the institutions table (instansi mitra).
type Institution struct {
	InstitutionID int        `gorm:"primaryKey;column:institution_id" json:"institution_id"`
	Name          string     `gorm:"column:name" json:"name"`
	Address       *string    `gorm:"column:address" json:"address,omitempty"`
	Email         *string    `gorm:"column:email" json:"email,omitempty"`
	Phone         *string    `gorm:"column:phone" json:"phone,omitempty"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (CooperationType) TableName() string {
	return "cooperation_types"
}

func (CooperationCategory) TableName() string {
	return "cooperation_categories"
}

func (Institution) TableName() string {
	return "institutions"
}
