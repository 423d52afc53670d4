// models/partner.go
package models

import (
	"time"
)

// Partner represents the partners table (mitra kerja sama shown on the
// public site).
type Partner struct {
	PartnerID    int        `gorm:"primaryKey;column:partner_id" json:"partner_id"`
	Name         string     `gorm:"column:name" json:"name"`
	LogoURL      *string    `gorm:"column:logo_url" json:"logo_url,omitempty"`
	Website      *string    `gorm:"column:website" json:"website,omitempty"`
	Description  *string    `gorm:"column:description" json:"description,omitempty"`
	DisplayOrder *int       `gorm:"column:display_order" json:"display_order"`
	IsActive     bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Partner) TableName() string {
	return "partners"
}
