// models/cooperation.go
package models

import (
	"time"
)

// Cooperation represents the cooperations table: an executed agreement,
// optionally linked to the Application it originated from.
type Cooperation struct {
	CooperationID     int     `gorm:"primaryKey;column:cooperation_id" json:"cooperation_id"`
	CooperationNumber string  `gorm:"column:cooperation_number;unique" json:"cooperation_number"`
	Title             string  `gorm:"column:title" json:"title"`
	Description       *string `gorm:"column:description" json:"description,omitempty"`
	CooperationTypeID int     `gorm:"column:cooperation_type_id" json:"cooperation_type_id"`
	InstitutionID     *int    `gorm:"column:institution_id" json:"institution_id,omitempty"`
	ApplicationID     *int    `gorm:"column:application_id" json:"application_id,omitempty"`
	FirstParty        string  `gorm:"column:first_party" json:"first_party"`
	SecondParty       string  `gorm:"column:second_party" json:"second_party"`

	StartDate time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`

	Status string `gorm:"column:status;type:enum('ACTIVE','EXPIRED','TERMINATED');default:'ACTIVE'" json:"status"`

	CreatedBy int        `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	CooperationType CooperationType `gorm:"foreignKey:CooperationTypeID" json:"cooperation_type,omitempty"`
	Institution     *Institution    `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	Application     *Application    `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
	Creator         User            `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Cooperation) TableName() string {
	return "cooperations"
}

// IsExpiringSoon reports whether the agreement ends within the given number
// of days from now.
func (co *Cooperation) IsExpiringSoon(days int) bool {
	if co.EndDate == nil || co.Status != "ACTIVE" {
		return false
	}
	return co.EndDate.Before(time.Now().AddDate(0, 0, days))
}
