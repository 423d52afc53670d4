package models

import "time"

// ApplicationStatusHistory tracks historical status changes for applications.
// Rows are append-only; they are never updated or deleted.
type ApplicationStatusHistory struct {
	HistoryID       int     `gorm:"primaryKey;column:history_id" json:"history_id"`
	ApplicationID   int     `gorm:"column:application_id" json:"application_id"`
	OldStatus       *string `gorm:"column:old_status" json:"old_status"`
	NewStatus       string  `gorm:"column:new_status" json:"new_status"`
	Notes           *string `gorm:"column:notes" json:"notes"`
	NotifyApplicant bool    `gorm:"column:notify_applicant" json:"notify_applicant"`

	// ChangedBy is null for changes made by the system (public submission).
	ChangedBy *int      `gorm:"column:changed_by" json:"changed_by"`
	ChangedAt time.Time `gorm:"column:changed_at" json:"changed_at"`

	// Relations
	ChangedByUser *User `gorm:"foreignKey:ChangedBy" json:"changed_by_user,omitempty"`
}

// TableName specifies the table for ApplicationStatusHistory.
func (ApplicationStatusHistory) TableName() string {
	return "application_status_history"
}
