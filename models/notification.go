package models

import "time"

// EmailNotification records a message that should be communicated to the
// applicant. Delivery is handled separately; this table is the audit record.
type EmailNotification struct {
	NotificationID uint      `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	ApplicationID  int       `gorm:"column:application_id" json:"application_id"`
	RecipientEmail string    `gorm:"column:recipient_email" json:"recipient_email"`
	Subject        string    `gorm:"column:subject" json:"subject"`
	Body           string    `gorm:"column:body" json:"body"`
	Type           string    `gorm:"column:type;type:enum('submission_confirmation','status_change');default:'status_change'" json:"type"`
	CreateAt       time.Time `gorm:"column:create_at" json:"created_at"`
}

func (EmailNotification) TableName() string { return "email_notifications" }
