// models/application.go
package models

import (
	"time"
)

// Application represents the applications table (pengajuan kerja sama).
type Application struct {
	ApplicationID         int        `gorm:"primaryKey;column:application_id" json:"application_id"`
	TrackingNumber        string     `gorm:"column:tracking_number;unique" json:"tracking_number"`
	PublicToken           string     `gorm:"column:public_token;unique" json:"-"`
	CooperationTypeID     int        `gorm:"column:cooperation_type_id" json:"cooperation_type_id"`
	InstitutionID         *int       `gorm:"column:institution_id" json:"institution_id,omitempty"`
	CooperationCategoryID *int       `gorm:"column:cooperation_category_id" json:"cooperation_category_id,omitempty"`
	Title                 string     `gorm:"column:title" json:"title"`
	Description           string     `gorm:"column:description" json:"description"`
	Purpose               string     `gorm:"column:purpose" json:"purpose"`
	About                 string     `gorm:"column:about" json:"about"`
	Notes                 *string    `gorm:"column:notes" json:"notes,omitempty"`
	ContactPerson         string     `gorm:"column:contact_person" json:"contact_person"`
	ContactEmail          string     `gorm:"column:contact_email" json:"contact_email"`
	ContactPhone          string     `gorm:"column:contact_phone" json:"contact_phone"`

	// Nama instansi selalu diisi, walaupun institution_id juga terisi
	// (denormalized so the public view survives institution edits).
	InstitutionName string `gorm:"column:institution_name" json:"institution_name"`

	Status             string     `gorm:"column:status;type:enum('SUBMITTED','UNDER_REVIEW','ADDITIONAL_INFO_REQUIRED','APPROVED','REJECTED');default:'SUBMITTED'" json:"status"`
	IsPublicSubmission bool       `gorm:"column:is_public_submission" json:"is_public_submission"`
	SubmittedAt        time.Time  `gorm:"column:submitted_at" json:"submitted_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeleteAt           *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	CooperationType     CooperationType            `gorm:"foreignKey:CooperationTypeID" json:"cooperation_type,omitempty"`
	Institution         *Institution               `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	CooperationCategory *CooperationCategory       `gorm:"foreignKey:CooperationCategoryID" json:"cooperation_category,omitempty"`
	PublicSubmission    *PublicSubmission          `gorm:"foreignKey:ApplicationID" json:"public_submission,omitempty"`
	StatusHistories     []ApplicationStatusHistory `gorm:"foreignKey:ApplicationID" json:"status_histories,omitempty"`
	Documents           []ApplicationDocument      `gorm:"foreignKey:ApplicationID" json:"documents,omitempty"`
}

// PublicSubmission is the public-access record paired 1:1 with an Application.
// Created inside the same transaction as the Application, never separately.
type PublicSubmission struct {
	PublicSubmissionID int       `gorm:"primaryKey;column:public_submission_id" json:"public_submission_id"`
	ApplicationID      int       `gorm:"column:application_id" json:"application_id"`
	TrackingNumber     string    `gorm:"column:tracking_number" json:"tracking_number"`
	PublicToken        string    `gorm:"column:public_token" json:"-"`
	ContactPerson      string    `gorm:"column:contact_person" json:"contact_person"`
	ContactEmail       string    `gorm:"column:contact_email" json:"contact_email"`
	ContactPhone       string    `gorm:"column:contact_phone" json:"contact_phone"`
	CreateAt           time.Time `gorm:"column:create_at" json:"create_at"`
}

// TableName overrides
func (Application) TableName() string {
	return "applications"
}

func (PublicSubmission) TableName() string {
	return "public_submissions"
}
