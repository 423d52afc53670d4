package models

import (
	"time"
)

// ApplicationDocument represents the application_documents table.
// Only metadata is exposed through the tracking endpoint; file bytes are
// served by the download endpoint after a public-token check.
type ApplicationDocument struct {
	DocumentID       int        `gorm:"primaryKey;column:document_id" json:"document_id"`
	ApplicationID    int        `gorm:"column:application_id" json:"application_id"`
	OriginalFilename string     `gorm:"column:original_filename" json:"original_filename"`
	StoredPath       string     `gorm:"column:stored_path" json:"-"`
	FileType         string     `gorm:"column:file_type" json:"file_type"`
	FileSize         int64      `gorm:"column:file_size" json:"file_size"`
	FileHash         string     `gorm:"column:file_hash" json:"file_hash"`
	UploadedBy       *int       `gorm:"column:uploaded_by" json:"uploaded_by,omitempty"`
	UploadedAt       time.Time  `gorm:"column:uploaded_at" json:"uploaded_at"`
	DeleteAt         *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Application Application `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
}

// TableName overrides
func (ApplicationDocument) TableName() string {
	return "application_documents"
}

// Helper methods for file validation
func (d *ApplicationDocument) IsValidDocumentType() bool {
	validTypes := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"image/jpeg",
		"image/png",
	}
	for _, validType := range validTypes {
		if d.FileType == validType {
			return true
		}
	}
	return false
}

func (d *ApplicationDocument) GetFileSizeInMB() float64 {
	return float64(d.FileSize) / (1024 * 1024)
}
