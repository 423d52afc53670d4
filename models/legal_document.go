// models/legal_document.go
package models

import (
	"time"
)

// LegalDocument represents the legal_documents table (peraturan dan dasar
// hukum kerja sama, published on the public site).
type LegalDocument struct {
	LegalDocumentID int     `gorm:"primaryKey;column:legal_document_id" json:"legal_document_id"`
	Title           string  `gorm:"column:title" json:"title"`
	DocumentNumber  string  `gorm:"column:document_number" json:"document_number"`
	Year            int     `gorm:"column:year" json:"year"`
	Description     *string `gorm:"column:description" json:"description"`

	Category string `gorm:"column:category;type:enum('undang_undang','peraturan_pemerintah','peraturan_daerah','peraturan_walikota','lainnya');default:'lainnya'" json:"category"`

	FileName string  `gorm:"column:file_name" json:"file_name"`
	FilePath string  `gorm:"column:file_path" json:"file_path"`
	FileSize *int64  `gorm:"column:file_size" json:"file_size"`
	MimeType *string `gorm:"column:mime_type" json:"mime_type"`

	DisplayOrder *int   `gorm:"column:display_order" json:"display_order"`
	Status       string `gorm:"column:status;type:enum('active','inactive');default:'active'" json:"status"`

	CreatedBy int        `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Creator User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// SOPDocument represents the sop_documents table (standar operasional
// prosedur pengajuan kerja sama).
type SOPDocument struct {
	SOPDocumentID int     `gorm:"primaryKey;column:sop_document_id" json:"sop_document_id"`
	Title         string  `gorm:"column:title" json:"title"`
	Description   *string `gorm:"column:description" json:"description"`

	FileName string  `gorm:"column:file_name" json:"file_name"`
	FilePath string  `gorm:"column:file_path" json:"file_path"`
	FileSize *int64  `gorm:"column:file_size" json:"file_size"`
	MimeType *string `gorm:"column:mime_type" json:"mime_type"`

	DisplayOrder *int   `gorm:"column:display_order" json:"display_order"`
	Status       string `gorm:"column:status;type:enum('active','inactive');default:'active'" json:"status"`

	CreatedBy int        `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Creator User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// TableName overrides
func (LegalDocument) TableName() string {
	return "legal_documents"
}

func (SOPDocument) TableName() string {
	return "sop_documents"
}
