package services

import (
	"errors"
	"fmt"
	"time"

	"sikap-api/models"

	"gorm.io/gorm"
)

// ErrNotPublicSubmission is returned when a tracking number resolves to an
// internally created application. The public channel refuses those so
// internally managed records never leak through the tracking page.
var ErrNotPublicSubmission = errors.New("application is not accessible publicly")

// TrackingView is the public projection of an application. Contact data
// comes from the PublicSubmission side to keep the projection minimal.
type TrackingView struct {
	TrackingNumber  string    `json:"tracking_number"`
	Title           string    `json:"title"`
	Status          string    `json:"status"`
	SubmittedAt     time.Time `json:"submitted_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	CooperationType string    `json:"cooperation_type"`
	InstitutionName string    `json:"institution_name"`
	CategoryName    *string   `json:"category_name,omitempty"`
	ContactPerson   string    `json:"contact_person"`
	ContactEmail    string    `json:"contact_email"`

	StatusHistory []TrackingHistoryEntry `json:"status_history"`
	Documents     []TrackingDocument     `json:"documents"`
	Timeline      []TimelineStep         `json:"timeline"`
}

// TrackingHistoryEntry is one audit-trail row, newest first.
type TrackingHistoryEntry struct {
	OldStatus *string   `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Notes     *string   `json:"notes"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy string    `json:"changed_by"`
}

// TrackingDocument exposes document metadata only; bytes are served by the
// download endpoint after a public-token check.
type TrackingDocument struct {
	DocumentID int       `json:"document_id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// TimelineStep is one step of the public stepper view.
type TimelineStep struct {
	Status    string     `json:"status"`
	Completed bool       `json:"completed"`
	Current   bool       `json:"current"`
	Date      *time.Time `json:"date,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// TrackingService assembles the read-only tracking view. It never writes.
type TrackingService struct {
	db *gorm.DB
}

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{db: db}
}

// Track looks up an application by tracking number and derives the public
// view. ErrApplicationNotFound when the number is unknown,
// ErrNotPublicSubmission when the record was created internally.
func (s *TrackingService) Track(trackingNumber string) (*TrackingView, error) {
	var application models.Application
	if err := s.db.
		Preload("CooperationType").
		Preload("CooperationCategory").
		Preload("PublicSubmission").
		Preload("Documents", "delete_at IS NULL").
		Where("tracking_number = ? AND delete_at IS NULL", trackingNumber).
		First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	if !application.IsPublicSubmission {
		return nil, ErrNotPublicSubmission
	}

	var histories []models.ApplicationStatusHistory
	if err := s.db.
		Preload("ChangedByUser").
		Where("application_id = ?", application.ApplicationID).
		Order("changed_at DESC").
		Find(&histories).Error; err != nil {
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}

	view := &TrackingView{
		TrackingNumber:  application.TrackingNumber,
		Title:           application.Title,
		Status:          application.Status,
		SubmittedAt:     application.SubmittedAt,
		UpdatedAt:       application.UpdatedAt,
		CooperationType: application.CooperationType.Name,
		InstitutionName: application.InstitutionName,
		StatusHistory:   make([]TrackingHistoryEntry, 0, len(histories)),
		Documents:       make([]TrackingDocument, 0, len(application.Documents)),
		Timeline:        BuildTimeline(application.Status, histories),
	}

	if application.CooperationCategory != nil {
		view.CategoryName = &application.CooperationCategory.Name
	}

	// Contact data from the public-submission record, not the raw
	// application row.
	if application.PublicSubmission != nil {
		view.ContactPerson = application.PublicSubmission.ContactPerson
		view.ContactEmail = application.PublicSubmission.ContactEmail
	}

	for _, history := range histories {
		entry := TrackingHistoryEntry{
			OldStatus: history.OldStatus,
			NewStatus: history.NewStatus,
			Notes:     history.Notes,
			ChangedAt: history.ChangedAt,
			ChangedBy: "System",
		}
		if history.ChangedByUser != nil && history.ChangedByUser.FullName != "" {
			entry.ChangedBy = history.ChangedByUser.FullName
		}
		view.StatusHistory = append(view.StatusHistory, entry)
	}

	for _, document := range application.Documents {
		view.Documents = append(view.Documents, TrackingDocument{
			DocumentID: document.DocumentID,
			Filename:   document.OriginalFilename,
			FileType:   document.FileType,
			FileSize:   document.FileSize,
			UploadedAt: document.UploadedAt,
		})
	}

	return view, nil
}

// BuildTimeline derives the stepper view from the canonical status sequence
// and the history list. For each canonical status the first matching entry
// (any order of the input slice; ties broken by earliest changed_at) marks
// the step completed. Pure function of its inputs.
func BuildTimeline(currentStatus string, histories []models.ApplicationStatusHistory) []TimelineStep {
	timeline := make([]TimelineStep, 0, len(TimelineSequence))

	for _, status := range TimelineSequence {
		step := TimelineStep{
			Status:  status,
			Current: status == currentStatus,
		}

		for _, history := range histories {
			if history.NewStatus != status {
				continue
			}
			if step.Completed && history.ChangedAt.After(*step.Date) {
				continue
			}
			changedAt := history.ChangedAt
			step.Completed = true
			step.Date = &changedAt
			step.Notes = history.Notes
		}

		timeline = append(timeline, step)
	}

	return timeline
}
