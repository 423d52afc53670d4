package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"sikap-api/models"
	"sikap-api/utils"

	"gorm.io/gorm"
)

// Lifecycle errors surfaced to the HTTP layer. Handlers map them to status
// codes with errors.Is.
var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidEmailFormat     = errors.New("invalid email format")
	ErrInvalidPhoneFormat     = errors.New("invalid phone format")
	ErrInvalidApplicationType = errors.New("invalid application type")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrTransitionNotAllowed   = errors.New("status transition not allowed")
)

const initialHistoryNotes = "Application submitted via public form"

// EmailSender delivers a recorded notification to the applicant. The
// lifecycle service always persists the notification row; delivery is
// best-effort after commit and a failure never fails the request.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SubmitApplicationInput carries the public intake form fields.
type SubmitApplicationInput struct {
	ApplicationTypeCode   string  `json:"applicationTypeCode"`
	CooperationCategoryID *int    `json:"cooperationCategoryId"`
	InstitutionID         *int    `json:"institutionId"`
	InstitutionName       string  `json:"institutionName"`
	Title                 string  `json:"title"`
	Description           string  `json:"description"`
	Purpose               string  `json:"purpose"`
	About                 string  `json:"about"`
	Notes                 *string `json:"notes"`
	ContactPerson         string  `json:"contactPerson"`
	ContactEmail          string  `json:"contactEmail"`
	ContactPhone          string  `json:"contactPhone"`
}

// SubmitApplicationResult is returned to the public form after a successful
// submission.
type SubmitApplicationResult struct {
	ApplicationID  int    `json:"applicationId"`
	TrackingNumber string `json:"trackingNumber"`
	PublicToken    string `json:"publicToken"`
}

// LifecycleService orchestrates application creation and status transitions
// as atomic multi-record writes. All status mutation goes through here so
// every change is paired with a history row and a notification record.
type LifecycleService struct {
	db        *gorm.DB
	Generator *TrackingNumberGenerator
	Policy    TransitionPolicy
	Sender    EmailSender
}

func NewLifecycleService(db *gorm.DB, sender EmailSender) *LifecycleService {
	policy := PermissiveTransitionPolicy
	if strings.ToLower(os.Getenv("SIKAP_STRICT_TRANSITIONS")) == "true" {
		policy = ForwardOnlyTransitionPolicy
	}

	return &LifecycleService{
		db:        db,
		Generator: NewTrackingNumberGenerator(),
		Policy:    policy,
		Sender:    sender,
	}
}

func (s *LifecycleService) validateSubmission(input *SubmitApplicationInput) error {
	input.ApplicationTypeCode = utils.SanitizeInput(input.ApplicationTypeCode)
	input.InstitutionName = utils.SanitizeInput(input.InstitutionName)
	input.Title = utils.SanitizeInput(input.Title)
	input.Description = utils.SanitizeInput(input.Description)
	input.Purpose = utils.SanitizeInput(input.Purpose)
	input.About = utils.SanitizeInput(input.About)
	input.ContactPerson = utils.SanitizeInput(input.ContactPerson)
	input.ContactEmail = utils.SanitizeInput(input.ContactEmail)
	input.ContactPhone = utils.SanitizeInput(input.ContactPhone)

	required := []string{
		input.ApplicationTypeCode,
		input.InstitutionName,
		input.Title,
		input.Description,
		input.Purpose,
		input.About,
		input.ContactPerson,
		input.ContactEmail,
		input.ContactPhone,
	}
	for _, field := range required {
		if field == "" {
			return ErrMissingRequiredFields
		}
	}

	if !utils.ValidateEmail(input.ContactEmail) {
		return ErrInvalidEmailFormat
	}
	if !utils.ValidatePhone(input.ContactPhone) {
		return ErrInvalidPhoneFormat
	}

	return nil
}

// Submit validates the public intake form and creates the Application with
// its PublicSubmission, initial status history and confirmation
// notification in a single transaction. Nothing is written on any
// validation failure.
func (s *LifecycleService) Submit(input SubmitApplicationInput) (*SubmitApplicationResult, error) {
	if err := s.validateSubmission(&input); err != nil {
		return nil, err
	}

	// Resolve the cooperation type before opening the transaction; an
	// unknown or disabled code writes nothing.
	var cooperationType models.CooperationType
	if err := s.db.Where("code = ? AND is_active = ? AND delete_at IS NULL", input.ApplicationTypeCode, true).
		First(&cooperationType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidApplicationType
		}
		return nil, fmt.Errorf("failed to resolve application type: %w", err)
	}

	now := time.Now()
	publicToken := GeneratePublicToken()

	var result SubmitApplicationResult
	var notification models.EmailNotification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		trackingNumber, err := s.Generator.Generate(func(candidate string) (bool, error) {
			var count int64
			if err := tx.Model(&models.Application{}).
				Where("tracking_number = ?", candidate).
				Count(&count).Error; err != nil {
				return false, err
			}
			return count > 0, nil
		})
		if err != nil {
			return err
		}

		application := models.Application{
			TrackingNumber:        trackingNumber,
			PublicToken:           publicToken,
			CooperationTypeID:     cooperationType.CooperationTypeID,
			InstitutionID:         input.InstitutionID,
			CooperationCategoryID: input.CooperationCategoryID,
			Title:                 input.Title,
			Description:           input.Description,
			Purpose:               input.Purpose,
			About:                 input.About,
			Notes:                 input.Notes,
			ContactPerson:         input.ContactPerson,
			ContactEmail:          input.ContactEmail,
			ContactPhone:          input.ContactPhone,
			InstitutionName:       input.InstitutionName,
			Status:                StatusSubmitted,
			IsPublicSubmission:    true,
			SubmittedAt:           now,
			UpdatedAt:             now,
		}
		if err := tx.Create(&application).Error; err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}

		publicSubmission := models.PublicSubmission{
			ApplicationID:  application.ApplicationID,
			TrackingNumber: trackingNumber,
			PublicToken:    publicToken,
			ContactPerson:  input.ContactPerson,
			ContactEmail:   input.ContactEmail,
			ContactPhone:   input.ContactPhone,
			CreateAt:       now,
		}
		if err := tx.Create(&publicSubmission).Error; err != nil {
			return fmt.Errorf("failed to create public submission: %w", err)
		}

		notes := initialHistoryNotes
		history := models.ApplicationStatusHistory{
			ApplicationID:   application.ApplicationID,
			OldStatus:       nil,
			NewStatus:       StatusSubmitted,
			Notes:           &notes,
			NotifyApplicant: true,
			ChangedAt:       now,
		}
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("failed to create status history: %w", err)
		}

		notification = models.EmailNotification{
			ApplicationID:  application.ApplicationID,
			RecipientEmail: input.ContactEmail,
			Subject:        "Permohonan Kerja Sama Diterima - " + trackingNumber,
			Body: fmt.Sprintf(
				"Permohonan kerja sama \"%s\" telah kami terima.\n\nNomor tracking: %s\n\nGunakan nomor tracking di atas untuk memantau status permohonan Anda.",
				input.Title, trackingNumber,
			),
			Type:     "submission_confirmation",
			CreateAt: now,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}

		result = SubmitApplicationResult{
			ApplicationID:  application.ApplicationID,
			TrackingNumber: trackingNumber,
			PublicToken:    publicToken,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.deliver(notification)

	return &result, nil
}

// UpdateStatus moves an application to the target status, recording the
// transition and its notification in one transaction. changedBy is the
// acting admin user, nil for system changes.
func (s *LifecycleService) UpdateStatus(applicationID int, targetStatus string, notes *string, changedBy *int) (*models.Application, error) {
	canonical, ok := CanonicalStatus(targetStatus)
	if !ok {
		return nil, ErrInvalidStatus
	}

	var application models.Application
	if err := s.db.Where("application_id = ? AND delete_at IS NULL", applicationID).
		First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	if !s.Policy.Allows(application.Status, canonical) {
		return nil, ErrTransitionNotAllowed
	}

	now := time.Now()
	oldStatus := application.Status

	var notification models.EmailNotification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("application_id = ?", application.ApplicationID).
			Updates(map[string]interface{}{
				"status":     canonical,
				"updated_at": now,
			}).Error; err != nil {
			return fmt.Errorf("failed to update application status: %w", err)
		}

		history := models.ApplicationStatusHistory{
			ApplicationID:   application.ApplicationID,
			OldStatus:       &oldStatus,
			NewStatus:       canonical,
			Notes:           notes,
			NotifyApplicant: true,
			ChangedBy:       changedBy,
			ChangedAt:       now,
		}
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("failed to create status history: %w", err)
		}

		notification = models.EmailNotification{
			ApplicationID:  application.ApplicationID,
			RecipientEmail: application.ContactEmail,
			Subject:        "Pembaruan Status Permohonan - " + application.TrackingNumber,
			Body:           StatusChangeMessage(canonical, notes),
			Type:           "status_change",
			CreateAt:       now,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	application.Status = canonical
	application.UpdatedAt = now

	s.deliver(notification)

	return &application, nil
}

func (s *LifecycleService) deliver(notification models.EmailNotification) {
	if s.Sender == nil {
		return
	}
	if err := s.Sender.Send(notification.RecipientEmail, notification.Subject, notification.Body); err != nil {
		log.Printf("Failed to send notification email for application %d: %v", notification.ApplicationID, err)
	}
}
