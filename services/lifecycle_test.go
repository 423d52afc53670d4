package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
)

func validSubmission() SubmitApplicationInput {
	return SubmitApplicationInput{
		ApplicationTypeCode: "mou",
		InstitutionName:     "Universitas Negeri Contoh",
		Title:               "Kerja sama penelitian bersama",
		Description:         "Penelitian bersama bidang tata kelola pemerintahan",
		Purpose:             "Meningkatkan kapasitas riset daerah",
		About:               "Ruang lingkup penelitian dan publikasi",
		ContactPerson:       "Budi Santoso",
		ContactEmail:        "budi@contoh.ac.id",
		ContactPhone:        "+62 812-3456-7890",
	}
}

func newLifecycleForTest(t *testing.T, steps []*queryStep) (*LifecycleService, *scriptedDB, func()) {
	t.Helper()
	db, state, cleanup := newScriptedGormDB(t, steps)

	svc := &LifecycleService{
		db: db,
		Generator: &TrackingNumberGenerator{
			MaxAttempts: 10,
			Now:         fixedClock,
			RandDigits:  func() int { return 42 },
		},
		Policy: PermissiveTransitionPolicy,
	}
	return svc, state, cleanup
}

func TestSubmitRejectsMissingFieldsWithoutWriting(t *testing.T) {
	svc, state, cleanup := newLifecycleForTest(t, nil)
	defer cleanup()

	input := validSubmission()
	input.Title = "   "

	_, err := svc.Submit(input)
	if !errors.Is(err, ErrMissingRequiredFields) {
		t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("no statements should run on validation failure: %v", err)
	}
}

func TestSubmitRejectsInvalidEmailWithoutWriting(t *testing.T) {
	svc, state, cleanup := newLifecycleForTest(t, nil)
	defer cleanup()

	input := validSubmission()
	input.ContactEmail = "not-an-email"

	_, err := svc.Submit(input)
	if !errors.Is(err, ErrInvalidEmailFormat) {
		t.Fatalf("expected ErrInvalidEmailFormat, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("no statements should run on validation failure: %v", err)
	}
}

func TestSubmitRejectsInvalidPhoneWithoutWriting(t *testing.T) {
	svc, state, cleanup := newLifecycleForTest(t, nil)
	defer cleanup()

	input := validSubmission()
	input.ContactPhone = "call me"

	_, err := svc.Submit(input)
	if !errors.Is(err, ErrInvalidPhoneFormat) {
		t.Fatalf("expected ErrInvalidPhoneFormat, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("no statements should run on validation failure: %v", err)
	}
}

func TestSubmitRejectsUnknownApplicationType(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .cooperation_types. WHERE code = .*"),
			columns: []string{"cooperation_type_id"},
			rows:    [][]driver.Value{},
		},
	}

	svc, state, cleanup := newLifecycleForTest(t, steps)
	defer cleanup()

	input := validSubmission()
	input.ApplicationTypeCode = "unknown-type"

	_, err := svc.Submit(input)
	if !errors.Is(err, ErrInvalidApplicationType) {
		t.Fatalf("expected ErrInvalidApplicationType, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("only the type lookup should run: %v", err)
	}
}

func TestSubmitWritesAllFourRecordsInOneTransaction(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .cooperation_types. WHERE code = .*"),
			columns: []string{"cooperation_type_id", "code", "name", "is_active"},
			rows:    [][]driver.Value{{int64(3), "mou", "Memorandum of Understanding", true}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .applications. WHERE tracking_number = .*`),
			columns: []string{"count"},
			rows:    [][]driver.Value{{int64(0)}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .applications."),
			result:  scriptedResult{lastInsertID: 17, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .public_submissions."),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .application_status_history."),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .email_notifications."),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
	}

	svc, state, cleanup := newLifecycleForTest(t, steps)
	defer cleanup()

	result, err := svc.Submit(validSubmission())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if result.TrackingNumber != "SIKAP-202501-0042" {
		t.Fatalf("unexpected tracking number %s", result.TrackingNumber)
	}
	if !TrackingNumberPattern.MatchString(result.TrackingNumber) {
		t.Fatalf("tracking number %s violates the format contract", result.TrackingNumber)
	}
	if result.ApplicationID != 17 {
		t.Fatalf("expected application id from the insert, got %d", result.ApplicationID)
	}
	if len(result.PublicToken) != 64 {
		t.Fatalf("expected a 64-char public token, got %d chars", len(result.PublicToken))
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestSubmitAbortsWhenACompanionInsertFails(t *testing.T) {
	storageErr := errors.New("disk full")
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .cooperation_types. WHERE code = .*"),
			columns: []string{"cooperation_type_id", "code", "name", "is_active"},
			rows:    [][]driver.Value{{int64(3), "mou", "Memorandum of Understanding", true}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .applications. WHERE tracking_number = .*`),
			columns: []string{"count"},
			rows:    [][]driver.Value{{int64(0)}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .applications."),
			result:  scriptedResult{lastInsertID: 17, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .public_submissions."),
			err:     storageErr,
		},
	}

	svc, state, cleanup := newLifecycleForTest(t, steps)
	defer cleanup()

	_, err := svc.Submit(validSubmission())
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected the storage error to surface, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("no statements beyond the failing insert should run: %v", err)
	}
}

func TestUpdateStatusRejectsUnknownTargetWithoutWriting(t *testing.T) {
	svc, state, cleanup := newLifecycleForTest(t, nil)
	defer cleanup()

	_, err := svc.UpdateStatus(1, "CANCELLED", nil, nil)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("no statements should run for an invalid status: %v", err)
	}
}

func TestUpdateStatusReturnsNotFoundForMissingApplication(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .applications. WHERE application_id = .*"),
			columns: []string{"application_id"},
			rows:    [][]driver.Value{},
		},
	}

	svc, state, cleanup := newLifecycleForTest(t, steps)
	defer cleanup()

	_, err := svc.UpdateStatus(999, "APPROVED", nil, nil)
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateStatusWritesHistoryAndNotificationTogether(t *testing.T) {
	notes := "Disetujui oleh kepala dinas"
	actingUser := 5

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .applications. WHERE application_id = .*"),
			columns: []string{"application_id", "tracking_number", "contact_email", "status"},
			rows: [][]driver.Value{{
				int64(17), "SIKAP-202501-0042", "budi@contoh.ac.id", "SUBMITTED",
			}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE .applications. SET"),
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .application_status_history."),
			result:  scriptedResult{lastInsertID: 2, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .email_notifications."),
			result:  scriptedResult{lastInsertID: 2, rowsAffected: 1},
		},
	}

	svc, state, cleanup := newLifecycleForTest(t, steps)
	defer cleanup()

	application, err := svc.UpdateStatus(17, "APPROVED", &notes, &actingUser)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if application.Status != StatusApproved {
		t.Fatalf("expected APPROVED, got %s", application.Status)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateStatusHonorsStrictPolicy(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .applications. WHERE application_id = .*"),
			columns: []string{"application_id", "tracking_number", "contact_email", "status"},
			rows: [][]driver.Value{{
				int64(17), "SIKAP-202501-0042", "budi@contoh.ac.id", "APPROVED",
			}},
		},
	}

	svc, state, cleanup := newLifecycleForTest(t, steps)
	defer cleanup()
	svc.Policy = ForwardOnlyTransitionPolicy

	_, err := svc.UpdateStatus(17, "SUBMITTED", nil, nil)
	if !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("a denied transition must not write: %v", err)
	}
}
