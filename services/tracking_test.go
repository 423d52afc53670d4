package services

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"sikap-api/models"
)

func historyEntry(newStatus string, changedAt time.Time, notes *string) models.ApplicationStatusHistory {
	return models.ApplicationStatusHistory{
		NewStatus: newStatus,
		ChangedAt: changedAt,
		Notes:     notes,
	}
}

func TestBuildTimelineMarksCompletedAndCurrentSteps(t *testing.T) {
	submitted := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	approved := submitted.Add(48 * time.Hour)
	notes := "Disetujui"

	histories := []models.ApplicationStatusHistory{
		historyEntry(StatusApproved, approved, &notes),
		historyEntry(StatusSubmitted, submitted, nil),
	}

	timeline := BuildTimeline(StatusApproved, histories)

	if len(timeline) != len(TimelineSequence) {
		t.Fatalf("expected %d steps, got %d", len(TimelineSequence), len(timeline))
	}

	byStatus := make(map[string]TimelineStep, len(timeline))
	for _, step := range timeline {
		byStatus[step.Status] = step
	}

	if !byStatus[StatusSubmitted].Completed {
		t.Fatal("SUBMITTED should be completed")
	}
	if byStatus[StatusSubmitted].Current {
		t.Fatal("SUBMITTED should not be current")
	}
	if !byStatus[StatusApproved].Completed || !byStatus[StatusApproved].Current {
		t.Fatal("APPROVED should be completed and current")
	}
	if byStatus[StatusApproved].Notes == nil || *byStatus[StatusApproved].Notes != notes {
		t.Fatal("APPROVED step should carry the history notes")
	}

	for _, status := range []string{StatusUnderReview, StatusAdditionalInfoRequired, StatusRejected} {
		if byStatus[status].Completed {
			t.Fatalf("%s should not be completed", status)
		}
	}
}

func TestBuildTimelineUsesFirstMatchingEntryPerStatus(t *testing.T) {
	first := time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC)
	revisit := first.Add(72 * time.Hour)

	histories := []models.ApplicationStatusHistory{
		historyEntry(StatusUnderReview, revisit, nil),
		historyEntry(StatusUnderReview, first, nil),
		historyEntry(StatusSubmitted, first.Add(-time.Hour), nil),
	}

	timeline := BuildTimeline(StatusUnderReview, histories)

	for _, step := range timeline {
		if step.Status != StatusUnderReview {
			continue
		}
		if step.Date == nil || !step.Date.Equal(first) {
			t.Fatalf("revisited status should keep its first date, got %v", step.Date)
		}
	}
}

func TestBuildTimelineIsPureOfHiddenState(t *testing.T) {
	timeline := BuildTimeline(StatusSubmitted, nil)

	for _, step := range timeline {
		if step.Completed {
			t.Fatalf("no history means no completed steps, got %s completed", step.Status)
		}
		if step.Status == StatusSubmitted && !step.Current {
			t.Fatal("current status should still be marked current with empty history")
		}
	}
}

func TestTrackRefusesInternallyCreatedApplication(t *testing.T) {
	submitted := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .applications. WHERE tracking_number = .*"),
			columns: []string{
				"application_id", "tracking_number", "cooperation_type_id",
				"cooperation_category_id", "institution_name", "title",
				"status", "is_public_submission", "submitted_at", "updated_at",
			},
			rows: [][]driver.Value{{
				int64(4), "SIKAP-202503-0004", int64(1),
				nil, "Dinas Pendidikan", "Kerja sama internal",
				StatusUnderReview, int64(0), submitted, submitted,
			}},
		},
		// Preloads run on the found row in alphabetical order:
		// CooperationCategory, CooperationType, Documents, PublicSubmission.
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .cooperation_categories."),
			columns: []string{"cooperation_category_id", "name"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .cooperation_types."),
			columns: []string{"cooperation_type_id", "name"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .application_documents."),
			columns: []string{"document_id"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .public_submissions."),
			columns: []string{"public_submission_id"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewTrackingService(db)

	_, err := svc.Track("SIKAP-202503-0004")
	if err != ErrNotPublicSubmission {
		t.Fatalf("expected ErrNotPublicSubmission, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestTrackReturnsNotFoundForUnknownTrackingNumber(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM .applications. WHERE tracking_number = .*"),
			columns: []string{"application_id"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewTrackingService(db)

	_, err := svc.Track("SIKAP-202501-9999")
	if err != ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}
