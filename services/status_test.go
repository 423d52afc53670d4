package services

import (
	"strings"
	"testing"
)

func TestCanonicalStatusResolvesAliases(t *testing.T) {
	cases := map[string]string{
		"SUBMITTED":        StatusSubmitted,
		"submitted":        StatusSubmitted,
		" APPROVED ":       StatusApproved,
		"IN_REVIEW":        StatusUnderReview,
		"in_review":        StatusUnderReview,
		"UNDER_REVIEW":     StatusUnderReview,
		"diproses":         StatusUnderReview,
		"perlu_dilengkapi": StatusAdditionalInfoRequired,
		"REJECTED":         StatusRejected,
		"ditolak":          StatusRejected,
	}

	for input, want := range cases {
		got, ok := CanonicalStatus(input)
		if !ok {
			t.Fatalf("CanonicalStatus(%q) not recognized", input)
		}
		if got != want {
			t.Fatalf("CanonicalStatus(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestCanonicalStatusRejectsUnknownValues(t *testing.T) {
	for _, input := range []string{"", "DRAFT", "CANCELLED", "approved!"} {
		if _, ok := CanonicalStatus(input); ok {
			t.Fatalf("CanonicalStatus(%q) unexpectedly recognized", input)
		}
	}
}

func TestPermissivePolicyAllowsBackwardTransitions(t *testing.T) {
	// Manual correction: an approval can be reverted.
	if !PermissiveTransitionPolicy.Allows(StatusApproved, StatusSubmitted) {
		t.Fatal("permissive policy should allow APPROVED -> SUBMITTED")
	}
	if !PermissiveTransitionPolicy.Allows(StatusSubmitted, StatusRejected) {
		t.Fatal("permissive policy should allow SUBMITTED -> REJECTED")
	}
}

func TestForwardOnlyPolicyEnforcesWorkflowGraph(t *testing.T) {
	allowed := [][2]string{
		{StatusSubmitted, StatusUnderReview},
		{StatusUnderReview, StatusAdditionalInfoRequired},
		{StatusAdditionalInfoRequired, StatusUnderReview},
		{StatusUnderReview, StatusApproved},
		{StatusUnderReview, StatusRejected},
	}
	for _, pair := range allowed {
		if !ForwardOnlyTransitionPolicy.Allows(pair[0], pair[1]) {
			t.Fatalf("forward-only policy should allow %s -> %s", pair[0], pair[1])
		}
	}

	denied := [][2]string{
		{StatusApproved, StatusSubmitted},
		{StatusRejected, StatusUnderReview},
		{StatusSubmitted, StatusAdditionalInfoRequired},
	}
	for _, pair := range denied {
		if ForwardOnlyTransitionPolicy.Allows(pair[0], pair[1]) {
			t.Fatalf("forward-only policy should deny %s -> %s", pair[0], pair[1])
		}
	}
}

func TestStatusChangeMessageAppendsNotes(t *testing.T) {
	notes := "Disetujui oleh kepala dinas"
	message := StatusChangeMessage(StatusApproved, &notes)

	if !strings.Contains(message, "disetujui") {
		t.Fatalf("expected the fixed approval body, got %q", message)
	}
	if !strings.Contains(message, "Catatan: "+notes) {
		t.Fatalf("expected appended notes, got %q", message)
	}
}

func TestStatusChangeMessageWithoutNotes(t *testing.T) {
	message := StatusChangeMessage(StatusRejected, nil)

	if strings.Contains(message, "Catatan:") {
		t.Fatalf("expected no notes section, got %q", message)
	}

	empty := "   "
	message = StatusChangeMessage(StatusRejected, &empty)
	if strings.Contains(message, "Catatan:") {
		t.Fatalf("whitespace notes should be ignored, got %q", message)
	}
}
