package services

import (
	"strings"
)

const (
	// Canonical application statuses. The tracking timeline walks these in
	// the order of TimelineSequence.
	StatusSubmitted              = "SUBMITTED"
	StatusUnderReview            = "UNDER_REVIEW"
	StatusAdditionalInfoRequired = "ADDITIONAL_INFO_REQUIRED"
	StatusApproved               = "APPROVED"
	StatusRejected               = "REJECTED"
)

// TimelineSequence is the canonical order of steps shown on the public
// tracking page.
var TimelineSequence = []string{
	StatusSubmitted,
	StatusUnderReview,
	StatusAdditionalInfoRequired,
	StatusApproved,
	StatusRejected,
}

var statusSynonyms = map[string][]string{
	StatusSubmitted: {
		"submitted",
		"diajukan",
	},
	StatusUnderReview: {
		"under_review",
		// Older admin clients send IN_REVIEW; treat it as the same state.
		"in_review",
		"diproses",
	},
	StatusAdditionalInfoRequired: {
		"additional_info_required",
		"needs_more_info",
		"perlu_dilengkapi",
	},
	StatusApproved: {
		"approved",
		"disetujui",
	},
	StatusRejected: {
		"rejected",
		"ditolak",
	},
}

var statusAliasToCanonical = buildStatusAliasMap()

func buildStatusAliasMap() map[string]string {
	aliasMap := make(map[string]string)
	for canonical, synonyms := range statusSynonyms {
		aliasMap[normalizeStatus(canonical)] = canonical
		for _, alias := range synonyms {
			if normalized := normalizeStatus(alias); normalized != "" {
				aliasMap[normalized] = canonical
			}
		}
	}
	return aliasMap
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// CanonicalStatus resolves a raw status value (canonical name, legacy alias,
// or Indonesian label) to its canonical form. ok is false when the value is
// not a known status.
func CanonicalStatus(status string) (string, bool) {
	canonical, ok := statusAliasToCanonical[normalizeStatus(status)]
	return canonical, ok
}

// IsValidStatus reports whether the value maps to a canonical status.
func IsValidStatus(status string) bool {
	_, ok := CanonicalStatus(status)
	return ok
}

// TransitionPolicy decides which status transitions the admin endpoint
// accepts. Exposed as a table so the rule is visible and swappable.
type TransitionPolicy map[string][]string

// Allows reports whether the policy permits moving from one canonical
// status to another. A nil policy permits every transition between
// canonical statuses.
func (p TransitionPolicy) Allows(from, to string) bool {
	if p == nil {
		return true
	}
	for _, allowed := range p[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PermissiveTransitionPolicy allows any canonical status to be set from any
// current status. This preserves the manual-correction capability the admin
// dashboard relies on (e.g. reverting an accidental approval).
var PermissiveTransitionPolicy TransitionPolicy = nil

// ForwardOnlyTransitionPolicy is the strict workflow graph. Not enabled by
// default; see SIKAP_STRICT_TRANSITIONS.
var ForwardOnlyTransitionPolicy = TransitionPolicy{
	StatusSubmitted:              {StatusUnderReview, StatusApproved, StatusRejected},
	StatusUnderReview:            {StatusAdditionalInfoRequired, StatusApproved, StatusRejected},
	StatusAdditionalInfoRequired: {StatusUnderReview, StatusApproved, StatusRejected},
	StatusApproved:               {},
	StatusRejected:               {},
}

// statusChangeMessages are the fixed notification bodies per target status.
// Supplied notes are appended by the lifecycle service.
var statusChangeMessages = map[string]string{
	StatusSubmitted:              "Permohonan kerja sama Anda telah diterima dan menunggu verifikasi.",
	StatusUnderReview:            "Permohonan kerja sama Anda sedang dalam proses peninjauan.",
	StatusAdditionalInfoRequired: "Permohonan kerja sama Anda memerlukan kelengkapan data tambahan. Mohon periksa catatan di bawah ini.",
	StatusApproved:               "Selamat! Permohonan kerja sama Anda telah disetujui.",
	StatusRejected:               "Mohon maaf, permohonan kerja sama Anda belum dapat disetujui.",
}

// StatusChangeMessage returns the fixed notification body for a canonical
// status, with notes appended when present.
func StatusChangeMessage(status string, notes *string) string {
	message, ok := statusChangeMessages[status]
	if !ok {
		message = "Status permohonan kerja sama Anda telah diperbarui."
	}
	if notes != nil && strings.TrimSpace(*notes) != "" {
		message = message + "\n\nCatatan: " + strings.TrimSpace(*notes)
	}
	return message
}
