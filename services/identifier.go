package services

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TrackingNumberPattern is the format contract for generated tracking
// numbers: SIKAP-YYYYMM-NNNN. The public tracking page validates input
// against the same pattern before attempting a lookup.
var TrackingNumberPattern = regexp.MustCompile(`^SIKAP-\d{6}-\d{4}$`)

// ErrTrackingNumberExhausted is returned when no unique tracking number was
// found within the configured attempt bound.
var ErrTrackingNumberExhausted = errors.New("failed to generate a unique tracking number")

const defaultMaxAttempts = 10

// TrackingNumberGenerator produces tracking numbers of the form
// SIKAP-YYYYMM-NNNN. Uniqueness is achieved by generate-check-retry against
// the caller-supplied exists func, bounded by MaxAttempts. The clock and the
// random source are injectable so the exhaustion case is testable.
type TrackingNumberGenerator struct {
	MaxAttempts int
	Now         func() time.Time
	RandDigits  func() int // returns a value in [0, 10000)
}

func NewTrackingNumberGenerator() *TrackingNumberGenerator {
	return &TrackingNumberGenerator{
		MaxAttempts: defaultMaxAttempts,
		Now:         time.Now,
		RandDigits:  secureRandDigits,
	}
}

func secureRandDigits() int {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is unrecoverable for token purposes; fall back
		// to a time-derived value for the non-secret running number only.
		return int(time.Now().UnixNano() % 10000)
	}
	return int(binary.BigEndian.Uint64(buf[:]) % 10000)
}

// Generate returns a tracking number that the exists func reported as
// unused, or ErrTrackingNumberExhausted after MaxAttempts collisions.
func (g *TrackingNumberGenerator) Generate(exists func(trackingNumber string) (bool, error)) (string, error) {
	maxAttempts := g.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	yearMonth := g.Now().Format("200601")

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := fmt.Sprintf("SIKAP-%s-%04d", yearMonth, g.RandDigits())

		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check tracking number uniqueness: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", ErrTrackingNumberExhausted
}

// GeneratePublicToken returns an opaque bearer credential for unauthenticated
// access to a single application. Entropy makes pre-write uniqueness checks
// unnecessary; the unique column constraint is the backstop.
func GeneratePublicToken() string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return token + strings.ReplaceAll(uuid.New().String(), "-", "")
}
