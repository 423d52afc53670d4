package services

import (
	"errors"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
}

func TestGenerateTrackingNumberMatchesFormatContract(t *testing.T) {
	gen := &TrackingNumberGenerator{
		MaxAttempts: 10,
		Now:         fixedClock,
		RandDigits:  func() int { return 7 },
	}

	number, err := gen.Generate(func(string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if number != "SIKAP-202501-0007" {
		t.Fatalf("expected SIKAP-202501-0007, got %s", number)
	}
	if !TrackingNumberPattern.MatchString(number) {
		t.Fatalf("generated number %s does not match the format contract", number)
	}
}

func TestGenerateTrackingNumberRetriesOnCollision(t *testing.T) {
	values := []int{1, 1, 2}
	gen := &TrackingNumberGenerator{
		MaxAttempts: 10,
		Now:         fixedClock,
		RandDigits: func() int {
			v := values[0]
			values = values[1:]
			return v
		},
	}

	checked := []string{}
	number, err := gen.Generate(func(candidate string) (bool, error) {
		checked = append(checked, candidate)
		return candidate == "SIKAP-202501-0001", nil
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if number != "SIKAP-202501-0002" {
		t.Fatalf("expected the first free number, got %s", number)
	}
	if len(checked) != 3 {
		t.Fatalf("expected 3 uniqueness checks, got %d", len(checked))
	}
}

func TestGenerateTrackingNumberExhaustsAfterBound(t *testing.T) {
	attempts := 0
	gen := &TrackingNumberGenerator{
		MaxAttempts: 10,
		Now:         fixedClock,
		RandDigits:  func() int { return 1234 },
	}

	_, err := gen.Generate(func(string) (bool, error) {
		attempts++
		return true, nil
	})

	if !errors.Is(err, ErrTrackingNumberExhausted) {
		t.Fatalf("expected ErrTrackingNumberExhausted, got %v", err)
	}
	if attempts != 10 {
		t.Fatalf("expected exactly 10 attempts, got %d", attempts)
	}
}

func TestGenerateTrackingNumberPropagatesCheckError(t *testing.T) {
	gen := NewTrackingNumberGenerator()

	wantErr := errors.New("connection lost")
	_, err := gen.Generate(func(string) (bool, error) { return false, wantErr })

	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped check error, got %v", err)
	}
}

func TestGeneratePublicTokenIsOpaqueAndDistinct(t *testing.T) {
	first := GeneratePublicToken()
	second := GeneratePublicToken()

	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	if first == second {
		t.Fatal("expected distinct tokens on consecutive calls")
	}
}
