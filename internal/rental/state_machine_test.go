package rental

import (
	"testing"
	"time"
)

func TestCanTransitionAndApply(t *testing.T) {
	if !CanTransition(StatusActive, StatusFinished) {
		t.Fatalf("expected active -> finished allowed")
	}
	if !CanTransition(StatusActive, StatusCanceled) {
		t.Fatalf("expected active -> canceled allowed")
	}
	if CanTransition(StatusFinished, StatusActive) {
		t.Fatalf("expected finished -> active not allowed")
	}
	if CanTransition(StatusCanceled, StatusFinished) {
		t.Fatalf("expected canceled -> finished not allowed")
	}

	r := &Rental{Status: StatusActive}
	now := time.Now()
	if err := ApplyTransition(r, StatusFinished, now); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if r.Status != StatusFinished {
		t.Fatalf("expected status finished, got %s", r.Status)
	}
	if r.EndTime == nil || !r.EndTime.Equal(now) {
		t.Fatalf("expected end time to be set on terminal transition")
	}

	if err := ApplyTransition(r, StatusCanceled, now); err == nil {
		t.Fatalf("expected transition out of terminal state to fail")
	}
}

func TestApplyTransitionKeepsFirstEndTime(t *testing.T) {
	earlier := time.Now().Add(-time.Hour)
	r := &Rental{Status: StatusActive, EndTime: &earlier}
	if err := ApplyTransition(r, StatusCanceled, time.Now()); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if !r.EndTime.Equal(earlier) {
		t.Fatalf("expected existing end time to be preserved")
	}
}
