package car

import (
	"errors"
	"testing"
)

func TestCheckManualStatusChange(t *testing.T) {
	cases := []struct {
		name    string
		current string
		next    string
		wantErr error
	}{
		{"available to maintenance ok", StatusAvailable, StatusMaintenance, nil},
		{"maintenance to available ok", StatusMaintenance, StatusAvailable, nil},
		{"no status change on available car ok", StatusAvailable, "", nil},
		{"manual rented rejected", StatusAvailable, StatusRented, ErrStatusRentedManual},
		{"rented car cannot change status", StatusRented, StatusMaintenance, ErrCarCurrentlyRented},
		{"rented car cannot change anything", StatusRented, "", ErrCarCurrentlyRented},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckManualStatusChange(tc.current, tc.next)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CheckManualStatusChange(%q, %q) = %v, want %v", tc.current, tc.next, err, tc.wantErr)
			}
		})
	}
}
