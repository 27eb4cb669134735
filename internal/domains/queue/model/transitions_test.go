package model

import "testing"

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from  BookingStatus
		to    BookingStatus
		valid bool
	}{
		{StatusPending, StatusCalling, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusCalling, StatusCompleted, true},
		{StatusCalling, StatusCancelled, true},
		{StatusCalling, StatusPending, false},
		{StatusCompleted, StatusCalling, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusCalling, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tt := range cases {
		if got := ValidTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("ValidTransition(%q, %q)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusCalling, StatusCompleted, StatusCancelled} {
		if !status.Valid() {
			t.Errorf("expected %q to be valid", status)
		}
	}

	if BookingStatus("waiting").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() || StatusCalling.Terminal() {
		t.Error("active statuses must not be terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCancelled.Terminal() {
		t.Error("completed and cancelled must be terminal")
	}
}

func TestPaymentStatusValid(t *testing.T) {
	for _, status := range []PaymentStatus{PaymentUnpaid, PaymentPendingVerification, PaymentPaid} {
		if !status.Valid() {
			t.Errorf("expected %q to be valid", status)
		}
	}

	if PaymentStatus("refunded").Valid() {
		t.Error("expected unknown payment status to be invalid")
	}
}
