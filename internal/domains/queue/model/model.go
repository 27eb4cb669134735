package model

const (
	EntityBooking  = "booking"
	EntityResource = "resource"
	EntityOffering = "service"
)

// ResourceAny is the sentinel resource id meaning the customer has no
// preference and takes whoever is free.
const ResourceAny = "any"

// DefaultTicketPrefix is used when the booking references a service id that
// is not in the catalog.
const DefaultTicketPrefix = "B"

type ResourceType string

const (
	ResourceTypeStaff ResourceType = "staff"
	ResourceTypeField ResourceType = "field"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusCalling   BookingStatus = "calling"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCalling, StatusCompleted, StatusCancelled:
		return true
	}

	return false
}

// Terminal reports whether no further status transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type PaymentStatus string

const (
	PaymentUnpaid              PaymentStatus = "unpaid"
	PaymentPendingVerification PaymentStatus = "pending_verification"
	PaymentPaid                PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPendingVerification, PaymentPaid:
		return true
	}

	return false
}

// Resource is a servable unit: a staff member or a physical field. The
// catalog is seeded at startup; only the availability flag mutates.
type Resource struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ResourceType `json:"type"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	IsAvailable bool         `json:"is_available"`
}

// Offering is a purchasable service from the immutable seeded catalog.
type Offering struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Discount string `json:"discount,omitempty"`
	Icon     string `json:"icon"`
}

// Booking is one customer's reservation. The ticket number is assigned once
// at creation and never changes; status and payment status evolve through
// the service operations.
type Booking struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customer_name"`
	ResourceID   string        `json:"resource_id"`
	ServiceID    string        `json:"service_id"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Status       BookingStatus `json:"status"`
	TicketNumber string        `json:"ticket_number"`

	// Timestamp is wall clock in milliseconds, strictly increasing in
	// creation order. Queue position is derived from it, not from slice
	// order.
	Timestamp int64 `json:"timestamp"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentSlip   string        `json:"payment_slip,omitempty"`
}

// Profile is the static descriptor of the operating business.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Logo   string `json:"logo"`
	Status string `json:"status"`
}

// Snapshot is the persisted state layout: bookings plus resources. Offerings
// and the profile are static configuration and reload from the seed catalog.
type Snapshot struct {
	Bookings  []Booking  `json:"bookings"`
	Resources []Resource `json:"resources"`
}
