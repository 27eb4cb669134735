package dto

import (
	"quedee/internal/domains/queue/model"
)

type CreateBookingRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=100"`
	ResourceID   string `json:"resource_id"   validate:"required"`
	ServiceID    string `json:"service_id"    validate:"required"`
	Date         string `json:"date"          validate:"required"`
	Time         string `json:"time"          validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending calling completed cancelled"`
}

type UpdatePaymentRequest struct {
	Status string `json:"status" validate:"required,oneof=unpaid pending_verification paid"`

	// Slip is an opaque payment proof reference. When empty the previously
	// stored slip is retained.
	Slip string `json:"slip" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name"`
	ResourceID    string `json:"resource_id"`
	ServiceID     string `json:"service_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	TicketNumber  string `json:"ticket_number"`
	Timestamp     int64  `json:"timestamp"`
	PaymentStatus string `json:"payment_status"`
	PaymentSlip   string `json:"payment_slip,omitempty"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.CustomerName = booking.CustomerName
	r.ResourceID = booking.ResourceID
	r.ServiceID = booking.ServiceID
	r.Date = booking.Date
	r.Time = booking.Time
	r.Status = string(booking.Status)
	r.TicketNumber = booking.TicketNumber
	r.Timestamp = booking.Timestamp
	r.PaymentStatus = string(booking.PaymentStatus)
	r.PaymentSlip = booking.PaymentSlip
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking) {
	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}

	r.Total = len(bookings)
}

type ServingResponse struct {
	// TicketNumber is empty when nobody is being called.
	TicketNumber string `json:"ticket_number,omitempty"`
	Serving      bool   `json:"serving"`
}

type PositionResponse struct {
	TicketNumber string `json:"ticket_number"`
	// Ahead counts still-pending bookings created before this one.
	Ahead int `json:"ahead"`
}

type StatsResponse struct {
	Pending   int `json:"pending"`
	Calling   int `json:"calling"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`

	Payments struct {
		Unpaid              int `json:"unpaid"`
		PendingVerification int `json:"pending_verification"`
		Paid                int `json:"paid"`
	} `json:"payments"`
}
