package dto

import (
	"seatpos/shared/constant"
	"strings"
)

const (
	PaymentMethodCash = "CASH"
	PaymentMethodCard = "CARD"
)

// BookSeatRequest books a room for one window on one day. Email is optional.
type BookSeatRequest struct {
	RoomID string `json:"roomId" validate:"required"`
	Date   string `json:"date"   validate:"required,day"`
	Start  string `json:"start"  validate:"required,clock"`
	End    string `json:"end"    validate:"required,clock"`
	Email  string `json:"email"  validate:"omitempty,mail"`
}

func (r *BookSeatRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// BookSeatPayload is the body the remote service takes. Email is null when no customer is given.
type BookSeatPayload struct {
	BookingDate string  `json:"bookingDate"`
	StartTime   string  `json:"startTime"`
	Duration    int     `json:"duration"`
	Email       *string `json:"email"`
}

func (r *BookSeatRequest) ToPayload(startTime string, duration int) BookSeatPayload {
	payload := BookSeatPayload{
		BookingDate: r.Date,
		StartTime:   startTime,
		Duration:    duration,
	}

	if r.Email != constant.Empty {
		email := r.Email
		payload.Email = &email
	}

	return payload
}

type PaymentRequest struct {
	PaymentMethod   string `json:"paymentMethod"   validate:"required,oneof=CASH CARD"`
	UsedMemberPoint int64  `json:"usedMemberPoint" validate:"min=0"`
	Cash            int64  `json:"cash"            validate:"min=0"`
}

func (r *PaymentRequest) Normalize() {
	r.PaymentMethod = strings.ToUpper(strings.TrimSpace(r.PaymentMethod))

	if r.PaymentMethod == PaymentMethodCard {
		r.Cash = 0
		r.UsedMemberPoint = 0
	}
}

// PaymentResponse carries the QR image the remote service returns for card payments, base64 encoded.
type PaymentResponse struct {
	QRCode string `json:"qrCode,omitempty"`
}

type PaymentIntentRequest struct {
	Amount    int64  `json:"amount"`
	BookingID string `json:"bookingId"`
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret,omitempty"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	QRCode          string `json:"qrCode,omitempty"`
}
