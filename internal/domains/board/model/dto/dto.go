package dto

import (
	bookingDto "seatpos/internal/domains/booking/model/dto"
	"seatpos/shared/money"
)

// PayResponse reports the payment and whether every sub-order item was settled by it.
type PayResponse struct {
	bookingDto.PaymentResponse
	Settled bool `json:"settled"`
}

// QRPayload is the content encoded in the payment QR image.
type QRPayload struct {
	Amount    money.Money `json:"amount"`
	BookingID string      `json:"bookingId"`
}
