package dto

import "strings"

// AddItemRequest adds one product or device line to the booking's current sub-order.
type AddItemRequest struct {
	BookingID string      `json:"bookingId" validate:"required"`
	Item      ItemRequest `json:"item"`
}

type ItemRequest struct {
	ProductID string   `json:"productId" validate:"required"`
	Quantity  int      `json:"quantity"  validate:"required,min=1"`
	Duration  int      `json:"duration"  validate:"omitempty,min=1"`
	Options   []string `json:"options"`
	Note      string   `json:"note"      validate:"max=255"`
}

// Normalize fills the defaults the remote service expects: duration 1 for items that are not
// rented and an empty option list instead of null.
func (r *AddItemRequest) Normalize() {
	r.Item.Note = strings.TrimSpace(r.Item.Note)

	if r.Item.Duration == 0 {
		r.Item.Duration = 1
	}

	if r.Item.Options == nil {
		r.Item.Options = []string{}
	}
}
