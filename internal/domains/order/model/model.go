package model

import (
	catalogModel "seatpos/internal/domains/catalog/model"
	gModel "seatpos/shared/model"
	"seatpos/shared/money"
)

const (
	EntityName = "order"

	CacheKeyByBooking = "order:by-booking"
	CacheKeyByRoom    = "order:by-room"
	CacheKeyDetail    = "order:detail"
)

// Status is the state of a sub-order. It moves on its own, constrained by its booking.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusConfirmed Status = "CONFIRMED"
	StatusDoing     Status = "DOING"
	StatusCompleted Status = "COMPLETED"
	StatusDone      Status = "DONE"
	StatusCanceled  Status = "CANCELED"
)

// Completed reports whether the sub-order can no longer change.
func (s Status) Completed() bool {
	return s == StatusCompleted || s == StatusDone || s == StatusCanceled
}

type ItemStatus string

const (
	ItemStatusPending ItemStatus = "PENDING"
	ItemStatusPaid    ItemStatus = "PAID"
)

// Item is a product or device line on a sub-order or booking.
type Item struct {
	ID        gModel.ID             `json:"id"`
	ProductID gModel.ID             `json:"productId,omitempty"`
	Name      string                `json:"name"`
	Price     money.Money           `json:"price"`
	Quantity  int                   `json:"quantity"`
	Options   []catalogModel.Option `json:"options,omitempty"`
	Note      string                `json:"note,omitempty"`
	Duration  int                   `json:"duration,omitempty"`
	Images    []string              `json:"images,omitempty"`
	Status    ItemStatus            `json:"status,omitempty"`
}

// LineTotal is price times quantity plus every option's price. Rental duration is not priced here.
func (i Item) LineTotal() money.Money {
	total := i.Price.Times(i.Quantity)

	for _, option := range i.Options {
		total += option.Price
	}

	return total
}

// Order is a sub-order attached to a booking.
type Order struct {
	ID        gModel.ID `json:"id"`
	BookingID gModel.ID `json:"bookingId,omitempty"`
	RoomID    gModel.ID `json:"roomId,omitempty"`
	Status    Status    `json:"status"`
	Items     []Item    `json:"items,omitempty"`
	Note      string    `json:"note,omitempty"`
}

func (o Order) Total() money.Money {
	var total money.Money

	for _, item := range o.Items {
		total += item.LineTotal()
	}

	return total
}

// Items flattens the items of every order, keeping order.
func Items(orders []Order) []Item {
	items := make([]Item, 0)

	for _, order := range orders {
		items = append(items, order.Items...)
	}

	return items
}

// IDs returns the ids of the orders.
func IDs(orders []Order) []string {
	ids := make([]string, 0, len(orders))

	for _, order := range orders {
		ids = append(ids, order.ID.String())
	}

	return ids
}
