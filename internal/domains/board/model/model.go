package model

import (
	"fmt"
	bookingModel "seatpos/internal/domains/booking/model"
	orderModel "seatpos/internal/domains/order/model"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/shared/money"
	"seatpos/shared/validator"
	"strings"
	"time"
)

// Mode selects which booking list the board shows. Modes never share results.
type Mode string

const (
	ModeByDate       Mode = "BY_DATE"
	ModeByEmail      Mode = "BY_EMAIL"
	ModeTodayByEmail Mode = "TODAY_BY_EMAIL"
)

type Search struct {
	Mode  Mode   `json:"mode"`
	Date  string `json:"date,omitempty"`
	Email string `json:"email,omitempty"`
}

// Normalize drops the field the mode does not use.
func (s *Search) Normalize() {
	s.Mode = Mode(strings.ToUpper(strings.TrimSpace(string(s.Mode))))
	s.Date = strings.TrimSpace(s.Date)
	s.Email = strings.TrimSpace(s.Email)

	switch s.Mode {
	case ModeByDate:
		s.Email = constant.Empty
	case ModeByEmail, ModeTodayByEmail:
		s.Date = constant.Empty
	}
}

func (s Search) Validate() error {
	switch s.Mode {
	case ModeByDate:
		return validator.ValidateVar(s.Date, "required,day") //nolint:wrapcheck
	case ModeByEmail, ModeTodayByEmail:
		if !validator.IsMail(s.Email) {
			return failure.BadRequestFromString("email is not a valid email address") //nolint:wrapcheck
		}

		return nil
	default:
		msg := fmt.Sprintf("mode must be one of %s %s %s", ModeByDate, ModeByEmail, ModeTodayByEmail)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}
}

// Action is something staff can do to a booking from the board.
type Action string

const (
	ActionCancel        Action = "CANCEL"
	ActionPay           Action = "PAY"
	ActionAddItem       Action = "ADD_ITEM"
	ActionDeleteItem    Action = "DELETE_ITEM"
	ActionCompleteOrder Action = "COMPLETE_ORDER"
)

var affordances = map[bookingModel.Bucket][]Action{
	bookingModel.BucketPending: {ActionCancel, ActionPay},
	bookingModel.BucketPaid:    {ActionAddItem, ActionCancel, ActionPay},
	bookingModel.BucketOngoing: {ActionCompleteOrder, ActionDeleteItem},
	bookingModel.BucketHistory: {},
}

// Actions lists what the bucket allows. History is read-only.
func Actions(bucket bookingModel.Bucket) []Action {
	return append([]Action{}, affordances[bucket]...)
}

func Allowed(bucket bookingModel.Bucket, action Action) bool {
	for _, a := range affordances[bucket] {
		if a == action {
			return true
		}
	}

	return false
}

// HasOrders reports whether sub-orders can exist for the booking. They only live while the
// booking is active, so canceled and expired bookings are not asked for them.
func HasOrders(b bookingModel.Booking) bool {
	return b.Status != bookingModel.StatusCanceled && b.Status != bookingModel.StatusExpired
}

type Card struct {
	Booking bookingModel.Booking `json:"booking"`
	Bucket  bookingModel.Bucket  `json:"bucket"`
	Total   money.Money          `json:"total"`
	Actions []Action             `json:"actions"`
}

func NewCard(b bookingModel.Booking, now time.Time, orders []orderModel.Order) (Card, error) {
	bucket, err := bookingModel.Classify(b, now)
	if err != nil {
		return Card{}, err //nolint:wrapcheck
	}

	return Card{
		Booking: b,
		Bucket:  bucket,
		Total:   bookingModel.Total(b, orderModel.Items(orders)),
		Actions: Actions(bucket),
	}, nil
}

// Board is one consistent view of the active search. Every bucket is present, possibly empty.
type Board struct {
	Search  Search                         `json:"search"`
	Now     time.Time                      `json:"now"`
	Buckets map[bookingModel.Bucket][]Card `json:"buckets"`
}

func NewBoard(search Search, now time.Time, cards []Card) Board {
	board := Board{
		Search:  search,
		Now:     now,
		Buckets: make(map[bookingModel.Bucket][]Card, len(bookingModel.Buckets)),
	}

	for _, bucket := range bookingModel.Buckets {
		board.Buckets[bucket] = []Card{}
	}

	for _, card := range cards {
		board.Buckets[card.Bucket] = append(board.Buckets[card.Bucket], card)
	}

	return board
}

// Detail is a card with the sub-orders its total was computed from.
type Detail struct {
	Card
	Now    time.Time          `json:"now"`
	Orders []orderModel.Order `json:"orders"`
	Items  []orderModel.Item  `json:"items"`
}
