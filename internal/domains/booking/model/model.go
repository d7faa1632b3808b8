package model

import (
	"errors"
	"fmt"
	accountModel "seatpos/internal/domains/account/model"
	orderModel "seatpos/internal/domains/order/model"
	roomModel "seatpos/internal/domains/room/model"
	gModel "seatpos/shared/model"
	"seatpos/shared/money"
	"seatpos/shared/timezone"
	"strings"
	"time"
)

const (
	EntityName = "booking"

	// CacheKeyList prefixes every search mode list, so one invalidation covers them all.
	CacheKeyList             = "booking:list"
	CacheKeyListByDate       = "booking:list:by-date"
	CacheKeyListByEmail      = "booking:list:by-email"
	CacheKeyListTodayByEmail = "booking:list:today-by-email"
	CacheKeyDetail           = "booking:detail"
)

var ErrUnknownStatus = errors.New("unknown booking status")

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusConfirmed Status = "CONFIRMED"
	StatusDone      Status = "DONE"
	StatusCanceled  Status = "CANCELED"
	StatusExpired   Status = "EXPIRED"
)

// Bucket is the tab a booking is shown under.
type Bucket string

const (
	BucketPending Bucket = "PENDING"
	BucketPaid    Bucket = "PAID"
	BucketOngoing Bucket = "ONGOING"
	BucketHistory Bucket = "HISTORY"
)

// Buckets lists every bucket in display order.
var Buckets = []Bucket{BucketPending, BucketPaid, BucketOngoing, BucketHistory}

type Booking struct {
	ID            gModel.ID              `json:"id"`
	Code          string                 `json:"code,omitempty"`
	Room          roomModel.Room         `json:"room"`
	BookingDate   string                 `json:"bookingDate"`
	StartTime     string                 `json:"startTime"`
	EndTime       string                 `json:"endTime"`
	Status        Status                 `json:"status"`
	Account       *accountModel.Customer `json:"account,omitempty"`
	CustomerEmail string                 `json:"customerEmail,omitempty"`
	StaffEmail    string                 `json:"staffEmail,omitempty"`
	Devices       []orderModel.Item      `json:"devices,omitempty"`
}

// Email is the customer account email, or the raw email the booking was made with.
func (b Booking) Email() string {
	if b.Account != nil && b.Account.Email != "" {
		return b.Account.Email
	}

	return strings.TrimSpace(b.CustomerEmail)
}

// End is the instant the booking ends, in loc.
func (b Booking) End(loc *time.Location) (time.Time, error) {
	end, err := timezone.Combine(b.BookingDate, b.EndTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("booking %s end: %w", b.ID, err)
	}

	return end, nil
}

// Classify places the booking in exactly one bucket. A confirmed booking stays ONGOING up to
// and including its end instant. DONE bookings are history. Unknown statuses are an error.
func Classify(b Booking, now time.Time) (Bucket, error) {
	switch b.Status {
	case StatusPending:
		return BucketPending, nil
	case StatusPaid:
		return BucketPaid, nil
	case StatusConfirmed:
		end, err := b.End(now.Location())
		if err != nil {
			return "", err
		}

		if !end.Before(now) {
			return BucketOngoing, nil
		}

		return BucketHistory, nil
	case StatusCanceled, StatusExpired, StatusDone:
		return BucketHistory, nil
	default:
		return "", fmt.Errorf("booking %s: %w %q", b.ID, ErrUnknownStatus, b.Status)
	}
}

// Total is the room price plus every sub-order item and every device item line total.
func Total(b Booking, items []orderModel.Item) money.Money {
	total := b.Room.Price

	for _, item := range items {
		total += item.LineTotal()
	}

	for _, device := range b.Devices {
		total += device.LineTotal()
	}

	return total
}
