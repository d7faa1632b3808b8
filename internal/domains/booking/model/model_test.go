package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountModel "seatpos/internal/domains/account/model"
	"seatpos/internal/domains/booking/model"
	catalogModel "seatpos/internal/domains/catalog/model"
	orderModel "seatpos/internal/domains/order/model"
	roomModel "seatpos/internal/domains/room/model"
)

func at(day, clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", day+" "+clock, time.UTC)
	if err != nil {
		panic(err)
	}

	return t
}

func TestClassify(t *testing.T) {
	confirmed := model.Booking{ID: "1", BookingDate: "2024-01-01", StartTime: "08:00", EndTime: "10:00", Status: model.StatusConfirmed}

	tests := []struct {
		name    string
		booking model.Booking
		now     time.Time
		want    model.Bucket
	}{
		{
			name:    "pending",
			booking: model.Booking{Status: model.StatusPending},
			now:     at("2024-01-01", "09:00"),
			want:    model.BucketPending,
		},
		{
			name:    "paid",
			booking: model.Booking{Status: model.StatusPaid},
			now:     at("2024-01-01", "09:00"),
			want:    model.BucketPaid,
		},
		{
			name:    "confirmed before end",
			booking: confirmed,
			now:     at("2024-01-01", "09:00"),
			want:    model.BucketOngoing,
		},
		{
			name:    "confirmed exactly at end is still ongoing",
			booking: confirmed,
			now:     at("2024-01-01", "10:00"),
			want:    model.BucketOngoing,
		},
		{
			name:    "confirmed the next day",
			booking: confirmed,
			now:     at("2024-01-02", "09:00"),
			want:    model.BucketHistory,
		},
		{
			name:    "confirmed with seconds and a time part on the date",
			booking: model.Booking{BookingDate: "2024-01-01T00:00:00", EndTime: "10:00:00", Status: model.StatusConfirmed},
			now:     at("2024-01-01", "10:01"),
			want:    model.BucketHistory,
		},
		{
			name:    "canceled",
			booking: model.Booking{Status: model.StatusCanceled},
			now:     at("2024-01-01", "09:00"),
			want:    model.BucketHistory,
		},
		{
			name:    "expired",
			booking: model.Booking{Status: model.StatusExpired},
			now:     at("2024-01-01", "09:00"),
			want:    model.BucketHistory,
		},
		{
			name:    "done",
			booking: model.Booking{Status: model.StatusDone},
			now:     at("2024-01-01", "09:00"),
			want:    model.BucketHistory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.Classify(tt.booking, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := model.Classify(tt.booking, tt.now)
			require.NoError(t, err)
			assert.Equal(t, got, again, "classification is deterministic")
		})
	}
}

func TestClassify_Failures(t *testing.T) {
	_, err := model.Classify(model.Booking{ID: "9", Status: "REFUNDED"}, at("2024-01-01", "09:00"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownStatus))
	assert.Contains(t, err.Error(), "REFUNDED")

	_, err = model.Classify(model.Booking{ID: "9", Status: model.StatusConfirmed, BookingDate: "soon", EndTime: "10:00"}, at("2024-01-01", "09:00"))
	assert.Error(t, err)
}

func TestTotal(t *testing.T) {
	booking := model.Booking{
		Room:    roomModel.Room{Price: 50000},
		Devices: []orderModel.Item{{Price: 15000, Quantity: 2}},
	}

	items := []orderModel.Item{
		{Price: 20000, Quantity: 1},
		{Price: 10000, Quantity: 2},
	}

	assert.EqualValues(t, 120000, model.Total(booking, items))
	assert.EqualValues(t, 80000, model.Total(booking, nil))

	items = append(items, orderModel.Item{Price: 30000, Quantity: 1, Options: []catalogModel.Option{{Price: 5000}}})
	assert.EqualValues(t, 155000, model.Total(booking, items))
}

func TestBooking_Email(t *testing.T) {
	assert.Equal(t, "a@b.vn", model.Booking{Account: &accountModel.Customer{Email: "a@b.vn"}, CustomerEmail: "x@y.vn"}.Email())
	assert.Equal(t, "x@y.vn", model.Booking{CustomerEmail: " x@y.vn "}.Email())
	assert.Empty(t, model.Booking{}.Email())
}
