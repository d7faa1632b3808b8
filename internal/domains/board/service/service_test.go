package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"seatpos/config"
	"seatpos/infras/otel/mocks"
	accountMocks "seatpos/internal/domains/account/mocks"
	accountModel "seatpos/internal/domains/account/model"
	accountService "seatpos/internal/domains/account/service"
	"seatpos/internal/domains/board/model"
	"seatpos/internal/domains/board/service"
	bookingMocks "seatpos/internal/domains/booking/mocks"
	bookingModel "seatpos/internal/domains/booking/model"
	bookingDto "seatpos/internal/domains/booking/model/dto"
	bookingService "seatpos/internal/domains/booking/service"
	catalogMocks "seatpos/internal/domains/catalog/mocks"
	catalogModel "seatpos/internal/domains/catalog/model"
	catalogService "seatpos/internal/domains/catalog/service"
	orderMocks "seatpos/internal/domains/order/mocks"
	orderModel "seatpos/internal/domains/order/model"
	orderDto "seatpos/internal/domains/order/model/dto"
	orderService "seatpos/internal/domains/order/service"
	roomMocks "seatpos/internal/domains/room/mocks"
	roomModel "seatpos/internal/domains/room/model"
	roomService "seatpos/internal/domains/room/service"
	"seatpos/shared/failure"
	gModel "seatpos/shared/model"
	queryMocks "seatpos/shared/query/mocks"
	"seatpos/shared/timezone"
)

type fixture struct {
	board    service.Board
	bookings *bookingMocks.MockBooking
	orders   *orderMocks.MockOrder
	accounts *accountMocks.MockAccount
	catalog  *catalogMocks.MockCatalog
	query    *queryMocks.Query
}

// newFixture builds the board on real services backed by mocked repositories, with the
// server clock reading now.
func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Booking.OpeningHour = 6
	cfg.App.Booking.ClosingHour = 22
	cfg.App.Booking.MinDurationMinutes = 30

	f := &fixture{
		bookings: bookingMocks.NewMockBooking(ctrl),
		orders:   orderMocks.NewMockOrder(ctrl),
		accounts: accountMocks.NewMockAccount(ctrl),
		catalog:  catalogMocks.NewMockCatalog(ctrl),
		query:    queryMocks.NewQuery(),
	}

	f.accounts.EXPECT().ServerTime(gomock.Any()).Return(now, nil).AnyTimes()

	ot := mocks.NewOtel()
	rooms := roomService.New(roomMocks.NewMockRoom(ctrl), cfg, f.query, ot)

	f.board = service.New(
		bookingService.New(f.bookings, rooms, cfg, f.query, ot),
		orderService.New(f.orders, cfg, f.query, ot),
		accountService.New(f.accounts, cfg, f.query, ot),
		catalogService.New(f.catalog, cfg, f.query, ot),
		f.query,
		ot,
	)

	return f
}

func at(day, clock string) time.Time {
	t, err := timezone.Combine(day, clock, timezone.GetLocation())
	if err != nil {
		panic(err)
	}

	return t
}

func booking(id string, status bookingModel.Status) bookingModel.Booking {
	return bookingModel.Booking{
		ID:          gModel.ID(id),
		Room:        roomModel.Room{ID: "4", Name: "Meeting room", Price: 50000},
		BookingDate: "2024-01-01",
		StartTime:   "08:00:00",
		EndTime:     "10:00:00",
		Status:      status,
	}
}

func TestBoard_SnapshotTotals(t *testing.T) {
	f := newFixture(t, at("2024-01-01", "09:00"))

	f.bookings.EXPECT().GetByDate(gomock.Any(), "2024-01-01").Return([]bookingModel.Booking{booking("10", bookingModel.StatusPaid)}, nil)
	f.orders.EXPECT().GetByBooking(gomock.Any(), "10").Return([]orderModel.Order{{ID: "1"}}, nil)
	f.orders.EXPECT().Get(gomock.Any(), "1").Return(orderModel.Order{
		ID:    "1",
		Items: []orderModel.Item{{ID: "5", Price: 20000, Quantity: 2}},
	}, nil)

	board, err := f.board.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.Search{Mode: model.ModeByDate, Date: "2024-01-01"}, board.Search)
	assert.Len(t, board.Buckets, 4)
	require.Len(t, board.Buckets[bookingModel.BucketPaid], 1)

	card := board.Buckets[bookingModel.BucketPaid][0]
	assert.EqualValues(t, 90000, card.Total)
	assert.Equal(t, []model.Action{model.ActionAddItem, model.ActionCancel, model.ActionPay}, card.Actions)
	assert.Empty(t, board.Buckets[bookingModel.BucketHistory])
}

func TestBoard_ClassifiesWithServerClock(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		bucket bookingModel.Bucket
	}{
		{name: "before the end", now: at("2024-01-01", "09:00"), bucket: bookingModel.BucketOngoing},
		{name: "at the end", now: at("2024-01-01", "10:00"), bucket: bookingModel.BucketOngoing},
		{name: "next day", now: at("2024-01-02", "00:00"), bucket: bookingModel.BucketHistory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.now)

			confirmed := booking("10", bookingModel.StatusConfirmed)

			f.bookings.EXPECT().Get(gomock.Any(), "10").Return(confirmed, nil)
			f.orders.EXPECT().GetByBooking(gomock.Any(), "10").Return([]orderModel.Order{}, nil)

			detail, err := f.board.Detail(context.Background(), "10")
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, detail.Bucket)
			assert.EqualValues(t, 50000, detail.Total)
			assert.Empty(t, detail.Items)
		})
	}
}

func TestBoard_UnknownStatusFails(t *testing.T) {
	f := newFixture(t, at("2024-01-01", "09:00"))

	f.bookings.EXPECT().GetByDate(gomock.Any(), "2024-01-01").Return([]bookingModel.Booking{booking("10", "ARCHIVED")}, nil)
	f.orders.EXPECT().GetByBooking(gomock.Any(), "10").Return([]orderModel.Order{}, nil)

	_, err := f.board.Snapshot(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, bookingModel.ErrUnknownStatus))
}

func TestBoard_TotalsAreAllOrNothing(t *testing.T) {
	f := newFixture(t, at("2024-01-01", "09:00"))

	f.bookings.EXPECT().GetByDate(gomock.Any(), "2024-01-01").Return([]bookingModel.Booking{booking("10", bookingModel.StatusPaid)}, nil)
	f.orders.EXPECT().GetByBooking(gomock.Any(), "10").Return([]orderModel.Order{{ID: "1"}, {ID: "2"}}, nil)
	f.orders.EXPECT().Get(gomock.Any(), "1").Return(orderModel.Order{ID: "1", Items: []orderModel.Item{{Price: 20000, Quantity: 1}}}, nil).AnyTimes()
	f.orders.EXPECT().Get(gomock.Any(), "2").Return(orderModel.Order{}, failure.Timeout("get order"))

	board, err := f.board.Snapshot(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, failure.GetCode(err))
	assert.Nil(t, board.Buckets)
}

func TestBoard_CanceledBookingsSkipOrders(t *testing.T) {
	f := newFixture(t, at("2024-01-01", "09:00"))

	f.bookings.EXPECT().GetByDate(gomock.Any(), "2024-01-01").Return([]bookingModel.Booking{booking("10", bookingModel.StatusCanceled)}, nil)

	board, err := f.board.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Buckets[bookingModel.BucketHistory], 1)
	assert.Empty(t, board.Buckets[bookingModel.BucketHistory][0].Actions)
}

func TestBoard_SetMode(t *testing.T) {
	f := newFixture(t, at("2024-01-01", "09:00"))

	tests := []struct {
		name    string
		search  model.Search
		want    model.Search
		wantErr bool
	}{
		{
			name:   "by date drops the email",
			search: model.Search{Mode: "by_date", Date: "2024-01-05", Email: "guest@cafe.vn"},
			want:   model.Search{Mode: model.ModeByDate, Date: "2024-01-05"},
		},
		{
			name:   "by email drops the date",
			search: model.Search{Mode: model.ModeByEmail, Date: "2024-01-05", Email: " guest@cafe.vn "},
			want:   model.Search{Mode: model.ModeByEmail, Email: "guest@cafe.vn"},
		},
		{name: "bad date", search: model.Search{Mode: model.ModeByDate, Date: "05/01/2024"}, wantErr: true},
		{name: "bad email", search: model.Search{Mode: model.ModeTodayByEmail, Email: "guest"}, wantErr: true},
		{name: "unknown mode", search: model.Search{Mode: "BY_ROOM"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.board.SetMode(context.Background(), tt.search)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, f.board.Search(context.Background()))
		})
	}
}

func TestBoard_ModesDoNotLeak(t *testing.T) {
	f := newFixture(t, at("2024-01-01", "09:00"))
	ctx := context.Background()

	byDate := booking("10", bookingModel.StatusCanceled)
	byEmail := booking("20", bookingModel.StatusCanceled)

	f.bookings.EXPECT().GetByDate(gomock.Any(), "2024-01-01").Return([]bookingModel.Booking{byDate}, nil).Times(2)
	f.bookings.EXPECT().GetByEmail(gomock.Any(), "guest@cafe.vn").Return([]bookingModel.Booking{byEmail}, nil)

	ids := func(board model.Board) []string {
		res := make([]string, 0)
		for _, bucket := range bookingModel.Buckets {
			for _, card := range board.Buckets[bucket] {
				res = append(res, card.Booking.ID.String())
			}
		}

		return res
	}

	_, err := f.board.SetMode(ctx, model.Search{Mode: model.ModeByDate, Date: "2024-01-01"})
	require.NoError(t, err)

	board, err := f.board.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"10"}, ids(board))

	_, err = f.board.SetMode(ctx, model.Search{Mode: model.ModeByEmail, Email: "guest@cafe.vn"})
	require.NoError(t, err)

	board, err = f.board.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"20"}, ids(board))
	assert.Equal(t, model.ModeByEmail, board.Search.Mode)

	_, err = f.board.SetMode(ctx, model.Search{Mode: model.ModeByDate, Date: "2024-01-01"})
	require.NoError(t, err)

	board, err = f.board.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"10"}, ids(board))
}

func TestBoard_SnapshotDiscardedWhenModeChanges(t *testing.T) {
	f := newFixture(t, at("2024-01-01", "09:00"))
	ctx := context.Background()

	_, err := f.board.SetMode(ctx, model.Search{Mode: model.ModeByDate, Date: "2024-01-01"})
	require.NoError(t, err)

	f.bookings.EXPECT().
		GetByDate(gomock.Any(), "2024-01-01").
		DoAndReturn(func(ctx context.Context, _ string) ([]bookingModel.Booking, error) {
			// staff switches to an email search while the date list is loading
			_, err := f.board.SetMode(ctx, model.Search{Mode: model.ModeByEmail, Email: "guest@cafe.vn"})
			require.NoError(t, err)

			return []bookingModel.Booking{booking("10", bookingModel.StatusCanceled)}, nil
		})
	f.bookings.EXPECT().GetByEmail(gomock.Any(), "guest@cafe.vn").Return([]bookingModel.Booking{}, nil)

	board, err := f.board.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ModeByEmail, board.Search.Mode)

	for _, bucket := range bookingModel.Buckets {
		assert.Empty(t, board.Buckets[bucket])
	}
}

func TestBoard_Reset(t *testing.T) {
	f := newFixture(t, at("2024-03-04", "09:00"))
	ctx := context.Background()

	_, err := f.board.SetMode(ctx, model.Search{Mode: model.ModeByEmail, Email: "guest@cafe.vn"})
	require.NoError(t, err)

	f.board.Reset()

	assert.Equal(t, model.Search{Mode: model.ModeByDate, Date: "2024-03-04"}, f.board.Search(ctx))
}

func TestBoard_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		status    bookingModel.Status
		setupMock func(f *fixture)
		wantCode  int
		wantKeys  []string
	}{
		{
			name:   "pending",
			status: bookingModel.StatusPending,
			setupMock: func(f *fixture) {
				f.bookings.EXPECT().Cancel(gomock.Any(), "10").Return(nil)
			},
			wantKeys: []string{"booking:detail:10", bookingModel.CacheKeyList, "booking:detail:10", roomModel.CacheKeySlots, roomModel.CacheKeyWithStatus},
		},
		{
			name:      "history is read-only",
			status:    bookingModel.StatusCanceled,
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusConflict,
			wantKeys:  []string{"booking:detail:10"},
		},
		{
			name:   "remote rejection changes nothing",
			status: bookingModel.StatusPaid,
			setupMock: func(f *fixture) {
				f.bookings.EXPECT().Cancel(gomock.Any(), "10").Return(failure.Remote(http.StatusBadRequest, "Booking cannot be canceled"))
			},
			wantCode: http.StatusBadRequest,
			wantKeys: []string{"booking:detail:10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, at("2024-01-01", "09:00"))

			f.bookings.EXPECT().Get(gomock.Any(), "10").Return(booking("10", tt.status), nil)
			tt.setupMock(f)

			err := f.board.Cancel(context.Background(), "10")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantKeys, f.query.Snapshot())
		})
	}
}

func TestBoard_Pay(t *testing.T) {
	member := booking("10", bookingModel.StatusPaid)
	member.Account = &accountModel.Customer{ID: "3", Email: "guest@cafe.vn", MemberPoint: 100}

	tests := []struct {
		name        string
		booking     bookingModel.Booking
		req         bookingDto.PaymentRequest
		setupMock   func(f *fixture)
		wantCode    int
		wantSettled bool
	}{
		{
			name:    "aggregate payment settles every item",
			booking: member,
			req:     bookingDto.PaymentRequest{PaymentMethod: "cash", UsedMemberPoint: 100, Cash: 50000},
			setupMock: func(f *fixture) {
				f.accounts.EXPECT().GetCustomer(gomock.Any(), "guest@cafe.vn").Return(accountModel.Customer{ID: "3", MemberPoint: 100}, nil)
				f.bookings.EXPECT().
					Pay(gomock.Any(), "10", bookingDto.PaymentRequest{PaymentMethod: bookingDto.PaymentMethodCash, UsedMemberPoint: 100, Cash: 50000}).
					Return(bookingDto.PaymentResponse{}, nil)
				f.orders.EXPECT().GetByBooking(gomock.Any(), "10").Return([]orderModel.Order{{ID: "1"}}, nil)
				f.orders.EXPECT().Get(gomock.Any(), "1").Return(orderModel.Order{
					ID:    "1",
					Items: []orderModel.Item{{ID: "5", Price: 20000, Quantity: 2, Status: orderModel.ItemStatusPaid}},
				}, nil)
			},
			wantSettled: true,
		},
		{
			name:    "item left pending is reported",
			booking: member,
			req:     bookingDto.PaymentRequest{PaymentMethod: bookingDto.PaymentMethodCard},
			setupMock: func(f *fixture) {
				f.bookings.EXPECT().Pay(gomock.Any(), "10", gomock.Any()).Return(bookingDto.PaymentResponse{QRCode: "aGVsbG8="}, nil)
				f.orders.EXPECT().GetByBooking(gomock.Any(), "10").Return([]orderModel.Order{{ID: "1"}}, nil)
				f.orders.EXPECT().Get(gomock.Any(), "1").Return(orderModel.Order{
					ID:    "1",
					Items: []orderModel.Item{{ID: "5", Price: 20000, Quantity: 2, Status: orderModel.ItemStatusPending}},
				}, nil)
			},
			wantSettled: false,
		},
		{
			name:    "pending booking payment",
			booking: booking("10", bookingModel.StatusPending),
			req:     bookingDto.PaymentRequest{PaymentMethod: bookingDto.PaymentMethodCash, Cash: 50000},
			setupMock: func(f *fixture) {
				f.bookings.EXPECT().Pay(gomock.Any(), "10", gomock.Any()).Return(bookingDto.PaymentResponse{}, nil)
			},
			wantSettled: true,
		},
		{
			name:    "more points than the customer holds",
			booking: member,
			req:     bookingDto.PaymentRequest{PaymentMethod: bookingDto.PaymentMethodCash, UsedMemberPoint: 101},
			setupMock: func(f *fixture) {
				f.accounts.EXPECT().GetCustomer(gomock.Any(), "guest@cafe.vn").Return(accountModel.Customer{ID: "3", MemberPoint: 100}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "points without an account",
			booking:   booking("10", bookingModel.StatusPending),
			req:       bookingDto.PaymentRequest{PaymentMethod: bookingDto.PaymentMethodCash, UsedMemberPoint: 10},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown method",
			booking:   booking("10", bookingModel.StatusPending),
			req:       bookingDto.PaymentRequest{PaymentMethod: "VOUCHER"},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "ongoing booking",
			booking:   booking("10", bookingModel.StatusConfirmed),
			req:       bookingDto.PaymentRequest{PaymentMethod: bookingDto.PaymentMethodCash},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, at("2024-01-01", "09:00"))

			f.bookings.EXPECT().Get(gomock.Any(), "10").Return(tt.booking, nil)
			tt.setupMock(f)

			res, err := f.board.Pay(context.Background(), "10", tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, []string{"booking:detail:10"}, f.query.Snapshot())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSettled, res.Settled)
			assert.Contains(t, f.query.Snapshot(), bookingModel.CacheKeyList)
			assert.Contains(t, f.query.Snapshot(), "order:by-booking:10")
		})
	}
}

func TestBoard_AddItem(t *testing.T) {
	coffee := catalogModel.Product{
		ID:      "7",
		Name:    "Coffee",
		Price:   25000,
		Options: []catalogModel.Option{{ID: "11", Name: "Extra shot", Price: 5000}},
	}
	projector := catalogModel.Product{ID: "8", Name: "Projector", Price: 100000, Rental: true}

	tests := []struct {
		name      string
		status    bookingModel.Status
		req       orderDto.ItemRequest
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name:   "product with an option",
			status: bookingModel.StatusPaid,
			req:    orderDto.ItemRequest{ProductID: "7", Quantity: 2, Duration: 3, Options: []string{"11"}, Note: " less sugar "},
			setupMock: func(f *fixture) {
				f.catalog.EXPECT().GetProduct(gomock.Any(), "7").Return(coffee, nil)
				f.orders.EXPECT().AddItem(gomock.Any(), orderDto.AddItemRequest{
					BookingID: "10",
					Item:      orderDto.ItemRequest{ProductID: "7", Quantity: 2, Duration: 1, Options: []string{"11"}, Note: "less sugar"},
				}).Return(nil)
			},
		},
		{
			name:   "rented device",
			status: bookingModel.StatusPaid,
			req:    orderDto.ItemRequest{ProductID: "8", Quantity: 1, Duration: 2},
			setupMock: func(f *fixture) {
				f.catalog.EXPECT().GetProduct(gomock.Any(), "8").Return(projector, nil)
				f.orders.EXPECT().AddItem(gomock.Any(), orderDto.AddItemRequest{
					BookingID: "10",
					Item:      orderDto.ItemRequest{ProductID: "8", Quantity: 1, Duration: 2, Options: []string{}},
				}).Return(nil)
			},
		},
		{
			name:   "device without a duration",
			status: bookingModel.StatusPaid,
			req:    orderDto.ItemRequest{ProductID: "8", Quantity: 1},
			setupMock: func(f *fixture) {
				f.catalog.EXPECT().GetProduct(gomock.Any(), "8").Return(projector, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "option of another product",
			status: bookingModel.StatusPaid,
			req:    orderDto.ItemRequest{ProductID: "7", Quantity: 1, Options: []string{"99"}},
			setupMock: func(f *fixture) {
				f.catalog.EXPECT().GetProduct(gomock.Any(), "7").Return(coffee, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "zero quantity",
			status: bookingModel.StatusPaid,
			req:    orderDto.ItemRequest{ProductID: "7"},
			setupMock: func(f *fixture) {
				f.catalog.EXPECT().GetProduct(gomock.Any(), "7").Return(coffee, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "pending booking",
			status:    bookingModel.StatusPending,
			req:       orderDto.ItemRequest{ProductID: "7", Quantity: 1},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, at("2024-01-01", "09:00"))

			f.bookings.EXPECT().Get(gomock.Any(), "10").Return(booking("10", tt.status), nil)
			tt.setupMock(f)

			err := f.board.AddItem(context.Background(), "10", tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, []string{"booking:detail:10"}, f.query.Snapshot())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []string{
				"booking:detail:10",
				"order:by-booking:10",
				orderModel.CacheKeyDetail,
				orderModel.CacheKeyByRoom,
				bookingModel.CacheKeyList,
				"booking:detail:10",
			}, f.query.Snapshot())
		})
	}
}

func TestBoard_DeleteItem(t *testing.T) {
	open := orderModel.Order{
		ID:        "1",
		BookingID: "10",
		Status:    orderModel.StatusConfirmed,
		Items:     []orderModel.Item{{ID: "5", Price: 20000, Quantity: 1}},
	}

	tests := []struct {
		name      string
		status    bookingModel.Status
		itemID    string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name:   "item of an open order",
			status: bookingModel.StatusConfirmed,
			itemID: "5",
			setupMock: func(f *fixture) {
				f.orders.EXPECT().Get(gomock.Any(), "1").Return(open, nil)
				f.orders.EXPECT().DeleteItem(gomock.Any(), "5").Return(nil)
			},
		},
		{
			name:   "completed order",
			status: bookingModel.StatusConfirmed,
			itemID: "5",
			setupMock: func(f *fixture) {
				done := open
				done.Status = orderModel.StatusCompleted
				f.orders.EXPECT().Get(gomock.Any(), "1").Return(done, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "item not on the order",
			status: bookingModel.StatusConfirmed,
			itemID: "6",
			setupMock: func(f *fixture) {
				f.orders.EXPECT().Get(gomock.Any(), "1").Return(open, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "order of another booking",
			status: bookingModel.StatusConfirmed,
			itemID: "5",
			setupMock: func(f *fixture) {
				other := open
				other.BookingID = "11"
				f.orders.EXPECT().Get(gomock.Any(), "1").Return(other, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "paid booking is not ongoing",
			status:    bookingModel.StatusPaid,
			itemID:    "5",
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, at("2024-01-01", "09:00"))

			f.bookings.EXPECT().Get(gomock.Any(), "10").Return(booking("10", tt.status), nil)
			tt.setupMock(f)

			err := f.board.DeleteItem(context.Background(), "10", "1", tt.itemID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, []string{"booking:detail:10"}, f.query.Snapshot())

				return
			}

			require.NoError(t, err)
			assert.Contains(t, f.query.Snapshot(), "order:detail:1")
			assert.Contains(t, f.query.Snapshot(), bookingModel.CacheKeyList)
		})
	}
}

func TestBoard_CompleteOrder(t *testing.T) {
	f := newFixture(t, at("2024-01-01", "09:30"))

	f.bookings.EXPECT().Get(gomock.Any(), "10").Return(booking("10", bookingModel.StatusConfirmed), nil)
	f.orders.EXPECT().Get(gomock.Any(), "1").Return(orderModel.Order{ID: "1", BookingID: "10", Status: orderModel.StatusDoing}, nil)
	f.orders.EXPECT().Complete(gomock.Any(), "1").Return(nil)

	require.NoError(t, f.board.CompleteOrder(context.Background(), "10", "1"))
	assert.Equal(t, []string{
		"booking:detail:10",
		"order:detail:1",
		orderModel.CacheKeyByBooking,
		orderModel.CacheKeyByRoom,
		bookingModel.CacheKeyList,
		"booking:detail:10",
	}, f.query.Snapshot())
}

func TestBoard_QRCode(t *testing.T) {
	f := newFixture(t, at("2024-01-01", "09:00"))

	f.bookings.EXPECT().Get(gomock.Any(), "10").Return(booking("10", bookingModel.StatusPaid), nil)
	f.orders.EXPECT().GetByBooking(gomock.Any(), "10").Return([]orderModel.Order{}, nil)

	png, err := f.board.QRCode(context.Background(), "10")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
