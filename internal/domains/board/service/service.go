package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"seatpos/infras/otel"
	accountService "seatpos/internal/domains/account/service"
	"seatpos/internal/domains/board/model"
	"seatpos/internal/domains/board/model/dto"
	bookingModel "seatpos/internal/domains/booking/model"
	bookingDto "seatpos/internal/domains/booking/model/dto"
	bookingService "seatpos/internal/domains/booking/service"
	catalogService "seatpos/internal/domains/catalog/service"
	orderModel "seatpos/internal/domains/order/model"
	orderDto "seatpos/internal/domains/order/model/dto"
	orderService "seatpos/internal/domains/order/service"
	"seatpos/shared"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/shared/query"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

const (
	// snapshotAttempts bounds how often a snapshot is recomputed when the search keeps changing under it.
	snapshotAttempts = 3

	qrSize = 256
)

type Board interface {
	// SetMode switches the active search. Snapshots of the previous search are discarded.
	SetMode(ctx context.Context, search model.Search) (model.Search, error)
	Search(ctx context.Context) model.Search
	// Reset forgets the active search, e.g. after sign-out.
	Reset()
	Snapshot(ctx context.Context) (model.Board, error)
	Detail(ctx context.Context, bookingID string) (model.Detail, error)

	Cancel(ctx context.Context, bookingID string) error
	Pay(ctx context.Context, bookingID string, req bookingDto.PaymentRequest) (dto.PayResponse, error)
	AddItem(ctx context.Context, bookingID string, req orderDto.ItemRequest) error
	DeleteItem(ctx context.Context, bookingID, orderID, itemID string) error
	CompleteOrder(ctx context.Context, bookingID, orderID string) error
	// QRCode renders the payment QR for the booking's current total as a PNG.
	QRCode(ctx context.Context, bookingID string) ([]byte, error)
}

type serviceImpl struct {
	booking bookingService.Booking
	order   orderService.Order
	account accountService.Account
	catalog catalogService.Catalog
	query   query.Client
	otel    otel.Otel

	mu         sync.RWMutex
	search     model.Search
	generation uint64
}

func New(
	booking bookingService.Booking,
	order orderService.Order,
	account accountService.Account,
	catalog catalogService.Catalog,
	q query.Client,
	otel otel.Otel,
) Board {
	return &serviceImpl{
		booking: booking,
		order:   order,
		account: account,
		catalog: catalog,
		query:   q,
		otel:    otel,
	}
}

func (s *serviceImpl) SetMode(ctx context.Context, search model.Search) (res model.Search, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetBoardMode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	search.Normalize()

	if err = search.Validate(); err != nil {
		return res, err
	}

	s.mu.Lock()
	s.search = search
	s.generation++
	s.mu.Unlock()

	log.Info().Str("mode", string(search.Mode)).Str("date", search.Date).Str("email", search.Email).Msg("board search changed")

	return search, nil
}

// Search returns the active search, defaulting to today's bookings by date.
func (s *serviceImpl) Search(ctx context.Context) model.Search {
	search, _ := s.current(ctx)

	return search
}

func (s *serviceImpl) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.search = model.Search{}
	s.generation++
}

func (s *serviceImpl) current(ctx context.Context) (model.Search, uint64) {
	s.mu.RLock()
	search, generation := s.search, s.generation
	s.mu.RUnlock()

	if search.Mode == constant.Empty {
		search = model.Search{Mode: model.ModeByDate, Date: s.account.Now(ctx).Format(constant.DayFormat)}
	}

	return search, generation
}

func (s *serviceImpl) stale(generation uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.generation != generation
}

func (s *serviceImpl) Snapshot(ctx context.Context) (res model.Board, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for range snapshotAttempts {
		search, generation := s.current(ctx)

		res, err = s.snapshot(ctx, search)
		if err != nil {
			return res, err
		}

		if !s.stale(generation) {
			return res, nil
		}

		log.Debug().Str("mode", string(search.Mode)).Msg("board search changed while loading, discarding snapshot")
	}

	return model.Board{}, failure.Conflict("the search changed while the board was loading") //nolint:wrapcheck
}

func (s *serviceImpl) snapshot(ctx context.Context, search model.Search) (model.Board, error) {
	bookings, err := s.list(ctx, search)
	if err != nil {
		return model.Board{}, err
	}

	now := s.account.Now(ctx)

	cards, err := query.All(ctx, bookings, func(ctx context.Context, b bookingModel.Booking) (model.Card, error) {
		orders, err := s.orders(ctx, b)
		if err != nil {
			return model.Card{}, err
		}

		return model.NewCard(b, now, orders)
	})
	if err != nil {
		log.Error().Err(err).Str("mode", string(search.Mode)).Msg("failed to build board")

		return model.Board{}, fmt.Errorf("failed to build board: %w", err)
	}

	return model.NewBoard(search, now, cards), nil
}

func (s *serviceImpl) list(ctx context.Context, search model.Search) ([]bookingModel.Booking, error) {
	switch search.Mode {
	case model.ModeByDate:
		return s.booking.GetByDate(ctx, search.Date) //nolint:wrapcheck
	case model.ModeByEmail:
		return s.booking.GetByEmail(ctx, search.Email) //nolint:wrapcheck
	case model.ModeTodayByEmail:
		return s.booking.GetTodayByEmail(ctx, search.Email) //nolint:wrapcheck
	default:
		return nil, search.Validate()
	}
}

func (s *serviceImpl) orders(ctx context.Context, b bookingModel.Booking) ([]orderModel.Order, error) {
	if !model.HasOrders(b) {
		return []orderModel.Order{}, nil
	}

	return s.order.GetDetails(ctx, b.ID.String()) //nolint:wrapcheck
}

func (s *serviceImpl) Detail(ctx context.Context, bookingID string) (res model.Detail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Detail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	b, err := s.booking.Get(ctx, bookingID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.detail(ctx, b, s.account.Now(ctx))
}

func (s *serviceImpl) detail(ctx context.Context, b bookingModel.Booking, now time.Time) (model.Detail, error) {
	orders, err := s.orders(ctx, b)
	if err != nil {
		return model.Detail{}, err
	}

	card, err := model.NewCard(b, now, orders)
	if err != nil {
		log.Error().Err(err).Str("booking", b.ID.String()).Msg("failed to classify booking")

		return model.Detail{}, err //nolint:wrapcheck
	}

	return model.Detail{
		Card:   card,
		Now:    now,
		Orders: orders,
		Items:  orderModel.Items(orders),
	}, nil
}

// guard re-reads the booking from the remote service and rejects actions its bucket does not allow.
func (s *serviceImpl) guard(ctx context.Context, bookingID string, action model.Action) (bookingModel.Booking, bookingModel.Bucket, error) {
	if bookingID == constant.Empty {
		return bookingModel.Booking{}, "", failure.NotFound("booking not found") //nolint:wrapcheck
	}

	s.query.Invalidate(ctx, shared.BuildCacheKey(bookingModel.CacheKeyDetail, bookingID))

	b, err := s.booking.Get(ctx, bookingID)
	if err != nil {
		return b, "", err //nolint:wrapcheck
	}

	bucket, err := bookingModel.Classify(b, s.account.Now(ctx))
	if err != nil {
		return b, "", err //nolint:wrapcheck
	}

	if !model.Allowed(bucket, action) {
		msg := fmt.Sprintf("cannot %s a booking in %s", actionVerb(action), bucket)

		return b, bucket, failure.Conflict(msg) //nolint:wrapcheck
	}

	return b, bucket, nil
}

func actionVerb(action model.Action) string {
	switch action {
	case model.ActionCancel:
		return "cancel"
	case model.ActionPay:
		return "pay"
	case model.ActionAddItem:
		return "add items to"
	case model.ActionDeleteItem:
		return "delete items from"
	case model.ActionCompleteOrder:
		return "complete orders of"
	default:
		return string(action)
	}
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelFromBoard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = s.guard(ctx, bookingID, model.ActionCancel); err != nil {
		return err
	}

	return s.booking.Cancel(ctx, bookingID) //nolint:wrapcheck
}

func (s *serviceImpl) Pay(ctx context.Context, bookingID string, req bookingDto.PaymentRequest) (res dto.PayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PayFromBoard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	b, bucket, err := s.guard(ctx, bookingID, model.ActionPay)
	if err != nil {
		return res, err
	}

	req.Normalize()

	if err = s.checkPoints(ctx, b, req.UsedMemberPoint); err != nil {
		return res, err
	}

	res.PaymentResponse, err = s.booking.Pay(ctx, bookingID, req)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.Settled = true

	if bucket != bookingModel.BucketPaid {
		return res, nil
	}

	// an aggregate payment must leave no item pending
	orders, err := s.order.GetDetails(ctx, bookingID)
	if err != nil {
		log.Warn().Err(err).Str("booking", bookingID).Msg("paid booking but could not re-read its orders")

		res.Settled = false

		return res, nil
	}

	for _, item := range orderModel.Items(orders) {
		if item.Status == orderModel.ItemStatusPending {
			log.Warn().Str("booking", bookingID).Str("item", item.ID.String()).Msg("item still pending after booking payment")

			res.Settled = false
		}
	}

	return res, nil
}

// checkPoints rejects spending more member points than the customer holds.
func (s *serviceImpl) checkPoints(ctx context.Context, b bookingModel.Booking, points int64) error {
	if points == 0 {
		return nil
	}

	if b.Account == nil || b.Email() == constant.Empty {
		return failure.BadRequestFromString("member points can only be used by a customer with an account") //nolint:wrapcheck
	}

	customer, err := s.account.GetCustomer(ctx, b.Email())
	if err != nil {
		return err //nolint:wrapcheck
	}

	if points > customer.MemberPoint {
		msg := fmt.Sprintf("usedMemberPoint must be less than or equal to %d", customer.MemberPoint)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) AddItem(ctx context.Context, bookingID string, req orderDto.ItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItemFromBoard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = s.guard(ctx, bookingID, model.ActionAddItem); err != nil {
		return err
	}

	if req.ProductID == constant.Empty {
		return failure.BadRequestFromString("productId is required") //nolint:wrapcheck
	}

	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	for _, id := range req.Options {
		if _, ok := product.Option(id); !ok {
			return failure.BadRequestFromString(fmt.Sprintf("option %s is not offered for %s", id, product.Name)) //nolint:wrapcheck
		}
	}

	switch {
	case product.Rental && req.Duration < 1:
		return failure.BadRequestFromString("duration is required for rented devices") //nolint:wrapcheck
	case !product.Rental:
		req.Duration = 0
	}

	if err = s.order.AddItem(ctx, orderDto.AddItemRequest{BookingID: bookingID, Item: req}); err != nil {
		return err //nolint:wrapcheck
	}

	s.invalidateBooking(ctx, bookingID)

	return nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, bookingID, orderID, itemID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItemFromBoard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = s.guard(ctx, bookingID, model.ActionDeleteItem); err != nil {
		return err
	}

	order, err := s.openOrder(ctx, bookingID, orderID)
	if err != nil {
		return err
	}

	found := false

	for _, item := range order.Items {
		if item.ID.String() == itemID {
			found = true

			break
		}
	}

	if !found {
		return failure.NotFound("item not found") //nolint:wrapcheck
	}

	if err = s.order.DeleteItem(ctx, orderID, itemID); err != nil {
		return err //nolint:wrapcheck
	}

	s.invalidateBooking(ctx, bookingID)

	return nil
}

func (s *serviceImpl) CompleteOrder(ctx context.Context, bookingID, orderID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteOrderFromBoard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = s.guard(ctx, bookingID, model.ActionCompleteOrder); err != nil {
		return err
	}

	if _, err = s.openOrder(ctx, bookingID, orderID); err != nil {
		return err
	}

	if err = s.order.Complete(ctx, orderID); err != nil {
		return err //nolint:wrapcheck
	}

	s.invalidateBooking(ctx, bookingID)

	return nil
}

// openOrder loads a sub-order of the booking that can still change.
func (s *serviceImpl) openOrder(ctx context.Context, bookingID, orderID string) (orderModel.Order, error) {
	if orderID == constant.Empty {
		return orderModel.Order{}, failure.NotFound("order not found") //nolint:wrapcheck
	}

	order, err := s.order.Get(ctx, orderID)
	if err != nil {
		return order, err //nolint:wrapcheck
	}

	if order.ID == constant.Empty || (order.BookingID != constant.Empty && order.BookingID.String() != bookingID) {
		return order, failure.NotFound("order not found") //nolint:wrapcheck
	}

	if order.Status.Completed() {
		return order, failure.Conflict(fmt.Sprintf("order %s is already %s", orderID, order.Status)) //nolint:wrapcheck
	}

	return order, nil
}

// invalidateBooking drops the lists and the detail a sub-order change shows up in.
func (s *serviceImpl) invalidateBooking(ctx context.Context, bookingID string) {
	s.query.Invalidate(ctx, bookingModel.CacheKeyList, shared.BuildCacheKey(bookingModel.CacheKeyDetail, bookingID))
}

func (s *serviceImpl) QRCode(ctx context.Context, bookingID string) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QRCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	b, _, err := s.guard(ctx, bookingID, model.ActionPay)
	if err != nil {
		return res, err
	}

	detail, err := s.detail(ctx, b, s.account.Now(ctx))
	if err != nil {
		return res, err
	}

	payload, err := json.Marshal(dto.QRPayload{Amount: detail.Total, BookingID: bookingID})
	if err != nil {
		return res, fmt.Errorf("failed to encode qr payload: %w", err)
	}

	res, err = qrcode.Encode(string(payload), qrcode.Medium, qrSize)
	if err != nil {
		log.Error().Err(err).Str("booking", bookingID).Msg("failed to render qr code")

		return res, fmt.Errorf("failed to render qr code: %w", err)
	}

	return res, nil
}
