package service

import (
	"context"
	"fmt"
	"seatpos/config"
	"seatpos/infras/otel"
	"seatpos/internal/domains/booking/model"
	"seatpos/internal/domains/booking/model/dto"
	"seatpos/internal/domains/booking/repository"
	orderModel "seatpos/internal/domains/order/model"
	roomModel "seatpos/internal/domains/room/model"
	roomService "seatpos/internal/domains/room/service"
	"seatpos/shared"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/shared/query"
	"seatpos/shared/validator"
	"strings"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	GetByDate(ctx context.Context, date string) ([]model.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]model.Booking, error)
	GetTodayByEmail(ctx context.Context, email string) ([]model.Booking, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	BookSeat(ctx context.Context, req dto.BookSeatRequest) (model.Booking, error)
	Cancel(ctx context.Context, id string) error
	Pay(ctx context.Context, id string, req dto.PaymentRequest) (dto.PaymentResponse, error)
	CreatePaymentIntent(ctx context.Context, id string, amount int64) (dto.PaymentIntentResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	room   roomService.Room
	cfg    *config.Config
	query  query.Client
	otel   otel.Otel
	policy query.Policy
}

func New(repo repository.Booking, room roomService.Room, cfg *config.Config, q query.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		room:   room,
		cfg:    cfg,
		query:  q,
		otel:   otel,
		policy: query.DefaultPolicy(cfg),
	}
}

func (s *serviceImpl) GetByDate(ctx context.Context, date string) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingsByDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(date, "required,day"); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyListByDate, date), s.policy, func(ctx context.Context) ([]model.Booking, error) {
		return s.repo.GetByDate(ctx, date)
	})
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to get bookings by date")

		return res, fmt.Errorf("failed to get bookings by date: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetByEmail(ctx context.Context, email string) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingsByEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = strings.TrimSpace(email)
	if !validator.IsMail(email) {
		return res, failure.BadRequestFromString("email is not a valid email address") //nolint:wrapcheck
	}

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyListByEmail, strings.ToLower(email)), s.policy, func(ctx context.Context) ([]model.Booking, error) {
		return s.repo.GetByEmail(ctx, email)
	})
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get bookings by email")

		return res, fmt.Errorf("failed to get bookings by email: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetTodayByEmail(ctx context.Context, email string) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTodayBookingsByEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = strings.TrimSpace(email)
	if !validator.IsMail(email) {
		return res, failure.BadRequestFromString("email is not a valid email address") //nolint:wrapcheck
	}

	key := shared.BuildCacheKey(model.CacheKeyListTodayByEmail, strings.ToLower(email))

	res, err = query.Fetch(ctx, s.query, key, s.policy, func(ctx context.Context) ([]model.Booking, error) {
		return s.repo.GetTodayByEmail(ctx, email)
	})
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get today's bookings by email")

		return res, fmt.Errorf("failed to get today's bookings by email: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyDetail, id), s.policy, func(ctx context.Context) (model.Booking, error) {
		return s.repo.Get(ctx, id)
	})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) BookSeat(ctx context.Context, req dto.BookSeatRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookSeat")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	start, end, err := s.window(req)
	if err != nil {
		return res, err
	}

	slots, err := s.room.GetSlots(ctx, req.RoomID, req.Date)
	if err != nil {
		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if !available(slots, start, end) {
		return res, failure.BadRequestFromString("the selected time is not available for this room") //nolint:wrapcheck
	}

	payload := req.ToPayload(fmt.Sprintf("%02d:%02d", start/60, start%60), end-start)

	res, err = s.repo.BookSeat(ctx, req.RoomID, payload)
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Str("date", req.Date).Msg("failed to book seat")

		return res, fmt.Errorf("failed to book seat: %w", err)
	}

	s.query.Invalidate(ctx,
		model.CacheKeyList,
		shared.BuildCacheKey(roomModel.CacheKeySlots, req.RoomID),
		roomModel.CacheKeyWithStatus,
	)

	log.Info().Str("room", req.RoomID).Str("date", req.Date).Str("start", payload.StartTime).Int("duration", payload.Duration).Msg("seat booked")

	return res, nil
}

// window checks the requested window against opening hours and the minimum duration and
// returns it in minutes since midnight.
func (s *serviceImpl) window(req dto.BookSeatRequest) (start, end int, err error) {
	booking := s.cfg.App.Booking

	start, err = roomModel.ClockMinutes(req.Start)
	if err != nil {
		return 0, 0, failure.BadRequest(err) //nolint:wrapcheck
	}

	end, err = roomModel.ClockMinutes(req.End)
	if err != nil {
		return 0, 0, failure.BadRequest(err) //nolint:wrapcheck
	}

	if start < booking.OpeningHour*60 || start >= booking.ClosingHour*60 {
		msg := fmt.Sprintf("start time must be between %02d:00 and %02d:00", booking.OpeningHour, booking.ClosingHour)

		return 0, 0, failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	if end < start+booking.MinDurationMinutes {
		msg := fmt.Sprintf("end time must be at least %d minutes after the start time", booking.MinDurationMinutes)

		return 0, 0, failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return start, end, nil
}

func available(slots []roomModel.Slot, start, end int) bool {
	for _, slot := range slots {
		if slot.Contains(start, end) {
			return true
		}
	}

	return false
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Cancel(ctx, id); err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.query.Invalidate(ctx,
		model.CacheKeyList,
		shared.BuildCacheKey(model.CacheKeyDetail, id),
		roomModel.CacheKeySlots,
		roomModel.CacheKeyWithStatus,
	)

	return nil
}

func (s *serviceImpl) Pay(ctx context.Context, id string, req dto.PaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PayBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Pay(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Str("booking", id).Str("method", req.PaymentMethod).Msg("failed to pay booking")

		return res, fmt.Errorf("failed to pay booking: %w", err)
	}

	// paying a booking settles every item of its sub-orders as well
	s.query.Invalidate(ctx,
		model.CacheKeyList,
		shared.BuildCacheKey(model.CacheKeyDetail, id),
		shared.BuildCacheKey(orderModel.CacheKeyByBooking, id),
		orderModel.CacheKeyDetail,
	)

	log.Info().Str("booking", id).Str("method", req.PaymentMethod).Msg("booking paid")

	return res, nil
}

func (s *serviceImpl) CreatePaymentIntent(ctx context.Context, id string, amount int64) (res dto.PaymentIntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePaymentIntent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if amount <= 0 {
		return res, failure.BadRequestFromString("amount must be greater than zero") //nolint:wrapcheck
	}

	res, err = s.repo.CreatePaymentIntent(ctx, dto.PaymentIntentRequest{Amount: amount, BookingID: id})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Int64("amount", amount).Msg("failed to create payment intent")

		return res, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return res, nil
}
