package service

import (
	"context"
	"fmt"
	"seatpos/config"
	"seatpos/infras/otel"
	"seatpos/internal/domains/order/model"
	"seatpos/internal/domains/order/model/dto"
	"seatpos/internal/domains/order/repository"
	"seatpos/shared"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/shared/query"
	"seatpos/shared/validator"

	"github.com/rs/zerolog/log"
)

type Order interface {
	GetByBooking(ctx context.Context, bookingID string) ([]model.Order, error)
	GetByRoom(ctx context.Context, roomID string) ([]model.Order, error)
	Get(ctx context.Context, id string) (model.Order, error)
	// GetDetails loads every sub-order of the booking one by one. It fails as a whole if any
	// detail fails.
	GetDetails(ctx context.Context, bookingID string) ([]model.Order, error)
	AddItem(ctx context.Context, req dto.AddItemRequest) error
	DeleteItem(ctx context.Context, orderID, itemID string) error
	Complete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Order
	cfg    *config.Config
	query  query.Client
	otel   otel.Otel
	policy query.Policy
}

func New(repo repository.Order, cfg *config.Config, q query.Client, otel otel.Otel) Order {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		query:  q,
		otel:   otel,
		policy: query.DefaultPolicy(cfg),
	}
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res []model.Order, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrdersByBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyByBooking, bookingID), s.policy, func(ctx context.Context) ([]model.Order, error) {
		return s.repo.GetByBooking(ctx, bookingID)
	})
	if err != nil {
		log.Error().Err(err).Str("booking", bookingID).Msg("failed to get orders by booking")

		return res, fmt.Errorf("failed to get orders by booking: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetByRoom(ctx context.Context, roomID string) (res []model.Order, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrdersByRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if roomID == constant.Empty {
		return []model.Order{}, nil
	}

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyByRoom, roomID), s.policy, func(ctx context.Context) ([]model.Order, error) {
		return s.repo.GetByRoom(ctx, roomID)
	})
	if err != nil {
		log.Error().Err(err).Str("room", roomID).Msg("failed to get orders by room")

		return res, fmt.Errorf("failed to get orders by room: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Order, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyDetail, id), s.policy, func(ctx context.Context) (model.Order, error) {
		return s.repo.Get(ctx, id)
	})
	if err != nil {
		log.Error().Err(err).Str("order", id).Msg("failed to get order")

		return res, fmt.Errorf("failed to get order: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetDetails(ctx context.Context, bookingID string) (res []model.Order, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrderDetails")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	orders, err := s.GetByBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res, err = query.All(ctx, model.IDs(orders), s.Get)
	if err != nil {
		return res, fmt.Errorf("failed to get order details: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) AddItem(ctx context.Context, req dto.AddItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.AddItem(ctx, req); err != nil {
		log.Error().Err(err).Str("booking", req.BookingID).Str("product", req.Item.ProductID).Msg("failed to add item")

		return fmt.Errorf("failed to add item: %w", err)
	}

	// the remote service picks the sub-order, so every detail may have changed
	s.query.Invalidate(ctx,
		shared.BuildCacheKey(model.CacheKeyByBooking, req.BookingID),
		model.CacheKeyDetail,
		model.CacheKeyByRoom,
	)

	return nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, orderID, itemID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if itemID == constant.Empty {
		return failure.BadRequestFromString("item is required") //nolint:wrapcheck
	}

	if err = s.repo.DeleteItem(ctx, itemID); err != nil {
		log.Error().Err(err).Str("order", orderID).Str("item", itemID).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.invalidateOrder(ctx, orderID)

	return nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Complete(ctx, id); err != nil {
		log.Error().Err(err).Str("order", id).Msg("failed to complete order")

		return fmt.Errorf("failed to complete order: %w", err)
	}

	s.invalidateOrder(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateOrder(ctx context.Context, orderID string) {
	s.query.Invalidate(ctx,
		shared.BuildCacheKey(model.CacheKeyDetail, orderID),
		model.CacheKeyByBooking,
		model.CacheKeyByRoom,
	)
}
