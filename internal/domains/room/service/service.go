package service

import (
	"context"
	"fmt"
	"seatpos/config"
	"seatpos/infras/otel"
	"seatpos/internal/domains/room/model"
	"seatpos/internal/domains/room/repository"
	"seatpos/shared"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/shared/query"

	"github.com/rs/zerolog/log"
)

type Room interface {
	GetByBranch(ctx context.Context, branchID string) ([]model.Room, error)
	GetByBranchAndType(ctx context.Context, branchID, roomTypeID string) ([]model.Room, error)
	Get(ctx context.Context, id string) (model.Room, error)
	GetTypes(ctx context.Context) ([]model.RoomType, error)
	GetWithStatus(ctx context.Context, branchID string) ([]model.Room, error)
	GetSlots(ctx context.Context, roomID, date string) ([]model.Slot, error)
}

type serviceImpl struct {
	repo   repository.Room
	cfg    *config.Config
	query  query.Client
	otel   otel.Otel
	policy query.Policy
}

func New(repo repository.Room, cfg *config.Config, q query.Client, otel otel.Otel) Room {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		query:  q,
		otel:   otel,
		policy: query.DefaultPolicy(cfg),
	}
}

func (s *serviceImpl) GetByBranch(ctx context.Context, branchID string) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomsByBranch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if branchID == constant.Empty {
		return res, failure.BadRequestFromString("branch is required") //nolint:wrapcheck
	}

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyByBranch, branchID), s.policy, func(ctx context.Context) ([]model.Room, error) {
		return s.repo.GetByBranch(ctx, branchID)
	})
	if err != nil {
		log.Error().Err(err).Str("branch", branchID).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetByBranchAndType(ctx context.Context, branchID, roomTypeID string) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomsByType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if branchID == constant.Empty || roomTypeID == constant.Empty {
		return res, failure.BadRequestFromString("branch and room type are required") //nolint:wrapcheck
	}

	key := shared.BuildCacheKey(model.CacheKeyByType, branchID, roomTypeID)

	res, err = query.Fetch(ctx, s.query, key, s.policy, func(ctx context.Context) ([]model.Room, error) {
		return s.repo.GetByBranchAndType(ctx, branchID, roomTypeID)
	})
	if err != nil {
		log.Error().Err(err).Str("branch", branchID).Str("roomType", roomTypeID).Msg("failed to get rooms by type")

		return res, fmt.Errorf("failed to get rooms by type: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyDetail, id), s.policy, func(ctx context.Context) (model.Room, error) {
		return s.repo.Get(ctx, id)
	})
	if err != nil {
		log.Error().Err(err).Str("room", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetTypes(ctx context.Context) (res []model.RoomType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomTypes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, model.CacheKeyTypes, query.CatalogPolicy(s.cfg), s.repo.GetTypes)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetWithStatus(ctx context.Context, branchID string) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomsWithStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if branchID == constant.Empty {
		return []model.Room{}, nil
	}

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyWithStatus, branchID), s.policy, func(ctx context.Context) ([]model.Room, error) {
		return s.repo.GetWithStatus(ctx, branchID)
	})
	if err != nil {
		log.Error().Err(err).Str("branch", branchID).Msg("failed to get rooms with status")

		return res, fmt.Errorf("failed to get rooms with status: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetSlots(ctx context.Context, roomID, date string) (res []model.Slot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"room.id": roomID, "slot.date": date})

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeySlots, roomID, date), s.policy, func(ctx context.Context) ([]model.Slot, error) {
		return s.repo.GetSlots(ctx, roomID, date)
	})
	if err != nil {
		log.Error().Err(err).Str("room", roomID).Str("date", date).Msg("failed to get available slots")

		return res, fmt.Errorf("failed to get available slots: %w", err)
	}

	return res, nil
}
