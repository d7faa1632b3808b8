package service

import (
	"context"
	"errors"
	"fmt"
	"seatpos/config"
	"seatpos/infras/otel"
	"seatpos/internal/domains/account/model"
	"seatpos/internal/domains/account/repository"
	"seatpos/shared"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/shared/query"
	"seatpos/shared/timezone"
	"seatpos/shared/validator"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Account interface {
	GetProfile(ctx context.Context) (model.Employee, error)
	GetCustomer(ctx context.Context, email string) (model.Customer, error)
	GetBranch(ctx context.Context, id string) (model.Branch, error)
	// Now is the remote service's clock in the app timezone, or the local clock when it cannot be read.
	Now(ctx context.Context) time.Time
}

var errNoServerTime = errors.New("remote clock unavailable")

type serviceImpl struct {
	repo  repository.Account
	cfg   *config.Config
	query query.Client
	otel  otel.Otel
	now   func() time.Time
}

func New(repo repository.Account, cfg *config.Config, q query.Client, otel otel.Otel) Account {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		query: q,
		otel:  otel,
		now:   timezone.Now,
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context) (res model.Employee, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = query.Fetch(ctx, s.query, model.CacheKeyProfile, query.CatalogPolicy(s.cfg), s.repo.GetProfile)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee profile")

		return res, fmt.Errorf("failed to get employee profile: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetCustomer(ctx context.Context, email string) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = strings.TrimSpace(email)
	if !validator.IsMail(email) {
		return res, failure.BadRequestFromString("email is not a valid email address") //nolint:wrapcheck
	}

	key := shared.BuildCacheKey(model.CacheKeyCustomer, strings.ToLower(email))

	res, err = query.Fetch(ctx, s.query, key, query.DefaultPolicy(s.cfg), func(ctx context.Context) (model.Customer, error) {
		return s.repo.GetCustomer(ctx, email)
	})
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get customer information")

		return res, fmt.Errorf("failed to get customer information: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetBranch(ctx context.Context, id string) (res model.Branch, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBranch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return res, failure.BadRequestFromString("branch is required") //nolint:wrapcheck
	}

	res, err = query.Fetch(ctx, s.query, shared.BuildCacheKey(model.CacheKeyBranch, id), query.CatalogPolicy(s.cfg), func(ctx context.Context) (model.Branch, error) {
		return s.repo.GetBranch(ctx, id)
	})
	if err != nil {
		log.Error().Err(err).Str("branch", id).Msg("failed to get branch")

		return res, fmt.Errorf("failed to get branch: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Now(ctx context.Context) time.Time {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Now")
	defer scope.End()

	offset, err := query.Fetch(ctx, s.query, model.CacheKeyClock, query.ClockPolicy(s.cfg), s.clockOffset)
	if err != nil {
		log.Warn().Err(err).Msg("server clock unavailable, using local clock")

		return s.now()
	}

	return timezone.ToAppTime(s.now().Add(offset))
}

// clockOffset is how far the remote clock runs ahead of the local one.
func (s *serviceImpl) clockOffset(ctx context.Context) (time.Duration, error) {
	server, err := s.repo.ServerTime(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read server time: %w", err)
	}

	if server.IsZero() {
		return 0, errNoServerTime
	}

	return server.Sub(s.now()), nil
}
