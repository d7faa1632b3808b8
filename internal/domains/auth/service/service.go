// Package service holds the signed-in staff session for the lifetime of the process.
package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"seatpos/infras/credstore"
	"seatpos/infras/otel"
	accountModel "seatpos/internal/domains/account/model"
	accountService "seatpos/internal/domains/account/service"
	"seatpos/internal/domains/auth/model/dto"
	"seatpos/internal/domains/auth/repository"
	"seatpos/shared/constant"
	"seatpos/shared/query"
	"seatpos/shared/validator"
	"sync"

	"github.com/rs/zerolog/log"
)

type Session interface {
	// Bootstrap restores the persisted credentials. It marks the session ready whatever the outcome.
	Bootstrap(ctx context.Context) error
	SignIn(ctx context.Context, req dto.LoginRequest) (dto.SessionResponse, error)
	SignOut(ctx context.Context) error
	Ready() bool
	Profile() (accountModel.Employee, bool)
	BranchID() (string, bool)
	State() dto.SessionResponse
}

type serviceImpl struct {
	repo    repository.Auth
	account accountService.Account
	store   credstore.Store
	query   query.Client
	otel    otel.Otel

	// transition serialises bootstrap, sign-in and sign-out. mu guards the fields below.
	transition sync.Mutex
	mu         sync.RWMutex
	ready      bool
	profile    *accountModel.Employee
}

func New(repo repository.Auth, account accountService.Account, store credstore.Store, q query.Client, otel otel.Otel) Session {
	return &serviceImpl{
		repo:    repo,
		account: account,
		store:   store,
		query:   q,
		otel:    otel,
	}
}

func (s *serviceImpl) Bootstrap(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bootstrap")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.transition.Lock()
	defer s.transition.Unlock()

	defer s.markReady()

	if _, err = s.store.Load(ctx); err != nil {
		if errors.Is(err, credstore.ErrNotFound) {
			log.Info().Msg("no stored credentials, starting signed out")

			return nil
		}

		log.Warn().Err(err).Msg("stored credentials are unreadable, discarding them")
		s.discard(ctx)

		return nil
	}

	// cached profile may belong to a previous run
	s.query.Invalidate(ctx, accountModel.CacheKeyProfile)

	profile, err := s.account.GetProfile(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to restore session, discarding stored credentials")
		s.discard(ctx)

		return nil
	}

	s.setProfile(&profile)

	log.Info().Str("email", profile.Email).Str("branch", profile.BranchID.String()).Msg("session restored")

	return nil
}

func (s *serviceImpl) SignIn(ctx context.Context, req dto.LoginRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	s.transition.Lock()
	defer s.transition.Unlock()

	tokens, err := s.repo.Login(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("sign in rejected")

		return res, fmt.Errorf("failed to sign in: %w", err)
	}

	if err = s.store.Save(ctx, tokens.ToCredentials()); err != nil {
		log.Error().Err(err).Msg("failed to persist credentials")

		return res, fmt.Errorf("failed to persist credentials: %w", err)
	}

	s.setProfile(nil)
	s.query.Clear(ctx)

	profile, err := s.account.GetProfile(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile after sign in")
		s.discard(ctx)
		s.markReady()

		return res, fmt.Errorf("failed to get profile after sign in: %w", err)
	}

	s.setProfile(&profile)
	s.markReady()

	log.Info().Str("email", profile.Email).Str("branch", profile.BranchID.String()).Msg("signed in")

	return s.State(), nil
}

func (s *serviceImpl) SignOut(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.transition.Lock()
	defer s.transition.Unlock()

	err = s.store.Remove(ctx)

	s.setProfile(nil)
	s.query.Clear(ctx)
	s.markReady()

	if err != nil {
		log.Error().Err(err).Msg("failed to remove stored credentials")

		return fmt.Errorf("failed to remove stored credentials: %w", err)
	}

	log.Info().Msg("signed out")

	return nil
}

func (s *serviceImpl) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ready
}

func (s *serviceImpl) Profile() (accountModel.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return accountModel.Employee{}, false
	}

	return *s.profile, true
}

// BranchID is derived from the profile so it always matches the signed-in identity.
func (s *serviceImpl) BranchID() (string, bool) {
	profile, ok := s.Profile()
	if !ok || profile.BranchID == constant.Empty {
		return constant.Empty, false
	}

	return profile.BranchID.String(), true
}

func (s *serviceImpl) State() dto.SessionResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := dto.SessionResponse{Ready: s.ready}

	if s.profile != nil {
		profile := *s.profile
		res.SignedIn = true
		res.Profile = &profile
		res.BranchID = profile.BranchID.String()
	}

	return res
}

func (s *serviceImpl) discard(ctx context.Context) {
	if err := s.store.Remove(ctx); err != nil {
		log.Error().Err(err).Msg("failed to remove stored credentials")
	}

	s.setProfile(nil)
	s.query.Clear(ctx)
}

func (s *serviceImpl) setProfile(profile *accountModel.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile
}

func (s *serviceImpl) markReady() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = true
}
