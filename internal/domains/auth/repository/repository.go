package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"seatpos/infras/backend"
	"seatpos/internal/domains/auth/model/dto"
)

const pathLogin = "/api/auth/login"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type repositoryImpl struct {
	backend backend.Backend
}

func New(b backend.Backend) Auth {
	return &repositoryImpl{
		backend: b,
	}
}

func (r *repositoryImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	var pair backend.TokenPair

	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "sign in",
		Method:    http.MethodPost,
		Path:      pathLogin,
		Body:      req,
		Result:    &pair,
		Public:    true,
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromTokenPair(pair)

	return res, nil
}
