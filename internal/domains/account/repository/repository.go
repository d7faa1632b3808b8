package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"seatpos/infras/backend"
	"seatpos/internal/domains/account/model"
	"seatpos/shared/constant"
	"time"
)

const (
	pathProfile  = "/api/employee"
	pathCustomer = "/api/employee/bookings/info-user"
	pathBranch   = "/api/employee/branches/%s"
)

type Account interface {
	GetProfile(ctx context.Context) (model.Employee, error)
	// ServerTime probes the profile endpoint and reads the remote clock from its Date header.
	ServerTime(ctx context.Context) (time.Time, error)
	GetCustomer(ctx context.Context, email string) (model.Customer, error)
	GetBranch(ctx context.Context, id string) (model.Branch, error)
}

type repositoryImpl struct {
	backend backend.Backend
}

func New(b backend.Backend) Account {
	return &repositoryImpl{
		backend: b,
	}
}

func (r *repositoryImpl) GetProfile(ctx context.Context) (res model.Employee, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "get profile",
		Method:    http.MethodGet,
		Path:      pathProfile,
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) ServerTime(ctx context.Context) (time.Time, error) {
	resp, err := r.backend.Do(ctx, backend.Request{
		Operation: "read server time",
		Method:    http.MethodGet,
		Path:      pathProfile,
	})
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return http.ParseTime(resp.Header.Get(constant.ResponseHeaderDate)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetCustomer(ctx context.Context, email string) (res model.Customer, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "get customer information",
		Method:    http.MethodGet,
		Path:      pathCustomer,
		Query:     url.Values{"email": {email}},
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetBranch(ctx context.Context, id string) (res model.Branch, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "get branch",
		Method:    http.MethodGet,
		Path:      backend.Path(pathBranch, id),
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}
