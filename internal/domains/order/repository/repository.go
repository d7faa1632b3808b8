package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"seatpos/infras/backend"
	"seatpos/internal/domains/order/model"
	"seatpos/internal/domains/order/model/dto"
)

const (
	pathByBooking  = "/api/employee/orders/by-booking/%s"
	pathByRoom     = "/api/employee/orders/by-room/%s"
	pathDetail     = "/api/employee/orders/details/%s"
	pathAddItem    = "/api/employee/orders/add-item"
	pathDeleteItem = "/api/employee/orders/delete-item/%s"
	pathComplete   = "/api/employee/orders/completed/%s"
)

type Order interface {
	GetByBooking(ctx context.Context, bookingID string) ([]model.Order, error)
	GetByRoom(ctx context.Context, roomID string) ([]model.Order, error)
	Get(ctx context.Context, id string) (model.Order, error)
	AddItem(ctx context.Context, req dto.AddItemRequest) error
	DeleteItem(ctx context.Context, itemID string) error
	Complete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	backend backend.Backend
}

func New(b backend.Backend) Order {
	return &repositoryImpl{
		backend: b,
	}
}

func (r *repositoryImpl) GetByBooking(ctx context.Context, bookingID string) (res []model.Order, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list orders by booking",
		Method:    http.MethodGet,
		Path:      backend.Path(pathByBooking, bookingID),
		Query:     url.Values{"bookingId": {bookingID}},
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetByRoom(ctx context.Context, roomID string) (res []model.Order, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list orders by room",
		Method:    http.MethodGet,
		Path:      backend.Path(pathByRoom, roomID),
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Order, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "get order",
		Method:    http.MethodGet,
		Path:      backend.Path(pathDetail, id),
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) AddItem(ctx context.Context, req dto.AddItemRequest) error {
	_, err := r.backend.Do(ctx, backend.Request{
		Operation: "add item",
		Method:    http.MethodPost,
		Path:      pathAddItem,
		Body:      req,
	})

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) DeleteItem(ctx context.Context, itemID string) error {
	_, err := r.backend.Do(ctx, backend.Request{
		Operation: "delete item",
		Method:    http.MethodDelete,
		Path:      backend.Path(pathDeleteItem, itemID),
	})

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) Complete(ctx context.Context, id string) error {
	_, err := r.backend.Do(ctx, backend.Request{
		Operation: "complete order",
		Method:    http.MethodPut,
		Path:      backend.Path(pathComplete, id),
	})

	return err //nolint:wrapcheck
}
