package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"seatpos/infras/backend"
	"seatpos/internal/domains/room/model"
)

const (
	pathRoomsByBranch  = "/api/employee/rooms/%s"
	pathRoomDetail     = "/api/employee/rooms/details/%s"
	pathRoomTypes      = "/api/employee/room-type/all"
	pathRoomsByType    = "/api/employee/rooms/rooms-with-type/b/%s/rt/%s"
	pathRoomsStatus    = "/api/employee/rooms/rooms-with-status/%s"
	pathAvailableSlots = "/api/employee/bookings/available-slots"
)

type Room interface {
	GetByBranch(ctx context.Context, branchID string) ([]model.Room, error)
	GetByBranchAndType(ctx context.Context, branchID, roomTypeID string) ([]model.Room, error)
	Get(ctx context.Context, id string) (model.Room, error)
	GetTypes(ctx context.Context) ([]model.RoomType, error)
	GetWithStatus(ctx context.Context, branchID string) ([]model.Room, error)
	GetSlots(ctx context.Context, roomID, date string) ([]model.Slot, error)
}

type repositoryImpl struct {
	backend backend.Backend
}

func New(b backend.Backend) Room {
	return &repositoryImpl{
		backend: b,
	}
}

func (r *repositoryImpl) GetByBranch(ctx context.Context, branchID string) (res []model.Room, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list rooms",
		Method:    http.MethodGet,
		Path:      backend.Path(pathRoomsByBranch, branchID),
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetByBranchAndType(ctx context.Context, branchID, roomTypeID string) (res []model.Room, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list rooms by type",
		Method:    http.MethodGet,
		Path:      backend.Path(pathRoomsByType, branchID, roomTypeID),
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Room, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "get room",
		Method:    http.MethodGet,
		Path:      backend.Path(pathRoomDetail, id),
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetTypes(ctx context.Context) (res []model.RoomType, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list room types",
		Method:    http.MethodGet,
		Path:      pathRoomTypes,
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetWithStatus(ctx context.Context, branchID string) (res []model.Room, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list rooms with status",
		Method:    http.MethodGet,
		Path:      backend.Path(pathRoomsStatus, branchID),
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetSlots(ctx context.Context, roomID, date string) (res []model.Slot, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "list available slots",
		Method:    http.MethodGet,
		Path:      pathAvailableSlots,
		Query:     url.Values{"roomId": {roomID}, "date": {date}},
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}
