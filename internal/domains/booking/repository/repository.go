package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"seatpos/infras/backend"
	"seatpos/internal/domains/booking/model"
	"seatpos/internal/domains/booking/model/dto"
)

const (
	pathByDate        = "/api/employee/bookings/bookings-by-date"
	pathByEmail       = "/api/employee/bookings/bookings-by-email"
	pathTodayByEmail  = "/api/employee/bookings/bookings-by-current-date-and-email"
	pathDetail        = "/api/customer/bookings/details/%s"
	pathBookSeat      = "/api/employee/bookings/%s"
	pathCancel        = "/api/employee/bookings/cancel/%s"
	pathPayment       = "/api/employee/bookings/payment/%s"
	pathPaymentIntent = "/api/payments/create-payment-intent-booking"

	requestParamDate  = "date"
	requestParamEmail = "email"
)

type Booking interface {
	GetByDate(ctx context.Context, date string) ([]model.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]model.Booking, error)
	GetTodayByEmail(ctx context.Context, email string) ([]model.Booking, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	BookSeat(ctx context.Context, roomID string, payload dto.BookSeatPayload) (model.Booking, error)
	Cancel(ctx context.Context, id string) error
	Pay(ctx context.Context, id string, req dto.PaymentRequest) (dto.PaymentResponse, error)
	CreatePaymentIntent(ctx context.Context, req dto.PaymentIntentRequest) (dto.PaymentIntentResponse, error)
}

type repositoryImpl struct {
	backend backend.Backend
}

func New(b backend.Backend) Booking {
	return &repositoryImpl{
		backend: b,
	}
}

func (r *repositoryImpl) list(ctx context.Context, operation, path string, query url.Values) (res []model.Booking, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: operation,
		Method:    http.MethodGet,
		Path:      path,
		Query:     query,
		Result:    &res,
		List:      true,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetByDate(ctx context.Context, date string) ([]model.Booking, error) {
	return r.list(ctx, "list bookings by date", pathByDate, url.Values{requestParamDate: {date}})
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return r.list(ctx, "list bookings by email", pathByEmail, url.Values{requestParamEmail: {email}})
}

func (r *repositoryImpl) GetTodayByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return r.list(ctx, "list today's bookings by email", pathTodayByEmail, url.Values{requestParamEmail: {email}})
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "get booking",
		Method:    http.MethodGet,
		Path:      backend.Path(pathDetail, id),
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) BookSeat(ctx context.Context, roomID string, payload dto.BookSeatPayload) (res model.Booking, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "book seat",
		Method:    http.MethodPost,
		Path:      backend.Path(pathBookSeat, roomID),
		Body:      payload,
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) Cancel(ctx context.Context, id string) error {
	_, err := r.backend.Do(ctx, backend.Request{
		Operation: "cancel booking",
		Method:    http.MethodPut,
		Path:      backend.Path(pathCancel, id),
	})

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) Pay(ctx context.Context, id string, req dto.PaymentRequest) (res dto.PaymentResponse, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "pay booking",
		Method:    http.MethodPost,
		Path:      backend.Path(pathPayment, id),
		Body:      req,
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}

func (r *repositoryImpl) CreatePaymentIntent(ctx context.Context, req dto.PaymentIntentRequest) (res dto.PaymentIntentResponse, err error) {
	_, err = r.backend.Do(ctx, backend.Request{
		Operation: "create payment intent",
		Method:    http.MethodPost,
		Path:      pathPaymentIntent,
		Body:      req,
		Result:    &res,
	})

	return res, err //nolint:wrapcheck
}
