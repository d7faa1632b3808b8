package booking

import (
	"net/http"
	"seatpos/infras/otel"
	"seatpos/internal/domains/booking/model/dto"
	"seatpos/internal/domains/booking/service"
	"seatpos/shared/constant"
	"seatpos/shared/validator"
	"seatpos/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BookSeat)
		routerGroup.Post("/{id}/payment-intent", handler.CreatePaymentIntent)
	})
}

type paymentIntentRequest struct {
	Amount int64 `json:"amount" validate:"required,min=1"`
}

// BookSeat books a room for a window of one day.
// @Summary Book a seat
// @Description Checks opening hours, the minimum duration and the room's free slots before booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookSeatRequest true "Book Seat Request"
// @Success 201 {object} response.Data[model.Booking]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) BookSeat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookSeat")
	defer scope.End()

	req := dto.BookSeatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.BookSeat(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book seat")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Seat booked")

	response.WithJSON(writer, http.StatusCreated, res)
}

// CreatePaymentIntent asks the remote service for a card payment intent.
// @Summary Create a payment intent
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body paymentIntentRequest true "Amount"
// @Success 201 {object} response.Data[dto.PaymentIntentResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/{id}/payment-intent [post]
// @Security BearerAuth
func (handler *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePaymentIntent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := paymentIntentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreatePaymentIntent(ctx, id, req.Amount)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Msg("failed to create payment intent")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}
