package board

import (
	"encoding/json"
	"net/http"
	"seatpos/infras/otel"
	"seatpos/internal/domains/board/model"
	"seatpos/internal/domains/board/service"
	bookingDto "seatpos/internal/domains/booking/model/dto"
	orderDto "seatpos/internal/domains/order/model/dto"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Board
	otel    otel.Otel
}

func New(service service.Board, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/board", func(r chi.Router) {
		r.Get("/", handler.Snapshot)
		r.Put("/search", handler.SetSearch)

		r.Route("/bookings/{id}", func(r chi.Router) {
			r.Get("/", handler.Detail)
			r.Get("/qr", handler.QRCode)
			r.Post("/cancel", handler.Cancel)
			r.Post("/pay", handler.Pay)
			r.Post("/items", handler.AddItem)
			r.Delete("/orders/{orderId}/items/{itemId}", handler.DeleteItem)
			r.Post("/orders/{orderId}/complete", handler.CompleteOrder)
		})
	})
}

// decode reads a JSON body. Field rules are checked by the board so they hold for every caller.
func decode(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.BadRequestFromString("request body must be a JSON object") //nolint:wrapcheck
	}

	return nil
}

// staff is the signed-in staff member acting on the board.
func staff(r *http.Request) string {
	email, _ := r.Context().Value(constant.ContextKeyEmployeeEmail).(string)

	return email
}

// Snapshot returns the bookings of the active search, grouped by bucket.
// @Summary Booking board
// @Tags Board
// @Produce json
// @Success 200 {object} response.Data[model.Board]
// @Failure 500 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/board [get]
// @Security BearerAuth
func (handler *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Snapshot")
	defer scope.End()

	board, err := handler.service.Snapshot(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load board")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, board)
}

// SetSearch switches the board between searching by date, by email and today by email.
// @Summary Switch board search
// @Tags Board
// @Accept json
// @Produce json
// @Param request body model.Search true "Search"
// @Success 200 {object} response.Data[model.Search]
// @Failure 400 {object} response.Error
// @Router /v1/board/search [put]
// @Security BearerAuth
func (handler *Handler) SetSearch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetSearch")
	defer scope.End()

	req := model.Search{}

	if err := decode(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.SetMode(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to switch board search")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Detail returns one booking with its sub-orders.
// @Summary Booking detail
// @Tags Board
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[model.Detail]
// @Failure 404 {object} response.Error
// @Router /v1/board/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Detail")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	detail, err := handler.service.Detail(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Msg("failed to load booking detail")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, detail)
}

// Cancel cancels a pending or paid booking.
// @Summary Cancel booking
// @Tags Board
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 409 {object} response.Error
// @Router /v1/board/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Str("staff", staff(r)).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking canceled")

	response.WithMessage(w, http.StatusOK, "Booking canceled successfully")
}

// Pay settles a booking by cash or card.
// @Summary Pay booking
// @Tags Board
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.PaymentRequest true "Payment"
// @Success 200 {object} response.Data[dto.PayResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/board/bookings/{id}/pay [post]
// @Security BearerAuth
func (handler *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Pay")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := bookingDto.PaymentRequest{}

	if err := decode(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Pay(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Str("staff", staff(r)).Msg("failed to pay booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking paid")

	response.WithJSON(w, http.StatusOK, res)
}

// AddItem adds a product or a rented device to a paid booking.
// @Summary Add item
// @Tags Board
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body orderDto.ItemRequest true "Item"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/board/bookings/{id}/items [post]
// @Security BearerAuth
func (handler *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := orderDto.ItemRequest{}

	if err := decode(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.AddItem(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Str("staff", staff(r)).Msg("failed to add item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Item added successfully")
}

// DeleteItem removes an item from a sub-order that is not completed.
// @Summary Delete item
// @Tags Board
// @Produce json
// @Param id path string true "Booking ID"
// @Param orderId path string true "Order ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/board/bookings/{id}/orders/{orderId}/items/{itemId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	orderID := chi.URLParam(r, constant.RequestParamOrderID)
	itemID := chi.URLParam(r, constant.RequestParamItemID)

	if err := handler.service.DeleteItem(ctx, id, orderID, itemID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Str("order", orderID).Str("item", itemID).Str("staff", staff(r)).Msg("failed to delete item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Item deleted successfully")
}

// CompleteOrder marks a sub-order of an ongoing booking as completed.
// @Summary Complete order
// @Tags Board
// @Produce json
// @Param id path string true "Booking ID"
// @Param orderId path string true "Order ID"
// @Success 200 {object} response.Message
// @Failure 409 {object} response.Error
// @Router /v1/board/bookings/{id}/orders/{orderId}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteOrder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	orderID := chi.URLParam(r, constant.RequestParamOrderID)

	if err := handler.service.CompleteOrder(ctx, id, orderID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Str("order", orderID).Str("staff", staff(r)).Msg("failed to complete order")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Order completed successfully")
}

// QRCode renders the payment QR for the booking's current total.
// @Summary Payment QR
// @Tags Board
// @Produce png
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 409 {object} response.Error
// @Router /v1/board/bookings/{id}/qr [get]
// @Security BearerAuth
func (handler *Handler) QRCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QRCode")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	png, err := handler.service.QRCode(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking", id).Msg("failed to render qr code")

		response.WithError(w, err)

		return
	}

	response.WithPNG(w, png)
}
