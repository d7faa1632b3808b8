package room

import (
	"net/http"
	"seatpos/infras/otel"
	orderService "seatpos/internal/domains/order/service"
	"seatpos/internal/domains/room/model"
	"seatpos/internal/domains/room/model/dto"
	"seatpos/internal/domains/room/service"
	"seatpos/shared/constant"
	"seatpos/shared/validator"
	"seatpos/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	order   orderService.Order
	otel    otel.Otel
}

func New(service service.Room, order orderService.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		order:   order,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/types", handler.GetRoomTypes)
		routerGroup.Get("/status", handler.GetRoomsWithStatus)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Get("/{id}/slots", handler.GetSlots)
		routerGroup.Get("/{id}/orders", handler.GetOrders)
	})
}

func branchID(r *http.Request) string {
	branch, _ := r.Context().Value(constant.ContextKeyBranchID).(string)

	return branch
}

// GetRooms lists the rooms of the signed-in staff member's branch.
// @Summary Get rooms of the branch
// @Description Lists the branch's rooms, optionally narrowed to one room type.
// @Tags Room
// @Produce json
// @Param roomTypeId query string false "Room type"
// @Success 200 {object} response.Data[[]model.Room] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	req := dto.GetRoomsRequest{RoomTypeID: r.URL.Query().Get(constant.RequestParamRoomType)}
	branch := branchID(r)

	var (
		rooms []model.Room
		err   error
	)

	if req.RoomTypeID == constant.Empty {
		rooms, err = handler.service.GetByBranch(ctx, branch)
	} else {
		rooms, err = handler.service.GetByBranchAndType(ctx, branch, req.RoomTypeID)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("branch", branch).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomTypes lists every room type.
// @Summary Get room types
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]model.RoomType]
// @Failure 502 {object} response.Error
// @Router /v1/rooms/types [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	types, err := handler.service.GetTypes(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, types)
}

// GetRoomsWithStatus lists the branch's rooms with their live occupancy.
// @Summary Get rooms with occupancy
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]model.Room]
// @Failure 502 {object} response.Error
// @Router /v1/rooms/status [get]
// @Security BearerAuth
func (handler *Handler) GetRoomsWithStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomsWithStatus")
	defer scope.End()

	rooms, err := handler.service.GetWithStatus(ctx, branchID(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms with status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[model.Room]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", id).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetSlots lists the free and booked windows of a room on one day.
// @Summary Get room availability
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Day, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.GetSlotsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rooms/{id}/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	req := dto.GetSlotsRequest{
		RoomID: chi.URLParam(r, constant.RequestParamID),
		Date:   r.URL.Query().Get(constant.RequestParamDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	slots, err := handler.service.GetSlots(ctx, req.RoomID, req.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", req.RoomID).Str("date", req.Date).Msg("failed to get slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.GetSlotsResponse{RoomID: req.RoomID, Date: req.Date, Slots: slots})
}

// GetOrders lists the sub-orders placed from a room.
// @Summary Get room orders
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[[]orderModel.Order]
// @Failure 502 {object} response.Error
// @Router /v1/rooms/{id}/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomOrders")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	orders, err := handler.order.GetByRoom(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", id).Msg("failed to get room orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}
