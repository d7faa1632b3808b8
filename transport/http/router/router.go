package router

import (
	"seatpos/internal/handlers/account"
	"seatpos/internal/handlers/auth"
	"seatpos/internal/handlers/board"
	"seatpos/internal/handlers/booking"
	"seatpos/internal/handlers/catalog"
	"seatpos/internal/handlers/room"
	"seatpos/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Session auth.Handler
	Board   board.Handler
	Booking booking.Handler
	Room    room.Handler
	Catalog catalog.Handler
	Account account.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.APIKey)
		routerGroup.Use(r.Auth.Session)

		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Board.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Account.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
