package auth

import (
	"encoding/json"
	"net/http"
	"seatpos/infras/otel"
	"seatpos/internal/domains/auth/model/dto"
	"seatpos/internal/domains/auth/service"
	boardService "seatpos/internal/domains/board/service"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	session service.Session
	board   boardService.Board
	otel    otel.Otel
}

func New(session service.Session, board boardService.Board, otel otel.Otel) Handler {
	return Handler{
		session: session,
		board:   board,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Get("/", handler.State)
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)
	})
}

// State reports whether the session has been restored and who is signed in.
// @Summary Session state
// @Tags Session
// @Produce json
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Router /v1/session [get]
func (handler *Handler) State(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SessionState")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.session.State())
}

// Login signs a staff member in
// @Summary Sign in
// @Description Validates the credentials locally, signs in against the remote service and loads the staff profile.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/session/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	// validation runs in the session so the rules hold for every caller
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode login request")

		response.WithError(w, failure.BadRequestFromString("request body must be a JSON object"))

		return
	}

	res, err := handler.session.SignIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign in")

		response.WithError(w, err)

		return
	}

	handler.board.Reset()

	scope.AddEvent("Staff signed in")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout signs the staff member out and drops every cached read
// @Summary Sign out
// @Tags Session
// @Produce json
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 500 {object} response.Error
// @Router /v1/session/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.session.SignOut(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign out")

		response.WithError(w, err)

		return
	}

	handler.board.Reset()

	scope.AddEvent("Staff signed out")

	response.WithJSON(w, http.StatusOK, handler.session.State())
}
