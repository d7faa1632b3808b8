package account

import (
	"net/http"
	"seatpos/infras/otel"
	"seatpos/internal/domains/account/service"
	"seatpos/shared/constant"
	"seatpos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Account
	otel    otel.Otel
}

func New(service service.Account, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/customers", handler.GetCustomer)
	r.Get("/branch", handler.GetBranch)
}

// GetCustomer looks a customer up by email, with their member point balance.
// @Summary Find customer
// @Tags Account
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {object} response.Data[model.Customer]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/customers [get]
// @Security BearerAuth
func (handler *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomer")
	defer scope.End()

	email := r.URL.Query().Get(constant.RequestParamEmail)

	customer, err := handler.service.GetCustomer(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("email", email).Msg("failed to get customer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customer)
}

// GetBranch returns the branch the signed-in staff member works at.
// @Summary Current branch
// @Tags Account
// @Produce json
// @Success 200 {object} response.Data[model.Branch]
// @Failure 400 {object} response.Error
// @Router /v1/branch [get]
// @Security BearerAuth
func (handler *Handler) GetBranch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBranch")
	defer scope.End()

	branch, _ := ctx.Value(constant.ContextKeyBranchID).(string)

	res, err := handler.service.GetBranch(ctx, branch)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("branch", branch).Msg("failed to get branch")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
