package middleware

import (
	"context"
	"net/http"
	"seatpos/config"
	"seatpos/infras/otel"
	authService "seatpos/internal/domains/auth/service"
	"seatpos/permissions"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type SkipAuthKey string

// Auth guards routes behind the staff session
type Auth interface {
	Session(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	session    authService.Session
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(session authService.Session, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		session:    session,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func (m *authImpl) route(request *http.Request) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return permissions.Permission{}
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

	return m.permission.FindPermissions(path, request.Method)
}

// Session requires a restored, signed-in session and puts the staff identity and branch in the context.
func (m *authImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")

		skip, _ := ctx.Value(SkipAuthKey("skip")).(bool)
		if skip || m.route(request).Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if !m.session.Ready() {
			err := failure.SessionNotReadyError
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		profile, ok := m.session.Profile()
		if !ok {
			err := failure.SignedOutError
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyEmployeeID, profile.ID.String())
		ctx = context.WithValue(ctx, constant.ContextKeyEmployeeEmail, profile.Email)

		if branch, ok := m.session.BranchID(); ok {
			ctx = context.WithValue(ctx, constant.ContextKeyBranchID, branch)
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "session",
			"staff.id":        profile.ID.String(),
		})
		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// APIKey admits only callers presenting the configured key. Without a configured key every caller is admitted.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		if m.cfg.App.APIKey == constant.Empty {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if request.Header.Get(constant.RequestHeaderAPIKey) != m.cfg.App.APIKey {
			err := failure.ForbiddenError
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
