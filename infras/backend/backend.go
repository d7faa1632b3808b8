// Package backend is the client of the remote booking and ordering service. It signs every
// call with the stored access token, refreshes the pair when it is about to expire or is
// rejected, and maps remote failures onto the failure taxonomy.
package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"seatpos/config"
	"seatpos/infras/credstore"
	"seatpos/infras/jwt"
	"seatpos/infras/otel"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"seatpos/shared/timezone"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	pathRefresh = "/api/auth/refresh-token"

	otelStatusAttribute = "http.status_code"
	otelMethodAttribute = "http.method"

	refreshFlightKey = "refresh"
)

// Request describes one call to the remote service.
type Request struct {
	// Operation names the call in errors and traces, e.g. "cancel booking".
	Operation string
	Method    string
	Path      string
	Query     url.Values
	Body      any
	// Result receives the decoded body. Nil discards it.
	Result any
	// List unwraps a {content: ...} envelope before decoding into Result.
	List bool
	// Public calls are sent without credentials.
	Public bool
}

// Response carries what callers may need beyond the decoded body.
type Response struct {
	Status int
	Header http.Header
}

type Backend interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type backendImpl struct {
	client *resty.Client
	store  credstore.Store
	jwt    jwt.JWT
	otel   otel.Otel

	refresh singleflight.Group
}

func New(cfg *config.Config, store credstore.Store, jwtService jwt.JWT, ot otel.Otel) Backend {
	client := resty.New().
		SetBaseURL(cfg.Backend.BaseURL).
		SetTimeout(time.Duration(cfg.Backend.TimeoutSeconds)*time.Second).
		SetHeader(constant.RequestHeaderUserAgent, cfg.Backend.UserAgent).
		SetHeader(constant.RequestHeaderContentType, constant.ContentTypeJSON).
		SetRetryCount(0)

	return &backendImpl{
		client: client,
		store:  store,
		jwt:    jwtService,
		otel:   ot,
	}
}

func (b *backendImpl) Do(ctx context.Context, req Request) (res *Response, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+"."+req.Operation)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelEndpointAttributeKey: req.Path,
		otelMethodAttribute:               req.Method,
	})

	if req.Public {
		resp, err := b.execute(ctx, req, "")
		if err != nil {
			return nil, err
		}

		scope.SetAttribute(otelStatusAttribute, resp.StatusCode())

		return b.finish(req, resp)
	}

	credentials, err := b.credentials(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := b.execute(ctx, req, credentials.AccessToken)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusUnauthorized && credentials.RefreshToken != "" {
		log.Info().Str("operation", req.Operation).Msg("access token rejected, refreshing")

		credentials, err = b.refreshCredentials(ctx, credentials)
		if err != nil {
			return nil, err
		}

		resp, err = b.execute(ctx, req, credentials.AccessToken)
		if err != nil {
			return nil, err
		}
	}

	scope.SetAttribute(otelStatusAttribute, resp.StatusCode())

	return b.finish(req, resp)
}

// credentials loads the stored pair and refreshes it first when the access token is about to expire.
func (b *backendImpl) credentials(ctx context.Context) (credstore.Credentials, error) {
	credentials, err := b.store.Load(ctx)
	if err != nil {
		if errors.Is(err, credstore.ErrNotFound) {
			return credentials, failure.SignedOutError
		}

		log.Error().Err(err).Msg("failed to load credentials")

		return credentials, failure.Unauthorized("stored credentials are unreadable")
	}

	if credentials.RefreshToken != "" && b.jwt.ExpiresWithin(credentials.AccessToken, timezone.Now()) {
		return b.refreshCredentials(ctx, credentials)
	}

	return credentials, nil
}

// refreshCredentials trades the refresh token for a new pair. Concurrent callers share one exchange.
func (b *backendImpl) refreshCredentials(ctx context.Context, current credstore.Credentials) (credstore.Credentials, error) {
	result, err, _ := b.refresh.Do(refreshFlightKey, func() (any, error) {
		ctx := context.WithoutCancel(ctx)

		var pair TokenPair

		_, err := b.Do(ctx, Request{
			Operation: "refresh token",
			Method:    http.MethodPost,
			Path:      pathRefresh,
			Body:      map[string]string{"refreshToken": current.RefreshToken},
			Result:    &pair,
			Public:    true,
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to refresh access token")

			if failure.GetCode(err) < http.StatusInternalServerError {
				return nil, failure.Unauthorized("session expired, please sign in again")
			}

			return nil, err
		}

		if pair.RefreshToken == "" {
			pair.RefreshToken = current.RefreshToken
		}

		next := credstore.Credentials{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
		if err := b.store.Save(ctx, next); err != nil {
			return nil, fmt.Errorf("failed to keep refreshed credentials: %w", err)
		}

		log.Info().Msg("access token refreshed")

		return next, nil
	})
	if err != nil {
		return current, err //nolint:wrapcheck
	}

	credentials, _ := result.(credstore.Credentials)

	return credentials, nil
}

func (b *backendImpl) execute(ctx context.Context, req Request, accessToken string) (*resty.Response, error) {
	requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	r := b.client.R().
		SetContext(ctx).
		SetHeader(constant.RequestHeaderRequestID, requestID)

	if accessToken != "" {
		r.SetAuthToken(accessToken)
	}

	if req.Query != nil {
		r.SetQueryParamsFromValues(req.Query)
	}

	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, transportFailure(req.Operation, err)
	}

	log.Debug().
		Str("operation", req.Operation).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("remote call")

	return resp, nil
}

func (b *backendImpl) finish(req Request, resp *resty.Response) (*Response, error) {
	if resp.IsError() || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, remoteFailure(req.Operation, resp.StatusCode(), resp.Body())
	}

	if req.Result != nil && len(resp.Body()) > 0 {
		decode := json.Unmarshal
		if req.List {
			decode = Unwrap
		}

		if err := decode(resp.Body(), req.Result); err != nil {
			log.Error().Err(err).Str("operation", req.Operation).Msg("failed to decode remote response")

			return nil, failure.Remote(http.StatusBadGateway, fmt.Sprintf("%s returned an unreadable response", req.Operation))
		}
	}

	return &Response{Status: resp.StatusCode(), Header: resp.Header()}, nil
}

// Path fills a path template with escaped segments.
func Path(template string, segments ...string) string {
	args := make([]any, len(segments))
	for i, segment := range segments {
		args[i] = url.PathEscape(segment)
	}

	return fmt.Sprintf(template, args...)
}

// Unwrap decodes a list payload that is either wrapped as {"content": X} or sent bare.
func Unwrap(body []byte, dest any) error {
	var envelope struct {
		Content json.RawMessage `json:"content"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Content) > 0 && string(envelope.Content) != "null" {
		body = envelope.Content
	}

	return json.Unmarshal(body, dest) //nolint:wrapcheck
}

func remoteFailure(operation string, status int, body []byte) error {
	var payload errorBody
	_ = json.Unmarshal(body, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}

	log.Warn().Str("operation", operation).Int("status", status).Str("message", message).Msg("remote call failed")

	return failure.Remote(status, message)
}

func transportFailure(operation string, err error) error {
	var netErr net.Error

	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		log.Error().Err(err).Str("operation", operation).Msg("remote call timed out")

		return failure.Timeout(operation)
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", operation, err)
	}

	log.Error().Err(err).Str("operation", operation).Msg("remote service unreachable")

	return failure.Unavailable("remote service is unreachable")
}
