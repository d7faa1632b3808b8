package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"seatpos/config"
	"seatpos/infras/backend"
	"seatpos/infras/credstore"
	infraJWT "seatpos/infras/jwt"
	"seatpos/infras/otel/mocks"
	"seatpos/shared/failure"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func token(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}).SignedString([]byte("remote"))
	require.NoError(t, err)

	return s
}

type fixture struct {
	client backend.Backend
	store  credstore.Store
	server *httptest.Server
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := credstore.Open(filepath.Join(t.TempDir(), "seatpos.db"), "", mocks.NewOtel())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.TimeoutSeconds = 1
	cfg.Backend.UserAgent = "seatpos-test"
	cfg.Backend.RefreshSkewSeconds = 30

	return &fixture{
		client: backend.New(cfg, store, infraJWT.New(cfg), mocks.NewOtel()),
		store:  store,
		server: server,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "content envelope", body: `{"content":["a","b"],"totalPages":1}`, want: []string{"a", "b"}},
		{name: "bare array", body: `["a"]`, want: []string{"a"}},
		{name: "null content falls back to body", body: `{"content":null}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			err := backend.Unwrap([]byte(tt.body), &got)

			if tt.want == nil {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDo_PublicCallSendsNoCredentials(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "seatpos-test", r.Header.Get("User-Agent"))

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "staff@cafe.vn", body["email"])

		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "a", "refreshToken": "r"})
	}))

	var pair backend.TokenPair
	_, err := f.client.Do(context.Background(), backend.Request{
		Operation: "login",
		Method:    http.MethodPost,
		Path:      "/api/auth/login",
		Body:      map[string]string{"email": "staff@cafe.vn", "password": "secret"},
		Result:    &pair,
		Public:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, backend.TokenPair{AccessToken: "a", RefreshToken: "r"}, pair)
}

func TestDo_SignedOutWithoutCredentials(t *testing.T) {
	var calls atomic.Int32

	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, map[string]string{})
	}))

	_, err := f.client.Do(context.Background(), backend.Request{Operation: "get profile", Method: http.MethodGet, Path: "/api/employee"})

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	assert.Zero(t, calls.Load())
}

func TestDo_SendsBearerAndReadsHeader(t *testing.T) {
	access := token(t, "emp-1", time.Hour)

	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := infraJWT.ExtractTokenFromHeader(r.Header.Get("Authorization"))
		assert.NoError(t, err)
		assert.Equal(t, access, raw)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("date"))

		w.Header().Set("Date", "Mon, 01 Jan 2024 02:00:00 GMT")
		writeJSON(w, http.StatusOK, map[string]any{"content": []map[string]string{{"id": "b-1"}}})
	}))

	require.NoError(t, f.store.Save(context.Background(), credstore.Credentials{AccessToken: access, RefreshToken: "refresh"}))

	var bookings []struct {
		ID string `json:"id"`
	}

	resp, err := f.client.Do(context.Background(), backend.Request{
		Operation: "list bookings",
		Method:    http.MethodGet,
		Path:      "/api/employee/bookings/bookings-by-date",
		Query:     map[string][]string{"date": {"2024-01-01"}},
		Result:    &bookings,
		List:      true,
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b-1", bookings[0].ID)
	assert.Equal(t, "Mon, 01 Jan 2024 02:00:00 GMT", resp.Header.Get("Date"))
}

func TestDo_RefreshesOnceAfterUnauthorized(t *testing.T) {
	stale := token(t, "emp-1", time.Hour)
	fresh := token(t, "emp-1-fresh", 2*time.Hour)

	var refreshes atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "refresh-1", body["refreshToken"])

		writeJSON(w, http.StatusOK, map[string]string{"accessToken": fresh, "refreshToken": "refresh-2"})
	})
	mux.HandleFunc("GET /api/employee", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+fresh {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token expired"})

			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"id": "emp-1"})
	})

	f := newFixture(t, mux)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, credstore.Credentials{AccessToken: stale, RefreshToken: "refresh-1"}))

	var profile map[string]string
	_, err := f.client.Do(ctx, backend.Request{Operation: "get profile", Method: http.MethodGet, Path: "/api/employee", Result: &profile})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", profile["id"])
	assert.Equal(t, int32(1), refreshes.Load())

	stored, err := f.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, stored.AccessToken)
	assert.Equal(t, "refresh-2", stored.RefreshToken)
}

func TestDo_RefreshesBeforeExpiry(t *testing.T) {
	expiring := token(t, "emp-1", 5*time.Second)
	fresh := token(t, "emp-1", time.Hour)

	var refreshes atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
		refreshes.Add(1)
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": fresh})
	})
	mux.HandleFunc("GET /api/employee", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+fresh, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]string{})
	})

	f := newFixture(t, mux)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, credstore.Credentials{AccessToken: expiring, RefreshToken: "refresh-1"}))

	_, err := f.client.Do(ctx, backend.Request{Operation: "get profile", Method: http.MethodGet, Path: "/api/employee"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), refreshes.Load())

	stored, err := f.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", stored.RefreshToken)
}

func TestDo_RejectedRefreshSignsOut(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh-token", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Refresh token revoked"})
	})
	mux.HandleFunc("GET /api/employee", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{})
	})

	f := newFixture(t, mux)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, credstore.Credentials{AccessToken: token(t, "emp-1", time.Hour), RefreshToken: "refresh-1"}))

	_, err := f.client.Do(ctx, backend.Request{Operation: "get profile", Method: http.MethodGet, Path: "/api/employee"})

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestDo_RemoteErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        any
		wantCode    int
		wantMessage string
	}{
		{
			name:        "server message is surfaced",
			status:      http.StatusBadRequest,
			body:        map[string]string{"message": "Booking already canceled"},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Booking already canceled",
		},
		{
			name:        "error field is used when message is missing",
			status:      http.StatusNotFound,
			body:        map[string]string{"error": "Not Found"},
			wantCode:    http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "generic fallback",
			status:      http.StatusInternalServerError,
			body:        "oops",
			wantCode:    http.StatusInternalServerError,
			wantMessage: failure.MessageRemoteFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))
			require.NoError(t, f.store.Save(context.Background(), credstore.Credentials{AccessToken: token(t, "e", time.Hour)}))

			_, err := f.client.Do(context.Background(), backend.Request{
				Operation: "cancel booking",
				Method:    http.MethodPut,
				Path:      "/api/employee/bookings/cancel/b-1",
			})

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestDo_TimeoutSurfacesInsteadOfHanging(t *testing.T) {
	release := make(chan struct{})

	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		writeJSON(w, http.StatusOK, map[string]string{})
	}))
	defer close(release)

	require.NoError(t, f.store.Save(context.Background(), credstore.Credentials{AccessToken: token(t, "e", time.Hour)}))

	_, err := f.client.Do(context.Background(), backend.Request{
		Operation: "pay booking",
		Method:    http.MethodPost,
		Path:      "/api/employee/bookings/payment/b-1",
		Body:      map[string]any{"paymentMethod": "CASH"},
	})

	assert.Equal(t, http.StatusGatewayTimeout, failure.GetCode(err))
	assert.Equal(t, "pay booking timed out", err.Error())
}

func TestDo_UnreachableService(t *testing.T) {
	f := newFixture(t, http.NotFoundHandler())
	f.server.Close()

	_, err := f.client.Do(context.Background(), backend.Request{
		Operation: "login",
		Method:    http.MethodPost,
		Path:      "/api/auth/login",
		Public:    true,
	})

	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/api/employee/rooms/rooms-with-type/b/1/rt/2", backend.Path("/api/employee/rooms/rooms-with-type/b/%s/rt/%s", "1", "2"))
	assert.Equal(t, "/api/employee/rooms/a%2Fb", backend.Path("/api/employee/rooms/%s", "a/b"))
}
