package middleware

import (
	"errors"
	"net"
	"net/http"
	"seatpos/shared"
	"seatpos/shared/cache"
	"seatpos/shared/constant"
	"seatpos/shared/timezone"
	"seatpos/transport/http/response"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// window is a fixed rate limit window. Its expiry is set once, when the first request opens it.
type window struct {
	Count   int       `json:"count"`
	Started time.Time `json:"started"`
}

// RateLimit counts requests per client and user agent in fixed windows kept in the read cache.
// A cache outage admits the request.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := a.config.App.RateLimiter
			if !limiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			ctx := r.Context()
			now := timezone.Now()
			length := time.Duration(limiter.WindowSeconds) * time.Second
			key := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			current := window{}

			err := a.cache.Get(ctx, key, &current)
			if err != nil && !errors.Is(err, cache.Nil) {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, admitting request")
				next.ServeHTTP(w, r)

				return
			}

			if err != nil || now.Sub(current.Started) >= length {
				current = window{Started: now}
			}

			current.Count++

			if current.Count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			ttl := max(1, int((length - now.Sub(current.Started)).Seconds()))
			if err = a.cache.Save(ctx, key, current, ttl); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to record request in rate limiter")
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-current.Count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != constant.Empty {
		return ua
	}

	return unknownUserAgent
}

// getClientIP prefers the first forwarded address, then X-Real-IP, then the peer address without its port.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
