package shared

import (
	"context"
	"net/url"
	"seatpos/shared/cache"
	"seatpos/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a key prefix and its parts, skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	key := prefix

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		key += cacheKeySeparator + part
	}

	return key
}

// BuildCacheKeyWithQuery appends the encoded query to the key. url.Values encodes in key order,
// so equal queries always produce equal keys.
func BuildCacheKeyWithQuery(prefix string, query url.Values, parts ...string) string {
	key := BuildCacheKey(prefix, parts...)

	if encoded := query.Encode(); encoded != constant.Empty {
		key += cacheKeySeparator + encoded
	}

	return key
}

// CachePattern returns the glob matching every key nested under prefix. The pattern stops at a
// separator, so "booking:detail:1" never matches "booking:detail:12".
func CachePattern(prefix string) string {
	prefix = strings.TrimSuffix(prefix, constant.Asterix)
	if prefix != constant.Empty && !strings.HasSuffix(prefix, cacheKeySeparator) {
		prefix += cacheKeySeparator
	}

	return prefix + constant.Asterix
}

// UnderPrefix reports whether key is prefix itself or nested under it. An empty prefix covers
// every key.
func UnderPrefix(key, prefix string) bool {
	if prefix == constant.Empty || strings.HasSuffix(prefix, cacheKeySeparator) {
		return strings.HasPrefix(key, prefix)
	}

	return key == prefix || strings.HasPrefix(key, prefix+cacheKeySeparator)
}

// InvalidateCaches removes the key named by prefix and every cached key under it. Failures are
// only logged.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if prefix != constant.Empty && !strings.HasSuffix(prefix, cacheKeySeparator) {
		if err := c.Delete(ctx, prefix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}

	if err := c.Clear(ctx, CachePattern(prefix)); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
