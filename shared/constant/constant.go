package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyEmployeeID    contextKey = "employee_id"
	ContextKeyEmployeeEmail contextKey = "employee_email"
	ContextKeyBranchID      contextKey = "branch_id"
	ContextKeyRequestID     contextKey = "request_id"
)

const (
	RequestParamID       = "id"
	RequestParamOrderID  = "orderId"
	RequestParamItemID   = "itemId"
	RequestParamDate     = "date"
	RequestParamEmail    = "email"
	RequestParamRoomType = "roomTypeId"
	RequestParamPage     = "page"
	RequestParamLimit    = "limit"
	RequestParamSortBy   = "sortBy"
	RequestParamSortDir  = "sortDir"
	RequestParamKeyword  = "keyword"
)

const (
	DefaultValuePage    = 0
	DefaultValueLimit   = 30
	DefaultValueSortBy  = "createdAt"
	DefaultValueSortDir = "desc"
)

const (
	DateFormat      = time.RFC3339
	DayFormat       = "2006-01-02"
	ClockFormat     = "15:04"
	ClockFormatSecs = "15:04:05"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelEndpointAttributeKey = "http.endpoint"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	ResponseHeaderDate              = "Date"
	ResponseHeaderCacheControl      = "Cache-Control"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
