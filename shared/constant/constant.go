package constant

import (
	"time"
)

const (
	RequestParamSlide = "slide"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	// DateFormat is the layout of the CSV start and end columns.
	DateFormat = "2006-01-02 15:04"

	// StorageIDMask keeps derived identifiers inside the non-negative range
	// of a 32-bit serial column.
	StorageIDMask = 0x7fffffff
)

const (
	HTTPClientTimeout = 30 * time.Second
)

const (
	CachePrefixRoom  = "room"
	CachePrefixSlide = "slide"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderCacheControl       = "Cache-Control"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Empty = ""
)
