// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, search bounds and cross-cutting keys that
are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Search Bounds: Pagination ranges, excerpt size and discovery sample size.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "gutensearch"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout must outlive GlobalRequestTimeout so slow searches can still answer.
	DefaultWriteTimeout = 35 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 32 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds connecting and loading the startup snapshots.
	StartupTimeout = 2 * time.Minute
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 5.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 20

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Search Bounds

const (
	// MaxRange is the upper bound for both the row limit and the starting row.
	MaxRange = 60_000_000

	// DefaultLimit is the number of rows shown when the caller does not say.
	DefaultLimit = 10

	// DefaultOffset is the 1-based starting row.
	DefaultOffset = 1

	// MaxExcerptLength caps the aggregated snippet text per book, in characters.
	MaxExcerptLength = 10_000

	// DiscoverySampleSize is the fixed number of random books returned by discovery mode.
	DiscoverySampleSize = 30

	// HeadlineFragments is the ts_headline MaxFragments value.
	HeadlineFragments = 1000

	// HighlightMarker surrounds matched terms in excerpts (markdown bold).
	HighlightMarker = "**"

	// ExcerptSeparator joins snippets of different paragraphs of the same book.
	ExcerptSeparator = "\n[...]\n"

	// BookURLPrefix is the canonical external identifier URL for a book number.
	BookURLPrefix = "https://www.gutenberg.org/ebooks/"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaGutenberg = "gutenberg"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixPreciseSearch = "search:precise:"
	RedisKeyQueryLog         = "querylog"

	// QueryLogCapacity is the number of most recent query log entries retained.
	QueryLogCapacity = 10_000
)
