package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Timeouts
const (
	DefaultTimeout        = 30 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	ShutdownTimeout       = 15 * time.Second
)

// Database settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyLoginAttempt   = "auth:login_attempt:"
	RedisKeyConfirmation   = "request:confirmation:"
)

// Login throttling
const (
	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// Request confirmation
const (
	ConfirmationTTL = 5 * time.Minute
)

// Coach name memoization
const (
	CoachNameTTL = 10 * time.Minute
)

// Pagination defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Supported locales and themes
const (
	LocaleEN = "en"
	LocaleDE = "de"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Fallback display name when a coach profile cannot be resolved.
const UnknownCoachName = "Unknown"
