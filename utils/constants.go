// File: utils/constants.go
package utils

import "time"

// LoggerContextKey is the gin context key holding the request-scoped *zap.Logger.
const LoggerContextKey = "logger"

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// ScheduleCachePrefix is the prefix used for Redis schedule result keys.
const ScheduleCachePrefix = "schedule:result:"

// RedisPingTimeout bounds connectivity checks against Redis.
const RedisPingTimeout = 2 * time.Second
