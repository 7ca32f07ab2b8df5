package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized = "Unauthorized"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Server limits
const (
	MaxRequestBodyBytes = 1 << 16
	ReadHeaderTimeout   = 5 * time.Second
)

// Route paths
const (
	PathHealthz   = "/healthz"
	PathMetrics   = "/metrics"
	PathAPIPrefix = "/api/v1"
	PathSwagger   = "/swagger/"
)

// QuietPaths are not logged per request
var QuietPaths = []string{
	PathHealthz,
	PathMetrics,
	PathSwagger,
}
