package handler

// User-facing error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestFormat  = "Invalid request format"
	ErrMsgLocaleNotFound        = "Locale not found"
	ErrMsgInvalidKey            = "Greeting key must not be empty"
	ErrMsgStoreUnavailable      = "Greeting saved in memory but could not be persisted"
	ErrMsgGenericServerError    = "Something went wrong"
)

// Success messages
const (
	MsgCustomGreetingSaved   = "Custom greeting saved"
	MsgCustomGreetingRemoved = "Custom greeting removed"
	MsgLocaleSwitched        = "Locale switched"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgSetCustomFailed = "Failed to set custom greeting"
	LogMsgRemoveFailed    = "Failed to remove custom greeting"
	LogMsgSetLocaleFailed = "Failed to switch locale"
)

// Health statuses
const (
	HealthStatusOK = "ok"
)

// Path parameters
const (
	PathParamKey = "key"
)
