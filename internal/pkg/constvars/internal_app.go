package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

// Textual patterns used at the HTTP boundary for date-time values.
const (
	FormatDateTime = "2006-01-02 15:04"
	FormatDate     = "2006-01-02"
	FormatClock    = "15:04"
)

const (
	QueryParamStart = "start"
	QueryParamEnd   = "end"

	URLParamSpecifiedTime = "specifiedTime"
	URLParamClient        = "client"
)
