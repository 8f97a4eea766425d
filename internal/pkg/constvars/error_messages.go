package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please contact admin!"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your request"
	ErrClientInvalidSurveyDefinition       = "Survey definition is invalid"
	ErrClientInvalidJSONInput              = "Input is not valid JSON"
	ErrClientInvalidLeanIXConfig           = "LeanIX configuration is invalid"
	ErrClientLeanIXAuthFailed              = "Failed to authenticate with LeanIX"
	ErrClientLeanIXUnreachable             = "Failed to connect to LeanIX"
	ErrClientLeanIXRejectedRequest         = "LeanIX rejected the request"
	ErrClientPollNotFound                  = "Poll not found or access denied"
	ErrClientBatchEmpty                    = "Batch requests cannot be empty"
	ErrClientBatchTooLarge                 = "Batch size exceeds the configured maximum"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
)

// Developer-facing messages
const (
	ErrDevCannotParseJSON      = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON    = "Failed to marshal value to JSON"
	ErrDevValidationFailed     = "Request validation failed"
	ErrDevSurveyInvalid        = "Survey definition failed schema validation"
	ErrDevLeanIXConfigInvalid  = "LeanIX configuration validation failed: %s"
	ErrDevTokenExchangeFailed  = "OAuth token exchange with LeanIX failed"
	ErrDevCreateHTTPRequest    = "Failed to build outbound HTTP request"
	ErrDevSendHTTPRequest      = "Failed to send outbound HTTP request"
	ErrDevReadResponseBody     = "Failed to read response body"
	ErrDevDecodeResponse       = "Failed to decode response from LeanIX"
	ErrDevLeanIXStatus         = "LeanIX API returned status %d: %s"
	ErrDevRedisSet             = "Failed to write value to redis"
	ErrDevRedisGet             = "Failed to read value from redis for key: %s"
	ErrDevMongoDBInsert        = "Failed to insert document to MongoDB"
	ErrDevMongoDBFind          = "Failed to find documents in MongoDB"
	ErrDevURLQueryParamInvalid = "Invalid value for query parameter: %s"
	ErrDevURLParamInvalid      = "Invalid value for URL parameter: %s"
	ErrDevServerDeadline       = "Request deadline exceeded"
	ErrDevBatchEmpty           = "Received batch request with no items"
	ErrDevBatchTooLarge        = "Batch of %d items exceeds maximum of %d"
)
