package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	// PollCacheKeyFormat composes the read-cache key as workspaceID:pollID.
	PollCacheKeyFormat = "polls:%s:%s"

	MongoCollectionSubmissions = "survey_submissions"

	LeanIXOAuthTokenPath = "/services/mtm/v1/oauth2/token"
	LeanIXPollsPath      = "/services/poll/v2/polls"

	ResponseUnknown = "unknown"
)
