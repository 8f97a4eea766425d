package constvars

const (
	URLParamPollID = "poll_id"
)

const (
	URLQueryParamLeanIXURL   = "leanix_url"
	URLQueryParamAPIToken    = "api_token"
	URLQueryParamWorkspaceID = "workspace_id"
	URLQueryParamLimit       = "limit"
)
