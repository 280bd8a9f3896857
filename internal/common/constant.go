package common

// Keys under which the active session is persisted in the local metadata
// store. The names mirror the storage keys of the original web dashboard so
// a session survives client restarts the same way it survived page reloads.
const (
	SessionTokenKey = "sp_token"
	SessionRoleKey  = "sp_role"
)

// AuthorizationHeader carries the bearer credential on authenticated requests.
const AuthorizationHeader = "Authorization"

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-Id"
