package middleware

// Keys under which middleware stores request-scoped values in the gin
// context.
const (
	DBKey      = "db"
	UserKey    = "current_user"
	TokenIDKey = "access_token_id"
)
