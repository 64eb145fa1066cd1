package constants

type ContextKey string

// 身份資訊由上游認證服務透過 header 轉發
const (
	IdentityHeaderUserID    = "X-User-Id"
	IdentityHeaderEmail     = "X-User-Email"
	IdentityHeaderFirstName = "X-User-First-Name"
	IdentityHeaderLastName  = "X-User-Last-Name"
	IdentityHeaderRole      = "X-User-Role"

	IdentityPayloadKey ContextKey = "identity_payload"
)

const (
	RoleAdmin = "admin"
)

type RequestID string

const (
	RequestIDHeader              = "X-Request-Id"
	RequestIDKey       RequestID = "request_id"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)
