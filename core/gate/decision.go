package gate

import "encoding/json"

// Permission is the binary outcome returned to the hook framework.
type Permission string

const (
	// PermissionAllow lets the file read proceed.
	PermissionAllow Permission = "allow"
	// PermissionDeny blocks the file read.
	PermissionDeny Permission = "deny"
)

// Decision is the JSON body written to stdout for the hook framework.
// UserMessage carries the denial reason or an internal diagnostic and is
// omitted when there is nothing to explain.
type Decision struct {
	Permission  Permission `json:"permission"`
	UserMessage string     `json:"user_message,omitempty"`
}

// Allow returns a plain allow decision.
func Allow() Decision {
	return Decision{Permission: PermissionAllow}
}

// AllowWithMessage returns an allow decision carrying a diagnostic.
// Used on the fail-open paths so the caller still sees what went wrong.
func AllowWithMessage(message string) Decision {
	return Decision{Permission: PermissionAllow, UserMessage: message}
}

// Deny returns a deny decision with the given reason.
func Deny(reason string) Decision {
	return Decision{Permission: PermissionDeny, UserMessage: reason}
}

// JSON encodes the decision as a single JSON object. Encoding a Decision
// cannot fail, so the result is always a well-formed document.
func (d Decision) JSON() []byte {
	data, _ := json.Marshal(d)
	return data
}

// Allowed reports whether the decision permits the read.
func (d Decision) Allowed() bool {
	return d.Permission == PermissionAllow
}
