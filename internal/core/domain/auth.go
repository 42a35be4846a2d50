package domain

// AuthMethod identifies how a token was obtained.
type AuthMethod string

const (
	// AuthMethodNone means no credential is available.
	AuthMethodNone AuthMethod = "none"
	// AuthMethodPAT uses a Personal Access Token supplied directly.
	AuthMethodPAT AuthMethod = "pat"
	// AuthMethodEnv uses a token read from a process environment variable.
	AuthMethodEnv AuthMethod = "env"
)
