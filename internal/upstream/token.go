// Package upstream holds shared plumbing for calls to collaborating
// services (client directory, incident query).
package upstream

// TokenProvider supplies the bearer token attached to upstream requests.
// A nil TokenProvider means the upstream is called unauthenticated.
type TokenProvider interface {
	Token() (string, error)
}

// StaticToken is a TokenProvider around a fixed token value.
type StaticToken string

func (t StaticToken) Token() (string, error) {
	return string(t), nil
}

// ProviderFor returns a TokenProvider for the given configured token, or
// nil when no token is configured.
func ProviderFor(token string) TokenProvider {
	if token == "" {
		return nil
	}
	return StaticToken(token)
}
