// Package auth holds the configured credentials and attaches them to
// outgoing requests according to each operation's declared requirement.
package auth

import (
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

// CredentialStore holds the credentials configured at client construction.
// It is immutable afterwards, so concurrent reads need no synchronization.
type CredentialStore struct {
	token      string
	licenseKey string
}

// NewCredentialStore creates a store from the optional token and license
// key. Empty values mean the credential is not configured.
func NewCredentialStore(token, licenseKey string) *CredentialStore {
	return &CredentialStore{
		token:      token,
		licenseKey: licenseKey,
	}
}

// Get looks up the credential of the given kind. Absence is a normal state,
// reported through ok, not an error.
func (s *CredentialStore) Get(kind vsapi.CredentialKind) (value string, ok bool) {
	switch kind {
	case vsapi.CredentialToken:
		return s.token, s.token != ""
	case vsapi.CredentialLicense:
		return s.licenseKey, s.licenseKey != ""
	default:
		return "", false
	}
}
