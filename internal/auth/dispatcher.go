package auth

import (
	"net/http"

	"github.com/virtstack-io/vsapi-client/internal/constants"
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

// Dispatcher resolves an operation's credential requirement against the
// store and injects the matching headers into the outgoing request.
type Dispatcher struct {
	store *CredentialStore
}

// NewDispatcher creates a dispatcher backed by the given store.
func NewDispatcher(store *CredentialStore) *Dispatcher {
	return &Dispatcher{store: store}
}

// Apply satisfies every kind in the requirement. All kinds are resolved
// before any header is written: if any required credential is absent (or a
// kind is unknown), Apply fails with AuthConfigError naming the missing
// kinds and leaves the headers untouched.
//
// A header the caller set explicitly wins over the dispatcher default, which
// allows per-call overrides for mixed-auth endpoints.
func (d *Dispatcher) Apply(headers http.Header, requirement vsapi.Requirement) error {
	var missing []vsapi.CredentialKind

	type injection struct {
		header string
		value  string
	}

	var inject []injection

	for _, kind := range requirement {
		switch kind {
		case vsapi.CredentialNone:
			continue
		case vsapi.CredentialToken:
			token, ok := d.store.Get(kind)
			if !ok {
				missing = append(missing, kind)

				continue
			}

			inject = append(inject, injection{constants.HeaderAuthorization, "Bearer " + token})
		case vsapi.CredentialLicense:
			key, ok := d.store.Get(kind)
			if !ok {
				missing = append(missing, kind)

				continue
			}

			inject = append(inject, injection{constants.HeaderLicenseKey, key})
		default:
			missing = append(missing, kind)
		}
	}

	if len(missing) > 0 {
		return &vsapi.AuthConfigError{Missing: missing}
	}

	for _, inj := range inject {
		if headers.Get(inj.header) != "" {
			continue
		}

		headers.Set(inj.header, inj.value)
	}

	return nil
}
