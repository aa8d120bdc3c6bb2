package vsapi

// CredentialKind identifies one kind of credential an API operation may
// require. Requirements are declared statically per endpoint, not inferred
// from response codes, so a missing credential fails before any request is
// sent.
type CredentialKind string

const (
	// CredentialNone marks an operation that needs no credentials.
	CredentialNone CredentialKind = "none"

	// CredentialToken marks an operation that needs the bearer token.
	CredentialToken CredentialKind = "token"

	// CredentialLicense marks an operation that needs the license key.
	CredentialLicense CredentialKind = "license"
)

// Requirement is the set of credential kinds an operation needs. Every kind
// in the set must be satisfiable independently; an operation may require both
// the token and the license key at once.
type Requirement []CredentialKind

// Common requirements shared by the endpoint descriptors.
var (
	RequireNone            = Requirement{CredentialNone}
	RequireToken           = Requirement{CredentialToken}
	RequireLicense         = Requirement{CredentialLicense}
	RequireTokenAndLicense = Requirement{CredentialToken, CredentialLicense}
)

// Contains reports whether the requirement includes the given kind.
func (r Requirement) Contains(kind CredentialKind) bool {
	for _, k := range r {
		if k == kind {
			return true
		}
	}

	return false
}
