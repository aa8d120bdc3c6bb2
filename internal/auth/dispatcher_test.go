package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtstack-io/vsapi-client/internal/auth"
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

func TestDispatcher_Apply(t *testing.T) {
	t.Parallel()

	t.Run("no requirement writes no headers", func(t *testing.T) {
		t.Parallel()

		dispatcher := auth.NewDispatcher(auth.NewCredentialStore("", ""))
		headers := http.Header{}

		err := dispatcher.Apply(headers, vsapi.RequireNone)
		require.NoError(t, err)
		assert.Empty(t, headers)
	})

	t.Run("token requirement injects bearer header", func(t *testing.T) {
		t.Parallel()

		dispatcher := auth.NewDispatcher(auth.NewCredentialStore("secret-token", ""))
		headers := http.Header{}

		err := dispatcher.Apply(headers, vsapi.RequireToken)
		require.NoError(t, err)
		assert.Equal(t, "Bearer secret-token", headers.Get("Authorization"))
		assert.Len(t, headers, 1)
	})

	t.Run("license requirement injects license header", func(t *testing.T) {
		t.Parallel()

		dispatcher := auth.NewDispatcher(auth.NewCredentialStore("", "lic-123"))
		headers := http.Header{}

		err := dispatcher.Apply(headers, vsapi.RequireLicense)
		require.NoError(t, err)
		assert.Equal(t, "lic-123", headers.Get("X-License-Key"))
		assert.Len(t, headers, 1)
	})

	t.Run("combined requirement injects both headers", func(t *testing.T) {
		t.Parallel()

		dispatcher := auth.NewDispatcher(auth.NewCredentialStore("secret-token", "lic-123"))
		headers := http.Header{}

		err := dispatcher.Apply(headers, vsapi.RequireTokenAndLicense)
		require.NoError(t, err)
		assert.Equal(t, "Bearer secret-token", headers.Get("Authorization"))
		assert.Equal(t, "lic-123", headers.Get("X-License-Key"))
	})

	t.Run("partially satisfied requirement writes nothing", func(t *testing.T) {
		t.Parallel()

		// Token is present, license is not. The satisfied half must not
		// leak into the headers when the whole requirement fails.
		dispatcher := auth.NewDispatcher(auth.NewCredentialStore("secret-token", ""))
		headers := http.Header{}

		err := dispatcher.Apply(headers, vsapi.RequireTokenAndLicense)
		require.Error(t, err)

		var authErr *vsapi.AuthConfigError

		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, []vsapi.CredentialKind{vsapi.CredentialLicense}, authErr.Missing)
		assert.Empty(t, headers)
	})

	t.Run("all missing kinds are named", func(t *testing.T) {
		t.Parallel()

		dispatcher := auth.NewDispatcher(auth.NewCredentialStore("", ""))

		err := dispatcher.Apply(http.Header{}, vsapi.RequireTokenAndLicense)
		require.Error(t, err)

		var authErr *vsapi.AuthConfigError

		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "missing credentials: token, license", authErr.Error())
	})

	t.Run("explicit header wins over dispatcher default", func(t *testing.T) {
		t.Parallel()

		dispatcher := auth.NewDispatcher(auth.NewCredentialStore("secret-token", ""))
		headers := http.Header{}
		headers.Set("Authorization", "Bearer per-call-token")

		err := dispatcher.Apply(headers, vsapi.RequireToken)
		require.NoError(t, err)
		assert.Equal(t, "Bearer per-call-token", headers.Get("Authorization"))
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		t.Parallel()

		dispatcher := auth.NewDispatcher(auth.NewCredentialStore("secret-token", "lic-123"))
		headers := http.Header{}

		err := dispatcher.Apply(headers, vsapi.Requirement{vsapi.CredentialKind("certificate")})
		require.Error(t, err)
		assert.True(t, vsapi.IsAuthConfig(err))
		assert.Empty(t, headers)
	})
}

func TestCredentialStore_Get(t *testing.T) {
	t.Parallel()

	store := auth.NewCredentialStore("secret-token", "")

	token, ok := store.Get(vsapi.CredentialToken)
	assert.True(t, ok)
	assert.Equal(t, "secret-token", token)

	_, ok = store.Get(vsapi.CredentialLicense)
	assert.False(t, ok)

	_, ok = store.Get(vsapi.CredentialKind("certificate"))
	assert.False(t, ok)
}
