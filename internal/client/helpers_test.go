package client_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/virtstack-io/vsapi-client/internal/client"
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

// newTestClient builds a client against the given test server with both
// credentials configured.
func newTestClient(t *testing.T, server *httptest.Server) vsapi.Client {
	t.Helper()

	apiClient, err := client.New(&vsapi.Config{
		Endpoint:   server.URL,
		Token:      "test-token",
		LicenseKey: "test-license",
	})
	require.NoError(t, err)

	return apiClient
}

// newClientWithoutCredentials builds a client with no token or license key
// configured, for exercising credential resolution failures.
func newClientWithoutCredentials(endpoint string) (vsapi.Client, error) {
	return client.New(&vsapi.Config{Endpoint: endpoint})
}
