package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtstack-io/vsapi-client/internal/client"
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

func TestNew_RequiresEndpoint(t *testing.T) {
	t.Parallel()

	_, err := client.New(&vsapi.Config{})
	require.ErrorIs(t, err, vsapi.ErrEndpointRequired)
}

func TestClient_GetInfo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/info", r.URL.Path)
		// The info endpoint is public.
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-License-Key"))

		_ = json.NewEncoder(w).Encode(vsapi.Info{
			Name:    "virtstack",
			Version: "2.4.0",
			Build:   "a1b2c3d",
		})
	}))
	defer server.Close()

	// No credentials are needed for GetInfo.
	apiClient, err := newClientWithoutCredentials(server.URL)
	require.NoError(t, err)

	info, err := apiClient.GetInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "virtstack", info.Name)
	assert.Equal(t, "2.4.0", info.Version)
}

func TestClient_ResourceClientsShareTransport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(vsapi.ListResponse[vsapi.User]{})
	}))
	defer server.Close()

	apiClient := newTestClient(t, server)

	assert.NotNil(t, apiClient.Users())
	assert.NotNil(t, apiClient.Machines())
	assert.NotNil(t, apiClient.Images())
	assert.NotNil(t, apiClient.Nodes())

	// Accessors return the same client instance each time.
	assert.Same(t, apiClient.Users(), apiClient.Users())
}
