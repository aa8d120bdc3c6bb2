package vsclient

import (
	"fmt"
	"strings"

	"github.com/virtstack-io/vsapi-client/internal/client"
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

// New creates a new VirtStack API client from the given configuration.
func New(config *vsapi.Config) (vsapi.Client, error) {
	if config == nil {
		return nil, vsapi.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, vsapi.ErrEndpointRequired
	}

	// Normalize the endpoint
	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithEndpoint creates a client with just an API endpoint (no
// credentials). Only operations that declare no credential requirement will
// succeed.
func NewWithEndpoint(endpoint string) (vsapi.Client, error) {
	return New(&vsapi.Config{
		Endpoint: endpoint,
	})
}

// NewWithToken creates a client with an API endpoint and bearer token.
func NewWithToken(endpoint, token string) (vsapi.Client, error) {
	return New(&vsapi.Config{
		Endpoint: endpoint,
		Token:    token,
	})
}

// NewWithCredentials creates a client with both the bearer token and the
// license key configured.
func NewWithCredentials(endpoint, token, licenseKey string) (vsapi.Client, error) {
	return New(&vsapi.Config{
		Endpoint:   endpoint,
		Token:      token,
		LicenseKey: licenseKey,
	})
}
