// Package client implements the vsapi.Client interface on top of the shared
// HTTP transport.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/virtstack-io/vsapi-client/internal/auth"
	"github.com/virtstack-io/vsapi-client/internal/constants"
	"github.com/virtstack-io/vsapi-client/internal/http"
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

// Client implements the vsapi.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     vsapi.Logger

	users    vsapi.UsersClient
	machines vsapi.MachinesClient
	images   vsapi.ImagesClient
	nodes    vsapi.NodesClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *vsapi.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new VirtStack API client.
func New(config *vsapi.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, vsapi.ErrEndpointRequired
	}

	store := auth.NewCredentialStore(config.Token, config.LicenseKey)
	dispatcher := auth.NewDispatcher(store)
	httpClient := http.NewClient(config.Endpoint, dispatcher, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.Endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.httpClient)
	c.machines = NewMachinesClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
	c.nodes = NewNodesClient(c.httpClient)
}

// Users implements vsapi.Client.Users.
func (c *Client) Users() vsapi.UsersClient {
	return c.users
}

// Machines implements vsapi.Client.Machines.
func (c *Client) Machines() vsapi.MachinesClient {
	return c.machines
}

// Images implements vsapi.Client.Images.
func (c *Client) Images() vsapi.ImagesClient {
	return c.images
}

// Nodes implements vsapi.Client.Nodes.
func (c *Client) Nodes() vsapi.NodesClient {
	return c.nodes
}

// GetInfo implements vsapi.Client.GetInfo. The endpoint requires no
// credentials.
func (c *Client) GetInfo(ctx context.Context) (*vsapi.Info, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIBasePath+"/info", nil, vsapi.RequireNone)
	if err != nil {
		return nil, fmt.Errorf("getting info: %w", err)
	}

	var info vsapi.Info

	err = json.Unmarshal(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing info response: %w", err)
	}

	return &info, nil
}

// loggerAdapter adapts vsapi.Logger to http.Logger.
type loggerAdapter struct {
	logger vsapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
