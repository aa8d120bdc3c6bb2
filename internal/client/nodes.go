package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/virtstack-io/vsapi-client/internal/constants"
	"github.com/virtstack-io/vsapi-client/internal/http"
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

const nodesPath = constants.APIBasePath + "/nodes"

// NodesClient implements vsapi.NodesClient.
type NodesClient struct {
	httpClient *http.Client
}

// NewNodesClient creates a new nodes client.
func NewNodesClient(httpClient *http.Client) *NodesClient {
	return &NodesClient{httpClient: httpClient}
}

func (c *NodesClient) fetchPage(ctx context.Context, query url.Values) ([]vsapi.Node, error) {
	resp, err := c.httpClient.Get(ctx, nodesPath, query, vsapi.RequireToken)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}

	var result vsapi.ListResponse[vsapi.Node]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing nodes list response: %w", err)
	}

	return result.Resources, nil
}

// List implements vsapi.NodesClient.List.
func (c *NodesClient) List(params *vsapi.QueryParams) *vsapi.LazyList[vsapi.Node] {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	return vsapi.NewLazyList(func(ctx context.Context) ([]vsapi.Node, error) {
		return c.fetchPage(ctx, query)
	})
}

// Get implements vsapi.NodesClient.Get.
func (c *NodesClient) Get(name string) *vsapi.NodeHandle {
	return vsapi.NewNodeHandle(name, func(ctx context.Context, key string) (*vsapi.Node, error) {
		nodes, err := c.fetchPage(ctx, nil)
		if err != nil {
			return nil, err
		}

		for i := range nodes {
			if nodes[i].Name == key {
				return &nodes[i], nil
			}
		}

		return nil, &vsapi.NotFoundError{Resource: "node", Key: key}
	})
}
