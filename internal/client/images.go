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

const imagesPath = constants.APIBasePath + "/images"

// ImagesClient implements vsapi.ImagesClient. The image catalog is gated on
// the license key alone.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{httpClient: httpClient}
}

func (c *ImagesClient) fetchPage(ctx context.Context, query url.Values) ([]vsapi.Image, error) {
	resp, err := c.httpClient.Get(ctx, imagesPath, query, vsapi.RequireLicense)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	var result vsapi.ListResponse[vsapi.Image]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing images list response: %w", err)
	}

	return result.Resources, nil
}

// List implements vsapi.ImagesClient.List.
func (c *ImagesClient) List(params *vsapi.QueryParams) *vsapi.LazyList[vsapi.Image] {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	return vsapi.NewLazyList(func(ctx context.Context) ([]vsapi.Image, error) {
		return c.fetchPage(ctx, query)
	})
}

// Get implements vsapi.ImagesClient.Get.
func (c *ImagesClient) Get(name string) *vsapi.ImageHandle {
	return vsapi.NewImageHandle(name, func(ctx context.Context, key string) (*vsapi.Image, error) {
		images, err := c.fetchPage(ctx, nil)
		if err != nil {
			return nil, err
		}

		for i := range images {
			if images[i].Name == key {
				return &images[i], nil
			}
		}

		return nil, &vsapi.NotFoundError{Resource: "image", Key: key}
	})
}
