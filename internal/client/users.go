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

const usersPath = constants.APIBasePath + "/users"

// UsersClient implements vsapi.UsersClient. Every operation requires the
// bearer token.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

func (c *UsersClient) fetchPage(ctx context.Context, query url.Values) ([]vsapi.User, error) {
	resp, err := c.httpClient.Get(ctx, usersPath, query, vsapi.RequireToken)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var result vsapi.ListResponse[vsapi.User]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing users list response: %w", err)
	}

	return result.Resources, nil
}

// List implements vsapi.UsersClient.List. The listing request runs when the
// returned list is first consumed.
func (c *UsersClient) List(params *vsapi.QueryParams) *vsapi.LazyList[vsapi.User] {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	return vsapi.NewLazyList(func(ctx context.Context) ([]vsapi.User, error) {
		return c.fetchPage(ctx, query)
	})
}

// Get implements vsapi.UsersClient.Get. The API has no detail endpoint for
// users, so the fetch lists and scans for the matching email.
func (c *UsersClient) Get(email string) *vsapi.UserHandle {
	return vsapi.NewUserHandle(email, func(ctx context.Context, key string) (*vsapi.User, error) {
		users, err := c.fetchPage(ctx, nil)
		if err != nil {
			return nil, err
		}

		for i := range users {
			if users[i].Email == key {
				return &users[i], nil
			}
		}

		return nil, &vsapi.NotFoundError{Resource: "user", Key: key}
	})
}

// Create implements vsapi.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, request *vsapi.UserCreateRequest) (*vsapi.User, error) {
	resp, err := c.httpClient.Post(ctx, usersPath, request, vsapi.RequireToken)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var user vsapi.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Update implements vsapi.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, email string, request *vsapi.UserUpdateRequest) (*vsapi.User, error) {
	path := fmt.Sprintf("%s/%s", usersPath, url.PathEscape(email))

	resp, err := c.httpClient.Patch(ctx, path, request, vsapi.RequireToken)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user vsapi.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Delete implements vsapi.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, email string) error {
	path := fmt.Sprintf("%s/%s", usersPath, url.PathEscape(email))

	_, err := c.httpClient.Delete(ctx, path, vsapi.RequireToken)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}
