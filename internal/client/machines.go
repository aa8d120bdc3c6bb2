package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/virtstack-io/vsapi-client/internal/constants"
	"github.com/virtstack-io/vsapi-client/internal/http"
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

const machinesPath = constants.APIBasePath + "/machines"

// MachinesClient implements vsapi.MachinesClient. Machine operations require
// both the bearer token and the license key.
type MachinesClient struct {
	httpClient *http.Client
}

// NewMachinesClient creates a new machines client.
func NewMachinesClient(httpClient *http.Client) *MachinesClient {
	return &MachinesClient{httpClient: httpClient}
}

func (c *MachinesClient) fetchPage(ctx context.Context, query url.Values) ([]vsapi.VirtualMachine, error) {
	resp, err := c.httpClient.Get(ctx, machinesPath, query, vsapi.RequireTokenAndLicense)
	if err != nil {
		return nil, fmt.Errorf("listing machines: %w", err)
	}

	var result vsapi.ListResponse[vsapi.VirtualMachine]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		// Surface a strict-decoding failure as-is so callers can detect the
		// forward-compatibility gap.
		stateErr := &vsapi.UnrecognizedStateError{}
		if errors.As(err, &stateErr) {
			return nil, stateErr
		}

		return nil, fmt.Errorf("parsing machines list response: %w", err)
	}

	return result.Resources, nil
}

// List implements vsapi.MachinesClient.List.
func (c *MachinesClient) List(params *vsapi.QueryParams) *vsapi.LazyList[vsapi.VirtualMachine] {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	return vsapi.NewLazyList(func(ctx context.Context) ([]vsapi.VirtualMachine, error) {
		return c.fetchPage(ctx, query)
	})
}

// Get implements vsapi.MachinesClient.Get. The fetch lists and scans for the
// matching machine name.
func (c *MachinesClient) Get(name string) *vsapi.MachineHandle {
	return vsapi.NewMachineHandle(name, func(ctx context.Context, key string) (*vsapi.VirtualMachine, error) {
		machines, err := c.fetchPage(ctx, nil)
		if err != nil {
			return nil, err
		}

		for i := range machines {
			if machines[i].Name == key {
				return &machines[i], nil
			}
		}

		return nil, &vsapi.NotFoundError{Resource: "machine", Key: key}
	})
}

// Create implements vsapi.MachinesClient.Create.
func (c *MachinesClient) Create(ctx context.Context, request *vsapi.MachineCreateRequest) (*vsapi.VirtualMachine, error) {
	resp, err := c.httpClient.Post(ctx, machinesPath, request, vsapi.RequireTokenAndLicense)
	if err != nil {
		return nil, fmt.Errorf("creating machine: %w", err)
	}

	var machine vsapi.VirtualMachine

	err = json.Unmarshal(resp.Body, &machine)
	if err != nil {
		return nil, fmt.Errorf("parsing machine response: %w", err)
	}

	return &machine, nil
}

// Delete implements vsapi.MachinesClient.Delete.
func (c *MachinesClient) Delete(ctx context.Context, name string) error {
	path := fmt.Sprintf("%s/%s", machinesPath, url.PathEscape(name))

	_, err := c.httpClient.Delete(ctx, path, vsapi.RequireTokenAndLicense)
	if err != nil {
		return fmt.Errorf("deleting machine: %w", err)
	}

	return nil
}

// DeleteAll implements vsapi.MachinesClient.DeleteAll. The bulk delete is
// idempotent: the server's "nothing to delete" complaint counts as success.
func (c *MachinesClient) DeleteAll(ctx context.Context) error {
	_, err := c.httpClient.Delete(ctx, machinesPath, vsapi.RequireTokenAndLicense)
	if err != nil {
		if isBenignDeleteFailure(err) {
			return nil
		}

		return fmt.Errorf("deleting machines: %w", err)
	}

	return nil
}

// isBenignDeleteFailure is the single place that recognizes server failures
// which an idempotent bulk delete may treat as success. The current match is
// on the response wording, which is fragile; switch to a status-code check
// if the server ever grows a dedicated code for it.
func isBenignDeleteFailure(err error) bool {
	respErr := &vsapi.ResponseError{}
	if !errors.As(err, &respErr) {
		return false
	}

	first := respErr.FirstError()
	if first == nil {
		return false
	}

	return strings.Contains(first.Detail, "no machines to delete")
}

func (c *MachinesClient) action(ctx context.Context, name, action string) (*vsapi.VirtualMachine, error) {
	path := fmt.Sprintf("%s/%s/actions/%s", machinesPath, url.PathEscape(name), action)

	resp, err := c.httpClient.Post(ctx, path, nil, vsapi.RequireTokenAndLicense)
	if err != nil {
		return nil, fmt.Errorf("%s machine: %w", action, err)
	}

	var machine vsapi.VirtualMachine

	err = json.Unmarshal(resp.Body, &machine)
	if err != nil {
		return nil, fmt.Errorf("parsing machine response: %w", err)
	}

	return &machine, nil
}

// Start implements vsapi.MachinesClient.Start.
func (c *MachinesClient) Start(ctx context.Context, name string) (*vsapi.VirtualMachine, error) {
	return c.action(ctx, name, "start")
}

// Stop implements vsapi.MachinesClient.Stop.
func (c *MachinesClient) Stop(ctx context.Context, name string) (*vsapi.VirtualMachine, error) {
	return c.action(ctx, name, "stop")
}

// Restart implements vsapi.MachinesClient.Restart.
func (c *MachinesClient) Restart(ctx context.Context, name string) (*vsapi.VirtualMachine, error) {
	return c.action(ctx, name, "restart")
}
