package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

func TestMachinesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/machines", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "test-license", r.Header.Get("X-License-Key"))

		_ = json.NewEncoder(w).Encode(vsapi.ListResponse[vsapi.VirtualMachine]{
			Total: 2,
			Resources: []vsapi.VirtualMachine{
				{Name: "web-1", PowerState: vsapi.PowerStateRunning, Node: "compute-01"},
				{Name: "db-1", PowerState: vsapi.PowerStateStopped, Node: "compute-02"},
			},
		})
	}))
	defer server.Close()

	apiClient := newTestClient(t, server)

	machines, err := apiClient.Machines().List(nil).All(context.Background())
	require.NoError(t, err)
	require.Len(t, machines, 2)
	assert.Equal(t, vsapi.PowerStateRunning, machines[0].PowerState)
}

func TestMachinesClient_ListUnknownPowerState(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":1,"resources":[{"name":"web-1","power_state":"hibernating"}]}`))
	}))
	defer server.Close()

	apiClient := newTestClient(t, server)

	_, err := apiClient.Machines().List(nil).All(context.Background())
	require.Error(t, err)
	assert.True(t, vsapi.IsUnrecognizedState(err))

	var stateErr *vsapi.UnrecognizedStateError

	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "hibernating", stateErr.Value)
}

func TestMachinesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(vsapi.ListResponse[vsapi.VirtualMachine]{
			Total: 1,
			Resources: []vsapi.VirtualMachine{
				{Name: "web-1", PowerState: vsapi.PowerStatePaused, Node: "compute-01"},
			},
		})
	}))
	defer server.Close()

	apiClient := newTestClient(t, server)
	handle := apiClient.Machines().Get("web-1")
	assert.Equal(t, "web-1", handle.Name())

	state, err := handle.PowerState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, vsapi.PowerStatePaused, state)

	node, err := handle.Node(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "compute-01", node)
}

func TestMachinesClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var request vsapi.MachineCreateRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "web-2", request.Name)
		assert.Equal(t, "ubuntu-24.04", request.Image)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(vsapi.VirtualMachine{
			Name:       request.Name,
			Image:      request.Image,
			PowerState: vsapi.PowerStateStopped,
		})
	}))
	defer server.Close()

	apiClient := newTestClient(t, server)

	machine, err := apiClient.Machines().Create(context.Background(), &vsapi.MachineCreateRequest{
		Name:     "web-2",
		Image:    "ubuntu-24.04",
		CPUs:     2,
		MemoryMB: 4096,
	})
	require.NoError(t, err)
	assert.Equal(t, vsapi.PowerStateStopped, machine.PowerState)
}

func TestMachinesClient_PowerActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		action   func(ctx context.Context, c vsapi.MachinesClient) (*vsapi.VirtualMachine, error)
		path     string
		newState vsapi.PowerState
	}{
		{
			name: "start",
			action: func(ctx context.Context, c vsapi.MachinesClient) (*vsapi.VirtualMachine, error) {
				return c.Start(ctx, "web-1")
			},
			path:     "/api/v2/machines/web-1/actions/start",
			newState: vsapi.PowerStateRunning,
		},
		{
			name: "stop",
			action: func(ctx context.Context, c vsapi.MachinesClient) (*vsapi.VirtualMachine, error) {
				return c.Stop(ctx, "web-1")
			},
			path:     "/api/v2/machines/web-1/actions/stop",
			newState: vsapi.PowerStateStopped,
		},
		{
			name: "restart",
			action: func(ctx context.Context, c vsapi.MachinesClient) (*vsapi.VirtualMachine, error) {
				return c.Restart(ctx, "web-1")
			},
			path:     "/api/v2/machines/web-1/actions/restart",
			newState: vsapi.PowerStateRunning,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, testCase.path, r.URL.Path)

				_ = json.NewEncoder(w).Encode(vsapi.VirtualMachine{
					Name:       "web-1",
					PowerState: testCase.newState,
				})
			}))
			defer server.Close()

			apiClient := newTestClient(t, server)

			machine, err := testCase.action(context.Background(), apiClient.Machines())
			require.NoError(t, err)
			assert.Equal(t, testCase.newState, machine.PowerState)
		})
	}
}

func TestMachinesClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v2/machines/web-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	apiClient := newTestClient(t, server)

	err := apiClient.Machines().Delete(context.Background(), "web-1")
	require.NoError(t, err)
}

func TestMachinesClient_DeleteAll(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/v2/machines", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		apiClient := newTestClient(t, server)
		require.NoError(t, apiClient.Machines().DeleteAll(context.Background()))
	})

	t.Run("nothing to delete counts as success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"errors":[{"code":1022,"title":"VS-EmptyDelete","detail":"no machines to delete"}]}`))
		}))
		defer server.Close()

		apiClient := newTestClient(t, server)
		require.NoError(t, apiClient.Machines().DeleteAll(context.Background()))
	})

	t.Run("other failures still surface", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"errors":[{"code":1003,"title":"VS-Forbidden","detail":"insufficient privileges"}]}`))
		}))
		defer server.Close()

		apiClient := newTestClient(t, server)

		err := apiClient.Machines().DeleteAll(context.Background())
		require.Error(t, err)

		var respErr *vsapi.ResponseError

		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, http.StatusForbidden, respErr.StatusCode)
	})
}
