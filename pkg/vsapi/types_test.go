package vsapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

func TestPowerState_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("known states decode", func(t *testing.T) {
		t.Parallel()

		for _, state := range []string{"running", "stopped", "paused", "suspended", "migrating"} {
			var decoded vsapi.PowerState

			err := json.Unmarshal([]byte(`"`+state+`"`), &decoded)
			require.NoError(t, err)
			assert.Equal(t, vsapi.PowerState(state), decoded)
		}
	})

	t.Run("unknown state fails loudly", func(t *testing.T) {
		t.Parallel()

		var decoded vsapi.PowerState

		err := json.Unmarshal([]byte(`"hibernating"`), &decoded)
		require.Error(t, err)
		assert.True(t, vsapi.IsUnrecognizedState(err))
	})
}

func TestNodeState_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var decoded vsapi.NodeState

	err := json.Unmarshal([]byte(`"draining"`), &decoded)
	require.NoError(t, err)
	assert.Equal(t, vsapi.NodeStateDraining, decoded)

	err = json.Unmarshal([]byte(`"rebooting"`), &decoded)
	require.Error(t, err)
	assert.True(t, vsapi.IsUnrecognizedState(err))
}

func TestVirtualMachine_StrictDecodeInsideList(t *testing.T) {
	t.Parallel()

	body := []byte(`{"total":1,"resources":[{"name":"web-1","power_state":"defragmenting"}]}`)

	var list vsapi.ListResponse[vsapi.VirtualMachine]

	err := json.Unmarshal(body, &list)
	require.Error(t, err)
	assert.True(t, vsapi.IsUnrecognizedState(err))
}

func TestRequirement_Contains(t *testing.T) {
	t.Parallel()

	assert.True(t, vsapi.RequireTokenAndLicense.Contains(vsapi.CredentialToken))
	assert.True(t, vsapi.RequireTokenAndLicense.Contains(vsapi.CredentialLicense))
	assert.False(t, vsapi.RequireToken.Contains(vsapi.CredentialLicense))
	assert.True(t, vsapi.RequireNone.Contains(vsapi.CredentialNone))
}
