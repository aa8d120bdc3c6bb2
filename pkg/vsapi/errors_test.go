package vsapi_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &vsapi.APIError{Code: 1004, Title: "VS-NotAuthenticated", Detail: "token expired"}
	assert.Equal(t, "VS-NotAuthenticated: token expired (code: 1004)", err.Error())
}

func TestResponseError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *vsapi.ResponseError
		expected string
	}{
		{
			name:     "no errors",
			err:      &vsapi.ResponseError{StatusCode: 502},
			expected: "request failed with status 502",
		},
		{
			name: "single error",
			err: &vsapi.ResponseError{
				StatusCode: 404,
				Errors:     []vsapi.APIError{{Code: 1010, Title: "VS-NotFound", Detail: "gone"}},
			},
			expected: "VS-NotFound: gone (code: 1010)",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, testCase.err.Error())
		})
	}
}

func TestParseResponseError(t *testing.T) {
	t.Parallel()

	body := []byte(`{"errors":[{"code":1010,"title":"VS-NotFound","detail":"machine not found"}]}`)
	respErr := vsapi.ParseResponseError(404, body)

	assert.Equal(t, 404, respErr.StatusCode)
	assert.Len(t, respErr.Errors, 1)
	assert.Equal(t, "VS-NotFound", respErr.FirstError().Title)
}

func TestParseResponseError_NonJSONBody(t *testing.T) {
	t.Parallel()

	respErr := vsapi.ParseResponseError(500, []byte("internal server error"))

	assert.Equal(t, 500, respErr.StatusCode)
	assert.Nil(t, respErr.FirstError())
}

func TestAuthConfigError_NamesMissingKinds(t *testing.T) {
	t.Parallel()

	err := &vsapi.AuthConfigError{Missing: []vsapi.CredentialKind{vsapi.CredentialLicense}}
	assert.Equal(t, "missing credentials: license", err.Error())

	both := &vsapi.AuthConfigError{Missing: []vsapi.CredentialKind{vsapi.CredentialToken, vsapi.CredentialLicense}}
	assert.Equal(t, "missing credentials: token, license", both.Error())
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := &vsapi.NotFoundError{Resource: "user", Key: "alice@example.com"}
	authErr := &vsapi.AuthConfigError{Missing: []vsapi.CredentialKind{vsapi.CredentialToken}}
	stateErr := &vsapi.UnrecognizedStateError{Field: "power_state", Value: "hibernating"}

	assert.True(t, vsapi.IsNotFound(notFound))
	assert.True(t, vsapi.IsNotFound(fmt.Errorf("refreshing: %w", notFound)))
	assert.False(t, vsapi.IsNotFound(authErr))

	assert.True(t, vsapi.IsAuthConfig(authErr))
	assert.False(t, vsapi.IsAuthConfig(notFound))

	assert.True(t, vsapi.IsUnrecognizedState(stateErr))
	assert.False(t, vsapi.IsUnrecognizedState(notFound))

	assert.Equal(t, `user "alice@example.com" not found`, notFound.Error())
	assert.Equal(t, `unrecognized power_state value "hibernating"`, stateErr.Error())
}
