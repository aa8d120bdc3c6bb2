package vsapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

type recordingLogger struct {
	debugMessages []string
	errorMessages []string
}

func (l *recordingLogger) Debug(message string, fields map[string]interface{}) {
	l.debugMessages = append(l.debugMessages, message)
}

func (l *recordingLogger) Info(message string, fields map[string]interface{})  {}
func (l *recordingLogger) Warn(message string, fields map[string]interface{})  {}
func (l *recordingLogger) Error(message string, fields map[string]interface{}) {
	l.errorMessages = append(l.errorMessages, message)
}

func TestInterceptorChain_ExecutesInOrder(t *testing.T) {
	t.Parallel()

	chain := vsapi.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *vsapi.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *vsapi.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &vsapi.Request{Method: "GET", Path: "/api/v2/info"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_RequestInterceptorFailureStopsChain(t *testing.T) {
	t.Parallel()

	chain := vsapi.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *vsapi.Request) error {
		return assert.AnError
	})

	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *vsapi.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &vsapi.Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, called)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := vsapi.HeaderInterceptor(map[string]string{
		"X-Request-Source": "vsctl",
	})

	req := &vsapi.Request{Method: "GET", Path: "/api/v2/machines"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "vsctl", req.Headers.Get("X-Request-Source"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &vsapi.Request{Method: "GET", Path: "/api/v2/nodes", Headers: http.Header{}}

	err := vsapi.LoggingInterceptor(logger)(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"API Request"}, logger.debugMessages)

	err = vsapi.LoggingResponseInterceptor(logger)(context.Background(), req, &vsapi.Response{StatusCode: 200})
	require.NoError(t, err)
	assert.Equal(t, []string{"API Request", "API Response"}, logger.debugMessages)

	err = vsapi.LoggingResponseInterceptor(logger)(context.Background(), req, &vsapi.Response{
		StatusCode: 502,
		Error:      assert.AnError,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"API Response Error"}, logger.errorMessages)
}
