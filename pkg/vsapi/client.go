package vsapi

import (
	"context"
	"time"
)

// UsersClient provides access to user resources. Users are keyed by email.
type UsersClient interface {
	// List defers the listing call until the returned list is consumed.
	List(params *QueryParams) *LazyList[User]
	// Get returns a lazy handle; no I/O happens until an attribute is read.
	Get(email string) *UserHandle
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	Update(ctx context.Context, email string, request *UserUpdateRequest) (*User, error)
	Delete(ctx context.Context, email string) error
}

// MachinesClient provides access to virtual machine resources, keyed by name.
type MachinesClient interface {
	List(params *QueryParams) *LazyList[VirtualMachine]
	Get(name string) *MachineHandle
	Create(ctx context.Context, request *MachineCreateRequest) (*VirtualMachine, error)
	Delete(ctx context.Context, name string) error
	// DeleteAll removes every machine in the account. The operation is
	// idempotent: a server complaint that there is nothing to delete is
	// treated as success.
	DeleteAll(ctx context.Context) error
	Start(ctx context.Context, name string) (*VirtualMachine, error)
	Stop(ctx context.Context, name string) (*VirtualMachine, error)
	Restart(ctx context.Context, name string) (*VirtualMachine, error)
}

// ImagesClient provides access to image resources, keyed by name.
type ImagesClient interface {
	List(params *QueryParams) *LazyList[Image]
	Get(name string) *ImageHandle
}

// NodesClient provides access to hypervisor node resources, keyed by name.
type NodesClient interface {
	List(params *QueryParams) *LazyList[Node]
	Get(name string) *NodeHandle
}

// InfoClient provides access to the unauthenticated server info endpoint.
type InfoClient interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// Client is the full VirtStack API surface.
type Client interface {
	Users() UsersClient
	Machines() MachinesClient
	Images() ImagesClient
	Nodes() NodesClient
	InfoClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a vsapi.Client.
//
// Credentials are fixed at construction: operations declare which kinds they
// need, and a request requiring a kind that was never configured fails with
// AuthConfigError before any network I/O.
type Config struct {
	// Endpoint: base URL for the VirtStack API (e.g.
	// "https://virt.example.com"). vsclient.New normalizes this value by
	// trimming a trailing slash and adding "https://" if no scheme is
	// present.
	Endpoint string

	// Token is the bearer token sent as "Authorization: Bearer <token>" on
	// operations that require it. Optional.
	Token string

	// LicenseKey is sent as the "X-License-Key" header on operations that
	// require it. Optional.
	LicenseKey string

	// HTTPTimeout: optional default HTTP timeout. Most calls should rely on
	// context timeouts instead.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). If 0, a sensible default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string
}
