package vsapi

import (
	"encoding/json"
	"time"
)

// PowerState is the run state of a virtual machine. Decoding is strict: a
// state this client does not know about fails with UnrecognizedStateError
// rather than being carried as an opaque string.
type PowerState string

const (
	PowerStateRunning   PowerState = "running"
	PowerStateStopped   PowerState = "stopped"
	PowerStatePaused    PowerState = "paused"
	PowerStateSuspended PowerState = "suspended"
	PowerStateMigrating PowerState = "migrating"
)

// UnmarshalJSON implements json.Unmarshaler with strict vocabulary checking.
func (s *PowerState) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	switch PowerState(raw) {
	case PowerStateRunning, PowerStateStopped, PowerStatePaused, PowerStateSuspended, PowerStateMigrating:
		*s = PowerState(raw)

		return nil
	default:
		return &UnrecognizedStateError{Field: "power_state", Value: raw}
	}
}

// NodeState is the availability state of a hypervisor node.
type NodeState string

const (
	NodeStateOnline      NodeState = "online"
	NodeStateOffline     NodeState = "offline"
	NodeStateDraining    NodeState = "draining"
	NodeStateMaintenance NodeState = "maintenance"
)

// UnmarshalJSON implements json.Unmarshaler with strict vocabulary checking.
func (s *NodeState) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	switch NodeState(raw) {
	case NodeStateOnline, NodeStateOffline, NodeStateDraining, NodeStateMaintenance:
		*s = NodeState(raw)

		return nil
	default:
		return &UnrecognizedStateError{Field: "state", Value: raw}
	}
}

// User represents a VirtStack account. Users are keyed by email address.
type User struct {
	Email     string    `json:"email"                yaml:"email"`
	FullName  string    `json:"full_name"            yaml:"full_name"`
	Group     string    `json:"group"                yaml:"group"`
	Suspended bool      `json:"suspended"            yaml:"suspended"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// UserCreateRequest represents a request to create a user.
type UserCreateRequest struct {
	Email    string `json:"email"              yaml:"email"`
	FullName string `json:"full_name"          yaml:"full_name"`
	Group    string `json:"group,omitempty"    yaml:"group,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

// UserUpdateRequest represents a request to update a user. Nil fields are
// left unchanged.
type UserUpdateRequest struct {
	FullName  *string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Group     *string `json:"group,omitempty"     yaml:"group,omitempty"`
	Suspended *bool   `json:"suspended,omitempty" yaml:"suspended,omitempty"`
}

// VirtualMachine represents a guest on the platform. Machines are keyed by
// name, which is unique account-wide.
type VirtualMachine struct {
	Name       string     `json:"name"                 yaml:"name"`
	UUID       string     `json:"uuid"                 yaml:"uuid"`
	PowerState PowerState `json:"power_state"          yaml:"power_state"`
	CPUs       int        `json:"cpus"                 yaml:"cpus"`
	MemoryMB   int        `json:"memory_mb"            yaml:"memory_mb"`
	DiskGB     int        `json:"disk_gb"              yaml:"disk_gb"`
	Node       string     `json:"node"                 yaml:"node"`
	Image      string     `json:"image"                yaml:"image"`
	CreatedAt  time.Time  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// MachineCreateRequest represents a request to create a virtual machine.
type MachineCreateRequest struct {
	Name     string `json:"name"           yaml:"name"`
	Image    string `json:"image"          yaml:"image"`
	CPUs     int    `json:"cpus"           yaml:"cpus"`
	MemoryMB int    `json:"memory_mb"      yaml:"memory_mb"`
	DiskGB   int    `json:"disk_gb"        yaml:"disk_gb"`
	Node     string `json:"node,omitempty" yaml:"node,omitempty"`
}

// Image represents an installable template or ISO.
type Image struct {
	Name     string `json:"name"               yaml:"name"`
	OS       string `json:"os"                 yaml:"os"`
	SizeMB   int    `json:"size_mb"            yaml:"size_mb"`
	Checksum string `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Public   bool   `json:"public"             yaml:"public"`
}

// Node represents a hypervisor host.
type Node struct {
	Name         string    `json:"name"          yaml:"name"`
	Address      string    `json:"address"       yaml:"address"`
	State        NodeState `json:"state"         yaml:"state"`
	CPUCapacity  int       `json:"cpu_capacity"  yaml:"cpu_capacity"`
	MemoryMB     int       `json:"memory_mb"     yaml:"memory_mb"`
	MachineCount int       `json:"machine_count" yaml:"machine_count"`
}

// Info represents the unauthenticated server info endpoint.
type Info struct {
	Name    string `json:"name"    yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Build   string `json:"build"   yaml:"build"`
}

// ListResponse is the envelope every listing endpoint returns.
type ListResponse[T any] struct {
	Total     int `json:"total"     yaml:"total"`
	Resources []T `json:"resources" yaml:"resources"`
}
