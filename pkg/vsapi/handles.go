package vsapi

import (
	"context"
)

// UserHandle is a lazy handle to a user, keyed by email address. Attribute
// getters fetch the user on first use and serve cached values afterwards.
type UserHandle struct {
	LazyResource[User]
}

// NewUserHandle returns an unloaded user handle.
func NewUserHandle(email string, fetch FetchFunc[User]) *UserHandle {
	return &UserHandle{LazyResource[User]{key: email, fetch: fetch}}
}

// Email returns the handle's key without triggering a fetch.
func (h *UserHandle) Email() string {
	return h.Key()
}

// Eager forces the fetch if the handle is unloaded and returns the handle.
func (h *UserHandle) Eager(ctx context.Context) (*UserHandle, error) {
	err := h.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}

	return h, nil
}

// FullName returns the user's display name.
func (h *UserHandle) FullName(ctx context.Context) (string, error) {
	user, err := h.Value(ctx)
	if err != nil {
		return "", err
	}

	return user.FullName, nil
}

// Group returns the group the user belongs to.
func (h *UserHandle) Group(ctx context.Context) (string, error) {
	user, err := h.Value(ctx)
	if err != nil {
		return "", err
	}

	return user.Group, nil
}

// Suspended reports whether the account is suspended.
func (h *UserHandle) Suspended(ctx context.Context) (bool, error) {
	user, err := h.Value(ctx)
	if err != nil {
		return false, err
	}

	return user.Suspended, nil
}

// MachineHandle is a lazy handle to a virtual machine, keyed by name.
type MachineHandle struct {
	LazyResource[VirtualMachine]
}

// NewMachineHandle returns an unloaded machine handle.
func NewMachineHandle(name string, fetch FetchFunc[VirtualMachine]) *MachineHandle {
	return &MachineHandle{LazyResource[VirtualMachine]{key: name, fetch: fetch}}
}

// Name returns the handle's key without triggering a fetch.
func (h *MachineHandle) Name() string {
	return h.Key()
}

// Eager forces the fetch if the handle is unloaded and returns the handle.
func (h *MachineHandle) Eager(ctx context.Context) (*MachineHandle, error) {
	err := h.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}

	return h, nil
}

// PowerState returns the machine's run state.
func (h *MachineHandle) PowerState(ctx context.Context) (PowerState, error) {
	machine, err := h.Value(ctx)
	if err != nil {
		return "", err
	}

	return machine.PowerState, nil
}

// Node returns the name of the node hosting the machine.
func (h *MachineHandle) Node(ctx context.Context) (string, error) {
	machine, err := h.Value(ctx)
	if err != nil {
		return "", err
	}

	return machine.Node, nil
}

// ImageHandle is a lazy handle to an image, keyed by name.
type ImageHandle struct {
	LazyResource[Image]
}

// NewImageHandle returns an unloaded image handle.
func NewImageHandle(name string, fetch FetchFunc[Image]) *ImageHandle {
	return &ImageHandle{LazyResource[Image]{key: name, fetch: fetch}}
}

// Name returns the handle's key without triggering a fetch.
func (h *ImageHandle) Name() string {
	return h.Key()
}

// Eager forces the fetch if the handle is unloaded and returns the handle.
func (h *ImageHandle) Eager(ctx context.Context) (*ImageHandle, error) {
	err := h.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}

	return h, nil
}

// OS returns the operating system the image installs.
func (h *ImageHandle) OS(ctx context.Context) (string, error) {
	image, err := h.Value(ctx)
	if err != nil {
		return "", err
	}

	return image.OS, nil
}

// NodeHandle is a lazy handle to a hypervisor node, keyed by name.
type NodeHandle struct {
	LazyResource[Node]
}

// NewNodeHandle returns an unloaded node handle.
func NewNodeHandle(name string, fetch FetchFunc[Node]) *NodeHandle {
	return &NodeHandle{LazyResource[Node]{key: name, fetch: fetch}}
}

// Name returns the handle's key without triggering a fetch.
func (h *NodeHandle) Name() string {
	return h.Key()
}

// Eager forces the fetch if the handle is unloaded and returns the handle.
func (h *NodeHandle) Eager(ctx context.Context) (*NodeHandle, error) {
	err := h.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}

	return h, nil
}

// State returns the node's availability state.
func (h *NodeHandle) State(ctx context.Context) (NodeState, error) {
	node, err := h.Value(ctx)
	if err != nil {
		return "", err
	}

	return node.State, nil
}
