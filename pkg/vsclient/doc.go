// Package vsclient provides the primary entry point for constructing a
// VirtStack API client that implements the vsapi.Client interface.
//
// It layers configuration, HTTP transport, and credential handling on top of
// the resource interfaces and types defined in the vsapi package. Most
// consumers should use New with a vsapi.Config, or one of the convenience
// constructors when only an endpoint and credentials are needed.
package vsclient
