// Package vsapi provides types, interfaces, and helpers for working with the
// VirtStack management API.
//
// # Overview
//
// The vsapi package defines the domain types (User, VirtualMachine, Image,
// Node) and the interfaces for resource-oriented clients (UsersClient,
// MachinesClient, ImagesClient, NodesClient). A concrete implementation of
// these clients is provided by the vsclient package, which wires
// configuration, transport, and credential handling. Most consumers should
// import vsclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// # Lazy access
//
// Listing and get-by-key operations perform no network I/O at call time.
// List returns a LazyList whose backing request runs on first consumption;
// Get returns a handle whose attributes are fetched on first read and cached
// until Refresh is called.
//
// Getting a client:
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/virtstack-io/vsapi-client/pkg/vsapi"
//	  "github.com/virtstack-io/vsapi-client/pkg/vsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := vsclient.New(&vsapi.Config{
//	    Endpoint:   "https://virt.example.com",
//	    Token:      "bearer-token",
//	    LicenseKey: "license-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  machines, err := cli.Machines().List(nil).All(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = machines
//	}
package vsapi
