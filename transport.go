// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ccurpc

import (
	"time"

	"github.com/ccukit/ccurpc/xmlrpc"
)

// Transport opens connections to a controller endpoint. The default
// transport speaks XML-RPC over HTTP; tests substitute stubs.
type Transport interface {
	// Open validates the address and constructs a connection. It
	// performs no network I/O; the first network touch is the
	// introspection call during initialization.
	Open(address string) (Conn, error)
}

// Conn is an established channel to one controller.
type Conn interface {
	// ListMethods returns the remote method names reported by the
	// endpoint's introspection call, in listing order.
	ListMethods() ([]string, error)

	// Call invokes a remote method by its original name with
	// positional arguments. A fault response from the endpoint is
	// returned as *xmlrpc.Fault; any other error is a
	// connection-level failure. The connection is not safe for
	// concurrent use.
	Call(method string, args []any) (any, error)
}

// xmlrpcTransport is the default Transport.
type xmlrpcTransport struct {
	timeout time.Duration
}

func (t xmlrpcTransport) Open(address string) (Conn, error) {
	return xmlrpc.Open(address, t.timeout)
}
