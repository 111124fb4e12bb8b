// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ccurpc

import (
	"errors"

	"github.com/ccukit/ccurpc/xmlrpc"
)

// Invoke calls the remote method known locally as name with positional
// arguments and returns the decoded result uninterpreted.
//
// The client initializes itself on first use; a name is only rejected
// as unknown after an initialization attempt, so a mistyped name still
// costs a full connection attempt. The whole operation runs under the
// client lock: initialization and calls from all goroutines serialize,
// and the connection never sees overlapping use.
func (c *Client) Invoke(name string, args ...any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.initLocked(); err != nil {
		return nil, err
	}

	m, ok := c.methods[name]
	if !ok {
		return nil, notFoundErr(name)
	}

	c.logger.Debug("call", "address", c.address, "mode", "XML-RPC", "method", m.RemoteName, "args", args)

	result, err := c.conn.Call(m.RemoteName, args)
	if err != nil {
		return nil, mapCallError(c, name, err)
	}

	c.logger.Debug("response", "result", result)
	return result, nil
}

// mapCallError translates a transport failure into the client's
// taxonomy: a fault response from the endpoint becomes a protocol
// error carrying the local name, anything else a connection error
// carrying the address. Raw transport errors never reach callers.
func mapCallError(c *Client, name string, err error) *Error {
	var fault *xmlrpc.Fault
	if errors.As(err, &fault) {
		return protoErr(name, err)
	}
	return connErr(c.address, err)
}

// MethodFunc is a bound remote method, returned by Method.
type MethodFunc func(args ...any) (any, error)

// Method returns a callable bound to the given local name, mirroring
// attribute-style dispatch. It triggers initialization and returns its
// error; whether the name actually exists is checked when the returned
// func is called, not here.
func (c *Client) Method(name string) (MethodFunc, error) {
	c.mu.Lock()
	err := c.initLocked()
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return func(args ...any) (any, error) {
		return c.Invoke(name, args...)
	}, nil
}
