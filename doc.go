// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ccurpc is a dynamic XML-RPC client for HomeMatic CCU controllers.
//
// The client discovers the controller's method set at runtime via the
// XML-RPC introspection call and exposes every remote method under a
// canonical local name, so callers never need a hand-maintained method
// catalog. Remote names like CCU.getSerial become local names like
// ccu_get_serial.
//
// # Usage
//
//	client, err := ccurpc.New("192.168.1.26")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	serial, err := client.Invoke("ccu_get_serial")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(serial)
//
// The first call on a client lazily connects and fetches the method
// catalog; a failed initialization is retried by the next call. All
// initialization and calls on one client serialize through a single
// lock, so a client is safe for concurrent use but performs at most
// one remote operation at a time.
//
// Failures carry a Kind so callers branch on error category rather
// than on transport internals:
//
//	result, err := client.Invoke("interface_list_devices", "BidCos-RF")
//	if ccurpc.KindOf(err) == ccurpc.KindNotFound {
//	    // unknown method name
//	}
//
// # Architecture
//
// The package separates concerns:
//
//   - client.go: client construction, options, lazy initialization
//   - translate.go: remote-to-local method name translation
//   - catalog.go: method catalog built from introspection
//   - invoke.go: dynamic dispatch and error mapping
//   - transport.go: Transport/Conn abstraction over the wire protocol
//   - errors.go: the Kind-based error taxonomy
//
// The wire protocol lives in the xmlrpc subpackage and is consumed
// only through the Transport interface, so tests and alternative
// transports plug in without touching dispatch logic.
package ccurpc
