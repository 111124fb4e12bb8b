// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ccurpc

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds each HTTP request of the default transport.
const DefaultTimeout = 10 * time.Second

// xmlrpcPort is the CCU's XML-RPC API port.
const xmlrpcPort = "2001"

// Client is a dynamic XML-RPC client for one CCU controller.
//
// The zero value is not usable; construct with New. A Client is safe
// for concurrent use: one lock serializes initialization and every
// remote call, since the underlying connection is not assumed to
// tolerate concurrent use.
type Client struct {
	address   string
	timeout   time.Duration
	logger    *log.Logger
	transport Transport

	mu          sync.Mutex
	conn        Conn
	methods     map[string]*Method
	initialized bool
	failErr     error
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithTimeout sets the per-request timeout of the default transport.
// It has no effect when a custom transport is supplied.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger receiving the client's diagnostic events.
// Call and response events are logged at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTransport replaces the default XML-RPC transport.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// New creates a client for the CCU at address. The address may be a
// bare host ("192.168.1.26") or carry an explicit http:// or https://
// scheme; the XML-RPC port is appended either way. An empty address is
// a configuration error.
//
// New performs no network I/O. The connection is established and the
// method catalog fetched on the first call.
func New(address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, configErr("please specify the address of the CCU")
	}

	c := &Client{
		address: normalizeAddress(address),
		timeout: DefaultTimeout,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = xmlrpcTransport{timeout: c.timeout}
	}
	return c, nil
}

// normalizeAddress appends the XML-RPC port, defaulting the scheme to
// http when none is given.
func normalizeAddress(address string) string {
	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return address + ":" + xmlrpcPort
	}
	return "http://" + address + ":" + xmlrpcPort
}

// Address returns the normalized controller address. It is immutable
// for the lifetime of the client.
func (c *Client) Address() string {
	return c.address
}

// Initialized reports whether the connection and method catalog are
// ready. It never triggers initialization.
func (c *Client) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// FailReason returns the error recorded by the last failed
// initialization, or nil. It never triggers initialization.
func (c *Client) FailReason() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failErr
}

// initLocked brings the client to the ready state. Callers hold c.mu.
//
// On failure the client stays uninitialized with the failure recorded,
// and the next triggering call retries from scratch. Ready is only
// entered after both the connection and the catalog fetch succeed.
func (c *Client) initLocked() error {
	if c.initialized {
		return nil
	}

	c.failErr = nil
	c.logger.Debug("initializing", "address", c.address)

	conn, err := c.transport.Open(c.address)
	if err != nil {
		c.failErr = connErr(c.address, err)
		return c.failErr
	}

	names, err := conn.ListMethods()
	if err != nil {
		c.failErr = mapCallError(c, introspectionName, err)
		return c.failErr
	}

	c.conn = conn
	c.methods = buildCatalog(names)
	c.initialized = true
	c.logger.Debug("initialized", "address", c.address, "methods", len(c.methods))
	return nil
}
