// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package xmlrpc

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// listMethods is the introspection call every CCU interface supports.
const listMethods = "system.listMethods"

// Client speaks XML-RPC to one endpoint over HTTP. It holds no
// connection state beyond the http.Client, but it makes no concurrency
// guarantees either; callers serialize access.
type Client struct {
	endpoint string
	http     *http.Client
}

// Open validates the endpoint URL and constructs a client. No network
// I/O happens here. A zero timeout leaves requests unbounded.
func Open(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", endpoint)
	}

	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// Call invokes method with positional args and returns the decoded
// result. A fault response is returned as *Fault; every other failure
// is transport-level.
func (c *Client) Call(method string, args []any) (any, error) {
	body, err := marshalCall(method, args)
	if err != nil {
		return nil, fmt.Errorf("encode call: %w", err)
	}

	resp, err := c.http.Post(c.endpoint, "text/xml", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return unmarshalResponse(data)
}

// ListMethods performs the introspection call and returns the remote
// method names in the order the endpoint reports them.
func (c *Client) ListMethods() ([]string, error) {
	result, err := c.Call(listMethods, nil)
	if err != nil {
		return nil, err
	}

	items, ok := result.([]any)
	if !ok {
		return nil, fmt.Errorf("%s returned %T, want array", listMethods, result)
	}
	names := make([]string, 0, len(items))
	for i, item := range items {
		name, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s element %d is %T, want string", listMethods, i, item)
		}
		names = append(names, name)
	}
	return names, nil
}
