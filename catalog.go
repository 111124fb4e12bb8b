// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ccurpc

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// introspectionName is the local name of the XML-RPC method-listing
// call, used when a failure during catalog population must be
// attributed to a method.
const introspectionName = "system_list_methods"

// Method describes one remote method discovered during initialization.
// Descriptors are created once per catalog build and never mutated.
type Method struct {
	// RemoteName is the method name exactly as reported by the
	// endpoint, e.g. Interface.activateLinkParamset.
	RemoteName string

	// Description is a human-readable summary. Empty for XML-RPC
	// introspection, which reports names only.
	Description string

	// Arguments are the declared remote argument names, in call order.
	Arguments []string

	// IntArguments are the argument names under the local notation.
	IntArguments []string
}

// buildCatalog maps each remote name to a descriptor keyed by its
// local name. When two remote names translate to the same local name,
// the first one in listing order wins and later ones are dropped;
// callers depend on listing order, so collisions are not reported.
func buildCatalog(names []string) map[string]*Method {
	methods := make(map[string]*Method, len(names))
	for _, remote := range names {
		local := LocalName(remote)
		if _, ok := methods[local]; ok {
			continue
		}
		methods[local] = &Method{RemoteName: remote}
	}
	return methods
}

// Lookup returns the descriptor for a local method name. It forces
// initialization, so a failed connection surfaces here rather than an
// empty catalog.
func (c *Client) Lookup(name string) (*Method, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.initLocked(); err != nil {
		return nil, err
	}
	m, ok := c.methods[name]
	if !ok {
		return nil, notFoundErr(name)
	}
	return m, nil
}

// MethodNames returns every known local method name, sorted. It forces
// initialization.
func (c *Client) MethodNames() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.initLocked(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// PrintMethods writes a description of every available method to w,
// sorted by local name. It forces initialization. Useful when working
// with the API to see which calls a controller offers.
func (c *Client) PrintMethods(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.initLocked(); err != nil {
		return err
	}

	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)

	const lineFormat = "%-60s %s\n"
	if _, err := fmt.Fprintf(w, lineFormat, "Method", "Description"); err != nil {
		return err
	}
	for _, name := range names {
		m := c.methods[name]
		call := fmt.Sprintf("API.%s(%s)", name, strings.Join(m.IntArguments, ", "))
		if _, err := fmt.Fprintf(w, lineFormat, call, m.Description); err != nil {
			return err
		}
	}
	return nil
}
