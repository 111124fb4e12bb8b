// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ccurpc

import (
	"regexp"
	"strings"
)

// Standard two-pass camel-to-snake boundaries.
var (
	decamelHead = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	decamelTail = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// LocalName translates a raw remote method name into the local notation
// used on this client:
//
//   - dots are replaced with underscores
//   - camel case becomes lowercase with underscores
//   - the decamelized BidCoS and ReGa vendor tokens are corrected to
//     bidcos and rega
//
// e.g. Interface.activateLinkParamset becomes
// interface_activate_link_paramset.
func LocalName(remote string) string {
	s := strings.ReplaceAll(remote, ".", "_")
	s = decamelHead.ReplaceAllString(s, "${1}_${2}")
	s = decamelTail.ReplaceAllString(s, "${1}_${2}")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "bid_co_s", "bidcos")
	s = strings.ReplaceAll(s, "re_ga", "rega")
	return strings.ReplaceAll(s, "__", "_")
}
