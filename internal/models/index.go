package models

import (
	"net/netip"
	"strings"
)

// Index identifies one aggregation bucket within a counter store. An index may
// carry a host address, a free-form string sub-key, a collapsed network, or any
// combination of the three, but aggregation never leaves an index carrying both
// a host and a network: collapsing a host produces a network-only index.
//
// All fields are comparable, so Index values are used directly as map keys with
// structural equality.
type Index struct {
	Host    netip.Addr   `json:"host,omitempty"`
	Network netip.Prefix `json:"network,omitempty"`
	Str     string       `json:"str,omitempty"`
}

// IndexForHost returns an index keyed by a single host address.
func IndexForHost(host netip.Addr) Index {
	return Index{Host: host}
}

// IndexForNetwork returns an index keyed by a collapsed subnet.
func IndexForNetwork(network netip.Prefix) Index {
	return Index{Network: network}
}

// IndexForStr returns an index keyed by a free-form sub-key.
func IndexForStr(str string) Index {
	return Index{Str: str}
}

// IsZero reports whether no field of the index is set.
func (i Index) IsZero() bool {
	return !i.Host.IsValid() && !i.Network.IsValid() && i.Str == ""
}

// String renders the index in the canonical human-readable form used in break
// logs and notices, e.g. "metric_index(host=10.0.0.1, str=text/html)". Present
// fields appear in host, network, str order.
func (i Index) String() string {
	parts := make([]string, 0, 3)
	if i.Host.IsValid() {
		parts = append(parts, "host="+i.Host.String())
	}
	if i.Network.IsValid() {
		parts = append(parts, "network="+i.Network.String())
	}
	if i.Str != "" {
		parts = append(parts, "str="+i.Str)
	}
	return "metric_index(" + strings.Join(parts, ", ") + ")"
}
