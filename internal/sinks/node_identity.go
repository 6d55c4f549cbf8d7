package sinks

import "os"

type nodeIdentity struct {
	label string
}

// NewNodeIdentity returns a NodeIdentity describing this process. An empty
// label falls back to the OS hostname.
func NewNodeIdentity(label string) NodeIdentity {
	if label == "" {
		if hostname, err := os.Hostname(); err == nil {
			label = hostname
		} else {
			label = "unknown-node"
		}
	}
	return &nodeIdentity{label: label}
}

func (n *nodeIdentity) Describe() string {
	return n.label
}
