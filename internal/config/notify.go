package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Notify struct {
	// Addresses are shoutrrr service addresses; leaving them empty
	// disables notifications.
	Addresses    []string
	DefaultTitle string
}

func (n *Notify) setDefaults() {
	n.Addresses = gosettings.DefaultSlice(n.Addresses, []string{})
	n.DefaultTitle = gosettings.DefaultComparable(n.DefaultTitle, "AWS tools")
}

func (n Notify) mergeWith(other Notify) (merged Notify) {
	merged.Addresses = gosettings.MergeWithSlice(n.Addresses, other.Addresses)
	merged.DefaultTitle = gosettings.MergeWithString(n.DefaultTitle, other.DefaultTitle)
	return merged
}

func (n Notify) validate() (err error) {
	return nil
}

func (n Notify) toLinesNode() *gotree.Node {
	if len(n.Addresses) == 0 {
		return gotree.New("Notifications: disabled")
	}
	node := gotree.New("Notifications")
	childNode := node.Appendf("Addresses")
	for _, address := range n.Addresses {
		childNode.Appendf(address)
	}
	return node
}
