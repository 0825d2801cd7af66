package fx

import (
	"fext/pkg/network"
)

// Check verifies the network satisfies the extraction preconditions: no
// logic node may have a complemented fanin in its first two slots, and no
// logic node may reference the same fanin twice. Read-only.
func Check(ntk *network.Network) bool {
	ok := true
	ntk.ForEachNode(func(node *network.Node) {
		for i, f1 := range node.Fanins {
			if i < 2 && f1.Compl {
				ok = false
				return
			}
			for k, f2 := range node.Fanins {
				if i == k {
					continue
				}
				if f1.Node == f2.Node {
					ok = false
					return
				}
			}
		}
	})
	return ok
}
