package fx

import (
	"fmt"

	"fext/pkg/network"
)

// Reconstruct commits the extraction result onto the network in three
// phases: allocate all new nodes, rewrite the existing nodes, then wire
// the new nodes. Allocation completes before any fanin targeting a new node
// is attached, so every fanin reference resolves to an already-allocated
// node. Contract violations by the extraction procedure (missing cover,
// fanin to an unallocated identifier, non-contiguous new identifiers) are
// unrecoverable and panic.
func Reconstruct(ntk *network.Network, d *Data) {
	if len(d.Fanins) >= len(d.FaninsNew) {
		panic(fmt.Sprintf("fx: output containers not sized for new nodes (%d >= %d)",
			len(d.Fanins), len(d.FaninsNew)))
	}

	// Create the new nodes
	for i := 0; i < d.NodesNew; i++ {
		node := ntk.CreateNode()
		if node.ID != d.NodesOld+i {
			panic(fmt.Sprintf("fx: new node got identifier %d, expected %d", node.ID, d.NodesOld+i))
		}
	}

	// Update the old nodes
	for id := 0; id < d.NodesOld; id++ {
		if d.FaninsNew[id] == nil {
			continue
		}
		rewire(ntk, d, id)
	}

	// Set up the new nodes
	for id := d.NodesOld; id < d.NodesOld+d.NodesNew; id++ {
		rewire(ntk, d, id)
	}
}

// rewire detaches the node's fanins, attaches the replacement fanins in
// order, and installs the replacement cover
func rewire(ntk *network.Network, d *Data, id int) {
	node := ntk.Obj(id)
	if node == nil {
		panic(fmt.Sprintf("fx: rewiring removed node %d", id))
	}
	node.RemoveFanins()
	for _, fid := range d.FaninsNew[id] {
		fanin := ntk.Obj(fid)
		if fanin == nil {
			panic(fmt.Sprintf("fx: node %d references unallocated fanin %d", id, fid))
		}
		node.AddFanin(fanin)
	}
	cover := d.CoversNew[id]
	if cover == nil {
		panic(fmt.Sprintf("fx: node %d rewired without a cover", id))
	}
	node.SetCover(cover)
}
