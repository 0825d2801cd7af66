package network

import (
	"fmt"
)

// Network represents a combinational Boolean network: a DAG of nodes
// addressed by dense integer identifiers. Removed nodes leave nil holes
// in the object table so that identifiers are never reused.
type Network struct {
	Name string
	Objs []*Node // Index equals node ID
	PIs  []*Node
	POs  []*Node
}

// NewNetwork creates a new empty network with the given name
func NewNetwork(name string) *Network {
	return &Network{
		Name: name,
		Objs: make([]*Node, 0),
		PIs:  make([]*Node, 0),
		POs:  make([]*Node, 0),
	}
}

// CreateNode creates a fanin-less logic node with the next identifier.
// The i-th created object always receives identifier i.
func (ntk *Network) CreateNode() *Node {
	id := len(ntk.Objs)
	node := newNode(id, fmt.Sprintf("n%d", id), Logic)
	ntk.Objs = append(ntk.Objs, node)
	return node
}

// CreatePI creates a primary input with the next identifier
func (ntk *Network) CreatePI(name string) *Node {
	id := len(ntk.Objs)
	node := newNode(id, name, PrimaryInput)
	ntk.Objs = append(ntk.Objs, node)
	ntk.PIs = append(ntk.PIs, node)
	return node
}

// CreatePO creates a primary output driven by the given node
func (ntk *Network) CreatePO(name string, driver *Node) *Node {
	id := len(ntk.Objs)
	node := newNode(id, name, PrimaryOutput)
	ntk.Objs = append(ntk.Objs, node)
	ntk.POs = append(ntk.POs, node)
	node.AddFanin(driver)
	return node
}

// Obj returns the node with the given identifier, or nil if the identifier
// is out of range or the node has been removed
func (ntk *Network) Obj(id int) *Node {
	if id < 0 || id >= len(ntk.Objs) {
		return nil
	}
	return ntk.Objs[id]
}

// ObjNumMax returns one past the largest identifier ever assigned
func (ntk *Network) ObjNumMax() int {
	return len(ntk.Objs)
}

// NodeNum returns the number of live internal logic nodes
func (ntk *Network) NodeNum() int {
	n := 0
	for _, node := range ntk.Objs {
		if node != nil && node.IsLogic() {
			n++
		}
	}
	return n
}

// ForEachNode calls fn for every live internal logic node, in identifier order
func (ntk *Network) ForEachNode(fn func(*Node)) {
	for _, node := range ntk.Objs {
		if node != nil && node.IsLogic() {
			fn(node)
		}
	}
}

// DeleteNode detaches the node from the network and frees its identifier
// slot. The identifier is never reassigned.
func (ntk *Network) DeleteNode(node *Node) {
	node.RemoveFanins()
	ntk.Objs[node.ID] = nil
}

// LitNum returns the total literal count over all logic-node covers
func (ntk *Network) LitNum() int {
	n := 0
	ntk.ForEachNode(func(node *Node) {
		if node.Cover != nil {
			n += node.Cover.LitNum()
		}
	})
	return n
}

// ToSop verifies the network is in two-level-cover form: every logic node
// must carry a cover whose column count matches its fanin count
func (ntk *Network) ToSop() error {
	var err error
	ntk.ForEachNode(func(node *Node) {
		if err != nil {
			return
		}
		if node.Cover == nil {
			err = fmt.Errorf("node %s has no cover", node)
			return
		}
		if node.Cover.VarNum() != node.FaninNum() {
			err = fmt.Errorf("node %s has %d fanins but its cover has %d variables",
				node, node.FaninNum(), node.Cover.VarNum())
		}
	})
	return err
}

// Cleanup removes logic nodes not reachable from any primary output and
// returns the number of nodes removed
func (ntk *Network) Cleanup() int {
	reachable := make(map[int]bool)
	var mark func(node *Node)
	mark = func(node *Node) {
		if reachable[node.ID] {
			return
		}
		reachable[node.ID] = true
		for _, f := range node.Fanins {
			mark(f.Node)
		}
	}
	for _, po := range ntk.POs {
		mark(po)
	}

	removed := 0
	for _, node := range ntk.Objs {
		if node != nil && node.IsLogic() && !reachable[node.ID] {
			ntk.DeleteNode(node)
			removed++
		}
	}
	return removed
}
