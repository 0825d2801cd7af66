package network

import (
	"fmt"

	"fext/pkg/sop"
)

// NodeType represents the classification of a node in the network
type NodeType int

const (
	Logic NodeType = iota
	PrimaryInput
	PrimaryOutput
)

// String returns a string representation of the node type
func (t NodeType) String() string {
	switch t {
	case Logic:
		return "LOGIC"
	case PrimaryInput:
		return "PI"
	case PrimaryOutput:
		return "PO"
	default:
		return "UNKNOWN"
	}
}

// Fanin is an input edge of a node. The complement mark lives on the edge,
// not on the driving node.
type Fanin struct {
	Node  *Node
	Compl bool
}

// Node represents one object in the network: a primary input, a primary
// output, or an internal logic node carrying a sum-of-products cover.
type Node struct {
	ID      int        // Unique identifier, dense and monotonically assigned
	Name    string     // Name of the node
	Type    NodeType   // Classification
	Fanins  []Fanin    // Input edges, ordered; cover columns follow this order
	Fanouts []*Node    // Nodes this node feeds into
	Cover   *sop.Cover // Two-level cover (logic nodes only)
}

// newNode creates a detached node; identifiers are assigned by the network
func newNode(id int, name string, nodeType NodeType) *Node {
	return &Node{
		ID:      id,
		Name:    name,
		Type:    nodeType,
		Fanins:  make([]Fanin, 0),
		Fanouts: make([]*Node, 0),
	}
}

// AddFanin appends an uncomplemented fanin edge and registers the fanout
// on the driving node
func (n *Node) AddFanin(fanin *Node) {
	n.Fanins = append(n.Fanins, Fanin{Node: fanin})
	fanin.Fanouts = append(fanin.Fanouts, n)
}

// AddFaninCompl appends a complemented fanin edge
func (n *Node) AddFaninCompl(fanin *Node) {
	n.Fanins = append(n.Fanins, Fanin{Node: fanin, Compl: true})
	fanin.Fanouts = append(fanin.Fanouts, n)
}

// RemoveFanins detaches every fanin edge, unregistering this node from
// each driver's fanout list
func (n *Node) RemoveFanins() {
	for _, f := range n.Fanins {
		f.Node.removeFanout(n)
	}
	n.Fanins = n.Fanins[:0]
}

func (n *Node) removeFanout(fanout *Node) {
	for i, f := range n.Fanouts {
		if f == fanout {
			n.Fanouts = append(n.Fanouts[:i], n.Fanouts[i+1:]...)
			return
		}
	}
}

// FaninNum returns the number of fanin edges
func (n *Node) FaninNum() int {
	return len(n.Fanins)
}

// FaninIDs returns the identifiers of the fanin nodes, in fanin order
func (n *Node) FaninIDs() []int {
	ids := make([]int, len(n.Fanins))
	for i, f := range n.Fanins {
		ids[i] = f.Node.ID
	}
	return ids
}

// SetCover installs the two-level cover of the node
func (n *Node) SetCover(cover *sop.Cover) {
	n.Cover = cover
}

// IsLogic returns true for internal logic nodes
func (n *Node) IsLogic() bool {
	return n.Type == Logic
}

// String returns a string representation of the node
func (n *Node) String() string {
	return fmt.Sprintf("%s(%s,id=%d)", n.Name, n.Type, n.ID)
}
