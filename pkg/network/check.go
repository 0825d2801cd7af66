package network

import (
	"fmt"
)

// Check verifies the structural integrity of the network: every fanin edge
// must resolve to a live node, logic covers must match their fanin counts,
// no node may list the same fanin twice, and every primary output must have
// exactly one live driver.
func (ntk *Network) Check() error {
	for _, node := range ntk.Objs {
		if node == nil {
			continue
		}
		for i, f := range node.Fanins {
			if f.Node == nil {
				return fmt.Errorf("node %s: fanin slot %d is nil", node, i)
			}
			if ntk.Obj(f.Node.ID) != f.Node {
				return fmt.Errorf("node %s: fanin slot %d references removed node %d", node, i, f.Node.ID)
			}
			for k := i + 1; k < len(node.Fanins); k++ {
				if node.Fanins[k].Node == f.Node {
					return fmt.Errorf("node %s: duplicated fanin %s", node, f.Node)
				}
			}
		}
		switch node.Type {
		case Logic:
			if node.Cover == nil {
				return fmt.Errorf("node %s: logic node has no cover", node)
			}
			if node.Cover.VarNum() != node.FaninNum() {
				return fmt.Errorf("node %s: cover has %d variables but node has %d fanins",
					node, node.Cover.VarNum(), node.FaninNum())
			}
		case PrimaryInput:
			if node.FaninNum() != 0 {
				return fmt.Errorf("node %s: primary input has fanins", node)
			}
		case PrimaryOutput:
			if node.FaninNum() != 1 {
				return fmt.Errorf("node %s: primary output has %d fanins, expected 1", node, node.FaninNum())
			}
		}
	}
	return nil
}
