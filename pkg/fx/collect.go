package fx

import (
	"fext/pkg/network"
	"fext/pkg/sop"
)

// CollectInfo populates the snapshot from the network. A node contributes
// its cover and fanin list iff the cover has at least two variables and at
// least one cube; one-variable and constant nodes carry no extractable
// structure. Records NodesOld, which later separates "rewrite existing"
// from "append new" during reconstruction.
func CollectInfo(ntk *network.Network, d *Data) {
	max := ntk.ObjNumMax()
	d.Covers = make([]*sop.Cover, max)
	d.Fanins = make([][]int, max)
	d.CoversNew = make([]*sop.Cover, max+d.NodesExt)
	d.FaninsNew = make([][]int, max+d.NodesExt)

	ntk.ForEachNode(func(node *network.Node) {
		if node.Cover.VarNum() < 2 {
			return
		}
		if node.Cover.CubeNum() < 1 {
			return
		}
		d.Covers[node.ID] = node.Cover
		d.Fanins[node.ID] = node.FaninIDs()
	})
	d.NodesOld = max
}
