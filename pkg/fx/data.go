// Package fx bridges a combinational Boolean network and the divisor
// extraction procedure. It validates the network, builds the stateless
// snapshot the procedure consumes, and commits the procedure's output
// back onto the live network graph.
package fx

import (
	"fext/pkg/sop"
)

// Data is the extraction snapshot: parallel containers keyed by node
// identifier. Covers and Fanins are read-only views of the network sized
// to ObjNumMax; CoversNew and FaninsNew are output slots owned by the
// snapshot, sized NodesExt entries larger so the procedure can address
// identifiers of nodes it has yet to synthesize. A nil entry means
// "absent"; a present entry may still be empty.
type Data struct {
	Covers    []*sop.Cover // Existing cover per eligible node
	Fanins    [][]int      // Existing fanin identifiers per eligible node
	CoversNew []*sop.Cover // Replacement covers, filled by the procedure
	FaninsNew [][]int      // Replacement fanin lists, filled by the procedure

	NodesOld int // Object count before extraction
	NodesExt int // Budget: max nodes the procedure may synthesize
	NodesNew int // Nodes actually synthesized, set by the procedure
}

// NewData creates a snapshot shell with the given extraction budget.
// The containers are allocated by CollectInfo.
func NewData(budget int) *Data {
	return &Data{NodesExt: budget}
}

// Release drops the snapshot's owned output containers. Safe to call more
// than once; called on every exit path of the pass, including early aborts.
func (d *Data) Release() {
	for i := range d.FaninsNew {
		d.FaninsNew[i] = nil
	}
	d.Covers = nil
	d.Fanins = nil
	d.CoversNew = nil
	d.FaninsNew = nil
}
