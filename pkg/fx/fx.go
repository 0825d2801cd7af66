package fx

import (
	"go.uber.org/zap"

	"fext/pkg/network"
)

// Extractor is the contract of the divisor extraction procedure. It reads
// the snapshot's Covers/Fanins, fills CoversNew/FaninsNew for every node
// whose representation must change, sets NodesNew, and returns it. A
// non-positive return means no beneficial extraction was found and the
// network must be left alone. New node identifiers must form the
// contiguous range [NodesOld, NodesOld+NodesNew).
type Extractor func(*Data) int

// FastExtract runs divisor extraction on the network with the given new
// node budget. Returns true if the network was changed. Precondition
// failures and a no-improvement outcome are reported through the logger
// and leave the network untouched.
func FastExtract(ntk *network.Network, budget int, extract Extractor, log *zap.Logger) bool {
	d := NewData(budget)
	defer d.Release()

	if err := ntk.ToSop(); err != nil {
		log.Warn("converting the network to SOPs failed", zap.Error(err))
		return false
	}
	if !Check(ntk) {
		log.Warn("nodes have duplicated or complemented fanins; fast extract not performed")
		return false
	}
	// Dangling nodes would show up in the snapshot as extraction targets
	if removed := ntk.Cleanup(); removed > 0 {
		log.Debug("removed dangling nodes before extraction", zap.Int("removed", removed))
	}

	CollectInfo(ntk, d)
	d.NodesNew = extract(d)
	if d.NodesNew <= 0 {
		log.Info("the network has not been changed by fast extract")
		return false
	}

	Reconstruct(ntk, d)
	if err := ntk.Check(); err != nil {
		log.Warn("network check failed after fast extract", zap.Error(err))
	}
	log.Debug("fast extract rewrote the network",
		zap.Int("newNodes", d.NodesNew),
		zap.Int("literals", ntk.LitNum()))
	return true
}
