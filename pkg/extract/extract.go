// Package extract implements greedy single-cube divisor extraction over
// an fx snapshot: two-literal products shared by several cubes anywhere in
// the network are factored into new shared nodes.
package extract

import (
	"sort"

	"fext/pkg/fx"
	"fext/pkg/sop"
)

// A literal is a node identifier with a phase bit: 2*id for the positive
// literal, 2*id+1 for the negative one.

func litNode(l int) int { return l >> 1 }
func litNeg(l int) bool { return l&1 == 1 }

// workNode is one cover rewritten over global literals. Cubes are sorted
// literal slices.
type workNode struct {
	id      int
	cubes   [][]int
	changed bool
}

// SingleCubeDivisors finds two-literal products appearing in at least two
// cubes and extracts them greedily, best pair first, until no shared pair
// remains or the budget is exhausted. Fills CoversNew/FaninsNew for every
// changed and every new node, sets NodesNew and returns it.
func SingleCubeDivisors(d *fx.Data) int {
	work := buildWork(d)

	newNodes := 0
	for newNodes < d.NodesExt {
		pair, count := bestPair(work)
		if count < 2 {
			break
		}
		id := d.NodesOld + newNodes
		extractPair(work, pair, id)
		newNodes++
	}
	if newNodes == 0 {
		d.NodesNew = 0
		return 0
	}

	for _, w := range work {
		if w != nil && w.changed {
			commit(d, w)
		}
	}
	d.NodesNew = newNodes
	return newNodes
}

// buildWork rewrites every eligible cover over global literals
func buildWork(d *fx.Data) []*workNode {
	work := make([]*workNode, d.NodesOld+d.NodesExt)
	for id, cover := range d.Covers {
		if cover == nil {
			continue
		}
		fanins := d.Fanins[id]
		w := &workNode{id: id, cubes: make([][]int, 0, cover.CubeNum())}
		for _, cube := range cover.Cubes {
			lits := make([]int, 0, len(cube))
			for col, l := range cube {
				switch l {
				case sop.Pos:
					lits = append(lits, 2*fanins[col])
				case sop.Neg:
					lits = append(lits, 2*fanins[col]+1)
				}
			}
			sort.Ints(lits)
			w.cubes = append(w.cubes, lits)
		}
		work[id] = w
	}
	return work
}

// bestPair counts co-occurrences of literal pairs across all cubes and
// returns the most frequent pair. Ties break toward the lexicographically
// smallest pair so extraction order is deterministic.
func bestPair(work []*workNode) ([2]int, int) {
	counts := make(map[[2]int]int)
	for _, w := range work {
		if w == nil {
			continue
		}
		for _, cube := range w.cubes {
			for i := 0; i < len(cube); i++ {
				for k := i + 1; k < len(cube); k++ {
					a, b := cube[i], cube[k]
					if litNode(a) == litNode(b) {
						continue
					}
					counts[[2]int{a, b}]++
				}
			}
		}
	}

	var best [2]int
	bestCount := 0
	for pair, count := range counts {
		if count > bestCount ||
			(count == bestCount && (pair[0] < best[0] || (pair[0] == best[0] && pair[1] < best[1]))) {
			best = pair
			bestCount = count
		}
	}
	return best, bestCount
}

// extractPair synthesizes the divisor node and substitutes its positive
// literal for the pair in every cube containing both literals
func extractPair(work []*workNode, pair [2]int, id int) {
	newLit := 2 * id
	for _, w := range work {
		if w == nil {
			continue
		}
		for i, cube := range w.cubes {
			if !hasBoth(cube, pair) {
				continue
			}
			w.cubes[i] = substitute(cube, pair, newLit)
			w.changed = true
		}
	}
	work[id] = &workNode{
		id:      id,
		cubes:   [][]int{{pair[0], pair[1]}},
		changed: true,
	}
}

func hasBoth(cube []int, pair [2]int) bool {
	found := 0
	for _, l := range cube {
		if l == pair[0] || l == pair[1] {
			found++
		}
	}
	return found == 2
}

func substitute(cube []int, pair [2]int, newLit int) []int {
	out := make([]int, 0, len(cube)-1)
	for _, l := range cube {
		if l != pair[0] && l != pair[1] {
			out = append(out, l)
		}
	}
	out = append(out, newLit)
	sort.Ints(out)
	return out
}

// commit converts a work node back into fanin-list plus cover form and
// stores it in the snapshot's output slots
func commit(d *fx.Data, w *workNode) {
	present := make(map[int]bool)
	for _, cube := range w.cubes {
		for _, l := range cube {
			present[litNode(l)] = true
		}
	}
	fanins := make([]int, 0, len(present))
	for id := range present {
		fanins = append(fanins, id)
	}
	sort.Ints(fanins)

	col := make(map[int]int, len(fanins))
	for i, id := range fanins {
		col[id] = i
	}
	cover := sop.NewCover(len(fanins))
	for _, cube := range w.cubes {
		row := make(sop.Cube, len(fanins))
		for _, l := range cube {
			if litNeg(l) {
				row[col[litNode(l)]] = sop.Neg
			} else {
				row[col[litNode(l)]] = sop.Pos
			}
		}
		cover.Cubes = append(cover.Cubes, row)
	}

	d.FaninsNew[w.id] = fanins
	d.CoversNew[w.id] = cover
}
