package debruijn

import (
	"math"
	"math/rand"
)

// tieBreakSeed makes the random pick among equally good paths
// reproducible run-to-run. The source is re-seeded on every selection so
// the outcome only depends on the candidates, not on call history.
const tieBreakSeed = 9001

// PathAverageWeight returns the mean edge weight along a path. An edge
// already removed by an earlier deletion in the same batch contributes
// zero. A single-node path, or one whose edges are all gone, weighs 0.
func PathAverageWeight(g *Graph, path []string) float64 {
	if len(path) < 2 {
		return 0
	}

	sum := 0
	for i := 0; i < len(path)-1; i++ {
		if w, ok := g.Weight(path[i], path[i+1]); ok {
			sum += w
		}
	}
	return float64(sum) / float64(len(path)-1)
}

// Std returns the sample standard deviation of xs, 0 with fewer than
// two values.
func Std(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}

	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	squares := 0.0
	for _, x := range xs {
		squares += (x - mean) * (x - mean)
	}
	return math.Sqrt(squares / float64(len(xs)-1))
}

// SelectBestPath keeps the best of the competing paths and removes every
// other one from the graph, with dropFirst/dropLast applied to the losers.
// Best is the heaviest path, the longest among equally heavy ones, and a
// seeded-random pick among paths tied on both. Returns the winner's index.
// lengths and weights are parallel to paths. Panics on an empty candidate
// list: callers must not invoke it without at least one path.
func SelectBestPath(g *Graph, paths [][]string, lengths []int, weights []float64, dropFirst, dropLast bool) int {
	if len(paths) == 0 {
		panic("select best path: no candidate paths")
	}

	best := make([]int, len(paths))
	for i := range paths {
		best[i] = i
	}

	if Std(weights) > 0 {
		maxWeight := weights[best[0]]
		for _, i := range best {
			if weights[i] > maxWeight {
				maxWeight = weights[i]
			}
		}
		best = filterIndexes(best, func(i int) bool { return weights[i] == maxWeight })
	}

	if len(best) > 1 {
		maxLength := lengths[best[0]]
		for _, i := range best {
			if lengths[i] > maxLength {
				maxLength = lengths[i]
			}
		}
		best = filterIndexes(best, func(i int) bool { return lengths[i] == maxLength })
	}

	winner := best[0]
	if len(best) > 1 {
		r := rand.New(rand.NewSource(tieBreakSeed))
		winner = best[r.Intn(len(best))]
	}

	for i, path := range paths {
		if i == winner {
			continue
		}
		g.RemovePath(path, dropFirst, dropLast)
	}

	return winner
}

func filterIndexes(indexes []int, keep func(int) bool) []int {
	kept := indexes[:0]
	for _, i := range indexes {
		if keep(i) {
			kept = append(kept, i)
		}
	}
	return kept
}

// SolveBubble removes every simple path between a bubble's entry and exit
// except the best one. Both endpoints are shared by the competing paths
// and always survive.
func SolveBubble(g *Graph, entry, exit string) {
	paths := g.AllSimplePaths(entry, exit)
	if len(paths) == 0 {
		return
	}

	lengths := make([]int, len(paths))
	weights := make([]float64, len(paths))
	for i, path := range paths {
		lengths[i] = len(path)
		weights[i] = PathAverageWeight(g, path)
	}

	SelectBestPath(g, paths, lengths, weights, false, false)
}

// SimplifyBubbles locates and resolves every bubble reachable from a
// (start, sink) pair. The start and sink sets are fixed at call entry;
// later pairs see the graph as mutated by earlier resolutions.
func SimplifyBubbles(g *Graph) {
	starts := g.StartingNodes()
	sinks := g.SinkNodes()

	for _, start := range starts {
		for _, sink := range sinks {
			entry := forwardToBranch(g, start)
			exit := backwardToBranch(g, sink)
			SolveBubble(g, entry, exit)
		}
	}
}

// forwardToBranch walks from a starting node along sole successors until
// a node with two or more successors (the bubble entry) or a dead end.
// A revisit check keeps a perfect cycle from hanging the walk.
func forwardToBranch(g *Graph, start string) string {
	current := start
	visited := map[string]bool{start: true}
	for {
		succs := g.Successors(current)
		if len(succs) != 1 || visited[succs[0]] {
			return current
		}
		current = succs[0]
		visited[current] = true
	}
}

// backwardToBranch is the mirror of forwardToBranch: walk from a sink
// along sole predecessors until a node with two or more predecessors.
func backwardToBranch(g *Graph, sink string) string {
	current := sink
	visited := map[string]bool{sink: true}
	for {
		preds := g.Predecessors(current)
		if len(preds) != 1 || visited[preds[0]] {
			return current
		}
		current = preds[0]
		visited[current] = true
	}
}

// SolveEntryTips trims the dead-end branches hanging off the graph's
// starting nodes, keeping only the best path into each merge point.
// Bubbles are resolved first: tip lengths and weights are skewed on a
// graph that still has them.
func SolveEntryTips(g *Graph, startingNodes []string) {
	SimplifyBubbles(g)

	var paths [][]string
	for _, start := range startingNodes {
		if !g.HasNode(start) {
			continue
		}

		path := []string{start}
		current := start
		visited := map[string]bool{start: true}
		for len(g.Successors(current)) == 1 && len(g.Predecessors(current)) < 2 {
			next := g.Successors(current)[0]
			if visited[next] {
				break
			}
			visited[next] = true
			path = append(path, next)
			current = next
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return
	}

	lengths := make([]int, len(paths))
	weights := make([]float64, len(paths))
	for i, path := range paths {
		lengths[i] = len(path)
		weights[i] = PathAverageWeight(g, path)
	}

	// only the dangling starting end of a losing tip is dropped; the
	// merge point is shared and stays
	SelectBestPath(g, paths, lengths, weights, true, false)
}

// SolveOutTips is the sink-side mirror of SolveEntryTips. Walked paths
// are reversed into forward orientation before scoring so weights read
// edges in edge direction.
func SolveOutTips(g *Graph, sinkNodes []string) {
	SimplifyBubbles(g)

	var paths [][]string
	for _, sink := range sinkNodes {
		if !g.HasNode(sink) {
			continue
		}

		path := []string{sink}
		current := sink
		visited := map[string]bool{sink: true}
		for len(g.Predecessors(current)) == 1 && len(g.Successors(current)) < 2 {
			next := g.Predecessors(current)[0]
			if visited[next] {
				break
			}
			visited[next] = true
			path = append(path, next)
			current = next
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return
	}

	lengths := make([]int, len(paths))
	weights := make([]float64, len(paths))
	for i, path := range paths {
		lengths[i] = len(path)
		weights[i] = PathAverageWeight(g, path)
	}

	SelectBestPath(g, paths, lengths, weights, false, true)
}
