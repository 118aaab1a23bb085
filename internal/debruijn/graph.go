package debruijn

import (
	"sort"
)

// Graph is a weighted directed graph whose nodes are k-1-mers and whose
// edges are observed k-mers. An edge's weight is the occurrence count of
// the k-mer it was built from. The graph is built once and then only ever
// shrinks: simplification removes nodes and edges in place.
type Graph struct {
	nodes map[string]struct{}

	// out maps a node to its successors and the weight of each edge
	out map[string]map[string]int

	// in maps a node to the set of its predecessors
	in map[string]map[string]struct{}
}

// NewGraph returns an empty assembly graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		out:   make(map[string]map[string]int),
		in:    make(map[string]map[string]struct{}),
	}
}

// BuildGraph creates the de Bruijn graph from a k-mer count index. Each
// k-mer contributes one edge: its k-1 prefix to its k-1 suffix, weighted
// by the k-mer's count.
func BuildGraph(kmers map[string]int) *Graph {
	g := NewGraph()
	for kmer, count := range kmers {
		g.AddEdge(kmer[:len(kmer)-1], kmer[1:], count)
	}
	return g
}

func (g *Graph) addNode(n string) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = struct{}{}
	g.out[n] = make(map[string]int)
	g.in[n] = make(map[string]struct{})
}

// AddEdge inserts a weighted edge between two nodes, creating the nodes
// if they are not yet in the graph.
func (g *Graph) AddEdge(from, to string, weight int) {
	g.addNode(from)
	g.addNode(to)
	g.out[from][to] = weight
	g.in[to][from] = struct{}{}
}

// HasNode returns whether the node is in the graph.
func (g *Graph) HasNode(n string) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasEdge returns whether an edge exists between two nodes.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.out[from][to]
	return ok
}

// Weight returns the weight of the edge between two nodes and whether
// that edge exists.
func (g *Graph) Weight(from, to string) (int, bool) {
	w, ok := g.out[from][to]
	return w, ok
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, succs := range g.out {
		count += len(succs)
	}
	return count
}

// Nodes returns every node in the graph in lexicographic order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Successors returns the nodes reachable by one outgoing edge, in
// lexicographic order. Iteration order is stable for a given graph state.
func (g *Graph) Successors(n string) []string {
	succs := make([]string, 0, len(g.out[n]))
	for s := range g.out[n] {
		succs = append(succs, s)
	}
	sort.Strings(succs)
	return succs
}

// Predecessors returns the nodes with one edge into n, in lexicographic
// order.
func (g *Graph) Predecessors(n string) []string {
	preds := make([]string, 0, len(g.in[n]))
	for p := range g.in[n] {
		preds = append(preds, p)
	}
	sort.Strings(preds)
	return preds
}

// StartingNodes returns every node without a predecessor. An isolated
// node is both a starting and a sink node.
func (g *Graph) StartingNodes() []string {
	var starts []string
	for _, n := range g.Nodes() {
		if len(g.in[n]) == 0 {
			starts = append(starts, n)
		}
	}
	return starts
}

// SinkNodes returns every node without a successor.
func (g *Graph) SinkNodes() []string {
	var sinks []string
	for _, n := range g.Nodes() {
		if len(g.out[n]) == 0 {
			sinks = append(sinks, n)
		}
	}
	return sinks
}

// RemoveNode removes a node and all its incident edges. Removing a node
// that is already absent is a no-op.
func (g *Graph) RemoveNode(n string) {
	if !g.HasNode(n) {
		return
	}
	for succ := range g.out[n] {
		delete(g.in[succ], n)
	}
	for pred := range g.in[n] {
		delete(g.out[pred], n)
	}
	delete(g.out, n)
	delete(g.in, n)
	delete(g.nodes, n)
}

// RemovePath removes the interior nodes of a path unconditionally, its
// first node if dropFirst, and its last node if dropLast. Paths from one
// removal batch may overlap, so absent nodes are skipped silently.
func (g *Graph) RemovePath(path []string, dropFirst, dropLast bool) {
	if len(path) == 0 {
		return
	}
	if dropFirst {
		g.RemoveNode(path[0])
	}
	if dropLast {
		g.RemoveNode(path[len(path)-1])
	}
	if len(path) > 2 {
		for _, n := range path[1 : len(path)-1] {
			g.RemoveNode(n)
		}
	}
}

// ShortestPath returns a path with the fewest edges between two nodes
// using breadth-first search, or nil if the target is unreachable or
// either node is absent. With from == to the path is the single node.
// Successors are expanded in lexicographic order, so the choice among
// equal-length shortest paths is deterministic for a given graph state.
func (g *Graph) ShortestPath(from, to string) []string {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}
	if from == to {
		return []string{from}
	}

	prev := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, succ := range g.Successors(current) {
			if _, seen := prev[succ]; seen {
				continue
			}
			prev[succ] = current

			if succ == to {
				var path []string
				for n := to; n != ""; n = prev[n] {
					path = append(path, n)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			queue = append(queue, succ)
		}
	}

	return nil
}

// AllSimplePaths returns every directed path between two nodes that
// repeats no node. Discovery order is deterministic for a given graph
// state (depth-first, successors in lexicographic order).
func (g *Graph) AllSimplePaths(from, to string) [][]string {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}

	var paths [][]string
	onPath := map[string]bool{from: true}
	path := []string{from}

	var visit func(n string)
	visit = func(n string) {
		if n == to {
			paths = append(paths, append([]string(nil), path...))
			return
		}
		for _, succ := range g.Successors(n) {
			if onPath[succ] {
				continue
			}
			onPath[succ] = true
			path = append(path, succ)
			visit(succ)
			path = path[:len(path)-1]
			delete(onPath, succ)
		}
	}
	visit(from)

	return paths
}
