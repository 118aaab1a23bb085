package debruijn

import (
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// Dot renders the graph in Graphviz DOT format with one record per node
// and k-mer occurrence counts as edge labels.
func (g *Graph) Dot(name string) (string, error) {
	viz := gographviz.NewGraph()
	if err := viz.SetName(name); err != nil {
		return "", err
	}
	if err := viz.SetDir(true); err != nil {
		return "", err
	}

	for _, n := range g.Nodes() {
		if err := viz.AddNode(name, strconv.Quote(n), nil); err != nil {
			return "", err
		}
	}
	for _, from := range g.Nodes() {
		for _, to := range g.Successors(from) {
			weight, _ := g.Weight(from, to)
			attrs := map[string]string{"label": strconv.Quote(strconv.Itoa(weight))}
			if err := viz.AddEdge(strconv.Quote(from), strconv.Quote(to), true, attrs); err != nil {
				return "", err
			}
		}
	}

	return viz.String(), nil
}
