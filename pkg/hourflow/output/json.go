// Package output serializes Sankey graphs for the renderer.
package output

import (
	"encoding/json"

	"github.com/ukaji3/hourflow-go/pkg/hourflow/models"
)

// ToJSON serializes the graph as {"nodes": [...], "links": [...]}.
func ToJSON(g *models.Graph, pretty bool) ([]byte, error) {
	return marshal(g, pretty)
}

// NamesToJSON serializes a list of individual names.
func NamesToJSON(names []string, pretty bool) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	return marshal(names, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
