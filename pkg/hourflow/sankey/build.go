// Package sankey aggregates long-form hour rows into a Sankey node/link graph.
package sankey

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/models"
)

// Input is everything one graph build needs.
type Input struct {
	// Rows are the positive long-form observations.
	Rows []models.LongRow
	// Groups and Names are the distinct groups and individuals of the selected rows.
	// They become nodes even when none of their observations survived.
	Groups []string
	Names  []string
	// AggregateLeaves sums sub-category -> individual links per pair instead of
	// emitting one link per observation.
	AggregateLeaves bool
}

// Build emits nodes and links for the three hierarchy levels:
// top category -> group, group -> sub-category, sub-category -> individual.
// Output order follows first appearance in the input, so repeated builds are identical.
func Build(in Input) models.Graph {
	var g models.Graph
	if len(in.Rows) == 0 && len(in.Groups) == 0 && len(in.Names) == 0 {
		return models.Graph{Nodes: []models.Node{}, Links: []models.Link{}}
	}

	nodes := newNodeSet()
	for _, r := range in.Rows {
		nodes.add(r.TopCategory, models.LevelTopCategory)
	}
	for _, group := range in.Groups {
		nodes.add(group, models.LevelGroup)
	}
	for _, r := range in.Rows {
		// Groups may omit a group that only appears in Rows.
		nodes.add(r.Group, models.LevelGroup)
	}
	for _, r := range in.Rows {
		nodes.add(r.SubCategory, models.LevelSubCategory)
	}
	for _, name := range in.Names {
		nodes.add(name, models.LevelIndividual)
	}
	g.Nodes = nodes.list

	topGroup := newSums()
	groupSub := newSums()
	for _, r := range in.Rows {
		topGroup.add(r.TopCategory, r.Group, r.Hours())
		groupSub.add(r.Group, r.SubCategory, r.Hours())
	}

	g.Links = append(g.Links, topGroup.links(models.LevelTopCategory)...)
	g.Links = append(g.Links, groupSub.links(models.LevelGroup)...)

	if in.AggregateLeaves {
		subName := newSums()
		for _, r := range in.Rows {
			subName.add(r.SubCategory, r.Name, r.Hours())
		}
		g.Links = append(g.Links, subName.links(models.LevelSubCategory)...)
	} else {
		for _, r := range in.Rows {
			if !r.Hours().IsPositive() {
				continue
			}
			g.Links = append(g.Links, models.Link{
				Source: r.SubCategory,
				Target: r.Name,
				Value:  r.Hours().InexactFloat64(),
				Level:  models.LevelSubCategory,
			})
		}
	}
	if g.Links == nil {
		g.Links = []models.Link{}
	}

	return g
}

// nodeSet deduplicates node names across levels, keeping the first level seen.
type nodeSet struct {
	seen map[string]bool
	list []models.Node
}

func newNodeSet() *nodeSet {
	return &nodeSet{seen: make(map[string]bool), list: []models.Node{}}
}

func (s *nodeSet) add(name string, level models.Level) {
	if name == "" || s.seen[name] {
		return
	}
	s.seen[name] = true
	s.list = append(s.list, models.Node{Name: name, Level: level})
}

type pair struct {
	source, target string
}

// sums accumulates values per (source, target) pair in first-appearance order.
type sums struct {
	order []pair
	total map[pair]decimal.Decimal
}

func newSums() *sums {
	return &sums{total: make(map[pair]decimal.Decimal)}
}

func (s *sums) add(source, target string, v decimal.Decimal) {
	k := pair{source, target}
	cur, ok := s.total[k]
	if !ok {
		s.order = append(s.order, k)
	}
	s.total[k] = cur.Add(v)
}

// links returns one link per pair with a strictly positive total.
func (s *sums) links(level models.Level) []models.Link {
	var out []models.Link
	for _, k := range s.order {
		v := s.total[k]
		if !v.IsPositive() {
			continue
		}
		out = append(out, models.Link{
			Source: k.source,
			Target: k.target,
			Value:  v.InexactFloat64(),
			Level:  level,
		})
	}
	return out
}

// Totals sums the positive row values per top category.
func Totals(rows []models.LongRow) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if r.Hours().IsPositive() {
			out[r.TopCategory] = out[r.TopCategory].Add(r.Hours())
		}
	}
	return out
}
