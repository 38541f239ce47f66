package sankey

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/models"
)

func row(top, group, sub, name, value string) models.LongRow {
	d := decimal.RequireFromString(value)
	return models.LongRow{TopCategory: top, Group: group, SubCategory: sub, Name: name, Raw: value, Value: &d}
}

func exampleInput() Input {
	return Input{
		Rows: []models.LongRow{
			row("fixed", "G1", "A", "Alice", "5"),
			row("fixed", "G1", "B", "Bob", "2"),
			row("project", "G1", "C", "Alice", "3"),
		},
		Groups: []string{"G1"},
		Names:  []string{"Alice", "Bob"},
	}
}

type edge struct {
	source, target string
	value          float64
}

func edges(links []models.Link) []edge {
	var out []edge
	for _, l := range links {
		out = append(out, edge{l.Source, l.Target, l.Value})
	}
	return out
}

func TestBuild_Example(t *testing.T) {
	g := Build(exampleInput())

	assert.Equal(t, []edge{{"fixed", "G1", 7}, {"project", "G1", 3}}, edges(g.LinksAt(models.LevelTopCategory)))
	assert.Equal(t, []edge{{"G1", "A", 5}, {"G1", "B", 2}, {"G1", "C", 3}}, edges(g.LinksAt(models.LevelGroup)))
	assert.Equal(t, []edge{{"A", "Alice", 5}, {"B", "Bob", 2}, {"C", "Alice", 3}}, edges(g.LinksAt(models.LevelSubCategory)))

	var names []string
	for _, n := range g.Nodes {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"fixed", "project", "G1", "A", "B", "C", "Alice", "Bob"}, names)
}

func TestBuild_Empty(t *testing.T) {
	g := Build(Input{})
	assert.NotNil(t, g.Nodes)
	assert.NotNil(t, g.Links)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Links)
}

func TestBuild_IsolatedIndividual(t *testing.T) {
	in := exampleInput()
	in.Names = append(in.Names, "Carol")
	in.Groups = append(in.Groups, "G2")

	g := Build(in)
	var names []string
	for _, n := range g.Nodes {
		names = append(names, n.Name)
	}
	assert.Contains(t, names, "Carol")
	assert.Contains(t, names, "G2")
	for _, l := range g.Links {
		assert.NotEqual(t, "Carol", l.Target)
		assert.NotEqual(t, "G2", l.Source)
	}
}

func TestBuild_NodeCollisionDeduplicated(t *testing.T) {
	in := Input{
		Rows:   []models.LongRow{row("fixed", "Ops", "Ops", "Eve", "1")},
		Groups: []string{"Ops"},
		Names:  []string{"Eve"},
	}
	g := Build(in)

	require.Len(t, g.Nodes, 3)
	assert.Equal(t, models.Node{Name: "Ops", Level: models.LevelGroup}, g.Nodes[1])
	assert.Equal(t, []edge{{"Ops", "Ops", 1}}, edges(g.LinksAt(models.LevelGroup)))
}

func TestBuild_LeafLinks(t *testing.T) {
	in := Input{
		Rows: []models.LongRow{
			row("fixed", "G", "A", "Ann", "1.5"),
			row("project", "G", "A", "Ann", "2"),
		},
		Groups: []string{"G"},
		Names:  []string{"Ann"},
	}

	unaggregated := Build(in)
	assert.Equal(t, []edge{{"A", "Ann", 1.5}, {"A", "Ann", 2}}, edges(unaggregated.LinksAt(models.LevelSubCategory)))

	in.AggregateLeaves = true
	aggregated := Build(in)
	assert.Equal(t, []edge{{"A", "Ann", 3.5}}, edges(aggregated.LinksAt(models.LevelSubCategory)))

	// Level 2 always sums.
	assert.Equal(t, []edge{{"G", "A", 3.5}}, edges(aggregated.LinksAt(models.LevelGroup)))
}

func TestBuild_Conservation(t *testing.T) {
	in := Input{
		Rows: []models.LongRow{
			row("fixed", "G1", "A", "a", "0.1"),
			row("fixed", "G1", "B", "b", "0.2"),
			row("fixed", "G2", "A", "c", "0.7"),
			row("project", "G2", "C", "c", "1.25"),
			row("project", "G1", "C", "a", "4"),
		},
		Groups: []string{"G1", "G2"},
		Names:  []string{"a", "b", "c"},
	}
	g := Build(in)
	totals := Totals(in.Rows)

	for top, want := range totals {
		sum := decimal.Zero
		for _, l := range g.LinksAt(models.LevelTopCategory) {
			if l.Source == top {
				sum = sum.Add(decimal.NewFromFloat(l.Value))
			}
		}
		assert.True(t, want.Equal(sum), "%s: want %s, got %s", top, want, sum)
	}

	var leafTotal, rowTotal float64
	for _, l := range g.LinksAt(models.LevelSubCategory) {
		leafTotal += l.Value
	}
	for _, r := range in.Rows {
		rowTotal += r.Hours().InexactFloat64()
	}
	assert.InDelta(t, rowTotal, leafTotal, 1e-9)
}

func TestBuild_Idempotent(t *testing.T) {
	assert.Equal(t, Build(exampleInput()), Build(exampleInput()))
}
