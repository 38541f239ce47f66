package models

// Level identifies the hierarchy tier a node was first seen at.
type Level int

const (
	// LevelTopCategory is the fixed-budget or project-task category.
	LevelTopCategory Level = iota
	// LevelGroup is the individual's group.
	LevelGroup
	// LevelSubCategory is a band column.
	LevelSubCategory
	// LevelIndividual is a person.
	LevelIndividual
)

func (l Level) String() string {
	switch l {
	case LevelTopCategory:
		return "top_category"
	case LevelGroup:
		return "group"
	case LevelSubCategory:
		return "sub_category"
	case LevelIndividual:
		return "individual"
	}
	return "unknown"
}

// Node is a Sankey node. Nodes are unique by Name across all levels.
type Node struct {
	Name string `json:"name"`
	// Level is the first level the name appeared at; not part of the renderer contract.
	Level Level `json:"-"`
}

// Link is a weighted edge between two node names.
type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
	// Level is the tier of the source node.
	Level Level `json:"-"`
}

// Graph is the node/link dataset handed to the renderer.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// LinksAt returns the links whose source sits at level l.
func (g *Graph) LinksAt(l Level) []Link {
	var out []Link
	for _, link := range g.Links {
		if link.Level == l {
			out = append(out, link)
		}
	}
	return out
}
