package reshape

import "github.com/ukaji3/hourflow-go/pkg/hourflow/models"

// Bands holds the column indexes of the two hour bands, in table order.
type Bands struct {
	// Fixed spans the columns strictly between the two anchors.
	Fixed []int
	// Project spans the columns after the project-task anchor through the last column.
	Project []int
}

// Partition splits the table columns into bands by anchor position.
// Membership is positional only; column names play no part.
func Partition(t models.Table, fixedAnchor, projectAnchor string) (Bands, error) {
	fixedIdx := t.Index(fixedAnchor)
	projectIdx := t.Index(projectAnchor)
	if fixedIdx < 0 || projectIdx < 0 {
		return Bands{}, Validate(t, []string{fixedAnchor, projectAnchor})
	}
	if projectIdx <= fixedIdx {
		return Bands{}, &AnchorError{
			Fixed:        fixedAnchor,
			Project:      projectAnchor,
			FixedIndex:   fixedIdx,
			ProjectIndex: projectIdx,
		}
	}

	var bands Bands
	for i := fixedIdx + 1; i < projectIdx; i++ {
		bands.Fixed = append(bands.Fixed, i)
	}
	for i := projectIdx + 1; i < len(t.Columns); i++ {
		bands.Project = append(bands.Project, i)
	}
	return bands, nil
}
