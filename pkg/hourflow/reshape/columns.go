// Package reshape validates hour tables and unpivots their hour bands into long form.
package reshape

// Columns names the identity and anchor columns of an hour table.
type Columns struct {
	Name         string `yaml:"name"`
	Group        string `yaml:"group"`
	FixedTotal   string `yaml:"fixed_total"`
	ProjectTotal string `yaml:"project_task_total"`
}

// DefaultColumns returns the column names of the personnel hours survey sheet.
func DefaultColumns() Columns {
	return Columns{
		Name:         "姓名",
		Group:        "組別",
		FixedTotal:   "公務預算工時總計",
		ProjectTotal: "專案任務工時總計",
	}
}

// Required lists the columns that must be present for a run to proceed.
func (c Columns) Required() []string {
	return []string{c.Name, c.Group, c.FixedTotal, c.ProjectTotal}
}

// Labels are the top-category names attached to each band's rows.
type Labels struct {
	Fixed   string `yaml:"fixed"`
	Project string `yaml:"project_task"`
}

// Resolve fills empty labels with the anchor column names.
func (l Labels) Resolve(c Columns) Labels {
	if l.Fixed == "" {
		l.Fixed = c.FixedTotal
	}
	if l.Project == "" {
		l.Project = c.ProjectTotal
	}
	return l
}

// Ungrouped replaces a blank group cell so every link endpoint has a node.
const Ungrouped = "(no group)"
