package reshape

import "github.com/ukaji3/hourflow-go/pkg/hourflow/models"

// Validate checks that every required column is present in the table header.
// It returns a *SchemaError naming each missing column.
func Validate(t models.Table, required []string) error {
	var missing []string
	for _, col := range required {
		if t.Index(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
