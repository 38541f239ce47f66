package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/hourflow-go/pkg/hourflow"
)

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
columns:
  name: Name
labels:
  fixed: Fixed budget
default_selection: 10
`))
	require.NoError(t, err)

	assert.Equal(t, "Name", cfg.Columns.Name)
	assert.Equal(t, "組別", cfg.Columns.Group)
	assert.Equal(t, "公務預算工時總計", cfg.Columns.FixedTotal)
	assert.Equal(t, "Fixed budget", cfg.Labels.Fixed)
	assert.Empty(t, cfg.Labels.Project)
	assert.Equal(t, "*", cfg.SelectAll)
	assert.Equal(t, 10, cfg.DefaultSelection)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("colums:\n  name: x\n"))
	assert.Error(t, err)
}

func TestParse_IdenticalAnchors(t *testing.T) {
	_, err := Parse([]byte("columns:\n  fixed_total: Total\n  project_task_total: Total\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestParse_BlankColumn(t *testing.T) {
	_, err := Parse([]byte("columns:\n  group: \"\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns.group is required")
}

func TestParse_DefaultSelection(t *testing.T) {
	for _, doc := range []string{"default_selection: 0\n", "default_selection: -2\n"} {
		_, err := Parse([]byte(doc))
		require.Error(t, err, doc)
		assert.Contains(t, err.Error(), "default_selection must be at least 1")
	}
}

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hourflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("select_all: ALL\naggregate_leaves: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	opts := hourflow.DefaultOptions()
	cfg.Apply(&opts)
	assert.Equal(t, "ALL", opts.SelectAllToken)
	assert.True(t, opts.AggregateLeaves)
	assert.Equal(t, cfg.Columns, opts.Columns)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
