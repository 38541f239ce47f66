// Package config loads sheet layout settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/hourflow-go/pkg/hourflow"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/reshape"
	"gopkg.in/yaml.v3"
)

// Config models a hourflow layout file.
//
//	columns:
//	  name: 姓名
//	  group: 組別
//	  fixed_total: 公務預算工時總計
//	  project_task_total: 專案任務工時總計
//	labels:
//	  fixed: Fixed budget
//	  project_task: Project tasks
//	select_all: "*"
//	default_selection: 5
type Config struct {
	Columns          reshape.Columns `yaml:"columns"`
	Labels           reshape.Labels  `yaml:"labels"`
	SelectAll        string          `yaml:"select_all"`
	DefaultSelection int             `yaml:"default_selection"`
	AggregateLeaves  bool            `yaml:"aggregate_leaves"`
}

// Default returns the survey sheet layout.
func Default() Config {
	return Config{
		Columns:          reshape.DefaultColumns(),
		SelectAll:        hourflow.SelectAll,
		DefaultSelection: hourflow.DefaultSelectionSize,
	}
}

// Load reads path and overlays it on Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML and overlays it on Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the layout can drive a run.
func (c Config) Validate() error {
	var errs []error
	cols := map[string]string{
		"columns.name":               c.Columns.Name,
		"columns.group":              c.Columns.Group,
		"columns.fixed_total":        c.Columns.FixedTotal,
		"columns.project_task_total": c.Columns.ProjectTotal,
	}
	for _, key := range []string{"columns.name", "columns.group", "columns.fixed_total", "columns.project_task_total"} {
		if cols[key] == "" {
			errs = append(errs, fmt.Errorf("config: %s is required", key))
		}
	}
	if c.Columns.FixedTotal != "" && c.Columns.FixedTotal == c.Columns.ProjectTotal {
		errs = append(errs, fmt.Errorf("config: fixed_total and project_task_total must differ (both %q)", c.Columns.FixedTotal))
	}
	labels := c.Labels.Resolve(c.Columns)
	if labels.Fixed == labels.Project && labels.Fixed != "" {
		errs = append(errs, fmt.Errorf("config: labels must differ (both %q)", labels.Fixed))
	}
	if c.DefaultSelection < 1 {
		errs = append(errs, fmt.Errorf("config: default_selection must be at least 1 (got %d)", c.DefaultSelection))
	}
	return errors.Join(errs...)
}

// Apply copies the layout settings into opts.
func (c Config) Apply(opts *hourflow.Options) {
	opts.Columns = c.Columns
	opts.Labels = c.Labels
	opts.SelectAllToken = c.SelectAll
	opts.DefaultSelection = c.DefaultSelection
	opts.AggregateLeaves = opts.AggregateLeaves || c.AggregateLeaves
}
