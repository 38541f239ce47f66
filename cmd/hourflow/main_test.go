package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func surveyRows() [][]interface{} {
	return [][]interface{}{
		{"組別", "姓名", "公務預算工時總計", "A", "B", "專案任務工時總計", "C"},
		{"G1", "Alice", 5, 5, 0, 3, 3},
		{"G1", "Bob", 2, 0, 2, 0, 0},
	}
}

func writeSurvey(t *testing.T) string {
	t.Helper()
	return writeRows(t, surveyRows())
}

func writeRows(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	path := filepath.Join(t.TempDir(), "survey.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type graphJSON struct {
	Nodes []struct {
		Name string `json:"name"`
	} `json:"nodes"`
	Links []struct {
		Source string  `json:"source"`
		Target string  `json:"target"`
		Value  float64 `json:"value"`
	} `json:"links"`
}

func TestBuildCommand_JSON(t *testing.T) {
	out, err := run(t, "build", writeSurvey(t), "--all")
	require.NoError(t, err)

	var g graphJSON
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	assert.Len(t, g.Nodes, 8)
	assert.Len(t, g.Links, 8)
}

func TestBuildCommand_SelectAndOutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "graph.json")
	out, err := run(t, "build", writeSurvey(t), "--select", "Bob", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var g graphJSON
	require.NoError(t, json.Unmarshal(data, &g))
	require.Len(t, g.Links, 3)
	assert.Equal(t, "B", g.Links[2].Source)
	assert.Equal(t, "Bob", g.Links[2].Target)
}

func TestBuildCommand_SelectNameWithComma(t *testing.T) {
	rows := append(surveyRows(), []interface{}{"G2", "Doe, Jane", 4, 4, 0, 0, 0})
	out, err := run(t, "build", writeRows(t, rows), "--select", "Doe, Jane", "--select", "Bob")
	require.NoError(t, err)

	var g graphJSON
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	var targets []string
	for _, l := range g.Links {
		if l.Source == "A" || l.Source == "B" {
			targets = append(targets, l.Target)
		}
	}
	assert.ElementsMatch(t, []string{"Doe, Jane", "Bob"}, targets)
}

func TestBuildCommand_None(t *testing.T) {
	out, err := run(t, "build", writeSurvey(t), "--none")
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes": [], "links": []}`, out)
}

func TestBuildCommand_XLSX(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "graph.xlsx")
	_, err := run(t, "build", writeSurvey(t), "--all", "--format", "xlsx", "-o", dest)
	require.NoError(t, err)

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"nodes", "links"}, f.GetSheetList())
}

func TestBuildCommand_ConfigLabels(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "hourflow.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("labels:\n  fixed: Fixed\n  project_task: Project\n"), 0o644))

	out, err := run(t, "build", writeSurvey(t), "--all", "--config", cfgPath)
	require.NoError(t, err)

	var g graphJSON
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	assert.Equal(t, "Fixed", g.Links[0].Source)
	assert.Equal(t, "Project", g.Links[1].Source)
}

func TestBuildCommand_Errors(t *testing.T) {
	_, err := run(t, "build", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorContains(t, err, "file not found")

	_, err = run(t, "build", writeSurvey(t), "--format", "csv")
	assert.ErrorContains(t, err, "invalid format")

	_, err = run(t, "build", writeSurvey(t), "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log-level")

	_, err = run(t, "build", writeSurvey(t), "--all", "--none")
	assert.Error(t, err)
}

func TestNamesCommand(t *testing.T) {
	out, err := run(t, "names", writeSurvey(t))
	require.NoError(t, err)
	assert.JSONEq(t, `["Alice", "Bob"]`, out)
}
