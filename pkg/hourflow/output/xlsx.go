package output

import (
	"io"

	"github.com/ukaji3/hourflow-go/pkg/hourflow/models"
	"github.com/xuri/excelize/v2"
)

const (
	NodesSheet = "nodes"
	LinksSheet = "links"
)

// ToXLSX builds a workbook with a nodes sheet and a links sheet.
// The caller owns the returned file and must Close it.
func ToXLSX(g *models.Graph) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), NodesSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(LinksSheet); err != nil {
		f.Close()
		return nil, err
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeRows(f, NodesSheet, header, []interface{}{"name", "level"}, len(g.Nodes), func(i int) []interface{} {
		return []interface{}{g.Nodes[i].Name, g.Nodes[i].Level.String()}
	}); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRows(f, LinksSheet, header, []interface{}{"source", "target", "value"}, len(g.Links), func(i int) []interface{} {
		return []interface{}{g.Links[i].Source, g.Links[i].Target, g.Links[i].Value}
	}); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// WriteXLSX writes the graph workbook to w.
func WriteXLSX(g *models.Graph, w io.Writer) error {
	f, err := ToXLSX(g)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, headerStyle int, header []interface{}, n int, row func(int) []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(i)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
