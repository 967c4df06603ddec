package spreadsheet

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	m "homehealth-dashboard/internal/models"
	"homehealth-dashboard/internal/report"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteTableAndGroups(t *testing.T) {
	rows := []m.ExplorerCost{
		{PatientName: "DOE, JANE", Employee: "NURSE A", Date: "2024-01-03", TotalAmount: 100},
		{PatientName: "DOE, JANE", Employee: "NURSE B", Date: "2024-01-09", TotalAmount: 25.5},
		{PatientName: "ROE, RICHARD", Employee: "NURSE A", Date: "2024-02-01", TotalAmount: 40},
	}
	view := report.NewView(report.Costs, rows)
	groups, spec, err := view.Groups([]string{"employee"})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Write(
		&buf,
		TableSheet("Employee Costs", report.Costs.Columns, view.Rows()),
		GroupSheet("By Employee", spec, groups, report.Costs.DistinctLabel),
		CardsSheet("Summary", view.Cards()),
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Employee Costs", "By Employee", "Summary"}, f.GetSheetList())

	table, err := f.GetRows("Employee Costs", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, table, 4)
	require.Equal(t, []string{"Patient", "Employee", "Date", "Paid", "Amount"}, table[0])
	require.Equal(t, "DOE, JANE", table[1][0])
	require.Equal(t, "25.5", table[2][4])

	grouped, err := f.GetRows("By Employee", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Equal(t, []string{"Employee", "Rows", "Amount", "Patients", "First Date", "Last Date"}, grouped[0])
	require.Equal(t, []string{"NURSE A", "2", "140", "2", "2024-01-03", "2024-02-01"}, grouped[1])
	require.Equal(t, []string{"NURSE B", "1", "25.5", "1", "2024-01-09", "2024-01-09"}, grouped[2])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Equal(t, []string{"Total Amount", "$165.50"}, summary[2])
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	err := Save(path, CardsSheet("a/b", []report.Card{{Label: "x"}}))
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, []string{"a-b"}, f.GetSheetList())

	require.Error(t, Save(filepath.Join(t.TempDir(), "empty.xlsx")))
}

func TestSheetName(t *testing.T) {
	require.Equal(t, "Sheet", sheetName(""))
	require.Equal(t, "a-b-c", sheetName("a:b?c"))
	require.Equal(t, strings.Repeat("x", 31), sheetName(strings.Repeat("x", 40)))
}
