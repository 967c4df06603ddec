// Package spreadsheet writes dashboard tables to .xlsx workbooks.
package spreadsheet

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"homehealth-dashboard/internal/report"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const maxColumnWidth = 50

// Sheet is a header row followed by data rows. cells are either strings
// or float64, Formats tells how each column's numbers are displayed.
type Sheet struct {
	Name    string
	Header  []string
	Formats []report.Format
	Rows    [][]any
}

// TableSheet lays out rows the way the table shows them, one column per
// schema column.
func TableSheet[T any](name string, columns []report.Column[T], rows []T) Sheet {
	sheet := Sheet{Name: name}
	for _, c := range columns {
		sheet.Header = append(sheet.Header, c.Label)
		sheet.Formats = append(sheet.Formats, c.Format)
	}
	for _, row := range rows {
		cells := make([]any, len(columns))
		for i, c := range columns {
			if c.Kind == report.KindNumber {
				cells[i] = c.Number(row)
				continue
			}
			cells[i] = c.Text(row)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet
}

// GroupSheet writes one row per group: the key, the row count, the sums,
// the distinct count and the date range.
func GroupSheet[T any](name string, spec report.GroupSpec[T], groups []report.Group[T], distinctLabel string) Sheet {
	sheet := Sheet{Name: name}
	add := func(label string, format report.Format) {
		sheet.Header = append(sheet.Header, label)
		sheet.Formats = append(sheet.Formats, format)
	}
	for _, c := range spec.By {
		add(c.Label, report.FormatPlain)
	}
	add("Rows", report.FormatCount)
	for _, c := range spec.Sum {
		add(c.Label, c.Format)
	}
	if spec.DistinctBy != nil {
		if distinctLabel == "" {
			distinctLabel = "Distinct " + spec.DistinctBy.Label
		}
		add(distinctLabel, report.FormatCount)
	}
	if spec.DateBy != nil {
		add("First "+spec.DateBy.Label, report.FormatPlain)
		add("Last "+spec.DateBy.Label, report.FormatPlain)
	}

	for _, g := range groups {
		var cells []any
		for _, k := range g.Key {
			cells = append(cells, k)
		}
		cells = append(cells, float64(g.Count))
		for _, s := range g.Sums {
			cells = append(cells, s.InexactFloat64())
		}
		if spec.DistinctBy != nil {
			cells = append(cells, float64(g.Distinct))
		}
		if spec.DateBy != nil {
			cells = append(cells, g.First, g.Last)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet
}

// CardsSheet is a two column metric/value sheet.
func CardsSheet(name string, cards []report.Card) Sheet {
	sheet := Sheet{
		Name:    name,
		Header:  []string{"Metric", "Value"},
		Formats: []report.Format{report.FormatPlain, report.FormatPlain},
	}
	for _, c := range cards {
		sheet.Rows = append(sheet.Rows, []any{c.Label, c.Display()})
	}
	return sheet
}

var numFmts = map[report.Format]string{
	report.FormatPlain:    "#,##0.##",
	report.FormatCurrency: `"$"#,##0.00`,
	report.FormatPercent:  `0.0"%"`,
	report.FormatCount:    "#,##0",
}

// sheetName fits a name into excel's limits, 31 characters and none of
// : \ / ? * [ ].
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}
		return r
	}, name)
	if utf8.RuneCountInString(name) > 31 {
		name = string([]rune(name)[:31])
	}
	if name == "" {
		name = "Sheet"
	}
	return name
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int, numStyles map[report.Format]int) error {
	name := sheetName(sheet.Name)
	widths := make([]int, len(sheet.Header))

	for i, h := range sheet.Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		err = f.SetCellValue(name, cell, h)
		if err != nil {
			return err
		}
		widths[i] = utf8.RuneCountInString(h)
	}
	if len(sheet.Header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sheet.Header), 1)
		if err != nil {
			return err
		}
		err = f.SetCellStyle(name, "A1", last, headerStyle)
		if err != nil {
			return err
		}
	}

	for r, row := range sheet.Rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			err = f.SetCellValue(name, cell, value)
			if err != nil {
				return err
			}

			width := utf8.RuneCountInString(fmt.Sprint(value))
			if n, isNumber := value.(float64); isNumber && c < len(sheet.Formats) {
				err = f.SetCellStyle(name, cell, cell, numStyles[sheet.Formats[c]])
				if err != nil {
					return err
				}
				width = len(report.FormatValue(sheet.Formats[c], decimal.NewFromFloat(n)))
			}
			if c < len(widths) && width > widths[c] {
				widths[c] = width
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		err = f.SetColWidth(name, col, col, float64(min(w+2, maxColumnWidth)))
		if err != nil {
			return err
		}
	}
	return nil
}

// Write encodes the sheets as one workbook.
func Write(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("nothing to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E7FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#4F46E5", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	numStyles := make(map[report.Format]int, len(numFmts))
	for format, code := range numFmts {
		code := code
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
		if err != nil {
			return err
		}
		numStyles[format] = style
	}

	for i, sheet := range sheets {
		name := sheetName(sheet.Name)
		if i == 0 {
			err = f.SetSheetName("Sheet1", name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err != nil {
			return err
		}
		err = writeSheet(f, sheet, headerStyle, numStyles)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
	}

	return f.Write(w)
}

// Save writes the workbook to path, replacing any existing file.
func Save(path string, sheets ...Sheet) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = Write(file, sheets...)
	if err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	return file.Close()
}
