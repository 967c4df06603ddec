package commands

import (
	"context"
	"fmt"
	"strings"

	"homehealth-dashboard/cmd/hhdash/globals"
	"homehealth-dashboard/cmd/hhdash/utils"
	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/internal/report"
	"homehealth-dashboard/internal/spreadsheet"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type viewFlags struct {
	search  string
	sort    string
	desc    bool
	descSet bool
	all     bool
	groupBy []string
	xlsx    string
}

// fetchFunc loads the rows of a table plus any cards the endpoint computes
// itself.
type fetchFunc[T any] func(ctx context.Context, client *api.Client) ([]T, []report.Card, error)

func rowsOnly[T any](fetch func(*api.Client, context.Context) ([]T, error)) fetchFunc[T] {
	return func(ctx context.Context, client *api.Client) ([]T, []report.Card, error) {
		rows, err := fetch(client, ctx)
		return rows, nil, err
	}
}

func newViewCmd[T any](schema *report.Schema[T], fetch fetchFunc[T]) *cobra.Command {
	var flags viewFlags
	cmd := &cobra.Command{
		Use:   schema.Name,
		Short: fmt.Sprintf("Show the %s table.", strings.ToLower(schema.Title)),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := globals.Get(ctx).Client
			flags.descSet = cmd.Flags().Changed("desc")

			var page report.Page[[]T]
			var extra []report.Card
			err := page.Load(ctx, func(ctx context.Context) ([]T, error) {
				rows, cards, err := fetch(ctx, client)
				extra = cards
				return rows, err
			})
			if err != nil {
				return err
			}
			rows, _ := page.Data()
			return renderView(report.NewView(schema, rows), flags, extra)
		},
	}

	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "only show rows where one of these contains the text: "+strings.Join(schema.SearchFields, ", "))
	cmd.Flags().StringVar(&flags.sort, "sort", "", "column to sort by, one of: "+strings.Join(schema.ColumnIDs(), ", "))
	cmd.Flags().BoolVar(&flags.desc, "desc", false, "sort in descending order")
	cmd.Flags().StringVar(&flags.xlsx, "xlsx", "", "also write the table to this .xlsx file")
	if schema.RowLimit > 0 {
		cmd.Flags().BoolVar(&flags.all, "all", false, fmt.Sprintf("show every row instead of the first %d", schema.RowLimit))
	}
	if schema.CanGroup() {
		cmd.Flags().StringSliceVarP(&flags.groupBy, "group-by", "g", nil, "group rows by any of: "+strings.Join(schema.DimensionIDs(), ", "))
	}
	return cmd
}

func renderView[T any](v *report.View[T], flags viewFlags, extra []report.Card) error {
	v.Search = flags.search

	state := v.Sort
	if flags.sort != "" {
		state = report.SortState{Column: flags.sort}
	}
	if flags.descSet {
		state.Desc = flags.desc
	}
	err := v.SetSort(state)
	if err != nil {
		return err
	}

	cards := append(v.Cards(), extra...)
	utils.RenderCards(v.Schema.Title, cards)

	if len(flags.groupBy) > 0 {
		groups, spec, err := v.Groups(flags.groupBy)
		if err != nil {
			return err
		}
		renderGroups(groups, spec, v.Schema.DistinctLabel)
		if flags.xlsx == "" {
			return nil
		}
		return saveWorkbook(
			flags.xlsx,
			spreadsheet.GroupSheet("Groups", spec, groups, v.Schema.DistinctLabel),
			spreadsheet.TableSheet(v.Schema.Title, v.Schema.Columns, v.Rows()),
			spreadsheet.CardsSheet("Summary", cards),
		)
	}

	rows := v.Rows()
	window := v.Window()
	if flags.all {
		window = report.Limit(rows, 0)
	}
	if len(rows) == 0 {
		fmt.Println("No matching rows.")
	} else {
		renderTable(v.Schema.Columns, window.Rows)
	}
	if notice := window.Notice(); notice != "" {
		fmt.Printf("%s, use --all to show every row.\n", notice)
	}

	if flags.xlsx == "" {
		return nil
	}
	return saveWorkbook(
		flags.xlsx,
		spreadsheet.TableSheet(v.Schema.Title, v.Schema.Columns, rows),
		spreadsheet.CardsSheet("Summary", cards),
	)
}

func saveWorkbook(path string, sheets ...spreadsheet.Sheet) error {
	err := spreadsheet.Save(path, sheets...)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Saved %s.\n", path)
	return nil
}

func alignments[T any](columns []report.Column[T], offset int) []table.ColumnConfig {
	var configs []table.ColumnConfig
	for i, c := range columns {
		if c.Kind == report.KindNumber {
			configs = append(configs, table.ColumnConfig{Number: offset + i + 1, Align: text.AlignRight})
		}
	}
	return configs
}

func renderTable[T any](columns []report.Column[T], rows []T) {
	t := utils.NewTable()
	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c.Label
	}
	t.AppendHeader(header)
	for _, row := range rows {
		cells := make(table.Row, len(columns))
		for i, c := range columns {
			cells[i] = c.Display(row)
		}
		t.AppendRow(cells)
	}
	t.SetColumnConfigs(alignments(columns, 0))
	t.Render()
}

func renderGroups[T any](groups []report.Group[T], spec report.GroupSpec[T], distinctLabel string) {
	t := utils.NewTable()

	var header table.Row
	for _, c := range spec.By {
		header = append(header, c.Label)
	}
	header = append(header, "Rows")
	for _, c := range spec.Sum {
		header = append(header, c.Label)
	}
	if spec.DistinctBy != nil {
		header = append(header, distinctLabel)
	}
	if spec.DateBy != nil {
		header = append(header, spec.DateBy.Label+" Range")
	}
	t.AppendHeader(header)

	for _, g := range groups {
		var cells table.Row
		for _, k := range g.Key {
			if k == "" {
				k = "(blank)"
			}
			cells = append(cells, k)
		}
		cells = append(cells, g.Count)
		for i, s := range g.Sums {
			cells = append(cells, report.FormatValue(spec.Sum[i].Format, s))
		}
		if spec.DistinctBy != nil {
			cells = append(cells, g.Distinct)
		}
		if spec.DateBy != nil {
			cells = append(cells, dateRange(g.First, g.Last))
		}
		t.AppendRow(cells)
	}

	configs := []table.ColumnConfig{{Number: len(spec.By) + 1, Align: text.AlignRight}}
	configs = append(configs, alignments(spec.Sum, len(spec.By)+1)...)
	t.SetColumnConfigs(configs)
	t.Render()
	fmt.Printf("%d groups\n", len(groups))
}

func dateRange(first, last string) string {
	switch {
	case first == "":
		return ""
	case first == last:
		return first
	}
	return first + " to " + last
}
