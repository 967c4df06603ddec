package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	m "homehealth-dashboard/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func claim(patient, physician string, start string, amount, paid float64) m.ExplorerClaim {
	return m.ExplorerClaim{
		PatientName:      m.Text(patient),
		PrimaryPhysician: m.Text(physician),
		PrimaryInsurance: "MEDICARE",
		ClaimStart:       m.Date(start),
		ClaimAmount:      m.Number(amount),
		PaidAmount:       m.Number(paid),
	}
}

func amounts(rows []m.ExplorerClaim) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.ClaimAmount.Float()
	}
	return out
}

func patients(rows []m.ExplorerClaim) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.PatientName.String()
	}
	return out
}

func TestSortClaimAmount(t *testing.T) {
	rows := []m.ExplorerClaim{
		claim("A", "X", "2024-01-02", 100, 0),
		claim("B", "X", "2024-01-03", 200, 0),
		claim("C", "Y", "2024-02-01", 50, 0),
	}
	view := NewView(Claims, rows)
	require.NoError(t, view.SetSort(SortState{Column: "claim_amount", Desc: true}))
	require.Equal(t, []float64{200, 100, 50}, amounts(view.Rows()))

	cards := view.Cards()
	require.Equal(t, "Total Billed", cards[1].Label)
	require.True(t, decimal.NewFromInt(350).Equal(cards[1].Value), cards[1].Value.String())
	require.Equal(t, "$350.00", cards[1].Display())
}

func TestToggleTwiceRestoresOrder(t *testing.T) {
	rows := []m.ExplorerClaim{
		claim("delta", "X", "2024-03-01", 10, 0),
		claim("Alpha", "Y", "2024-01-01", 10, 0),
		claim("charlie", "X", "", 30, 0),
		claim("bravo", "Z", "2024-02-01", 20, 0),
		claim("alpha", "Y", "2024-01-05", 5, 0),
	}

	for _, col := range Claims.Columns {
		t.Run(col.ID, func(t *testing.T) {
			view := NewView(Claims, rows)
			require.NoError(t, view.Toggle(col.ID))
			first := view.Rows()

			require.NoError(t, view.Toggle(col.ID))
			require.True(t, view.Sort.Desc)
			require.NoError(t, view.Toggle(col.ID))
			require.False(t, view.Sort.Desc)

			if diff := cmp.Diff(first, view.Rows()); diff != "" {
				t.Fatalf("order changed after toggling twice (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortState(t *testing.T) {
	s := SortState{}
	s = s.Toggle("a")
	require.Equal(t, SortState{Column: "a"}, s)
	s = s.Toggle("a")
	require.Equal(t, SortState{Column: "a", Desc: true}, s)
	s = s.Toggle("b")
	require.Equal(t, SortState{Column: "b"}, s)
}

func TestSortIsStableAndCaseInsensitive(t *testing.T) {
	rows := []m.ExplorerClaim{
		claim("b", "1", "", 0, 0),
		claim("A", "2", "", 0, 0),
		claim("a", "3", "", 0, 0),
		claim("B", "4", "", 0, 0),
	}
	col, ok := Claims.Column("patient")
	require.True(t, ok)

	sorted := Sort(rows, col, false)
	require.Equal(t, []string{"A", "a", "b", "B"}, patients(sorted))

	sorted = Sort(rows, col, true)
	require.Equal(t, []string{"b", "B", "A", "a"}, patients(sorted))

	// the input is left alone
	require.Equal(t, []string{"b", "A", "a", "B"}, patients(rows))
}

func TestFilter(t *testing.T) {
	rows := []m.ExplorerClaim{
		claim("DOE, JANE", "Dr. Smith", "", 1, 0),
		claim("ROE, RICHARD", "Dr. Jones", "", 2, 0),
		claim("SMITHERS, W", "Dr. Adams", "", 3, 0),
		{PatientName: "X", ClaimCode: "12345"},
	}
	fields := Claims.Searchable()

	cases := []struct {
		term     string
		expected []string
	}{
		{term: "", expected: []string{"DOE, JANE", "ROE, RICHARD", "SMITHERS, W", "X"}},
		{term: "smith", expected: []string{"DOE, JANE", "SMITHERS, W"}},
		{term: "  ROE ", expected: []string{"ROE, RICHARD"}},
		{term: "234", expected: []string{"X"}},
		{term: "nobody", expected: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.term, func(t *testing.T) {
			got := Filter(rows, tc.term, fields)
			require.Equal(t, tc.expected, patients(got))

			// every kept row matches and every dropped row doesn't
			kept := map[string]bool{}
			for _, p := range patients(got) {
				kept[p] = true
			}
			for _, row := range rows {
				matches := len(Filter([]m.ExplorerClaim{row}, tc.term, fields)) == 1
				require.Equal(t, matches, kept[row.PatientName.String()])
			}
		})
	}
}

func TestSearchDoesNotChangeCards(t *testing.T) {
	rows := []m.ExplorerClaim{
		claim("A", "X", "", 100, 50),
		claim("B", "X", "", 300, 0),
	}
	view := NewView(Claims, rows)
	before := view.Cards()
	view.Search = "B"
	require.Len(t, view.Rows(), 1)
	require.Equal(t, before, view.Cards())
	require.Equal(t, "12.5%", before[4].Display())
}

func TestLimit(t *testing.T) {
	rows := make([]m.ExplorerClaim, 250)
	for i := range rows {
		rows[i] = claim(fmt.Sprintf("P%03d", i), "X", "", float64(i), 0)
	}

	window := NewView(Claims, rows).Window()
	require.Len(t, window.Rows, 100)
	require.True(t, window.Truncated())
	require.Equal(t, "Showing 100 of 250", window.Notice())

	small := Limit(rows[:3], 100)
	require.False(t, small.Truncated())
	require.Empty(t, small.Notice())

	all := Limit(rows, 0)
	require.Equal(t, 250, all.Shown)
}

func TestGroupBy(t *testing.T) {
	rows := []m.ExplorerClaim{
		claim("A", "Dr. X", "2024-01-10", 100, 80),
		claim("B", "Dr. X", "2024-01-02", 200, 150),
		claim("A", "Dr. Y", "2024-02-01", 50, 50),
		claim("A", "Dr. X", "2024-01-20", 25.5, 0),
		claim("C", "", "", 10, 0),
	}
	view := NewView(Claims, rows)

	groups, spec, err := view.Groups([]string{"physician", "month"})
	require.NoError(t, err)
	require.Len(t, spec.Sum, 4)

	keys := make([][]string, len(groups))
	total := 0
	for i, g := range groups {
		keys[i] = g.Key
		total += g.Count

		for j, col := range spec.Sum {
			sum := decimal.Zero
			for _, row := range g.Rows {
				sum = sum.Add(col.DecimalOf(row))
			}
			require.True(t, sum.Equal(g.Sums[j]))
		}
	}
	require.Equal(t, len(rows), total)
	require.Equal(t, [][]string{
		{"", ""},
		{"Dr. X", "2024-01"},
		{"Dr. Y", "2024-02"},
	}, keys)

	jan := groups[1]
	require.Equal(t, 3, jan.Count)
	require.Equal(t, 2, jan.Distinct)
	require.Equal(t, "2024-01-02", jan.First)
	require.Equal(t, "2024-01-20", jan.Last)
	require.True(t, decimal.RequireFromString("325.5").Equal(jan.Sums[0]))
	require.True(t, decimal.NewFromInt(230).Equal(jan.Sums[1]))
	require.Equal(t, "Dr. X / 2024-01", jan.Label())
	require.Equal(t, "(blank) / (blank)", groups[0].Label())

	view.Search = "dr. y"
	groups, _, err = view.Groups([]string{"patient"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, 1, groups[0].Count)

	_, _, err = view.Groups([]string{"nope"})
	require.Error(t, err)
	_, _, err = NewView(Insurance, nil).Groups([]string{"insurance"})
	require.Error(t, err)
}

func TestSetSortRejectsUnknownColumn(t *testing.T) {
	view := NewView(Revenue, nil)
	require.Error(t, view.SetSort(SortState{Column: "nope"}))
	require.NoError(t, view.SetSort(SortState{Column: "month"}))
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		format   Format
		value    string
		expected string
	}{
		{FormatCurrency, "1234.5", "$1,234.50"},
		{FormatCurrency, "-1234567.891", "-$1,234,567.89"},
		{FormatCurrency, "0", "$0.00"},
		{FormatPercent, "87.456", "87.5%"},
		{FormatCount, "1234", "1,234"},
		{FormatCount, "12.6", "13"},
		{FormatPlain, "999.999", "1,000"},
		{FormatPlain, "-12.5", "-12.5"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.expected, FormatValue(tc.format, decimal.RequireFromString(tc.value)), tc.value)
	}
}

func TestRate(t *testing.T) {
	require.True(t, Rate(decimal.NewFromInt(1), decimal.Zero).IsZero())
	require.Equal(t, "25", Rate(decimal.NewFromInt(1), decimal.NewFromInt(4)).String())
}

func TestCardsOnEmptyRows(t *testing.T) {
	for _, cards := range [][]Card{
		Revenue.CardsFor(nil),
		ServiceCosts.CardsFor(nil),
		PatientProfitability.CardsFor(nil),
		Providers.CardsFor(nil),
		Insurance.CardsFor(nil),
		Codes.CardsFor(nil),
		ServiceSummary.CardsFor(nil),
		Physicians.CardsFor(nil),
		Unmatched.CardsFor(nil),
		Overhead.CardsFor(nil),
		Claims.CardsFor(nil),
		Costs.CardsFor(nil),
		Monthly.CardsFor(nil),
	} {
		require.NotEmpty(t, cards)
		for _, c := range cards {
			require.True(t, c.Value.IsZero(), c.Label)
		}
	}
}

func TestPage(t *testing.T) {
	var page Page[[]int]
	require.Equal(t, StatusIdle, page.Status())

	err := page.Load(context.Background(), func(ctx context.Context) ([]int, error) {
		require.Equal(t, StatusLoading, page.Status())
		return []int{1, 2}, nil
	})
	require.NoError(t, err)
	data, ok := page.Data()
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, data)

	boom := errors.New("boom")
	err = page.Load(context.Background(), func(ctx context.Context) ([]int, error) {
		return []int{3}, boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, StatusFailed, page.Status())
	data, ok = page.Data()
	require.False(t, ok)
	require.Nil(t, data)
	require.ErrorIs(t, page.Err(), boom)
}

func TestAll(t *testing.T) {
	var a, b Page[int]
	boom := errors.New("boom")
	err := All(
		context.Background(),
		func(ctx context.Context) error {
			return a.Load(ctx, func(ctx context.Context) (int, error) { return 1, nil })
		},
		func(ctx context.Context) error {
			return b.Load(ctx, func(ctx context.Context) (int, error) { return 0, boom })
		},
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, StatusLoaded, a.Status())
	require.Equal(t, StatusFailed, b.Status())

	require.NoError(t, All(context.Background()))
}

func TestOverallCards(t *testing.T) {
	cards := OverallCards(m.ProfitabilityOverall{
		TotalRevenue: 1000,
		GrossProfit:  250.5,
		ProfitMargin: 25.05,
		TotalClaims:  12,
	})
	byLabel := map[string]string{}
	for _, c := range cards {
		byLabel[c.Label] = c.Display()
	}
	require.Equal(t, "$1,000.00", byLabel["Total Revenue"])
	require.Equal(t, "$250.50", byLabel["Gross Profit"])
	require.Equal(t, "25.1%", byLabel["Profit Margin"])
	require.Equal(t, "12", byLabel["Claims"])
}

func TestNonFiniteCellsRender(t *testing.T) {
	var rows []m.ExplorerClaim
	err := json.Unmarshal([]byte(`[
		{"Patient Name": "A", "Claim Amount": "NaN", "Paid Amount": "inf"},
		{"Patient Name": "B", "Claim Amount": 100, "Paid Amount": "-Infinity"}
	]`), &rows)
	require.NoError(t, err)

	view := NewView(Claims, rows)
	require.NotPanics(t, func() {
		view.Cards()
		for _, row := range view.Rows() {
			for _, col := range Claims.Columns {
				col.Display(row)
			}
		}
		_, _, err := view.Groups([]string{"patient"})
		require.NoError(t, err)
	})
	require.Equal(t, []float64{0, 100}, amounts(rows))
}

func TestClaimsOfPhysician(t *testing.T) {
	physicians := []string{"JONES, AMY", "SMITH, BOB"}

	name, err := ResolvePhysician(" smith, bob ", physicians)
	require.NoError(t, err)
	require.Equal(t, "SMITH, BOB", name)

	_, err = ResolvePhysician("DOE", physicians)
	require.ErrorContains(t, err, "JONES, AMY, SMITH, BOB")

	rows := []m.ExplorerClaim{
		claim("A", "SMITH, BOB", "2024-01-01", 100, 0),
		claim("B", "JONES, AMY", "2024-01-02", 200, 0),
		claim("C", "SMITH, BOB", "2024-01-03", 50, 0),
	}
	require.Equal(t, []string{"A", "C"}, patients(ClaimsOfPhysician(rows, name)))
	require.Empty(t, ClaimsOfPhysician(rows, "DOE"))
}
