package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	testCases := []struct {
		input  string
		expect Number
	}{
		{input: `12.5`, expect: 12.5},
		{input: `0`, expect: 0},
		{input: `null`, expect: 0},
		{input: `""`, expect: 0},
		{input: `"1,250.75"`, expect: 1250.75},
		{input: `"$300"`, expect: 300},
		{input: `"(40.5)"`, expect: -40.5},
		{input: `"45.2%"`, expect: 45.2},
		{input: `"n/a"`, expect: 0},
		{input: `true`, expect: 1},
		{input: `"NaN"`, expect: 0},
		{input: `"inf"`, expect: 0},
		{input: `"-Infinity"`, expect: 0},
		{input: `"(inf)"`, expect: 0},
	}

	for _, test := range testCases {
		var n Number
		err := json.Unmarshal([]byte(test.input), &n)
		require.NoError(t, err, test.input)
		require.Equal(t, test.expect, n, test.input)
	}

	var n Number
	require.Error(t, json.Unmarshal([]byte(`[1]`), &n))
}

func TestText(t *testing.T) {
	testCases := []struct {
		input  string
		expect Text
	}{
		{input: `"Jane Doe "`, expect: "Jane Doe"},
		{input: `12345`, expect: "12345"},
		{input: `12345.0`, expect: "12345"},
		{input: `0.5`, expect: "0.5"},
		{input: `null`, expect: ""},
		{input: `false`, expect: "false"},
	}

	for _, test := range testCases {
		var text Text
		err := json.Unmarshal([]byte(test.input), &text)
		require.NoError(t, err, test.input)
		require.Equal(t, test.expect, text, test.input)
	}
}

func TestDate(t *testing.T) {
	testCases := []struct {
		input  string
		expect Date
		month  string
	}{
		{input: `"2024-03-15"`, expect: "2024-03-15", month: "2024-03"},
		{input: `"2024-03-15T00:00:00"`, expect: "2024-03-15", month: "2024-03"},
		{input: `"2024-03-15 08:30:00"`, expect: "2024-03-15", month: "2024-03"},
		{input: `0`, expect: "", month: ""},
		{input: `""`, expect: "", month: ""},
		{input: `"NaT"`, expect: "", month: ""},
		{input: `null`, expect: "", month: ""},
	}

	for _, test := range testCases {
		var d Date
		err := json.Unmarshal([]byte(test.input), &d)
		require.NoError(t, err, test.input)
		require.Equal(t, test.expect, d, test.input)
		require.Equal(t, test.month, d.Month(), test.input)
	}
}

func TestRowDecoding(t *testing.T) {
	body := `[
		{"Patient Name": "Doe, Jane", "Claim Code": 1001, "Cycle Start": "2024-01-01",
		 "Cycle End": "2024-02-29", "Insurance": "MCR", "Total Amount Billed": 2500.5,
		 "Expected Payment": "2400", "Actual Payment Received": "", "Remaining Balance": 2500.5,
		 "Net Adjustment": 0, "Payment Requested At": 0, "Payment Received At": "",
		 "Days to Payment": 0}
	]`

	var rows []RevenueByClaim
	err := json.Unmarshal([]byte(body), &rows)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.Equal(t, Text("Doe, Jane"), row.PatientName)
	require.Equal(t, Text("1001"), row.ClaimCode)
	require.Equal(t, Number(2500.5), row.TotalBilled)
	require.Equal(t, Number(2400), row.ExpectedPayment)
	require.Equal(t, Number(0), row.PaymentReceived)
	require.True(t, row.PaymentRequestedAt.IsZero())
}
