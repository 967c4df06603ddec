package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// the backend builds its tables with pandas and fills blanks with "" or 0,
// so a numeric column can hold numbers, numeric strings, "" or null and an
// identifier column (ex. claim codes) can hold numbers. the scalar types
// below accept all of those.

// Number is a numeric cell, blanks decode to 0.
type Number float64

func (n Number) Float() float64 {
	return float64(n)
}

// NaN and infinities cannot be summed as decimals, they decode as blanks.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func parseNumberString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("$", "", ",", "", "%", "").Replace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(f) {
		return 0, false
	}
	if negative {
		f = -f
	}
	return f, true
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		f, _ := parseNumberString(s)
		*n = Number(f)
		return nil
	case 't', 'f':
		var b bool
		err := json.Unmarshal(data, &b)
		if err != nil {
			return err
		}
		*n = 0
		if b {
			*n = 1
		}
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}
	if !finite(f) {
		f = 0
	}
	*n = Number(f)
	return nil
}

// Text is a string cell that tolerates numbers, booleans and null.
type Text string

func (t Text) String() string {
	return string(t)
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
		return nil
	case 't', 'f':
		*t = Text(data)
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid text cell %s: %w", data, err)
	}
	*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// Date is a "YYYY-MM-DD" cell. missing dates (null, "", "NaT", or the 0
// that pandas leaves behind) decode to "".
type Date string

func (d Date) String() string {
	return string(d)
}

func (d Date) IsZero() bool {
	return d == ""
}

// Month returns the "YYYY-MM" prefix of the date, or "" if it has none.
func (d Date) Month() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var t Text
	err := t.UnmarshalJSON(data)
	if err != nil {
		return err
	}
	s := string(t)
	switch s {
	case "", "0", "NaT", "nan", "None":
		*d = ""
		return nil
	}
	// timestamps come through as "2024-01-02T00:00:00" or "2024-01-02 00:00:00"
	if len(s) > 10 && (s[10] == 'T' || s[10] == ' ') {
		s = s[:10]
	}
	*d = Date(s)
	return nil
}
