// Package jsonutil contains forgiving JSON types for API payloads coming from
// the back-office UI and spreadsheet imports.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateFormats are the accepted date encodings, most specific first.
var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// FlexibleDate unmarshals a date that may arrive as an RFC 3339 timestamp, a
// bare calendar date ("2026-03-14"), an empty string or null. Empty and null
// decode to the zero time.
type FlexibleDate struct {
	time.Time
}

func (d *FlexibleDate) UnmarshalJSON(raw []byte) error {
	s := string(raw)
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if str == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, str); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", str)
}

func (d FlexibleDate) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Time)
}

// FlexibleAmount unmarshals a monetary amount that may arrive as a JSON
// number or as a numeric string (spreadsheet exports quote everything).
// Empty string and null decode to zero.
type FlexibleAmount float64

func (a *FlexibleAmount) UnmarshalJSON(raw []byte) error {
	s := strings.TrimSpace(string(raw))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		*a = FlexibleAmount(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return fmt.Errorf("amount must be a number or numeric string")
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return fmt.Errorf("unrecognized amount %q", str)
	}
	*a = FlexibleAmount(num)
	return nil
}
