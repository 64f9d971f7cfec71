package jsonutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexibleDateFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"calendar date", `"2026-03-14"`, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2026-03-14T15:04:05Z"`, time.Date(2026, 3, 14, 15, 4, 5, 0, time.UTC)},
		{"empty string", `""`, time.Time{}},
		{"null", `null`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d FlexibleDate
			if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if !d.Time.Equal(tt.want) {
				t.Errorf("got %v, want %v", d.Time, tt.want)
			}
		})
	}
}

func TestFlexibleDateRejectsGarbage(t *testing.T) {
	var d FlexibleDate
	if err := json.Unmarshal([]byte(`"next tuesday"`), &d); err == nil {
		t.Error("expected error for unparseable date")
	}
	if err := json.Unmarshal([]byte(`42`), &d); err == nil {
		t.Error("expected error for non-string date")
	}
}

func TestFlexibleAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `1250.50`, 1250.50},
		{"quoted number", `"1250.50"`, 1250.50},
		{"quoted with spaces", `" 99 "`, 99},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a FlexibleAmount
			if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if float64(a) != tt.want {
				t.Errorf("got %v, want %v", float64(a), tt.want)
			}
		})
	}
}

func TestFlexibleAmountRejectsGarbage(t *testing.T) {
	var a FlexibleAmount
	if err := json.Unmarshal([]byte(`"a lot"`), &a); err == nil {
		t.Error("expected error for non-numeric string")
	}
}
