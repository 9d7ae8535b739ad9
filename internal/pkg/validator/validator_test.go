package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	periods := []string{"day", "week", "month", "year"}

	if !IsInSlice("week", periods) {
		t.Errorf("IsInSlice(%q) = false, want true", "week")
	}
	if IsInSlice("decade", periods) {
		t.Errorf("IsInSlice(%q) = true, want false", "decade")
	}
	if IsInSlice("", periods) {
		t.Errorf("IsInSlice(%q) = true, want false", "")
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-02-23", "2024-12-30", "2021-01-01"}
	invalid := []string{"2025-2-23", "23.02.2025", "2025-02-30", "not-a-date", ""}

	for _, dateStr := range valid {
		if _, ok := IsValidDate(dateStr); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", dateStr)
		}
	}
	for _, dateStr := range invalid {
		if _, ok := IsValidDate(dateStr); ok {
			t.Errorf("IsValidDate(%q) = true, want false", dateStr)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "device_key", Message: "device_key is required"},
		{Field: "timestamp_ms", Message: "timestamp_ms must not be negative"},
	}

	want := "device_key: device_key is required; timestamp_ms: timestamp_ms must not be negative"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
	}

	m := errs.ToMap()
	if len(m) != 1 || m["name"] != "name is required" {
		t.Errorf("ToMap() = %v, want map with single name entry", m)
	}
}
