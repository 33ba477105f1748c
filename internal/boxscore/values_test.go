package boxscore

import "testing"

func TestStringValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, ""},
		{"string", "  12 ", "12"},
		{"whole float", float64(7), "7"},
		{"fractional float", 7.5, "7.5"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringValue(tt.in); got != tt.want {
				t.Errorf("stringValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSafeCount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12", "12"},
		{"12.0", "12"},
		{"7.5", "7.5"},
		{"7.25", "7.2"}, // one decimal
		{"", "0"},
		{"abc", "0"},
		{"--", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := safeCount(tt.in); got != tt.want {
				t.Errorf("safeCount(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitShotLine(t *testing.T) {
	tests := []struct {
		in            string
		made, attempt string
	}{
		{"9-15", "9", "15"},
		{"9/15", "9", "15"},
		{"0-0", "0", "0"},
		{"", "0", "0"},
		{"9", "0", "0"},
		{"9-15-2", "0", "0"},
		{"a-b", "0", "0"},
		{"9-", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			made, attempt := splitShotLine(tt.in)
			if made != tt.made || attempt != tt.attempt {
				t.Errorf("splitShotLine(%q) = (%q, %q), want (%q, %q)",
					tt.in, made, attempt, tt.made, tt.attempt)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0:00"},
		{"0", "0:00"},
		{"0:00", "0:00"},
		{"--", "0:00"},
		{"DNP", "0:00"},
		{"N/A", "0:00"},
		{"34:12", "34:12"},
		{"34", "34:00"},
		{"oddball", "oddball"}, // unknown text passes through
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := formatMinutes(tt.in); got != tt.want {
				t.Errorf("formatMinutes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
