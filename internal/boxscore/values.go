package boxscore

import (
	"fmt"
	"strconv"
	"strings"
)

// minuteSentinels are raw MIN values that mean "did not play".
var minuteSentinels = map[string]bool{
	"":     true,
	"0":    true,
	"0:00": true,
	"--":   true,
	"DNP":  true,
	"N/A":  true,
}

// stringValue renders a raw JSON value (string, number, or nil) as a trimmed
// string. JSON numbers arrive as float64; whole values drop the ".0".
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// safeCount coerces a raw count stat into a display string. Whole numbers
// render as integers, fractional values round to one decimal, anything
// unparseable becomes "0". Never fails.
func safeCount(s string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "0"
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// countValue returns the numeric value behind a count stat, 0 on any parse
// failure.
func countValue(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// splitShotLine parses a "made-attempted" shot stat. The separator is
// normalized ("9/15" and "9-15" both occur upstream); anything that does not
// split into exactly two numeric parts collapses to 0-0.
func splitShotLine(s string) (made, attempted string) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
	parts := strings.Split(s, "-")
	if len(parts) != 2 || !looksNumeric(parts[0]) || !looksNumeric(parts[1]) {
		return "0", "0"
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

func looksNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// formatMinutes normalizes a raw MIN value to "M:SS". Values already carrying
// a colon pass through, bare numbers gain ":00", DNP sentinels become "0:00",
// and anything else passes through untouched.
func formatMinutes(raw string) string {
	s := strings.TrimSpace(raw)
	if minuteSentinels[s] {
		return "0:00"
	}
	if strings.Contains(s, ":") {
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fmt.Sprintf("%d:00", int(f))
	}
	return s
}
