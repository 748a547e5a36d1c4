package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches the first digit run with an optional decimal fraction.
// An optional "/10" denominator after it is ignored, not divided.
var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ListItems returns the bullet items of a section in document order. Only lines
// whose trimmed form starts with "- " or "* " count as items; non-bullet lines
// are ignored entirely, never merged into adjacent items. An input with no
// bullets yields an empty, non-nil slice.
func ListItems(section string) []string {
	items := []string{}
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if isBullet(trimmed) {
			items = append(items, strings.TrimSpace(trimmed[2:]))
		}
	}
	return items
}

// PlainText returns the non-bullet lines of a section rejoined with newlines and
// trimmed. Used for single-paragraph fields such as the analysis or an applied
// tone name.
func PlainText(section string) string {
	var kept []string
	for _, line := range strings.Split(section, "\n") {
		if !isBullet(strings.TrimSpace(line)) {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// Number extracts the first number of a section. Signs are not part of the
// pattern, so "-5" yields 5. When clamp is true the value is forced into
// [0, 10]; scores read from heading sections are always clamped, scores carried
// in embedded legacy JSON never are, so historical responses round-trip exactly.
func Number(section string, clamp bool) (float64, bool) {
	match := numberPattern.FindString(section)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	if clamp {
		value = math.Min(10, math.Max(0, value))
	}
	return value, true
}

func isBullet(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ")
}
