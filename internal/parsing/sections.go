package parsing

import "strings"

// BetweenMarkers returns the trimmed text between the first occurrence of the
// start token and the following end token. When the end token is missing, the
// next "<<<" marker terminates the block instead, and when that is missing too
// everything up to end-of-string is returned: upstream generations are sometimes
// cut off mid-block and the partial text is still worth surfacing. The boolean is
// false only when the start token itself is absent.
func BetweenMarkers(raw, start, end string) (string, bool) {
	from := strings.Index(raw, start)
	if from < 0 {
		return "", false
	}
	rest := raw[from+len(start):]
	if to := strings.Index(rest, end); to >= 0 {
		return strings.TrimSpace(rest[:to]), true
	}
	if to := strings.Index(rest, markerOpen); to >= 0 {
		return strings.TrimSpace(rest[:to]), true
	}
	return strings.TrimSpace(rest), true
}

// HeadingSection returns the body of the section introduced by "# name" or
// "## name". The heading must match the trimmed line exactly; fuzzy or
// diacritic-insensitive matching is deliberately not done, callers list spelling
// variants explicitly. Capture stops at the next level-1 heading, or, when the
// section itself started at level 2, at the next level-2 heading as well (a
// level-2 section never swallows a sibling). A section whose body is empty is
// reported as absent; callers cannot tell the two apart.
func HeadingSection(raw, name string) (string, bool) {
	capturing := false
	level2 := false
	var body []string

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if capturing {
			if isHeading1(trimmed) || (level2 && isHeading2(trimmed)) {
				break
			}
			body = append(body, line)
			continue
		}
		switch trimmed {
		case "# " + name:
			capturing = true
		case "## " + name:
			capturing = true
			level2 = true
		}
	}

	if !capturing {
		return "", false
	}
	section := strings.TrimSpace(strings.Join(body, "\n"))
	if section == "" {
		return "", false
	}
	return section, true
}

// firstHeadingSection tries each candidate name in order and returns the first
// section found.
func firstHeadingSection(raw string, names ...string) (string, bool) {
	for _, name := range names {
		if section, ok := HeadingSection(raw, name); ok {
			return section, true
		}
	}
	return "", false
}

func isHeading1(trimmed string) bool {
	return strings.HasPrefix(trimmed, "# ")
}

func isHeading2(trimmed string) bool {
	return strings.HasPrefix(trimmed, "## ")
}
