// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sexpr

import "regexp"

// datePattern matches a calendar-date string: four digits, hyphen, two
// digits, hyphen, two digits. No other separators or component widths are
// accepted. Captured components are emitted as written, so a leading zero
// in the month or day survives into the make-date form.
var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// splitDate returns the year, month, and day components of s verbatim, and
// whether s is date-shaped at all.
func splitDate(s string) (year, month, day string, ok bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}

// isPartNumber reports whether s looks like a part number or similar
// identifier: ASCII letters and digits only, at least one of each, no
// separators. Such strings render as quoted symbols ('A4786) rather than
// string literals.
//
// The part-number and date patterns cannot both match one string: a date
// requires hyphens, which this pattern rejects. The dispatch order between
// them therefore never decides an output byte.
func isPartNumber(s string) bool {
	if s == "" {
		return false
	}
	var hasLetter, hasDigit bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}
