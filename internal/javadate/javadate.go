// Package javadate translates the Java-SimpleDateFormat-compatible pattern
// dialect used by Pact's Date/Time/Timestamp matchers and Date/Time/DateTime
// generators into a Go reference-time layout string. Shared by
// pkg/pact/matchers and pkg/pact/generators so the two packages agree on
// exactly one interpretation of a format string.
package javadate

import "strings"

// ToGoLayout translates the documented subset of Java SimpleDateFormat
// pattern letters into a Go reference-time layout. Supported letters: y, M,
// d, H, h, m, s, S, Z, a, E, plus 'literal' quoting.
func ToGoLayout(pattern string) string {
	var sb strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		c := runes[i]
		switch {
		case c == '\'':
			i++
			for i < len(runes) && runes[i] != '\'' {
				sb.WriteRune(runes[i])
				i++
			}
			i++ // skip closing quote
		case c == 'y':
			n := runLength(runes, i, 'y')
			if n >= 4 {
				sb.WriteString("2006")
			} else {
				sb.WriteString("06")
			}
			i += n
		case c == 'M':
			n := runLength(runes, i, 'M')
			switch {
			case n >= 4:
				sb.WriteString("January")
			case n == 3:
				sb.WriteString("Jan")
			default:
				sb.WriteString("01")
			}
			i += n
		case c == 'd':
			i += runLength(runes, i, 'd')
			sb.WriteString("02")
		case c == 'H':
			i += runLength(runes, i, 'H')
			sb.WriteString("15")
		case c == 'h':
			i += runLength(runes, i, 'h')
			sb.WriteString("3")
		case c == 'm':
			i += runLength(runes, i, 'm')
			sb.WriteString("04")
		case c == 's':
			i += runLength(runes, i, 's')
			sb.WriteString("05")
		case c == 'S':
			n := runLength(runes, i, 'S')
			sb.WriteString(strings.Repeat("0", n))
			i += n
		case c == 'Z':
			n := runLength(runes, i, 'Z')
			if n >= 5 {
				sb.WriteString("Z07:00")
			} else {
				sb.WriteString("-0700")
			}
			i += n
		case c == 'a':
			sb.WriteString("PM")
			i++
		case c == 'E':
			n := runLength(runes, i, 'E')
			if n >= 4 {
				sb.WriteString("Monday")
			} else {
				sb.WriteString("Mon")
			}
			i += n
		default:
			sb.WriteRune(c)
			i++
		}
	}
	return sb.String()
}

func runLength(runes []rune, start int, c rune) int {
	n := 0
	for start+n < len(runes) && runes[start+n] == c {
		n++
	}
	return n
}

// DefaultFormat returns the conventional default pattern for the three
// date/time rule and generator kinds, used when no explicit format is
// configured.
func DefaultFormat(kind string) string {
	switch kind {
	case "date":
		return "yyyy-MM-dd"
	case "time":
		return "HH:mm:ss"
	case "timestamp", "datetime":
		return "yyyy-MM-dd'T'HH:mm:ss.SSSZZZZZ"
	default:
		return "yyyy-MM-dd"
	}
}
