package matchers

import "regexp"

// semverPattern is the official SemVer 2.0.0 regular expression
// (semver.org, appendix). No semver-parsing library appears as a direct
// dependency anywhere in the example pack retrieved for this module, so
// this is implemented directly against the published grammar rather than
// reimplementing a partial ad-hoc parser.
var semverPattern = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`,
)

func matchSemver(actual any) error {
	s := toDisplayString(actual)
	if semverPattern.MatchString(s) {
		return nil
	}
	return mismatch(Semver, "expected %q to be a valid semantic version", s)
}
