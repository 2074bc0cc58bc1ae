package matchers

// Match runs this rule's predicate against (expected, actual). cascaded is
// true when the rule is being applied to a position deeper than where it
// was configured, via an ancestor structural rule (Type, Values, EachKey,
// EachValue, ArrayContains).
func (r Rule) Match(expected, actual any, cascaded bool) error {
	switch r.Kind {
	case Equality:
		return matchEquality(expected, actual)
	case Regex:
		return matchRegex(r.Pattern, actual)
	case Type:
		return matchType(expected, actual)
	case MinType:
		return matchMinType(r.Min, actual)
	case MaxType:
		return matchMaxType(r.Max, actual)
	case MinMaxType:
		return matchMinMaxType(r.Min, r.Max, actual)
	case Include:
		return matchInclude(r.Substring, actual)
	case Number:
		return matchNumber(actual)
	case Integer:
		return matchInteger(actual)
	case Decimal:
		return matchDecimal(actual)
	case Boolean:
		return matchBoolean(actual)
	case Null:
		return matchNull(actual)
	case Date:
		return matchDateTime(Date, r.Format, actual)
	case Time:
		return matchDateTime(Time, r.Format, actual)
	case Timestamp:
		return matchDateTime(Timestamp, r.Format, actual)
	case ContentType:
		return matchContentType(r.ContentType, actual)
	case Values:
		return matchValues(expected, actual)
	case ArrayContains:
		if cascaded {
			return nil
		}
		return matchArrayContainsShape(actual)
	case Semver:
		return matchSemver(actual)
	case EachKey:
		return matchEachShape(actual, true, r.Each)
	case EachValue:
		return matchEachShape(actual, false, r.Each)
	case NotEmpty:
		return matchNotEmpty(actual)
	case StatusCode:
		return matchStatusCode(r.StatusClass, r.StatusCodes, actual)
	default:
		return mismatch(r.Kind, "unknown matching rule kind %q", r.Kind)
	}
}

// IsStructural reports whether Kind is one of the composite-cascading rules
// (C7 uses this to decide whether to recurse into children with
// cascaded=true after this rule passes at a parent node).
func (k Kind) IsStructural() bool {
	switch k {
	case Type, Values, EachKey, EachValue, ArrayContains, MinType, MaxType, MinMaxType:
		return true
	default:
		return false
	}
}
