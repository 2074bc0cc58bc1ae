package dateexpr

import (
	"fmt"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Eval evaluates a full date[-and-]time expression against base, returning
// the resulting instant in base's location.
func Eval(expr string, base time.Time) (time.Time, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return time.Time{}, err
	}

	split := -1
	for i, t := range tokens {
		if t.kind == tokWord && t.text == "@" {
			split = i
			break
		}
	}

	dateTokens := tokens
	var timeTokens []token
	if split >= 0 {
		dateTokens = append(append([]token{}, tokens[:split]...), token{kind: tokEOF, pos: tokens[split].pos})
		timeTokens = tokens[split+1:]
	}

	result, err := evalDate(expr, dateTokens, base)
	if err != nil {
		return time.Time{}, err
	}
	if split >= 0 {
		result, err = evalTime(expr, timeTokens, result)
		if err != nil {
			return time.Time{}, err
		}
	}
	return result, nil
}

type tokCursor struct {
	expr   string
	tokens []token
	pos    int
}

func (c *tokCursor) peek() token { return c.tokens[c.pos] }
func (c *tokCursor) next() token {
	t := c.tokens[c.pos]
	if t.kind != tokEOF {
		c.pos++
	}
	return t
}
func (c *tokCursor) errf(pos int, format string, args ...any) error {
	return &ExpressionError{Expr: c.expr, Pos: pos, Note: fmt.Sprintf(format, args...)}
}

func evalDate(expr string, tokens []token, base time.Time) (time.Time, error) {
	c := &tokCursor{expr: expr, tokens: tokens}
	result := base

	if c.peek().kind == tokWord {
		switch c.peek().text {
		case "now":
			c.next()
		case "today":
			c.next()
			result = truncateToDay(result)
			result = result.Add(timeOfDay(base))
		case "yesterday":
			c.next()
			result = truncateToDay(result).AddDate(0, 0, -1)
			result = result.Add(timeOfDay(base))
		case "tomorrow":
			c.next()
			result = truncateToDay(result).AddDate(0, 0, 1)
			result = result.Add(timeOfDay(base))
		case "next", "last":
			dir := c.next().text
			if c.peek().kind != tokWord {
				return time.Time{}, c.errf(c.peek().pos, "expected a unit after %q", dir)
			}
			unit := c.next().text
			sign := 1
			if dir == "last" {
				sign = -1
			}
			var err error
			result, err = applyDateUnit(result, sign, 1, unit, c, c.peek().pos)
			if err != nil {
				return time.Time{}, err
			}
		}
	}

	for c.peek().kind == tokSign {
		sign := 1
		if c.next().text == "-" {
			sign = -1
		}
		if c.peek().kind != tokNum {
			return time.Time{}, c.errf(c.peek().pos, "expected an integer after sign")
		}
		n := c.next().num
		if c.peek().kind != tokWord {
			return time.Time{}, c.errf(c.peek().pos, "expected a unit after %d", n)
		}
		unit := c.next().text
		var err error
		result, err = applyDateUnit(result, sign, n, unit, c, c.peek().pos)
		if err != nil {
			return time.Time{}, err
		}
	}

	if c.peek().kind != tokEOF {
		return time.Time{}, c.errf(c.peek().pos, "unexpected trailing content in date expression")
	}
	return result, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func timeOfDay(t time.Time) time.Duration {
	d := t.Sub(truncateToDay(t))
	return d
}

// singularizeUnit strips a single trailing "s" from a unit word, so
// "4 years"/"40 milliseconds" (spec.md's own worked examples use plural
// unit words when n != 1) resolve the same as their singular form "year"/
// "millisecond". A bare "s" is left alone rather than reduced to "".
func singularizeUnit(unit string) string {
	if len(unit) > 1 && strings.HasSuffix(unit, "s") {
		return strings.TrimSuffix(unit, "s")
	}
	return unit
}

func applyDateUnit(base time.Time, sign, n int, unit string, c *tokCursor, pos int) (time.Time, error) {
	switch singularizeUnit(unit) {
	case "day":
		return base.AddDate(0, 0, sign*n), nil
	case "week":
		return base.AddDate(0, 0, sign*n*7), nil
	case "fortnight":
		return base.AddDate(0, 0, sign*n*14), nil
	case "month":
		return addMonthsClamped(base, sign*n), nil
	case "year":
		return base.AddDate(sign*n, 0, 0), nil
	default:
		if wd, ok := weekdayNames[unit]; ok {
			return advanceToWeekday(base, wd, sign, n), nil
		}
		if mo, ok := monthNames[unit]; ok {
			return advanceToMonth(base, mo, sign, n), nil
		}
		return time.Time{}, c.errf(pos, "unknown date unit %q", unit)
	}
}

// addMonthsClamped adds n months, clamping the day-of-month to the last day
// of the resulting month rather than letting it roll into the next month
// (so Jan 31 + 1 month = Feb 28/29, per spec.md §4.3).
func addMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	totalMonths := int(m) - 1 + n
	y += totalMonths / 12
	m = time.Month(totalMonths%12 + 1)
	if m <= 0 {
		m += 12
		y--
	}
	lastDay := daysInMonth(y, m)
	if d > lastDay {
		d = lastDay
	}
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// advanceToWeekday skips forward (or back, for sign<0) to the nth
// occurrence of wd strictly after (or before) base, per spec.md §4.3
// "weekday adjustments skip forward to the next occurrence".
func advanceToWeekday(base time.Time, wd time.Weekday, sign, n int) time.Time {
	result := base
	for i := 0; i < n; i++ {
		result = result.AddDate(0, 0, sign)
		for result.Weekday() != wd {
			result = result.AddDate(0, 0, sign)
		}
	}
	return result
}

// advanceToMonth skips forward/back to the nth occurrence of month mo,
// resetting day-of-month to 1, per spec.md §4.3 "month-name adjustments
// reset day-of-month to 1".
func advanceToMonth(base time.Time, mo time.Month, sign, n int) time.Time {
	y := base.Year()
	m := base.Month()
	for i := 0; i < n; i++ {
		m += time.Month(sign)
		if m > time.December {
			m = time.January
			y++
		} else if m < time.January {
			m = time.December
			y--
		}
		for m != mo {
			m += time.Month(sign)
			if m > time.December {
				m = time.January
				y++
			} else if m < time.January {
				m = time.December
				y--
			}
		}
	}
	return time.Date(y, m, 1, base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
}

func evalTime(expr string, tokens []token, base time.Time) (time.Time, error) {
	tokens = append(tokens, token{kind: tokEOF, pos: 0})
	c := &tokCursor{expr: expr, tokens: tokens}
	result := base

	if c.peek().kind == tokNum {
		hour := c.next().num
		if c.peek().kind != tokWord || c.peek().text != "o'clock" {
			return time.Time{}, c.errf(c.peek().pos, "expected \"o'clock\" after hour")
		}
		c.next()
		meridiem := ""
		if c.peek().kind == tokWord && (c.peek().text == "am" || c.peek().text == "pm") {
			meridiem = c.next().text
		}
		offset, err := resolveClockHour(hour, meridiem, result, c, c.peek().pos)
		if err != nil {
			return time.Time{}, err
		}
		result = truncateToDay(result).Add(offset)
	} else if c.peek().kind == tokWord {
		switch c.peek().text {
		case "now":
			c.next()
		case "midnight":
			c.next()
			result = truncateToDay(result)
		case "noon":
			c.next()
			result = truncateToDay(result).Add(12 * time.Hour)
		case "next", "last":
			dir := c.next().text
			if c.peek().kind != tokWord {
				return time.Time{}, c.errf(c.peek().pos, "expected a unit after %q", dir)
			}
			unit := c.next().text
			sign := time.Duration(1)
			if dir == "last" {
				sign = -1
			}
			d, err := timeUnitDuration(unit, c, c.peek().pos)
			if err != nil {
				return time.Time{}, err
			}
			result = roundToUnit(result, d, sign)
		}
	}

	for c.peek().kind == tokSign {
		sign := time.Duration(1)
		if c.next().text == "-" {
			sign = -1
		}
		if c.peek().kind != tokNum {
			return time.Time{}, c.errf(c.peek().pos, "expected an integer after sign")
		}
		n := c.next().num
		if c.peek().kind != tokWord {
			return time.Time{}, c.errf(c.peek().pos, "expected a time unit after %d", n)
		}
		unit := c.next().text
		d, err := timeUnitDuration(unit, c, c.peek().pos)
		if err != nil {
			return time.Time{}, err
		}
		result = result.Add(sign * time.Duration(n) * d)
	}

	if c.peek().kind != tokEOF {
		return time.Time{}, c.errf(c.peek().pos, "unexpected trailing content in time expression")
	}
	return result, nil
}

func timeUnitDuration(unit string, c *tokCursor, pos int) (time.Duration, error) {
	switch singularizeUnit(unit) {
	case "hour":
		return time.Hour, nil
	case "minute":
		return time.Minute, nil
	case "second":
		return time.Second, nil
	case "millisecond":
		return time.Millisecond, nil
	default:
		return 0, c.errf(pos, "unknown time unit %q", unit)
	}
}

func roundToUnit(t time.Time, unit time.Duration, sign time.Duration) time.Time {
	if sign > 0 {
		return t.Truncate(unit).Add(unit)
	}
	truncated := t.Truncate(unit)
	if truncated.Equal(t) {
		return truncated.Add(-unit)
	}
	return truncated
}

// resolveClockHour converts a bare "N o'clock" (optionally "am"/"pm") into
// an offset from the start of ref's day. An explicit am/pm uses the
// conventional 12-hour mapping (12am = 0, 12pm = 12). A bare hour with no
// meridiem resolves to whichever of the hour's AM/PM candidates comes next
// strictly after the reference instant's time-of-day, rolling to the next
// day if both candidates have already passed today.
func resolveClockHour(hour int, meridiem string, ref time.Time, c *tokCursor, pos int) (time.Duration, error) {
	if hour < 1 || hour > 12 {
		return 0, c.errf(pos, "hour must be between 1 and 12, got %d", hour)
	}
	switch meridiem {
	case "am":
		if hour == 12 {
			return 0, nil
		}
		return time.Duration(hour) * time.Hour, nil
	case "pm":
		if hour == 12 {
			return 12 * time.Hour, nil
		}
		return time.Duration(hour+12) * time.Hour, nil
	default:
		amHour := hour % 12
		pmHour := amHour + 12
		nowOffset := ref.Sub(truncateToDay(ref))
		best := time.Duration(-1)
		for _, h := range []int{amHour, pmHour} {
			candidate := time.Duration(h) * time.Hour
			if candidate > nowOffset && (best < 0 || candidate < best) {
				best = candidate
			}
		}
		if best < 0 {
			// Both candidates already passed today: roll to tomorrow's
			// earliest occurrence.
			best = time.Duration(amHour)*time.Hour + 24*time.Hour
		}
		return best, nil
	}
}
