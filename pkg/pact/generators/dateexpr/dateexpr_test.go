package dateexpr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base mirrors the worked-example base instant used throughout
// original_source/rust/pact_models/src/generators/datetime_expressions.rs:
// 2000-01-01T10:00:00Z, a Saturday.
var base = time.Date(2000, 1, 1, 10, 0, 0, 0, time.UTC)

func TestTodayYesterdayTomorrow(t *testing.T) {
	r, err := Eval("today", base)
	require.NoError(t, err)
	assert.Equal(t, base, r)

	r, err = Eval("yesterday", base)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1999, 12, 31, 10, 0, 0, 0, time.UTC), r)

	r, err = Eval("tomorrow", base)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, 1, 2, 10, 0, 0, 0, time.UTC), r)
}

func TestPlusMinusDayWeekFortnightMonthYear(t *testing.T) {
	cases := []struct {
		expr string
		want time.Time
	}{
		{"+1 day", time.Date(2000, 1, 2, 10, 0, 0, 0, time.UTC)},
		{"-1 day", time.Date(1999, 12, 31, 10, 0, 0, 0, time.UTC)},
		{"+1 week", time.Date(2000, 1, 8, 10, 0, 0, 0, time.UTC)},
		{"+1 fortnight", time.Date(2000, 1, 15, 10, 0, 0, 0, time.UTC)},
		{"+1 month", time.Date(2000, 2, 1, 10, 0, 0, 0, time.UTC)},
		{"+1 year", time.Date(2001, 1, 1, 10, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		r, err := Eval(c.expr, base)
		require.NoError(t, err, c.expr)
		assert.True(t, c.want.Equal(r), "%s: want %v got %v", c.expr, c.want, r)
	}
}

func TestMonthRollClamping(t *testing.T) {
	jan31 := time.Date(2000, 1, 31, 10, 0, 0, 0, time.UTC)
	r, err := Eval("+1 month", jan31)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, 2, 29, 10, 0, 0, 0, time.UTC), r) // 2000 is a leap year

	jan31Nonleap := time.Date(2001, 1, 31, 10, 0, 0, 0, time.UTC)
	r, err = Eval("+1 month", jan31Nonleap)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2001, 2, 28, 10, 0, 0, 0, time.UTC), r)
}

func TestNextLastWeekday(t *testing.T) {
	// base is a Saturday.
	r, err := Eval("next monday", base)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, r.Weekday())
	assert.True(t, r.After(base))

	r, err = Eval("last monday", base)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, r.Weekday())
	assert.True(t, r.Before(base))
}

func TestNextLastMonthResetsDayOfMonth(t *testing.T) {
	r, err := Eval("next june", base)
	require.NoError(t, err)
	assert.Equal(t, time.June, r.Month())
	assert.Equal(t, 1, r.Day())
	assert.Equal(t, 2000, r.Year())

	r, err = Eval("last june", base)
	require.NoError(t, err)
	assert.Equal(t, time.June, r.Month())
	assert.Equal(t, 1, r.Day())
	assert.Equal(t, 1999, r.Year())
}

func TestTimeNowMidnightNoon(t *testing.T) {
	r, err := Eval("@ now", base)
	require.NoError(t, err)
	assert.True(t, base.Equal(r))

	r, err = Eval("@ midnight", base)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Hour())

	r, err = Eval("@ noon", base)
	require.NoError(t, err)
	assert.Equal(t, 12, r.Hour())
}

func TestTimePlusMinusUnits(t *testing.T) {
	r, err := Eval("@ +1 hour", base)
	require.NoError(t, err)
	assert.Equal(t, 11, r.Hour())

	r, err = Eval("@ -30 minute", base)
	require.NoError(t, err)
	assert.Equal(t, 9, r.Hour())
	assert.Equal(t, 30, r.Minute())
}

func TestClockHourWithExplicitMeridiem(t *testing.T) {
	r, err := Eval("@ 2 o'clock pm", base)
	require.NoError(t, err)
	assert.Equal(t, 14, r.Hour())

	r, err = Eval("@ 12 o'clock am", base)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Hour())

	r, err = Eval("@ 12 o'clock pm", base)
	require.NoError(t, err)
	assert.Equal(t, 12, r.Hour())
}

func TestBareClockHourResolvesToNextOccurrence(t *testing.T) {
	// base time-of-day is 10:00. Bare "2 o'clock" (candidates 02:00, 14:00)
	// resolves to the next strictly-later occurrence: 14:00.
	r, err := Eval("@ 2 o'clock", base)
	require.NoError(t, err)
	assert.Equal(t, 14, r.Hour())
	assert.Equal(t, base.Day(), r.Day())
}

func TestBareClockHourRollsToTomorrowWhenBothPassed(t *testing.T) {
	// base time-of-day is 10:00. Bare "9 o'clock" (candidates 09:00, 21:00):
	// 09:00 already passed, but 21:00 is still later today.
	r, err := Eval("@ 9 o'clock", base)
	require.NoError(t, err)
	assert.Equal(t, 21, r.Hour())
	assert.Equal(t, base.Day(), r.Day())

	// Advance the reference past 21:00 so both candidates have passed.
	late := base.Add(12 * time.Hour) // 22:00
	r, err = Eval("@ 9 o'clock", late)
	require.NoError(t, err)
	assert.Equal(t, 9, r.Hour())
	assert.Equal(t, late.Day()+1, r.Day())
}

func TestCombinedDateAndTimeExpression(t *testing.T) {
	r, err := Eval("tomorrow + 4 year @ 3 o'clock pm + 40 millisecond", base)
	require.NoError(t, err)
	assert.Equal(t, 2004, r.Year())
	assert.Equal(t, 2, r.Day())
	assert.Equal(t, 15, r.Hour())
	assert.Equal(t, 40*time.Millisecond, time.Duration(r.Nanosecond()))
}

func TestCombinedDateAndTimeExpressionWithPluralUnitsAndBareHour(t *testing.T) {
	// spec.md's own S6 scenario: base 2000-01-01T10:00Z, expression
	// "tomorrow+ 4 years @ 3 o'clock + 40 milliseconds" -> 2004-01-02T15:00:00.040Z.
	// Plural unit words ("years", "milliseconds") must resolve the same as
	// their singular forms, and the bare hour (no am/pm) resolves to 15:00
	// since 03:00 has already passed relative to the 10:00 time-of-day
	// carried over from "tomorrow".
	r, err := Eval("tomorrow+ 4 years @ 3 o'clock + 40 milliseconds", base)
	require.NoError(t, err)
	assert.Equal(t, 2004, r.Year())
	assert.Equal(t, time.January, r.Month())
	assert.Equal(t, 2, r.Day())
	assert.Equal(t, 15, r.Hour())
	assert.Equal(t, 40*time.Millisecond, time.Duration(r.Nanosecond()))
}

func TestInvalidExpressionReportsPosition(t *testing.T) {
	_, err := Eval("bogus", base)
	require.Error(t, err)
	var exprErr *ExpressionError
	require.ErrorAs(t, err, &exprErr)
	assert.Equal(t, "bogus", exprErr.Expr)
	assert.Equal(t, 0, exprErr.Pos)
}

func TestUnknownUnitIsAnError(t *testing.T) {
	_, err := Eval("+1 fortnightly", base)
	require.Error(t, err)
}
