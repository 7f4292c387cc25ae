package tefila

import (
	"testing"

	"github.com/jzman-dev/zmanim-engine/hebrewcalendar"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/jdt"
	"github.com/stretchr/testify/assert"
)

func calendarFor(year jdt.JYear, month jdt.JMonth, day jdt.JDay) hebrewcalendar.JewishCalendar {
	jewishDate := hebrewcalendar.NewJewishDate1(jdt.NewJDate(year, month, day))
	return hebrewcalendar.NewJewishCalendar(jewishDate)
}

// skipIfShabbos lets a test assert a weekday-independent outcome without
// needing to know in advance which JWeekday a given Hebrew date lands on;
// Tachanun is unconditionally skipped on Shabbos regardless of every other
// option, which would otherwise confound an assertion aimed at a different
// rule entirely.
func skipIfShabbos(t *testing.T, calendar hebrewcalendar.JewishCalendar) {
	t.Helper()
	if calendar.JewishDate().DayOfWeek() == jdt.Saturday {
		t.Skip("date falls on Shabbos this run, which masks the rule under test")
	}
}

func TestTachanunNotRecitedOnRoshChodesh(t *testing.T) {
	calendar := calendarFor(5784, jdt.Heshvan, 1) // Rosh Chodesh Cheshvan, a Monday
	assert.False(t, IsTachanunRecitedShacharis(calendar, DefaultOptions()))
}

func TestTachanunRecitedOnRegularFastDay(t *testing.T) {
	// Asara B'Teves never falls on Shabbos under the fixed calendar's
	// postponement rules, so no skipIfShabbos guard is needed here.
	calendar := calendarFor(5784, jdt.Tevet, 10) // Tenth of Teves
	assert.True(t, IsTachanunRecitedShacharis(calendar, DefaultOptions()))
}

func TestShivasYemeiHamiluimAppliesOnlyToMonthBeforeNissan(t *testing.T) {
	options := DefaultOptions()
	options.RecitedShivasYemeiHamiluim = false

	// 5783 is a common year, so Adar directly precedes Nissan and carries
	// the window on its last week (23-29).
	common := calendarFor(5783, jdt.Adar, 23)
	skipIfShabbos(t, common)
	assert.False(t, IsTachanunRecitedShacharis(common, options),
		"Adar 23 in a common year should fall in the Shivas Yemei Hamiluim window")

	// 5784 is a leap year, so Adar II takes that place instead and Adar
	// (Adar I) is unaffected even in its last week.
	leapAdarI := calendarFor(5784, jdt.Adar, 25)
	skipIfShabbos(t, leapAdarI)
	assert.True(t, IsTachanunRecitedShacharis(leapAdarI, options),
		"Adar I 25 in a leap year should not carry the Shivas Yemei Hamiluim window")

	leapAdarII := calendarFor(5784, jdt.AdarII, 25)
	skipIfShabbos(t, leapAdarII)
	assert.False(t, IsTachanunRecitedShacharis(leapAdarII, options),
		"Adar II 25 in a leap year should fall in the Shivas Yemei Hamiluim window")
}

func TestTachanunNotRecitedOnTishaBeav(t *testing.T) {
	calendar := calendarFor(5784, jdt.Av, 9) // Tisha B'Av
	skipIfShabbos(t, calendar)
	assert.False(t, IsTachanunRecitedShacharis(calendar, DefaultOptions()))
	assert.False(t, IsTachanunRecitedMincha(calendar, DefaultOptions()))
}

func TestTachanunMinchaDisabledGlobally(t *testing.T) {
	calendar := calendarFor(5784, jdt.Heshvan, 10)
	skipIfShabbos(t, calendar)
	options := DefaultOptions()
	options.RecitedMinchaAllYear = false
	assert.False(t, IsTachanunRecitedMincha(calendar, options))
}
