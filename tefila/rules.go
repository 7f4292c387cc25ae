/*
Package tefila implements the Tachanun-recitation predicates of spec.md
§4.9. The teacher port (go-zmanim) stops at the Hebrew calendar and zmanim
layers; this package is new, grounded on the holiday/fast/rosh-chodesh
predicates jewish_calendar.go already exposes plus the day-of-month windows
spec.md names explicitly.
*/
package tefila

import (
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/jdt"
)

// Options collects the configurable Tachanun toggles, each defaulted the
// way spec.md §4.9 documents. Zero-value Options is NOT equivalent to
// DefaultOptions(): use DefaultOptions() to get the documented defaults.
type Options struct {
	RecitedEndOfTishrei           bool // Tishrei 22-29
	RecitedWeekAfterShavuos       bool // Sivan 7-12
	Recited13SivanOutsideIsrael   bool
	RecitedPesachSheni            bool // 14 Iyar
	Recited15IyarOutsideIsrael    bool
	RecitedMinchaErevLagBaomer    bool // Mincha on 17 Iyar
	RecitedShivasYemeiHamiluim    bool // Adar 23-29
	RecitedWeekOfHod              bool // Iyar 14-20
	RecitedWeekOfPurim            bool // Adar 11-17
	RecitedFridays                bool
	RecitedSundays                bool
	RecitedMinchaAllYear          bool
}

// DefaultOptions returns the spec-documented defaults.
func DefaultOptions() Options {
	return Options{
		RecitedEndOfTishrei:         true,
		RecitedWeekAfterShavuos:     false,
		Recited13SivanOutsideIsrael: true,
		RecitedPesachSheni:          false,
		Recited15IyarOutsideIsrael:  true,
		RecitedMinchaErevLagBaomer:  false,
		RecitedShivasYemeiHamiluim:  true,
		RecitedWeekOfHod:            true,
		RecitedWeekOfPurim:          true,
		RecitedFridays:              true,
		RecitedSundays:              true,
		RecitedMinchaAllYear:        true,
	}
}

// IsTachanunRecitedShacharis reports whether Tachanun is said at Shacharis
// on the day the given calendar is set to.
func IsTachanunRecitedShacharis(calendar hebrewcalendar.JewishCalendar, options Options) bool {
	jewishDate := calendar.JewishDate()
	month := jewishDate.JMonth()
	day := jewishDate.JDay()
	dayOfWeek := jewishDate.DayOfWeek()

	// Regular fast days (17 Tammuz, Tzom Gedalyah, 10 Teves, Taanis Esther)
	// still say Tachanun; Yom Kippur and Tisha B'Av omit it, Yom Kippur
	// already covered by IsYomTov and Tisha B'Av named explicitly since
	// IsYomTov() excludes every IsTaanis day besides Yom Kippur.
	if calendar.IsYomTov() || calendar.IsErevYomTov() || calendar.IsCholHamoed() || calendar.IsRoshChodesh() ||
		calendar.IsIsruChag() || calendar.YomTov() == hebrewcalendar.TishaBeav {
		return false
	}
	if dayOfWeek == jdt.Saturday {
		return false
	}
	if !options.RecitedFridays && dayOfWeek == jdt.Friday {
		return false
	}
	if !options.RecitedSundays && dayOfWeek == jdt.Sunday {
		return false
	}

	switch month {
	case jdt.TISHREI:
		if !options.RecitedEndOfTishrei && day >= 22 && day <= 29 {
			return false
		}
	case jdt.Adar:
		// In a common year Adar precedes Nissan directly, so its last week
		// carries the Shivas Yemei Hamiluim window. In a leap year Adar II
		// takes that place instead.
		if !jewishDate.IsLeapJYear() {
			if !options.RecitedShivasYemeiHamiluim && day >= 23 && day <= 29 {
				return false
			}
		}
		if !options.RecitedWeekOfPurim && day >= 11 && day <= 17 {
			return false
		}
	case jdt.AdarII:
		if !options.RecitedShivasYemeiHamiluim && day >= 23 && day <= 29 {
			return false
		}
		if !options.RecitedWeekOfPurim && day >= 11 && day <= 17 {
			return false
		}
	case jdt.Iyar:
		if !options.RecitedPesachSheni && day == 14 {
			return false
		}
		if !options.Recited15IyarOutsideIsrael && !calendar.IsInIsrael() && day == 15 {
			return false
		}
		if !options.RecitedWeekOfHod && day >= 14 && day <= 20 {
			return false
		}
	case jdt.Sivan:
		if !options.RecitedWeekAfterShavuos && day >= 7 && day <= 12 {
			return false
		}
		if !options.Recited13SivanOutsideIsrael && !calendar.IsInIsrael() && day == 13 {
			return false
		}
	}

	return true
}

// IsTachanunRecitedMincha reports whether Tachanun is said at Mincha on the
// day the given calendar is set to. This mirrors Shacharis except that
// Tachanun is also skipped at Mincha on Erev Rosh Chodesh, Erev Yom Tov,
// 17 Iyar unless options.RecitedMinchaErevLagBaomer is set, and whenever
// options.RecitedMinchaAllYear disables it globally. The following day is
// not otherwise consulted: on the eve of any other day without Tachanun,
// Mincha follows the Shacharis rules of the current day.
func IsTachanunRecitedMincha(calendar hebrewcalendar.JewishCalendar, options Options) bool {
	if !options.RecitedMinchaAllYear {
		return false
	}

	jewishDate := calendar.JewishDate()
	month := jewishDate.JMonth()
	day := jewishDate.JDay()

	if calendar.IsErevRoshChodesh() || calendar.IsErevYomTov() {
		return false
	}

	if month == jdt.Iyar && day == 17 && !options.RecitedMinchaErevLagBaomer {
		return false
	}

	return IsTachanunRecitedShacharis(calendar, options)
}
