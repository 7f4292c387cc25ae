/*
Package zmanimlib is the narrow library surface host applications use
instead of reaching into hebrewcalendar, zmanim, dafyomi, or tefila
directly. It composes those packages without introducing new domain
logic: every function here is a thin adapter over an existing
constructor or calculation.
*/
package zmanimlib

import (
	"fmt"
	"time"

	"github.com/jzman-dev/zmanim-engine/dafyomi"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/parsha"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/gdt"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/jdt"
	"github.com/jzman-dev/zmanim-engine/zmanim"
	"github.com/jzman-dev/zmanim-engine/zmanim/calculator"
	"github.com/jzman-dev/zmanim-engine/zmanim/dimension"
)

// Location wraps calculator.GeoLocation with the UTC offset it was built
// from, since GeoLocation itself only stores a *time.Location.
type Location struct {
	GeoLocation calculator.GeoLocation
}

// MakeLocation validates and builds a Location from a name, coordinates,
// elevation in meters, and a fixed UTC offset in minutes. Validation is
// delegated to calculator.NewGeoLocationChecked rather than duplicated here.
func MakeLocation(name string, lat, lon, elev float64, utcOffsetMinutes int) (Location, error) {
	tz := time.FixedZone(name, utcOffsetMinutes*60)
	geo, err := calculator.NewGeoLocationChecked(name, lat, lon, dimension.Meters(elev), tz)
	if err != nil {
		return Location{}, fmt.Errorf("zmanimlib: %w", err)
	}
	return Location{GeoLocation: geo}, nil
}

// HebrewDate is the civil-independent result of HebrewFromCivil: a Hebrew
// year/month/day triple plus the underlying calendar value for callers
// who want the richer JewishCalendar surface (holiday, parsha, omer, ...).
type HebrewDate struct {
	Year     jdt.JYear
	Month    jdt.JMonth
	Day      jdt.JDay
	Calendar hebrewcalendar.JewishCalendar
}

// HebrewFromCivil converts a proleptic-Gregorian civil date to its Hebrew
// calendar equivalent.
func HebrewFromCivil(year gdt.GYear, month time.Month, day gdt.GDay) HebrewDate {
	gDate := gdt.NewGDate(year, month, day)
	jewishDate := hebrewcalendar.NewJewishDate2(gDate)
	calendar := hebrewcalendar.NewJewishCalendar(jewishDate)
	return HebrewDate{
		Year:     jewishDate.JYear(),
		Month:    jewishDate.JMonth(),
		Day:      jewishDate.JDay(),
		Calendar: calendar,
	}
}

// CivilFromHebrew converts a Hebrew calendar date back to its
// proleptic-Gregorian civil year/month/day.
func CivilFromHebrew(hebrewDate HebrewDate) (gdt.GYear, time.Month, gdt.GDay) {
	gDate := hebrewDate.Calendar.JewishDate().GDate()
	return gDate.Year, gDate.Month, gDate.Day
}

// Zmanim is every location-dependent daily time this library names,
// keyed by the name a caller selects. A zero time.Time with ok=false
// means the zman does not occur on this date at this location (a polar
// or near-polar edge case where the sun never reaches the needed
// depression angle).
type Zmanim struct {
	AlosHashachar   ZmanEntry
	Sunrise         ZmanEntry
	SofZmanShma     ZmanEntry
	SofZmanTfila    ZmanEntry
	Chatzos         ZmanEntry
	MinchaGedola    ZmanEntry
	MinchaKetana    ZmanEntry
	PlagHamincha    ZmanEntry
	Sunset          ZmanEntry
	Tzais           ZmanEntry
}

// ZmanEntry is a single named zman's computed instant.
type ZmanEntry struct {
	Time time.Time
	Ok   bool
}

// ZmanimFor computes the standard zman set for a location and civil date,
// using the USNO almanac solar calculator (the default per C1).
func ZmanimFor(location Location, civilDate time.Time) Zmanim {
	calendar := zmanimCalendar(location, civilDate)

	entry := func(tm time.Time, ok bool) ZmanEntry {
		return ZmanEntry{Time: tm, Ok: ok}
	}

	result := Zmanim{}
	result.AlosHashachar = entry(calendar.AlosHashachar())
	result.Sunrise = entry(calendar.Sunrise())
	result.SofZmanShma = entry(calendar.SofZmanShmaGRA())
	result.SofZmanTfila = entry(calendar.SofZmanTfilaGRA())
	result.Chatzos = entry(calendar.Chatzos())
	result.MinchaGedola = entry(calendar.MinchaGedola())
	result.MinchaKetana = entry(calendar.MinchaKetana())
	result.PlagHamincha = entry(calendar.PlagHamincha())
	result.Sunset = entry(calendar.Sunset())
	result.Tzais = entry(calendar.Tzais())
	return result
}

// AllZmanim returns every named zman this engine exposes for a location
// and civil date, per zmanim.ComplexZmanimCalendar.Catalog, rather than the
// fixed ten-entry set ZmanimFor picks out.
func AllZmanim(location Location, civilDate time.Time) []zmanim.Zman {
	return zmanimCalendar(location, civilDate).Catalog()
}

// ZmanByName looks up a single named zman by its catalog label (the same
// label AllZmanim's entries carry), avoiding the cost of evaluating every
// zman when a caller wants just one.
func ZmanByName(location Location, civilDate time.Time, label string) (zmanim.Zman, bool) {
	return zmanimCalendar(location, civilDate).ZmanByLabel(label)
}

func zmanimCalendar(location Location, civilDate time.Time) zmanim.ComplexZmanimCalendar {
	gDateTime := gdt.NewGDateTime1(civilDate)
	calc := calculator.NewSunTimesCalculator()
	return zmanim.NewComplexZmanimCalendar(gDateTime, location.GeoLocation, calc)
}

// CalendarInfo bundles everything calendar_info names in spec.md: holiday
// id, parsha id, omer day, both Daf Yomi cycles, and the common boolean
// predicates.
type CalendarInfo struct {
	Holiday         hebrewcalendar.YomTovIndex
	Parsha          parsha.Parsha
	SpecialShabbos  parsha.Parsha
	DayOfOmer       jdt.JDay
	Bavli           dafyomi.Daf
	BavliErr        error
	Yerushalmi      dafyomi.Daf
	YerushalmiErr   error
	IsRoshChodesh   bool
	IsTaanis        bool
	IsYomTov        bool
	IsCholHamoed    bool
}

// CalendarInfoFor reports the full classification of a Hebrew date. The
// inIsrael flag is set on the underlying JewishCalendar before any
// holiday/parsha/chol-hamoed classification is read from it, so every
// downstream predicate sees the Diaspora/Israel distinction spec.md §4.6
// and §6 require.
func CalendarInfoFor(hebrewDate HebrewDate, civilDate time.Time, inIsrael bool) CalendarInfo {
	calendar := hebrewDate.Calendar
	calendar.SetInIsrael(inIsrael)
	bavli, bavliErr := dafyomi.Bavli(civilDate)
	yerushalmi, yerushalmiErr := dafyomi.Yerushalmi(civilDate)

	return CalendarInfo{
		Holiday:        calendar.YomTov(),
		Parsha:         calendar.Parshah(),
		SpecialShabbos: calendar.SpecialShabbos(),
		DayOfOmer:      calendar.DayOfOmer(),
		Bavli:          bavli,
		BavliErr:       bavliErr,
		Yerushalmi:     yerushalmi,
		YerushalmiErr:  yerushalmiErr,
		IsRoshChodesh:  calendar.IsRoshChodesh(),
		IsTaanis:       calendar.IsTaanis(),
		IsYomTov:       calendar.IsYomTov(),
		IsCholHamoed:   calendar.IsCholHamoed(),
	}
}
