/*
Package formatter maps the data objects the calendar core produces (Hebrew
dates, holidays, parshiyos, Daf Yomi references, named zmanim) into display
strings. The core exposes enumerations and accessor methods; nothing in
this package reaches into unexported state of hebrewcalendar, dafyomi or
zmanim.

Three formatting parameters are independent of one another and of the data
being formatted: language mode (Hebrew script vs. transliterated English),
whether Hebrew numerals carry geresh/gershayim punctuation, and whether a
Hebrew year is rendered long-form (with its thousands digit) or short-form.
*/
package formatter

import (
	"fmt"
	"time"

	"github.com/jzman-dev/zmanim-engine/dafyomi"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/parsha"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/jdt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LanguageMode selects between Hebrew script and transliterated English.
type LanguageMode int

const (
	English LanguageMode = iota
	Hebrew
)

// Options collects the three orthogonal formatting parameters documented
// in the package comment.
type Options struct {
	Language     LanguageMode
	UseGershayim bool // punctuate Hebrew numerals with geresh/gershayim
	LongYear     bool // include the thousands digit in a Hebrew year
}

// DefaultOptions returns transliterated English, numerals punctuated with
// geresh/gershayim (irrelevant in English), and long-form years.
func DefaultOptions() Options {
	return Options{Language: English, UseGershayim: true, LongYear: true}
}

// Formatter is the display-string contract. Every method is pure: given
// the same data object and Options, it returns the same string.
type Formatter interface {
	FormatHebrewDate(date hebrewcalendar.JewishDate) string
	FormatHoliday(yomTov hebrewcalendar.YomTovIndex) string
	FormatParsha(p parsha.Parsha) string
	FormatBavliDaf(daf dafyomi.Daf) string
	FormatYerushalmiDaf(daf dafyomi.Daf) string
	FormatZman(label string, t time.Time) string
}

type textFormatter struct {
	options Options
	caser   cases.Caser
}

// New returns the reference Formatter implementation.
func New(options Options) Formatter {
	return &textFormatter{
		options: options,
		caser:   cases.Title(language.English),
	}
}

func (f *textFormatter) FormatHebrewDate(date hebrewcalendar.JewishDate) string {
	year := date.JYear()
	month := date.JMonth()
	day := date.JDay()

	if f.options.Language == Hebrew {
		monthName := hebrewMonthNames[month]
		if month == jdt.Adar && year.IsLeapJYear() {
			monthName = "אדר א"
		}
		dayNumeral := hebrewNumeral(int(day), f.options.UseGershayim, true)
		yearNumeral := hebrewNumeral(int(year), f.options.UseGershayim, f.options.LongYear)
		return fmt.Sprintf("%s %s %s", dayNumeral, monthName, yearNumeral)
	}

	monthName := month.Name()
	if month == jdt.Adar && year.IsLeapJYear() {
		monthName = "Adar I"
	}
	return fmt.Sprintf("%d %s %d", day, monthName, year)
}

func (f *textFormatter) FormatHoliday(yomTov hebrewcalendar.YomTovIndex) string {
	if f.options.Language == Hebrew {
		return hebrewHolidayNames[yomTov]
	}
	return f.caser.String(yomTov.Name())
}

func (f *textFormatter) FormatParsha(p parsha.Parsha) string {
	if p == parsha.None {
		return ""
	}
	if f.options.Language == Hebrew {
		return hebrewParshaNames[p]
	}
	return p.Name()
}

func (f *textFormatter) FormatBavliDaf(daf dafyomi.Daf) string {
	return fmt.Sprintf("%s %d", daf.BavliName(), daf.Page)
}

func (f *textFormatter) FormatYerushalmiDaf(daf dafyomi.Daf) string {
	name := daf.YerushalmiName()
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%s %d", name, daf.Page)
}

func (f *textFormatter) FormatZman(label string, t time.Time) string {
	return fmt.Sprintf("%s: %s", label, t.Format("15:04:05"))
}
