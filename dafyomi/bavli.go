/*
Package dafyomi maps civil/Hebrew dates to the tractate and page of the
Daf Yomi daily-study cycles: the Babylonian Talmud (Bavli) cycle begun
1923-09-11, and the Jerusalem Talmud (Yerushalmi) cycle begun 1980-02-02.

Neither cycle appears in the teacher port (go-zmanim covers zmanim and the
Hebrew calendar only); both are built fresh here, grounded directly on the
algorithm and Bavli blatt table spec.md gives verbatim, following the
teacher's conventions for tables-as-data and panic-free constructors.
*/
package dafyomi

import (
	"errors"
	"time"

	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/gdt"
)

// ErrBeforeCycleStart is returned when a query date precedes the relevant
// cycle's start date.
var ErrBeforeCycleStart = errors.New("dafyomi: date precedes cycle start")

// Daf identifies a tractate (by index into the per-cycle tractate table)
// and a page within it. Page 0 denotes "no daf" (Yerushalmi on Yom Kippur
// and Tisha B'Av).
type Daf struct {
	TractateIndex int
	Page          int
}

// BavliName returns the tractate name for a Daf produced by Bavli.
func (d Daf) BavliName() string {
	if d.TractateIndex < 0 || d.TractateIndex >= len(BavliTractates) {
		return ""
	}
	return BavliTractates[d.TractateIndex]
}

// YerushalmiName returns the tractate name for a Daf produced by
// Yerushalmi, or the empty string on a no-daf day (TractateIndex ==
// yerushalmiNoDafIndex, one past the last valid tractate index).
func (d Daf) YerushalmiName() string {
	if d.TractateIndex < 0 || d.TractateIndex >= len(YerushalmiTractates) {
		return ""
	}
	return YerushalmiTractates[d.TractateIndex]
}

// BavliTractates names the 40 tractates of the Bavli cycle in learning
// order, index-aligned with bavliBlattPre1975 / bavliBlattFrom1975.
var BavliTractates = []string{
	"Berachos", "Shabbos", "Eruvin", "Pesachim", "Shekalim", "Yoma", "Sukkah", "Beitzah", "Rosh Hashana",
	"Taanis", "Megillah", "Moed Katan", "Chagigah", "Yevamos", "Kesubos", "Nedarim", "Nazir", "Sotah",
	"Gittin", "Kiddushin", "Bava Kamma", "Bava Metzia", "Bava Basra", "Sanhedrin", "Makkos", "Shevuos",
	"Avodah Zarah", "Horayos", "Zevachim", "Menachos", "Chullin", "Bechoros", "Arachin", "Temurah",
	"Kerisos", "Meilah", "Kinnim", "Tamid", "Midos", "Niddah",
}

// bavliBlattPre1975 is the blatt count per tractate for cycles 1-7, when
// Shekalim (index 4) ran 13 daf.
var bavliBlattPre1975 = []int{
	64, 157, 105, 121, 13, 88, 56, 40, 35, 31, 32, 29, 27, 122, 112, 91, 66, 49, 90, 82, 119, 119, 176, 113,
	24, 49, 76, 14, 120, 110, 142, 61, 34, 34, 28, 22, 4, 10, 4, 73,
}

// bavliBlattFrom1975 is the same table from 1975-06-24, when the Vilna-page
// edition of Shekalim (22 daf) came into common use.
var bavliBlattFrom1975 = []int{
	64, 157, 105, 121, 22, 88, 56, 40, 35, 31, 32, 29, 27, 122, 112, 91, 66, 49, 90, 82, 119, 119, 176, 113,
	24, 49, 76, 14, 120, 110, 142, 61, 34, 34, 28, 22, 4, 10, 4, 73,
}

// tractateFirstPage lists the tractates (Meilah, Kinnim, Tamid) whose page
// numbering does not start at 2, the default first page of every ordinary
// masechta (there is no printed daf 1; 2a is the first page of every
// tractate but these three).
var tractateFirstPage = map[int]int{
	35: 22, // Meilah
	36: 25, // Kinnim
	37: 34, // Tamid
}

var (
	bavliCycleStart     = gdt.NewGDate(1923, time.September, 11).ToAbsDate()
	bavliChangeover     = gdt.NewGDate(1975, time.June, 24).ToAbsDate()
	bavliCycleDaysOld   = gdt.GDay(2702)
	bavliCycleDaysNew   = gdt.GDay(2711)
)

// Bavli returns the tractate and daf of the Babylonian Talmud Daf Yomi
// cycle for the given civil date.
func Bavli(date time.Time) (Daf, error) {
	abs := gdt.NewGDate1(date).ToAbsDate()
	if abs < bavliCycleStart {
		return Daf{}, ErrBeforeCycleStart
	}

	var daysIntoCycle gdt.GDay
	var blatt []int
	if abs >= bavliChangeover {
		sinceChangeover := abs - bavliChangeover
		daysIntoCycle = sinceChangeover % bavliCycleDaysNew
		blatt = bavliBlattFrom1975
	} else {
		sinceStart := abs - bavliCycleStart
		daysIntoCycle = sinceStart % bavliCycleDaysOld
		blatt = bavliBlattPre1975
	}

	return resolveDaf(int(daysIntoCycle), blatt, tractateFirstPage), nil
}

// resolveDaf walks the per-tractate blatt table, consuming blatt-1 pages
// (every tractate's daf count includes the unprinted "page 1") for each
// tractate until the running total exceeds the remaining offset. Every
// ordinary masechta's first printed page is daf 2; firstPage overrides that
// default for the handful of tractates that start elsewhere.
func resolveDaf(offset int, blatt []int, firstPage map[int]int) Daf {
	remaining := offset
	for i, count := range blatt {
		usable := count - 1
		if remaining < usable {
			start := firstPage[i]
			if start == 0 {
				start = 2
			}
			return Daf{TractateIndex: i, Page: start + remaining}
		}
		remaining -= usable
	}
	// Should never happen for a correctly-sized table; fall back to the
	// last page of the last tractate rather than panic.
	last := len(blatt) - 1
	return Daf{TractateIndex: last, Page: blatt[last]}
}
