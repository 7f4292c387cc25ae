package dafyomi

import (
	"time"

	"github.com/jzman-dev/zmanim-engine/hebrewcalendar"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/gdt"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/jdt"
)

// YerushalmiTractates names the 39 tractates of the Yerushalmi cycle in
// learning order, index-aligned with yerushalmiBlatt.
var YerushalmiTractates = []string{
	"Berachos", "Peah", "Demai", "Kilayim", "Shevi'is", "Terumos", "Ma'asros", "Ma'aser Sheni", "Chalah",
	"Orlah", "Bikurim", "Shabbos", "Eruvin", "Pesachim", "Beitzah", "Rosh Hashana", "Yoma", "Sukkah",
	"Taanis", "Shekalim", "Megillah", "Chagigah", "Moed Katan", "Yevamos", "Kesubos", "Sotah", "Nedarim",
	"Nazir", "Gittin", "Kiddushin", "Bava Kamma", "Bava Metzia", "Bava Basra", "Shevuos", "Makkos",
	"Sanhedrin", "Avodah Zarah", "Horayos", "Niddah",
}

// yerushalmiBlatt is the per-tractate blatt count, summing to 1554, the
// length of the Yerushalmi Daf Yomi cycle before any skipped days.
var yerushalmiBlatt = []int{
	68, 37, 34, 44, 31, 59, 26, 33, 28, 20, 13, 92, 65, 71, 22, 22, 42, 26, 26,
	33, 34, 22, 19, 85, 72, 47, 40, 47, 54, 48, 44, 37, 34, 44, 9, 57, 37, 19, 13,
}

// yerushalmiNoDafIndex is the sentinel tractate index reported on Yom
// Kippur and Tisha B'Av, when no Yerushalmi daf is studied: one past the
// last of the 39 Yerushalmi tractates, keeping TractateIndex a small
// unsigned-range value rather than a negative flag.
var yerushalmiNoDafIndex = len(YerushalmiTractates)

var (
	yerushalmiCycleStart    = gdt.NewGDate(1980, time.February, 2).ToAbsDate()
	yerushalmiCycleDays     = gdt.GDay(1554)
)

// Yerushalmi returns the tractate and daf of the Jerusalem Talmud Daf Yomi
// cycle for the given civil date. Yom Kippur and Tisha B'Av have no daf:
// Page is 0 and TractateIndex is yerushalmiNoDafIndex.
func Yerushalmi(date time.Time) (Daf, error) {
	abs := gdt.NewGDate1(date).ToAbsDate()
	if abs < yerushalmiCycleStart {
		return Daf{}, ErrBeforeCycleStart
	}

	jewishDate := hebrewcalendar.NewJewishDate2(gdt.NewGDate1(date))
	calendar := hebrewcalendar.NewJewishCalendar(jewishDate)
	if isYerushalmiSkipDay(calendar) {
		return Daf{TractateIndex: yerushalmiNoDafIndex, Page: 0}, nil
	}

	sinceStart := abs - yerushalmiCycleStart
	skipped := countSkippedDays(abs)
	daysIntoCycle := int((sinceStart - skipped) % yerushalmiCycleDays)

	return resolveDaf(daysIntoCycle, yerushalmiBlatt, nil), nil
}

func isYerushalmiSkipDay(calendar hebrewcalendar.JewishCalendar) bool {
	yomTov := calendar.YomTov()
	return yomTov == hebrewcalendar.YomKippur || yomTov == hebrewcalendar.TishaBeav
}

// countSkippedDays counts the Yom Kippur and Tisha B'Av occurrences from
// the cycle start day (inclusive) up to the target absolute day (exclusive), which is
// how many non-study days have already been absorbed into the cycle by
// that point.
func countSkippedDays(target gdt.GDay) gdt.GDay {
	var skipped gdt.GDay
	for abs := yerushalmiCycleStart; abs < target; abs++ {
		jd := jdt.NewJDate1(abs)
		jewishDate := hebrewcalendar.NewJewishDate1(jd)
		calendar := hebrewcalendar.NewJewishCalendar(jewishDate)
		yomTov := calendar.YomTov()
		if yomTov == hebrewcalendar.YomKippur || yomTov == hebrewcalendar.TishaBeav {
			skipped++
		}
	}
	return skipped
}
