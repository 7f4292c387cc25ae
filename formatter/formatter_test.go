package formatter

import (
	"testing"

	"github.com/jzman-dev/zmanim-engine/dafyomi"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/parsha"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/jdt"
	"github.com/stretchr/testify/assert"
)

func TestHebrewNumeralAvoidsDivineNameFor15And16(t *testing.T) {
	assert.Equal(t, "ט״ו", hebrewNumeral(15, true, true))
	assert.Equal(t, "ט״ז", hebrewNumeral(16, true, true))
	assert.Equal(t, "קט״ו", hebrewNumeral(115, true, true))
}

func TestHebrewNumeralGershayimPlacement(t *testing.T) {
	assert.Equal(t, "י״א", hebrewNumeral(11, true, true)) // multi-letter: gershayim before last letter
	assert.Equal(t, "א׳", hebrewNumeral(1, true, true))   // single letter: geresh after it
	assert.Equal(t, "יא", hebrewNumeral(11, false, true)) // punctuation suppressed
}

func TestHebrewNumeralLongVsShortYear(t *testing.T) {
	assert.Equal(t, "תשפ״ד", hebrewNumeral(5784, true, false))   // short form drops the thousands digit
	assert.Equal(t, "ה'תשפ״ד", hebrewNumeral(5784, true, true)) // long form keeps it
}

func TestFormatHebrewDateEnglishLeapYearUsesAdarI(t *testing.T) {
	jewishDate := hebrewcalendar.NewJewishDate1(jdt.NewJDate(5784, jdt.Adar, 25)) // 5784 is a leap year
	f := New(Options{Language: English})
	assert.Equal(t, "25 Adar I 5784", f.FormatHebrewDate(jewishDate))
}

func TestFormatHebrewDateEnglishCommonYearPlainAdar(t *testing.T) {
	jewishDate := hebrewcalendar.NewJewishDate1(jdt.NewJDate(5783, jdt.Adar, 25)) // 5783 is a common year
	f := New(Options{Language: English})
	assert.Equal(t, "25 Adar 5783", f.FormatHebrewDate(jewishDate))
}

func TestFormatHebrewDateHebrewScript(t *testing.T) {
	jewishDate := hebrewcalendar.NewJewishDate1(jdt.NewJDate(5784, jdt.TISHREI, 1))
	f := New(Options{Language: Hebrew, UseGershayim: true, LongYear: true})
	result := f.FormatHebrewDate(jewishDate)
	assert.Contains(t, result, "תשרי")
	assert.Contains(t, result, "א׳") // 1 Tishrei
}

func TestFormatParshaEmptyForNone(t *testing.T) {
	f := New(DefaultOptions())
	assert.Equal(t, "", f.FormatParsha(parsha.None))
}

func TestFormatBavliDaf(t *testing.T) {
	f := New(DefaultOptions())
	daf := dafyomi.Daf{TractateIndex: 0, Page: 2}
	assert.Equal(t, "Berachos 2", f.FormatBavliDaf(daf))
}

func TestFormatYerushalmiDafNoDaf(t *testing.T) {
	f := New(DefaultOptions())
	assert.Equal(t, "", f.FormatYerushalmiDaf(dafyomi.Daf{TractateIndex: len(dafyomi.YerushalmiTractates), Page: 0}))
}

func TestFormatHolidayEnglishTitleCased(t *testing.T) {
	f := New(DefaultOptions())
	assert.Equal(t, "Erev Pesach", f.FormatHoliday(hebrewcalendar.ErevPesach))
}
