package formatter

import (
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/parsha"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/jdt"
)

// hebrewMonthNames gives the Hebrew-script name for each JMonth. Adar in a
// leap year is reported as "אדר א" by FormatHebrewDate, not by this table, since the
// table has no year context.
var hebrewMonthNames = map[jdt.JMonth]string{
	jdt.Nissan:  "ניסן",
	jdt.Iyar:    "אייר",
	jdt.Sivan:   "סיון",
	jdt.Tammuz:  "תמוז",
	jdt.Av:      "אב",
	jdt.Elul:    "אלול",
	jdt.TISHREI: "תשרי",
	jdt.Heshvan: "חשון",
	jdt.KISLEV:  "כסלו",
	jdt.Tevet:   "טבת",
	jdt.SHEVAT:  "שבט",
	jdt.Adar:    "אדר",
	jdt.AdarII:  "אדר ב",
}

// hebrewWeekdayNames gives the Hebrew-script name for each JWeekday.
var hebrewWeekdayNames = map[jdt.JWeekday]string{
	jdt.Sunday:    "יום ראשון",
	jdt.Monday:    "יום שני",
	jdt.Tuesday:   "יום שלישי",
	jdt.Wednesday: "יום רביעי",
	jdt.Thursday:  "יום חמישי",
	jdt.Friday:    "יום שישי",
	jdt.Saturday:  "שבת",
}

// hebrewHolidayNames gives the Hebrew-script name for each YomTovIndex.
var hebrewHolidayNames = map[hebrewcalendar.YomTovIndex]string{
	hebrewcalendar.NoYomTov:          "",
	hebrewcalendar.ErevPesach:        "ערב פסח",
	hebrewcalendar.Pesach:            "פסח",
	hebrewcalendar.CholHamoedPesach:  "חול המועד פסח",
	hebrewcalendar.PesachSheni:       "פסח שני",
	hebrewcalendar.ErevShavuos:       "ערב שבועות",
	hebrewcalendar.Shavuos:           "שבועות",
	hebrewcalendar.SeventeenOfTammuz: "שבעה עשר בתמוז",
	hebrewcalendar.TishaBeav:         "תשעה באב",
	hebrewcalendar.TuBeav:            "ט״ו באב",
	hebrewcalendar.ErevRoshHashana:   "ערב ראש השנה",
	hebrewcalendar.RoshHashana:       "ראש השנה",
	hebrewcalendar.FastOfGedalyah:    "צום גדליה",
	hebrewcalendar.ErevYomKippur:     "ערב יום כיפור",
	hebrewcalendar.YomKippur:         "יום כיפור",
	hebrewcalendar.ErevSuccos:        "ערב סוכות",
	hebrewcalendar.Succot:            "סוכות",
	hebrewcalendar.CholHamoedSuccos:  "חול המועד סוכות",
	hebrewcalendar.HoshanaRabba:      "הושענא רבה",
	hebrewcalendar.SheminiAtzeres:    "שמיני עצרת",
	hebrewcalendar.SimchasTorah:      "שמחת תורה",
	hebrewcalendar.CHANUKAH:          "חנוכה",
	hebrewcalendar.TenthOfTeves:      "עשרה בטבת",
	hebrewcalendar.TuBeshvat:         "ט״ו בשבט",
	hebrewcalendar.FastOfEsther:      "תענית אסתר",
	hebrewcalendar.PURIM:             "פורים",
	hebrewcalendar.ShushanPurim:      "שושן פורים",
	hebrewcalendar.PurimKatan:        "פורים קטן",
	hebrewcalendar.YomHashoah:        "יום השואה",
	hebrewcalendar.YomHazikaron:      "יום הזיכרון",
	hebrewcalendar.YomHaatzmaut:      "יום העצמאות",
	hebrewcalendar.YomYerushalayim:   "יום ירושלים",
	hebrewcalendar.LagBaomer:         "ל״ג בעומר",
	hebrewcalendar.ShushanPurimKatan: "שושן פורים קטן",
	hebrewcalendar.IsruChag:          "איסרו חג",
}

// hebrewParshaNames gives the Hebrew-script name for each Parsha.
var hebrewParshaNames = map[parsha.Parsha]string{
	parsha.None:              "",
	parsha.Bereshis:          "בראשית",
	parsha.Noach:             "נח",
	parsha.LechLecha:         "לך לך",
	parsha.Vayera:            "וירא",
	parsha.ChayeiSara:        "חיי שרה",
	parsha.Toldos:            "תולדות",
	parsha.Vayetzei:          "ויצא",
	parsha.Vayishlach:        "וישלח",
	parsha.Vayeshev:          "וישב",
	parsha.Miketz:            "מקץ",
	parsha.Vayigash:          "ויגש",
	parsha.Vayechi:           "ויחי",
	parsha.Shemos:            "שמות",
	parsha.Vaera:             "וארא",
	parsha.Bo:                "בא",
	parsha.Beshalach:         "בשלח",
	parsha.Yisro:             "יתרו",
	parsha.Mishpatim:         "משפטים",
	parsha.Terumah:           "תרומה",
	parsha.Tetzaveh:          "תצוה",
	parsha.KiSisa:            "כי תשא",
	parsha.Vayakhel:          "ויקהל",
	parsha.Pekudei:           "פקודי",
	parsha.VayakhelPekudei:   "ויקהל-פקודי",
	parsha.Vayikra:           "ויקרא",
	parsha.Tzav:              "צו",
	parsha.Shmini:            "שמיני",
	parsha.Tazria:            "תזריע",
	parsha.Metzora:           "מצורע",
	parsha.TazriaMetzora:     "תזריע-מצורע",
	parsha.AchreiMos:         "אחרי מות",
	parsha.Kedoshim:          "קדושים",
	parsha.AchreiMosKedoshim: "אחרי מות-קדושים",
	parsha.Emor:              "אמור",
	parsha.Behar:             "בהר",
	parsha.Bechukosai:        "בחוקותי",
	parsha.BeharBechukosai:   "בהר-בחוקותי",
	parsha.Bamidbar:          "במדבר",
	parsha.Nasso:             "נשא",
	parsha.Behaaloscha:       "בהעלותך",
	parsha.Shlach:            "שלח",
	parsha.Korach:            "קרח",
	parsha.Chukas:            "חוקת",
	parsha.Balak:             "בלק",
	parsha.ChukasBalak:       "חוקת-בלק",
	parsha.Pinchas:           "פנחס",
	parsha.Matos:             "מטות",
	parsha.Masei:             "מסעי",
	parsha.MatosMasei:        "מטות-מסעי",
	parsha.Devarim:           "דברים",
	parsha.Vaeschanan:        "ואתחנן",
	parsha.Eikev:             "עקב",
	parsha.Reeh:              "ראה",
	parsha.Shoftim:           "שופטים",
	parsha.KiSeitzei:         "כי תצא",
	parsha.KiSavo:            "כי תבוא",
	parsha.Nitzavim:          "נצבים",
	parsha.Vayeilech:         "וילך",
	parsha.NitzavimVayeilech: "נצבים-וילך",
	parsha.Haazinu:           "האזינו",
	parsha.VzosHaberacha:     "וזאת הברכה",
	parsha.Shkalim:           "שקלים",
	parsha.Zachor:            "זכור",
	parsha.Para:              "פרה",
	parsha.Hachodesh:         "החודש",
}
