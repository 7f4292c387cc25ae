package hebrewcalendar

// yomTovNames gives the English (transliterated) name for each YomTovIndex.
var yomTovNames = map[YomTovIndex]string{
	NoYomTov:          "",
	ErevPesach:        "Erev Pesach",
	Pesach:            "Pesach",
	CholHamoedPesach:  "Chol Hamoed Pesach",
	PesachSheni:       "Pesach Sheni",
	ErevShavuos:       "Erev Shavuos",
	Shavuos:           "Shavuos",
	SeventeenOfTammuz: "Seventeenth of Tammuz",
	TishaBeav:         "Tisha B'Av",
	TuBeav:            "Tu B'Av",
	ErevRoshHashana:   "Erev Rosh Hashana",
	RoshHashana:       "Rosh Hashana",
	FastOfGedalyah:    "Fast of Gedalyah",
	ErevYomKippur:     "Erev Yom Kippur",
	YomKippur:         "Yom Kippur",
	ErevSuccos:        "Erev Succos",
	Succot:            "Succos",
	CholHamoedSuccos:  "Chol Hamoed Succos",
	HoshanaRabba:      "Hoshana Rabba",
	SheminiAtzeres:    "Shemini Atzeres",
	SimchasTorah:      "Simchas Torah",
	CHANUKAH:          "Chanukah",
	TenthOfTeves:      "Tenth of Teves",
	TuBeshvat:         "Tu BiShvat",
	FastOfEsther:      "Fast of Esther",
	PURIM:             "Purim",
	ShushanPurim:      "Shushan Purim",
	PurimKatan:        "Purim Katan",
	YomHashoah:        "Yom HaShoah",
	YomHazikaron:      "Yom HaZikaron",
	YomHaatzmaut:      "Yom HaAtzmaut",
	YomYerushalayim:   "Yom Yerushalayim",
	LagBaomer:         "Lag BaOmer",
	ShushanPurimKatan: "Shushan Purim Katan",
	IsruChag:          "Isru Chag",
}

// Name returns the English transliterated name of the holiday, or the
// empty string for NoYomTov. Formatters needing a different language
// supply their own table keyed the same way; this is the default the
// core exposes so callers never need to switch on the raw int32.
func (t YomTovIndex) Name() string {
	return yomTovNames[t]
}
