package jdt

// monthNames gives the English transliterated name for each JMonth. Adar in
// a common year and Adar I in a leap year share the same constant (Adar);
// callers distinguish them via JYear.IsLeapJYear when naming "Adar I".
var monthNames = map[JMonth]string{
	Nissan:  "Nissan",
	Iyar:    "Iyar",
	Sivan:   "Sivan",
	Tammuz:  "Tammuz",
	Av:      "Av",
	Elul:    "Elul",
	TISHREI: "Tishrei",
	Heshvan: "Cheshvan",
	KISLEV:  "Kislev",
	Tevet:   "Teves",
	SHEVAT:  "Shevat",
	Adar:    "Adar",
	AdarII:  "Adar II",
}

// Name returns the English transliterated name of the month. For Adar in a
// leap year, callers wanting "Adar I" instead of "Adar" do that themselves
// using JYear.IsLeapJYear, since this method has no year context.
func (t JMonth) Name() string {
	return monthNames[t]
}
