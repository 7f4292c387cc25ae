package formatter

import "strings"

// hebrewDigits maps the numeric value of each Hebrew numeral letter, in
// descending order, to the letter itself. 15 and 16 are special-cased by
// hebrewNumeral to avoid spelling the divine name (ט"ו / ט"ז instead of
// יה / יו).
var hebrewDigits = []struct {
	value  int
	letter string
}{
	{400, "ת"}, {300, "ש"}, {200, "ר"}, {100, "ק"},
	{90, "צ"}, {80, "פ"}, {70, "ע"}, {60, "ס"}, {50, "נ"}, {40, "מ"}, {30, "ל"}, {20, "כ"}, {10, "י"},
	{9, "ט"}, {8, "ח"}, {7, "ז"}, {6, "ו"}, {5, "ה"}, {4, "ד"}, {3, "ג"}, {2, "ב"}, {1, "א"},
}

// hebrewNumeral renders a positive number as a Hebrew numeral, spelling the
// part below 1000 in letters. The thousands digit, when present, is rendered as a single-letter prefix
// separated by an apostrophe (e.g. year 5784 -> "ה'תשפ״ד"); longForm
// controls whether that thousands prefix is included at all.
func hebrewNumeral(n int, useGershayim bool, longForm bool) string {
	if n <= 0 {
		return ""
	}

	var prefix string
	if n >= 1000 {
		thousands := n / 1000
		n -= thousands * 1000
		if longForm {
			prefix = hebrewLetters(thousands, false) + "'"
		}
	}

	letters := hebrewLetters(n, true)
	if letters == "" {
		return prefix
	}
	if useGershayim {
		letters = insertGereshMarks(letters)
	}
	return prefix + letters
}

// hebrewLetters greedily decomposes n (0-999) into numeral letters,
// special-casing 15 and 16.
func hebrewLetters(n int, special1516 bool) string {
	var b strings.Builder
	remaining := n
	if special1516 && (remaining%100 == 15 || remaining%100 == 16) {
		hundreds := (remaining / 100) * 100
		b.WriteString(hebrewLetters(hundreds, false))
		if remaining%100 == 15 {
			b.WriteString("טו")
		} else {
			b.WriteString("טז")
		}
		return b.String()
	}
	for _, d := range hebrewDigits {
		for remaining >= d.value {
			b.WriteString(d.letter)
			remaining -= d.value
		}
	}
	return b.String()
}

// insertGereshMarks punctuates a bare letter run with a geresh (׳) after a
// single letter, or a gershayim (״) before the last letter of a multi-letter
// run.
func insertGereshMarks(letters string) string {
	runes := []rune(letters)
	if len(runes) == 1 {
		return string(runes) + "׳"
	}
	return string(runes[:len(runes)-1]) + "״" + string(runes[len(runes)-1:])
}
