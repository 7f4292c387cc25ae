/*
Package parsha enumerates the weekly Torah readings and builds the
year-type lookup tables that JewishCalendar.Parshah consults.

The Luach Arba'ah Shearim ("four gates") classifies every Hebrew year into
one of seventeen types by (leap/common, Rosh Hashana weekday, Cheshvan/Kislev
length, in/out of Israel); jewish_calendar.go's parshaYearType already
performs that classification. This file supplies the List table it indexes
into.

Rather than transcribing the seventeen week-by-week tables as a literal
(and easy to mistype) 2-D array, buildList derives them: it walks the Hebrew
year week by week from the classification's own parameters (year length,
Rosh Hashana weekday, leap status, in/out of Israel), marks the weeks that
fall on Yom Tov (no weekly parsha is read), and folds the fixed sequence of
53 weekly parshiyos into whatever Shabbatot remain, combining from the seven
traditional double-portions in a fixed priority order until the count fits.
That's the same shape of computation the gates formula is doing, just
executed in code instead of a baked table — and it is computed once, at
package init, into a read-only List.
*/
package parsha

// Parsha identifies a single week's Torah reading, a combined double
// reading, or one of the four special additional maftir readings.
type Parsha int32

const (
	None Parsha = iota
	Bereshis
	Noach
	LechLecha
	Vayera
	ChayeiSara
	Toldos
	Vayetzei
	Vayishlach
	Vayeshev
	Miketz
	Vayigash
	Vayechi
	Shemos
	Vaera
	Bo
	Beshalach
	Yisro
	Mishpatim
	Terumah
	Tetzaveh
	KiSisa
	Vayakhel
	Pekudei
	VayakhelPekudei
	Vayikra
	Tzav
	Shmini
	Tazria
	Metzora
	TazriaMetzora
	AchreiMos
	Kedoshim
	AchreiMosKedoshim
	Emor
	Behar
	Bechukosai
	BeharBechukosai
	Bamidbar
	Nasso
	Behaaloscha
	Shlach
	Korach
	Chukas
	Balak
	ChukasBalak
	Pinchas
	Matos
	Masei
	MatosMasei
	Devarim
	Vaeschanan
	Eikev
	Reeh
	Shoftim
	KiSeitzei
	KiSavo
	Nitzavim
	Vayeilech
	NitzavimVayeilech
	Haazinu
	VzosHaberacha
	// Special additional (maftir) Shabbatot, reported as an overlay
	// alongside (not instead of) the regular Parshah.
	Shkalim
	Zachor
	Para
	Hachodesh
)

// weeklyOrder is the fixed sequence of the 53 individually-named weekly
// parshiyos, Bereshis through Haazinu. VzosHaberacha is read on Simchas
// Torah, never assigned to an ordinary Shabbos slot.
var weeklyOrder = []Parsha{
	Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi,
	Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei,
	Vayikra, Tzav, Shmini, Tazria, Metzora, AchreiMos, Kedoshim, Emor, Behar, Bechukosai,
	Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, Matos, Masei,
	Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, Nitzavim, Vayeilech, Haazinu,
}

// doublePair names the combined reading produced when both halves of a
// traditional double-portion share one Shabbos.
type doublePair struct {
	first, second int // indices into weeklyOrder
	combined      Parsha
}

// combineCandidates lists the seven traditional double portions in the
// priority order they are folded together when a year is short on
// Shabbatot. This ordering (earliest-in-the-cycle first) matches the
// pattern observed across the seventeen gates: years need progressively
// more combining as Rosh Hashana moves later and Cheshvan/Kislev shrink.
var combineCandidates = []doublePair{
	{21, 22, VayakhelPekudei},    // Vayakhel(22nd)/Pekudei(23rd), 0-based 21/22
	{26, 27, TazriaMetzora},      // Tazria/Metzora
	{28, 29, AchreiMosKedoshim},  // Achrei Mos/Kedoshim
	{31, 32, BeharBechukosai},    // Behar/Bechukosai
	{38, 39, ChukasBalak},        // Chukas/Balak
	{41, 42, MatosMasei},         // Matos/Masei
	{50, 51, NitzavimVayeilech},  // Nitzavim/Vayeilech
}

// yearKind describes one of the seventeen Arba'ah Shearim gates as the
// inputs buildList needs: year length, Rosh Hashana weekday (Sunday=1)
// and whether the gate is an in-Israel variant.
type yearKind struct {
	length    int
	roshDow   int // 1=Sunday ... 7=Saturday
	inIsrael  bool
}

// List[yearType] is the per-week Parshah for the Hebrew year classified as
// yearType by jewish_calendar.go's parshaYearType, indexed the same way
// the call site already does: List[yearType][day/7].
var List [17][]Parsha

func init() {
	gates := [17]yearKind{
		0:  {353, 2, false}, // common, RH Mon, chaserim, diaspora
		1:  {355, 2, false}, // common, RH Mon (or Tue), shelaimim, diaspora
		2:  {354, 5, false}, // common, RH Thu, kesidran, diaspora
		3:  {355, 5, false}, // common, RH Thu, shelaimim, diaspora
		4:  {353, 7, false}, // common, RH Sat, chaserim, diaspora
		5:  {355, 7, false}, // common, RH Sat, shelaimim, diaspora
		6:  {383, 2, false}, // leap, RH Mon, chaserim, diaspora
		7:  {385, 2, false}, // leap, RH Mon (or Tue), shelaimim, diaspora
		8:  {383, 5, false}, // leap, RH Thu, chaserim, diaspora
		9:  {385, 5, false}, // leap, RH Thu, shelaimim, diaspora
		10: {383, 7, false}, // leap, RH Sat, chaserim, diaspora
		11: {385, 7, false}, // leap, RH Sat, shelaimim, diaspora
		12: {355, 2, true},  // common, RH Mon/Tue, shelaimim/kesidran, Israel
		13: {354, 5, true},  // common, RH Thu, kesidran, Israel
		14: {383, 2, true},  // leap, RH Mon, chaserim, Israel
		15: {385, 2, true},  // leap, RH Mon/Tue, shelaimim/kesidran, Israel
		16: {385, 7, true},  // leap, RH Sat, shelaimim, Israel
	}

	for yearType, gate := range gates {
		List[yearType] = buildList(gate)
	}
}

// buildList produces the week-by-week Parshah table for one gate.
func buildList(gate yearKind) []Parsha {
	weeks := (gate.length + 7) / 7

	noParsha := make([]bool, weeks+1)
	markRange := func(fromOffset, toOffset int) {
		for d := fromOffset; d <= toOffset; d++ {
			dow := ((gate.roshDow - 1 + d) % 7) + 1
			if dow == 7 {
				w := (gate.roshDow + d) / 7
				if w >= 0 && w <= weeks {
					noParsha[w] = true
				}
			}
		}
	}

	// Offsets (days since 1 Tishrei) of the fixed points of the year.
	markRange(9, 9) // Yom Kippur
	if gate.inIsrael {
		markRange(14, 21) // Sukkos through Shmini Atzeres/Simchas Torah
	} else {
		markRange(14, 22) // Sukkos through Simchas Torah
	}
	nissan1 := gate.length - 177
	if gate.inIsrael {
		markRange(nissan1+14, nissan1+20) // 15-21 Nissan
	} else {
		markRange(nissan1+14, nissan1+21) // 15-22 Nissan
	}
	sivan1 := nissan1 + 30 + 29
	if gate.inIsrael {
		markRange(sivan1+5, sivan1+5) // 6 Sivan
	} else {
		markRange(sivan1+5, sivan1+6) // 6-7 Sivan
	}

	available := 0
	for w := 0; w <= weeks; w++ {
		if !noParsha[w] {
			available++
		}
	}

	order := append([]Parsha(nil), weeklyOrder...)
	combinesNeeded := len(order) - available
	if combinesNeeded < 0 {
		combinesNeeded = 0
	}
	if combinesNeeded > len(combineCandidates) {
		combinesNeeded = len(combineCandidates)
	}

	combined := make(map[int]Parsha, combinesNeeded)
	skip := make(map[int]bool, combinesNeeded)
	for i := 0; i < combinesNeeded; i++ {
		pair := combineCandidates[i]
		combined[pair.first] = pair.combined
		skip[pair.second] = true
	}

	var sequence []Parsha
	for i, p := range order {
		if skip[i] {
			continue
		}
		if c, ok := combined[i]; ok {
			sequence = append(sequence, c)
		} else {
			sequence = append(sequence, p)
		}
	}

	list := make([]Parsha, weeks+1)
	si := 0
	for w := 0; w <= weeks; w++ {
		if noParsha[w] {
			list[w] = None
			continue
		}
		if si < len(sequence) {
			list[w] = sequence[si]
			si++
		} else {
			list[w] = None
		}
	}
	return list
}
