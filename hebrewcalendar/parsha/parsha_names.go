package parsha

// names gives the English transliterated name for each Parsha, including
// the combined double-portions and the four special maftir overlays.
var names = map[Parsha]string{
	None:              "",
	Bereshis:          "Bereshis",
	Noach:             "Noach",
	LechLecha:         "Lech Lecha",
	Vayera:            "Vayera",
	ChayeiSara:        "Chayei Sara",
	Toldos:            "Toldos",
	Vayetzei:          "Vayetzei",
	Vayishlach:        "Vayishlach",
	Vayeshev:          "Vayeshev",
	Miketz:            "Miketz",
	Vayigash:          "Vayigash",
	Vayechi:           "Vayechi",
	Shemos:            "Shemos",
	Vaera:             "Vaera",
	Bo:                "Bo",
	Beshalach:         "Beshalach",
	Yisro:             "Yisro",
	Mishpatim:         "Mishpatim",
	Terumah:           "Terumah",
	Tetzaveh:          "Tetzaveh",
	KiSisa:            "Ki Sisa",
	Vayakhel:          "Vayakhel",
	Pekudei:           "Pekudei",
	VayakhelPekudei:   "Vayakhel-Pekudei",
	Vayikra:           "Vayikra",
	Tzav:              "Tzav",
	Shmini:            "Shmini",
	Tazria:            "Tazria",
	Metzora:           "Metzora",
	TazriaMetzora:     "Tazria-Metzora",
	AchreiMos:         "Achrei Mos",
	Kedoshim:          "Kedoshim",
	AchreiMosKedoshim: "Achrei Mos-Kedoshim",
	Emor:              "Emor",
	Behar:             "Behar",
	Bechukosai:        "Bechukosai",
	BeharBechukosai:   "Behar-Bechukosai",
	Bamidbar:          "Bamidbar",
	Nasso:             "Nasso",
	Behaaloscha:       "Behaaloscha",
	Shlach:            "Shlach",
	Korach:            "Korach",
	Chukas:            "Chukas",
	Balak:             "Balak",
	ChukasBalak:       "Chukas-Balak",
	Pinchas:           "Pinchas",
	Matos:             "Matos",
	Masei:             "Masei",
	MatosMasei:        "Matos-Masei",
	Devarim:           "Devarim",
	Vaeschanan:        "Vaeschanan",
	Eikev:             "Eikev",
	Reeh:              "Reeh",
	Shoftim:           "Shoftim",
	KiSeitzei:         "Ki Seitzei",
	KiSavo:            "Ki Savo",
	Nitzavim:          "Nitzavim",
	Vayeilech:         "Vayeilech",
	NitzavimVayeilech: "Nitzavim-Vayeilech",
	Haazinu:           "Haazinu",
	VzosHaberacha:     "Vzos Haberacha",
	Shkalim:           "Shkalim",
	Zachor:            "Zachor",
	Para:              "Para",
	Hachodesh:         "Hachodesh",
}

// Name returns the English transliterated name of the parsha, or the empty
// string for None.
func (p Parsha) Name() string {
	return names[p]
}
