package dafyomi

import (
	"testing"
	"time"

	"github.com/jzman-dev/zmanim-engine/hebrewcalendar"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/jdt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBavliCycleStartIsBerachosDaf2(t *testing.T) {
	daf, err := Bavli(time.Date(1923, time.September, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Daf{TractateIndex: 0, Page: 2}, daf)
}

func TestBavliBeforeCycleStart(t *testing.T) {
	_, err := Bavli(time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrBeforeCycleStart)
}

func TestBavliShekalimChangeoverIsCycleBoundary(t *testing.T) {
	daf, err := Bavli(time.Date(1975, time.June, 24, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Daf{TractateIndex: 0, Page: 2}, daf)
}

func TestBavliSmallTractatePageOffsets(t *testing.T) {
	offsetIntoCycle := 0
	for i, count := range bavliBlattFrom1975 {
		if i == 35 { // Meilah begins the run of non-1-start tractates
			break
		}
		offsetIntoCycle += count - 1
	}

	daf, err := Bavli(time.Date(1975, time.June, 24, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offsetIntoCycle))
	require.NoError(t, err)
	assert.Equal(t, 35, daf.TractateIndex)
	assert.Equal(t, 22, daf.Page) // Meilah starts at daf 22, not daf 1
}

func TestYerushalmiCycleStartIsBerachosDaf2(t *testing.T) {
	daf, err := Yerushalmi(time.Date(1980, time.February, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Daf{TractateIndex: 0, Page: 2}, daf)
}

func TestYerushalmiBeforeCycleStart(t *testing.T) {
	_, err := Yerushalmi(time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrBeforeCycleStart)
}

func TestYerushalmiSkipsYomKippur(t *testing.T) {
	yomKippur := jdt.NewJDate(5750, jdt.TISHREI, 10)
	jewishDate := hebrewcalendar.NewJewishDate1(yomKippur)
	gDate := jewishDate.GDate()
	civil := time.Date(int(gDate.Year), gDate.Month, int(gDate.Day), 0, 0, 0, 0, time.UTC)

	daf, err := Yerushalmi(civil)
	require.NoError(t, err)
	assert.Equal(t, 39, daf.TractateIndex)
	assert.Equal(t, yerushalmiNoDafIndex, daf.TractateIndex)
	assert.Equal(t, 0, daf.Page)
}

func TestBavliScenarioKislev5685(t *testing.T) {
	daf, err := Bavli(time.Date(1924, time.December, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 5, daf.TractateIndex)
	assert.Equal(t, 2, daf.Page)
	assert.Equal(t, "Yoma", daf.BavliName())
}

func TestBavliScenarioElul5777(t *testing.T) {
	daf, err := Bavli(time.Date(2017, time.September, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 23, daf.TractateIndex)
	assert.Equal(t, 47, daf.Page)
	assert.Equal(t, "Sanhedrin", daf.BavliName())
}

func TestYerushalmiScenarioYomKippur5775(t *testing.T) {
	yomKippur := jdt.NewJDate(5775, jdt.TISHREI, 10)
	jewishDate := hebrewcalendar.NewJewishDate1(yomKippur)
	gDate := jewishDate.GDate()
	civil := time.Date(int(gDate.Year), gDate.Month, int(gDate.Day), 0, 0, 0, 0, time.UTC)

	daf, err := Yerushalmi(civil)
	require.NoError(t, err)
	assert.Equal(t, 39, daf.TractateIndex)
	assert.Equal(t, yerushalmiNoDafIndex, daf.TractateIndex)
	assert.Equal(t, 0, daf.Page)
}

func TestYerushalmiScenarioElul5777(t *testing.T) {
	daf, err := Yerushalmi(time.Date(2017, time.September, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 29, daf.TractateIndex)
	assert.Equal(t, 8, daf.Page)
	assert.Equal(t, "Kiddushin", daf.YerushalmiName())
}

func TestDafNameAccessors(t *testing.T) {
	assert.Equal(t, "Berachos", Daf{TractateIndex: 0, Page: 2}.BavliName())
	assert.Equal(t, "", Daf{TractateIndex: 39, Page: 0}.YerushalmiName())
}
