package zmanimlib

import (
	"testing"
	"time"

	"github.com/jzman-dev/zmanim-engine/hebrewcalendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeLocationValidatesCoordinates(t *testing.T) {
	_, err := MakeLocation("Nowhere", 91, 0, 0, 0)
	assert.Error(t, err)

	_, err = MakeLocation("Nowhere", 0, 181, 0, 0)
	assert.Error(t, err)

	_, err = MakeLocation("Nowhere", 0, 0, -1, 0)
	assert.Error(t, err)

	loc, err := MakeLocation("Jerusalem", 31.7683, 35.2137, 754, 120)
	require.NoError(t, err)
	assert.Equal(t, "Jerusalem", loc.GeoLocation.LocationName())
}

func TestHebrewFromCivilAndBackRoundTrips(t *testing.T) {
	hebrewDate := HebrewFromCivil(2022, time.May, 28)
	year, month, day := CivilFromHebrew(hebrewDate)
	assert.Equal(t, 2022, int(year))
	assert.Equal(t, time.May, month)
	assert.Equal(t, 28, int(day))
}

func TestZmanimForOrdersSunriseBeforeSunset(t *testing.T) {
	loc, err := MakeLocation("Jerusalem", 31.7683, 35.2137, 754, 180)
	require.NoError(t, err)

	civil := time.Date(2022, time.April, 22, 0, 0, 0, 0, time.UTC)
	z := ZmanimFor(loc, civil)

	require.True(t, z.Sunrise.Ok)
	require.True(t, z.Sunset.Ok)
	assert.True(t, z.Sunset.Time.After(z.Sunrise.Time))
	assert.True(t, z.Chatzos.Time.After(z.Sunrise.Time))
	assert.True(t, z.Chatzos.Time.Before(z.Sunset.Time))
}

func TestAllZmanimIncludesSunriseAndAZmanByName(t *testing.T) {
	loc, err := MakeLocation("Jerusalem", 31.7683, 35.2137, 754, 180)
	require.NoError(t, err)

	civil := time.Date(2022, time.April, 22, 0, 0, 0, 0, time.UTC)
	catalog := AllZmanim(loc, civil)
	assert.NotEmpty(t, catalog)

	found := false
	for _, z := range catalog {
		if z.Label == "Alos19Point8Degrees" {
			found = true
			break
		}
	}
	assert.True(t, found, "catalog should include Alos19Point8Degrees")

	byName, ok := ZmanByName(loc, civil, "Alos19Point8Degrees")
	require.True(t, ok)
	assert.True(t, byName.Ok)

	_, ok = ZmanByName(loc, civil, "NoSuchZman")
	assert.False(t, ok)
}

func TestCalendarInfoForThreadsInIsrael(t *testing.T) {
	hebrewDate := HebrewFromCivil(2022, time.May, 28)
	civil := time.Date(2022, time.May, 28, 0, 0, 0, 0, time.UTC)

	inIsrael := CalendarInfoFor(hebrewDate, civil, true)
	assert.True(t, inIsrael.IsRoshChodesh == hebrewDate.Calendar.IsRoshChodesh())
	assert.Equal(t, parshaBamidbarOrBechukosai(true), inIsrael.Parsha.Name())

	hebrewDateOutside := HebrewFromCivil(2022, time.May, 28)
	outsideIsrael := CalendarInfoFor(hebrewDateOutside, civil, false)
	assert.Equal(t, parshaBamidbarOrBechukosai(false), outsideIsrael.Parsha.Name())

	assert.Nil(t, inIsrael.BavliErr)
	assert.Nil(t, inIsrael.YerushalmiErr)
}

func parshaBamidbarOrBechukosai(inIsrael bool) string {
	if inIsrael {
		return "Bamidbar"
	}
	return "Bechukosai"
}

func TestCalendarInfoForBeforeDafCycleStart(t *testing.T) {
	hebrewDate := HebrewFromCivil(1900, time.January, 1)
	civil := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

	info := CalendarInfoFor(hebrewDate, civil, false)
	assert.Error(t, info.BavliErr)
	assert.Error(t, info.YerushalmiErr)
	assert.Equal(t, hebrewcalendar.NoYomTov, info.Holiday)
}
