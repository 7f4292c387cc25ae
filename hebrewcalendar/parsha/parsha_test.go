package parsha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListHasSeventeenGates(t *testing.T) {
	assert.Len(t, List, 17)
	for gate, weeks := range List {
		assert.NotEmptyf(t, weeks, "gate %d should have at least one week", gate)
	}
}

func TestListLengthMatchesGateWeekCount(t *testing.T) {
	// Mirrors the gate lengths declared in init(); weeks = (length+7)/7,
	// and buildList returns one entry per week 0..weeks inclusive.
	gateLengths := map[int]int{
		0: 353, 1: 355, 2: 354, 3: 355, 4: 353, 5: 355,
		6: 383, 7: 385, 8: 383, 9: 385, 10: 383, 11: 385,
		12: 355, 13: 354, 14: 383, 15: 385, 16: 385,
	}
	for gate, length := range gateLengths {
		wantWeeks := (length+7)/7 + 1
		assert.Equalf(t, wantWeeks, len(List[gate]), "gate %d week count", gate)
	}
}

func TestNoParshaRepeatsWithinAGate(t *testing.T) {
	for gate, weeks := range List {
		seen := make(map[Parsha]bool)
		for _, p := range weeks {
			if p == None {
				continue
			}
			assert.Falsef(t, seen[p], "gate %d repeats parsha %d", gate, p)
			seen[p] = true
		}
	}
}

func TestVzosHaberachaNeverAssignedToAShabbos(t *testing.T) {
	// VzosHaberacha is read on Simchas Torah, never folded into the
	// ordinary weekly rotation buildList produces.
	for gate, weeks := range List {
		for _, p := range weeks {
			assert.NotEqualf(t, VzosHaberacha, p, "gate %d assigned VzosHaberacha to a Shabbos", gate)
		}
	}
}

func TestNoneIsTheZeroValue(t *testing.T) {
	assert.Equal(t, Parsha(0), None)
}
