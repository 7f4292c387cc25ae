package calculator

import (
	"github.com/jzman-dev/zmanim-engine/helper"
	"github.com/jzman-dev/zmanim-engine/helper/assert"
	"testing"
)

func TestNewSunTimesCalculator(t *testing.T) {
	tag := helper.CurrentFuncName()
	calc := NewSunTimesCalculator()
	calc.CalculatorName()
	assert.Equal(t, tag, "US Naval Almanac Algorithm", calc.CalculatorName())
}
