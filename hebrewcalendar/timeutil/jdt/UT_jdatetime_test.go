package jdt

import (
	"github.com/jzman-dev/zmanim-engine/helper"
	"github.com/jzman-dev/zmanim-engine/helper/assert"
	"testing"
)

func TestNewJDateTime(t *testing.T) {
	tag := helper.CurrentFuncName()
	jdate := NewJDateTime(NewJDate(5781, Nissan, 1), NewMoladTime0())
	assert.Equal(t, tag, JDay(1), jdate.D.Day)
}
