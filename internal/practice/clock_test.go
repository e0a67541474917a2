package practice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/daybook/internal/errors"
)

func TestSystemClockTimezoneDefaultsToLocal(t *testing.T) {
	for _, name := range []string{"", "Local"} {
		loc, err := SystemClock{TimezoneName: name}.Timezone("p1")
		require.NoError(t, err)
		assert.Equal(t, time.Local, loc)
	}
}

func TestSystemClockTimezoneLoadsIANAName(t *testing.T) {
	loc, err := SystemClock{TimezoneName: "Asia/Tokyo"}.Timezone("p1")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestSystemClockTimezoneRejectsUnknownName(t *testing.T) {
	_, err := SystemClock{TimezoneName: "Nowhere/Land"}.Timezone("p1")
	require.Error(t, err)
	assert.True(t, errors.IsInput(err))
}
