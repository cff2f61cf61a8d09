package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "0", FormatQuantity(0))
	assert.Equal(t, "999", FormatQuantity(999))
	assert.Equal(t, "1,000", FormatQuantity(1000))
	assert.Equal(t, "1,234,567", FormatQuantity(1234567))
	assert.Equal(t, "-250", FormatQuantity(-250))
	assert.Equal(t, "-1,234", FormatQuantity(-1234))
}

func TestFormatStake(t *testing.T) {
	assert.Equal(t, "20 pushups", FormatStake(20, "pushups"))
	assert.Equal(t, "1,500 coffee", FormatStake(1500, "coffee"))
	assert.Equal(t, "5 units", FormatStake(5, ""))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50%", FormatPercent(0.5, true))
	assert.Equal(t, "100%", FormatPercent(1.0, true))
	assert.Equal(t, "N/A", FormatPercent(0, false))
}

func TestFormatDiscordTimestamp(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	assert.Equal(t, "<t:1700000000:f>", FormatDiscordTimestamp(ts, "f"))
	assert.Equal(t, "<t:1700000000:R>", FormatDiscordTimestamp(ts, "R"))
}
