package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradeType_Valid(t *testing.T) {
	assert.True(t, TradeTypeMarket.Valid())
	assert.True(t, TradeTypeLimit.Valid())
	assert.True(t, TradeTypeStop.Valid())

	// Position is venue-reported only; it cannot be requested.
	assert.False(t, TradeTypePosition.Valid())
	assert.False(t, TradeType("market").Valid())
	assert.False(t, TradeType("").Valid())
}

func TestTradeType_RequiresPrice(t *testing.T) {
	assert.False(t, TradeTypeMarket.RequiresPrice())
	assert.True(t, TradeTypeLimit.RequiresPrice())
	assert.True(t, TradeTypeStop.RequiresPrice())
}

func TestTradeSide_Valid(t *testing.T) {
	assert.True(t, TradeSideBuy.Valid())
	assert.True(t, TradeSideSell.Valid())
	assert.False(t, TradeSide("buy").Valid())
	assert.False(t, TradeSide("").Valid())
}
