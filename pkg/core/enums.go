package core

// TradeType identifies how a trade request is executed. Values match the
// venue's wire representation exactly.
type TradeType string

const (
	// TradeTypeMarket executes immediately at the best available price.
	TradeTypeMarket TradeType = "Market"
	// TradeTypeLimit executes at the given price or better.
	TradeTypeLimit TradeType = "Limit"
	// TradeTypeStop triggers once the market reaches the stop price.
	TradeTypeStop TradeType = "Stop"
	// TradeTypePosition is reported by the venue for filled net positions.
	TradeTypePosition TradeType = "Position"
)

// Valid reports whether the value is accepted when creating a trade.
func (t TradeType) Valid() bool {
	switch t {
	case TradeTypeMarket, TradeTypeLimit, TradeTypeStop:
		return true
	}
	return false
}

// RequiresPrice reports whether a trade of this type must carry a price.
func (t TradeType) RequiresPrice() bool {
	return t == TradeTypeLimit || t == TradeTypeStop
}

// TradeSide is the direction of a trade.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "Buy"
	TradeSideSell TradeSide = "Sell"
)

// Valid reports whether the side is one of Buy or Sell.
func (s TradeSide) Valid() bool {
	return s == TradeSideBuy || s == TradeSideSell
}

// CloseType selects the DELETE /trade behavior.
type CloseType string

const (
	// CloseTypeCancel cancels a pending order.
	CloseTypeCancel CloseType = "Cancel"
	// CloseTypeClose closes a filled position, optionally partially.
	CloseTypeClose CloseType = "Close"
	// CloseTypeCloseBy closes a position by an opposite one.
	CloseTypeCloseBy CloseType = "CloseBy"
)

// RequestDirection orders trade-history pagination.
type RequestDirection string

const (
	DirectionForward  RequestDirection = "Forward"
	DirectionBackward RequestDirection = "Backward"
)

// AccountingType describes how the venue books an account's exposure.
type AccountingType string

const (
	// AccountingGross tracks every trade individually.
	AccountingGross AccountingType = "Gross"
	// AccountingNet tracks one aggregate position per symbol.
	AccountingNet AccountingType = "Net"
	// AccountingCash holds plain currency balances without margin.
	AccountingCash AccountingType = "Cash"
)

// TradeStatus is the venue-reported lifecycle state of a trade.
type TradeStatus string

const (
	TradeStatusNew        TradeStatus = "New"
	TradeStatusCalculated TradeStatus = "Calculated"
	TradeStatusFilled     TradeStatus = "Filled"
	TradeStatusCanceled   TradeStatus = "Canceled"
	TradeStatusRejected   TradeStatus = "Rejected"
	TradeStatusExpired    TradeStatus = "Expired"
)
