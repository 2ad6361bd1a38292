package core

// Wire timestamps throughout this package are milliseconds since the Unix
// epoch, matching the venue's JSON representation. Field names mirror the
// venue's PascalCase payloads.

// TradeSession describes the venue's current trading session.
type TradeSession struct {
	PlatformName           string `json:"PlatformName"`
	PlatformCompany        string `json:"PlatformCompany"`
	PlatformAddress        string `json:"PlatformAddress"`
	PlatformTimezoneOffset int    `json:"PlatformTimezoneOffset"`
	SessionID              int64  `json:"SessionId"`
	SessionStatus          string `json:"SessionStatus"`
	StartTime              int64  `json:"StartTime"`
	EndTime                int64  `json:"EndTime"`
	OpenTime               int64  `json:"OpenTime"`
	CloseTime              int64  `json:"CloseTime"`
}

// Currency is a tradable currency listing.
type Currency struct {
	Name        string `json:"Name"`
	Precision   int    `json:"Precision"`
	Description string `json:"Description"`
	Type        string `json:"Type"`
}

// Symbol is a tradable instrument listing.
type Symbol struct {
	Symbol          string  `json:"Symbol"`
	Precision       int     `json:"Precision"`
	TradeAmountStep Decimal `json:"TradeAmountStep"`
	MinTradeAmount  Decimal `json:"MinTradeAmount"`
	MaxTradeAmount  Decimal `json:"MaxTradeAmount"`
	MarginCurrency  string  `json:"MarginCurrency"`
	ProfitCurrency  string  `json:"ProfitCurrency"`
	ContractSize    Decimal `json:"ContractSize"`
	MarginFactor    Decimal `json:"MarginFactor"`
	Description     string  `json:"Description"`
	SwapEnabled     bool    `json:"SwapEnabled"`
	TradeIsAllowed  bool    `json:"TradeIsAllowed"`
}

// PriceLevel is a single quoted price/volume pair.
type PriceLevel struct {
	Type   string  `json:"Type"`
	Price  Decimal `json:"Price"`
	Volume Decimal `json:"Volume"`
}

// Tick is a top-of-book snapshot for a symbol.
type Tick struct {
	Symbol    string      `json:"Symbol"`
	Timestamp int64       `json:"Timestamp"`
	BestBid   *PriceLevel `json:"BestBid,omitempty"`
	BestAsk   *PriceLevel `json:"BestAsk,omitempty"`
}

// Level2 is an order-book depth snapshot for a symbol, distinct from a
// top-of-book Tick.
type Level2 struct {
	Symbol    string       `json:"Symbol"`
	Timestamp int64        `json:"Timestamp"`
	Bids      []PriceLevel `json:"Bids"`
	Asks      []PriceLevel `json:"Asks"`
}

// Account is the venue-side account the credential triple belongs to.
type Account struct {
	ID              int64          `json:"Id"`
	AccountingType  AccountingType `json:"AccountingType"`
	Name            string         `json:"Name"`
	Email           string         `json:"Email"`
	Comment         string         `json:"Comment"`
	Registered      int64          `json:"Registered"`
	IsArchived      bool           `json:"IsArchived"`
	IsBlocked       bool           `json:"IsBlocked"`
	IsReadonly      bool           `json:"IsReadonly"`
	IsValid         bool           `json:"IsValid"`
	IsWebAPIEnabled bool           `json:"IsWebApiEnabled"`
	Leverage        int            `json:"Leverage"`
	Balance         Decimal        `json:"Balance"`
	BalanceCurrency string         `json:"BalanceCurrency"`
	Equity          Decimal        `json:"Equity"`
	Margin          Decimal        `json:"Margin"`
	MarginLevel     Decimal        `json:"MarginLevel"`
}

// Asset is a cash-account currency balance.
type Asset struct {
	Currency     string  `json:"Currency"`
	Amount       Decimal `json:"Amount"`
	FreeAmount   Decimal `json:"FreeAmount"`
	LockedAmount Decimal `json:"LockedAmount"`
}

// Position is a net-account aggregate position for one symbol.
type Position struct {
	ID              int64   `json:"Id"`
	Symbol          string  `json:"Symbol"`
	LongAmount      Decimal `json:"LongAmount"`
	LongPrice       Decimal `json:"LongPrice"`
	ShortAmount     Decimal `json:"ShortAmount"`
	ShortPrice      Decimal `json:"ShortPrice"`
	Commission      Decimal `json:"Commission"`
	AgentCommission Decimal `json:"AgentCommission"`
	Swap            Decimal `json:"Swap"`
	Modified        int64   `json:"Modified"`
}

// Trade is a pending order or an open trade on the account.
type Trade struct {
	ID                int64       `json:"Id"`
	ClientID          string      `json:"ClientId,omitempty"`
	AccountID         int64       `json:"AccountId"`
	Type              TradeType   `json:"Type"`
	InitialType       TradeType   `json:"InitialType,omitempty"`
	Side              TradeSide   `json:"Side"`
	Status            TradeStatus `json:"Status,omitempty"`
	Symbol            string      `json:"Symbol"`
	Price             *Decimal    `json:"Price,omitempty"`
	StopPrice         *Decimal    `json:"StopPrice,omitempty"`
	Amount            Decimal     `json:"Amount"`
	InitialAmount     Decimal     `json:"InitialAmount"`
	StopLoss          *Decimal    `json:"StopLoss,omitempty"`
	TakeProfit        *Decimal    `json:"TakeProfit,omitempty"`
	Commission        Decimal     `json:"Commission"`
	Swap              Decimal     `json:"Swap"`
	ImmediateOrCancel bool        `json:"ImmediateOrCancel,omitempty"`
	Created           int64       `json:"Created,omitempty"`
	Modified          int64       `json:"Modified,omitempty"`
	Filled            int64       `json:"Filled,omitempty"`
	Expired           int64       `json:"Expired,omitempty"`
	Comment           string      `json:"Comment,omitempty"`
}

// CreateTradeRequest is the body of POST /api/v2/trade.
type CreateTradeRequest struct {
	ClientID          string    `json:"ClientId,omitempty"`
	Type              TradeType `json:"Type"`
	Side              TradeSide `json:"Side"`
	Symbol            string    `json:"Symbol"`
	Price             *Decimal  `json:"Price,omitempty"`
	Amount            Decimal   `json:"Amount"`
	StopLoss          *Decimal  `json:"StopLoss,omitempty"`
	TakeProfit        *Decimal  `json:"TakeProfit,omitempty"`
	ExpiredTimestamp  int64     `json:"ExpiredTimestamp,omitempty"`
	ImmediateOrCancel bool      `json:"ImmediateOrCancel,omitempty"`
	Comment           string    `json:"Comment,omitempty"`
}

// ModifyTradeRequest is the body of PUT /api/v2/trade.
type ModifyTradeRequest struct {
	ID               int64    `json:"Id"`
	Price            *Decimal `json:"Price,omitempty"`
	StopLoss         *Decimal `json:"StopLoss,omitempty"`
	TakeProfit       *Decimal `json:"TakeProfit,omitempty"`
	ExpiredTimestamp int64    `json:"ExpiredTimestamp,omitempty"`
	Comment          string   `json:"Comment,omitempty"`
}

// TradeHistoryRequest is the body of POST /api/v2/tradehistory.
type TradeHistoryRequest struct {
	TimestampFrom    int64            `json:"TimestampFrom,omitempty"`
	TimestampTo      int64            `json:"TimestampTo,omitempty"`
	RequestDirection RequestDirection `json:"RequestDirection,omitempty"`
	RequestFromID    string           `json:"RequestFromId,omitempty"`
}

// TradeHistoryRecord is a single account transaction in a history page.
type TradeHistoryRecord struct {
	ID                   string    `json:"Id"`
	TransactionType      string    `json:"TransactionType"`
	TransactionReason    string    `json:"TransactionReason"`
	TransactionTimestamp int64     `json:"TransactionTimestamp"`
	TradeID              int64     `json:"TradeId,omitempty"`
	Symbol               string    `json:"Symbol,omitempty"`
	TradeSide            TradeSide `json:"TradeSide,omitempty"`
	TradeAmount          *Decimal  `json:"TradeAmount,omitempty"`
	TradePrice           *Decimal  `json:"TradePrice,omitempty"`
	Balance              *Decimal  `json:"Balance,omitempty"`
	BalanceMovement      *Decimal  `json:"BalanceMovement,omitempty"`
	Comment              string    `json:"Comment,omitempty"`
}

// TradeHistoryReport is one page of trade history.
type TradeHistoryReport struct {
	From         int64                `json:"From"`
	To           int64                `json:"To"`
	LastID       string               `json:"LastId"`
	IsLastReport bool                 `json:"IsLastReport"`
	TotalReports int64                `json:"TotalReports"`
	Records      []TradeHistoryRecord `json:"Records"`
}
