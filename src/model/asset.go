package model

const (
	AssetStatusWaiting     = "Waiting"
	AssetStatusTradePlaced = "Trade Placed"
	AssetStatusCompleted   = "Completed"
)

// AssetFilter is the immutable per-pair trading constraint set loaded from
// the exchange. TickSize and StepSize are zero only for the quote asset,
// which is never traded against itself.
type AssetFilter struct {
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
	TickSize    float64 `json:"tickSize"`
	MinQuantity float64 `json:"minQty"`
	MaxQuantity float64 `json:"maxQty"`
	StepSize    float64 `json:"stepSize"`
	MinNotional float64 `json:"minNotional"`
}

type AssetState struct {
	Coin             string      `json:"coin"`
	Symbol           string      `json:"symbol"`
	TargetAllocation float64     `json:"targetAllocation"`
	FixedBalance     float64     `json:"fixedBalance"`
	ExchangeBalance  float64     `json:"exchangeBalance"`
	BidPrice         float64     `json:"bidPrice"`
	AskPrice         float64     `json:"askPrice"`
	Filter           AssetFilter `json:"filter"`
	Value            float64     `json:"value"`
	ActualAllocation float64     `json:"actualAllocation"`
	Status           string      `json:"status"`
	LastAction       string      `json:"lastAction"`
}

// AllocationEntry is one row of the user allocation table.
type AllocationEntry struct {
	Coin             string  `json:"coin"`
	TargetAllocation float64 `json:"targetAllocation"`
	FixedBalance     float64 `json:"fixedBalance"`
}
