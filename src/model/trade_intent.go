package model

import "fmt"

type TradeDecision string

const (
	DecisionReady             TradeDecision = "Ready"
	DecisionTooSmall          TradeDecision = "TooSmall"
	DecisionTooLarge          TradeDecision = "TooLarge"
	DecisionNotionalTooSmall  TradeDecision = "NotionalTooSmall"
	DecisionInsufficientFunds TradeDecision = "InsufficientFunds"
	DecisionExecutable        TradeDecision = "Executable"
	DecisionRejected          TradeDecision = "Rejected"
)

const (
	ActionNone             = "None"
	ActionReady            = "Ready"
	ActionQuantityTooSmall = "Trade quantity too small"
	ActionQuantityTooLarge = "Trade quantity too large"
	ActionValueTooSmall    = "Trade value too small"
)

const StatusInsufficientFunds = "Insufficient funds for complete rebalance"

// TradeIntent is the outcome of one sizing pass for one asset. It is built
// fresh on every pass and never stored.
type TradeIntent struct {
	Coin            string        `json:"coin"`
	Symbol          string        `json:"symbol"`
	Side            string        `json:"side"`
	RawQuantity     float64       `json:"rawQuantity"`
	Quantity        float64       `json:"quantity"`
	RoundedQuantity string        `json:"roundedQuantity"`
	RoundedPrice    string        `json:"roundedPrice"`
	Decision        TradeDecision `json:"decision"`
	Action          string        `json:"action"`
	Status          string        `json:"status"`
}

func (t *TradeIntent) FormatAction() string {
	return fmt.Sprintf("%s %s", t.Side, t.RoundedQuantity)
}
