package model

import "strings"

type SocketRequest struct {
	Id     string         `json:"id"`
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

type SocketStreamsRequest struct {
	Id     int64    `json:"id"`
	Method string   `json:"method"`
	Params []string `json:"params"`
}

type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"msg"`
}

const BinanceErrorInvalidAPIKeyOrPermissions = "binance_error_invalid_api_key_or_permissions"
const BinanceErrorInsufficientBalance = "binance_error_insufficient_balance"

func (e *Error) GetMessage() string {
	if strings.Contains(e.Message, "Invalid API-key, IP, or permissions for action") {
		return BinanceErrorInvalidAPIKeyOrPermissions
	}

	if strings.Contains(e.Message, "insufficient balance") {
		return BinanceErrorInsufficientBalance
	}

	return e.Message
}

func (e *Error) IsApiKeyOrPermissions() bool {
	return BinanceErrorInvalidAPIKeyOrPermissions == e.GetMessage()
}

func (e *Error) IsInsufficientBalance() bool {
	return BinanceErrorInsufficientBalance == e.GetMessage()
}

type BinanceOrderResponse struct {
	Id     string       `json:"id"`
	Status int64        `json:"status"`
	Result BinanceOrder `json:"result"`
	Error  *Error       `json:"error"`
}

// BinanceTestOrderResponse has an empty result object on success.
type BinanceTestOrderResponse struct {
	Id     string `json:"id"`
	Status int64  `json:"status"`
	Error  *Error `json:"error"`
}

const BinanceExchangeFilterTypePrice = "PRICE_FILTER"
const BinanceExchangeFilterTypeLotSize = "LOT_SIZE"
const BinanceExchangeFilterTypeNotional = "NOTIONAL"

type ExchangeFilter struct {
	FilterType  string   `json:"filterType"`
	MinPrice    *float64 `json:"minPrice,string"`
	MaxPrice    *float64 `json:"maxPrice,string"`
	TickSize    *float64 `json:"tickSize,string"`
	MinQuantity *float64 `json:"minQty,string"`
	MaxQuantity *float64 `json:"maxQty,string"`
	StepSize    *float64 `json:"stepSize,string"`
	MinNotional *float64 `json:"minNotional,string"`
	MaxNotional *float64 `json:"maxNotional,string"`
}

type ExchangeSymbol struct {
	Symbol     string           `json:"symbol"`
	Status     string           `json:"status"`
	BaseAsset  string           `json:"baseAsset"`
	QuoteAsset string           `json:"quoteAsset"`
	Filters    []ExchangeFilter `json:"filters"`
}

func (e *ExchangeSymbol) IsTrading() bool {
	return e.Status == "TRADING"
}

type ExchangeInfo struct {
	Timezone   string           `json:"timezone"`
	ServerTime int64            `json:"serverTime"`
	Symbols    []ExchangeSymbol `json:"symbols"`
}

type BinanceExchangeInfoResponse struct {
	Id     string       `json:"id"`
	Status int64        `json:"status"`
	Result ExchangeInfo `json:"result"`
	Error  *Error       `json:"error"`
}

type UserDataStreamStart struct {
	ListenKey string `json:"listenKey"`
}

type UserDataStreamStartResponse struct {
	Id     string              `json:"id"`
	Status int64               `json:"status"`
	Result UserDataStreamStart `json:"result"`
	Error  *Error              `json:"error"`
}

type Balance struct {
	Asset  string  `json:"asset"`
	Free   float64 `json:"free,string"`
	Locked float64 `json:"locked,string"`
}

type AccountStatus struct {
	Balances []Balance `json:"balances"`
}

type AccountStatusResponse struct {
	Id     string        `json:"id"`
	Status int64         `json:"status"`
	Result AccountStatus `json:"result"`
	Error  *Error        `json:"error"`
}

type WSTickerPrice struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price,string"`
}

type BinanceTickersPriceResponse struct {
	Id     string          `json:"id"`
	Status int64           `json:"status"`
	Result []WSTickerPrice `json:"result"`
	Error  *Error          `json:"error"`
}
