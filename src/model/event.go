package model

const (
	EventTypeTicker          = "24hrTicker"
	EventTypeAccountPosition = "outboundAccountPosition"
	EventTypeAccountInfo     = "outboundAccountInfo"
	EventTypeExecutionReport = "executionReport"
	EventTypeStreamError     = "error"
)

// StreamEventHeader is decoded first to route a raw stream payload
// to its typed event.
type StreamEventHeader struct {
	Type string `json:"e"`
}

type PriceTickEvent struct {
	Type     string  `json:"e"`
	Symbol   string  `json:"s"`
	BidPrice float64 `json:"b,string"`
	AskPrice float64 `json:"a,string"`
}

type EventBalance struct {
	Asset  string  `json:"a"`
	Free   float64 `json:"f,string"`
	Locked float64 `json:"l,string"`
}

type BalanceUpdateEvent struct {
	Type      string         `json:"e"`
	EventTime int64          `json:"E"`
	Balances  []EventBalance `json:"B"`
}

type StreamErrorEvent struct {
	Type    string `json:"e"`
	Message string `json:"m"`
}

// ExecutionReportEvent translates the single-letter field codes of the
// user data stream into named fields. The three reserved fields are kept
// so that json decoding never falls back to a case-insensitive match of
// another letter.
type ExecutionReportEvent struct {
	Type                     string  `json:"e"`
	EventTime                int64   `json:"E"`
	Symbol                   string  `json:"s"`
	ClientOrderId            string  `json:"c"`
	Side                     string  `json:"S"`
	OrderType                string  `json:"o"`
	TimeInForce              string  `json:"f"`
	OrderQuantity            float64 `json:"q,string"`
	OrderPrice               float64 `json:"p,string"`
	IcebergQuantity          float64 `json:"F,string"`
	Reserved1                int64   `json:"g"`
	OriginalClientOrderId    string  `json:"C"`
	CurrentExecutionType     string  `json:"x"`
	CurrentOrderStatus       string  `json:"X"`
	OrderRejectReason        string  `json:"r"`
	OrderId                  int64   `json:"i"`
	LastExecutedQuantity     float64 `json:"l,string"`
	CumulativeFilledQuantity float64 `json:"z,string"`
	LastExecutedPrice        float64 `json:"L,string"`
	CommissionAmount         float64 `json:"n,string"`
	CommissionAsset          string  `json:"N"`
	TransactionTime          int64   `json:"T"`
	TradeId                  int64   `json:"t"`
	Reserved2                int64   `json:"I"`
	OrderWorking             bool    `json:"w"`
	MakerSide                bool    `json:"m"`
	Reserved3                bool    `json:"M"`
}

func (e *ExecutionReportEvent) FillPercent() float64 {
	if e.OrderQuantity == 0.00 {
		return 0.00
	}

	return 100.0 * e.CumulativeFilledQuantity / e.OrderQuantity
}

func (e *ExecutionReportEvent) IsFilled() bool {
	return e.FillPercent() >= 100.0
}

func (e *ExecutionReportEvent) ToTradeRecord() TradeRecord {
	return TradeRecord{
		EventType:                e.Type,
		EventTime:                e.EventTime,
		Symbol:                   e.Symbol,
		ClientOrderId:            e.ClientOrderId,
		Side:                     e.Side,
		OrderType:                e.OrderType,
		TimeInForce:              e.TimeInForce,
		OrderQuantity:            e.OrderQuantity,
		OrderPrice:               e.OrderPrice,
		IcebergQuantity:          e.IcebergQuantity,
		OriginalClientOrderId:    e.OriginalClientOrderId,
		CurrentExecutionType:     e.CurrentExecutionType,
		CurrentOrderStatus:       e.CurrentOrderStatus,
		OrderRejectReason:        e.OrderRejectReason,
		OrderId:                  e.OrderId,
		LastExecutedQuantity:     e.LastExecutedQuantity,
		CumulativeFilledQuantity: e.CumulativeFilledQuantity,
		LastExecutedPrice:        e.LastExecutedPrice,
		CommissionAmount:         e.CommissionAmount,
		CommissionAsset:          e.CommissionAsset,
		TransactionTime:          e.TransactionTime,
		TradeId:                  e.TradeId,
		OrderWorking:             e.OrderWorking,
		MakerSide:                e.MakerSide,
	}
}
