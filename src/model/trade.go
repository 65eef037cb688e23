package model

import "strconv"

// TradeRecord is one immutable row of the trade history log, built from a
// normalized execution report. Rows are append-only and flushed to the
// history file at session save.
type TradeRecord struct {
	EventType                string  `json:"event_type"`
	EventTime                int64   `json:"event_time"`
	Symbol                   string  `json:"symbol"`
	ClientOrderId            string  `json:"client_order_id"`
	Side                     string  `json:"side"`
	OrderType                string  `json:"type"`
	TimeInForce              string  `json:"time_in_force"`
	OrderQuantity            float64 `json:"order_quantity"`
	OrderPrice               float64 `json:"order_price"`
	IcebergQuantity          float64 `json:"iceberg_quantity"`
	OriginalClientOrderId    string  `json:"original_client_order_id"`
	CurrentExecutionType     string  `json:"current_execution_type"`
	CurrentOrderStatus       string  `json:"current_order_status"`
	OrderRejectReason        string  `json:"order_reject_reason"`
	OrderId                  int64   `json:"order_id"`
	LastExecutedQuantity     float64 `json:"last_executed_quantity"`
	CumulativeFilledQuantity float64 `json:"cumulative_filled_quantity"`
	LastExecutedPrice        float64 `json:"last_executed_price"`
	CommissionAmount         float64 `json:"commission_amount"`
	CommissionAsset          string  `json:"commission_asset"`
	TransactionTime          int64   `json:"transaction_time"`
	TradeId                  int64   `json:"trade_id"`
	OrderWorking             bool    `json:"order_working"`
	MakerSide                bool    `json:"maker_side"`
}

func TradeRecordColumns() []string {
	return []string{
		"event_type",
		"event_time",
		"symbol",
		"client_order_id",
		"side",
		"type",
		"time_in_force",
		"order_quantity",
		"order_price",
		"iceberg_quantity",
		"original_client_order_id",
		"current_execution_type",
		"current_order_status",
		"order_reject_reason",
		"order_id",
		"last_executed_quantity",
		"cumulative_filled_quantity",
		"last_executed_price",
		"commission_amount",
		"commission_asset",
		"transaction_time",
		"trade_id",
		"order_working",
		"maker_side",
	}
}

func (t *TradeRecord) Row() []string {
	return []string{
		t.EventType,
		strconv.FormatInt(t.EventTime, 10),
		t.Symbol,
		t.ClientOrderId,
		t.Side,
		t.OrderType,
		t.TimeInForce,
		strconv.FormatFloat(t.OrderQuantity, 'f', -1, 64),
		strconv.FormatFloat(t.OrderPrice, 'f', -1, 64),
		strconv.FormatFloat(t.IcebergQuantity, 'f', -1, 64),
		t.OriginalClientOrderId,
		t.CurrentExecutionType,
		t.CurrentOrderStatus,
		t.OrderRejectReason,
		strconv.FormatInt(t.OrderId, 10),
		strconv.FormatFloat(t.LastExecutedQuantity, 'f', -1, 64),
		strconv.FormatFloat(t.CumulativeFilledQuantity, 'f', -1, 64),
		strconv.FormatFloat(t.LastExecutedPrice, 'f', -1, 64),
		strconv.FormatFloat(t.CommissionAmount, 'f', -1, 64),
		t.CommissionAsset,
		strconv.FormatInt(t.TransactionTime, 10),
		strconv.FormatInt(t.TradeId, 10),
		strconv.FormatBool(t.OrderWorking),
		strconv.FormatBool(t.MakerSide),
	}
}
