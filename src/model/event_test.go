package model

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPriceTickEventDecoding(t *testing.T) {
	assertion := assert.New(t)

	payload := `{"e":"24hrTicker","E":1672515782136,"s":"BTCUSDT","b":"27000.50000000","a":"27001.10000000"}`

	var header StreamEventHeader
	assertion.Nil(json.Unmarshal([]byte(payload), &header))
	assertion.Equal(EventTypeTicker, header.Type)

	var event PriceTickEvent
	assertion.Nil(json.Unmarshal([]byte(payload), &event))
	assertion.Equal("BTCUSDT", event.Symbol)
	assertion.Equal(27000.50, event.BidPrice)
	assertion.Equal(27001.10, event.AskPrice)
}

func TestBalanceUpdateEventDecoding(t *testing.T) {
	assertion := assert.New(t)

	payload := `{"e":"outboundAccountPosition","E":1564034571105,"B":[{"a":"ETH","f":"10000.000000","l":"0.500000"}]}`

	var event BalanceUpdateEvent
	assertion.Nil(json.Unmarshal([]byte(payload), &event))
	assertion.Len(event.Balances, 1)
	assertion.Equal("ETH", event.Balances[0].Asset)
	assertion.Equal(10000.00, event.Balances[0].Free)
	assertion.Equal(0.50, event.Balances[0].Locked)
}

func TestExecutionReportDecodesSingleLetterCodes(t *testing.T) {
	assertion := assert.New(t)

	payload := `{
		"e":"executionReport","E":1499405658658,"s":"ETHUSDT","c":"mUvoqJxFIILMdfAW5iGSOW",
		"S":"BUY","o":"LIMIT","f":"GTC","q":"1.00000000","p":"0.10264410","F":"0.00000000",
		"g":-1,"C":"","x":"TRADE","X":"PARTIALLY_FILLED","r":"NONE","i":4293153,
		"l":"0.25000000","z":"0.50000000","L":"0.10264410","n":"0.00000506","N":"BNB",
		"T":1499405658657,"t":77,"I":8641984,"w":true,"m":false,"M":true
	}`

	var event ExecutionReportEvent
	assertion.Nil(json.Unmarshal([]byte(payload), &event))

	assertion.Equal("ETHUSDT", event.Symbol)
	assertion.Equal("mUvoqJxFIILMdfAW5iGSOW", event.ClientOrderId)
	assertion.Equal("BUY", event.Side)
	assertion.Equal("LIMIT", event.OrderType)
	assertion.Equal("GTC", event.TimeInForce)
	assertion.Equal(1.00, event.OrderQuantity)
	assertion.Equal(0.1026441, event.OrderPrice)
	assertion.Equal("TRADE", event.CurrentExecutionType)
	assertion.Equal("PARTIALLY_FILLED", event.CurrentOrderStatus)
	assertion.Equal(int64(4293153), event.OrderId)
	assertion.Equal(0.25, event.LastExecutedQuantity)
	assertion.Equal(0.50, event.CumulativeFilledQuantity)
	assertion.Equal("BNB", event.CommissionAsset)
	assertion.Equal(int64(77), event.TradeId)

	// the lowercase codes must survive their uppercase twins in the payload
	assertion.True(event.OrderWorking)
	assertion.False(event.MakerSide)
	assertion.Equal("GTC", event.TimeInForce)
}

func TestExecutionReportFillPercent(t *testing.T) {
	assertion := assert.New(t)

	partial := ExecutionReportEvent{OrderQuantity: 2.00, CumulativeFilledQuantity: 0.50}
	assertion.Equal(25.00, partial.FillPercent())
	assertion.False(partial.IsFilled())

	filled := ExecutionReportEvent{OrderQuantity: 2.00, CumulativeFilledQuantity: 2.00}
	assertion.Equal(100.00, filled.FillPercent())
	assertion.True(filled.IsFilled())

	empty := ExecutionReportEvent{}
	assertion.Equal(0.00, empty.FillPercent())
	assertion.False(empty.IsFilled())
}

func TestExecutionReportToTradeRecord(t *testing.T) {
	assertion := assert.New(t)

	event := ExecutionReportEvent{
		Type:                     EventTypeExecutionReport,
		EventTime:                1499405658658,
		Symbol:                   "ETHUSDT",
		Side:                     "SELL",
		OrderType:                "MARKET",
		OrderQuantity:            3.00,
		CumulativeFilledQuantity: 3.00,
		OrderId:                  42,
		CommissionAsset:          "BNB",
	}

	record := event.ToTradeRecord()
	assertion.Equal(EventTypeExecutionReport, record.EventType)
	assertion.Equal("ETHUSDT", record.Symbol)
	assertion.Equal("SELL", record.Side)
	assertion.Equal(3.00, record.OrderQuantity)
	assertion.Equal(int64(42), record.OrderId)
	assertion.Equal("BNB", record.CommissionAsset)
}
