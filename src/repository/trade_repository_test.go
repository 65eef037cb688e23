package repository

import (
	"encoding/csv"
	"fmt"
	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"os"
	"testing"
)

func tradeRecordFixture(orderId int64) model.TradeRecord {
	return model.TradeRecord{
		EventType:                model.EventTypeExecutionReport,
		EventTime:                1499405658658,
		Symbol:                   "BTCUSDT",
		ClientOrderId:            fmt.Sprintf("order-%d", orderId),
		Side:                     "SELL",
		OrderType:                "MARKET",
		OrderQuantity:            0.5,
		OrderId:                  orderId,
		CumulativeFilledQuantity: 0.5,
		CurrentOrderStatus:       "FILLED",
		OrderWorking:             true,
	}
}

func TestSessionTradesAreAppendOnly(t *testing.T) {
	assertion := assert.New(t)
	repository := TradeRepository{}

	assertion.Nil(repository.Create(tradeRecordFixture(1)))
	assertion.Nil(repository.Create(tradeRecordFixture(2)))

	trades := repository.SessionTrades()
	assertion.Len(trades, 2)
	assertion.Equal(int64(1), trades[0].OrderId)
	assertion.Equal(int64(2), trades[1].OrderId)
}

func TestExportCsvWritesHeaderOnce(t *testing.T) {
	assertion := assert.New(t)
	path := fmt.Sprintf("%s/trade_history.csv", t.TempDir())

	repository := TradeRepository{}
	assertion.Nil(repository.Create(tradeRecordFixture(1)))
	assertion.Nil(repository.ExportCsv(path))

	// a second session appends rows without repeating the header
	second := TradeRepository{}
	assertion.Nil(second.Create(tradeRecordFixture(2)))
	assertion.Nil(second.Create(tradeRecordFixture(3)))
	assertion.Nil(second.ExportCsv(path))

	file, err := os.Open(path)
	assertion.Nil(err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	assertion.Nil(err)
	assertion.Len(rows, 4)
	assertion.Equal(model.TradeRecordColumns(), rows[0])
	assertion.Equal("BTCUSDT", rows[1][2])
	assertion.Equal("order-1", rows[1][3])
	assertion.Equal("order-3", rows[3][3])
}

func TestExportCsvSkipsEmptySession(t *testing.T) {
	assertion := assert.New(t)
	path := fmt.Sprintf("%s/trade_history.csv", t.TempDir())

	repository := TradeRepository{}
	assertion.Nil(repository.ExportCsv(path))

	_, err := os.Stat(path)
	assertion.True(os.IsNotExist(err))
}
