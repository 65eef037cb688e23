package repository

import (
	"database/sql"
	"encoding/csv"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"log"
	"os"
	"sync"
)

type TradeStorageInterface interface {
	Create(record model.TradeRecord) error
	SessionTrades() []model.TradeRecord
	ExportCsv(path string) error
}

// TradeRepository is the append-only trade history log. Every record is
// written to mysql as it arrives and kept in memory for the session
// export at shutdown.
type TradeRepository struct {
	DB         *sql.DB
	CurrentBot *model.Bot

	mutex   sync.Mutex
	session []model.TradeRecord
}

func (t *TradeRepository) Create(record model.TradeRecord) error {
	t.mutex.Lock()
	t.session = append(t.session, record)
	t.mutex.Unlock()

	if t.DB == nil {
		return nil
	}

	_, err := t.DB.Exec(`
		INSERT INTO trades SET
			bot_id = ?,
			event_type = ?,
			event_time = ?,
			symbol = ?,
			client_order_id = ?,
			side = ?,
			type = ?,
			time_in_force = ?,
			order_quantity = ?,
			order_price = ?,
			iceberg_quantity = ?,
			original_client_order_id = ?,
			current_execution_type = ?,
			current_order_status = ?,
			order_reject_reason = ?,
			order_id = ?,
			last_executed_quantity = ?,
			cumulative_filled_quantity = ?,
			last_executed_price = ?,
			commission_amount = ?,
			commission_asset = ?,
			transaction_time = ?,
			trade_id = ?,
			order_working = ?,
			maker_side = ?
	`,
		t.CurrentBot.Id,
		record.EventType,
		record.EventTime,
		record.Symbol,
		record.ClientOrderId,
		record.Side,
		record.OrderType,
		record.TimeInForce,
		record.OrderQuantity,
		record.OrderPrice,
		record.IcebergQuantity,
		record.OriginalClientOrderId,
		record.CurrentExecutionType,
		record.CurrentOrderStatus,
		record.OrderRejectReason,
		record.OrderId,
		record.LastExecutedQuantity,
		record.CumulativeFilledQuantity,
		record.LastExecutedPrice,
		record.CommissionAmount,
		record.CommissionAsset,
		record.TransactionTime,
		record.TradeId,
		record.OrderWorking,
		record.MakerSide,
	)

	if err != nil {
		log.Println(err)
		return err
	}

	return nil
}

func (t *TradeRepository) SessionTrades() []model.TradeRecord {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	trades := make([]model.TradeRecord, len(t.session))
	copy(trades, t.session)

	return trades
}

// ExportCsv appends the session's records to the history file, writing
// the header only when the file is created.
func (t *TradeRepository) ExportCsv(path string) error {
	trades := t.SessionTrades()

	if len(trades) == 0 {
		return nil
	}

	writeHeader := false
	if _, err := os.Stat(path); err != nil {
		writeHeader = true
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if writeHeader {
		if err := writer.Write(model.TradeRecordColumns()); err != nil {
			return err
		}
	}

	for _, record := range trades {
		if err := writer.Write(record.Row()); err != nil {
			return err
		}
	}

	return nil
}
