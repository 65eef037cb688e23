package exchange

import (
	"encoding/json"
	"fmt"
	"gitlab.com/open-soft/go-rebalance-bot/src/client"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"gitlab.com/open-soft/go-rebalance-bot/src/repository"
	"gitlab.com/open-soft/go-rebalance-bot/src/service"
	"log"
	"strings"
	"sync"
	"time"
)

// StreamListener is the single consumer of the event queue. Producers
// (market and user stream connections) only enqueue raw payloads; every
// state mutation happens here, one event at a time, in arrival order.
type StreamListener struct {
	Binance             client.ExchangeAccountAPIInterface
	StreamConnector     client.StreamConnectorInterface
	PortfolioRepository repository.PortfolioStateInterface
	TradeRepository     repository.TradeStorageInterface
	TradeTracker        service.TradeTrackerInterface

	StreamsDsn   string
	PollInterval time.Duration
	EventChannel chan []byte
	StopChannel  chan struct{}

	connectionMutex sync.Mutex
	connections     []client.StreamConnectionInterface
	connectionId    int64

	stopOnce sync.Once
}

// ListenAll opens the market ticker streams for every tradable symbol in
// the portfolio plus the user data stream.
func (s *StreamListener) ListenAll() error {
	quoteAsset := s.PortfolioRepository.QuoteAsset()

	symbols := make([]string, 0)
	for _, asset := range s.PortfolioRepository.All() {
		if asset.Coin == quoteAsset {
			continue
		}

		symbols = append(symbols, asset.Symbol)
	}

	connections := make([]client.StreamConnectionInterface, 0)

	for _, streams := range client.GetStreamBatch(symbols, []string{"@ticker"}) {
		s.connectionId++
		connection, err := s.StreamConnector.Connect(s.StreamsDsn, streams, s.EventChannel, s.connectionId)
		if err != nil {
			s.closeAll(connections)
			return err
		}

		connections = append(connections, connection)
	}

	userDataStream, err := s.Binance.UserDataStreamStart()
	if err != nil {
		s.closeAll(connections)
		return err
	}

	s.connectionId++
	userConnection, err := s.StreamConnector.Connect(
		fmt.Sprintf("%s/%s", s.StreamsDsn, userDataStream.ListenKey),
		nil,
		s.EventChannel,
		s.connectionId,
	)
	if err != nil {
		s.closeAll(connections)
		return err
	}

	connections = append(connections, userConnection)

	s.connectionMutex.Lock()
	s.connections = connections
	s.connectionMutex.Unlock()

	return nil
}

// Dispatch drains the queue on a fixed cadence. The drain itself never
// blocks, so the loop stays responsive to shutdown.
func (s *StreamListener) Dispatch() {
	ticker := time.NewTicker(s.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.StopChannel:
			return
		case <-ticker.C:
			s.ProcessQueue()
		}
	}
}

// ProcessQueue handles at most one queued event and returns immediately
// when the queue is empty.
func (s *StreamListener) ProcessQueue() {
	select {
	case message := <-s.EventChannel:
		s.HandleMessage(message)
	default:
	}
}

func (s *StreamListener) HandleMessage(message []byte) {
	var header model.StreamEventHeader
	if err := json.Unmarshal(message, &header); err != nil {
		log.Printf("Stream event is not decodable: %s", err.Error())
		return
	}

	switch header.Type {
	case model.EventTypeTicker:
		var event model.PriceTickEvent
		if err := json.Unmarshal(message, &event); err != nil {
			log.Printf("Price tick is not decodable: %s", err.Error())
			return
		}

		s.handlePriceTick(event)
	case model.EventTypeAccountPosition, model.EventTypeAccountInfo:
		var event model.BalanceUpdateEvent
		if err := json.Unmarshal(message, &event); err != nil {
			log.Printf("Balance update is not decodable: %s", err.Error())
			return
		}

		s.handleBalanceUpdate(event)
	case model.EventTypeExecutionReport:
		var event model.ExecutionReportEvent
		if err := json.Unmarshal(message, &event); err != nil {
			log.Printf("Execution report is not decodable: %s", err.Error())
			return
		}

		s.handleExecutionReport(event)
	case model.EventTypeStreamError:
		var event model.StreamErrorEvent
		_ = json.Unmarshal(message, &event)
		log.Printf("Stream error: %s", event.Message)

		s.Resubscribe()
	}
}

func (s *StreamListener) handlePriceTick(event model.PriceTickEvent) {
	coin := s.coinFromSymbol(event.Symbol)

	if err := s.PortfolioRepository.ApplyPriceUpdate(coin, event.BidPrice, event.AskPrice); err != nil {
		log.Printf("[%s] Price update rejected: %s", event.Symbol, err.Error())
	}
}

func (s *StreamListener) handleBalanceUpdate(event model.BalanceUpdateEvent) {
	for _, balance := range event.Balances {
		if err := s.PortfolioRepository.ApplyBalanceUpdate(balance.Asset, balance.Free, balance.Locked); err != nil {
			log.Printf("[%s] Balance update rejected: %s", balance.Asset, err.Error())
		}
	}
}

func (s *StreamListener) handleExecutionReport(event model.ExecutionReportEvent) {
	coin := s.coinFromSymbol(event.Symbol)

	percent := event.FillPercent()
	if event.IsFilled() {
		s.TradeTracker.AddCompleted()

		if err := s.PortfolioRepository.SetStatus(coin, model.AssetStatusCompleted); err != nil {
			log.Printf("[%s] Execution report rejected: %s", event.Symbol, err.Error())
		}
	} else {
		status := fmt.Sprintf("In Progress: %.2f%%", percent)

		if err := s.PortfolioRepository.SetStatus(coin, status); err != nil {
			log.Printf("[%s] Execution report rejected: %s", event.Symbol, err.Error())
		}
	}

	if err := s.TradeRepository.Create(event.ToTradeRecord()); err != nil {
		log.Printf("[%s] Trade record is not saved: %s", event.Symbol, err.Error())
	}
}

// Resubscribe tears down every active stream, discards whatever the dead
// stream generation left in the queue and subscribes from scratch.
func (s *StreamListener) Resubscribe() {
	s.CloseConnections()
	s.DrainQueue()

	for {
		err := s.ListenAll()
		if err == nil {
			log.Printf("Streams resubscribed")
			return
		}

		log.Printf("Resubscription failed: %s, retry...", err.Error())
		time.Sleep(time.Second * 3)
	}
}

func (s *StreamListener) DrainQueue() {
	for {
		select {
		case <-s.EventChannel:
		default:
			return
		}
	}
}

func (s *StreamListener) CloseConnections() {
	s.connectionMutex.Lock()
	connections := s.connections
	s.connections = nil
	s.connectionMutex.Unlock()

	s.closeAll(connections)
}

func (s *StreamListener) Stop() {
	s.stopOnce.Do(func() {
		if s.StopChannel != nil {
			close(s.StopChannel)
		}
	})

	s.CloseConnections()
}

func (s *StreamListener) closeAll(connections []client.StreamConnectionInterface) {
	for _, connection := range connections {
		_ = connection.Close()
	}
}

func (s *StreamListener) coinFromSymbol(symbol string) string {
	return strings.TrimSuffix(symbol, s.PortfolioRepository.QuoteAsset())
}
