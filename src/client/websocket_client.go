package client

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/websocket"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"log"
	"strings"
	"sync"
)

// GetStreamBatch splits subscriptions into groups small enough for a
// single connection.
func GetStreamBatch(symbols []string, events []string) [][]string {
	streamBatch := make([][]string, 0)

	streams := make([]string, 0)

	for _, symbol := range symbols {
		for i := 0; i < len(events); i++ {
			event := events[i]
			streams = append(streams, fmt.Sprintf("%s%s", strings.ToLower(symbol), event))
		}

		if len(streams) >= 24 {
			streamBatch = append(streamBatch, streams)
			streams = make([]string, 0)
		}
	}

	if len(streams) > 0 {
		streamBatch = append(streamBatch, streams)
	}

	return streamBatch
}

type StreamConnectionInterface interface {
	Close() error
}

type StreamConnectorInterface interface {
	Connect(address string, streams []string, events chan<- []byte, connectionId int64) (StreamConnectionInterface, error)
}

type StreamConnector struct {
}

type streamConnection struct {
	connection *websocket.Conn

	mutex  sync.Mutex
	closed bool
}

func (s *streamConnection) Close() error {
	s.mutex.Lock()
	s.closed = true
	s.mutex.Unlock()

	return s.connection.Close()
}

func (s *streamConnection) isClosed() bool {
	s.mutex.Lock()
	closed := s.closed
	s.mutex.Unlock()

	return closed
}

// Connect opens one stream connection and pumps raw payloads into the
// event channel. A read failure is reported as a stream error event so
// that the dispatcher owns the resubscription; the connection never
// reconnects on its own.
func (c *StreamConnector) Connect(address string, streams []string, events chan<- []byte, connectionId int64) (StreamConnectionInterface, error) {
	connection, _, err := websocket.DefaultDialer.Dial(address, nil)
	if err != nil {
		log.Printf("Binance WS Events [%s]: %s", address, err.Error())

		return nil, err
	}

	wrapped := &streamConnection{connection: connection}

	go func() {
		for {
			_, message, err := connection.ReadMessage()
			if err != nil {
				if wrapped.isClosed() {
					return
				}

				log.Printf("Binance WS Events, read [%s]: %s", address, err.Error())
				_ = connection.Close()

				errorEvent := model.StreamErrorEvent{
					Type:    model.EventTypeStreamError,
					Message: err.Error(),
				}
				serialized, _ := json.Marshal(errorEvent)
				events <- serialized

				return
			}

			events <- message
		}
	}()

	if len(streams) > 0 {
		socketRequest := model.SocketStreamsRequest{
			Id:     connectionId,
			Method: "SUBSCRIBE",
			Params: streams,
		}
		serialized, _ := json.Marshal(socketRequest)
		_ = connection.WriteMessage(websocket.TextMessage, serialized)
	}

	return wrapped, nil
}
