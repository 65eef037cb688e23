package client

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	uuid2 "github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"log"
	"sort"
	"strings"
	"sync"
	"time"
)

type ExchangeOrderAPIInterface interface {
	PlaceOrder(symbol string, side string, orderType string, timeInForce string, quantity string, price string) (model.BinanceOrder, error)
	PlaceTestOrder(symbol string, side string, orderType string, timeInForce string, quantity string, price string) error
}

type ExchangeAccountAPIInterface interface {
	GetAccountStatus() (*model.AccountStatus, error)
	GetExchangeData(symbols []string) (*model.ExchangeInfo, error)
	GetTickers(symbols []string) []model.WSTickerPrice
	UserDataStreamStart() (model.UserDataStreamStart, error)
}

type ExchangeAPIInterface interface {
	ExchangeOrderAPIInterface
	ExchangeAccountAPIInterface
}

// Binance talks to the spot WS-API. One connection serves all
// request/response calls; market and user streams are separate
// connections owned by the stream listener.
type Binance struct {
	ApiKey    string
	ApiSecret string

	connection   *websocket.Conn
	Channel      chan []byte
	SocketWriter chan []byte
	RDB          *redis.Client
	Ctx          *context.Context

	WaitMode  bool
	Connected bool
	Lock      *sync.Mutex
}

func (b *Binance) IsWaitingMode() bool {
	b.Lock.Lock()
	isWaiting := b.WaitMode
	b.Lock.Unlock()

	return isWaiting
}

func (b *Binance) SetWaitingMode(isEnabled bool) {
	b.Lock.Lock()
	b.WaitMode = isEnabled
	b.Lock.Unlock()
}

func (b *Binance) CheckWait() {
	for {
		if !b.IsWaitingMode() {
			break
		}
	}
}

func (b *Binance) Connect(address string) {
	connection, _, err := websocket.DefaultDialer.Dial(address, nil)
	if err != nil {
		b.Connected = false
		log.Printf("Binance WS [%s]: %s, wait and reconnect...", address, err.Error())
		time.Sleep(time.Second * 10)
		b.Connect(address)
		return
	}

	// reader channel
	go func() {
		for {
			_, message, err := connection.ReadMessage()
			if err != nil {
				log.Println("read: ", err)

				_ = connection.Close()
				b.Connected = false
				log.Printf("Binance WS, wait and reconnect...")
				time.Sleep(time.Second * 10)
				b.Connect(address)
				return
			}

			b.Channel <- message
		}
	}()

	// writer channel
	go func() {
		for {
			serialized := <-b.SocketWriter
			_ = b.connection.WriteMessage(websocket.TextMessage, serialized)
		}
	}()

	b.connection = connection
	b.Connected = true
	b.connection.SetPingHandler(nil)
}

func (b *Binance) socketRequest(req model.SocketRequest, channel chan []byte) {
	b.CheckWait()

	go func(req model.SocketRequest) {
		for {
			msg := <-b.Channel

			if strings.Contains(string(msg), "Too much request weight used") {
				b.SetWaitingMode(true)

				log.Printf(
					"[%s] Socket error [%s]: %s, wait 1 min and retry...",
					req.Method,
					req.Id,
					string(msg),
				)

				time.Sleep(time.Minute)
				serialized, _ := json.Marshal(req)
				b.SetWaitingMode(false)

				b.SocketWriter <- serialized
				log.Printf("[%s] retried...", req.Id)

				continue
			}

			if strings.Contains(string(msg), req.Id) {
				channel <- msg
				return
			}

			b.Channel <- msg
		}
	}(req)

	serialized, _ := json.Marshal(req)
	b.SocketWriter <- serialized
}

func (b *Binance) GetExchangeData(symbols []string) (*model.ExchangeInfo, error) {
	b.CheckWait()

	channel := make(chan []byte)
	defer close(channel)

	socketRequest := model.SocketRequest{
		Id:     uuid2.New().String(),
		Method: "exchangeInfo",
		Params: make(map[string]any),
	}
	if len(symbols) > 0 {
		socketRequest.Params["symbols"] = symbols
	}
	b.socketRequest(socketRequest, channel)
	message := <-channel

	var response model.BinanceExchangeInfoResponse
	json.Unmarshal(message, &response)

	if response.Error != nil {
		log.Println(socketRequest)
		return &model.ExchangeInfo{}, errors.New(response.Error.GetMessage())
	}

	return &response.Result, nil
}

func (b *Binance) GetAccountStatus() (*model.AccountStatus, error) {
	b.CheckWait()

	channel := make(chan []byte)
	defer close(channel)

	socketRequest := model.SocketRequest{
		Id:     uuid2.New().String(),
		Method: "account.status",
		Params: make(map[string]any),
	}

	socketRequest.Params["apiKey"] = b.ApiKey
	socketRequest.Params["timestamp"] = time.Now().Unix() * 1000
	socketRequest.Params["signature"] = b.signature(socketRequest.Params)
	b.socketRequest(socketRequest, channel)
	message := <-channel

	var response model.AccountStatusResponse
	json.Unmarshal(message, &response)

	if response.Error != nil {
		log.Println(socketRequest)

		return nil, errors.New(response.Error.GetMessage())
	}

	return &response.Result, nil
}

func (b *Binance) GetTickers(symbols []string) []model.WSTickerPrice {
	b.CheckWait()

	channel := make(chan []byte)
	defer close(channel)

	socketRequest := model.SocketRequest{
		Id:     uuid2.New().String(),
		Method: "ticker.price",
		Params: make(map[string]any),
	}

	socketRequest.Params["symbols"] = symbols
	b.socketRequest(socketRequest, channel)
	message := <-channel

	var response model.BinanceTickersPriceResponse
	json.Unmarshal(message, &response)

	if response.Error != nil {
		log.Println(socketRequest)
		list := make([]model.WSTickerPrice, 0)
		return list
	}

	return response.Result
}

func (b *Binance) UserDataStreamStart() (model.UserDataStreamStart, error) {
	b.CheckWait()

	channel := make(chan []byte)
	defer close(channel)

	socketRequest := model.SocketRequest{
		Id:     uuid2.New().String(),
		Method: "userDataStream.start",
		Params: make(map[string]any),
	}
	socketRequest.Params["apiKey"] = b.ApiKey
	b.socketRequest(socketRequest, channel)
	message := <-channel

	var response model.UserDataStreamStartResponse
	json.Unmarshal(message, &response)

	if response.Error != nil {
		return model.UserDataStreamStart{}, errors.New(response.Error.GetMessage())
	}

	return response.Result, nil
}

func (b *Binance) PlaceOrder(symbol string, side string, orderType string, timeInForce string, quantity string, price string) (model.BinanceOrder, error) {
	b.CheckWait()

	channel := make(chan []byte)
	defer close(channel)

	socketRequest := b.orderRequest("order.place", symbol, side, orderType, timeInForce, quantity, price)
	b.socketRequest(socketRequest, channel)
	message := <-channel

	var response model.BinanceOrderResponse
	json.Unmarshal(message, &response)

	if response.Error != nil {
		log.Printf("[%s] Order: %s", symbol, response.Error.GetMessage())

		return model.BinanceOrder{}, errors.New(response.Error.GetMessage())
	}

	return response.Result, nil
}

func (b *Binance) PlaceTestOrder(symbol string, side string, orderType string, timeInForce string, quantity string, price string) error {
	b.CheckWait()

	channel := make(chan []byte)
	defer close(channel)

	socketRequest := b.orderRequest("order.test", symbol, side, orderType, timeInForce, quantity, price)
	b.socketRequest(socketRequest, channel)
	message := <-channel

	var response model.BinanceTestOrderResponse
	json.Unmarshal(message, &response)

	if response.Error != nil {
		log.Printf("[%s] Test Order: %s", symbol, response.Error.GetMessage())

		return errors.New(response.Error.GetMessage())
	}

	return nil
}

// orderRequest builds a signed order payload. Market orders omit
// timeInForce and price, which must be passed as empty strings.
func (b *Binance) orderRequest(method string, symbol string, side string, orderType string, timeInForce string, quantity string, price string) model.SocketRequest {
	socketRequest := model.SocketRequest{
		Id:     uuid2.New().String(),
		Method: method,
		Params: make(map[string]any),
	}
	socketRequest.Params["symbol"] = symbol
	socketRequest.Params["side"] = side
	socketRequest.Params["type"] = orderType
	socketRequest.Params["quantity"] = quantity
	socketRequest.Params["newClientOrderId"] = uuid2.New().String()

	if timeInForce != "" {
		socketRequest.Params["timeInForce"] = timeInForce
	}
	if price != "" {
		socketRequest.Params["price"] = price
	}

	socketRequest.Params["apiKey"] = b.ApiKey
	socketRequest.Params["timestamp"] = time.Now().Unix() * 1000
	socketRequest.Params["signature"] = b.signature(socketRequest.Params)

	return socketRequest
}

func (b *Binance) signature(params map[string]any) string {
	parts := make([]string, 0)

	keys := make([]string, 0, len(params))

	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, params[key]))
	}

	mac := hmac.New(sha256.New, []byte(b.ApiSecret))
	mac.Write([]byte(strings.Join(parts, "&")))
	signingKey := fmt.Sprintf("%x", mac.Sum(nil))

	return signingKey
}
