package config

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-rebalance-bot/src/client"
	"gitlab.com/open-soft/go-rebalance-bot/src/controller"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"gitlab.com/open-soft/go-rebalance-bot/src/repository"
	"gitlab.com/open-soft/go-rebalance-bot/src/service"
	"gitlab.com/open-soft/go-rebalance-bot/src/service/exchange"
	"gitlab.com/open-soft/go-rebalance-bot/src/utils"
	"gitlab.com/open-soft/go-rebalance-bot/src/validator"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

func InitServiceContainer() Container {
	db, err := sql.Open("mysql", os.Getenv("DATABASE_DSN"))
	if err != nil {
		log.Fatal(fmt.Sprintf("MySQL can't connect: %s", err.Error()))
	}

	db.SetMaxIdleConns(64)
	db.SetMaxOpenConns(64)
	db.SetConnMaxLifetime(time.Minute)

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_DSN"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	binance := client.Binance{
		ApiKey:       os.Getenv("BINANCE_API_KEY"),
		ApiSecret:    os.Getenv("BINANCE_API_SECRET"),
		Channel:      make(chan []byte),
		SocketWriter: make(chan []byte),
		RDB:          rdb,
		Ctx:          &ctx,
		WaitMode:     false,
		Connected:    false,
		Lock:         &sync.Mutex{},
	}

	botRepository := repository.BotRepository{
		DB: db,
	}

	currentBot := botRepository.GetCurrentBot()
	if currentBot == nil {
		botUuid := os.Getenv("BOT_UUID")
		err := botRepository.Create(model.Bot{
			BotUuid: botUuid,
		})
		if err != nil {
			panic(err)
		}

		currentBot = botRepository.GetCurrentBot()
		if currentBot == nil {
			panic(fmt.Sprintf("Can't initialize bot: %s", botUuid))
		}
	}

	entries, err := LoadAllocationFile(os.Getenv("ALLOCATION_FILE"))
	if err != nil {
		log.Fatal(fmt.Sprintf("Allocation file can't be loaded: %s", err.Error()))
	}

	quoteAsset := os.Getenv("QUOTE_ASSET")
	if quoteAsset == "" {
		quoteAsset = "USDT"
	}

	balanceService := exchange.BalanceService{
		Binance:    &binance,
		RDB:        rdb,
		Ctx:        &ctx,
		CurrentBot: currentBot,
	}

	exchangeRepository := repository.ExchangeRepository{
		RDB:        rdb,
		Ctx:        &ctx,
		CurrentBot: currentBot,
		Binance:    &binance,
	}

	portfolioRepository := repository.PortfolioRepository{}

	tradeRepository := repository.TradeRepository{
		DB:         db,
		CurrentBot: currentBot,
	}

	formatter := utils.Formatter{}
	allocationValidator := validator.AllocationValidator{}
	tradeTracker := service.TradeTracker{}

	portfolioService := exchange.PortfolioService{
		Binance:            &binance,
		ExchangeRepository: &exchangeRepository,
		BalanceService:     &balanceService,
		Validator:          &allocationValidator,
	}

	rebalanceService := exchange.RebalanceService{
		Binance:             &binance,
		PortfolioRepository: &portfolioRepository,
		TradeTracker:        &tradeTracker,
		Formatter:           &formatter,
	}

	streamListener := exchange.StreamListener{
		Binance:             &binance,
		StreamConnector:     &client.StreamConnector{},
		PortfolioRepository: &portfolioRepository,
		TradeRepository:     &tradeRepository,
		TradeTracker:        &tradeTracker,
		StreamsDsn:          os.Getenv("BINANCE_STREAM_DSN"),
		PollInterval:        resolvePollInterval(len(entries)),
		EventChannel:        make(chan []byte, 1000),
		StopChannel:         make(chan struct{}),
	}

	portfolioController := controller.PortfolioController{
		PortfolioRepository: &portfolioRepository,
		TradeRepository:     &tradeRepository,
		Formatter:           &formatter,
	}

	rebalanceController := controller.RebalanceController{
		RebalanceService: &rebalanceService,
	}

	botController := controller.BotController{
		CurrentBot:   currentBot,
		TradeTracker: &tradeTracker,
	}

	return Container{
		Db:                  db,
		CurrentBot:          currentBot,
		Binance:             &binance,
		AllocationEntries:   entries,
		QuoteAsset:          quoteAsset,
		BalanceService:      &balanceService,
		ExchangeRepository:  &exchangeRepository,
		PortfolioRepository: &portfolioRepository,
		TradeRepository:     &tradeRepository,
		TradeTracker:        &tradeTracker,
		PortfolioService:    &portfolioService,
		RebalanceService:    &rebalanceService,
		StreamListener:      &streamListener,
		PortfolioController: &portfolioController,
		RebalanceController: &rebalanceController,
		BotController:       &botController,
	}
}

// resolvePollInterval keeps the event cadence at five drains per ticker
// tick for every tracked coin, with a 10ms floor. POLL_INTERVAL_MS
// overrides the derived value.
func resolvePollInterval(coinCount int) time.Duration {
	if override := os.Getenv("POLL_INTERVAL_MS"); override != "" {
		millis, err := strconv.Atoi(override)
		if err == nil && millis > 0 {
			return time.Duration(millis) * time.Millisecond
		}
	}

	if coinCount == 0 {
		return time.Millisecond * 200
	}

	interval := time.Second / time.Duration(5*coinCount)
	if interval < time.Millisecond*10 {
		return time.Millisecond * 10
	}

	return interval
}

type Container struct {
	Db                  *sql.DB
	CurrentBot          *model.Bot
	Binance             *client.Binance
	AllocationEntries   []model.AllocationEntry
	QuoteAsset          string
	BalanceService      *exchange.BalanceService
	ExchangeRepository  *repository.ExchangeRepository
	PortfolioRepository *repository.PortfolioRepository
	TradeRepository     *repository.TradeRepository
	TradeTracker        *service.TradeTracker
	PortfolioService    *exchange.PortfolioService
	RebalanceService    *exchange.RebalanceService
	StreamListener      *exchange.StreamListener
	PortfolioController *controller.PortfolioController
	RebalanceController *controller.RebalanceController
	BotController       *controller.BotController
}

func (c *Container) StartHttpServer() {
	http.HandleFunc("/portfolio", c.PortfolioController.GetPortfolioAction)
	http.HandleFunc("/trade/list", c.PortfolioController.GetTradeListAction)
	http.HandleFunc("/rebalance/preview", c.RebalanceController.PostDryRunAction)
	http.HandleFunc("/rebalance/sell", c.RebalanceController.PostExecuteSellsAction)
	http.HandleFunc("/rebalance/buy", c.RebalanceController.PostExecuteBuysAction)
	http.HandleFunc("/rebalance/order/type", c.RebalanceController.PutOrderTypeAction)
	http.HandleFunc("/health/check", c.BotController.GetHealthCheckAction)

	go func() {
		_ = http.ListenAndServe(":8080", nil)
	}()
}
