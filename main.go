package main

import (
	"fmt"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gitlab.com/open-soft/go-rebalance-bot/src/config"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	pwd, _ := os.Getwd()
	if _, err := os.Stat(fmt.Sprintf("%s/.env", pwd)); err == nil {
		log.Println(".env is found, loading variables...")
		err = godotenv.Load()
		if err != nil {
			log.Println(err)
		}
	}

	container := config.InitServiceContainer()
	defer container.Db.Close()

	container.Binance.Connect(os.Getenv("BINANCE_WS_DSN"))

	log.Printf("Bot [%s] is initialized successfully", container.CurrentBot.BotUuid)

	assets, err := container.PortfolioService.Populate(container.AllocationEntries, container.QuoteAsset)
	if err != nil {
		log.Fatal(fmt.Sprintf("Portfolio can't be populated: %s", err.Error()))
	}

	if err := container.PortfolioRepository.Initialize(container.QuoteAsset, assets); err != nil {
		log.Fatal(fmt.Sprintf("Portfolio can't be initialized: %s", err.Error()))
	}

	if err := container.StreamListener.ListenAll(); err != nil {
		log.Fatal(fmt.Sprintf("Streams can't be subscribed: %s", err.Error()))
	}

	go container.StreamListener.Dispatch()

	container.StartHttpServer()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, syscall.SIGINT, syscall.SIGTERM)
	<-sigChannel

	if container.TradeTracker.HasPendingTrades() {
		log.Printf(
			"Shutting down with %d of %d trades still pending",
			container.TradeTracker.Placed()-container.TradeTracker.Completed(),
			container.TradeTracker.Placed(),
		)
	}

	container.StreamListener.Stop()

	if err := container.TradeRepository.ExportCsv("trade_history.csv"); err != nil {
		log.Printf("Trade history is not exported: %s", err.Error())
	} else {
		log.Printf("Trade history is exported to trade_history.csv")
	}
}
