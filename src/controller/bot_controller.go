package controller

import (
	"encoding/json"
	"fmt"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"gitlab.com/open-soft/go-rebalance-bot/src/service"
	"net/http"
)

type BotController struct {
	CurrentBot   *model.Bot
	TradeTracker service.TradeTrackerInterface
}

type healthResponse struct {
	BotUuid         string `json:"botUuid"`
	TradesPlaced    int64  `json:"tradesPlaced"`
	TradesCompleted int64  `json:"tradesCompleted"`
	PendingTrades   bool   `json:"pendingTrades"`
}

func (b *BotController) GetHealthCheckAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	response := healthResponse{
		BotUuid:         b.CurrentBot.BotUuid,
		TradesPlaced:    b.TradeTracker.Placed(),
		TradesCompleted: b.TradeTracker.Completed(),
		PendingTrades:   b.TradeTracker.HasPendingTrades(),
	}

	encoded, _ := json.Marshal(response)
	fmt.Fprintf(w, string(encoded))
}
