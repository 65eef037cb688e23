package controller

import (
	"encoding/json"
	"fmt"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"gitlab.com/open-soft/go-rebalance-bot/src/repository"
	"gitlab.com/open-soft/go-rebalance-bot/src/utils"
	"net/http"
)

type PortfolioController struct {
	PortfolioRepository repository.PortfolioStateInterface
	TradeRepository     repository.TradeStorageInterface
	Formatter           *utils.Formatter
}

type portfolioRow struct {
	Coin     string `json:"coin"`
	Stored   string `json:"stored"`
	Exchange string `json:"exchange"`
	Target   string `json:"target"`
	Actual   string `json:"actual"`
	Bid      string `json:"bid"`
	Ask      string `json:"ask"`
	Action   string `json:"action"`
	Status   string `json:"status"`
}

type portfolioResponse struct {
	TotalValue float64            `json:"totalValue"`
	Assets     []model.AssetState `json:"assets"`
	Table      []portfolioRow     `json:"table"`
}

func (p *PortfolioController) GetPortfolioAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	assets := p.PortfolioRepository.All()

	table := make([]portfolioRow, 0, len(assets))
	for _, asset := range assets {
		table = append(table, portfolioRow{
			Coin:     asset.Coin,
			Stored:   p.Formatter.RoundDecimal(asset.FixedBalance, asset.Filter.StepSize),
			Exchange: p.Formatter.RoundDecimal(asset.ExchangeBalance, asset.Filter.StepSize),
			Target:   fmt.Sprintf("%v %%", asset.TargetAllocation),
			Actual:   fmt.Sprintf("%.2f %%", p.Formatter.ToFixed(asset.ActualAllocation, 2)),
			Bid:      p.Formatter.RoundDecimal(asset.BidPrice, asset.Filter.TickSize),
			Ask:      p.Formatter.RoundDecimal(asset.AskPrice, asset.Filter.TickSize),
			Action:   asset.LastAction,
			Status:   asset.Status,
		})
	}

	response := portfolioResponse{
		TotalValue: p.PortfolioRepository.TotalValue(),
		Assets:     assets,
		Table:      table,
	}

	encoded, _ := json.Marshal(response)
	fmt.Fprintf(w, string(encoded))
}

func (p *PortfolioController) GetTradeListAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	encoded, _ := json.Marshal(p.TradeRepository.SessionTrades())
	fmt.Fprintf(w, string(encoded))
}
