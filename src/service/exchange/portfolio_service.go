package exchange

import (
	"fmt"
	"gitlab.com/open-soft/go-rebalance-bot/src/client"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"gitlab.com/open-soft/go-rebalance-bot/src/repository"
	"gitlab.com/open-soft/go-rebalance-bot/src/validator"
	"log"
)

// PortfolioService assembles the initial asset states from the user
// allocation table and the exchange: free balances, last prices and the
// per-symbol trading filters.
type PortfolioService struct {
	Binance            client.ExchangeAccountAPIInterface
	ExchangeRepository repository.SymbolFilterProviderInterface
	BalanceService     BalanceServiceInterface
	Validator          *validator.AllocationValidator
}

func (p *PortfolioService) Populate(entries []model.AllocationEntry, quoteAsset string) ([]model.AssetState, error) {
	if err := p.Validator.Validate(entries, quoteAsset); err != nil {
		return nil, err
	}

	symbols := make([]string, 0)
	for _, entry := range entries {
		if entry.Coin == quoteAsset {
			continue
		}

		symbols = append(symbols, fmt.Sprintf("%s%s", entry.Coin, quoteAsset))
	}

	filters, err := p.ExchangeRepository.GetSymbolFilters(symbols)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64)
	for _, ticker := range p.Binance.GetTickers(symbols) {
		prices[ticker.Symbol] = ticker.Price
	}

	assets := make([]model.AssetState, 0, len(entries))

	for _, entry := range entries {
		balance, err := p.BalanceService.GetAssetBalance(entry.Coin, false)
		if err != nil {
			return nil, err
		}

		asset := model.AssetState{
			Coin:             entry.Coin,
			TargetAllocation: entry.TargetAllocation,
			FixedBalance:     entry.FixedBalance,
			ExchangeBalance:  balance,
			Status:           model.AssetStatusWaiting,
			LastAction:       model.ActionNone,
		}

		if entry.Coin == quoteAsset {
			asset.Symbol = fmt.Sprintf("%s%s", entry.Coin, entry.Coin)
			asset.BidPrice = 1.0
			asset.AskPrice = 1.0
		} else {
			symbol := fmt.Sprintf("%s%s", entry.Coin, quoteAsset)

			filter, ok := filters[symbol]
			if !ok {
				return nil, fmt.Errorf("[%s] no exchange filters found", symbol)
			}

			if err := p.Validator.ValidateFilter(symbol, filter, false); err != nil {
				return nil, err
			}

			price, ok := prices[symbol]
			if !ok || price <= 0 {
				return nil, fmt.Errorf("[%s] no price available", symbol)
			}

			asset.Symbol = symbol
			asset.Filter = filter
			asset.BidPrice = price
			asset.AskPrice = price
		}

		log.Printf("[%s] Loaded: balance %.8f, fixed %.8f", entry.Coin, asset.ExchangeBalance, asset.FixedBalance)
		assets = append(assets, asset)
	}

	return assets, nil
}
