package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-rebalance-bot/src/client"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"time"
)

type SymbolFilterProviderInterface interface {
	GetSymbolFilters(symbols []string) (map[string]model.AssetFilter, error)
}

// ExchangeRepository resolves per-symbol trading filters from exchangeInfo
// and keeps them in redis, since the constraints change rarely and the
// endpoint is weight-expensive.
type ExchangeRepository struct {
	RDB        *redis.Client
	Ctx        *context.Context
	CurrentBot *model.Bot
	Binance    client.ExchangeAccountAPIInterface
}

func (e *ExchangeRepository) GetSymbolFilters(symbols []string) (map[string]model.AssetFilter, error) {
	cached := e.RDB.Get(*e.Ctx, e.getFiltersCacheKey()).Val()

	if len(cached) > 0 {
		filterMap := make(map[string]model.AssetFilter)
		err := json.Unmarshal([]byte(cached), &filterMap)

		if err == nil && e.containsAll(filterMap, symbols) {
			return filterMap, nil
		}
	}

	exchangeInfo, err := e.Binance.GetExchangeData(symbols)
	if err != nil {
		return nil, err
	}

	filterMap := make(map[string]model.AssetFilter)
	for _, exchangeSymbol := range exchangeInfo.Symbols {
		if !exchangeSymbol.IsTrading() {
			return nil, fmt.Errorf("symbol %s is not trading", exchangeSymbol.Symbol)
		}

		filterMap[exchangeSymbol.Symbol] = e.parseFilters(exchangeSymbol.Filters)
	}

	if encoded, err := json.Marshal(filterMap); err == nil {
		e.RDB.Set(*e.Ctx, e.getFiltersCacheKey(), encoded, time.Hour)
	}

	return filterMap, nil
}

func (e *ExchangeRepository) parseFilters(filters []model.ExchangeFilter) model.AssetFilter {
	assetFilter := model.AssetFilter{}

	for _, filter := range filters {
		switch filter.FilterType {
		case model.BinanceExchangeFilterTypePrice:
			if filter.MinPrice != nil {
				assetFilter.MinPrice = *filter.MinPrice
			}
			if filter.MaxPrice != nil {
				assetFilter.MaxPrice = *filter.MaxPrice
			}
			if filter.TickSize != nil {
				assetFilter.TickSize = *filter.TickSize
			}
		case model.BinanceExchangeFilterTypeLotSize:
			if filter.MinQuantity != nil {
				assetFilter.MinQuantity = *filter.MinQuantity
			}
			if filter.MaxQuantity != nil {
				assetFilter.MaxQuantity = *filter.MaxQuantity
			}
			if filter.StepSize != nil {
				assetFilter.StepSize = *filter.StepSize
			}
		case model.BinanceExchangeFilterTypeNotional:
			if filter.MinNotional != nil {
				assetFilter.MinNotional = *filter.MinNotional
			}
		}
	}

	return assetFilter
}

func (e *ExchangeRepository) containsAll(filterMap map[string]model.AssetFilter, symbols []string) bool {
	for _, symbol := range symbols {
		if _, ok := filterMap[symbol]; !ok {
			return false
		}
	}

	return true
}

func (e *ExchangeRepository) getFiltersCacheKey() string {
	return fmt.Sprintf("exchange-filters-bot-%d", e.CurrentBot.Id)
}
