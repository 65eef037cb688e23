package repository

import (
	"errors"
	"fmt"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"sync"
)

var ErrZeroPortfolioValue = errors.New("total portfolio value is zero")

type PortfolioStateInterface interface {
	All() []model.AssetState
	Get(coin string) (model.AssetState, error)
	TotalValue() float64
	QuoteAsset() string
	ApplyPriceUpdate(coin string, bid float64, ask float64) error
	ApplyBalanceUpdate(asset string, free float64, locked float64) error
	SetStatus(coin string, status string) error
	SetAction(coin string, action string) error
}

// PortfolioRepository is the authoritative per-asset state store. All
// mutations are serialized by the stream listener; reads from controllers
// see consistent snapshots only at mutation boundaries.
type PortfolioRepository struct {
	mutex      sync.RWMutex
	quoteAsset string
	assets     map[string]*model.AssetState
	order      []string
	totalValue float64
}

func (p *PortfolioRepository) Initialize(quoteAsset string, assets []model.AssetState) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.quoteAsset = quoteAsset
	p.assets = make(map[string]*model.AssetState)
	p.order = make([]string, 0)

	for _, asset := range assets {
		copied := asset
		p.assets[asset.Coin] = &copied
		p.order = append(p.order, asset.Coin)
	}

	return p.revalue()
}

func (p *PortfolioRepository) QuoteAsset() string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.quoteAsset
}

func (p *PortfolioRepository) TotalValue() float64 {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.totalValue
}

func (p *PortfolioRepository) Get(coin string) (model.AssetState, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	asset, ok := p.assets[coin]
	if !ok {
		return model.AssetState{}, fmt.Errorf("asset %s is not part of the portfolio", coin)
	}

	return *asset, nil
}

func (p *PortfolioRepository) All() []model.AssetState {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	list := make([]model.AssetState, 0, len(p.order))
	for _, coin := range p.order {
		list = append(list, *p.assets[coin])
	}

	return list
}

// ApplyPriceUpdate mutates one asset's prices, then revalues the whole
// portfolio so that no stale total survives the tick.
func (p *PortfolioRepository) ApplyPriceUpdate(coin string, bid float64, ask float64) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	asset, ok := p.assets[coin]
	if !ok {
		return fmt.Errorf("asset %s is not part of the portfolio", coin)
	}

	asset.BidPrice = bid
	asset.AskPrice = ask

	return p.revalue()
}

func (p *PortfolioRepository) ApplyBalanceUpdate(asset string, free float64, locked float64) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	state, ok := p.assets[asset]
	if !ok {
		return fmt.Errorf("asset %s is not part of the portfolio", asset)
	}

	state.ExchangeBalance = free + locked

	return p.revalue()
}

func (p *PortfolioRepository) SetStatus(coin string, status string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	asset, ok := p.assets[coin]
	if !ok {
		return fmt.Errorf("asset %s is not part of the portfolio", coin)
	}

	asset.Status = status

	return nil
}

func (p *PortfolioRepository) SetAction(coin string, action string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	asset, ok := p.assets[coin]
	if !ok {
		return fmt.Errorf("asset %s is not part of the portfolio", coin)
	}

	asset.LastAction = action

	return nil
}

func (p *PortfolioRepository) revalue() error {
	assets := make([]*model.AssetState, 0, len(p.order))
	for _, coin := range p.order {
		assets = append(assets, p.assets[coin])
	}

	total, err := Revalue(assets, p.quoteAsset)
	p.totalValue = total

	return err
}

// Revalue derives each asset's value from its current price and balances,
// then redistributes the actual allocation percentages against the new
// total. The quote asset always prices at 1.0. A zero total leaves the
// allocation percentages untouched and is reported to the caller, since
// dividing by it would poison every percentage.
func Revalue(assets []*model.AssetState, quoteAsset string) (float64, error) {
	total := 0.00

	for _, asset := range assets {
		price := asset.AskPrice
		if asset.Coin == quoteAsset {
			price = 1.0
		}

		asset.Value = price * (asset.ExchangeBalance + asset.FixedBalance)
		total += asset.Value
	}

	if total == 0.00 {
		return 0.00, ErrZeroPortfolioValue
	}

	for _, asset := range assets {
		asset.ActualAllocation = 100.0 * asset.Value / total
	}

	return total, nil
}
