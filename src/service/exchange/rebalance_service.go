package exchange

import (
	"fmt"
	"gitlab.com/open-soft/go-rebalance-bot/src/client"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"gitlab.com/open-soft/go-rebalance-bot/src/repository"
	"gitlab.com/open-soft/go-rebalance-bot/src/service"
	"gitlab.com/open-soft/go-rebalance-bot/src/utils"
	"log"
	"math"
	"sync"
)

// RebalanceService turns allocation deviations into exchange-legal order
// requests. Every pass reads a fresh portfolio snapshot, so a deviation
// computed by an earlier pass is never reused.
type RebalanceService struct {
	Binance             client.ExchangeOrderAPIInterface
	PortfolioRepository repository.PortfolioStateInterface
	TradeTracker        service.TradeTrackerInterface
	Formatter           *utils.Formatter

	orderTypeMutex sync.RWMutex
	orderType      string
}

func (r *RebalanceService) OrderType() string {
	r.orderTypeMutex.RLock()
	defer r.orderTypeMutex.RUnlock()

	if r.orderType == "" {
		return model.OrderTypeMarket
	}

	return r.orderType
}

func (r *RebalanceService) SetOrderType(orderType string) error {
	if orderType != model.OrderTypeMarket && orderType != model.OrderTypeMarketLimit {
		return fmt.Errorf("unknown order type: %s", orderType)
	}

	r.orderTypeMutex.Lock()
	r.orderType = orderType
	r.orderTypeMutex.Unlock()

	return nil
}

// DryRun sizes every asset against the current snapshot and validates the
// executable ones with test orders. Balances are reported, never clamped,
// and the trade counters are not touched.
func (r *RebalanceService) DryRun() []model.TradeIntent {
	assets := r.PortfolioRepository.All()
	totalValue := r.PortfolioRepository.TotalValue()
	quoteAsset := r.PortfolioRepository.QuoteAsset()

	intents := make([]model.TradeIntent, 0, len(assets))

	for _, asset := range assets {
		intent := r.sizeIntent(asset, totalValue, quoteAsset, false)

		if intent.Decision != model.DecisionRejected {
			insufficient := intent.Side == model.SideSell &&
				intent.RawQuantity > asset.ExchangeBalance &&
				asset.Coin != quoteAsset

			decision, action, executable := r.classify(asset, intent, quoteAsset)
			intent.Decision = decision
			intent.Action = action

			if insufficient {
				intent.Status = model.StatusInsufficientFunds

				if decision == model.DecisionExecutable {
					intent.Decision = model.DecisionInsufficientFunds
				}
			}

			if executable {
				if err := r.submitTestOrder(intent); err != nil {
					intent.Decision = model.DecisionRejected
					intent.Status = err.Error()
				}
			}
		}

		r.applyIntent(intent)
		intents = append(intents, intent)
	}

	return intents
}

// ExecuteSells places live sell orders for every asset above its target
// weight. Quantities are clamped to the available exchange balance.
func (r *RebalanceService) ExecuteSells() []model.TradeIntent {
	return r.executePass(model.SideSell)
}

// ExecuteBuys places live buy orders for every asset below its target
// weight.
func (r *RebalanceService) ExecuteBuys() []model.TradeIntent {
	return r.executePass(model.SideBuy)
}

func (r *RebalanceService) executePass(side string) []model.TradeIntent {
	assets := r.PortfolioRepository.All()
	totalValue := r.PortfolioRepository.TotalValue()
	quoteAsset := r.PortfolioRepository.QuoteAsset()

	intents := make([]model.TradeIntent, 0)

	for _, asset := range assets {
		deviation := asset.TargetAllocation - asset.ActualAllocation

		if side == model.SideSell && deviation >= 0 {
			continue
		}
		if side == model.SideBuy && deviation <= 0 {
			continue
		}

		intent := r.sizeIntent(asset, totalValue, quoteAsset, side == model.SideSell)

		if intent.Decision != model.DecisionRejected {
			decision, action, executable := r.classify(asset, intent, quoteAsset)
			intent.Decision = decision
			intent.Action = action

			if executable {
				if err := r.submitOrder(intent); err != nil {
					intent.Decision = model.DecisionRejected
					intent.Status = err.Error()
				} else {
					r.TradeTracker.AddPlaced()
					intent.Status = model.AssetStatusTradePlaced
				}
			}
		}

		r.applyIntent(intent)
		intents = append(intents, intent)
	}

	return intents
}

// sizeIntent converts the allocation deviation into an absolute quantity
// at the side's reference price: the bid for a prospective sell, the ask
// for a prospective buy.
func (r *RebalanceService) sizeIntent(asset model.AssetState, totalValue float64, quoteAsset string, clampToBalance bool) model.TradeIntent {
	deviation := asset.TargetAllocation - asset.ActualAllocation

	side := model.SideBuy
	price := asset.AskPrice
	if deviation < 0 {
		side = model.SideSell
		price = asset.BidPrice
	}

	if asset.Coin == quoteAsset {
		price = 1.0
	}

	intent := model.TradeIntent{
		Coin:   asset.Coin,
		Symbol: asset.Symbol,
		Side:   side,
		Action: model.ActionNone,
	}

	if price <= 0 {
		intent.Decision = model.DecisionRejected
		intent.Status = fmt.Sprintf("no %s price available for %s", side, asset.Symbol)

		return intent
	}

	difference := deviation / 100.0 * totalValue / price
	quantity := math.Abs(difference)
	intent.RawQuantity = quantity

	if clampToBalance && side == model.SideSell && asset.Coin != quoteAsset && quantity > asset.ExchangeBalance {
		quantity = asset.ExchangeBalance
	}

	intent.Quantity = quantity
	intent.RoundedQuantity = r.Formatter.RoundDecimal(quantity, asset.Filter.StepSize)
	intent.RoundedPrice = r.Formatter.RoundDecimal(price, asset.Filter.TickSize)

	return intent
}

// classify applies the exchange compliance checks in precedence order.
// The quote asset is always Ready, since it is never traded against
// itself.
func (r *RebalanceService) classify(asset model.AssetState, intent model.TradeIntent, quoteAsset string) (model.TradeDecision, string, bool) {
	if asset.Coin == quoteAsset {
		return model.DecisionReady, model.ActionReady, false
	}

	price := asset.AskPrice
	if intent.Side == model.SideSell {
		price = asset.BidPrice
	}

	if intent.Quantity < asset.Filter.MinQuantity {
		return model.DecisionTooSmall, model.ActionQuantityTooSmall, false
	}

	if intent.Quantity > asset.Filter.MaxQuantity {
		return model.DecisionTooLarge, model.ActionQuantityTooLarge, false
	}

	if intent.Quantity*price < asset.Filter.MinNotional {
		return model.DecisionNotionalTooSmall, model.ActionValueTooSmall, false
	}

	return model.DecisionExecutable, intent.FormatAction(), true
}

func (r *RebalanceService) submitTestOrder(intent model.TradeIntent) error {
	orderType, timeInForce, price := r.orderParams(intent)

	return r.Binance.PlaceTestOrder(intent.Symbol, intent.Side, orderType, timeInForce, intent.RoundedQuantity, price)
}

func (r *RebalanceService) submitOrder(intent model.TradeIntent) error {
	orderType, timeInForce, price := r.orderParams(intent)

	order, err := r.Binance.PlaceOrder(intent.Symbol, intent.Side, orderType, timeInForce, intent.RoundedQuantity, price)
	if err != nil {
		return err
	}

	log.Printf("[%s] %s order %d placed: %s", intent.Symbol, intent.Side, order.OrderId, intent.RoundedQuantity)

	return nil
}

func (r *RebalanceService) orderParams(intent model.TradeIntent) (string, string, string) {
	if r.OrderType() == model.OrderTypeMarketLimit {
		return model.BinanceOrderTypeLimit, model.TimeInForceGTC, intent.RoundedPrice
	}

	return model.BinanceOrderTypeMarket, "", ""
}

func (r *RebalanceService) applyIntent(intent model.TradeIntent) {
	if intent.Status != "" {
		if err := r.PortfolioRepository.SetStatus(intent.Coin, intent.Status); err != nil {
			log.Printf("[%s] %s", intent.Coin, err.Error())
			return
		}
	}

	_ = r.PortfolioRepository.SetAction(intent.Coin, intent.Action)
}
