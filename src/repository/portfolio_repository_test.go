package repository

import (
	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"testing"
)

func portfolioFixture() []model.AssetState {
	return []model.AssetState{
		{Coin: "BTC", Symbol: "BTCUSDT", TargetAllocation: 30.00, ExchangeBalance: 0.05, FixedBalance: 0.05, BidPrice: 24990.00, AskPrice: 25000.00},
		{Coin: "ETH", Symbol: "ETHUSDT", TargetAllocation: 40.00, ExchangeBalance: 2.00, BidPrice: 2499.00, AskPrice: 2500.00},
		{Coin: "USDT", Symbol: "USDTUSDT", TargetAllocation: 30.00, ExchangeBalance: 2500.00, BidPrice: 1.00, AskPrice: 1.00},
	}
}

func TestInitializeRevaluesPortfolio(t *testing.T) {
	assertion := assert.New(t)
	portfolio := PortfolioRepository{}

	assertion.Nil(portfolio.Initialize("USDT", portfolioFixture()))
	assertion.Equal(10000.00, portfolio.TotalValue())

	btc, err := portfolio.Get("BTC")
	assertion.Nil(err)
	assertion.Equal(2500.00, btc.Value)
	assertion.Equal(25.00, btc.ActualAllocation)

	eth, err := portfolio.Get("ETH")
	assertion.Nil(err)
	assertion.Equal(5000.00, eth.Value)
	assertion.Equal(50.00, eth.ActualAllocation)

	sum := 0.00
	for _, asset := range portfolio.All() {
		sum += asset.ActualAllocation
	}
	assertion.InDelta(100.00, sum, 0.000001)
}

func TestApplyPriceUpdateRecomputesEveryAllocation(t *testing.T) {
	assertion := assert.New(t)
	portfolio := PortfolioRepository{}
	assertion.Nil(portfolio.Initialize("USDT", portfolioFixture()))

	assertion.Nil(portfolio.ApplyPriceUpdate("BTC", 25990.00, 26000.00))

	btc, _ := portfolio.Get("BTC")
	assertion.Equal(26000.00, btc.AskPrice)
	assertion.Equal(25990.00, btc.BidPrice)
	assertion.Equal(2600.00, btc.Value)
	assertion.Equal(10100.00, portfolio.TotalValue())

	// a BTC tick shifts every percentage, not only BTC's
	eth, _ := portfolio.Get("ETH")
	assertion.Equal(5000.00, eth.Value)
	assertion.InDelta(100.0*5000.00/10100.00, eth.ActualAllocation, 0.000001)
}

func TestApplyBalanceUpdateSumsFreeAndLocked(t *testing.T) {
	assertion := assert.New(t)
	portfolio := PortfolioRepository{}
	assertion.Nil(portfolio.Initialize("USDT", portfolioFixture()))

	assertion.Nil(portfolio.ApplyBalanceUpdate("ETH", 1.50, 0.50))

	eth, _ := portfolio.Get("ETH")
	assertion.Equal(2.00, eth.ExchangeBalance)
}

func TestUnknownCoinIsRejected(t *testing.T) {
	assertion := assert.New(t)
	portfolio := PortfolioRepository{}
	assertion.Nil(portfolio.Initialize("USDT", portfolioFixture()))

	assertion.NotNil(portfolio.ApplyPriceUpdate("DOGE", 0.10, 0.11))
	assertion.NotNil(portfolio.ApplyBalanceUpdate("DOGE", 1.00, 0.00))
	assertion.NotNil(portfolio.SetStatus("DOGE", "Waiting"))

	_, err := portfolio.Get("DOGE")
	assertion.NotNil(err)
}

func TestZeroPortfolioValueIsReported(t *testing.T) {
	assertion := assert.New(t)
	portfolio := PortfolioRepository{}

	err := portfolio.Initialize("USDT", []model.AssetState{
		{Coin: "BTC", Symbol: "BTCUSDT", TargetAllocation: 50.00, AskPrice: 25000.00},
		{Coin: "USDT", Symbol: "USDTUSDT", TargetAllocation: 50.00},
	})

	assertion.ErrorIs(err, ErrZeroPortfolioValue)
}

func TestZeroTotalKeepsPreviousAllocations(t *testing.T) {
	assertion := assert.New(t)
	portfolio := PortfolioRepository{}

	assertion.Nil(portfolio.Initialize("USDT", []model.AssetState{
		{Coin: "USDT", Symbol: "USDTUSDT", TargetAllocation: 100.00, ExchangeBalance: 100.00},
	}))

	usdt, _ := portfolio.Get("USDT")
	assertion.Equal(100.00, usdt.ActualAllocation)

	err := portfolio.ApplyBalanceUpdate("USDT", 0.00, 0.00)
	assertion.ErrorIs(err, ErrZeroPortfolioValue)

	usdt, _ = portfolio.Get("USDT")
	assertion.Equal(100.00, usdt.ActualAllocation)
}

func TestRevalueUsesAskPriceAndFixedBalance(t *testing.T) {
	assertion := assert.New(t)

	assets := []*model.AssetState{
		{Coin: "BTC", ExchangeBalance: 1.00, FixedBalance: 1.00, BidPrice: 90.00, AskPrice: 100.00},
		{Coin: "USDT", ExchangeBalance: 800.00},
	}

	total, err := Revalue(assets, "USDT")
	assertion.Nil(err)
	assertion.Equal(1000.00, total)
	assertion.Equal(200.00, assets[0].Value)
	assertion.Equal(20.00, assets[0].ActualAllocation)
	assertion.Equal(80.00, assets[1].ActualAllocation)
}
