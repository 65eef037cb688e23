package exchange

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"gitlab.com/open-soft/go-rebalance-bot/src/validator"
	"testing"
)

type SymbolFilterProviderMock struct {
	mock.Mock
}

func (m *SymbolFilterProviderMock) GetSymbolFilters(symbols []string) (map[string]model.AssetFilter, error) {
	args := m.Called(symbols)
	return args.Get(0).(map[string]model.AssetFilter), args.Error(1)
}

type BalanceServiceMock struct {
	mock.Mock
}

func (m *BalanceServiceMock) GetAssetBalance(asset string, cache bool) (float64, error) {
	args := m.Called(asset, cache)
	return args.Get(0).(float64), args.Error(1)
}

func (m *BalanceServiceMock) InvalidateBalanceCache(asset string) {
	m.Called(asset)
}

func portfolioServiceFixture() (*PortfolioService, *ExchangeAccountAPIMock, *SymbolFilterProviderMock, *BalanceServiceMock) {
	binanceMock := new(ExchangeAccountAPIMock)
	filterMock := new(SymbolFilterProviderMock)
	balanceMock := new(BalanceServiceMock)

	portfolioService := &PortfolioService{
		Binance:            binanceMock,
		ExchangeRepository: filterMock,
		BalanceService:     balanceMock,
		Validator:          &validator.AllocationValidator{},
	}

	return portfolioService, binanceMock, filterMock, balanceMock
}

func TestPopulateBuildsAssetStates(t *testing.T) {
	assertion := assert.New(t)
	portfolioService, binanceMock, filterMock, balanceMock := portfolioServiceFixture()

	filter := model.AssetFilter{
		TickSize:    0.01,
		MinQuantity: 0.0001,
		MaxQuantity: 1000.00,
		StepSize:    0.0001,
		MinNotional: 5.00,
	}

	filterMock.On("GetSymbolFilters", []string{"BTCUSDT"}).Return(map[string]model.AssetFilter{"BTCUSDT": filter}, nil)
	binanceMock.On("GetTickers", []string{"BTCUSDT"}).Return([]model.WSTickerPrice{{Symbol: "BTCUSDT", Price: 25000.00}})
	balanceMock.On("GetAssetBalance", "BTC", false).Return(0.50, nil)
	balanceMock.On("GetAssetBalance", "USDT", false).Return(1000.00, nil)

	assets, err := portfolioService.Populate([]model.AllocationEntry{
		{Coin: "BTC", TargetAllocation: 60.00, FixedBalance: 0.25},
		{Coin: "USDT", TargetAllocation: 40.00},
	}, "USDT")

	assertion.Nil(err)
	assertion.Len(assets, 2)

	assertion.Equal("BTCUSDT", assets[0].Symbol)
	assertion.Equal(0.50, assets[0].ExchangeBalance)
	assertion.Equal(0.25, assets[0].FixedBalance)
	assertion.Equal(25000.00, assets[0].BidPrice)
	assertion.Equal(25000.00, assets[0].AskPrice)
	assertion.Equal(filter, assets[0].Filter)
	assertion.Equal(model.AssetStatusWaiting, assets[0].Status)
	assertion.Equal(model.ActionNone, assets[0].LastAction)

	assertion.Equal("USDTUSDT", assets[1].Symbol)
	assertion.Equal(1.00, assets[1].BidPrice)
	assertion.Equal(1.00, assets[1].AskPrice)
	assertion.Equal(1000.00, assets[1].ExchangeBalance)
}

func TestPopulateRejectsBrokenAllocation(t *testing.T) {
	assertion := assert.New(t)
	portfolioService, _, _, _ := portfolioServiceFixture()

	_, err := portfolioService.Populate([]model.AllocationEntry{
		{Coin: "BTC", TargetAllocation: 60.00},
	}, "USDT")

	assertion.NotNil(err)
}

func TestPopulateFailsOnMissingFilter(t *testing.T) {
	assertion := assert.New(t)
	portfolioService, binanceMock, filterMock, balanceMock := portfolioServiceFixture()

	filterMock.On("GetSymbolFilters", []string{"BTCUSDT"}).Return(map[string]model.AssetFilter{}, nil)
	binanceMock.On("GetTickers", []string{"BTCUSDT"}).Return([]model.WSTickerPrice{{Symbol: "BTCUSDT", Price: 25000.00}})
	balanceMock.On("GetAssetBalance", "BTC", false).Return(0.50, nil)

	_, err := portfolioService.Populate([]model.AllocationEntry{
		{Coin: "BTC", TargetAllocation: 60.00},
		{Coin: "USDT", TargetAllocation: 40.00},
	}, "USDT")

	assertion.NotNil(err)
	assertion.Contains(err.Error(), "no exchange filters found")
}

func TestPopulateFailsOnMissingPrice(t *testing.T) {
	assertion := assert.New(t)
	portfolioService, binanceMock, filterMock, balanceMock := portfolioServiceFixture()

	filterMock.On("GetSymbolFilters", []string{"BTCUSDT"}).Return(map[string]model.AssetFilter{
		"BTCUSDT": {TickSize: 0.01, StepSize: 0.0001},
	}, nil)
	binanceMock.On("GetTickers", []string{"BTCUSDT"}).Return([]model.WSTickerPrice{})
	balanceMock.On("GetAssetBalance", "BTC", false).Return(0.50, nil)

	_, err := portfolioService.Populate([]model.AllocationEntry{
		{Coin: "BTC", TargetAllocation: 60.00},
		{Coin: "USDT", TargetAllocation: 40.00},
	}, "USDT")

	assertion.NotNil(err)
	assertion.Contains(err.Error(), "no price available")
}

func TestPopulateFailsOnBalanceError(t *testing.T) {
	assertion := assert.New(t)
	portfolioService, binanceMock, filterMock, balanceMock := portfolioServiceFixture()

	filterMock.On("GetSymbolFilters", []string{"BTCUSDT"}).Return(map[string]model.AssetFilter{
		"BTCUSDT": {TickSize: 0.01, StepSize: 0.0001},
	}, nil)
	binanceMock.On("GetTickers", []string{"BTCUSDT"}).Return([]model.WSTickerPrice{{Symbol: "BTCUSDT", Price: 25000.00}})
	balanceMock.On("GetAssetBalance", "BTC", false).Return(0.00, errors.New("Invalid API-key, IP, or permissions for action"))

	_, err := portfolioService.Populate([]model.AllocationEntry{
		{Coin: "BTC", TargetAllocation: 60.00},
		{Coin: "USDT", TargetAllocation: 40.00},
	}, "USDT")

	assertion.NotNil(err)
	assertion.Contains(err.Error(), "Invalid API-key")
}
