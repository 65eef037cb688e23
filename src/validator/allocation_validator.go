package validator

import (
	"fmt"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"math"
)

const allocationSumTolerance = 0.000001

type AllocationValidator struct {
}

// Validate rejects a broken allocation table before any trading begins.
func (v *AllocationValidator) Validate(entries []model.AllocationEntry, quoteAsset string) error {
	if len(entries) == 0 {
		return fmt.Errorf("allocation table is empty")
	}

	seen := make(map[string]bool)
	sum := 0.00
	quoteFound := false

	for _, entry := range entries {
		if entry.Coin == "" {
			return fmt.Errorf("allocation entry without a coin")
		}

		if seen[entry.Coin] {
			return fmt.Errorf("coin %s is listed twice", entry.Coin)
		}
		seen[entry.Coin] = true

		if entry.TargetAllocation < 0 || entry.TargetAllocation > 100 {
			return fmt.Errorf("[%s] target allocation %.4f is out of range", entry.Coin, entry.TargetAllocation)
		}

		if entry.FixedBalance < 0 {
			return fmt.Errorf("[%s] fixed balance %.8f is negative", entry.Coin, entry.FixedBalance)
		}

		if entry.Coin == quoteAsset {
			quoteFound = true
		}

		sum += entry.TargetAllocation
	}

	if math.Abs(sum-100.0) > allocationSumTolerance {
		return fmt.Errorf("target allocations sum to %.6f, expected 100", sum)
	}

	if !quoteFound {
		return fmt.Errorf("quote asset %s is not part of the allocation table", quoteAsset)
	}

	return nil
}

// ValidateFilter rejects malformed exchange constraints. A zero tick or
// step size is allowed only for the quote asset.
func (v *AllocationValidator) ValidateFilter(symbol string, filter model.AssetFilter, isQuoteAsset bool) error {
	if filter.MinPrice < 0 || filter.MaxPrice < 0 || filter.TickSize < 0 ||
		filter.MinQuantity < 0 || filter.MaxQuantity < 0 || filter.StepSize < 0 ||
		filter.MinNotional < 0 {
		return fmt.Errorf("[%s] filter contains negative values", symbol)
	}

	if isQuoteAsset {
		return nil
	}

	if filter.TickSize == 0 {
		return fmt.Errorf("[%s] tick size is zero", symbol)
	}

	if filter.StepSize == 0 {
		return fmt.Errorf("[%s] step size is zero", symbol)
	}

	return nil
}
