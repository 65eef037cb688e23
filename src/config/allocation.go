package config

import (
	"encoding/csv"
	"fmt"
	"gitlab.com/open-soft/go-rebalance-bot/src/model"
	"os"
	"strconv"
	"strings"
)

// LoadAllocationFile reads the target portfolio from a CSV file with the
// header: coin, allocation, fixed_balance.
func LoadAllocationFile(path string) ([]model.AllocationEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("allocation file %s has no entries", path)
	}

	columns := make(map[string]int)
	for index, name := range rows[0] {
		columns[strings.TrimSpace(strings.ToLower(name))] = index
	}

	for _, required := range []string{"coin", "allocation", "fixed_balance"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("allocation file %s has no '%s' column", path, required)
		}
	}

	entries := make([]model.AllocationEntry, 0, len(rows)-1)

	for number, row := range rows[1:] {
		allocation, err := strconv.ParseFloat(strings.TrimSpace(row[columns["allocation"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("allocation file %s row %d: %s", path, number+2, err.Error())
		}

		fixedBalance, err := strconv.ParseFloat(strings.TrimSpace(row[columns["fixed_balance"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("allocation file %s row %d: %s", path, number+2, err.Error())
		}

		entries = append(entries, model.AllocationEntry{
			Coin:             strings.ToUpper(strings.TrimSpace(row[columns["coin"]])),
			TargetAllocation: allocation,
			FixedBalance:     fixedBalance,
		})
	}

	return entries, nil
}
