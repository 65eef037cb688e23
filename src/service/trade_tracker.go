package service

import (
	"log"
	"sync"
)

type TradeTrackerInterface interface {
	AddPlaced()
	AddCompleted()
	HasPendingTrades() bool
	Placed() int64
	Completed() int64
}

// TradeTracker counts orders placed against orders completed in the
// current session. The gap between the two gates a safe shutdown.
type TradeTracker struct {
	mutex           sync.Mutex
	tradesPlaced    int64
	tradesCompleted int64
}

func (t *TradeTracker) AddPlaced() {
	t.mutex.Lock()
	t.tradesPlaced++
	t.mutex.Unlock()
}

func (t *TradeTracker) AddCompleted() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.tradesCompleted >= t.tradesPlaced {
		log.Printf("Execution report for a trade not placed in this session, completed counter is not advanced")
		return
	}

	t.tradesCompleted++
}

func (t *TradeTracker) HasPendingTrades() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.tradesCompleted < t.tradesPlaced
}

func (t *TradeTracker) Placed() int64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.tradesPlaced
}

func (t *TradeTracker) Completed() int64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.tradesCompleted
}
