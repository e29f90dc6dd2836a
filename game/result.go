package game

import "fmt"

// Result is the outcome of one engine operation. Message is suitable
// for direct display; Err classifies a failure by kind (one of the
// sentinels in errors.go) and is nil on success.
type Result struct {
	OK      bool
	Message string
	Err     error
}

func success(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

func failure(kind error, format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...), Err: kind}
}

// EventCategory classifies a travel event.
type EventCategory string

const (
	CategoryLoss    EventCategory = "loss"
	CategoryGain    EventCategory = "gain"
	CategoryNeutral EventCategory = "neutral"
)

// EventReport describes one fired travel event for display.
type EventReport struct {
	Key      string
	Category EventCategory
	Message  string
}

// DividendPayout is the dividend credited for one asset on one travel,
// aggregated across its eligible lots.
type DividendPayout struct {
	Symbol string
	Lots   int
	Amount int64
}

// DividendSummary aggregates all dividend payouts of one travel.
type DividendSummary struct {
	Total   int64
	Payouts []DividendPayout
}

// TravelResult is the aggregated outcome of a travel action.
type TravelResult struct {
	Result
	Fee       int64
	Events    []EventReport
	Dividends *DividendSummary
}

// ExtendResult is the outcome of a cargo capacity extension. NextCost
// is always populated for display: the cost of the following bundle on
// success, the still-unaffordable current cost on failure.
type ExtendResult struct {
	Result
	NewCapacity int64
	NextCost    int64
}

// LoanResult is the outcome of a loan origination.
type LoanResult struct {
	Result
	LoanID       string
	APR          float64
	Fee          int64
	TotalToRepay int64
}
