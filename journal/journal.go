package journal

// TradeRecord is one completed buy/sell/grant/gift/loss as the engine
// reports it.
type TradeRecord struct {
	TradeID    string
	Day        int
	Date       string
	City       string
	Kind       string
	Side       string
	Item       string
	Quantity   int64
	UnitPrice  int64
	Total      int64
	RealizedPL int64
}

// EventRecord is one fired travel event.
type EventRecord struct {
	Day      int
	Date     string
	City     string
	Key      string
	Category string
	Message  string
}

// NetWorthSnapshot captures the player's position at the end of a day.
type NetWorthSnapshot struct {
	Day        int
	Date       string
	Cash       int64
	Bank       int64
	Debt       int64
	GoodsValue int64
	AssetValue int64
	NetWorth   int64
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordEvent(EventRecord) error
	RecordNetWorth(NetWorthSnapshot) error
	Close() error
}

// Noop discards every record. Used when journaling is disabled.
type Noop struct{}

func (Noop) RecordTrade(TradeRecord) error         { return nil }
func (Noop) RecordEvent(EventRecord) error         { return nil }
func (Noop) RecordNetWorth(NetWorthSnapshot) error { return nil }
func (Noop) Close() error                          { return nil }
