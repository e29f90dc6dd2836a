package game

// PurchaseLot is one batch of goods bought at a single price point.
// Lots are consumed oldest-first on sale so each sale's realized P/L is
// computed against the price actually paid for the units sold.
type PurchaseLot struct {
	ID       string `json:"id"`
	GoodName string `json:"good_name"`
	// Remaining units. Shrinks on sale or loss; the lot is removed
	// from the list when it reaches zero.
	Quantity    int64  `json:"quantity"`
	UnitCost    int64  `json:"unit_cost"`
	PurchaseDay int    `json:"purchase_day"`
	City        string `json:"city"`
	// Units originally purchased; fixed at creation.
	InitialQuantity int64 `json:"initial_quantity"`
	// Units lost to events, recognized immediately.
	LostQuantity int64 `json:"lost_quantity"`
}

// InvestmentLot is one batch of a financial asset. Same FIFO rules as
// PurchaseLot, plus holding-age and dividend accounting.
type InvestmentLot struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	Quantity    int64  `json:"quantity"`
	UnitCost    int64  `json:"unit_cost"`
	PurchaseDay int    `json:"purchase_day"`
	// Incremented once per travel; gates dividend eligibility.
	DaysHeld int `json:"days_held"`
	// Cumulative dividends credited for this lot, never decreases.
	DividendPaid int64 `json:"dividend_paid"`
}

// Loan is a single outstanding loan. APR is fixed at origination and
// never follows later re-randomization of the global offer rate.
type Loan struct {
	ID        string `json:"id"`
	Principal int64  `json:"principal"`
	// Amount still owed, including the origination commission and
	// accrued interest. The loan leaves the active set at zero.
	Remaining int64   `json:"remaining"`
	Repaid    int64   `json:"repaid"`
	DayTaken  int     `json:"day_taken"`
	APR       float64 `json:"apr"`
	// Interest below $1 carried between days; stays in [0,1).
	AccruedFraction float64 `json:"accrued_fraction"`
}

// BankTxType labels a bank-account movement.
type BankTxType string

const (
	BankTxDeposit    BankTxType = "deposit"
	BankTxWithdraw   BankTxType = "withdraw"
	BankTxInterest   BankTxType = "interest"
	BankTxDividend   BankTxType = "dividend"
	BankTxCorrection BankTxType = "correction"
)

// BankTransaction is one entry in the bank's audit trail.
type BankTransaction struct {
	Type         BankTxType `json:"type"`
	Amount       int64      `json:"amount"`
	BalanceAfter int64      `json:"balance_after"`
	Day          int        `json:"day"`
	Title        string     `json:"title"`
}

// BankAccount is the player's savings account. Interest compounds
// daily via the same whole-dollar-with-fractional-carry rule as loans,
// except the balance grows.
type BankAccount struct {
	Balance int64 `json:"balance"`
	// Today's APR; re-randomized every travel.
	APR float64 `json:"apr"`
	// Interest below $1 carried between days; stays in [0,1).
	AccruedFraction float64 `json:"accrued_fraction"`
	// Guards against accruing twice for the same day.
	LastInterestDay int               `json:"last_interest_day"`
	Transactions    []BankTransaction `json:"transactions"`
}

// TradeSide labels a ledger transaction.
type TradeSide string

const (
	SideBuy   TradeSide = "buy"
	SideSell  TradeSide = "sell"
	SideGrant TradeSide = "grant"
	SideGift  TradeSide = "gift"
	SideLoss  TradeSide = "loss"
)

// TradeKind separates goods trades from asset trades.
type TradeKind string

const (
	KindGoods TradeKind = "goods"
	KindAsset TradeKind = "asset"
)

// Transaction is an immutable record of a single trade event, appended
// to the state's history on every buy/sell/grant/gift/loss.
type Transaction struct {
	ID       string    `json:"id"`
	Kind     TradeKind `json:"kind"`
	Side     TradeSide `json:"side"`
	Item     string    `json:"item"`
	Quantity int64     `json:"quantity"`
	// Unit price of the trade; zero for grants, gifts and losses.
	UnitPrice int64 `json:"unit_price"`
	Total     int64 `json:"total"`
	// Realized profit against FIFO cost basis; sells only.
	RealizedPL int64  `json:"realized_pl"`
	Day        int    `json:"day"`
	City       string `json:"city"`
}
