package game

import (
	"math/rand"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/pkg/id"
)

const daysPerYear = 365

// BankService handles the savings account and the loan book. Interest
// on both sides compounds daily in whole dollars with a fractional
// carry, so sub-dollar interest is never dropped.
type BankService struct {
	state  *State
	tables *market.Tables
	cfg    *config.BankConfig
	rng    *rand.Rand
}

func NewBankService(state *State, tables *market.Tables, cfg *config.BankConfig, rng *rand.Rand) *BankService {
	return &BankService{state: state, tables: tables, cfg: cfg, rng: rng}
}

// Deposit moves amount from cash into the bank account.
func (b *BankService) Deposit(amount int64) Result {
	if amount <= 0 {
		return failure(ErrValidation, "Amount must be positive")
	}
	if !b.state.Wallet.Spend(amount) {
		return failure(ErrInsufficientFunds, "Not enough cash! Have $%d", b.state.Wallet.Balance())
	}
	b.state.Bank.Balance += amount
	b.recordBankTx(BankTxDeposit, amount, "Deposit")
	return success("Deposited $%d, bank balance $%d", amount, b.state.Bank.Balance)
}

// Withdraw moves amount from the bank account into cash.
func (b *BankService) Withdraw(amount int64) Result {
	if amount <= 0 {
		return failure(ErrValidation, "Amount must be positive")
	}
	if b.state.Bank.Balance < amount {
		return failure(ErrInsufficientFunds, "Not enough in the bank! Have $%d", b.state.Bank.Balance)
	}
	b.state.Bank.Balance -= amount
	b.state.Wallet.Earn(amount)
	b.recordBankTx(BankTxWithdraw, -amount, "Withdrawal")
	return success("Withdrew $%d, bank balance $%d", amount, b.state.Bank.Balance)
}

// RandomizeRates redraws the savings APR and the loan offer APR within
// their configured bands. Existing loans keep the APR they were
// originated at.
func (b *BankService) RandomizeRates() {
	b.state.Bank.APR = b.cfg.BankAPRMin + b.rng.Float64()*(b.cfg.BankAPRMax-b.cfg.BankAPRMin)
	b.state.LoanOfferAPR = b.cfg.LoanAPRMin + b.rng.Float64()*(b.cfg.LoanAPRMax-b.cfg.LoanAPRMin)
}

// AccrueInterest credits one day of savings interest. Whole dollars
// move to the balance; the sub-dollar remainder carries to the next
// day. A day-stamp guard keeps a repeated call for the same day from
// accruing twice.
func (b *BankService) AccrueInterest() {
	acct := &b.state.Bank
	if acct.LastInterestDay >= b.state.Day {
		return
	}
	acct.LastInterestDay = b.state.Day

	if acct.Balance <= 0 || acct.APR <= 0 {
		return
	}
	accrued := float64(acct.Balance)*acct.APR/daysPerYear + acct.AccruedFraction
	whole := int64(accrued)
	acct.AccruedFraction = accrued - float64(whole)
	if whole > 0 {
		acct.Balance += whole
		b.recordBankTx(BankTxInterest, whole, "Daily interest")
	}
}

// AccrueLoanInterest adds one day of interest to every active loan,
// with the same whole-dollar carry rule the savings side uses.
func (b *BankService) AccrueLoanInterest() {
	for _, ln := range b.state.Loans {
		if ln.Remaining <= 0 {
			continue
		}
		accrued := float64(ln.Remaining)*ln.APR/daysPerYear + ln.AccruedFraction
		whole := int64(accrued)
		ln.AccruedFraction = accrued - float64(whole)
		ln.Remaining += whole
	}
}

// Wealth is the collateral value backing credit capacity: haircut
// cash, the full bank balance and haircut asset positions at their
// running prices. Goods inventory does not count.
func (b *BankService) Wealth() int64 {
	wealth := int64(float64(b.state.Wallet.Balance()) * b.cfg.HaircutCash)
	wealth += b.state.Bank.Balance

	for _, lot := range b.state.InvestLots {
		if lot.Quantity == 0 {
			continue
		}
		asset, ok := b.tables.AssetBySymbol(lot.Symbol)
		if !ok {
			continue
		}
		price, ok := b.state.AssetPrices[lot.Symbol]
		if !ok {
			continue
		}
		var haircut float64
		switch asset.Class {
		case market.ClassStock:
			haircut = b.cfg.HaircutStock
		case market.ClassCommodity:
			haircut = b.cfg.HaircutCommodity
		case market.ClassCrypto:
			haircut = b.cfg.HaircutCrypto
		}
		wealth += int64(float64(lot.Quantity*price) * haircut)
	}
	return wealth
}

// DebtCapacity is the total debt the player may carry.
func (b *BankService) DebtCapacity() int64 {
	return int64(float64(b.Wealth())*b.cfg.LeverageFactor) + b.cfg.BaseAllowance
}

// MaxNewLoan is the largest principal a new loan may carry right now,
// after existing debt and the flat per-loan cap.
func (b *BankService) MaxNewLoan() int64 {
	headroom := b.DebtCapacity() - b.state.TotalDebt()
	if headroom < 0 {
		headroom = 0
	}
	if b.cfg.PerLoanMax > 0 && headroom > b.cfg.PerLoanMax {
		headroom = b.cfg.PerLoanMax
	}
	return headroom
}

// ActiveLoans counts loans with a remaining balance.
func (b *BankService) ActiveLoans() int {
	var n int
	for _, ln := range b.state.Loans {
		if ln.Remaining > 0 {
			n++
		}
	}
	return n
}

// TakeLoan originates a loan at today's offer APR. The origination
// commission is added to the opening balance, not deducted from the
// payout; heavy borrowers past the threshold pay the punitive rate.
func (b *BankService) TakeLoan(amount int64) LoanResult {
	if amount <= 0 {
		return LoanResult{Result: failure(ErrValidation, "Amount must be positive")}
	}
	if b.cfg.PerLoanMax > 0 && amount > b.cfg.PerLoanMax {
		return LoanResult{Result: failure(ErrCreditLimit,
			"Loan too large! The bank lends at most $%d per loan", b.cfg.PerLoanMax)}
	}
	if b.cfg.CreditEnabled {
		if max := b.MaxNewLoan(); amount > max {
			return LoanResult{Result: failure(ErrCreditLimit,
				"Credit limit exceeded! You may borrow up to $%d", max)}
		}
	}

	rate := b.cfg.LoanCommissionRate
	if b.ActiveLoans() >= b.cfg.LoanHighCommissionThreshold {
		rate = b.cfg.LoanHighCommissionRate
	}
	fee := int64(float64(amount) * rate)
	apr := b.state.LoanOfferAPR

	ln := &Loan{
		ID:        id.New(),
		Principal: amount,
		Remaining: amount + fee,
		DayTaken:  b.state.Day,
		APR:       apr,
	}
	b.state.Loans = append(b.state.Loans, ln)
	b.state.Wallet.Earn(amount)

	return LoanResult{
		Result: success("Loan approved: $%d at %.1f%% APR, $%d commission, $%d to repay",
			amount, apr*100, fee, ln.Remaining),
		LoanID:       ln.ID,
		APR:          apr,
		Fee:          fee,
		TotalToRepay: ln.Remaining,
	}
}

// RepayLoan pays amount toward a loan. Payments above the remaining
// balance are clamped; only the clamped amount leaves the wallet.
func (b *BankService) RepayLoan(loanID string, amount int64) Result {
	if amount <= 0 {
		return failure(ErrValidation, "Amount must be positive")
	}
	var ln *Loan
	for _, l := range b.state.Loans {
		if l.ID == loanID {
			ln = l
			break
		}
	}
	if ln == nil {
		return failure(ErrValidation, "Unknown loan: %s", loanID)
	}
	if ln.Remaining <= 0 {
		return failure(ErrValidation, "Loan already repaid")
	}

	if amount > ln.Remaining {
		amount = ln.Remaining
	}
	if !b.state.Wallet.Spend(amount) {
		return failure(ErrInsufficientFunds, "Not enough cash! Need $%d, have $%d",
			amount, b.state.Wallet.Balance())
	}
	ln.Remaining -= amount
	ln.Repaid += amount

	if ln.Remaining == 0 {
		return success("Loan %s fully repaid (-$%d)", ln.ID, amount)
	}
	return success("Repaid $%d, loan balance $%d", amount, ln.Remaining)
}

// Credit adds amount to the bank balance outside deposit flow, for
// event payouts and corrections.
func (b *BankService) Credit(amount int64, txType BankTxType, title string) {
	if amount == 0 {
		return
	}
	b.state.Bank.Balance += amount
	b.recordBankTx(txType, amount, title)
}

func (b *BankService) recordBankTx(t BankTxType, amount int64, title string) {
	b.state.Bank.Transactions = append(b.state.Bank.Transactions, BankTransaction{
		Type:         t,
		Amount:       amount,
		BalanceAfter: b.state.Bank.Balance,
		Day:          b.state.Day,
		Title:        title,
	})
}
