package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankDepositWithdraw(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 20)
	setCash(e, 10_000)

	require.True(t, e.Deposit(4_000).OK)
	assert.Equal(t, int64(6_000), e.state.Wallet.Balance())
	assert.Equal(t, int64(4_000), e.state.Bank.Balance)

	require.True(t, e.Withdraw(1_500).OK)
	assert.Equal(t, int64(7_500), e.state.Wallet.Balance())
	assert.Equal(t, int64(2_500), e.state.Bank.Balance)

	res := e.Withdraw(99_999)
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrInsufficientFunds)

	res = e.Deposit(0)
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrValidation)

	// Every movement lands in the audit trail.
	require.Len(t, e.state.Bank.Transactions, 2)
	assert.Equal(t, BankTxDeposit, e.state.Bank.Transactions[0].Type)
	assert.Equal(t, BankTxWithdraw, e.state.Bank.Transactions[1].Type)
}

func TestBankInterestWholeDollarCarry(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 21)
	e.state.Bank.Balance = 1_000_000
	e.state.Bank.APR = 0.02
	e.state.Bank.LastInterestDay = 1
	e.state.Day = 2

	// Daily interest is 1,000,000 * 0.02 / 365 = 54.79...: 54 whole
	// dollars credit, the fraction carries.
	e.bank.AccrueInterest()
	assert.Equal(t, int64(1_000_054), e.state.Bank.Balance)
	assert.InDelta(t, 0.7945, e.state.Bank.AccruedFraction, 0.001)
	assert.Equal(t, 2, e.state.Bank.LastInterestDay)

	// A second call for the same day is a no-op.
	e.bank.AccrueInterest()
	assert.Equal(t, int64(1_000_054), e.state.Bank.Balance)

	// Next day the carried fraction tops up the new interest.
	e.state.Day = 3
	e.bank.AccrueInterest()
	assert.Equal(t, int64(1_000_109), e.state.Bank.Balance)
	assert.GreaterOrEqual(t, e.state.Bank.AccruedFraction, 0.0)
	assert.Less(t, e.state.Bank.AccruedFraction, 1.0)
}

func TestBankInterestFractionAccumulates(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 22)
	e.state.Bank.Balance = 100
	e.state.Bank.APR = 0.0365 // exactly one cent per day
	e.state.Bank.LastInterestDay = 1

	for day := 2; day <= 51; day++ {
		e.state.Day = day
		e.bank.AccrueInterest()
	}

	// Fifty cents accumulated, no whole dollar yet.
	assert.Equal(t, int64(100), e.state.Bank.Balance)
	assert.InDelta(t, 0.50, e.state.Bank.AccruedFraction, 0.001)
}

func TestLoanInterestAccrual(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 23)
	ln := &Loan{ID: "LN1", Principal: 10_000, Remaining: 10_000, APR: 0.365}
	e.state.Loans = append(e.state.Loans, ln)

	// 10,000 * 0.365 / 365 = 10 per day, exactly.
	e.bank.AccrueLoanInterest()
	assert.Equal(t, int64(10_010), ln.Remaining)
	assert.InDelta(t, 0.0, ln.AccruedFraction, 1e-9)

	// Repaid loans stop accruing.
	ln.Remaining = 0
	e.bank.AccrueLoanInterest()
	assert.Equal(t, int64(0), ln.Remaining)
}

func TestTakeLoanCommission(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "playground", 24)
	e.state.LoanOfferAPR = 0.10
	setCash(e, 0)
	e.state.Bank.Balance = 1_000_000 // plenty of credit capacity

	res := e.TakeLoan(10_000)
	require.True(t, res.OK)
	assert.Equal(t, int64(1_000), res.Fee)
	assert.Equal(t, int64(11_000), res.TotalToRepay)
	assert.Equal(t, 0.10, res.APR)
	assert.Equal(t, int64(10_000), e.state.Wallet.Balance())

	require.Len(t, e.state.Loans, 1)
	assert.Equal(t, int64(11_000), e.state.Loans[0].Remaining)
}

func TestTakeLoanHighCommissionThreshold(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "playground", 25)
	e.state.LoanOfferAPR = 0.10
	e.state.Bank.Balance = 100_000_000

	// Ten active loans push the commission to the punitive rate.
	for i := 0; i < 10; i++ {
		e.state.Loans = append(e.state.Loans, &Loan{ID: "L", Remaining: 100})
	}

	res := e.TakeLoan(10_000)
	require.True(t, res.OK)
	assert.Equal(t, int64(3_000), res.Fee)
	assert.Equal(t, int64(13_000), res.TotalToRepay)
}

func TestLoanAPRFixedAtOrigination(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "playground", 26)
	e.state.LoanOfferAPR = 0.15
	e.state.Bank.Balance = 1_000_000

	res := e.TakeLoan(5_000)
	require.True(t, res.OK)

	for i := 0; i < 10; i++ {
		e.bank.RandomizeRates()
	}
	assert.Equal(t, 0.15, e.state.Loans[0].APR)
}

func TestCreditCapacity(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 27)
	setCash(e, 10_000)
	e.state.Bank.Balance = 5_000
	e.state.InvestLots = nil
	e.state.Loans = nil

	// Wealth: 10,000 * 0.1 cash haircut + 5,000 bank = 6,000.
	assert.Equal(t, int64(6_000), e.bank.Wealth())

	// Capacity: 6,000 * 0.8 + 1,000 base allowance = 5,800.
	assert.Equal(t, int64(5_800), e.bank.DebtCapacity())
	assert.Equal(t, int64(5_800), e.bank.MaxNewLoan())

	res := e.TakeLoan(5_801)
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrCreditLimit)

	res = e.TakeLoan(5_800)
	assert.True(t, res.OK)

	// The new debt (principal plus commission) eats the headroom.
	assert.Equal(t, int64(0), e.bank.MaxNewLoan())
}

func TestCreditCapacityCountsAssetHaircuts(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 28)
	setCash(e, 0)
	e.state.Bank.Balance = 0

	e.state.InvestLots = []*InvestmentLot{
		{ID: "I1", Symbol: "GOOGL", Quantity: 10}, // stock, haircut 0.5
		{ID: "I2", Symbol: "GOLD", Quantity: 2},   // commodity, haircut 0.7
		{ID: "I3", Symbol: "BTC", Quantity: 1},    // crypto, haircut 0.2
	}
	setAssetPrice(e, "GOOGL", 100)
	setAssetPrice(e, "GOLD", 1_000)
	setAssetPrice(e, "BTC", 10_000)

	// 1000*0.5 + 2000*0.7 + 10000*0.2 = 500 + 1400 + 2000 = 3,900.
	assert.Equal(t, int64(3_900), e.bank.Wealth())
}

func TestPerLoanMaxCap(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "playground", 29)
	e.cfg.Bank.PerLoanMax = 2_000
	e.state.Bank.Balance = 1_000_000

	res := e.TakeLoan(2_001)
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrCreditLimit)

	assert.Equal(t, int64(2_000), e.bank.MaxNewLoan())
	assert.True(t, e.TakeLoan(2_000).OK)
}

func TestRepayLoanClamps(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "playground", 30)
	setCash(e, 15_000)
	ln := &Loan{ID: "LN1", Principal: 10_000, Remaining: 11_000, APR: 0.1}
	e.state.Loans = append(e.state.Loans, ln)

	// Over-payment clamps to the remaining balance; only the clamped
	// amount leaves the wallet.
	res := e.RepayLoan("LN1", 20_000)
	require.True(t, res.OK)
	assert.Equal(t, int64(0), ln.Remaining)
	assert.Equal(t, int64(11_000), ln.Repaid)
	assert.Equal(t, int64(4_000), e.state.Wallet.Balance())

	res = e.RepayLoan("LN1", 100)
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrValidation)

	res = e.RepayLoan("nope", 100)
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrValidation)
}

func TestRandomizeRatesWithinBands(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 31)
	for i := 0; i < 100; i++ {
		e.bank.RandomizeRates()
		assert.GreaterOrEqual(t, e.state.Bank.APR, e.cfg.Bank.BankAPRMin)
		assert.LessOrEqual(t, e.state.Bank.APR, e.cfg.Bank.BankAPRMax)
		assert.GreaterOrEqual(t, e.state.LoanOfferAPR, e.cfg.Bank.LoanAPRMin)
		assert.LessOrEqual(t, e.state.LoanOfferAPR, e.cfg.Bank.LoanAPRMax)
	}
}
