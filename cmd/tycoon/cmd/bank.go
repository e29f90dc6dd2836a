package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage deposits and loans",
	Long: `Move money between your wallet and the bank, take loans at today's
offer rate and pay them down.

The savings APR and the loan offer APR are redrawn every travel; a
loan keeps the APR it was taken at. Loan origination adds a commission
to the amount you owe, and heavy borrowers pay a punitive rate.

Examples:
  tycoon bank deposit 10000
  tycoon bank loan 5000
  tycoon bank repay 01J... 2000`,
}

var bankDepositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Move cash into the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBankAmount(args[0], func(s *session, amount int64) error {
			res := s.engine.Deposit(amount)
			if !res.OK {
				return fmt.Errorf("%s", res.Message)
			}
			fmt.Println(res.Message)
			return nil
		})
	},
}

var bankWithdrawCmd = &cobra.Command{
	Use:   "withdraw <amount>",
	Short: "Move bank balance into cash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBankAmount(args[0], func(s *session, amount int64) error {
			res := s.engine.Withdraw(amount)
			if !res.OK {
				return fmt.Errorf("%s", res.Message)
			}
			fmt.Println(res.Message)
			return nil
		})
	},
}

var bankLoanCmd = &cobra.Command{
	Use:   "loan <amount>",
	Short: "Take a loan at today's offer rate",
	RunE:  runBankLoan,
	Args:  cobra.ExactArgs(1),
}

var bankRepayCmd = &cobra.Command{
	Use:   "repay <loan-id> <amount>",
	Short: "Pay down a loan",
	Args:  cobra.ExactArgs(2),
	RunE:  runBankRepay,
}

var bankStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show bank balances, rates and credit capacity",
	RunE:  runBankStatus,
}

func init() {
	rootCmd.AddCommand(bankCmd)
	bankCmd.AddCommand(bankDepositCmd)
	bankCmd.AddCommand(bankWithdrawCmd)
	bankCmd.AddCommand(bankLoanCmd)
	bankCmd.AddCommand(bankRepayCmd)
	bankCmd.AddCommand(bankStatusCmd)
}

func runBankAmount(arg string, op func(*session, int64) error) error {
	amount, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("amount must be a number, got %q", arg)
	}

	s, err := loadSession()
	if err != nil {
		return err
	}
	if err := op(s, amount); err != nil {
		s.jrnl.Close()
		return err
	}
	return s.persist()
}

func runBankLoan(cmd *cobra.Command, args []string) error {
	return runBankAmount(args[0], func(s *session, amount int64) error {
		res := s.engine.TakeLoan(amount)
		if !res.OK {
			return fmt.Errorf("%s", res.Message)
		}
		fmt.Println(res.Message)
		fmt.Printf("  Loan ID: %s\n", res.LoanID)
		return nil
	})
}

func runBankRepay(cmd *cobra.Command, args []string) error {
	return runBankAmount(args[1], func(s *session, amount int64) error {
		res := s.engine.RepayLoan(args[0], amount)
		if !res.OK {
			return fmt.Errorf("%s", res.Message)
		}
		fmt.Println(res.Message)
		return nil
	})
}

func runBankStatus(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	defer s.jrnl.Close()

	st := s.engine.State()
	bank := s.engine.Bank()

	fmt.Printf("Bank balance: $%d (APR %.2f%%)\n", st.Bank.Balance, st.Bank.APR*100)
	fmt.Printf("Loan offer:   %.2f%% APR\n", st.LoanOfferAPR*100)
	fmt.Printf("Wealth:       $%d\n", bank.Wealth())
	fmt.Printf("Debt:         $%d of $%d capacity\n", st.TotalDebt(), bank.DebtCapacity())
	fmt.Printf("Max new loan: $%d\n", bank.MaxNewLoan())

	if bank.ActiveLoans() > 0 {
		fmt.Println("\nActive loans:")
		for _, ln := range st.Loans {
			if ln.Remaining == 0 {
				continue
			}
			fmt.Printf("  %s  $%d remaining at %.2f%% APR (principal $%d, repaid $%d)\n",
				ln.ID, ln.Remaining, ln.APR*100, ln.Principal, ln.Repaid)
		}
	}

	if n := len(st.Bank.Transactions); n > 0 {
		fmt.Println("\nRecent activity:")
		start := n - 10
		if start < 0 {
			start = 0
		}
		for _, tx := range st.Bank.Transactions[start:] {
			fmt.Printf("  day %3d  %-10s %+8d  → $%d  %s\n",
				tx.Day, tx.Type, tx.Amount, tx.BalanceAfter, tx.Title)
		}
	}
	return nil
}
