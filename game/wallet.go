package game

// Wallet is the single authoritative cash balance. Every spend and
// earn in the engine goes through it; nothing else touches Cash.
type Wallet struct {
	Cash int64 `json:"cash"`
}

// Balance returns the current cash on hand.
func (w *Wallet) Balance() int64 { return w.Cash }

// CanAfford reports whether amount is covered by cash on hand.
func (w *Wallet) CanAfford(amount int64) bool { return w.Cash >= amount }

// Earn adds amount to the wallet. Non-positive amounts are ignored.
func (w *Wallet) Earn(amount int64) {
	if amount > 0 {
		w.Cash += amount
	}
}

// Spend deducts amount if covered, reporting whether it happened.
// Non-positive amounts succeed without effect.
func (w *Wallet) Spend(amount int64) bool {
	if amount <= 0 {
		return true
	}
	if w.Cash < amount {
		return false
	}
	w.Cash -= amount
	return true
}
