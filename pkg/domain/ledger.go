package domain

// Ledger engine: the balance-mutation core.
//
// Apply and Reverse are pure over the in-memory accounts; persistence and
// atomicity belong to the caller's unit of work. The invariant they protect:
// every account balance equals its opening balance plus the sum of effects of
// all currently-applied transactions, so apply followed by reverse leaves
// balances bit-identical.

// Apply mutates account balances for the transaction's effect:
//
//	INCOME    source += amount
//	EXPENSE   source -= amount
//	TRANSFER  source -= amount, destination += amount
//
// For EXPENSE and TRANSFER on asset accounts the source must cover the
// amount before any mutation happens; liability accounts (credit cards,
// loans) may go negative. Balances are untouched when an error is returned.
func Apply(t *Transaction, src, dst *Account) error {
	if t.Amount <= 0 {
		return ErrAmountMustBePositive
	}
	if src == nil || src.UserID != t.UserID {
		return ErrAccountNotFound
	}
	switch t.Type {
	case TransactionTypeIncome:
		src.Balance += t.Amount
	case TransactionTypeExpense:
		if err := checkSufficient(src, t.Amount); err != nil {
			return err
		}
		src.Balance -= t.Amount
	case TransactionTypeTransfer:
		if dst == nil || dst.ID == src.ID {
			return ErrInvalidTransfer
		}
		if err := checkSufficient(src, t.Amount); err != nil {
			return err
		}
		src.Balance -= t.Amount
		dst.Balance += t.Amount
	default:
		return ErrInvalidTransfer
	}
	return nil
}

// Reverse is the exact algebraic inverse of Apply. It must be called with the
// same accounts, amount and type that were applied, so callers snapshot those
// before merging any update. There is no sufficiency guard: undoing a legal
// apply cannot dip below the account's historical minimum.
func Reverse(t *Transaction, src, dst *Account) {
	switch t.Type {
	case TransactionTypeIncome:
		src.Balance -= t.Amount
	case TransactionTypeExpense:
		src.Balance += t.Amount
	case TransactionTypeTransfer:
		src.Balance += t.Amount
		if dst != nil {
			dst.Balance -= t.Amount
		}
	}
}

func checkSufficient(src *Account, amount int64) error {
	if src.Type.IsAsset() && src.Balance < amount {
		return &InsufficientBalanceError{
			AccountID: src.ID,
			Required:  amount,
			Available: src.Balance,
		}
	}
	return nil
}
