package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(userID uuid.UUID, accountType AccountType, balance int64) *Account {
	a := NewAccount(userID, "test", "", accountType, balance, "USD")
	return a
}

func newTestTransaction(userID, accountID uuid.UUID, toAccountID *uuid.UUID, amount int64, t TransactionType) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		ToAccountID: toAccountID,
		Amount:      amount,
		Type:        t,
	}
}

func TestApply_Income(t *testing.T) {
	userID := uuid.New()
	acc := newTestAccount(userID, AccountTypeChecking, 10000)
	tx := newTestTransaction(userID, acc.ID, nil, 5000, TransactionTypeIncome)

	require.NoError(t, Apply(tx, acc, nil))
	assert.Equal(t, int64(15000), acc.Balance)
}

func TestApply_ExpenseInsufficientBalance(t *testing.T) {
	userID := uuid.New()
	acc := newTestAccount(userID, AccountTypeChecking, 15000)
	tx := newTestTransaction(userID, acc.ID, nil, 20000, TransactionTypeExpense)

	err := Apply(tx, acc, nil)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, int64(15000), acc.Balance, "no partial application on failure")

	var insufficientErr *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, acc.ID, insufficientErr.AccountID)
	assert.Equal(t, int64(20000), insufficientErr.Required)
	assert.Equal(t, int64(15000), insufficientErr.Available)
}

func TestApply_LiabilityAccountMayGoNegative(t *testing.T) {
	userID := uuid.New()
	card := newTestAccount(userID, AccountTypeCreditCard, 1000)
	tx := newTestTransaction(userID, card.ID, nil, 5000, TransactionTypeExpense)

	require.NoError(t, Apply(tx, card, nil))
	assert.Equal(t, int64(-4000), card.Balance)
}

func TestApply_Transfer(t *testing.T) {
	userID := uuid.New()
	src := newTestAccount(userID, AccountTypeChecking, 15000)
	dst := newTestAccount(userID, AccountTypeSavings, 0)
	tx := newTestTransaction(userID, src.ID, &dst.ID, 5000, TransactionTypeTransfer)

	require.NoError(t, Apply(tx, src, dst))
	assert.Equal(t, int64(10000), src.Balance)
	assert.Equal(t, int64(5000), dst.Balance)
}

func TestApply_TransferRejectsMissingOrSameDestination(t *testing.T) {
	userID := uuid.New()
	src := newTestAccount(userID, AccountTypeChecking, 15000)
	tx := newTestTransaction(userID, src.ID, nil, 5000, TransactionTypeTransfer)

	assert.ErrorIs(t, Apply(tx, src, nil), ErrInvalidTransfer)
	assert.ErrorIs(t, Apply(tx, src, src), ErrInvalidTransfer)
	assert.Equal(t, int64(15000), src.Balance)
}

func TestApply_RejectsForeignAccount(t *testing.T) {
	userID := uuid.New()
	other := newTestAccount(uuid.New(), AccountTypeChecking, 15000)
	tx := newTestTransaction(userID, other.ID, nil, 5000, TransactionTypeIncome)

	assert.ErrorIs(t, Apply(tx, other, nil), ErrAccountNotFound)
	assert.Equal(t, int64(15000), other.Balance)
}

func TestApply_RejectsNonPositiveAmount(t *testing.T) {
	userID := uuid.New()
	acc := newTestAccount(userID, AccountTypeChecking, 15000)

	for _, amount := range []int64{0, -100} {
		tx := newTestTransaction(userID, acc.ID, nil, amount, TransactionTypeIncome)
		assert.ErrorIs(t, Apply(tx, acc, nil), ErrAmountMustBePositive)
	}
	assert.Equal(t, int64(15000), acc.Balance)
}

func TestReverse_RoundTrip(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		name string
		typ  TransactionType
	}{
		{"income", TransactionTypeIncome},
		{"expense", TransactionTypeExpense},
		{"transfer", TransactionTypeTransfer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestAccount(userID, AccountTypeChecking, 10000)
			dst := newTestAccount(userID, AccountTypeSavings, 2500)
			tx := newTestTransaction(userID, src.ID, &dst.ID, 750, tt.typ)

			require.NoError(t, Apply(tx, src, dst))
			Reverse(tx, src, dst)

			assert.Equal(t, int64(10000), src.Balance, "apply then reverse must be identity")
			assert.Equal(t, int64(2500), dst.Balance)
		})
	}
}

func TestReverse_TransferDeleteScenario(t *testing.T) {
	userID := uuid.New()
	a := newTestAccount(userID, AccountTypeChecking, 15000)
	b := newTestAccount(userID, AccountTypeSavings, 0)
	tx := newTestTransaction(userID, a.ID, &b.ID, 5000, TransactionTypeTransfer)

	require.NoError(t, Apply(tx, a, b))
	require.Equal(t, int64(10000), a.Balance)
	require.Equal(t, int64(5000), b.Balance)

	Reverse(tx, a, b)
	assert.Equal(t, int64(15000), a.Balance)
	assert.Equal(t, int64(0), b.Balance)
}

func TestReverse_CanPushLiabilityNegative(t *testing.T) {
	userID := uuid.New()
	card := newTestAccount(userID, AccountTypeLoan, 2000)
	tx := newTestTransaction(userID, card.ID, nil, 5000, TransactionTypeIncome)

	Reverse(tx, card, nil)
	assert.Equal(t, int64(-3000), card.Balance)
}

func TestAccountType_Classification(t *testing.T) {
	assets := []AccountType{
		AccountTypeChecking, AccountTypeSavings, AccountTypeCash,
		AccountTypeInvestment, AccountTypeProperty,
	}
	for _, at := range assets {
		assert.True(t, at.IsAsset(), "%s should be an asset", at)
		assert.False(t, at.IsLiability())
	}
	for _, at := range []AccountType{AccountTypeCreditCard, AccountTypeLoan} {
		assert.True(t, at.IsLiability(), "%s should be a liability", at)
		assert.False(t, at.IsAsset())
	}
	assert.False(t, AccountType("BOGUS").IsValid())
}

func TestMinorUnits_RoundTrip(t *testing.T) {
	assert.Equal(t, int64(1234), ToMinorUnits(12.34))
	assert.Equal(t, int64(100), ToMinorUnits(0.999999999))
	assert.Equal(t, 12.34, ToMajorUnits(1234))
}
