package domain

import "time"

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypePayment    TransactionType = "PAYMENT"
)

// Wallet holds a per-user balance in minor currency units. Transactions is
// the full ledger history, most recent first.
type Wallet struct {
	ID           int64
	UserID       int64
	BalanceCents int64
	Transactions []Transaction
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Transaction is an immutable ledger entry. AmountCents is always positive;
// the direction comes from Type. BookingID is set when the entry was produced
// by a booking payment or refund.
type Transaction struct {
	ID          int64
	WalletID    int64
	BookingID   *int64
	Reference   string
	AmountCents int64
	Type        TransactionType
	Description string
	CreatedAt   time.Time
}
