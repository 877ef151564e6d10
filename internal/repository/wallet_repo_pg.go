package repository

import (
	"context"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WalletRepository interface {
	// GetOrCreate returns the user's wallet with its full transaction history,
	// most recent first. A missing wallet is created with zero balance.
	GetOrCreate(ctx context.Context, userID int64) (*domain.Wallet, error)
	// Deposit credits the wallet and appends the matching ledger entry in one
	// transaction.
	Deposit(ctx context.Context, userID int64, amountCents int64, reference, description string) (*domain.Wallet, error)
}

type PGWalletRepository struct {
	db *pgxpool.Pool
}

func NewWalletRepository(db *pgxpool.Pool) WalletRepository {
	return &PGWalletRepository{db: db}
}

func (r *PGWalletRepository) GetOrCreate(ctx context.Context, userID int64) (*domain.Wallet, error) {
	var w domain.Wallet
	if err := r.db.QueryRow(ctx, `INSERT INTO wallets (user_id, balance_cents) VALUES ($1, 0)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = wallets.updated_at
		RETURNING id, user_id, balance_cents, created_at, updated_at`, userID).
		Scan(&w.ID, &w.UserID, &w.BalanceCents, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}

	transactions, err := r.listTransactions(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Transactions = transactions
	return &w, nil
}

func (r *PGWalletRepository) Deposit(ctx context.Context, userID int64, amountCents int64, reference, description string) (*domain.Wallet, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var w domain.Wallet
	if err := tx.QueryRow(ctx, `INSERT INTO wallets (user_id, balance_cents) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance_cents = wallets.balance_cents + $2, updated_at = now()
		RETURNING id, user_id, balance_cents, created_at, updated_at`, userID, amountCents).
		Scan(&w.ID, &w.UserID, &w.BalanceCents, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO wallet_transactions (wallet_id, reference, amount_cents, type, description)
		VALUES ($1, $2, $3, $4, $5)`,
		w.ID, reference, amountCents, domain.TransactionTypeDeposit, description); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	transactions, err := r.listTransactions(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Transactions = transactions
	return &w, nil
}

func (r *PGWalletRepository) listTransactions(ctx context.Context, walletID int64) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, `SELECT id, wallet_id, booking_id, reference, amount_cents, type, description, created_at
		FROM wallet_transactions WHERE wallet_id = $1 ORDER BY created_at DESC, id DESC`, walletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.BookingID, &t.Reference, &t.AmountCents, &t.Type, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

var _ WalletRepository = (*PGWalletRepository)(nil)
