package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portsrepo "github.com/signordemola/belize-app/internal/core/ports/repositories"
	"github.com/signordemola/belize-app/internal/models"
	"github.com/signordemola/belize-app/internal/utils/mapping"
	"github.com/signordemola/belize-app/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const transactionColumns = `transaction_id, account_id, user_id, amount, type, status, reference, description, category, recipient_bank, recipient_account, swift_code, pin_verified, is_fraud_suspected, date, created_at, created_by, last_updated_at, last_updated_by`

// SaveTransfer applies the balance deltas and appends the transaction rows in
// one database transaction. Account rows are locked first and the resulting
// balances are re-checked against the locked state, so concurrent debits of
// the same account serialize and the loser fails cleanly.
func (r *PgxLedgerRepository) SaveTransfer(ctx context.Context, transactions []domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	// 1. Lock the affected account rows and read current balances.
	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	// 2. Re-check the invariant against the locked rows. The caller already
	// checked the balance, but a concurrent transfer may have drained the
	// account between that read and this lock.
	for accID, delta := range balanceChanges {
		locked := lockedAccounts[accID]
		if locked.Balance.Add(delta).IsNegative() {
			return fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, accID)
		}
	}

	// 3. Apply the balance deltas.
	var updatedBy string
	var updatedAt time.Time
	if len(transactions) > 0 {
		updatedBy = transactions[0].CreatedBy
		updatedAt = transactions[0].CreatedAt
	}
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, updatedBy, updatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}

	// 4. Append the transaction rows.
	batch := &pgx.Batch{}
	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	for _, txn := range transactions {
		modelTxn := mapping.ToModelTransaction(txn)
		batch.Queue(txnQuery,
			modelTxn.TransactionID,
			modelTxn.AccountID,
			modelTxn.UserID,
			modelTxn.Amount,
			modelTxn.Type,
			modelTxn.Status,
			modelTxn.Reference,
			modelTxn.Description,
			modelTxn.Category,
			nullIfEmpty(modelTxn.RecipientBank),
			nullIfEmpty(modelTxn.RecipientAccount),
			nullIfEmpty(modelTxn.SwiftCode),
			modelTxn.PinVerified,
			modelTxn.IsFraudSuspected,
			modelTxn.Date,
			modelTxn.CreatedAt,
			modelTxn.CreatedBy,
			modelTxn.LastUpdatedAt,
			modelTxn.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute transaction insert batch", err)
	}

	return r.Commit(ctx, tx)
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func scanTransactionRows(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		var recipientBank, recipientAccount, swiftCode sql.NullString
		err := rows.Scan(
			&t.TransactionID,
			&t.AccountID,
			&t.UserID,
			&t.Amount,
			&t.Type,
			&t.Status,
			&t.Reference,
			&t.Description,
			&t.Category,
			&recipientBank,
			&recipientAccount,
			&swiftCode,
			&t.PinVerified,
			&t.IsFraudSuspected,
			&t.Date,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		t.RecipientBank = recipientBank.String
		t.RecipientAccount = recipientAccount.String
		t.SwiftCode = swiftCode.String
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}

// FindTransactionsByReference retrieves all legs sharing a reference.
func (r *PgxLedgerRepository) FindTransactionsByReference(ctx context.Context, reference string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE reference = $1
		ORDER BY transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for reference %s: %w", reference, err)
	}

	modelTxns, err := scanTransactionRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactions(modelTxns), nil
}

// ListTransactionsByAccountID returns one statement page, newest first, using
// keyset pagination over (date, transaction_id).
func (r *PgxLedgerRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
	`
	args := []any{accountID}

	if nextToken != nil && *nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil || len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		cursorDate, err := time.Parse(pagination.TimeFormat, fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (date, transaction_id) < ($2, $3)`
		args = append(args, cursorDate, fields[1])
	}

	query += fmt.Sprintf(` ORDER BY date DESC, transaction_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}

	modelTxns, err := scanTransactionRows(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		t := pagination.EncodeMultiFieldToken(last.Date.Format(pagination.TimeFormat), last.TransactionID)
		token = &t
	}

	return mapping.ToDomainTransactions(modelTxns), token, nil
}
