package store

import (
	"context"
	"fmt"

	"easybill/internal/database"
	"easybill/internal/model"
)

// Every transaction query filters by user_id as well as id: a transaction
// that belongs to another user is indistinguishable from one that does not
// exist.

func ListTransactionsByUser(ctx context.Context, db database.DB, userID int) ([]model.Transaction, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, transaction_type, amount, status, payment_method,
		        transaction_date, description, created_at, updated_at
		 FROM transactions WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTransactionsByUser: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.TransactionType,
			&t.Amount,
			&t.Status,
			&t.PaymentMethod,
			&t.TransactionDate,
			&t.Description,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListTransactionsByUser: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTransactionsByUser: %w", err)
	}
	return txs, nil
}

func GetTransactionByID(ctx context.Context, db database.DB, txID, userID int) (*model.Transaction, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, transaction_type, amount, status, payment_method,
		        transaction_date, description, created_at, updated_at
		 FROM transactions WHERE id = $1 AND user_id = $2`,
		txID,
		userID,
	)
	t := &model.Transaction{}
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.TransactionType,
		&t.Amount,
		&t.Status,
		&t.PaymentMethod,
		&t.TransactionDate,
		&t.Description,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetTransactionByID: %w", err)
	}
	return t, nil
}

func CreateTransaction(ctx context.Context, db database.DB, t *model.Transaction) (*model.Transaction, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO transactions
		   (user_id, transaction_type, amount, status, payment_method, transaction_date, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		t.UserID,
		t.TransactionType,
		t.Amount,
		t.Status,
		t.PaymentMethod,
		t.TransactionDate,
		t.Description,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTransaction: %w", err)
	}
	return t, nil
}

// UpdateTransaction replaces the full caller-editable field set. The WHERE
// clause keeps the write inside the owner's scope; zero matched rows is a
// not-found, never a cross-user write.
func UpdateTransaction(ctx context.Context, db database.DB, t *model.Transaction) error {
	row := db.QueryRow(ctx,
		`UPDATE transactions
		 SET transaction_type = $1, amount = $2, status = $3, payment_method = $4,
		     transaction_date = $5, description = $6, updated_at = now()
		 WHERE id = $7 AND user_id = $8
		 RETURNING updated_at`,
		t.TransactionType,
		t.Amount,
		t.Status,
		t.PaymentMethod,
		t.TransactionDate,
		t.Description,
		t.ID,
		t.UserID,
	)
	if err := row.Scan(&t.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateTransaction: %w", err)
	}
	return nil
}

func DeleteTransaction(ctx context.Context, db database.DB, txID, userID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`,
		txID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTransaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTransaction: %w", ErrNotFound)
	}
	return nil
}
