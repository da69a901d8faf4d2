package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"easybill/internal/database"
	"easybill/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- fakes ---------- */

// fakeTxRow implements pgx.Row for single-row transaction scans.
type fakeTxRow struct {
	scanErr error
	tx      *model.Transaction
}

func (r *fakeTxRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	tx := r.tx
	switch len(dest) {
	case 10:
		// GetTransactionByID: full row
		*dest[0].(*int) = tx.ID
		*dest[1].(*int) = tx.UserID
		*dest[2].(*string) = tx.TransactionType
		*dest[3].(*float64) = tx.Amount
		*dest[4].(*string) = tx.Status
		*dest[5].(*string) = tx.PaymentMethod
		*dest[6].(*time.Time) = tx.TransactionDate
		*dest[7].(**string) = tx.Description
		*dest[8].(*time.Time) = tx.CreatedAt
		*dest[9].(*time.Time) = tx.UpdatedAt
	case 3:
		// CreateTransaction: id, created_at, updated_at
		*dest[0].(*int) = tx.ID
		*dest[1].(*time.Time) = tx.CreatedAt
		*dest[2].(*time.Time) = tx.UpdatedAt
	case 1:
		// UpdateTransaction: updated_at
		*dest[0].(*time.Time) = tx.UpdatedAt
	default:
		panic("fakeTxRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeTxRows implements pgx.Rows for multi-row transaction scans.
type fakeTxRows struct {
	data    []model.Transaction
	idx     int
	scanErr error
	err     error
}

func (r *fakeTxRows) Close()                                       {}
func (r *fakeTxRows) Err() error                                   { return r.err }
func (r *fakeTxRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeTxRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeTxRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeTxRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	tx := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = tx.ID
	*dest[1].(*int) = tx.UserID
	*dest[2].(*string) = tx.TransactionType
	*dest[3].(*float64) = tx.Amount
	*dest[4].(*string) = tx.Status
	*dest[5].(*string) = tx.PaymentMethod
	*dest[6].(*time.Time) = tx.TransactionDate
	*dest[7].(**string) = tx.Description
	*dest[8].(*time.Time) = tx.CreatedAt
	*dest[9].(*time.Time) = tx.UpdatedAt
	return nil
}
func (r *fakeTxRows) Values() ([]any, error) { return nil, nil }
func (r *fakeTxRows) RawValues() [][]byte    { return nil }
func (r *fakeTxRows) Conn() *pgx.Conn        { return nil }

/* ---------- tests ---------- */

func TestListTransactionsByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("boom")
		}}
		_, err := ListTransactionsByUser(ctx, db, 1)
		require.Error(t, err)
	})

	t.Run("scoped to caller", func(t *testing.T) {
		var gotArgs []any
		data := []model.Transaction{
			{ID: 1, UserID: 5, TransactionType: "debit", Amount: 10, Status: model.StatusPending, PaymentMethod: "paypal"},
			{ID: 2, UserID: 5, TransactionType: "credit", Amount: 20, Status: model.StatusCompleted, PaymentMethod: "card"},
		}
		db := &database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
			gotArgs = args
			return &fakeTxRows{data: data}, nil
		}}
		txs, err := ListTransactionsByUser(ctx, db, 5)
		require.NoError(t, err)
		require.Equal(t, []any{5}, gotArgs)
		require.Len(t, txs, 2)
		require.Equal(t, 20.0, txs[1].Amount)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeTxRows{data: make([]model.Transaction, 1), scanErr: errors.New("scan")}, nil
		}}
		_, err := ListTransactionsByUser(ctx, db, 5)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeTxRows{err: errors.New("rows")}, nil
		}}
		_, err := ListTransactionsByUser(ctx, db, 5)
		require.Error(t, err)
	})
}

func TestGetTransactionByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	desc := "phone bill"

	t.Run("not found or foreign owner", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeTxRow{scanErr: pgx.ErrNoRows}
		}}
		_, err := GetTransactionByID(ctx, db, 3, 99)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success passes both id and owner", func(t *testing.T) {
		var gotArgs []any
		tx := &model.Transaction{
			ID: 3, UserID: 5, TransactionType: "Phone Bill", Amount: 40.56,
			Status: model.StatusCompleted, PaymentMethod: "Bank Transfer",
			TransactionDate: now, Description: &desc, CreatedAt: now, UpdatedAt: now,
		}
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			gotArgs = args
			return &fakeTxRow{tx: tx}
		}}
		got, err := GetTransactionByID(ctx, db, 3, 5)
		require.NoError(t, err)
		require.Equal(t, []any{3, 5}, gotArgs)
		require.Equal(t, 40.56, got.Amount)
		require.Equal(t, &desc, got.Description)
	})
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeTxRow{scanErr: errors.New("insert")}
		}}
		_, err := CreateTransaction(ctx, db, &model.Transaction{})
		require.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Len(t, args, 7)
			require.Equal(t, 5, args[0]) // owner always first
			return &fakeTxRow{tx: &model.Transaction{ID: 42, CreatedAt: now, UpdatedAt: now}}
		}}
		tx, err := CreateTransaction(ctx, db, &model.Transaction{
			UserID: 5, TransactionType: "debit", Amount: 1, Status: model.StatusPending,
			PaymentMethod: "paypal", TransactionDate: now,
		})
		require.NoError(t, err)
		require.Equal(t, 42, tx.ID)
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("not found or foreign owner", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeTxRow{scanErr: pgx.ErrNoRows}
		}}
		err := UpdateTransaction(ctx, db, &model.Transaction{ID: 3, UserID: 99})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			gotArgs = args
			return &fakeTxRow{tx: &model.Transaction{UpdatedAt: now}}
		}}
		tx := &model.Transaction{
			ID: 3, UserID: 5, TransactionType: "credit", Amount: 2, Status: model.StatusFailed,
			PaymentMethod: "card", TransactionDate: now,
		}
		require.NoError(t, UpdateTransaction(ctx, db, tx))
		require.Len(t, gotArgs, 8)
		require.Equal(t, 3, gotArgs[6])
		require.Equal(t, 5, gotArgs[7]) // owner filter rides along
		require.Equal(t, now, tx.UpdatedAt)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("exec error", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("exec")
		}}
		require.Error(t, DeleteTransaction(ctx, db, 1, 5))
	})

	t.Run("not found or foreign owner", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}}
		err := DeleteTransaction(ctx, db, 1, 5)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			gotArgs = args
			return pgconn.NewCommandTag("DELETE 1"), nil
		}}
		require.NoError(t, DeleteTransaction(ctx, db, 1, 5))
		require.Equal(t, []any{1, 5}, gotArgs)
	})
}

func TestInsertAuditEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("exec error", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("exec")
		}}
		require.Error(t, InsertAuditEntry(ctx, db, &model.AuditEntry{}))
	})

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			gotArgs = args
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		}}
		require.NoError(t, InsertAuditEntry(ctx, db, &model.AuditEntry{UserID: 5, Action: "create", Entity: "transaction", EntityID: 42}))
		require.Equal(t, []any{5, "create", "transaction", 42}, gotArgs)
	})
}
