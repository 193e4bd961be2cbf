package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"commitkings/internal/platform/store/lite"
)

// liteAdapter wraps lite.Lite and implements RowQuerier + TxRunner
// over database/sql so repos stay backend agnostic
type liteAdapter struct {
	l *lite.Lite
}

func newLiteAdapter(l *lite.Lite) *liteAdapter { return &liteAdapter{l: l} }

func (a *liteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.l == nil {
		return errors.New("lite: nil adapter")
	}
	return a.l.DB.PingContext(ctx)
}

func (a *liteAdapter) Close() error { return a.l.Close() }

func (a *liteAdapter) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	res, err := a.l.DB.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return sqlTag{res: res, sql: q}, nil
}

func (a *liteAdapter) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	rs, err := a.l.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{r: rs}, nil
}

func (a *liteAdapter) QueryRow(ctx context.Context, q string, args ...any) Row {
	return a.l.DB.QueryRowContext(ctx, q, args...)
}

func (a *liteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.l.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(sqlTxQuerier{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// adapters for database/sql to our tiny Row/Rows/CommandTag

type sqlRows struct{ r *sql.Rows }

func (x sqlRows) Next() bool            { return x.r.Next() }
func (x sqlRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x sqlRows) Err() error            { return x.r.Err() }
func (x sqlRows) Close()                { _ = x.r.Close() }
func (x sqlRows) Columns() []string {
	cols, err := x.r.Columns()
	if err != nil {
		return nil
	}
	return cols
}

// sqlTag reports affected rows in a pg-style "EXEC n" string
type sqlTag struct {
	res sql.Result
	sql string
}

func (t sqlTag) RowsAffected() int64 {
	n, err := t.res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func (t sqlTag) String() string {
	return fmt.Sprintf("EXEC %d", t.RowsAffected())
}

// sqlTxQuerier satisfies RowQuerier inside a database/sql transaction
type sqlTxQuerier struct{ tx *sql.Tx }

func (t sqlTxQuerier) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	res, err := t.tx.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return sqlTag{res: res, sql: q}, nil
}

func (t sqlTxQuerier) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	rs, err := t.tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{r: rs}, nil
}

func (t sqlTxQuerier) QueryRow(ctx context.Context, q string, args ...any) Row {
	return t.tx.QueryRowContext(ctx, q, args...)
}
