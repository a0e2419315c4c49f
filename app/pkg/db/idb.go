package db

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (bun.Tx, error) {
	return d.conn.BeginTx(ctx, opts)
}

func (d *DB) Dialect() schema.Dialect {
	return d.conn.Dialect()
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return d.conn.ExecContext(ctx, query, args...)
}

func (d *DB) NewAddColumn() *bun.AddColumnQuery {
	return d.conn.NewAddColumn()
}

func (d *DB) NewCreateIndex() *bun.CreateIndexQuery {
	return d.conn.NewCreateIndex()
}

func (d *DB) NewCreateTable() *bun.CreateTableQuery {
	return d.conn.NewCreateTable()
}

func (d *DB) NewDelete() *bun.DeleteQuery {
	return d.conn.NewDelete()
}

func (d *DB) NewDropColumn() *bun.DropColumnQuery {
	return d.conn.NewDropColumn()
}

func (d *DB) NewDropIndex() *bun.DropIndexQuery {
	return d.conn.NewDropIndex()
}

func (d *DB) NewDropTable() *bun.DropTableQuery {
	return d.conn.NewDropTable()
}

func (d *DB) NewInsert() *bun.InsertQuery {
	return d.conn.NewInsert()
}

func (d *DB) NewMerge() *bun.MergeQuery {
	return d.conn.NewMerge()
}

func (d *DB) NewRaw(query string, args ...interface{}) *bun.RawQuery {
	return d.conn.NewRaw(query, args...)
}

func (d *DB) NewSelect() *bun.SelectQuery {
	return d.conn.NewSelect()
}

func (d *DB) NewTruncateTable() *bun.TruncateTableQuery {
	return d.conn.NewTruncateTable()
}

func (d *DB) NewUpdate() *bun.UpdateQuery {
	return d.conn.NewUpdate()
}

func (d *DB) NewValues(model interface{}) *bun.ValuesQuery {
	return d.conn.NewValues(model)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return d.conn.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return d.conn.QueryRowContext(ctx, query, args...)
}

func (d *DB) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	return d.conn.RunInTx(ctx, opts, f)
}

var _ bun.IDB = (*DB)(nil)
