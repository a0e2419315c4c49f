package db

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"
	sqlTrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/database/sql"

	"backend/school-platform/app/internal/config"
)

// DB wraps the single bun connection pool shared by all repositories.
type DB struct {
	conn *bun.DB
}

func NewDB(cfg config.ApplicationConfig, logger *zap.Logger) (*DB, error) {
	dbCfg := cfg.DatabaseConfig
	pgConnector := pgdriver.NewConnector(
		pgdriver.WithDSN(dbCfg.ConnectionString()),
		pgdriver.WithTimeout(30*time.Second),
	)
	sqlTrace.Register("pgdriver", pgConnector.Driver(),
		sqlTrace.WithServiceName("school-platform-db"),
		sqlTrace.WithAnalytics(true),
	)
	dbConn := sqlTrace.OpenDB(pgConnector)
	dbConn.SetMaxOpenConns(dbCfg.MaxDBConns)
	dbConn.SetMaxIdleConns(dbCfg.MaxIdleConns)
	dbConn.SetConnMaxLifetime(time.Duration(dbCfg.MaxConnLifetime) * time.Second)
	dbConn.SetConnMaxIdleTime(time.Duration(dbCfg.MaxConnIdleTime) * time.Second)

	conn := bun.NewDB(dbConn, pgdialect.New(), bun.WithDiscardUnknownColumns())
	if err := conn.Ping(); err != nil {
		logger.Error("failed to ping database", zap.Error(err))
		_ = conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	logger.Info(
		"successfully connected to database",
		zap.Int("maxOpen", dbCfg.MaxDBConns),
		zap.Int("maxIdle", dbCfg.MaxIdleConns),
		zap.Int("maxLifetime", dbCfg.MaxConnLifetime),
		zap.Int("maxIdleTime", dbCfg.MaxConnIdleTime),
	)
	return &DB{conn: conn}, nil
}

func (d *DB) Close() error {
	if d.conn == nil {
		return nil
	}
	if err := d.conn.Close(); err != nil {
		return fmt.Errorf("error closing DB: %w", err)
	}
	return nil
}

func (d *DB) Conn() *bun.DB {
	return d.conn
}
