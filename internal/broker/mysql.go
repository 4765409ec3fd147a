package broker

import (
	"context"
	"fmt"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jasonwu001t/taicfg/internal/creds"
)

// MySQLClient wraps a GORM connection to MySQL.
type MySQLClient struct {
	db *gorm.DB
}

// NewMySQL opens a GORM handle for the given credentials. GORM's own
// logging is silenced; the application logs through slog.
func NewMySQL(cfg creds.MySQL) (*MySQLClient, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	db, err := gorm.Open(gormmysql.Open(cfg.DSN()), gcfg)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	return &MySQLClient{db: db}, nil
}

// DB exposes the GORM handle for query use.
func (c *MySQLClient) DB() *gorm.DB {
	return c.db
}

// Ping verifies the underlying connection is usable.
func (c *MySQLClient) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping mysql: %w", err)
	}
	return nil
}

// Close releases the underlying sql.DB pool.
func (c *MySQLClient) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
