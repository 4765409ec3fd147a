package broker

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/jasonwu001t/taicfg/internal/creds"
)

// RedshiftClient wraps a database/sql pool against a Redshift cluster,
// connected through the postgres driver.
type RedshiftClient struct {
	db *sql.DB
}

// NewRedshift opens the pool. sql.Open does not dial; use Ping to verify
// the cluster is reachable.
func NewRedshift(cfg creds.Redshift) (*RedshiftClient, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open redshift: %w", err)
	}

	return &RedshiftClient{db: db}, nil
}

// DB exposes the pool for query use.
func (c *RedshiftClient) DB() *sql.DB {
	return c.db
}

func (c *RedshiftClient) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping redshift: %w", err)
	}
	return nil
}

func (c *RedshiftClient) Close() error {
	return c.db.Close()
}
