package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pinger reports database reachability for the health endpoint.
type Pinger struct {
	db *pgxpool.Pool
}

func NewPinger(db *pgxpool.Pool) *Pinger {
	return &Pinger{db: db}
}

func (p *Pinger) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}
