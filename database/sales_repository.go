package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSalesHistoryUnavailable is returned when no sales database is configured.
var ErrSalesHistoryUnavailable = errors.New("sales history is not configured")

// SalesReader looks up meals sold per day.
type SalesReader interface {
	// QuantitiesOn returns the quantity sold on each date, in the same order.
	// Days without a record yield 0.
	QuantitiesOn(ctx context.Context, dates []time.Time) ([]int, error)
}

// PostgresSalesReader reads the meal_sales table.
type PostgresSalesReader struct {
	pool *pgxpool.Pool
}

// NewPostgresSalesReader reads from pool.
func NewPostgresSalesReader(pool *pgxpool.Pool) *PostgresSalesReader {
	return &PostgresSalesReader{pool: pool}
}

func (r *PostgresSalesReader) QuantitiesOn(ctx context.Context, dates []time.Time) ([]int, error) {
	if len(dates) == 0 {
		return []int{}, nil
	}

	query := `
		SELECT sale_date, SUM(quantity)::int
		FROM meal_sales
		WHERE sale_date = ANY($1)
		GROUP BY sale_date
	`
	rows, err := r.pool.Query(ctx, query, dates)
	if err != nil {
		return nil, fmt.Errorf("querying meal sales: %w", err)
	}

	type daily struct {
		Date     time.Time
		Quantity int
	}
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (daily, error) {
		var d daily
		err := row.Scan(&d.Date, &d.Quantity)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning meal sales: %w", err)
	}

	byDate := make(map[string]int, len(totals))
	for _, t := range totals {
		byDate[t.Date.Format(time.DateOnly)] = t.Quantity
	}
	out := make([]int, len(dates))
	for i, d := range dates {
		out[i] = byDate[d.Format(time.DateOnly)]
	}
	return out, nil
}

var (
	salesMu     sync.RWMutex
	salesReader SalesReader
)

// SetSales installs the process-wide sales reader; nil disables it.
func SetSales(r SalesReader) {
	salesMu.Lock()
	defer salesMu.Unlock()
	salesReader = r
}

// GetSales returns the process-wide sales reader.
func GetSales() (SalesReader, error) {
	salesMu.RLock()
	defer salesMu.RUnlock()
	if salesReader == nil {
		return nil, ErrSalesHistoryUnavailable
	}
	return salesReader, nil
}
