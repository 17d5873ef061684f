package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSales []int

func (s staticSales) QuantitiesOn(ctx context.Context, dates []time.Time) ([]int, error) {
	return s[:len(dates)], nil
}

func TestSalesReaderLifecycle(t *testing.T) {
	SetSales(nil)
	_, err := GetSales()
	assert.ErrorIs(t, err, ErrSalesHistoryUnavailable)

	SetSales(staticSales{1, 2, 3})
	defer SetSales(nil)

	r, err := GetSales()
	require.NoError(t, err)
	got, err := r.QuantitiesOn(context.Background(), make([]time.Time, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestPostgresSalesReaderNoDates(t *testing.T) {
	r := NewPostgresSalesReader(nil)

	got, err := r.QuantitiesOn(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCloseWithoutConnect(t *testing.T) {
	DB = nil
	assert.NotPanics(t, Close)
}
