package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsRow(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := NewColumns(1, start)
	cols.TransactionID[0] = 1
	cols.CustomerID[0] = 4242
	cols.Category[0] = "Sports"
	cols.PriceCents[0] = 1999
	cols.Quantity[0] = 4
	cols.DayOffset[0] = 31
	cols.PaymentMethod[0] = "PayPal"
	cols.Country[0] = "Belgium"
	cols.TotalCents = []int64{7996}

	row := cols.Row(0)

	require.Equal(t, 1, cols.Len())
	assert.Equal(t, int64(1), row.ID)
	assert.Equal(t, int64(4242), row.CustomerID)
	assert.Equal(t, "Sports", row.Category)
	assert.InDelta(t, 19.99, row.Price(), 0.0001)
	assert.Equal(t, int64(4), row.Quantity)
	assert.Equal(t, "2022-02-01", row.Date.Format("2006-01-02"))
	assert.Equal(t, "PayPal", row.PaymentMethod)
	assert.Equal(t, "Belgium", row.Country)
	assert.InDelta(t, 79.96, row.Total(), 0.0001)
}

func TestRowBeforeDerive(t *testing.T) {
	cols := NewColumns(1, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	cols.TransactionID[0] = 1

	row := cols.Row(0)

	assert.Equal(t, int64(0), row.TotalCents)
}
