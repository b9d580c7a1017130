package model

import "time"

// Columns holds the full dataset column-wise. Each base column is filled by
// its own seeded stream; TotalCents is derived afterwards.
type Columns struct {
	Start         time.Time
	TransactionID []int64
	CustomerID    []int64
	Category      []string
	PriceCents    []int64
	Quantity      []int64
	DayOffset     []int32
	PaymentMethod []string
	Country       []string
	TotalCents    []int64
}

// NewColumns allocates base column storage for n rows. TotalCents stays nil
// until the derive stage runs.
func NewColumns(n int, start time.Time) *Columns {
	return &Columns{
		Start:         start,
		TransactionID: make([]int64, n),
		CustomerID:    make([]int64, n),
		Category:      make([]string, n),
		PriceCents:    make([]int64, n),
		Quantity:      make([]int64, n),
		DayOffset:     make([]int32, n),
		PaymentMethod: make([]string, n),
		Country:       make([]string, n),
	}
}

// Len returns the number of rows.
func (c *Columns) Len() int {
	return len(c.TransactionID)
}

// Date returns the calendar date of row i. Start is UTC midnight, so day
// arithmetic is plain 24h multiples.
func (c *Columns) Date(i int) time.Time {
	return c.Start.Add(time.Duration(c.DayOffset[i]) * 24 * time.Hour)
}

// Row assembles the full record for row i.
func (c *Columns) Row(i int) Transaction {
	t := Transaction{
		ID:            c.TransactionID[i],
		CustomerID:    c.CustomerID[i],
		Category:      c.Category[i],
		PriceCents:    c.PriceCents[i],
		Quantity:      c.Quantity[i],
		Date:          c.Date(i),
		PaymentMethod: c.PaymentMethod[i],
		Country:       c.Country[i],
	}
	if c.TotalCents != nil {
		t.TotalCents = c.TotalCents[i]
	}
	return t
}
