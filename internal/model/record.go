// Package model defines the transaction record schema for generated datasets.
package model

import "time"

// FieldNames lists the output columns in their fixed serialization order.
var FieldNames = []string{
	"transaction_id",
	"customer_id",
	"product_category",
	"product_price",
	"quantity",
	"date",
	"payment_method",
	"country",
	"total",
}

// Transaction represents a single synthesized e-commerce transaction.
// Money fields are held as integer cents so that Total is exactly
// PriceCents * Quantity with no float drift.
type Transaction struct {
	Date          time.Time
	Category      string
	PaymentMethod string
	Country       string
	ID            int64
	CustomerID    int64
	PriceCents    int64
	Quantity      int64
	TotalCents    int64
}

// Price returns the product price in currency units.
func (t Transaction) Price() float64 {
	return float64(t.PriceCents) / 100
}

// Total returns the derived row total in currency units.
func (t Transaction) Total() float64 {
	return float64(t.TotalCents) / 100
}
