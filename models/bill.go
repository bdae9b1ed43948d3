package models

import "time"

// Customer is the identity snapshot stored with a bill.
type Customer struct {
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	Email  string `gorm:"type:varchar(255);not null" json:"email"`
	Mobile string `gorm:"type:varchar(20);not null" json:"mobile"`
}

// Bill is an immutable, priced snapshot of an order plus the customer it was
// issued to. Bills are append-only: they are created exactly once and never
// updated or deleted.
type Bill struct {
	ID        string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Customer  Customer   `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items     []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"order"`
	Total     float64    `gorm:"type:decimal(12,2);not null" json:"total"`
	CreatedAt time.Time  `gorm:"not null" json:"date"`
}

// BillItem is one priced line of a bill, frozen at generation time.
type BillItem struct {
	ID     uint    `gorm:"primaryKey" json:"-"`
	BillID string  `gorm:"type:varchar(36);not null;index" json:"-"`
	Name   string  `gorm:"type:varchar(255);not null" json:"name"`
	Qty    int     `gorm:"not null" json:"qty"`
	Price  float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// Amount is the line subtotal.
func (bi BillItem) Amount() float64 {
	return float64(bi.Qty) * bi.Price
}
