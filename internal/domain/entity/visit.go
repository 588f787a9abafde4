package entity

import "time"

// Visit represents one recorded purchase event for a customer. PurchasedItems
// is the newline-joined blob of encoded line-item strings; it is split back
// into items only when an invoice is rendered. Visits are create-only.
type Visit struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CustomerID     uint      `gorm:"not null;index" json:"customer_id"`
	Date           time.Time `gorm:"autoCreateTime" json:"date"`
	PurchasedItems string    `gorm:"type:text" json:"purchased_items"`
	PaidAmount     float64   `gorm:"not null;default:0" json:"paid_amount"`
	DueAmount      float64   `gorm:"not null;default:0" json:"due_amount"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Visit model
func (Visit) TableName() string {
	return "visits"
}
