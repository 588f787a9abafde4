package entity

// Customer represents a customer of the shop. The (name, contact) pair is the
// customer's identity: creating the same pair twice returns the existing row.
type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null;uniqueIndex:idx_customers_name_contact" json:"name"`
	Contact string `gorm:"size:20;not null;uniqueIndex:idx_customers_name_contact" json:"contact"`

	// Relationships
	Visits []Visit `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
