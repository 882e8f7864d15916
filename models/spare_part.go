package models

// SparePart is a warehouse inventory item. Article is the unique
// manufacturer part number.
type SparePart struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Article     string  `gorm:"uniqueIndex;not null" json:"article"`
	Quantity    int     `gorm:"default:0" json:"quantity"`
	MinStock    int     `gorm:"default:5" json:"min_stock"`
	CostPrice   float64 `json:"cost_price"`
	RetailPrice float64 `json:"retail_price"`
}

// TableName specifies the table name for the SparePart model
func (SparePart) TableName() string {
	return "spare_parts"
}

// LowStock reports whether the part is at or below its restock threshold.
func (p *SparePart) LowStock() bool {
	return p.Quantity <= p.MinStock
}
