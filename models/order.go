package models

import "time"

// Order is a repair or resale order for a single appliance. Monetary
// fields are nullable; absent values count as zero in computations.
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ClientID      uint        `gorm:"not null;index" json:"client_id"`
	Client        Client      `gorm:"foreignKey:ClientID" json:"client"`
	Model         string      `gorm:"not null" json:"model"`
	Condition     string      `json:"condition"`
	Description   string      `json:"description"`
	PurchasePrice *float64    `json:"purchase_price"`
	RepairCosts   *float64    `json:"repair_costs"`
	SalePrice     *float64    `json:"sale_price"`
	StatusID      uint        `gorm:"not null;index" json:"status_id"`
	Status        OrderStatus `gorm:"foreignKey:StatusID" json:"status"`
	EmployeeID    *uint       `gorm:"index" json:"employee_id"`
	Employee      *Employee   `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	PhotoS3Key    *string     `json:"photo_s3_key,omitempty"`
	PhotoURL      *string     `gorm:"-" json:"photo_url,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	CompletedAt   *time.Time  `json:"completed_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// Profit is sale price minus repair costs minus purchase price, with
// absent values treated as zero.
func (o *Order) Profit() float64 {
	return floatOrZero(o.SalePrice) - floatOrZero(o.RepairCosts) - floatOrZero(o.PurchasePrice)
}

// Amount is the billable value of the order for client totals: the sale
// price when set, otherwise the repair costs, otherwise zero.
func (o *Order) Amount() float64 {
	if o.SalePrice != nil {
		return *o.SalePrice
	}
	if o.RepairCosts != nil {
		return *o.RepairCosts
	}
	return 0
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
