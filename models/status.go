package models

// OrderStatus is one of the five fixed workflow states seeded at first
// boot. The IDs are stable and referenced directly by the dashboard and
// the public buyback intake.
type OrderStatus struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

// TableName specifies the table name for the OrderStatus model
func (OrderStatus) TableName() string {
	return "order_statuses"
}

// Fixed status IDs, matching the seed order.
const (
	StatusNew          uint = 1
	StatusInProcessing uint = 2
	StatusInRepair     uint = 3
	StatusCompleted    uint = 4
	StatusCancelled    uint = 5
)

// DefaultStatuses returns the seed set created at first boot.
func DefaultStatuses() []OrderStatus {
	return []OrderStatus{
		{ID: StatusNew, Name: "New", Description: "New request"},
		{ID: StatusInProcessing, Name: "In processing", Description: "Request is being processed"},
		{ID: StatusInRepair, Name: "In repair", Description: "Appliance is in repair"},
		{ID: StatusCompleted, Name: "Completed", Description: "Order is finished"},
		{ID: StatusCancelled, Name: "Cancelled", Description: "Order was cancelled"},
	}
}

// StatusBadgeClass maps a status ID to the UI severity tag rendered next
// to it. Unknown IDs fall back to the neutral tag.
func StatusBadgeClass(statusID uint) string {
	switch statusID {
	case StatusNew:
		return "primary"
	case StatusInProcessing:
		return "info"
	case StatusInRepair:
		return "warning"
	case StatusCompleted:
		return "success"
	case StatusCancelled:
		return "danger"
	default:
		return "secondary"
	}
}
