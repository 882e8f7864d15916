package models

import "time"

// Employee is a shop worker that can be assigned to orders as the master.
type Employee struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Position string    `json:"position"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	Salary   *float64  `json:"salary"`
	HireDate time.Time `json:"hire_date"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
