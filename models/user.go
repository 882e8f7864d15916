package models

// User is a staff account that can sign in to the management UI.
// Role is advisory ("admin", "manager" or "master") and is not enforced
// per-endpoint; every authenticated user sees the same surface.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
