package models

// Task belongs to exactly one user.
type Task struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	Title  string `gorm:"not null" json:"title"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
}
