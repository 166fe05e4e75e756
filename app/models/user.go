package models

// User is an account that owns tasks.
type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Tasks []Task `gorm:"foreignKey:UserID" json:"tasks"`
}
