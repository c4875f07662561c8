package models

const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

type Category struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null"                 json:"name"`
	Version int    `gorm:"not null;default:1"       json:"version"`
}

// Category is attached on reads only, the row itself stores just CategoryID.
type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	CategoryID  uint      `gorm:"not null;index"           json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	Version     int       `gorm:"not null;default:1"       json:"version"`
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
	Version      int    `gorm:"not null;default:1"       json:"version"`
}
