package models

// Default display attributes applied when a category is created without them.
const (
	DefaultCategoryColor = "#3B82F6"
	DefaultCategoryIcon  = "💰"
)

// Category is a user-owned label for transactions.
type Category struct {
	Base
	UserID      string `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `json:"description"`
	Color       string `gorm:"type:varchar(7)" json:"color"`
	Icon        string `gorm:"type:varchar(50)" json:"icon"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"-"`
}
