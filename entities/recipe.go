package entities

// Recipe is the top-level catalog entity. Views is maintained outside the
// API surface and is never taken from client input.
type Recipe struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(256);not null" json:"name"`
	Views       int    `gorm:"not null;default:0" json:"views"`
	CookingTime int    `gorm:"not null" json:"cooking_time"`
	Description string `gorm:"type:varchar(256);not null" json:"description"`

	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}
