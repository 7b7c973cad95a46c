package entities

// Ingredient belongs to exactly one Recipe. CookingTime and Description are
// copied from the parent recipe when the row is created, never from the caller.
type Ingredient struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"type:varchar(256);not null" json:"name"`
	CookingTime       int    `gorm:"not null" json:"cooking_time"`
	Description       string `gorm:"type:varchar(256);not null" json:"description"`
	ListOfIngredients string `gorm:"type:varchar(256);not null" json:"list_of_ingredients"`
	RecipeID          uint   `gorm:"not null" json:"recipe_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
