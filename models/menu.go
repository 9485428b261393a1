package models

import "time"

// Macros holds the nutritional values of a menu item. Fiber is optional:
// a nil Fiber means the catalog does not track fiber for this item.
type Macros struct {
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `gorm:"column:fats" json:"fat"`
	Fiber    *float64 `json:"fiber,omitempty"`
}

type MenuItem struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description"`
	Price           float64   `gorm:"not null" json:"price"`
	Image           string    `json:"image"`
	Macros          Macros    `gorm:"embedded" json:"macros"`
	Category        string    `gorm:"index" json:"category"`
	Ingredients     []string  `gorm:"serializer:json" json:"ingredients"`
	Allergens       []string  `gorm:"serializer:json" json:"allergens"`
	IsVegetarian    bool      `json:"is_vegetarian"`
	IsGlutenFree    bool      `json:"is_gluten_free"`
	IsValidated     bool      `json:"is_validated"`
	ValidatedBy     string    `json:"validated_by,omitempty"` // nutritionist who signed off
	PreparationTime int       `gorm:"default:15" json:"preparation_time"`
	IsAvailable     bool      `gorm:"default:true" json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MacroDelta is a partial Macros: only non-nil fields participate when a
// customization is applied.
type MacroDelta struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
}

type CustomizationType string

const (
	CustomizationProtein CustomizationType = "protein"
	CustomizationCarbs   CustomizationType = "carbs"
	CustomizationFiber   CustomizationType = "fiber"
)

// CustomizationRule additively adjusts an item's price and macros.
type CustomizationRule struct {
	ID            string            `gorm:"primaryKey" json:"id"`
	Type          CustomizationType `gorm:"type:VARCHAR(10)" json:"type"`
	Label         string            `gorm:"not null" json:"label"`
	PriceModifier float64           `json:"price_modifier"`
	MacroModifier MacroDelta        `gorm:"embedded;embeddedPrefix:mod_" json:"macro_modifier"`
}
