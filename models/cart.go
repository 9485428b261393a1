package models

import "time"

// CartSession is one row of a user's persisted cart. The customized macros
// and price are snapshotted at the time the entry was created; later catalog
// edits do not touch existing rows.
type CartSession struct {
	ID              string   `gorm:"primaryKey" json:"id"`
	UserID          string   `gorm:"index;not null" json:"user_id"`
	MenuItemID      string   `gorm:"not null" json:"menu_item_id"`
	MenuItem        MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item"`
	Quantity        int      `gorm:"not null" json:"quantity"`
	Macros          Macros   `gorm:"embedded" json:"macros"`
	CustomizedPrice float64  `json:"customized_price"`
	// Applied rules, serialized so the cart can be rendered without a second
	// lookup against the rules table.
	Customizations []CustomizationRule `gorm:"serializer:json" json:"customizations"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}
