package cart

import (
	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/SebastianPortocarrero/TFVitanza/nutrition"
	"github.com/google/uuid"
)

// Entry is one line of the in-memory cart. ID is a stable local identifier
// assigned on creation, so mutations address a logical entry even after a
// concurrent removal shifts positions. BackingID is the remote row id and is
// empty while the entry only exists locally. Macros and Price are snapshotted
// from the catalog at creation time and never recomputed.
type Entry struct {
	ID             string                     `json:"id"`
	BackingID      string                     `json:"backing_id,omitempty"`
	Item           models.MenuItem            `json:"menu_item"`
	Quantity       int                        `json:"quantity"`
	Customizations []models.CustomizationRule `json:"customizations"`
	Macros         models.Macros              `json:"customized_macros"`
	Price          float64                    `json:"customized_price"`
	// Unsynced marks an entry whose remote write failed. It stays visible in
	// the cart so the user can retry instead of silently diverging.
	Unsynced bool `json:"unsynced,omitempty"`
}

func newEntry(item models.MenuItem, rules []models.CustomizationRule, quantity int) Entry {
	macros, price := nutrition.ApplyCustomizations(item.Macros, item.Price, rules)
	return Entry{
		ID:             uuid.NewString(),
		Item:           item,
		Quantity:       quantity,
		Customizations: rules,
		Macros:         macros,
		Price:          price,
	}
}
