package cartControllers

import (
	"log"
	"net/http"

	"github.com/SebastianPortocarrero/TFVitanza/cart"
	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	MenuItemID       string   `json:"menu_item_id" binding:"required"`
	CustomizationIDs []string `json:"customization_ids"`
	Quantity         int      `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// sessionStore resolves the cart store for the current session. The token
// subject is the guest id for anonymous sessions and the user id otherwise.
func sessionStore(c *gin.Context, carts *cart.Manager) (*cart.Store, bool) {
	subjectVal, exists := c.Get("user_id")
	subject, ok := subjectVal.(string)
	if !exists || !ok || subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	userID := subject
	if role, _ := c.Get("role"); role == "guest" {
		userID = ""
	}

	store, err := carts.Session(c.Request.Context(), subject, userID)
	if err != nil {
		// Hydration failure: the store is still usable, reads just see the
		// local state until the next successful reload.
		log.Printf("❌ Failed to hydrate cart for session %s: %v", subject, err)
	}
	return store, true
}

// GET /cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": store.Entries(),
			"total": store.Total(),
		})
	}
}

// POST /cart
func AddItem(db *gorm.DB, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.MenuItem
		if err := db.First(&item, "id = ?", input.MenuItemID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate menu item"})
			return
		}

		var rules []models.CustomizationRule
		if len(input.CustomizationIDs) > 0 {
			if err := db.Where("id IN ?", input.CustomizationIDs).Find(&rules).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customization rules"})
				return
			}
			if len(rules) != len(dedupe(input.CustomizationIDs)) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown customization rule"})
				return
			}
		}

		entry, err := store.AddItem(c.Request.Context(), item, rules, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, entry)
	}
}

// PUT /cart/:entry_id
func UpdateQuantity(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := store.UpdateQuantity(c.Request.Context(), c.Param("entry_id"), input.Quantity); err != nil {
			if err == cart.ErrEntryNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart entry not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart entry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": store.Entries(),
			"total": store.Total(),
		})
	}
}

// DELETE /cart/:entry_id
func RemoveEntry(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		if err := store.RemoveEntry(c.Request.Context(), c.Param("entry_id")); err != nil {
			if err == cart.ErrEntryNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart entry not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart entry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart entry removed"})
	}
}

// DELETE /cart
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		store.Clear(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
