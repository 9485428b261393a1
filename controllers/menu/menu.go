package menuControllers

import (
	"net/http"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /menu
func GetMenuItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("is_available = ?", true).
			Order("category ASC").
			Order("name ASC")

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var items []models.MenuItem
		if err := query.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// GET /menu/:id
func GetMenuItemByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// GET /menu/customizations
func GetCustomizationRules(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rules []models.CustomizationRule
		if err := db.Order("type ASC").Find(&rules).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customization rules"})
			return
		}

		c.JSON(http.StatusOK, rules)
	}
}
