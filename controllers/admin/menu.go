package adminControllers

import (
	"net/http"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /admin/menu
func CreateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if item.Name == "" || item.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and a positive price are required"})
			return
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}

		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// PUT /admin/menu/:id
func UpdateMenuItem(db *gorm.DB) gin.HandlerFunc {
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

		var input models.MenuItem
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		input.ID = item.ID

		// Full-row save: existing cart entries keep their snapshotted macros
		// and prices, so catalog edits never rewrite a cart.
		if err := db.Save(&input).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}

		c.JSON(http.StatusOK, input)
	}
}

// DELETE /admin/menu/:id
func DeleteMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.MenuItem{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
	}
}

// POST /admin/customizations
func CreateCustomizationRule(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rule models.CustomizationRule
		if err := c.ShouldBindJSON(&rule); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		switch rule.Type {
		case models.CustomizationProtein, models.CustomizationCarbs, models.CustomizationFiber:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customization type"})
			return
		}
		if rule.ID == "" {
			rule.ID = uuid.NewString()
		}

		if err := db.Create(&rule).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customization rule"})
			return
		}

		c.JSON(http.StatusCreated, rule)
	}
}

// DELETE /admin/customizations/:id
func DeleteCustomizationRule(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.CustomizationRule{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customization rule"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customization rule not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Customization rule deleted"})
	}
}
