package adminControllers

import (
	"net/http"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /admin/challenges
func CreateChallenge(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var challenge models.Challenge
		if err := c.ShouldBindJSON(&challenge); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if challenge.Title == "" || challenge.Goal <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title and a positive goal are required"})
			return
		}
		switch challenge.Type {
		case models.ChallengeDaily, models.ChallengeWeekly, models.ChallengeMonthly:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge type"})
			return
		}
		if challenge.ID == "" {
			challenge.ID = uuid.NewString()
		}
		challenge.IsActive = true

		if err := db.Create(&challenge).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge"})
			return
		}

		c.JSON(http.StatusCreated, challenge)
	}
}

// PUT /admin/challenges/:id/deactivate
func DeactivateChallenge(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Challenge{}).
			Where("id = ?", c.Param("id")).
			Update("is_active", false)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate challenge"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Challenge deactivated"})
	}
}

// GET /admin/challenges
func ListChallenges(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var challenges []models.Challenge
		if err := db.Order("created_at DESC").Find(&challenges).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenges"})
			return
		}

		c.JSON(http.StatusOK, challenges)
	}
}
