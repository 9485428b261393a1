package userControllers

import (
	"net/http"

	"github.com/SebastianPortocarrero/TFVitanza/localstore"
	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const goalKeyPrefix = "vitanza_goal:"

type UpdateProfileInput struct {
	Name                string   `json:"name"`
	Goal                string   `json:"goal"`
	Weight              *float64 `json:"weight"`
	Height              *float64 `json:"height"`
	ActivityLevel       string   `json:"activity_level"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

type GoalInput struct {
	Goal string `json:"goal" binding:"required"`
}

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.Preload("Profile").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// PUT /user
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Goal != "" && !validGoal(input.Goal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Objetivo fitness inválido"})
			return
		}

		var user models.User
		if err := db.Preload("Profile").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		if input.Name != "" {
			if err := db.Model(&user).Update("name", input.Name).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		profile := user.Profile
		profile.UserID = userID
		if input.Goal != "" {
			profile.Goal = models.FitnessGoal(input.Goal)
		}
		if input.Weight != nil {
			profile.Weight = input.Weight
		}
		if input.Height != nil {
			profile.Height = input.Height
		}
		if input.ActivityLevel != "" {
			profile.ActivityLevel = input.ActivityLevel
		}
		if input.DietaryRestrictions != nil {
			profile.DietaryRestrictions = input.DietaryRestrictions
		}

		if err := db.Save(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// PUT /session/goal — anonymous sessions keep the fitness goal in the local
// store until they register.
func SetSessionGoal(local *localstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input GoalInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !validGoal(input.Goal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Objetivo fitness inválido"})
			return
		}

		if err := local.Set(goalKeyPrefix+userID, input.Goal); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"goal": input.Goal})
	}
}

// GET /session/goal
func GetSessionGoal(local *localstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		goal, found, err := local.Get(goalKeyPrefix + userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read preference"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "No hay objetivo guardado"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"goal": goal})
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Preload("Profile").Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

func validGoal(goal string) bool {
	switch models.FitnessGoal(goal) {
	case models.GoalMuscleGain, models.GoalFatLoss, models.GoalPerformance:
		return true
	}
	return false
}
