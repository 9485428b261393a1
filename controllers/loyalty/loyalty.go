package loyaltyControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type challengeView struct {
	models.Challenge
	CurrentProgress int       `json:"current_progress"`
	IsCompleted     bool      `json:"is_completed"`
	EndsAt          time.Time `json:"ends_at"`
}

// GET /user/challenges — active challenges joined with the user's progress.
// Progress rows are seeded lazily the first time a user sees a challenge.
func GetChallenges(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var active []models.Challenge
		if err := db.Where("is_active = ?", true).Find(&active).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenges"})
			return
		}

		var progress []models.UserChallenge
		if err := db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenge progress"})
			return
		}

		progressByChallenge := make(map[string]models.UserChallenge, len(progress))
		for _, p := range progress {
			progressByChallenge[p.ChallengeID] = p
		}

		// Seed rows one at a time; a unique-index conflict just means another
		// request won the race.
		for _, challenge := range active {
			if _, ok := progressByChallenge[challenge.ID]; ok {
				continue
			}
			row := models.UserChallenge{
				UserID:      userID,
				ChallengeID: challenge.ID,
			}
			if err := db.Create(&row).Error; err != nil {
				log.Printf("❌ Failed to seed challenge progress for %s: %v", challenge.ID, err)
				continue
			}
			progressByChallenge[challenge.ID] = row
		}

		now := time.Now()
		views := make([]challengeView, 0, len(active))
		for _, challenge := range active {
			p := progressByChallenge[challenge.ID]
			views = append(views, challengeView{
				Challenge:       challenge,
				CurrentProgress: p.CurrentProgress,
				IsCompleted:     p.IsCompleted,
				EndsAt:          periodEnd(now, challenge.Type),
			})
		}

		c.JSON(http.StatusOK, views)
	}
}

// GET /user/loyalty
func GetLoyaltyPoints(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var points models.LoyaltyPoints
		err := db.First(&points, "user_id = ?", userID).Error
		if err == gorm.ErrRecordNotFound {
			points = models.LoyaltyPoints{UserID: userID}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loyalty points"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id":      points.UserID,
			"total_points": points.TotalPoints,
			"tier":         points.Tier(),
		})
	}
}

// periodEnd computes when a challenge period closes: end of today, end of
// the week (Sunday), or last day of the month.
func periodEnd(now time.Time, challengeType models.ChallengeType) time.Time {
	endOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	}

	switch challengeType {
	case models.ChallengeDaily:
		return endOfDay(now)
	case models.ChallengeWeekly:
		daysUntilSunday := (7 - int(now.Weekday())) % 7
		return endOfDay(now.AddDate(0, 0, daysUntilSunday))
	case models.ChallengeMonthly:
		firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
		return endOfDay(firstOfNext.AddDate(0, 0, -1))
	default:
		return endOfDay(now.AddDate(0, 0, 7))
	}
}
