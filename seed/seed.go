// Package seed inserts the starter catalog data on first boot.
package seed

import (
	"log"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"gorm.io/gorm"
)

func f(v float64) *float64 { return &v }

var defaultRules = []models.CustomizationRule{
	{
		ID:            "extra-protein",
		Type:          models.CustomizationProtein,
		Label:         "Extra proteína (+30g)",
		PriceModifier: 4.50,
		MacroModifier: models.MacroDelta{Calories: f(120), Protein: f(30)},
	},
	{
		ID:            "double-carbs",
		Type:          models.CustomizationCarbs,
		Label:         "Doble porción de carbohidratos",
		PriceModifier: 3.00,
		MacroModifier: models.MacroDelta{Calories: f(180), Carbs: f(45)},
	},
	{
		ID:            "extra-fiber",
		Type:          models.CustomizationFiber,
		Label:         "Extra fibra (quinua y verduras)",
		PriceModifier: 2.00,
		MacroModifier: models.MacroDelta{Calories: f(60), Carbs: f(12), Fiber: f(8)},
	},
}

var defaultChallenges = []models.Challenge{
	{
		ID:          "weekly-protein",
		Title:       "Semana proteica",
		Description: "Pide 5 platos altos en proteína esta semana",
		Goal:        5,
		Reward:      150,
		Type:        models.ChallengeWeekly,
		IsActive:    true,
	},
	{
		ID:          "daily-order",
		Title:       "Pedido del día",
		Description: "Realiza un pedido hoy",
		Goal:        1,
		Reward:      20,
		Type:        models.ChallengeDaily,
		IsActive:    true,
	},
}

// Run inserts the default customization rules and challenges when their
// tables are empty. Existing rows are never touched.
func Run(db *gorm.DB) error {
	var ruleCount int64
	if err := db.Model(&models.CustomizationRule{}).Count(&ruleCount).Error; err != nil {
		return err
	}
	if ruleCount == 0 {
		if err := db.Create(&defaultRules).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d customization rules", len(defaultRules))
	}

	var challengeCount int64
	if err := db.Model(&models.Challenge{}).Count(&challengeCount).Error; err != nil {
		return err
	}
	if challengeCount == 0 {
		if err := db.Create(&defaultChallenges).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d challenges", len(defaultChallenges))
	}

	return nil
}
