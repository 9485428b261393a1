package nutrition

import (
	"math/rand"
	"testing"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func testRules() []models.CustomizationRule {
	return []models.CustomizationRule{
		{
			ID:            "extra-protein",
			Type:          models.CustomizationProtein,
			PriceModifier: 4.50,
			MacroModifier: models.MacroDelta{Calories: f(120), Protein: f(30)},
		},
		{
			ID:            "double-carbs",
			Type:          models.CustomizationCarbs,
			PriceModifier: 3.00,
			MacroModifier: models.MacroDelta{Calories: f(180), Carbs: f(45)},
		},
		{
			ID:            "extra-fiber",
			Type:          models.CustomizationFiber,
			PriceModifier: 2.00,
			MacroModifier: models.MacroDelta{Calories: f(60), Carbs: f(12), Fiber: f(8)},
		},
	}
}

func TestApplyCustomizationsSumsDefinedFields(t *testing.T) {
	base := models.Macros{Calories: 500, Protein: 40, Carbs: 50, Fat: 15, Fiber: f(6)}

	macros, price := ApplyCustomizations(base, 20.0, testRules())

	assert.Equal(t, 860.0, macros.Calories)
	assert.Equal(t, 70.0, macros.Protein)
	assert.Equal(t, 107.0, macros.Carbs)
	assert.Equal(t, 15.0, macros.Fat) // no rule touches fat
	require.NotNil(t, macros.Fiber)
	assert.Equal(t, 14.0, *macros.Fiber)
	assert.InDelta(t, 29.50, price, 1e-9)
}

func TestApplyCustomizationsOrderIndependent(t *testing.T) {
	base := models.Macros{Calories: 420, Protein: 32, Carbs: 38, Fat: 12, Fiber: f(5)}
	rules := testRules()

	wantMacros, wantPrice := ApplyCustomizations(base, 18.0, rules)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.CustomizationRule(nil), rules...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		macros, price := ApplyCustomizations(base, 18.0, shuffled)
		assert.Equal(t, wantMacros.Calories, macros.Calories)
		assert.Equal(t, wantMacros.Protein, macros.Protein)
		assert.Equal(t, wantMacros.Carbs, macros.Carbs)
		assert.Equal(t, wantMacros.Fat, macros.Fat)
		assert.Equal(t, *wantMacros.Fiber, *macros.Fiber)
		assert.Equal(t, wantPrice, price)
	}
}

func TestApplyCustomizationsFiberSuppressedWithoutBaseFiber(t *testing.T) {
	base := models.Macros{Calories: 300, Protein: 25, Carbs: 20, Fat: 10} // no fiber tracked

	macros, _ := ApplyCustomizations(base, 15.0, testRules())

	assert.Nil(t, macros.Fiber, "fiber modifiers must be dropped when the base has no fiber")
	// The fiber rule's other fields still apply.
	assert.Equal(t, 660.0, macros.Calories)
	assert.Equal(t, 77.0, macros.Carbs)
}

func TestApplyCustomizationsNoRules(t *testing.T) {
	base := models.Macros{Calories: 350, Protein: 28, Carbs: 30, Fat: 11, Fiber: f(4)}

	macros, price := ApplyCustomizations(base, 16.5, nil)

	assert.Equal(t, base.Calories, macros.Calories)
	assert.Equal(t, *base.Fiber, *macros.Fiber)
	assert.Equal(t, 16.5, price)
}

func TestApplyCustomizationsDoesNotMutateBase(t *testing.T) {
	fiber := 6.0
	base := models.Macros{Calories: 500, Fiber: &fiber}

	_, _ = ApplyCustomizations(base, 20.0, testRules())

	assert.Equal(t, 6.0, fiber, "base fiber must not be mutated through the shared pointer")
}
