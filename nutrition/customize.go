// Package nutrition computes customized macros and prices for menu items.
// All functions are pure: callers pass base values and get fresh results back,
// nothing is mutated in place.
package nutrition

import "github.com/SebastianPortocarrero/TFVitanza/models"

// ApplyCustomizations adds each rule's modifiers to the base macros and price.
// Only fields present in a rule's macro modifier are touched, so a pure
// protein rule leaves carbs alone. Fiber is summed only when the base item
// tracks fiber; otherwise fiber modifiers are dropped rather than inventing a
// field the catalog never defined.
//
// Addition is commutative, so the result is independent of rule order. The
// caller is responsible for passing a deduplicated set: no rule should appear
// twice.
func ApplyCustomizations(base models.Macros, basePrice float64, rules []models.CustomizationRule) (models.Macros, float64) {
	result := base
	if base.Fiber != nil {
		fiber := *base.Fiber
		result.Fiber = &fiber
	}
	price := basePrice

	for _, rule := range rules {
		mod := rule.MacroModifier
		if mod.Calories != nil {
			result.Calories += *mod.Calories
		}
		if mod.Protein != nil {
			result.Protein += *mod.Protein
		}
		if mod.Carbs != nil {
			result.Carbs += *mod.Carbs
		}
		if mod.Fat != nil {
			result.Fat += *mod.Fat
		}
		if mod.Fiber != nil && result.Fiber != nil {
			*result.Fiber += *mod.Fiber
		}
		price += rule.PriceModifier
	}

	return result, price
}
