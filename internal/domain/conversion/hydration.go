package conversion

import "github.com/Chia168168/Recipe-1/internal/domain/recipes"

// eggWaterShare is the water fraction assumed for eggs in the keyword
// fallback. A whole egg is roughly 75% water by mass.
const eggWaterShare = 0.75

// Hydration computes the recipe's overall hydration — water-equivalent
// mass over flour-equivalent mass — rendered for display ("70.00%").
//
// ref maps ingredient names to hydration percentages in [0,100]; values
// outside that range are clamped. An ingredient with a reference entry
// is split into its dry and wet components; 0 means a pure dry good and
// 100 a pure liquid. Ingredients without an entry fall back to name
// keywords: flour counts as dry, water-like names as wet, eggs as 75%
// wet, anything else is ignored.
//
// Only positive-weight ingredients in percentage groups participate.
// With no flour mass at all the result is "0%" rather than a division
// by zero.
func (c *Classifier) Hydration(ingredients []recipes.Ingredient, ref map[string]float64) string {
	var flour, water float64
	for _, ing := range ingredients {
		if ing.Weight <= 0 || !c.IsPercentageGroup(ing.Group) {
			continue
		}
		if h, ok := ref[ing.Name]; ok {
			if h < 0 {
				h = 0
			}
			if h > 100 {
				h = 100
			}
			switch {
			case h == 0:
				flour += ing.Weight
			case h == 100:
				water += ing.Weight
			default:
				flour += ing.Weight * (100 - h) / 100
				water += ing.Weight * h / 100
			}
			continue
		}
		switch {
		case c.IsFlour(ing.Name):
			flour += ing.Weight
		case c.isWaterLike(ing.Name):
			water += ing.Weight
		case c.isEgg(ing.Name):
			water += ing.Weight * eggWaterShare
		}
	}
	if flour == 0 {
		return "0%"
	}
	return FormatPercent(water / flour)
}
