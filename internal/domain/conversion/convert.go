package conversion

import (
	"errors"
	"math"

	"github.com/Chia168168/Recipe-1/internal/domain/recipes"
)

var (
	// ErrInvalidTargetFlour means the requested new flour total was zero
	// or negative.
	ErrInvalidTargetFlour = errors.New("new total flour must be greater than zero")

	// ErrNoFlour means no qualifying flour ingredient was found, so no
	// scaling ratio can be derived.
	ErrNoFlour = errors.New("recipe has no flour ingredient or flour weight is zero")
)

// Result is the outcome of scaling a recipe to a new flour total.
// Ingredients keeps the original order; only weights change.
type Result struct {
	OriginalTotalFlour float64
	NewTotalFlour      float64
	Ratio              float64
	Ingredients        []recipes.Ingredient
}

// Engine scales recipes by baker's percentage. It is stateless and safe
// for concurrent use.
//
// By default an ingredient qualifies as flour when its name matches a
// flour keyword OR the reference table records its hydration as exactly
// 0 (a dry good standing in for flour, e.g. a ground grain the keyword
// list misses). StrictFlourMatch disables the reference-table escape
// hatch and qualifies by keyword only.
type Engine struct {
	Classifier       *Classifier
	StrictFlourMatch bool
}

func NewEngine(c *Classifier) *Engine {
	return &Engine{Classifier: c}
}

func (e *Engine) qualifiesAsFlour(name string, ref map[string]float64) bool {
	if e.Classifier.IsFlour(name) {
		return true
	}
	if e.StrictFlourMatch {
		return false
	}
	h, ok := ref[name]
	return ok && h == 0
}

// Convert scales the recipe so its total flour weight becomes
// newTotalFlour. Ingredients in percentage groups are always scaled;
// the rest (decoration, generic fillings) only when
// includeNonPercentageGroups is set. Weights are rounded to one decimal
// place, the ratio to three. Non-weight fields and ingredient order are
// preserved.
func (e *Engine) Convert(r recipes.Recipe, ref map[string]float64, newTotalFlour float64, includeNonPercentageGroups bool) (*Result, error) {
	if newTotalFlour <= 0 {
		return nil, ErrInvalidTargetFlour
	}

	var original float64
	for _, ing := range r.Ingredients {
		if e.qualifiesAsFlour(ing.Name, ref) && e.Classifier.IsPercentageGroup(ing.Group) {
			original += ing.Weight
		}
	}
	if original <= 0 {
		return nil, ErrNoFlour
	}

	ratio := newTotalFlour / original
	converted := make([]recipes.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		if e.Classifier.IsPercentageGroup(ing.Group) || includeNonPercentageGroups {
			ing.Weight = round(ing.Weight*ratio, 1)
		}
		converted[i] = ing
	}

	return &Result{
		OriginalTotalFlour: round(original, 1),
		NewTotalFlour:      round(newTotalFlour, 1),
		Ratio:              round(ratio, 3),
		Ingredients:        converted,
	}, nil
}

func round(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}
