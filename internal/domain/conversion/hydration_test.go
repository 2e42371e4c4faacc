package conversion

import (
	"testing"

	"github.com/Chia168168/Recipe-1/internal/domain/recipes"
)

func ing(group, name string, weight float64) recipes.Ingredient {
	return recipes.Ingredient{Group: group, Name: name, Weight: weight}
}

func TestHydrationWithReferenceTable(t *testing.T) {
	c := NewClassifier()

	ings := []recipes.Ingredient{
		ing("主麵團", "高筋麵粉", 1000),
		ing("主麵團", "水", 700),
	}
	ref := map[string]float64{"水": 100}

	if got := c.Hydration(ings, ref); got != "70.00%" {
		t.Fatalf("Hydration = %q, want 70.00%%", got)
	}
}

func TestHydrationSplitsPartialHydration(t *testing.T) {
	c := NewClassifier()

	// Milk at 90% hydration: 200g → 180g water + 20g dry.
	ings := []recipes.Ingredient{
		ing("主麵團", "高筋麵粉", 980),
		ing("主麵團", "牛奶", 200),
	}
	ref := map[string]float64{"牛奶": 90}

	// water 180, flour 980+20=1000
	if got := c.Hydration(ings, ref); got != "18.00%" {
		t.Fatalf("Hydration = %q, want 18.00%%", got)
	}
}

func TestHydrationClampsReferenceValues(t *testing.T) {
	c := NewClassifier()

	ings := []recipes.Ingredient{
		ing("主麵團", "神秘粉", 500), // clamped to 0 → dry
		ing("主麵團", "神秘液", 250), // clamped to 100 → wet
	}
	ref := map[string]float64{"神秘粉": -10, "神秘液": 130}

	if got := c.Hydration(ings, ref); got != "50.00%" {
		t.Fatalf("Hydration = %q, want 50.00%%", got)
	}
}

func TestHydrationKeywordFallback(t *testing.T) {
	c := NewClassifier()

	ings := []recipes.Ingredient{
		ing("主麵團", "高筋麵粉", 1000), // flour keyword → dry
		ing("主麵團", "鮮奶", 300),    // water-like keyword → wet
		ing("主麵團", "雞蛋", 100),    // egg → 75g water, no flour
		ing("主麵團", "砂糖", 80),     // no keyword, no entry → ignored
	}

	// water 300+75=375, flour 1000 → 37.50%
	if got := c.Hydration(ings, nil); got != "37.50%" {
		t.Fatalf("Hydration = %q, want 37.50%%", got)
	}
}

func TestHydrationSkipsNonPercentageGroupsAndZeroWeights(t *testing.T) {
	c := NewClassifier()

	ings := []recipes.Ingredient{
		ing("主麵團", "高筋麵粉", 1000),
		ing("主麵團", "水", 600),
		ing("裝飾", "水", 500),    // decoration group does not count
		ing("主麵團", "水", 0),     // zero weight skipped
		ing("主麵團", "高筋麵粉", -5), // negative weight skipped
	}
	ref := map[string]float64{"水": 100}

	if got := c.Hydration(ings, ref); got != "60.00%" {
		t.Fatalf("Hydration = %q, want 60.00%%", got)
	}
}

func TestHydrationNoFlour(t *testing.T) {
	c := NewClassifier()

	ings := []recipes.Ingredient{
		ing("主麵團", "水", 700),
	}
	ref := map[string]float64{"水": 100}

	if got := c.Hydration(ings, ref); got != "0%" {
		t.Fatalf("Hydration = %q, want literal 0%%", got)
	}
	if got := c.Hydration(nil, nil); got != "0%" {
		t.Fatalf("Hydration(empty) = %q, want 0%%", got)
	}
}
