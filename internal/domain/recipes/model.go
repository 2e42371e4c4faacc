package recipes

import "time"

// Baking holds the oven settings carried with a recipe. They are passed
// through computations unchanged.
type Baking struct {
	TopHeat    int  `json:"topHeat"`
	BottomHeat int  `json:"bottomHeat"`
	Time       int  `json:"time"`
	Convection bool `json:"convection"`
	Steam      bool `json:"steam"`
}

// Ingredient is a single line of a recipe. Percent is the baker's
// percentage as a canonical fraction (0.625 for 62.5%), nil when the
// user never recorded one.
type Ingredient struct {
	Group       string
	Name        string
	Weight      float64 // grams
	Percent     *float64
	Description string
}

// Recipe is the aggregate reassembled from the per-ingredient rows.
// Ingredient order is preserved for display; grouping is by the Group
// field, not by position.
type Recipe struct {
	Title       string
	Ingredients []Ingredient
	Steps       string
	Baking      Baking
	Timestamp   time.Time
}

// Row mirrors one raw row of the recipes table (one ingredient per row).
// Used by the diagnostics endpoint and the Excel export.
type Row struct {
	ID          int64
	Title       string
	GroupName   string
	Ingredient  string
	Weight      float64
	Percent     *float64
	Description string
	Steps       string
	Timestamp   time.Time
	TopHeat     int
	BottomHeat  int
	BakeTime    int
	Convection  bool
	Steam       bool
}
