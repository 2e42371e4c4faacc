package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chia168168/Recipe-1/internal/domain/recipes"
)

func testRecipe() recipes.Recipe {
	return recipes.Recipe{
		Title: "測試吐司",
		Ingredients: []recipes.Ingredient{
			{Group: "主麵團", Name: "高筋麵粉", Weight: 500, Percent: fptr(1), Description: "過篩"},
			{Group: "主麵團", Name: "水", Weight: 350},
			{Group: "裝飾", Name: "糖粉", Weight: 20},
		},
	}
}

func TestConvertScalesPercentageGroups(t *testing.T) {
	e := NewEngine(NewClassifier())

	res, err := e.Convert(testRecipe(), nil, 1000, false)
	require.NoError(t, err)

	assert.Equal(t, 500.0, res.OriginalTotalFlour)
	assert.Equal(t, 1000.0, res.NewTotalFlour)
	assert.Equal(t, 2.0, res.Ratio)

	require.Len(t, res.Ingredients, 3)
	assert.Equal(t, 1000.0, res.Ingredients[0].Weight)
	assert.Equal(t, 700.0, res.Ingredients[1].Weight)
	assert.Equal(t, 20.0, res.Ingredients[2].Weight, "decoration must not scale")
}

func TestConvertIncludeNonPercentageGroups(t *testing.T) {
	e := NewEngine(NewClassifier())

	res, err := e.Convert(testRecipe(), nil, 1000, true)
	require.NoError(t, err)
	assert.Equal(t, 40.0, res.Ingredients[2].Weight)
}

func TestConvertPreservesOrderAndFields(t *testing.T) {
	e := NewEngine(NewClassifier())
	r := testRecipe()

	res, err := e.Convert(r, nil, 750, false)
	require.NoError(t, err)

	for i, got := range res.Ingredients {
		want := r.Ingredients[i]
		assert.Equal(t, want.Group, got.Group)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Percent, got.Percent)
		assert.Equal(t, want.Description, got.Description)
	}
	// input recipe untouched
	assert.Equal(t, 500.0, r.Ingredients[0].Weight)
}

func TestConvertRoundTripAtRatioOne(t *testing.T) {
	e := NewEngine(NewClassifier())
	r := testRecipe()

	res, err := e.Convert(r, nil, 500, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Ratio)
	for i := range r.Ingredients {
		assert.InDelta(t, r.Ingredients[i].Weight, res.Ingredients[i].Weight, 0.05)
	}
}

func TestConvertIdempotent(t *testing.T) {
	e := NewEngine(NewClassifier())
	r := testRecipe()

	first, err := e.Convert(r, nil, 730, false)
	require.NoError(t, err)

	again := r
	again.Ingredients = first.Ingredients
	second, err := e.Convert(again, nil, first.OriginalTotalFlour, false)
	require.NoError(t, err)

	for i := range first.Ingredients {
		assert.InDelta(t, first.Ingredients[i].Weight, second.Ingredients[i].Weight, 0.05)
	}
}

func TestConvertRounding(t *testing.T) {
	e := NewEngine(NewClassifier())
	r := recipes.Recipe{Ingredients: []recipes.Ingredient{
		{Group: "主麵團", Name: "麵粉", Weight: 300},
		{Group: "主麵團", Name: "水", Weight: 200},
	}}

	res, err := e.Convert(r, nil, 1000, false)
	require.NoError(t, err)
	assert.Equal(t, 3.333, res.Ratio)
	// 200 * (1000/300) = 666.666… → 666.7
	assert.Equal(t, 666.7, res.Ingredients[1].Weight)
}

func TestConvertZeroWeightStaysZero(t *testing.T) {
	e := NewEngine(NewClassifier())
	r := recipes.Recipe{Ingredients: []recipes.Ingredient{
		{Group: "主麵團", Name: "麵粉", Weight: 400},
		{Group: "主麵團", Name: "鹽", Weight: 0},
	}}

	res, err := e.Convert(r, nil, 800, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Ingredients[1].Weight)
}

func TestConvertReferenceZeroHydrationQualifiesAsFlour(t *testing.T) {
	e := NewEngine(NewClassifier())
	r := recipes.Recipe{Ingredients: []recipes.Ingredient{
		{Group: "主麵團", Name: "杏仁粉基底", Weight: 500},
	}}
	ref := map[string]float64{"杏仁粉基底": 0}

	res, err := e.Convert(r, ref, 1000, false)
	require.NoError(t, err)
	assert.Equal(t, 500.0, res.OriginalTotalFlour)

	// Strict mode qualifies by keyword only.
	e.StrictFlourMatch = true
	_, err = e.Convert(r, ref, 1000, false)
	assert.ErrorIs(t, err, ErrNoFlour)
}

func TestConvertNonZeroReferenceHydrationDoesNotQualify(t *testing.T) {
	e := NewEngine(NewClassifier())
	r := recipes.Recipe{Ingredients: []recipes.Ingredient{
		{Group: "主麵團", Name: "牛奶", Weight: 500},
	}}
	ref := map[string]float64{"牛奶": 90}

	_, err := e.Convert(r, ref, 1000, false)
	assert.ErrorIs(t, err, ErrNoFlour)
}

func TestConvertFlourOutsidePercentageGroupDoesNotCount(t *testing.T) {
	e := NewEngine(NewClassifier())
	r := recipes.Recipe{Ingredients: []recipes.Ingredient{
		{Group: "裝飾", Name: "高筋麵粉", Weight: 500},
	}}

	_, err := e.Convert(r, nil, 1000, false)
	assert.ErrorIs(t, err, ErrNoFlour)
}

func TestConvertInvalidTarget(t *testing.T) {
	e := NewEngine(NewClassifier())

	_, err := e.Convert(testRecipe(), nil, 0, false)
	assert.ErrorIs(t, err, ErrInvalidTargetFlour)
	_, err = e.Convert(testRecipe(), nil, -100, false)
	assert.ErrorIs(t, err, ErrInvalidTargetFlour)
}
