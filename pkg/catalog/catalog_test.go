package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	list := All()
	assert.Len(t, list, 27)

	ids := make(map[string]bool)
	for _, p := range list {
		require.NoError(t, p.Validate(), p.ID)
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
		assert.NotEqual(t, CustomProductID, p.ID)
	}

	// callers get a copy
	list[0].LeadContentPpm = 999
	assert.NotEqual(t, 999.0, All()[0].LeadContentPpm)
}

func TestFind(t *testing.T) {
	p, ok := Find("leafy_greens")
	require.True(t, ok)
	assert.Equal(t, 0.02, p.LeadContentPpm)
	assert.Equal(t, 85.0, p.DefaultServingGrams)

	p, ok = Find(CustomProductID)
	require.True(t, ok)
	assert.Equal(t, model.CategoryCustom, p.Category)
	assert.Equal(t, 0.0, p.LeadContentPpm)
	assert.Equal(t, 100.0, p.DefaultServingGrams)

	_, ok = Find("nope")
	assert.False(t, ok)
	assert.False(t, Exists("nope"))
	assert.True(t, Exists("kohl_surma"))
}

func TestByCategory(t *testing.T) {
	tests := []struct {
		category model.ProductCategory
		count    int
	}{
		{model.CategoryFood, 14},
		{model.CategoryBeverage, 2},
		{model.CategoryBabyFood, 5},
		{model.CategoryCosmetic, 6},
		{model.CategoryCustom, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			list := ByCategory(tt.category)
			assert.Len(t, list, tt.count)
			for _, p := range list {
				assert.Equal(t, tt.category, p.Category)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	list := Search("CHOCOLATE")
	assert.Len(t, list, 2)

	// description match
	list = Search("colorants")
	require.Len(t, list, 1)
	assert.Equal(t, "turmeric", list[0].ID)

	assert.Empty(t, Search("plutonium"))

	// ids match even when the name does not
	list = Search("kohl_surma")
	require.Len(t, list, 1)
	assert.Equal(t, "kohl_surma", list[0].ID)
	assert.Len(t, Search(""), len(All()))
}

func TestCustom(t *testing.T) {
	c := Custom()
	assert.Equal(t, CustomProductID, c.ID)
	assert.Equal(t, model.RouteIngestion, c.ExposureRoute)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.yaml")
	content := `products:
  - id: grandma_spice
    name: Imported spice blend
    category: food
    lead_content_ppm: 2.5
    lead_content_range: {min: 0.5, max: 40}
    default_serving_grams: 2
    exposure_route: ingestion
  - id: ceramic_tea
    category: beverage
    lead_content_ppm: 0.3
    default_serving_grams: 250
    exposure_route: ingestion
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "grandma_spice", list[0].ID)
	assert.Equal(t, 2.5, list[0].LeadContentPpm)
	require.NotNil(t, list[0].LeadContentRange)
	assert.Equal(t, 40.0, list[0].LeadContentRange.Max)
	assert.True(t, list[0].HasVariableLead())
	assert.Equal(t, "ceramic_tea", list[1].Name)
}

func TestLoadFile_JSON(t *testing.T) {
	list, err := Parse([]byte(`{"products":[{"id":"x1","category":"cosmetic","lead_content_ppm":3,"default_serving_grams":0.5,"exposure_route":"dermal"}]}`))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.RouteDermal, list[0].ExposureRoute)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile("")
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", "products: [\n"},
		{"builtin id", "products:\n  - {id: rice, category: food, lead_content_ppm: 1, default_serving_grams: 1, exposure_route: ingestion}\n"},
		{"duplicate", "products:\n  - {id: a, category: food, lead_content_ppm: 1, default_serving_grams: 1, exposure_route: ingestion}\n  - {id: a, category: food, lead_content_ppm: 1, default_serving_grams: 1, exposure_route: ingestion}\n"},
		{"bad route", "products:\n  - {id: a, category: food, lead_content_ppm: 1, default_serving_grams: 1, exposure_route: ocular}\n"},
		{"negative ppm", "products:\n  - {id: a, category: food, lead_content_ppm: -1, default_serving_grams: 1, exposure_route: ingestion}\n"},
		{"nan ppm", "products:\n  - {id: a, category: food, lead_content_ppm: .nan, default_serving_grams: 1, exposure_route: ingestion}\n"},
		{"inf serving", "products:\n  - {id: a, category: food, lead_content_ppm: 1, default_serving_grams: .inf, exposure_route: ingestion}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}
