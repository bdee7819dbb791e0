package data

import (
	"testing"

	"github.com/mchmarny/leadcalc/pkg/catalog"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string) model.Product {
	return model.Product{
		ID:                  id,
		Name:                "Imported spice " + id,
		Category:            model.CategoryFood,
		LeadContentPpm:      2.5,
		LeadContentRange:    &model.LeadRange{Min: 0.5, Max: 40},
		DefaultServingGrams: 2,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Bulk spice from a market stall",
	}
}

func TestSaveProduct(t *testing.T) {
	db := setupTestDB(t)

	p := testProduct("spice_a")
	p.Explanation = &model.ExposureExplanation{
		Pathway: "Ingestion",
		Details: "Swallowed with food",
	}
	require.NoError(t, SaveProduct(db, &p))

	got, err := GetProduct(db, "spice_a")
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, model.CategoryFood, got.Category)
	assert.Equal(t, 2.5, got.LeadContentPpm)
	require.NotNil(t, got.LeadContentRange)
	assert.Equal(t, 40.0, got.LeadContentRange.Max)
	assert.True(t, got.HasVariableLead())
	require.NotNil(t, got.Explanation)
	assert.Equal(t, "Ingestion", got.Explanation.Pathway)
	assert.Empty(t, got.Explanation.EffectiveDose)

	// upsert
	p.LeadContentPpm = 3
	p.LeadContentRange = nil
	require.NoError(t, SaveProduct(db, &p))
	got, err = GetProduct(db, "spice_a")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.LeadContentPpm)
	assert.Nil(t, got.LeadContentRange)

	n, err := CountProducts(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSaveProduct_Errors(t *testing.T) {
	db := setupTestDB(t)

	p := testProduct("rice")
	assert.Error(t, SaveProduct(db, &p), "built-in id")

	p = testProduct("bad")
	p.ExposureRoute = "ocular"
	assert.Error(t, SaveProduct(db, &p))

	assert.ErrorIs(t, SaveProduct(nil, &p), errDBNotInitialized)
}

func TestSaveProducts(t *testing.T) {
	db := setupTestDB(t)

	n, err := SaveProducts(db, []model.Product{testProduct("a"), testProduct("b")})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := ListProducts(db)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)

	// one bad record rejects the batch
	_, err = SaveProducts(db, []model.Product{testProduct("c"), testProduct(catalog.CustomProductID)})
	assert.Error(t, err)
	c, err := CountProducts(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), c)
}

func TestGetProduct_NotFound(t *testing.T) {
	db := setupTestDB(t)
	_, err := GetProduct(db, "missing")
	assert.True(t, errors.Is(err, ErrProductNotFound))
}

func TestSearchProducts(t *testing.T) {
	db := setupTestDB(t)

	a := testProduct("tea_cup")
	a.Name = "Glazed Tea Cup"
	a.Description = "Ceramic leaching"
	b := testProduct("spice_b")
	_, err := SaveProducts(db, []model.Product{a, b})
	require.NoError(t, err)

	list, err := SearchProducts(db, "TEA", 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tea_cup", list[0].ID)

	list, err = SearchProducts(db, "ceramic", 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = SearchProducts(db, "spice", 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = SearchProducts(db, "plutonium", 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteProduct(t *testing.T) {
	db := setupTestDB(t)

	p := testProduct("gone")
	require.NoError(t, SaveProduct(db, &p))
	require.NoError(t, DeleteProduct(db, "gone"))

	err := DeleteProduct(db, "gone")
	assert.True(t, errors.Is(err, ErrProductNotFound))

	assert.Error(t, DeleteProduct(db, "kohl_surma"))
}

func TestFindProduct(t *testing.T) {
	db := setupTestDB(t)

	p := testProduct("local_one")
	require.NoError(t, SaveProduct(db, &p))

	got, err := FindProduct(db, "leafy_greens")
	require.NoError(t, err)
	assert.Equal(t, 0.02, got.LeadContentPpm)

	got, err = FindProduct(db, "local_one")
	require.NoError(t, err)
	assert.Equal(t, "local_one", got.ID)

	_, err = FindProduct(nil, "local_one")
	assert.True(t, errors.Is(err, ErrProductNotFound))

	lookup := ProductLookup(db)
	got, err = lookup(catalog.CustomProductID)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryCustom, got.Category)
}
