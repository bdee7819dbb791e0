package catalog

import (
	"github.com/mchmarny/leadcalc/pkg/model"
)

// Lead concentrations are typical or median values in ppm (µg/g) from the
// FDA Total Diet Study, the FDA Chemical Contaminants Transparency Tool,
// Consumer Reports testing and published literature. Not-detected values are
// represented at the 0.001 ppm detection limit.

var foodProducts = []model.Product{
	{
		ID:                  "leafy_greens",
		Name:                "Leafy greens (spinach, lettuce, kale)",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.02,
		LeadContentRange:    &model.LeadRange{Min: 0.005, Max: 0.1},
		DefaultServingGrams: 85,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Fresh leafy vegetables",
	},
	{
		ID:                  "root_vegetables",
		Name:                "Root vegetables (carrots, potatoes, beets)",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.03,
		LeadContentRange:    &model.LeadRange{Min: 0.01, Max: 0.15},
		DefaultServingGrams: 150,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Can absorb lead from soil",
	},
	{
		ID:                  "fruit_fresh",
		Name:                "Fresh fruit (apples, berries, citrus)",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.01,
		LeadContentRange:    &model.LeadRange{Min: 0.001, Max: 0.05},
		DefaultServingGrams: 150,
		ExposureRoute:       model.RouteIngestion,
	},
	{
		ID:                  "rice",
		Name:                "Rice (white or brown)",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.01,
		LeadContentRange:    &model.LeadRange{Min: 0.005, Max: 0.04},
		DefaultServingGrams: 185,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Brown rice may have slightly higher levels",
	},
	{
		ID:                  "bread_wheat",
		Name:                "Bread (wheat/white)",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.02,
		LeadContentRange:    &model.LeadRange{Min: 0.005, Max: 0.06},
		DefaultServingGrams: 30,
		ExposureRoute:       model.RouteIngestion,
	},
	{
		ID:                  "beef",
		Name:                "Beef (ground or steak)",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.02,
		LeadContentRange:    &model.LeadRange{Min: 0.005, Max: 0.08},
		DefaultServingGrams: 113,
		ExposureRoute:       model.RouteIngestion,
	},
	{
		ID:                  "chicken",
		Name:                "Chicken",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.01,
		LeadContentRange:    &model.LeadRange{Min: 0.002, Max: 0.04},
		DefaultServingGrams: 113,
		ExposureRoute:       model.RouteIngestion,
	},
	{
		ID:                  "fish",
		Name:                "Fish (salmon, tuna, etc.)",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.03,
		LeadContentRange:    &model.LeadRange{Min: 0.01, Max: 0.1},
		DefaultServingGrams: 113,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Varies by species and source",
	},
	{
		ID:                  "spices_general",
		Name:                "Spices (general - oregano, basil, etc.)",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.5,
		LeadContentRange:    &model.LeadRange{Min: 0.1, Max: 2.0},
		DefaultServingGrams: 1,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Spices can have elevated lead levels",
	},
	{
		ID:                  "turmeric",
		Name:                "Turmeric",
		Category:            model.CategoryFood,
		LeadContentPpm:      1.0,
		LeadContentRange:    &model.LeadRange{Min: 0.1, Max: 5.0},
		DefaultServingGrams: 3,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Some turmeric products have been found with high lead levels due to added colorants",
	},
	{
		ID:                  "cinnamon",
		Name:                "Cinnamon",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.3,
		LeadContentRange:    &model.LeadRange{Min: 0.05, Max: 1.5},
		DefaultServingGrams: 2.5,
		ExposureRoute:       model.RouteIngestion,
	},
	{
		ID:                  "chili_powder",
		Name:                "Chili powder / Paprika",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.8,
		LeadContentRange:    &model.LeadRange{Min: 0.1, Max: 3.0},
		DefaultServingGrams: 2.5,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Red spices may have higher lead from processing",
	},
	{
		ID:                  "dark_chocolate",
		Name:                "Dark chocolate",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.15,
		LeadContentRange:    &model.LeadRange{Min: 0.02, Max: 0.5},
		DefaultServingGrams: 40,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Lead accumulates in cocoa during processing",
	},
	{
		ID:                  "milk_chocolate",
		Name:                "Milk chocolate",
		Category:            model.CategoryFood,
		LeadContentPpm:      0.05,
		LeadContentRange:    &model.LeadRange{Min: 0.01, Max: 0.15},
		DefaultServingGrams: 40,
		ExposureRoute:       model.RouteIngestion,
	},
	{
		ID:                  "fruit_juice",
		Name:                "Fruit juice",
		Category:            model.CategoryBeverage,
		LeadContentPpm:      0.005,
		LeadContentRange:    &model.LeadRange{Min: 0.001, Max: 0.03},
		DefaultServingGrams: 240,
		ExposureRoute:       model.RouteIngestion,
	},
	{
		ID:                  "wine",
		Name:                "Wine",
		Category:            model.CategoryBeverage,
		LeadContentPpm:      0.02,
		LeadContentRange:    &model.LeadRange{Min: 0.005, Max: 0.08},
		DefaultServingGrams: 150,
		ExposureRoute:       model.RouteIngestion,
	},
}

// FDA action levels for most baby foods are 10-20 ppb (0.01-0.02 ppm).
var babyFoodProducts = []model.Product{
	{
		ID:                  "baby_cereal",
		Name:                "Baby cereal (rice/oat)",
		Category:            model.CategoryBabyFood,
		LeadContentPpm:      0.015,
		LeadContentRange:    &model.LeadRange{Min: 0.002, Max: 0.04},
		DefaultServingGrams: 30,
		ExposureRoute:       model.RouteIngestion,
		Description:         "FDA action level is 20 ppb (0.02 ppm)",
	},
	{
		ID:                  "baby_puree_fruit",
		Name:                "Baby food puree (fruits)",
		Category:            model.CategoryBabyFood,
		LeadContentPpm:      0.008,
		LeadContentRange:    &model.LeadRange{Min: 0.001, Max: 0.02},
		DefaultServingGrams: 113,
		ExposureRoute:       model.RouteIngestion,
	},
	{
		ID:                  "baby_puree_veg",
		Name:                "Baby food puree (vegetables)",
		Category:            model.CategoryBabyFood,
		LeadContentPpm:      0.01,
		LeadContentRange:    &model.LeadRange{Min: 0.002, Max: 0.03},
		DefaultServingGrams: 113,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Root vegetable purees may have higher levels",
	},
	{
		ID:                  "baby_snacks",
		Name:                "Baby snacks (puffs, teething biscuits)",
		Category:            model.CategoryBabyFood,
		LeadContentPpm:      0.012,
		LeadContentRange:    &model.LeadRange{Min: 0.003, Max: 0.03},
		DefaultServingGrams: 14,
		ExposureRoute:       model.RouteIngestion,
	},
	{
		ID:                  "infant_formula",
		Name:                "Infant formula (prepared)",
		Category:            model.CategoryBabyFood,
		LeadContentPpm:      0.003,
		LeadContentRange:    &model.LeadRange{Min: 0.001, Max: 0.01},
		DefaultServingGrams: 240,
		ExposureRoute:       model.RouteIngestion,
	},
}

var cosmeticProducts = []model.Product{
	{
		ID:                  "lipstick",
		Name:                "Lipstick / Lip gloss",
		Category:            model.CategoryCosmetic,
		LeadContentPpm:      1.0,
		LeadContentRange:    &model.LeadRange{Min: 0.1, Max: 7.0},
		DefaultServingGrams: 0.024,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Lead is a natural contaminant in color additives. FDA limit is 10 ppm.",
		Explanation: &model.ExposureExplanation{
			Pathway:       "Lips → Licked/eaten/drinking → GI tract",
			Details:       "Lipstick applied to lips is gradually ingested through licking, eating, and drinking. FDA estimates that lipstick wearers ingest most of what they apply over the course of the day.",
			EffectiveDose: "~24mg per application, ~87mg/day with reapplication. Nearly all eventually ingested.",
		},
	},
	{
		ID:                  "lipstick_daily",
		Name:                "Lipstick (full day use, multiple applications)",
		Category:            model.CategoryCosmetic,
		LeadContentPpm:      1.0,
		LeadContentRange:    &model.LeadRange{Min: 0.1, Max: 7.0},
		DefaultServingGrams: 0.087,
		ExposureRoute:       model.RouteIngestion,
		Description:         "Accounts for reapplication throughout the day",
		Explanation: &model.ExposureExplanation{
			Pathway:       "Lips → Licked/eaten/drinking → GI tract",
			Details:       "With typical reapplication 2-3 times daily, FDA estimates ~87mg of lipstick is applied per day. Studies show essentially all of this is eventually ingested through normal activities.",
			EffectiveDose: "~87mg/day applied. Absorption: 50% of ingested lead (adult GI absorption).",
		},
	},
	{
		ID:                  "kohl_surma",
		Name:                "Kohl / Surma (traditional eye cosmetic)",
		Category:            model.CategoryCosmetic,
		LeadContentPpm:      500,
		LeadContentRange:    &model.LeadRange{Min: 1, Max: 800000},
		DefaultServingGrams: 0.02,
		ExposureRoute:       model.RouteIngestion,
		Description:         "WARNING: Traditional kohl often contains extremely high lead levels.",
		Explanation: &model.ExposureExplanation{
			Pathway:       "Eyes → Tear ducts → Nasolacrimal duct → Throat → GI tract",
			Details:       "Material applied around the eyes drains through the tear ducts into the nasolacrimal duct, which empties into the throat. An estimated 10-30% of applied material reaches the GI tract this way. This is the same pathway tears take.",
			EffectiveDose: "~20mg applied per use. ~2-6mg reaches GI tract (10-30%). Some traditional kohl is 50-80% lead sulfide.",
		},
	},
	{
		ID:                  "foundation",
		Name:                "Foundation / Face powder",
		Category:            model.CategoryCosmetic,
		LeadContentPpm:      0.5,
		LeadContentRange:    &model.LeadRange{Min: 0.1, Max: 2.0},
		DefaultServingGrams: 1,
		ExposureRoute:       model.RouteDermal,
		Description:         "Applied to skin. Dermal absorption is low (~1%).",
		Explanation: &model.ExposureExplanation{
			Pathway:       "Skin → Dermal absorption (minimal)",
			Details:       "Lead has very low dermal absorption through intact skin (~1%). Most applied to face stays on surface and is removed by washing. Some may be inadvertently ingested via hand-to-mouth contact.",
			EffectiveDose: "~1g applied. Only ~1% absorbed dermally = ~0.01g effective dose.",
		},
	},
	{
		ID:                  "hair_dye",
		Name:                "Hair dye (lead acetate-based)",
		Category:            model.CategoryCosmetic,
		LeadContentPpm:      6000,
		LeadContentRange:    &model.LeadRange{Min: 0, Max: 6000},
		DefaultServingGrams: 0.1,
		ExposureRoute:       model.RouteDermal,
		Description:         "Lead acetate hair dyes were banned by FDA in 2022. Some may still be available.",
		Explanation: &model.ExposureExplanation{
			Pathway:       "Scalp → Dermal absorption (minimal)",
			Details:       "These \"progressive\" hair dyes contained lead acetate to gradually darken hair. FDA banned them in 2022. Dermal absorption is low but scalp may absorb slightly more than other skin.",
			EffectiveDose: "Variable based on application method. Scalp contact is brief during application.",
		},
	},
	{
		ID:                  "hair_dye_regular",
		Name:                "Hair dye (regular/modern)",
		Category:            model.CategoryCosmetic,
		LeadContentPpm:      0.5,
		LeadContentRange:    &model.LeadRange{Min: 0.1, Max: 2.0},
		DefaultServingGrams: 0.5,
		ExposureRoute:       model.RouteDermal,
		Description:         "Modern hair dyes without lead acetate",
		Explanation: &model.ExposureExplanation{
			Pathway:       "Scalp → Dermal absorption (minimal)",
			Details:       "Modern hair dyes may contain trace lead as a contaminant. Contact with scalp is brief and dermal absorption is very low (~1%).",
			EffectiveDose: "Brief scalp contact during application. ~1% dermal absorption.",
		},
	},
}

var customProduct = model.Product{
	ID:                  CustomProductID,
	Name:                "Custom product",
	Category:            model.CategoryCustom,
	LeadContentPpm:      0,
	DefaultServingGrams: 100,
	ExposureRoute:       model.RouteIngestion,
	Description:         "Enter your own lead concentration",
}
