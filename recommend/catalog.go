package recommend

import (
	"slices"
	"stylistapi/languageutil"
)

// catalogCategories is the order categories are listed in when none is selected.
var catalogCategories = []Category{CategoryTop, CategoryBottom, CategoryOuterwear, CategoryShoes}

var catalogBodyTypes = []BodyType{BodyTypeAthletic, BodyTypeSlim, BodyTypeDefault}

const catalogPreviewSize = 4

func catalogItem(id, name string, category Category, color, pattern, style string, formality Formality, season Season) ClothingItem {
	return ClothingItem{
		ID:        id,
		Name:      name,
		Category:  category,
		Color:     color,
		Pattern:   pattern,
		Style:     style,
		Formality: formality,
		Season:    season,
	}
}

var catalog = map[BodyType]map[Category][]ClothingItem{
	BodyTypeAthletic: {
		CategoryTop: {
			catalogItem("rec-athletic-top-1", "Athletic Fit V-Neck Tee", CategoryTop, "navy", "solid", "casual", FormalityCasual, SeasonAll),
			catalogItem("rec-athletic-top-2", "Fitted Button-Down", CategoryTop, "light blue", "solid", "smart", FormalitySmartCasual, SeasonAll),
		},
		CategoryBottom: {
			catalogItem("rec-athletic-bottom-1", "Slim Fit Chino Pants", CategoryBottom, "beige", "solid", "classic", FormalitySmartCasual, SeasonAll),
			catalogItem("rec-athletic-bottom-2", "Athletic Fit Jeans", CategoryBottom, "blue", "solid", "casual", FormalityCasual, SeasonAll),
		},
		CategoryOuterwear: {
			catalogItem("rec-athletic-outer-1", "Navy Blazer", CategoryOuterwear, "navy", "solid", "classic", FormalitySmartCasual, SeasonFall),
			catalogItem("rec-athletic-outer-2", "Bomber Jacket", CategoryOuterwear, "black", "solid", "casual", FormalityCasual, SeasonFall),
		},
		CategoryShoes: {
			catalogItem("rec-athletic-shoes-1", "Chelsea Boots", CategoryShoes, "brown", "solid", "classic", FormalitySmartCasual, SeasonFall),
			catalogItem("rec-athletic-shoes-2", "Premium Sneakers", CategoryShoes, "white", "solid", "minimalist", FormalityCasual, SeasonAll),
		},
	},
	BodyTypeSlim: {
		CategoryTop: {
			catalogItem("rec-slim-top-1", "Striped Crew Neck Tee", CategoryTop, "multi", "striped", "casual", FormalityCasual, SeasonSpring),
			catalogItem("rec-slim-top-2", "Textured Henley", CategoryTop, "gray", "textured", "casual", FormalityCasual, SeasonAll),
		},
		CategoryBottom: {
			catalogItem("rec-slim-bottom-1", "Straight Leg Jeans", CategoryBottom, "blue", "solid", "casual", FormalityCasual, SeasonAll),
			catalogItem("rec-slim-bottom-2", "Corduroy Pants", CategoryBottom, "mustard", "textured", "retro", FormalityCasual, SeasonFall),
		},
		CategoryOuterwear: {
			catalogItem("rec-slim-outer-1", "Oversized Cardigan", CategoryOuterwear, "cream", "cable knit", "cozy", FormalityCasual, SeasonFall),
			catalogItem("rec-slim-outer-2", "Overshirt Jacket", CategoryOuterwear, "olive", "solid", "utilitarian", FormalityCasual, SeasonFall),
		},
		CategoryShoes: {
			catalogItem("rec-slim-shoes-1", "Chunky Sneakers", CategoryShoes, "white", "multi", "streetwear", FormalityCasual, SeasonAll),
			catalogItem("rec-slim-shoes-2", "Combat Boots", CategoryShoes, "black", "solid", "edgy", FormalityCasual, SeasonFall),
		},
	},
	BodyTypeDefault: {
		CategoryTop: {
			catalogItem("rec-default-top-1", "Classic White Button-Down", CategoryTop, "white", "solid", "classic", FormalitySmartCasual, SeasonAll),
			catalogItem("rec-default-top-2", "Essential Crew Neck Tee", CategoryTop, "black", "solid", "minimalist", FormalityCasual, SeasonAll),
		},
		CategoryBottom: {
			catalogItem("rec-default-bottom-1", "Dark Wash Jeans", CategoryBottom, "indigo", "solid", "classic", FormalityCasual, SeasonAll),
			catalogItem("rec-default-bottom-2", "Tailored Chinos", CategoryBottom, "khaki", "solid", "classic", FormalitySmartCasual, SeasonAll),
		},
		CategoryOuterwear: {
			catalogItem("rec-default-outer-1", "Classic Denim Jacket", CategoryOuterwear, "blue", "solid", "classic", FormalityCasual, SeasonSpring),
			catalogItem("rec-default-outer-2", "Trench Coat", CategoryOuterwear, "beige", "solid", "classic", FormalitySmartCasual, SeasonFall),
		},
		CategoryShoes: {
			catalogItem("rec-default-shoes-1", "White Sneakers", CategoryShoes, "white", "solid", "minimalist", FormalityCasual, SeasonAll),
			catalogItem("rec-default-shoes-2", "Brown Leather Loafers", CategoryShoes, "brown", "solid", "classic", FormalitySmartCasual, SeasonAll),
		},
	},
}

// RecommendedItems lists catalog pieces suited to the body type. Body types without their
// own catalog use the default one; "all" or an empty category returns AllRecommendedItems.
func RecommendedItems(bodyType, category string) []ClothingItem {
	category = languageutil.Normalize(category)
	if category == "" || category == SuggestionAll {
		return AllRecommendedItems()
	}
	bt := ParseBodyType(bodyType)
	if items, ok := catalog[bt][Category(category)]; ok {
		return slices.Clone(items)
	}
	return slices.Clone(catalog[BodyTypeDefault][Category(category)])
}

// AllRecommendedItems is a short preview across every catalog.
func AllRecommendedItems() []ClothingItem {
	items := []ClothingItem{}
	for _, bt := range catalogBodyTypes {
		for _, c := range catalogCategories {
			items = append(items, catalog[bt][c]...)
			if len(items) >= catalogPreviewSize {
				return items[:catalogPreviewSize]
			}
		}
	}
	return items
}
