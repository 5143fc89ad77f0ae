package recommend

import (
	"fmt"
	"stylistapi/languageutil"
)

type BodyType string

const (
	BodyTypeAthletic  BodyType = "athletic"
	BodyTypeSlim      BodyType = "slim"
	BodyTypeCurvy     BodyType = "curvy"
	BodyTypeMuscular  BodyType = "muscular"
	BodyTypePear      BodyType = "pear"
	BodyTypeRectangle BodyType = "rectangle"
	BodyTypeHourglass BodyType = "hourglass"
	BodyTypeDefault   BodyType = "default"
)

var BodyTypes = []BodyType{
	BodyTypeAthletic, BodyTypeSlim, BodyTypeCurvy, BodyTypeMuscular,
	BodyTypePear, BodyTypeRectangle, BodyTypeHourglass,
}

// ParseBodyType maps free text to a known body type, or default.
func ParseBodyType(value string) BodyType {
	bt := BodyType(languageutil.Normalize(value))
	for _, known := range BodyTypes {
		if bt == known {
			return bt
		}
	}
	return BodyTypeDefault
}

// SuggestionAll keys the suggestions shown when no category is selected.
const SuggestionAll = "all"

type Suggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StyleGuide holds personalised style text per body type and category.
type StyleGuide struct {
	entries map[BodyType]map[string][]Suggestion
}

// NewStyleGuide requires a default entry with an "all" list, and rejects body types
// outside the enumeration, empty lists and unnamed suggestions.
func NewStyleGuide(entries map[BodyType]map[string][]Suggestion) (*StyleGuide, error) {
	def, ok := entries[BodyTypeDefault]
	if !ok {
		return nil, fmt.Errorf("style guide: missing %q entry", BodyTypeDefault)
	}
	if len(def[SuggestionAll]) == 0 {
		return nil, fmt.Errorf("style guide: %q entry needs %q suggestions", BodyTypeDefault, SuggestionAll)
	}
	for bt, categories := range entries {
		if bt != BodyTypeDefault && ParseBodyType(string(bt)) != bt {
			return nil, fmt.Errorf("style guide: unknown body type %q", bt)
		}
		if len(categories) == 0 {
			return nil, fmt.Errorf("style guide: body type %q has no suggestions", bt)
		}
		for category, list := range categories {
			if category != SuggestionAll && !listed(categoryNames, category) {
				return nil, fmt.Errorf("style guide: body type %q has unknown category %q", bt, category)
			}
			if len(list) == 0 {
				return nil, fmt.Errorf("style guide: body type %q category %q is empty", bt, category)
			}
			for _, s := range list {
				if s.Name == "" {
					return nil, fmt.Errorf("style guide: body type %q category %q has an unnamed suggestion", bt, category)
				}
			}
		}
	}
	return &StyleGuide{entries: entries}, nil
}

// Suggestions resolves body type, then category, falling back to the body type's "all"
// list and then to the default entry.
func (g *StyleGuide) Suggestions(bodyType, category string) []Suggestion {
	bt := ParseBodyType(bodyType)
	category = languageutil.Normalize(category)
	if category == "" {
		category = SuggestionAll
	}
	for _, candidate := range []BodyType{bt, BodyTypeDefault} {
		entry, ok := g.entries[candidate]
		if !ok {
			continue
		}
		if list, ok := entry[category]; ok {
			return list
		}
		if candidate != BodyTypeDefault {
			if list, ok := entry[SuggestionAll]; ok {
				return list
			}
		}
	}
	return g.entries[BodyTypeDefault][SuggestionAll]
}

// DefaultStyleGuide is built once at start-up; a broken table fails fast.
var DefaultStyleGuide = mustStyleGuide(defaultSuggestions)

func mustStyleGuide(entries map[BodyType]map[string][]Suggestion) *StyleGuide {
	g, err := NewStyleGuide(entries)
	if err != nil {
		panic(err)
	}
	return g
}

var defaultSuggestions = map[BodyType]map[string][]Suggestion{
	BodyTypeAthletic: {
		SuggestionAll: {
			{"Fitted Basics", "Tailored tees and shirts show off your shoulders without looking tight."},
			{"Structured Layers", "Blazers and bomber jackets balance a broad upper body."},
		},
		"top": {
			{"V-Neck Tees", "A V-neck lengthens the torso and softens broad shoulders."},
			{"Slim Button-Downs", "A fitted shirt follows your shape without pulling across the chest."},
		},
		"bottom": {
			{"Tapered Chinos", "Room in the thigh with a clean taper keeps proportions balanced."},
			{"Athletic Fit Jeans", "Cut for muscular legs while staying slim at the ankle."},
		},
		"shoes": {
			{"Chelsea Boots", "A sleek boot pairs with both jeans and chinos."},
		},
	},
	BodyTypeSlim: {
		SuggestionAll: {
			{"Layer Up", "Layers add visual volume and depth to a lean frame."},
			{"Play With Texture", "Knits, corduroy and textured fabrics add dimension."},
		},
		"top": {
			{"Horizontal Stripes", "Stripes across the chest broaden a narrow frame."},
			{"Textured Henleys", "A textured knit adds body without bulk."},
		},
		"outerwear": {
			{"Oversized Cardigans", "A relaxed knit creates a fuller silhouette."},
		},
	},
	BodyTypeCurvy: {
		SuggestionAll: {
			{"Define the Waist", "Wrap tops and belted pieces highlight your natural waist."},
			{"Fluid Fabrics", "Soft drapes follow curves rather than clinging."},
		},
		"bottom": {
			{"High-Rise Trousers", "A high rise with a wide leg balances hips and shoulders."},
		},
	},
	BodyTypeMuscular: {
		SuggestionAll: {
			{"Stretch Fabrics", "A little stretch keeps fitted clothing comfortable."},
			{"Simple Lines", "Clean, minimal cuts let your build do the talking."},
		},
		"top": {
			{"Crew Neck Knits", "A fine knit drapes over the chest without strain."},
		},
	},
	BodyTypePear: {
		SuggestionAll: {
			{"Draw the Eye Up", "Statement tops and details at the neckline balance fuller hips."},
			{"Darker Bottoms", "Deep tones on the lower half create a streamlined look."},
		},
		"outerwear": {
			{"Structured Shoulders", "Jackets with defined shoulders even out proportions."},
		},
	},
	BodyTypeRectangle: {
		SuggestionAll: {
			{"Create Curves", "Peplum tops and belts add shape to a straight frame."},
			{"Mix Proportions", "Pair a cropped top with a fuller bottom for contrast."},
		},
	},
	BodyTypeHourglass: {
		SuggestionAll: {
			{"Follow Your Shape", "Fitted silhouettes celebrate balanced proportions."},
			{"Wrap Styles", "Wrap dresses and tops trace the waist naturally."},
		},
		"bottom": {
			{"Pencil Skirts", "A pencil line keeps the silhouette balanced."},
		},
	},
	BodyTypeDefault: {
		SuggestionAll: {
			{"Build on Neutrals", "Black, white, navy and beige pieces combine with almost everything."},
			{"Invest in Fit", "Well-fitting basics look better than trendy pieces that do not fit."},
		},
		"top": {
			{"Classic Button-Down", "A crisp shirt works dressed up or down."},
			{"Essential Tees", "Quality crew neck tees anchor casual outfits."},
		},
		"bottom": {
			{"Dark Wash Jeans", "Dark denim reads smarter and suits most occasions."},
			{"Tailored Chinos", "Chinos bridge casual and smart casual dress codes."},
		},
		"outerwear": {
			{"Trench Coat", "A timeless layer for cool and rainy days."},
		},
		"shoes": {
			{"White Sneakers", "Minimal sneakers go with nearly every casual outfit."},
			{"Leather Loafers", "Loafers lift an outfit without the formality of dress shoes."},
		},
	},
}
