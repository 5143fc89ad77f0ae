package recommend

import (
	"strings"
	"stylistapi/languageutil"
)

// SeasonForWeather maps a weather key to the season used for filtering.
// Unknown weather matches every season.
func SeasonForWeather(weather string) Season {
	switch languageutil.Normalize(weather) {
	case "hot", "warm":
		return SeasonSummer
	case "cool":
		return SeasonFall
	case "cold":
		return SeasonWinter
	case "rainy":
		return SeasonSpring
	default:
		return SeasonAll
	}
}

// OtherKey stands in for occasion and weather keys outside the known tables.
const OtherKey = "other"

// KnownWeather returns the normalized weather key, or OtherKey when no table knows it.
func KnownWeather(weather string) string {
	switch w := languageutil.Normalize(weather); w {
	case "hot", "warm", "cool", "cold", "rainy":
		return w
	default:
		return OtherKey
	}
}

// KnownOccasion returns the normalized occasion key, or OtherKey when no table knows it.
func KnownOccasion(occasion string) string {
	switch o := languageutil.Normalize(occasion); o {
	case "business casual", "date night", "formal", "casual", "activewear":
		return o
	default:
		return OtherKey
	}
}

// FormalityForOccasion maps an occasion key to its target formality, casual when unknown.
func FormalityForOccasion(occasion string) Formality {
	switch languageutil.Normalize(occasion) {
	case "business casual", "date night":
		return FormalitySmartCasual
	case "formal":
		return FormalityFormal
	case "casual", "activewear":
		return FormalityCasual
	default:
		return FormalityCasual
	}
}

// FormalityAccepts reports whether an item of formality item may be worn for target.
// A target accepts its own level and the level directly below it.
func FormalityAccepts(target, item Formality) bool {
	if target == item {
		return true
	}
	switch target {
	case FormalitySmartCasual:
		return item == FormalityCasual
	case FormalityFormal:
		return item == FormalitySmartCasual
	default:
		return false
	}
}

func needsOuterwear(weather string) bool {
	switch languageutil.Normalize(weather) {
	case "cool", "cold", "rainy":
		return true
	default:
		return false
	}
}

var neutralColors = map[string]bool{
	"black":    true,
	"white":    true,
	"gray":     true,
	"grey":     true,
	"navy":     true,
	"beige":    true,
	"khaki":    true,
	"charcoal": true,
	"brown":    true,
}

// isNeutral treats a color as neutral when any of its words is a neutral ("dark navy", "light gray").
func isNeutral(color string) bool {
	for _, word := range strings.Fields(color) {
		if neutralColors[word] {
			return true
		}
	}
	return false
}

var styleCompatibility = map[string][]string{
	"casual":     {"minimalist", "streetwear", "sporty", "relaxed", "bohemian"},
	"classic":    {"minimalist", "formal", "smart", "preppy"},
	"minimalist": {"modern", "formal"},
	"streetwear": {"sporty", "edgy"},
	"formal":     {"elegant"},
	"modern":     {"smart"},
	"smart":      {"preppy"},
	"bohemian":   {"retro"},
	"retro":      {"casual"},
}

// StylesCompatible is symmetric; identical styles are always compatible.
func StylesCompatible(a, b string) bool {
	if a == b {
		return true
	}
	return listed(styleCompatibility[a], b) || listed(styleCompatibility[b], a)
}

func listed(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func styleAdjectives(style string) []string {
	switch style {
	case "classic":
		return []string{"Timeless", "Refined", "Polished"}
	case "casual":
		return []string{"Relaxed", "Easygoing", "Comfortable"}
	case "minimalist":
		return []string{"Clean", "Understated", "Streamlined"}
	case "streetwear":
		return []string{"Urban", "Bold", "Edgy"}
	case "formal":
		return []string{"Elegant", "Sharp", "Distinguished"}
	case "sporty":
		return []string{"Active", "Dynamic", "Sporty"}
	case "bohemian":
		return []string{"Artful", "Dreamy", "Breezy"}
	case "modern":
		return []string{"Modern", "Contemporary", "Fresh"}
	default:
		return []string{"Stylish", "Versatile", "Effortless"}
	}
}

func occasionNouns(occasion string) []string {
	switch occasion {
	case "casual":
		return []string{"Everyday Look", "Weekend Outfit", "Casual Ensemble"}
	case "business casual":
		return []string{"Office Look", "Workday Ensemble", "Workweek Outfit"}
	case "formal":
		return []string{"Formal Ensemble", "Evening Attire", "Gala Look"}
	case "date night":
		return []string{"Date Night Look", "Evening Out Outfit", "Dinner Date Ensemble"}
	case "activewear":
		return []string{"Active Outfit", "Workout Look", "Training Set"}
	case "":
		return []string{"Outfit", "Look", "Ensemble"}
	default:
		return []string{languageutil.Title(occasion) + " Outfit"}
	}
}

// weatherQualifiers returns nil for unknown weather, which drops the qualifier from the name.
func weatherQualifiers(weather string) []string {
	switch weather {
	case "hot":
		return []string{"for Hot Days", "for the Heat"}
	case "warm":
		return []string{"for Warm Weather", "for Sunny Days"}
	case "cool":
		return []string{"for Cool Days", "for Crisp Air"}
	case "cold":
		return []string{"for Cold Weather", "for Chilly Days"}
	case "rainy":
		return []string{"for Rainy Days", "for Wet Weather"}
	default:
		return nil
	}
}
