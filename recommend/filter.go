package recommend

import (
	"sort"
	"strings"
	"stylistapi/languageutil"
)

// Pools holds the eligible items per category, best preference match first.
type Pools map[Category][]ClothingItem

type preferenceSet struct {
	colors   []string
	styles   []string
	patterns []string
}

func newPreferenceSet(p Preferences) preferenceSet {
	return preferenceSet{
		colors:   normalizeAll(p.Colors),
		styles:   normalizeAll(p.Styles),
		patterns: normalizeAll(p.Patterns),
	}
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := languageutil.Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func (p preferenceSet) colorMatches(color string) bool {
	for _, c := range p.colors {
		if strings.Contains(color, c) {
			return true
		}
	}
	return false
}

// score weighs style over color over pattern. Zero for a user without preferences.
func (p preferenceSet) score(item ClothingItem) int {
	score := 0
	if listed(p.styles, languageutil.Normalize(item.Style)) {
		score += 3
	}
	if p.colorMatches(languageutil.Normalize(item.Color)) {
		score += 2
	}
	if listed(p.patterns, languageutil.Normalize(item.Pattern)) {
		score++
	}
	return score
}

func normalizedCategory(item ClothingItem) Category {
	return Category(languageutil.Normalize(string(item.Category)))
}

func seasonMatches(item ClothingItem, season Season) bool {
	if season == SeasonAll {
		return true
	}
	s := Season(languageutil.Normalize(string(item.Season)))
	return s == season || s == SeasonAll
}

func styleMatches(item ClothingItem, style string) bool {
	if style == "" || style == StyleAll {
		return true
	}
	return languageutil.Normalize(item.Style) == style
}

// CandidatePools applies the season, formality and style filters to the wardrobe and
// orders every category by preference score. Preferences never exclude an item.
func CandidatePools(user UserProfile, wardrobe []ClothingItem, req Request) Pools {
	return buildPools(
		newPreferenceSet(user.Preferences),
		wardrobe,
		SeasonForWeather(req.Weather),
		FormalityForOccasion(req.Occasion),
		languageutil.Normalize(req.Style),
	)
}

func buildPools(prefs preferenceSet, wardrobe []ClothingItem, season Season, formality Formality, style string) Pools {
	pools := Pools{}
	for _, item := range wardrobe {
		category := normalizedCategory(item)
		if !listed(categoryNames, string(category)) {
			continue
		}
		if !seasonMatches(item, season) {
			continue
		}
		if !FormalityAccepts(formality, Formality(languageutil.Normalize(string(item.Formality)))) {
			continue
		}
		if !styleMatches(item, style) {
			continue
		}
		pools[category] = append(pools[category], item)
	}
	for _, items := range pools {
		sort.SliceStable(items, func(i, j int) bool {
			return prefs.score(items[i]) > prefs.score(items[j])
		})
	}
	return pools
}

var categoryNames = func() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}()
