package recommend

import (
	"math"
	"strings"
	"stylistapi/languageutil"
)

const (
	baseConfidence     = 0.55
	coreOutfitBonus    = 0.10
	harmonyFull        = 0.10
	harmonyPartial     = 0.05
	harmonyMinimal     = 0.01
	styleFull          = 0.10
	stylePairPenalty   = 0.03
	styleFloor         = 0.02
	patternBonus       = 0.05
	preferenceWeight   = 0.15
	preferenceCap      = 0.10
	jitterAmplitude    = 0.03
	minConfidence      = 0.5
	maxConfidence      = 0.99
	fallbackConfidence = 0.5
)

func hasCoreSlots(items []ClothingItem) bool {
	var top, bottom, shoes bool
	for _, item := range items {
		switch normalizedCategory(item) {
		case CategoryTop:
			top = true
		case CategoryBottom:
			bottom = true
		case CategoryShoes:
			shoes = true
		}
	}
	return top && bottom && shoes
}

// colorHarmony counts distinct non-neutral colors.
func colorHarmony(items []ClothingItem) float64 {
	accents := map[string]bool{}
	for _, item := range items {
		color := languageutil.Normalize(item.Color)
		if color == "" || isNeutral(color) {
			continue
		}
		accents[color] = true
	}
	switch {
	case len(accents) <= 1:
		return harmonyFull
	case len(accents) == 2:
		return harmonyPartial
	default:
		return harmonyMinimal
	}
}

func styleConsistency(items []ClothingItem) float64 {
	styles := make([]string, 0, len(items))
	for _, item := range items {
		if s := languageutil.Normalize(item.Style); s != "" {
			styles = append(styles, s)
		}
	}
	clashes := 0
	for i := 0; i < len(styles); i++ {
		for j := i + 1; j < len(styles); j++ {
			if !StylesCompatible(styles[i], styles[j]) {
				clashes++
			}
		}
	}
	return math.Max(styleFull-stylePairPenalty*float64(clashes), styleFloor)
}

func patternDiversity(items []ClothingItem) float64 {
	patterns := map[string]bool{}
	for _, item := range items {
		if p := languageutil.Normalize(item.Pattern); p != "" {
			patterns[p] = true
		}
	}
	if len(patterns) <= 2 {
		return patternBonus
	}
	return 0
}

// preferenceAlignment rewards the share of preferred colors and styles the outfit covers.
func preferenceAlignment(items []ClothingItem, prefs preferenceSet) float64 {
	total := len(prefs.colors) + len(prefs.styles)
	if total == 0 {
		return 0
	}
	matched := 0
	for _, c := range prefs.colors {
		for _, item := range items {
			if strings.Contains(languageutil.Normalize(item.Color), c) {
				matched++
				break
			}
		}
	}
	for _, s := range prefs.styles {
		for _, item := range items {
			if languageutil.Normalize(item.Style) == s {
				matched++
				break
			}
		}
	}
	return math.Min(preferenceWeight*float64(matched)/float64(total), preferenceCap)
}

func clampConfidence(v float64) float64 {
	v = math.Min(math.Max(v, minConfidence), maxConfidence)
	return math.Round(v*100) / 100
}

func (e *Engine) confidence(items []ClothingItem, prefs preferenceSet) float64 {
	score := baseConfidence
	if hasCoreSlots(items) {
		score += coreOutfitBonus
	}
	score += colorHarmony(items)
	score += styleConsistency(items)
	score += patternDiversity(items)
	score += preferenceAlignment(items, prefs)
	score += (e.rng.Float64()*2 - 1) * jitterAmplitude
	return clampConfidence(score)
}
