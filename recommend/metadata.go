package recommend

import "stylistapi/languageutil"

// DominantStyle is the most frequent style among the items; ties go to the style seen first.
func DominantStyle(items []ClothingItem) string {
	counts := map[string]int{}
	order := []string{}
	for _, item := range items {
		s := languageutil.Normalize(item.Style)
		if s == "" {
			continue
		}
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}
	dominant, best := "", 0
	for _, s := range order {
		if counts[s] > best {
			dominant, best = s, counts[s]
		}
	}
	return dominant
}

func outfitTags(items []ClothingItem, occasion, weather string) []string {
	seen := map[string]bool{}
	tags := []string{}
	add := func(tag string) {
		tag = languageutil.Normalize(tag)
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	for _, item := range items {
		add(item.Style)
	}
	for _, item := range items {
		add(item.Color)
	}
	add(occasion)
	add(weather)
	return tags
}

func (e *Engine) outfitName(style, occasion, weather string) string {
	return languageutil.JoinWords(
		languageutil.Pick(e.rng, styleAdjectives(style)),
		languageutil.Pick(e.rng, occasionNouns(languageutil.Normalize(occasion))),
		languageutil.Pick(e.rng, weatherQualifiers(languageutil.Normalize(weather))),
	)
}

func fallbackName(occasion string) string {
	occasion = languageutil.Normalize(occasion)
	if occasion == "" {
		return "Simple Outfit"
	}
	return languageutil.JoinWords("Simple", languageutil.Title(occasion), "Outfit")
}
