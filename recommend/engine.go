// Package recommend turns a wardrobe and a style profile into ranked outfit proposals.
package recommend

import (
	"sort"
	"strings"
	"stylistapi/languageutil"

	"github.com/google/uuid"
)

const (
	DefaultRounds          = 5
	DefaultSampleWindow    = 3
	DefaultAccessoryChance = 0.3
)

type Options struct {
	// Random defaults to a freshly seeded source.
	Random Random
	// NewID defaults to time-ordered UUIDs.
	NewID        func() string
	Rounds       int
	SampleWindow int
	// AccessoryChance of 0 uses DefaultAccessoryChance; a negative value never adds accessories.
	AccessoryChance float64
}

// Engine is not safe for concurrent use unless its Random is.
type Engine struct {
	rng             Random
	newID           func() string
	rounds          int
	window          int
	accessoryChance float64
}

func New(opts Options) *Engine {
	e := &Engine{
		rng:             opts.Random,
		newID:           opts.NewID,
		rounds:          opts.Rounds,
		window:          opts.SampleWindow,
		accessoryChance: opts.AccessoryChance,
	}
	if e.rng == nil {
		e.rng = newRandomSeeded()
	}
	if e.newID == nil {
		e.newID = func() string { return uuid.Must(uuid.NewV7()).String() }
	}
	if e.rounds <= 0 {
		e.rounds = DefaultRounds
	}
	if e.window <= 0 {
		e.window = DefaultSampleWindow
	}
	if e.accessoryChance == 0 {
		e.accessoryChance = DefaultAccessoryChance
	}
	return e
}

// GenerateRecommendations runs a fresh engine, so concurrent callers share nothing.
func GenerateRecommendations(user UserProfile, wardrobe []ClothingItem, req Request) []Outfit {
	return New(Options{}).Generate(user, wardrobe, req)
}

// Generate never fails. An empty result means the wardrobe has no eligible top and bottom.
func (e *Engine) Generate(user UserProfile, wardrobe []ClothingItem, req Request) []Outfit {
	prefs := newPreferenceSet(user.Preferences)
	season := SeasonForWeather(req.Weather)
	formality := FormalityForOccasion(req.Occasion)
	style := languageutil.Normalize(req.Style)
	pools := buildPools(prefs, wardrobe, season, formality, style)

	outfits := []Outfit{}
	seen := map[string]bool{}
	for round := 0; round < e.rounds; round++ {
		items := e.assemble(pools, req.Weather)
		if len(items) < 2 {
			continue
		}
		key := outfitKey(items)
		if seen[key] {
			continue
		}
		seen[key] = true
		outfits = append(outfits, e.newOutfit(items, req, season, e.confidence(items, prefs)))
	}

	if len(outfits) == 0 {
		if fallback, ok := e.fallback(prefs, wardrobe, pools, req, season, formality, style); ok {
			outfits = append(outfits, fallback)
		}
	}

	sort.SliceStable(outfits, func(i, j int) bool {
		return outfits[i].Confidence > outfits[j].Confidence
	})
	return outfits
}

// assemble fills the slots for one round. Top and bottom are mandatory.
func (e *Engine) assemble(pools Pools, weather string) []ClothingItem {
	tops, bottoms := pools[CategoryTop], pools[CategoryBottom]
	if len(tops) == 0 || len(bottoms) == 0 {
		return nil
	}
	items := []ClothingItem{e.sample(tops), e.sample(bottoms)}
	if outer := pools[CategoryOuterwear]; len(outer) > 0 && needsOuterwear(weather) {
		items = append(items, e.sample(outer))
	}
	if shoes := pools[CategoryShoes]; len(shoes) > 0 {
		items = append(items, e.sample(shoes))
	}
	if accessories := pools[CategoryAccessory]; len(accessories) > 0 && e.rng.Float64() < e.accessoryChance {
		items = append(items, e.sample(accessories))
	}
	return items
}

// sample picks uniformly among the best-ranked items of a pool.
func (e *Engine) sample(pool []ClothingItem) ClothingItem {
	return pool[e.rng.IntN(min(e.window, len(pool)))]
}

func (e *Engine) newOutfit(items []ClothingItem, req Request, season Season, confidence float64) Outfit {
	style := DominantStyle(items)
	return Outfit{
		ID:         e.newID(),
		Name:       e.outfitName(style, req.Occasion, req.Weather),
		Items:      items,
		Occasion:   req.Occasion,
		Season:     season,
		Weather:    req.Weather,
		Confidence: confidence,
		Style:      style,
		Tags:       outfitTags(items, req.Occasion, req.Weather),
	}
}

// fallback builds the minimal top and bottom outfit. It honours season and formality but
// not the style filter, so it only fires when the style filter emptied a mandatory pool.
func (e *Engine) fallback(prefs preferenceSet, wardrobe []ClothingItem, pools Pools, req Request, season Season, formality Formality, style string) (Outfit, bool) {
	if style != "" && style != StyleAll {
		pools = buildPools(prefs, wardrobe, season, formality, "")
	}
	tops, bottoms := pools[CategoryTop], pools[CategoryBottom]
	if len(tops) == 0 || len(bottoms) == 0 {
		return Outfit{}, false
	}
	items := []ClothingItem{tops[0], bottoms[0]}
	return Outfit{
		ID:         e.newID(),
		Name:       fallbackName(req.Occasion),
		Items:      items,
		Occasion:   req.Occasion,
		Season:     season,
		Weather:    req.Weather,
		Confidence: fallbackConfidence,
		Style:      DominantStyle(items),
		Tags:       outfitTags(items, req.Occasion, req.Weather),
		Fallback:   true,
	}, true
}

func outfitKey(items []ClothingItem) string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return strings.Join(ids, "|")
}
